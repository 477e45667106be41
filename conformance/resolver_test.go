package conformance

import (
	"errors"
	"sync"
	"testing"

	vcerrors "github.com/declview/viewcore/errors"
	"github.com/declview/viewcore/metadata"
)

type greeter interface {
	Greet() string
}

type counter interface {
	Count() int
}

type english struct{ name string }

func (e english) Greet() string { return "hello " + e.name }

type tally struct{ n int }

func (t *tally) Count() int { return t.n }

type mute struct{}

func TestResolve(t *testing.T) {
	r := NewResolver()
	greeterID := ProtocolFor[greeter]()

	t.Run("positive", func(t *testing.T) {
		h, ok := r.Resolve(metadata.TypeFor[english](), greeterID)
		if !ok {
			t.Fatal("english must conform to greeter")
		}
		if h.Type() != metadata.TypeFor[english]() {
			t.Error("handle must carry the resolved type")
		}
		if h.Protocol() != greeterID {
			t.Error("handle must carry the resolved protocol")
		}
		if h.PointerWitness() {
			t.Error("value-receiver conformance must not be a pointer witness")
		}
	})

	t.Run("negative", func(t *testing.T) {
		if _, ok := r.Resolve(metadata.TypeFor[mute](), greeterID); ok {
			t.Error("mute must not conform to greeter")
		}
	})

	t.Run("pointer witness", func(t *testing.T) {
		h, ok := r.Resolve(metadata.TypeFor[tally](), ProtocolFor[counter]())
		if !ok {
			t.Fatal("tally must conform to counter through its reference form")
		}
		if !h.PointerWitness() {
			t.Error("pointer-receiver conformance must be a pointer witness")
		}

		h2, ok := r.Resolve(metadata.TypeFor[*tally](), ProtocolFor[counter]())
		if !ok {
			t.Fatal("*tally must conform to counter")
		}
		if h2.PointerWitness() {
			t.Error("direct conformance of the reference type is not a pointer witness")
		}
	})

	t.Run("invalid inputs", func(t *testing.T) {
		if _, ok := r.Resolve(metadata.TypeID{}, greeterID); ok {
			t.Error("invalid type must not resolve")
		}
		if _, ok := r.Resolve(metadata.TypeFor[english](), ProtocolID{}); ok {
			t.Error("invalid protocol must not resolve")
		}
	})
}

func TestResolveCacheConsistency(t *testing.T) {
	r := NewResolver()
	greeterID := ProtocolFor[greeter]()
	counterID := ProtocolFor[counter]()

	// Interleave lookups for several pairs and check every answer stays
	// consistent with the first real lookup.
	type probe struct {
		typ   metadata.TypeID
		proto ProtocolID
		want  bool
	}
	probes := []probe{
		{metadata.TypeFor[english](), greeterID, true},
		{metadata.TypeFor[mute](), greeterID, false},
		{metadata.TypeFor[tally](), counterID, true},
		{metadata.TypeFor[english](), counterID, false},
		{metadata.TypeFor[mute](), counterID, false},
	}

	firstHandles := make([]*Handle, len(probes))
	for i, p := range probes {
		h, ok := r.Resolve(p.typ, p.proto)
		if ok != p.want {
			t.Fatalf("probe %d: ok = %v, want %v", i, ok, p.want)
		}
		firstHandles[i] = h
	}

	for round := 0; round < 3; round++ {
		for i := len(probes) - 1; i >= 0; i-- {
			p := probes[i]
			h, ok := r.Resolve(p.typ, p.proto)
			if ok != p.want {
				t.Fatalf("round %d probe %d: ok = %v, want %v", round, i, ok, p.want)
			}
			if h != firstHandles[i] {
				t.Errorf("round %d probe %d: cached handle changed identity", round, i)
			}
		}
	}
}

func TestResolveConcurrent(t *testing.T) {
	r := NewResolver()
	greeterID := ProtocolFor[greeter]()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if _, ok := r.Resolve(metadata.TypeFor[english](), greeterID); !ok {
					t.Error("concurrent resolve lost a positive answer")
					return
				}
				if _, ok := r.Resolve(metadata.TypeFor[mute](), greeterID); ok {
					t.Error("concurrent resolve lost a negative answer")
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestAs(t *testing.T) {
	r := NewResolver()
	greeterID := ProtocolFor[greeter]()

	value := english{name: "world"}
	h, ok := r.Resolve(metadata.TypeOf(value), greeterID)
	if !ok {
		t.Fatal("resolve failed")
	}

	t.Run("matched pair", func(t *testing.T) {
		g, err := As[greeter](h, value)
		if err != nil {
			t.Fatalf("As: %v", err)
		}
		if g.Greet() != "hello world" {
			t.Errorf("Greet() = %q", g.Greet())
		}
	})

	t.Run("mismatched value type", func(t *testing.T) {
		_, err := As[greeter](h, mute{})
		if err == nil {
			t.Fatal("mismatched pair must be rejected")
		}
		var e *vcerrors.Error
		if !errors.As(err, &e) || e.Kind != vcerrors.KindMismatchedHandle {
			t.Errorf("err = %v, want mismatched_handle", err)
		}
	})

	t.Run("mismatched protocol", func(t *testing.T) {
		if _, err := As[counter](h, value); err == nil {
			t.Error("handle resolved for another protocol must be rejected")
		}
	})

	t.Run("nil handle", func(t *testing.T) {
		if _, err := As[greeter](nil, value); err == nil {
			t.Error("nil handle must be rejected")
		}
	})

	t.Run("pointer witness via value form", func(t *testing.T) {
		hv, ok := r.Resolve(metadata.TypeFor[tally](), ProtocolFor[counter]())
		if !ok {
			t.Fatal("resolve failed")
		}
		if _, err := As[counter](hv, tally{n: 1}); err == nil {
			t.Error("value form cannot witness a pointer-receiver conformance")
		}
	})
}

func TestTable(t *testing.T) {
	var tb Table[string]

	RegisterThunk(&tb, func(e english) string { return "english:" + e.name })
	RegisterThunk(&tb, func(m mute) string { return "mute" })

	got, ok := tb.Dispatch(english{name: "x"})
	if !ok || got != "english:x" {
		t.Errorf("Dispatch = %q/%v", got, ok)
	}

	got, ok = tb.Dispatch(mute{})
	if !ok || got != "mute" {
		t.Errorf("Dispatch = %q/%v", got, ok)
	}

	if _, ok := tb.Dispatch(tally{}); ok {
		t.Error("unregistered type must not dispatch")
	}

	if !tb.Registered(metadata.TypeFor[english]()) {
		t.Error("Registered must report registered thunks")
	}

	t.Run("first registration wins", func(t *testing.T) {
		RegisterThunk(&tb, func(e english) string { return "other" })
		got, _ := tb.Dispatch(english{name: "x"})
		if got != "english:x" {
			t.Errorf("Dispatch = %q, want the first thunk's answer", got)
		}
	})
}
