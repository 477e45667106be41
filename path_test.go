package viewcore

import (
	"hash/fnv"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/declview/viewcore/metadata"
)

type textStub struct{ Value string }

func (textStub) Body() View { return nil }

type imageStub struct{ Name string }

func (imageStub) Body() View { return nil }

func TestPathCopyOnExtend(t *testing.T) {
	base := Path{}.WithType(metadata.TypeFor[textStub]())

	left := base.WithOffset(0)
	right := base.WithOffset(1)

	if base.Len() != 1 {
		t.Fatalf("base length = %d after extending, want 1", base.Len())
	}
	if left.Equal(right) {
		t.Errorf("sibling extensions compare equal: %q", left)
	}
	if left.At(1).Index != 0 || right.At(1).Index != 1 {
		t.Errorf("sibling offsets = %d, %d; want 0, 1", left.At(1).Index, right.At(1).Index)
	}
}

func TestPathEqual(t *testing.T) {
	text := metadata.TypeFor[textStub]()
	image := metadata.TypeFor[imageStub]()

	tests := []struct {
		name string
		a, b Path
		want bool
	}{
		{"both empty", Path{}, Path{}, true},
		{"same tokens", Path{}.WithType(text).WithOffset(2), Path{}.WithType(text).WithOffset(2), true},
		{"different type", Path{}.WithType(text), Path{}.WithType(image), false},
		{"different offset", Path{}.WithOffset(0), Path{}.WithOffset(1), false},
		{"different length", Path{}.WithType(text), Path{}.WithType(text).WithOffset(0), false},
		{"offset vs id", Path{}.WithOffset(0), Path{}.WithID("0"), false},
		{"same id", Path{}.WithID("row-1"), Path{}.WithID("row-1"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestPathString(t *testing.T) {
	p := Path{}.
		WithType(metadata.TypeFor[textStub]()).
		WithOffset(3).
		WithID("row-7")

	want := "viewcore.textStub/[3]/[#row-7]"
	if got := p.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	wantParts := []string{"viewcore.textStub", "[3]", "[#row-7]"}
	if diff := cmp.Diff(wantParts, p.Strings()); diff != "" {
		t.Errorf("Strings() mismatch (-want +got):\n%s", diff)
	}
}

func TestPathEmptyString(t *testing.T) {
	if got := (Path{}).String(); got != "" {
		t.Errorf("empty path String() = %q, want empty", got)
	}
}

func TestPathHash(t *testing.T) {
	text := metadata.TypeFor[textStub]()

	a := Path{}.WithType(text).WithOffset(1)
	b := Path{}.WithType(text).WithOffset(1)
	if a.Hash() != b.Hash() {
		t.Errorf("equal paths hash differently: %x vs %x", a.Hash(), b.Hash())
	}

	distinct := []Path{
		Path{},
		Path{}.WithType(text),
		Path{}.WithType(text).WithOffset(0),
		Path{}.WithType(text).WithOffset(1),
		Path{}.WithType(text).WithID("1"),
	}
	seen := make(map[uint64]int)
	for i, p := range distinct {
		h := p.Hash()
		if prev, dup := seen[h]; dup {
			t.Errorf("paths %d and %d collide: %q, %q", prev, i, distinct[prev], p)
		}
		seen[h] = i
	}

	// The hash digests the same canonical form String renders.
	if a.Hash() != hashOfString(a.String()) {
		t.Errorf("Hash() disagrees with the canonical rendering")
	}
}

func hashOfString(s string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return h.Sum64()
}
