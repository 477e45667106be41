package main

import (
	"fmt"

	"github.com/declview/viewcore"
	"github.com/declview/viewcore/style"
	"github.com/declview/viewcore/views"
)

type sample struct {
	name     string
	describe string
	build    func() viewcore.View
}

// profileCard is an opaque composed view; its body expands during flattening.
type profileCard struct {
	Name string
	Role string
}

func (c profileCard) Body() viewcore.View {
	return views.TupleOf(
		views.Image{Name: "avatar"},
		views.Text{Value: c.Name},
		views.Text{Value: c.Role},
	)
}

// toggleRow demonstrates the style layer: its appearance comes from a
// registered style, not the view itself.
type toggleRow struct {
	Label string
	On    bool
}

func (t toggleRow) Body() viewcore.View {
	return style.Resolve(t, style.NewConfiguration().
		WithSlot("label", views.Text{Value: t.Label}).
		WithProperty("on", t.On))
}

type switchStyle struct{}

func (switchStyle) MakeBody(cfg style.Configuration) viewcore.View {
	state := "off"
	if on, ok := cfg.Property("on"); ok && on == true {
		state = "on"
	}
	return views.TupleOf(cfg.Slot("label"), views.Text{Value: "[" + state + "]"})
}

func init() {
	style.Register[toggleRow](switchStyle{})
}

func samples() []sample {
	return []sample{
		{
			name:     "gallery",
			describe: "tuples, groups and modifiers",
			build: func() viewcore.View {
				return views.TupleOf(
					views.Padding(views.Text{Value: "Gallery"}, 2),
					views.Group{Content: views.TupleOf(
						views.Image{Name: "one"},
						views.Image{Name: "two"},
						views.Opacity(views.Image{Name: "three"}, 0.5),
					)},
					views.Spacer{},
				)
			},
		},
		{
			name:     "settings",
			describe: "sections with headers, footers and styled rows",
			build: func() viewcore.View {
				return views.TupleOf(
					views.NewSection(
						views.Text{Value: "Network"},
						views.TupleOf(
							toggleRow{Label: "Wi-Fi", On: true},
							toggleRow{Label: "Bluetooth"},
						),
						views.Text{Value: "Changes apply immediately"},
					),
					views.NewSection(
						views.Text{Value: "About"},
						views.Text{Value: "Version 1.0"},
						nil,
					),
				)
			},
		},
		{
			name:     "feed",
			describe: "keyed iteration over composed cards",
			build: func() viewcore.View {
				people := []profileCard{
					{Name: "ada", Role: "engineering"},
					{Name: "lin", Role: "design"},
					{Name: "sam", Role: "research"},
				}
				return views.ForEachKeyed(people,
					func(p profileCard) string { return p.Name },
					func(p profileCard) viewcore.View { return p },
				)
			},
		},
		{
			name:     "branches",
			describe: "optionals and conditional branches",
			build: func() viewcore.View {
				return views.TupleOf(
					views.Some(views.Text{Value: "present"}),
					views.None(),
					views.If(true, views.Text{Value: "taken"}, views.Text{Value: "untaken"}),
					views.Any(views.Text{Value: "boxed"}),
				)
			},
		},
		{
			name:     "nested",
			describe: "deeply nested groups",
			build: func() viewcore.View {
				var v viewcore.View = views.Text{Value: "core"}
				for i := 0; i < 24; i++ {
					v = views.Group{Content: views.TupleOf(v, views.Text{Value: fmt.Sprintf("ring-%d", i)})}
				}
				return v
			},
		},
	}
}

func sampleByName(name string) (sample, bool) {
	for _, s := range samples() {
		if s.name == name {
			return s, true
		}
	}
	return sample{}, false
}
