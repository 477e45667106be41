package style

import (
	"github.com/declview/viewcore"
	"github.com/declview/viewcore/conformance"
	"github.com/declview/viewcore/errors"
	"github.com/declview/viewcore/metadata"
)

// Style rebuilds a styled view's appearance from its configuration. A style
// never sees the styled view's concrete type, only the named slots and
// properties the view exposed.
type Style interface {
	MakeBody(cfg Configuration) viewcore.View
}

// Configuration is the data a styled view hands its style: named content
// slots and scalar properties. Both maps are read-only from the style's
// point of view.
type Configuration struct {
	properties map[string]any
	slots      map[string]viewcore.View
}

// NewConfiguration returns an empty configuration.
func NewConfiguration() Configuration {
	return Configuration{
		properties: make(map[string]any),
		slots:      make(map[string]viewcore.View),
	}
}

// WithSlot returns the configuration with a named content slot set.
func (c Configuration) WithSlot(name string, v viewcore.View) Configuration {
	slots := make(map[string]viewcore.View, len(c.slots)+1)
	for k, s := range c.slots {
		slots[k] = s
	}
	slots[name] = v
	c.slots = slots
	return c
}

// WithProperty returns the configuration with a scalar property set.
func (c Configuration) WithProperty(name string, value any) Configuration {
	props := make(map[string]any, len(c.properties)+1)
	for k, p := range c.properties {
		props[k] = p
	}
	props[name] = value
	c.properties = props
	return c
}

// Slot returns the named content slot, or nil when unset.
func (c Configuration) Slot(name string) viewcore.View {
	return c.slots[name]
}

// Alias returns a content alias bound to this configuration. The alias
// resolves the named slot lazily, during flattening, so a style body can
// reference slots positionally without reading them up front.
func (c Configuration) Alias(name string) ContentAlias {
	return ContentAlias{Name: name, cfg: c, bound: true}
}

// Property returns the named scalar property.
func (c Configuration) Property(name string) (any, bool) {
	v, ok := c.properties[name]
	return v, ok
}

// ContentSlot is the conventional slot name for a styled view's primary
// content.
const ContentSlot = "content"

// ContentAlias is a marker view standing in for a named content slot. Style
// bodies compose against the alias; the slot it names is resolved from the
// bound configuration during flattening. An unbound alias is empty, the same
// as an unset slot.
type ContentAlias struct {
	Name  string
	cfg   Configuration
	bound bool
}

// Content returns an unbound alias for name. It flattens to nothing until
// bound through Configuration.Alias.
func Content(name string) ContentAlias {
	return ContentAlias{Name: name}
}

func (a ContentAlias) Body() viewcore.View { return nil }

// Resolved returns the slot the alias stands for, or nil.
func (a ContentAlias) Resolved() viewcore.View {
	if !a.bound {
		return nil
	}
	return a.cfg.Slot(a.Name)
}

func (a ContentAlias) FlattenChildren(tr viewcore.Traverser, ctx viewcore.Context) (bool, error) {
	return tr.Descend(ctx, a.Resolved())
}

// DefaultStyle renders the content slot unmodified. It is the style a view
// gets when nothing more specific is registered.
type DefaultStyle struct{}

func (DefaultStyle) MakeBody(cfg Configuration) viewcore.View {
	return cfg.Alias(ContentSlot)
}

// StyledView pairs a configuration with the style that renders it. Its body
// is whatever the style builds, so flattening a styled view flattens the
// style's output.
type StyledView struct {
	Style         Style
	Configuration Configuration
}

// Apply pairs cfg with s.
func Apply(s Style, cfg Configuration) StyledView {
	return StyledView{Style: s, Configuration: cfg}
}

func (v StyledView) Body() viewcore.View {
	if v.Style == nil {
		return nil
	}
	return v.Style.MakeBody(v.Configuration)
}

func (v StyledView) FlattenChildren(tr viewcore.Traverser, ctx viewcore.Context) (bool, error) {
	return tr.Descend(ctx, v.Body())
}

// registry maps a styled view's type to the style applied when none was set
// explicitly, using the same double-dispatch table the engine uses for
// typed visitors.
var registry = &conformance.Table[Style]{}

// Register binds the default style for views of type T. The first
// registration per type wins.
func Register[T viewcore.View](s Style) {
	conformance.RegisterThunk[T](registry, func(T) Style { return s })
}

// For returns the registered default style for v's type.
func For(v viewcore.View) (Style, error) {
	s, ok := registry.Dispatch(v)
	if !ok {
		return nil, errors.NotFound(errors.PhaseStyle, nil,
			"style for "+metadata.TypeOf(v).String())
	}
	return s, nil
}

// Resolve applies the registered default style to v with cfg. When no style
// is registered, DefaultStyle renders the content slot; a configuration
// without one falls back to the view itself.
func Resolve(v viewcore.View, cfg Configuration) viewcore.View {
	s, err := For(v)
	if err != nil {
		if cfg.Slot(ContentSlot) == nil {
			return v
		}
		s = DefaultStyle{}
	}
	return Apply(s, cfg)
}
