// Package style decouples a view's data from its appearance. A styled view
// exposes its parts as a Configuration of named slots and properties; a
// Style rebuilds the rendered body from that configuration without ever
// seeing the view's concrete type. Style bodies reference slots through
// ContentAlias markers, which resolve against the bound configuration during
// flattening. Default styles register per view type in a dispatch table and
// are looked up by the dynamic type at resolve time; DefaultStyle renders
// the content slot when nothing more specific is registered.
package style
