// Package views provides the container kinds the flattening engine
// traverses: group, tuple, optional, conditional branch, keyed iteration,
// section, and modified content, plus a handful of terminal leaf views and
// a type-erasing box.
//
// Every container implements viewcore.MultiView and owns its flattening
// rule; the engine discovers containers through conformance resolution, not
// type switches. Container rules extend the traversal context per child
// (offset or identity tokens for siblings, trait flags for section parts,
// modifier pushes for wrapped content) and the engine appends concrete
// type tokens as it descends.
package views
