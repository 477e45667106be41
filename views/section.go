package views

import (
	"github.com/declview/viewcore"
)

// Section offsets for the fixed header/content/footer positions.
const (
	sectionHeaderOffset  = 0
	sectionContentOffset = 1
	sectionFooterOffset  = 2
)

// Section is a header/content/footer triple. Leaves reached through the
// header or footer carry the corresponding trait flag; a part that flattens
// to zero leaves contributes nothing, not a placeholder. Early exit anywhere
// short-circuits the remaining parts.
type Section struct {
	Header  viewcore.View
	Content viewcore.View
	Footer  viewcore.View
}

// NewSection builds a Section. Any part may be nil.
func NewSection(header, content, footer viewcore.View) Section {
	return Section{Header: header, Content: content, Footer: footer}
}

func (s Section) Body() viewcore.View { return nil }

func (s Section) FlattenChildren(tr viewcore.Traverser, ctx viewcore.Context) (bool, error) {
	stop, err := tr.Descend(ctx.WithOffset(sectionHeaderOffset).WithTrait(viewcore.TraitHeader), s.Header)
	if stop || err != nil {
		return stop, err
	}

	stop, err = tr.Descend(ctx.WithOffset(sectionContentOffset), s.Content)
	if stop || err != nil {
		return stop, err
	}

	return tr.Descend(ctx.WithOffset(sectionFooterOffset).WithTrait(viewcore.TraitFooter), s.Footer)
}
