package view

import (
	"fmt"

	"github.com/timelinekit/timelinekit/pkg/constants"
	"github.com/timelinekit/timelinekit/pkg/timeline"
)

// ElementView draws one TimedElement as a single line.
type ElementView struct {
	Element *timeline.TimedElement

	// key names the attached block; the element ID when empty.
	key    string
	parent *Surface
}

var _ Drawable = (*ElementView)(nil)

func NewElementView(el *timeline.TimedElement) *ElementView {
	return &ElementView{Element: el}
}

func (v *ElementView) Drawn() bool { return v.parent != nil }

func (v *ElementView) Draw(parent *Surface) error {
	if v.parent != nil {
		return fmt.Errorf("element %s: %w", v.Element.ID(), constants.ErrAlreadyDrawn)
	}
	if err := parent.attach(v.blockKey(), v.render()); err != nil {
		return err
	}
	v.parent = parent
	v.Element.Fire(timeline.EventDraw)
	return nil
}

func (v *ElementView) Erase() error {
	if v.parent == nil {
		return fmt.Errorf("element %s: %w", v.Element.ID(), constants.ErrNotDrawn)
	}
	v.parent.detach(v.blockKey())
	v.parent = nil
	v.Element.Fire(timeline.EventErase)
	return nil
}

func (v *ElementView) blockKey() string {
	if v.key != "" {
		return v.key
	}
	return v.Element.ID()
}

func (v *ElementView) render() string {
	el := v.Element
	line := colored(el.Data.Color).Render("● "+el.Data.Label) + " " + dimStyle.Render(formatRange(el.Start, el.End))
	if d := el.Duration(); d != 0 {
		line += dimStyle.Render(" (" + d.String() + ")")
	}
	return line
}
