package view

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/timelinekit/timelinekit/pkg/constants"
	"github.com/timelinekit/timelinekit/pkg/timeline"
)

// GroupView draws a TimedGroup as a header followed by its elements.
type GroupView struct {
	Group *timeline.TimedGroup

	parent   *Surface
	elements []*ElementView
}

var _ Drawable = (*GroupView)(nil)

func NewGroupView(g *timeline.TimedGroup) *GroupView {
	return &GroupView{Group: g}
}

func (v *GroupView) Drawn() bool { return v.parent != nil }

// Draw renders the group's current elements. Elements added to the group
// afterwards show up on the next Draw.
func (v *GroupView) Draw(parent *Surface) error {
	if v.parent != nil {
		return fmt.Errorf("group %s: %w", v.Group.ID(), constants.ErrAlreadyDrawn)
	}

	inner := NewSurface()
	elements := make([]*ElementView, 0, len(v.Group.Elements))
	for i, el := range v.Group.Elements {
		// Keyed by position: a group may list the same element twice.
		ev := &ElementView{Element: el, key: strconv.Itoa(i)}
		if err := ev.Draw(inner); err != nil {
			return errors.Join(err, eraseAll(elements))
		}
		elements = append(elements, ev)
	}

	if err := parent.attach(v.Group.ID(), v.render(inner)); err != nil {
		return errors.Join(err, eraseAll(elements))
	}
	v.parent = parent
	v.elements = elements
	v.Group.Fire(timeline.EventDraw)
	return nil
}

func (v *GroupView) Erase() error {
	if v.parent == nil {
		return fmt.Errorf("group %s: %w", v.Group.ID(), constants.ErrNotDrawn)
	}
	err := eraseAll(v.elements)
	v.parent.detach(v.Group.ID())
	v.parent = nil
	v.elements = nil
	v.Group.Fire(timeline.EventErase)
	return err
}

func (v *GroupView) render(inner *Surface) string {
	g := v.Group
	header := colored(g.Data.Color).Bold(true).Render(g.Data.Label) + " " + dimStyle.Render(formatRange(g.Start, g.End))
	if inner.Len() == 0 {
		return header
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, indentStyle.Render(inner.String()))
}

func eraseAll[D Drawable](views []D) error {
	var errs []error
	for _, d := range views {
		errs = append(errs, d.Erase())
	}
	return errors.Join(errs...)
}
