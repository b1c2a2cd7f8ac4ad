package view

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/timelinekit/timelinekit/pkg/constants"
	"github.com/timelinekit/timelinekit/pkg/timeline"
)

// TimelineView draws a whole TimelineModel: a title line with the overall
// span, then every group in order.
type TimelineView struct {
	Model *timeline.TimelineModel

	parent *Surface
	groups []*GroupView
}

var _ Drawable = (*TimelineView)(nil)

func NewTimelineView(m *timeline.TimelineModel) *TimelineView {
	return &TimelineView{Model: m}
}

func (v *TimelineView) Drawn() bool { return v.parent != nil }

func (v *TimelineView) Draw(parent *Surface) error {
	if v.parent != nil {
		return fmt.Errorf("timeline %s: %w", v.Model.ID(), constants.ErrAlreadyDrawn)
	}

	inner := NewSurface()
	groups := make([]*GroupView, 0, v.Model.Groups.Len())
	for _, g := range v.Model.Groups.Values() {
		gv := NewGroupView(g)
		if err := gv.Draw(inner); err != nil {
			return errors.Join(err, eraseAll(groups))
		}
		groups = append(groups, gv)
	}

	if err := parent.attach(v.Model.ID(), v.render(inner)); err != nil {
		return errors.Join(err, eraseAll(groups))
	}
	v.parent = parent
	v.groups = groups
	return nil
}

func (v *TimelineView) Erase() error {
	if v.parent == nil {
		return fmt.Errorf("timeline %s: %w", v.Model.ID(), constants.ErrNotDrawn)
	}
	err := eraseAll(v.groups)
	v.parent.detach(v.Model.ID())
	v.parent = nil
	v.groups = nil
	return err
}

func (v *TimelineView) render(inner *Surface) string {
	title := v.Model.Name
	if title == "" {
		title = "(untitled)"
	}
	title = titleStyle.Render(title)
	if start, end, ok := v.Model.Span(); ok {
		title += " " + dimStyle.Render(formatRange(start, end))
	}
	if inner.Len() == 0 {
		return title
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, inner.String())
}

// Render draws m onto a fresh surface and returns the text.
func Render(m *timeline.TimelineModel) (string, error) {
	s := NewSurface()
	if err := NewTimelineView(m).Draw(s); err != nil {
		return "", err
	}
	return s.String(), nil
}
