package timeline

import (
	"time"

	"github.com/timelinekit/timelinekit/pkg/model"
)

// TimedGroupData is the public shape of a TimedGroup.
type TimedGroupData struct {
	TimedElementData
	Elements []TimedElementData `json:"elements"`
}

// TimedGroup is a TimedElement holding an ordered list of elements.
//
// Start and End belong to the group and are not derived from Elements.
// Callers that want them to match call FitToElements.
type TimedGroup struct {
	TimedElement

	Elements []*TimedElement
}

var _ model.Entity[TimedGroupData] = (*TimedGroup)(nil)

// NewTimedGroup returns an empty group starting and ending now.
func NewTimedGroup() *TimedGroup {
	return model.New[TimedGroupData, TimedGroup]()
}

// LoadTimedGroup builds a group and its elements from their public shape.
func LoadTimedGroup(src TimedGroupData) (*TimedGroup, error) {
	return model.Load[TimedGroupData, TimedGroup](&src)
}

func (g *TimedGroup) IDPrefix() string { return "group" }

func (g *TimedGroup) SetDefaults() {
	g.TimedElement.SetDefaults()
	g.Data.Type = DefaultGroupType
	g.Elements = nil
}

func (g *TimedGroup) CopyFrom(src TimedGroupData) error {
	if err := g.TimedElement.CopyFrom(src.TimedElementData); err != nil {
		return err
	}
	if src.Data.Type == "" {
		g.Data.Type = DefaultGroupType
	}

	elements, err := g.copyElements(src.Elements)
	if err != nil {
		return err
	}
	g.Elements = elements
	return nil
}

func (g *TimedGroup) copyElements(src []TimedElementData) ([]*TimedElement, error) {
	return model.LoadAll[TimedElementData, TimedElement]("elements", src)
}

func (g *TimedGroup) ToPublic() TimedGroupData {
	return TimedGroupData{
		TimedElementData: g.TimedElement.ToPublic(),
		Elements:         model.PublicAll[TimedElementData, TimedElement](g.Elements),
	}
}

// AddElement appends el to the group.
func (g *TimedGroup) AddElement(el *TimedElement) {
	g.Elements = append(g.Elements, el)
}

// RemoveElement removes the element with the given generated ID.
func (g *TimedGroup) RemoveElement(id string) bool {
	for i, el := range g.Elements {
		if el.ID() == id {
			g.Elements = append(g.Elements[:i], g.Elements[i+1:]...)
			return true
		}
	}
	return false
}

// Span returns the earliest start and latest end of the group's elements.
// It returns false when the group has no elements.
func (g *TimedGroup) Span() (start, end time.Time, ok bool) {
	for i, el := range g.Elements {
		if i == 0 || el.Start.Before(start) {
			start = el.Start
		}
		if i == 0 || el.End.After(end) {
			end = el.End
		}
	}
	return start, end, len(g.Elements) > 0
}

// FitToElements sets Start and End to the span of the elements.
// A group without elements is left unchanged and false is returned.
func (g *TimedGroup) FitToElements() bool {
	start, end, ok := g.Span()
	if ok {
		g.Start, g.End = start, end
	}
	return ok
}
