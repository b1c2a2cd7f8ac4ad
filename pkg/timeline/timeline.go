package timeline

import (
	"time"

	"github.com/timelinekit/timelinekit/pkg/collection"
	"github.com/timelinekit/timelinekit/pkg/model"
)

// SchemaVersion is the newest public schema this package reads and the one it writes.
const SchemaVersion = 1

// TimelineData is the public shape of a TimelineModel.
type TimelineData struct {
	Version    int              `json:"version"`
	DocumentID string           `json:"documentId,omitempty"`
	Name       string           `json:"name"`
	Groups     []TimedGroupData `json:"groups"`
}

// TimelineModel is an ordered collection of groups, keyed by group ID.
type TimelineModel struct {
	model.Identity

	// DocumentID identifies the timeline in a store. It survives reloads,
	// unlike the generated ID.
	DocumentID string
	Name       string
	Groups     *collection.Collection[string, *TimedGroup]
}

var _ model.Entity[TimelineData] = (*TimelineModel)(nil)

// NewTimelineModel returns an empty, unnamed timeline.
func NewTimelineModel() *TimelineModel {
	return model.New[TimelineData, TimelineModel]()
}

// LoadTimelineModel builds a timeline and all its groups from their public shape.
func LoadTimelineModel(src TimelineData) (*TimelineModel, error) {
	return model.Load[TimelineData, TimelineModel](&src)
}

func groupKey(g *TimedGroup) string { return g.ID() }

func (m *TimelineModel) IDPrefix() string { return "timeline" }

func (m *TimelineModel) SetDefaults() {
	m.DocumentID = ""
	m.Name = ""
	m.Groups = collection.New(groupKey)
}

func (m *TimelineModel) CopyFrom(src TimelineData) error {
	if _, err := m.copyVersion(src.Version); err != nil {
		return err
	}
	m.DocumentID = src.DocumentID
	m.Name = src.Name

	groups, err := m.copyGroups(src.Groups)
	if err != nil {
		return err
	}
	m.Groups = groups
	return nil
}

func (m *TimelineModel) copyVersion(v int) (int, error) {
	return model.CopyVersion("version", v, SchemaVersion)
}

func (m *TimelineModel) copyGroups(src []TimedGroupData) (*collection.Collection[string, *TimedGroup], error) {
	groups, err := model.LoadAll[TimedGroupData, TimedGroup]("groups", src)
	if err != nil {
		return nil, err
	}

	c := collection.New(groupKey)
	for _, g := range groups {
		c.Add(g)
	}
	return c, nil
}

func (m *TimelineModel) ToPublic() TimelineData {
	return TimelineData{
		Version:    SchemaVersion,
		DocumentID: m.DocumentID,
		Name:       m.Name,
		Groups:     model.PublicAll[TimedGroupData, TimedGroup](m.Groups.Values()),
	}
}

// AddGroup appends g and returns the key it is stored under.
func (m *TimelineModel) AddGroup(g *TimedGroup) string {
	return m.Groups.Add(g)
}

func (m *TimelineModel) Group(id string) (*TimedGroup, bool) {
	return m.Groups.Get(id)
}

func (m *TimelineModel) RemoveGroup(id string) bool {
	_, ok := m.Groups.Remove(id)
	return ok
}

// Span returns the earliest start and latest end over all groups and their
// elements. It returns false for a timeline without groups.
func (m *TimelineModel) Span() (start, end time.Time, ok bool) {
	for _, g := range m.Groups.Values() {
		gs, ge := g.Start, g.End
		if s, e, has := g.Span(); has {
			if s.Before(gs) {
				gs = s
			}
			if e.After(ge) {
				ge = e
			}
		}
		if !ok || gs.Before(start) {
			start = gs
		}
		if !ok || ge.After(end) {
			end = ge
		}
		ok = true
	}
	return start, end, ok
}
