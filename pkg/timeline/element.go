// Package timeline holds the timed entities drawn by timeline views.
//
// Each entity has a public shape (the *Data types) used for storage and
// transport, and a live shape with parsed dates and nested live entities.
package timeline

import (
	"time"

	"github.com/timelinekit/timelinekit/pkg/model"
)

// Default values of a new element.
const (
	DefaultColor       = "#4a90d9"
	DefaultElementType = "element"
	DefaultGroupType   = "group"
)

// Event kinds passed to an EventHandler by views.
const (
	EventDraw  = "draw"
	EventErase = "erase"
)

// now is replaced in tests.
var now = time.Now

// EventHandler is called when something happens to an element, e.g. a view draws it.
type EventHandler func(el *TimedElement, kind string)

// BackingData is what an element describes.
type BackingData struct {
	ID    string
	Label string
	Color string
	Type  string
	// OnEvent is live only and never serialized.
	OnEvent EventHandler
}

// BackingDataPublic is the public shape of BackingData.
type BackingDataPublic struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Color string `json:"color,omitempty"`
	Type  string `json:"type,omitempty"`
}

// TimedElementData is the public shape of a TimedElement.
type TimedElementData struct {
	Start string            `json:"start"`
	End   string            `json:"end,omitempty"`
	Data  BackingDataPublic `json:"data"`
}

// TimedElement is something that happens between Start and End.
type TimedElement struct {
	model.Identity

	Start time.Time
	End   time.Time
	Data  BackingData
}

var _ model.Entity[TimedElementData] = (*TimedElement)(nil)

// NewTimedElement returns an element starting and ending now.
func NewTimedElement() *TimedElement {
	return model.New[TimedElementData, TimedElement]()
}

// LoadTimedElement builds an element from its public shape.
func LoadTimedElement(src TimedElementData) (*TimedElement, error) {
	return model.Load[TimedElementData, TimedElement](&src)
}

func (e *TimedElement) IDPrefix() string { return "element" }

func (e *TimedElement) SetDefaults() {
	e.Start = now().UTC().Truncate(time.Millisecond)
	e.End = e.Start
	e.Data = BackingData{Color: DefaultColor, Type: DefaultElementType}
}

func (e *TimedElement) CopyFrom(src TimedElementData) error {
	var err error
	if e.Start, err = e.copyStart(src.Start); err != nil {
		return err
	}
	if e.End, err = e.copyEnd(src.End); err != nil {
		return err
	}
	e.Data = e.copyData(src.Data)
	return nil
}

func (e *TimedElement) copyStart(s string) (time.Time, error) {
	return model.CopyDateTime("start", s)
}

// copyEnd must run after copyStart: an empty end means the element ends when it starts.
func (e *TimedElement) copyEnd(s string) (time.Time, error) {
	if s == "" {
		return e.Start, nil
	}
	return model.CopyDateTime("end", s)
}

func (e *TimedElement) copyData(src BackingDataPublic) BackingData {
	d := BackingData{
		ID:    src.ID,
		Label: src.Label,
		Color: src.Color,
		Type:  src.Type,
	}
	if d.Color == "" {
		d.Color = DefaultColor
	}
	if d.Type == "" {
		d.Type = DefaultElementType
	}
	return d
}

func (e *TimedElement) ToPublic() TimedElementData {
	return TimedElementData{
		Start: model.FormatDateTime(e.Start),
		End:   model.FormatDateTime(e.End),
		Data: BackingDataPublic{
			ID:    e.Data.ID,
			Label: e.Data.Label,
			Color: e.Data.Color,
			Type:  e.Data.Type,
		},
	}
}

// Duration returns End - Start.
func (e *TimedElement) Duration() time.Duration {
	return e.End.Sub(e.Start)
}

// Fire calls the element's event handler, if any.
func (e *TimedElement) Fire(kind string) {
	if e.Data.OnEvent != nil {
		e.Data.OnEvent(e, kind)
	}
}
