// Package view draws timelines as styled terminal text.
//
// A view holds a reference to the model it draws and reads the model's fields
// each time it is drawn. Drawing attaches a rendered block to a parent
// Surface; erasing detaches it again.
package view

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/timelinekit/timelinekit/pkg/constants"
)

// Drawable is anything that can attach itself to a surface and detach again.
type Drawable interface {
	Draw(parent *Surface) error
	Erase() error
}

// Surface is an ordered set of rendered blocks, keyed by the id of the view
// that attached them.
type Surface struct {
	blocks *orderedmap.OrderedMap[string, string]
}

func NewSurface() *Surface {
	return &Surface{blocks: orderedmap.New[string, string]()}
}

// Len returns the number of attached blocks.
func (s *Surface) Len() int {
	return s.blocks.Len()
}

// Has reports whether a block is attached under key.
func (s *Surface) Has(key string) bool {
	_, ok := s.blocks.Get(key)
	return ok
}

// String joins the attached blocks top to bottom in attach order.
func (s *Surface) String() string {
	blocks := make([]string, 0, s.blocks.Len())
	for pair := s.blocks.Oldest(); pair != nil; pair = pair.Next() {
		blocks = append(blocks, pair.Value)
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func (s *Surface) attach(key, block string) error {
	if s.Has(key) {
		return fmt.Errorf("attach %q: %w", key, constants.ErrKeyInUse)
	}
	s.blocks.Set(key, block)
	return nil
}

func (s *Surface) detach(key string) {
	s.blocks.Delete(key)
}
