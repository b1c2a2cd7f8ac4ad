package store

import (
	"fmt"

	"github.com/gofrs/uuid"
	bolt "go.etcd.io/bbolt"

	"github.com/timelinekit/timelinekit/pkg/codec"
	"github.com/timelinekit/timelinekit/pkg/timeline"
)

func init() {
	initDB["initialize timeline table"] = func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketTimelines))
		return err
	}
}

const bucketTimelines = "timelines"

// SaveTimeline writes m and returns its document ID. A timeline without a
// DocumentID is given a new random one first.
func (s *Store) SaveTimeline(m *timeline.TimelineModel) (string, error) {
	id := m.DocumentID
	if id == "" {
		u, err := uuid.NewV4()
		if err != nil {
			return "", fmt.Errorf("generate document id: %w", err)
		}
		id = u.String()
	}

	// The model only takes the new id once the document is stored.
	prev := m.DocumentID
	m.DocumentID = id
	payload, err := codec.Encode[timeline.TimelineData](s.codec, m)
	if err == nil {
		err = s.put(bucketTimelines, id, s.seal(payload))
	}
	if err != nil {
		m.DocumentID = prev
		return "", fmt.Errorf("save timeline %s: %w", id, err)
	}

	s.log.Debug().
		Str("document", id).
		Str("codec", s.codec.Name()).
		Int("bytes", len(payload)).
		Msg("saved timeline")
	return id, nil
}

// LoadTimeline reads the timeline stored under id.
func (s *Store) LoadTimeline(id string) (*timeline.TimelineModel, error) {
	value, err := s.get(bucketTimelines, id)
	if err != nil {
		return nil, err
	}

	c, payload, err := unseal(value)
	if err != nil {
		return nil, fmt.Errorf("timeline %s: %w", id, err)
	}
	m, err := codec.Decode[timeline.TimelineData, timeline.TimelineModel](c, payload)
	if err != nil {
		return nil, fmt.Errorf("decode timeline %s: %w", id, err)
	}
	m.DocumentID = id
	return m, nil
}

// DeleteTimeline removes the timeline stored under id.
func (s *Store) DeleteTimeline(id string) error {
	if err := s.del(bucketTimelines, id); err != nil {
		return err
	}
	s.log.Debug().Str("document", id).Msg("deleted timeline")
	return nil
}

// Timelines returns the IDs of all stored timelines in byte order.
func (s *Store) Timelines() ([]string, error) {
	return s.keys(bucketTimelines)
}
