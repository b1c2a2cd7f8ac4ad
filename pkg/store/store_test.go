package store

import (
	"path/filepath"
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timelinekit/timelinekit/pkg/codec"
	"github.com/timelinekit/timelinekit/pkg/constants"
	"github.com/timelinekit/timelinekit/pkg/timeline"
)

func openTemp(t *testing.T, opts ...Option) (*Store, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "timelines.db")
	s, err := Open(path, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s, path
}

func sample(t *testing.T, name string) *timeline.TimelineModel {
	t.Helper()

	m, err := timeline.LoadTimelineModel(timeline.TimelineData{
		Name: name,
		Groups: []timeline.TimedGroupData{{
			TimedElementData: timeline.TimedElementData{
				Start: "2024-02-01T08:00:00Z",
				End:   "2024-02-01T12:00:00Z",
				Data:  timeline.BackingDataPublic{ID: "am", Label: "Morning"},
			},
			Elements: []timeline.TimedElementData{
				{Start: "2024-02-01T08:30:00Z", Data: timeline.BackingDataPublic{ID: "standup", Label: "Standup"}},
			},
		}},
	})
	require.NoError(t, err)
	return m
}

func TestStore_saveLoad(t *testing.T) {
	t.Parallel()

	for _, c := range []codec.Codec{codec.JSON{}, codec.CBOR{}} {
		t.Run(c.Name(), func(t *testing.T) {
			t.Parallel()

			s, _ := openTemp(t, WithCodec(c))
			m := sample(t, "day")

			id, err := s.SaveTimeline(m)
			require.NoError(t, err)
			assert.Equal(t, id, m.DocumentID)
			_, err = uuid.FromString(id)
			require.NoError(t, err)

			got, err := s.LoadTimeline(id)
			require.NoError(t, err)
			assert.Equal(t, m.ToPublic(), got.ToPublic())
		})
	}
}

func TestStore_keepsDocumentID(t *testing.T) {
	t.Parallel()

	s, _ := openTemp(t)
	m := sample(t, "fixed")
	m.DocumentID = "fixed-id"

	id, err := s.SaveTimeline(m)
	require.NoError(t, err)
	assert.Equal(t, "fixed-id", id)

	m.Name = "renamed"
	_, err = s.SaveTimeline(m)
	require.NoError(t, err)

	got, err := s.LoadTimeline("fixed-id")
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Name)

	ids, err := s.Timelines()
	require.NoError(t, err)
	assert.Equal(t, []string{"fixed-id"}, ids)
}

func TestStore_codecSwitch(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "mixed.db")

	s, err := Open(path, WithCodec(codec.JSON{}))
	require.NoError(t, err)
	m := sample(t, "json")
	m.DocumentID = "a"
	_, err = s.SaveTimeline(m)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path, WithCodec(codec.CBOR{}))
	require.NoError(t, err)
	defer s.Close()

	n := sample(t, "cbor")
	n.DocumentID = "b"
	_, err = s.SaveTimeline(n)
	require.NoError(t, err)

	got, err := s.LoadTimeline("a")
	require.NoError(t, err)
	assert.Equal(t, "json", got.Name)

	got, err = s.LoadTimeline("b")
	require.NoError(t, err)
	assert.Equal(t, "cbor", got.Name)
}

func TestStore_delete(t *testing.T) {
	t.Parallel()

	s, _ := openTemp(t)
	for _, id := range []string{"c", "a", "b"} {
		m := sample(t, id)
		m.DocumentID = id
		_, err := s.SaveTimeline(m)
		require.NoError(t, err)
	}

	ids, err := s.Timelines()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, ids)

	require.NoError(t, s.DeleteTimeline("b"))
	require.ErrorIs(t, s.DeleteTimeline("b"), constants.ErrNoDocument)

	_, err = s.LoadTimeline("b")
	require.ErrorIs(t, err, constants.ErrNoDocument)

	ids, err = s.Timelines()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, ids)
}

func TestStore_empty(t *testing.T) {
	t.Parallel()

	s, _ := openTemp(t)
	ids, err := s.Timelines()
	require.NoError(t, err)
	assert.Empty(t, ids)

	_, err = s.LoadTimeline("missing")
	require.ErrorIs(t, err, constants.ErrNoDocument)
}

func TestUnseal(t *testing.T) {
	t.Parallel()

	_, _, err := unseal([]byte("no tag here"))
	require.ErrorIs(t, err, constants.ErrUnknownCodec)

	_, _, err = unseal([]byte("yaml:{}"))
	require.ErrorIs(t, err, constants.ErrUnknownCodec)

	c, payload, err := unseal([]byte(`json:{"a":1}`))
	require.NoError(t, err)
	assert.Equal(t, "json", c.Name())
	assert.Equal(t, `{"a":1}`, string(payload))
}

// failingCodec encodes nothing.
type failingCodec struct{ codec.JSON }

func (failingCodec) Name() string { return "failing" }

func (failingCodec) Marshal(any) ([]byte, error) { return nil, assert.AnError }

func TestStore_saveFailureKeepsModel(t *testing.T) {
	t.Parallel()

	s, _ := openTemp(t, WithCodec(failingCodec{}))
	m := sample(t, "unsaved")

	_, err := s.SaveTimeline(m)
	require.ErrorIs(t, err, assert.AnError)
	assert.Empty(t, m.DocumentID)

	ids, err := s.Timelines()
	require.NoError(t, err)
	assert.Empty(t, ids)
}
