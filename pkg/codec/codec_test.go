package codec_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timelinekit/timelinekit/pkg/codec"
	"github.com/timelinekit/timelinekit/pkg/constants"
	"github.com/timelinekit/timelinekit/pkg/model"
	"github.com/timelinekit/timelinekit/pkg/timeline"
)

func sample(t *testing.T) *timeline.TimelineModel {
	t.Helper()

	m, err := timeline.LoadTimelineModel(timeline.TimelineData{
		Version: timeline.SchemaVersion,
		Name:    "sprint",
		Groups: []timeline.TimedGroupData{
			{
				TimedElementData: timeline.TimedElementData{
					Start: "2024-06-03T08:00:00Z",
					End:   "2024-06-14T18:00:00Z",
					Data:  timeline.BackingDataPublic{ID: "s1", Label: "Sprint 1"},
				},
				Elements: []timeline.TimedElementData{
					{Start: "2024-06-03T08:00:00Z", End: "2024-06-03T09:00:00Z", Data: timeline.BackingDataPublic{ID: "plan", Label: "Planning", Color: "#00aa00"}},
					{Start: "2024-06-14T16:00:00.250Z", Data: timeline.BackingDataPublic{ID: "demo", Label: "Demo"}},
				},
			},
		},
	})
	require.NoError(t, err)
	return m
}

func TestCodecs_roundTrip(t *testing.T) {
	t.Parallel()

	for _, c := range []codec.Codec{codec.JSON{}, codec.CBOR{}} {
		t.Run(c.Name(), func(t *testing.T) {
			t.Parallel()

			m := sample(t)
			data, err := codec.Encode[timeline.TimelineData](c, m)
			require.NoError(t, err)

			got, err := codec.Decode[timeline.TimelineData, timeline.TimelineModel](c, data)
			require.NoError(t, err)

			assert.Equal(t, m.Name, got.Name)
			diff := cmp.Diff(m.Groups.Values(), got.Groups.Values(), cmpopts.IgnoreUnexported(model.Identity{}))
			assert.Empty(t, diff)

			again, err := codec.Encode[timeline.TimelineData](c, got)
			require.NoError(t, err)
			assert.Equal(t, data, again)
		})
	}
}

func TestCodecs_stream(t *testing.T) {
	t.Parallel()

	for _, c := range []codec.Codec{codec.JSON{}, codec.CBOR{}} {
		t.Run(c.Name(), func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			el, err := timeline.LoadTimedElement(timeline.TimedElementData{
				Start: "2024-01-01T00:00:00Z",
				Data:  timeline.BackingDataPublic{ID: "a", Label: "A"},
			})
			require.NoError(t, err)

			require.NoError(t, codec.Write[timeline.TimedElementData](&buf, c, el))
			got, err := codec.Read[timeline.TimedElementData, timeline.TimedElement](&buf, c)
			require.NoError(t, err)
			assert.Equal(t, el.ToPublic(), got.ToPublic())
		})
	}
}

func TestJSON_shape(t *testing.T) {
	t.Parallel()

	g, err := timeline.LoadTimedGroup(timeline.TimedGroupData{
		TimedElementData: timeline.TimedElementData{
			Start: "2024-01-01T00:00:00Z",
			Data:  timeline.BackingDataPublic{ID: "g", Label: "G"},
		},
	})
	require.NoError(t, err)

	data, err := codec.Encode[timeline.TimedGroupData](codec.JSON{}, g)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"start": "2024-01-01T00:00:00Z",
		"end": "2024-01-01T00:00:00Z",
		"data": {"id": "g", "label": "G", "color": "#4a90d9", "type": "group"},
		"elements": []
	}`, string(data))
}

func TestDecode_errors(t *testing.T) {
	t.Parallel()

	_, err := codec.Decode[timeline.TimedElementData, timeline.TimedElement](codec.JSON{}, []byte(`{"start": ""}`))
	require.ErrorIs(t, err, constants.ErrInvalidField)

	_, err = codec.Decode[timeline.TimedElementData, timeline.TimedElement](codec.JSON{}, []byte(`{`))
	require.Error(t, err)

	_, err = codec.Decode[timeline.TimedElementData, timeline.TimedElement](nil, []byte(`{}`))
	require.ErrorIs(t, err, constants.ErrNoUnmarshaler)

	_, err = codec.Encode[timeline.TimedElementData](nil, timeline.NewTimedElement())
	require.ErrorIs(t, err, constants.ErrNoMarshaler)
}

func TestByName(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		in   string
		want string
	}{
		{in: "json", want: "json"},
		{in: "CBOR", want: "cbor"},
		{in: "plan.json", want: "json"},
		{in: "/tmp/plan.cbor", want: "cbor"},
	}
	for _, tc := range testcases {
		var (
			c   codec.Codec
			err error
		)
		if tc.in == "json" || tc.in == "CBOR" {
			c, err = codec.ByName(tc.in)
		} else {
			c, err = codec.ForPath(tc.in)
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, c.Name())
	}

	_, err := codec.ByName("yaml")
	require.ErrorIs(t, err, constants.ErrUnknownCodec)
	_, err = codec.ForPath("noext")
	require.ErrorIs(t, err, constants.ErrUnknownCodec)
}

func TestPeekVersion(t *testing.T) {
	t.Parallel()

	v, err := codec.PeekVersion([]byte(`{"name": "x", "version": 3, "groups": []}`))
	require.NoError(t, err)
	assert.Equal(t, int64(3), v)

	v, err = codec.PeekVersion([]byte(`{"name": "x"}`))
	require.NoError(t, err)
	assert.Zero(t, v)

	_, err = codec.PeekVersion([]byte(`{"version": "one"}`))
	require.Error(t, err)
}

func ExampleDecode() {
	data := []byte(`{"start": "2024-03-01T10:00:00Z", "data": {"id": "kickoff", "label": "Kickoff"}}`)

	el, err := codec.Decode[timeline.TimedElementData, timeline.TimedElement](codec.JSON{}, data)
	if err != nil {
		panic(err)
	}
	fmt.Println(el.Data.Label, model.FormatDateTime(el.End))
	// Output: Kickoff 2024-03-01T10:00:00Z
}
