package benchmark_test

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/timelinekit/timelinekit/pkg/codec"
	"github.com/timelinekit/timelinekit/pkg/heap"
	"github.com/timelinekit/timelinekit/pkg/model"
	"github.com/timelinekit/timelinekit/pkg/store"
	"github.com/timelinekit/timelinekit/pkg/timeline"
)

// testTimeline builds a timeline of groups groups with perGroup elements each.
func testTimeline(b *testing.B, groups, perGroup int) *timeline.TimelineModel {
	b.Helper()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	src := timeline.TimelineData{Name: "bench"}
	for g := range groups {
		start := base.Add(time.Duration(g) * 24 * time.Hour)
		gd := timeline.TimedGroupData{
			TimedElementData: timeline.TimedElementData{
				Start: model.FormatDateTime(start),
				End:   model.FormatDateTime(start.Add(8 * time.Hour)),
				Data:  timeline.BackingDataPublic{ID: fmt.Sprintf("g%d", g), Label: fmt.Sprintf("Day %d", g)},
			},
		}
		for e := range perGroup {
			at := start.Add(time.Duration(e) * 10 * time.Minute)
			gd.Elements = append(gd.Elements, timeline.TimedElementData{
				Start: model.FormatDateTime(at),
				End:   model.FormatDateTime(at.Add(5 * time.Minute)),
				Data:  timeline.BackingDataPublic{ID: fmt.Sprintf("g%de%d", g, e), Label: "slot"},
			})
		}
		src.Groups = append(src.Groups, gd)
	}

	m, err := timeline.LoadTimelineModel(src)
	if err != nil {
		b.Fatal(err)
	}
	return m
}

func BenchmarkHeapAddPop(b *testing.B) {
	for i := 0; i < b.N; i++ {
		h := heap.NewMin[int]()
		for v := 1000; v > 0; v-- {
			// error is ignored for benchmarking purposes.
			h.Add(v) //nolint:errcheck
		}
		for h.Len() > 0 {
			h.Pop() //nolint:errcheck
		}
	}
}

func BenchmarkEncode(b *testing.B) {
	m := testTimeline(b, 10, 50)
	for _, c := range []codec.Codec{codec.JSON{}, codec.CBOR{}} {
		b.Run(c.Name(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				codec.Encode[timeline.TimelineData](c, m) //nolint:errcheck
			}
		})
	}
}

func BenchmarkDecode(b *testing.B) {
	m := testTimeline(b, 10, 50)
	for _, c := range []codec.Codec{codec.JSON{}, codec.CBOR{}} {
		data, err := codec.Encode[timeline.TimelineData](c, m)
		if err != nil {
			b.Fatal(err)
		}
		b.Run(c.Name(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				codec.Decode[timeline.TimelineData, timeline.TimelineModel](c, data) //nolint:errcheck
			}
		})
	}
}

func BenchmarkSaveTimeline(b *testing.B) {
	s, err := store.Open(filepath.Join(b.TempDir(), "bench.db"))
	if err != nil {
		b.Fatal(err)
	}
	defer s.Close()

	m := testTimeline(b, 5, 20)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.DocumentID = fmt.Sprintf("doc%d", i%100)
		s.SaveTimeline(m) //nolint:errcheck
	}
}

func BenchmarkLoadTimeline(b *testing.B) {
	s, err := store.Open(filepath.Join(b.TempDir(), "bench.db"))
	if err != nil {
		b.Fatal(err)
	}
	defer s.Close()

	id, err := s.SaveTimeline(testTimeline(b, 5, 20))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.LoadTimeline(id) //nolint:errcheck
	}
}
