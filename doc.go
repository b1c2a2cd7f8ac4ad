// Package timelinekit is a toolkit for timelines: timed elements grouped
// into named timelines, with the data structures and persistence around them.
//
// # Data structures
//
// [github.com/timelinekit/timelinekit/pkg/tree] is an arena-backed keyed tree.
// [github.com/timelinekit/timelinekit/pkg/heap] builds a binary heap on it whose
// ordering is an injected swap policy, so one implementation serves both min
// and max heaps.
//
// # Models
//
// Every entity in [github.com/timelinekit/timelinekit/pkg/timeline] has a
// public shape used for storage and a live shape with parsed times. The
// [github.com/timelinekit/timelinekit/pkg/model] contract converts between the
// two, and loading the public shape of a live entity yields an equal entity.
//
// # Storage
//
// Public shapes are encoded as JSON or CBOR by
// [github.com/timelinekit/timelinekit/pkg/codec] and kept in a bbolt file by
// [github.com/timelinekit/timelinekit/pkg/store].
//
// The timelinekit command in cmd/timelinekit renders, converts and stores
// timeline files.
package timelinekit
