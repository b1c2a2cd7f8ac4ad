package model

import "github.com/timelinekit/timelinekit/pkg/uid"

// Identifiable is an entity that carries a generated identifier.
type Identifiable interface {
	ID() string
	AssignID(gen *uid.Generator, prefix string)
}

// Identity is embedded by identifiable entities. The identifier is assigned
// once, when the entity is built, and never changes afterwards.
type Identity struct {
	id  string
	seq uint64
}

// ID returns the generated identifier, or "" before assignment.
func (i *Identity) ID() string {
	return i.id
}

// Seq returns the sequence number behind ID. Later entities have larger numbers.
func (i *Identity) Seq() uint64 {
	return i.seq
}

// AssignID draws the next identifier from gen. It does nothing if one is already set.
func (i *Identity) AssignID(gen *uid.Generator, prefix string) {
	if i.id != "" {
		return
	}
	i.seq = gen.Next()
	i.id = uid.Format(prefix, i.seq)
}
