// Package model defines how live entities relate to their public shapes.
//
// A public shape P is a plain struct that can be written to JSON or CBOR as
// is: dates are strings, nested entities are nested public shapes. The live
// entity holds richer values and knows how to fill itself from P, field by
// field, and how to flatten itself back into P.
//
// Entities are built with [New] or [Load], never as bare literals, so that
// identifiable entities receive their identifier exactly once.
package model

import (
	"fmt"

	"github.com/timelinekit/timelinekit/pkg/uid"
)

// Entity is implemented by the pointer type of a live entity with public shape P.
type Entity[P any] interface {
	// SetDefaults initializes every field to its default value.
	SetDefaults()
	// CopyFrom fills the entity from src. Fields that need conversion go
	// through a dedicated copy function which fails with an InvalidFieldError.
	CopyFrom(src P) error
	// ToPublic inverts CopyFrom.
	ToPublic() P
}

// PtrEntity constrains PE to be *E and an Entity[P].
type PtrEntity[P, E any] interface {
	*E
	Entity[P]
}

// New returns an entity built from its defaults.
func New[P, E any, PE PtrEntity[P, E]]() *E {
	e := new(E)
	PE(e).SetDefaults()
	assignIdentity(e)
	return e
}

// Load returns an entity copied from src, or built from defaults when src is nil.
func Load[P, E any, PE PtrEntity[P, E]](src *P) (*E, error) {
	if src == nil {
		return New[P, E, PE](), nil
	}

	e := new(E)
	if err := PE(e).CopyFrom(*src); err != nil {
		return nil, err
	}
	assignIdentity(e)
	return e, nil
}

// LoadAll loads every element of src. A failure is reported under field[i].
func LoadAll[P, E any, PE PtrEntity[P, E]](field string, src []P) ([]*E, error) {
	out := make([]*E, 0, len(src))
	for i := range src {
		e, err := Load[P, E, PE](&src[i])
		if err != nil {
			return nil, Nest(fmt.Sprintf("%s[%d]", field, i), err)
		}
		out = append(out, e)
	}
	return out, nil
}

// PublicAll flattens entities into their public shapes.
func PublicAll[P, E any, PE PtrEntity[P, E]](entities []*E) []P {
	out := make([]P, 0, len(entities))
	for _, e := range entities {
		out = append(out, PE(e).ToPublic())
	}
	return out
}

func assignIdentity(e any) {
	id, ok := e.(Identifiable)
	if !ok {
		return
	}

	prefix := uid.DefaultPrefix
	if p, ok := e.(interface{ IDPrefix() string }); ok {
		prefix = p.IDPrefix()
	}
	id.AssignID(uid.Default(), prefix)
}
