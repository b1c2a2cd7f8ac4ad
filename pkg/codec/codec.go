// Package codec encodes entities through their public shapes.
//
// Two codecs are provided: JSON for files people edit and CBOR for compact
// storage. Both read the `json` struct tags of the public shapes.
package codec

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/timelinekit/timelinekit/pkg/constants"
	"github.com/timelinekit/timelinekit/pkg/model"
)

type Encoder interface {
	Encode(v any) error
}

type Decoder interface {
	Decode(v any) error
}

type Marshaler interface {
	Marshal(v any) ([]byte, error)
	NewEncoder(w io.Writer) Encoder
}

type Unmarshaler interface {
	Unmarshal(data []byte, dst any) error
	NewDecoder(r io.Reader) Decoder
}

// Codec is a named Marshaler and Unmarshaler pair.
type Codec interface {
	Marshaler
	Unmarshaler
	Name() string
}

// ByName returns the codec called name ("json" or "cbor").
func ByName(name string) (Codec, error) {
	switch strings.ToLower(name) {
	case "json":
		return JSON{}, nil
	case "cbor":
		return CBOR{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", constants.ErrUnknownCodec, name)
	}
}

// ForPath picks a codec from the extension of path.
func ForPath(path string) (Codec, error) {
	return ByName(strings.TrimPrefix(filepath.Ext(path), "."))
}

// Encode marshals the public shape of e.
func Encode[P any](m Marshaler, e model.Entity[P]) ([]byte, error) {
	if m == nil {
		return nil, constants.ErrNoMarshaler
	}
	return m.Marshal(e.ToPublic())
}

// Decode unmarshals a public shape and builds the live entity from it.
func Decode[P, E any, PE model.PtrEntity[P, E]](u Unmarshaler, data []byte) (*E, error) {
	if u == nil {
		return nil, constants.ErrNoUnmarshaler
	}

	var src P
	if err := u.Unmarshal(data, &src); err != nil {
		return nil, err
	}
	return model.Load[P, E, PE](&src)
}

// Write streams the public shape of e to w.
func Write[P any](w io.Writer, m Marshaler, e model.Entity[P]) error {
	if m == nil {
		return constants.ErrNoMarshaler
	}
	return m.NewEncoder(w).Encode(e.ToPublic())
}

// Read decodes one public shape from r and builds the live entity from it.
func Read[P, E any, PE model.PtrEntity[P, E]](r io.Reader, u Unmarshaler) (*E, error) {
	if u == nil {
		return nil, constants.ErrNoUnmarshaler
	}

	var src P
	if err := u.NewDecoder(r).Decode(&src); err != nil {
		return nil, err
	}
	return model.Load[P, E, PE](&src)
}
