package constants

import "errors"

// Errors
var (
	ErrNilValue   = errors.New("nil value")
	ErrNotFound   = errors.New("value not found")
	ErrEmpty      = errors.New("container is empty")
	ErrKeyInUse   = errors.New("key already in use")
	ErrDetachRoot = errors.New("cannot detach the root node")
)

var (
	ErrInvalidField       = errors.New("invalid field")
	ErrUnsupportedVersion = errors.New("unsupported schema version")
	ErrNoMarshaler        = errors.New("marshaler is not set")
	ErrNoUnmarshaler      = errors.New("unmarshaler is not set")
	ErrUnknownCodec       = errors.New("unknown codec")
	ErrNoDocument         = errors.New("no such document")
)

var (
	ErrAlreadyDrawn = errors.New("view is already drawn")
	ErrNotDrawn     = errors.New("view is not drawn")
)
