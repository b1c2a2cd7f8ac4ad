// Package store persists timeline documents in a bbolt database.
//
// Documents are stored in their public shape, encoded with the store's codec
// and tagged with the codec name, so a database written with one codec stays
// readable after switching to the other.
package store

import (
	"bytes"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	bolt "go.etcd.io/bbolt"

	"github.com/timelinekit/timelinekit/pkg/codec"
	"github.com/timelinekit/timelinekit/pkg/constants"
)

const permission = 0600

// initDB holds the bucket initializers run when a database is opened.
var initDB = map[string]func(*bolt.Tx) error{}

// Store is safe for concurrent use.
type Store struct {
	db    *bolt.DB
	codec codec.Codec
	log   zerolog.Logger
}

type options struct {
	codec   codec.Codec
	log     zerolog.Logger
	timeout time.Duration
}

type Option func(*options)

// WithCodec sets the codec new documents are written with. The default is CBOR.
func WithCodec(c codec.Codec) Option {
	return func(o *options) { o.codec = c }
}

func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithTimeout bounds how long Open waits for the database file lock.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// Open opens or creates the database at path.
func Open(path string, opts ...Option) (*Store, error) {
	o := options{
		codec:   codec.CBOR{},
		log:     zerolog.Nop(),
		timeout: time.Second,
	}
	for _, opt := range opts {
		opt(&o)
	}

	db, err := bolt.Open(path, permission, &bolt.Options{Timeout: o.timeout})
	if err != nil {
		return nil, fmt.Errorf("open store %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for name, fn := range initDB {
			if err := fn(tx); err != nil {
				return fmt.Errorf("failed to %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db, codec: o.codec, log: o.log}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// seal prefixes an encoded document with the codec name.
func (s *Store) seal(payload []byte) []byte {
	name := s.codec.Name()
	out := make([]byte, 0, len(name)+1+len(payload))
	out = append(out, name...)
	out = append(out, ':')
	return append(out, payload...)
}

// unseal returns the codec a document was written with and its payload.
func unseal(value []byte) (codec.Codec, []byte, error) {
	name, payload, ok := bytes.Cut(value, []byte{':'})
	if !ok {
		return nil, nil, fmt.Errorf("%w: document has no codec tag", constants.ErrUnknownCodec)
	}
	c, err := codec.ByName(string(name))
	if err != nil {
		return nil, nil, err
	}
	return c, payload, nil
}

func (s *Store) put(bucket, key string, value []byte) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucket)).Put([]byte(key), value)
	})
}

func (s *Store) get(bucket, key string) ([]byte, error) {
	var value []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucket)).Get([]byte(key))
		if v == nil {
			return fmt.Errorf("%s %q: %w", bucket, key, constants.ErrNoDocument)
		}
		// v is only valid inside the transaction.
		value = bytes.Clone(v)
		return nil
	})
	return value, err
}

func (s *Store) del(bucket, key string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucket))
		if b.Get([]byte(key)) == nil {
			return fmt.Errorf("%s %q: %w", bucket, key, constants.ErrNoDocument)
		}
		return b.Delete([]byte(key))
	})
}

func (s *Store) keys(bucket string) ([]string, error) {
	var keys []string
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucket)).ForEach(func(k, _ []byte) error {
			keys = append(keys, string(k))
			return nil
		})
	})
	return keys, err
}
