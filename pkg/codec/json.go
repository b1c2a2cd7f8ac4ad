package codec

import (
	"errors"
	"io"

	"github.com/buger/jsonparser"
	json "github.com/goccy/go-json"
)

// JSON encodes with github.com/goccy/go-json.
type JSON struct{}

func (JSON) Name() string { return "json" }

func (JSON) Marshal(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

func (JSON) NewEncoder(w io.Writer) Encoder {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc
}

func (JSON) Unmarshal(data []byte, dst any) error {
	return json.Unmarshal(data, dst)
}

func (JSON) NewDecoder(r io.Reader) Decoder {
	return json.NewDecoder(r)
}

// PeekVersion reads the top-level "version" of a JSON document without
// decoding the rest of it. A document without one is version 0.
func PeekVersion(data []byte) (int64, error) {
	v, err := jsonparser.GetInt(data, "version")
	if errors.Is(err, jsonparser.KeyPathNotFoundError) {
		return 0, nil
	}
	return v, err
}
