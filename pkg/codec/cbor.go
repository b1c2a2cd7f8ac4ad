package codec

import (
	"io"
	"sync"

	"github.com/fxamacker/cbor/v2"
)

// CBOR encodes with github.com/fxamacker/cbor using deterministic encoding.
type CBOR struct{}

var cborModes = sync.OnceValues(func() (cbor.EncMode, cbor.DecMode) {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	dm, err := cbor.DecOptions{
		DupMapKey: cbor.DupMapKeyEnforcedAPF,
	}.DecMode()
	if err != nil {
		panic(err)
	}
	return em, dm
})

func getCborEncoder() cbor.EncMode {
	em, _ := cborModes()
	return em
}

func getCborDecoder() cbor.DecMode {
	_, dm := cborModes()
	return dm
}

func (CBOR) Name() string { return "cbor" }

func (CBOR) Marshal(v any) ([]byte, error) {
	return getCborEncoder().Marshal(v)
}

func (CBOR) NewEncoder(w io.Writer) Encoder {
	return getCborEncoder().NewEncoder(w)
}

func (CBOR) Unmarshal(data []byte, dst any) error {
	return getCborDecoder().Unmarshal(data, dst)
}

func (CBOR) NewDecoder(r io.Reader) Decoder {
	return getCborDecoder().NewDecoder(r)
}
