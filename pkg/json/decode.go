package json

import "io"

// A Decoder reads one JSON-family document from an input stream and
// unmarshals it into a Go value. Unlike encoding/json's Decoder, it does
// not support reading multiple concatenated values from the same
// stream — it reads the stream to completion on the first Decode call,
// matching this package's one-Reader-per-document model.
type Decoder struct {
	rd   io.Reader
	opts Options
}

// NewDecoder returns a Decoder reading strict JSON from rd.
func NewDecoder(rd io.Reader) *Decoder {
	return &Decoder{rd: rd, opts: Json}
}

// NewDecoderOptions returns a Decoder reading from rd under opts.
func NewDecoderOptions(rd io.Reader, opts Options) *Decoder {
	return &Decoder{rd: rd, opts: opts}
}

// Decode reads rd to completion and unmarshals it into v.
func (d *Decoder) Decode(v interface{}) error {
	data, err := io.ReadAll(d.rd)
	if err != nil {
		return err
	}
	return UnmarshalOptions(data, v, d.opts)
}
