package noun

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Ensure NounClass plugs into the usual encoders.
var (
	_ json.Marshaler        = NounClass(0)
	_ json.Unmarshaler      = (*NounClass)(nil)
	_ msgpack.CustomEncoder = NounClass(0)
	_ msgpack.CustomDecoder = (*NounClass)(nil)
)

// MarshalText encodes c as its class number label. Unknown encodes as
// the empty string.
func (c NounClass) MarshalText() ([]byte, error) {
	if c == Unknown {
		return []byte{}, nil
	}
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnrecognizedTag, uint8(c))
	}
	return []byte(c.Number()), nil
}

// UnmarshalText accepts a class number label or a variant name alias.
// The empty string decodes to Unknown.
func (c *NounClass) UnmarshalText(text []byte) error {
	if len(bytes.TrimSpace(text)) == 0 {
		*c = Unknown
		return nil
	}
	v, err := ParseLabel(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// MarshalJSON encodes c as its label string.
func (c NounClass) MarshalJSON() ([]byte, error) {
	text, err := c.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON accepts a label, an alias or a numeric tag.
func (c *NounClass) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		return c.UnmarshalText([]byte(s))
	}
	var tag int64
	if err := json.Unmarshal(data, &tag); err != nil {
		return fmt.Errorf("decode class: %w", err)
	}
	if tag < 0 || tag > 255 {
		return fmt.Errorf("%w: %d", ErrUnrecognizedTag, tag)
	}
	v, err := FromTag(uint8(tag))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// EncodeMsgpack writes the numeric tag. Unknown is written as 0.
func (c NounClass) EncodeMsgpack(enc *msgpack.Encoder) error {
	if c != Unknown && !c.Valid() {
		return fmt.Errorf("%w: %d", ErrUnrecognizedTag, uint8(c))
	}
	return enc.EncodeUint8(c.Tag())
}

// DecodeMsgpack reads a numeric tag written by EncodeMsgpack.
func (c *NounClass) DecodeMsgpack(dec *msgpack.Decoder) error {
	tag, err := dec.DecodeUint8()
	if err != nil {
		return err
	}
	if tag == 0 {
		*c = Unknown
		return nil
	}
	v, err := FromTag(tag)
	if err != nil {
		return err
	}
	*c = v
	return nil
}
