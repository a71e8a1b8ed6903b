package wire

import (
	"bytes"
	"unicode/utf8"

	"github.com/go-i2p/logger"
	"github.com/samber/oops"
	"google.golang.org/protobuf/encoding/protowire"
)

var log = logger.GetGoI2PLogger()

// Decoder is a read cursor over one encoded message. It is only valid inside the
// FieldFunc passed to Decode.
type Decoder struct {
	b   []byte
	num protowire.Number
}

// FieldFunc handles one field of a message. Implementations switch on num, assign the
// recognised fields through the Decoder accessors and call Skip for everything else.
// A recognised field number carrying a different wire type is an unknown field: the
// accessors skip its value and leave the destination untouched.
type FieldFunc func(d *Decoder, num protowire.Number, typ protowire.Type) error

// Decode runs fn for every field found in data. The first error aborts the loop and
// is returned wrapped with the message name and field number.
func Decode(data []byte, name string, fn FieldFunc) error {
	d := &Decoder{b: data}
	for len(d.b) > 0 {
		num, typ, n := protowire.ConsumeTag(d.b)
		if n < 0 {
			return oops.Wrapf(consumeError(n), "%s: tag", name)
		}
		d.b = d.b[n:]
		d.num = num
		if err := fn(d, num, typ); err != nil {
			return oops.Wrapf(err, "%s: field %d", name, num)
		}
	}
	return nil
}

// Skip consumes the value of an unrecognised field according to its wire type.
func (d *Decoder) Skip(num protowire.Number, typ protowire.Type) error {
	n := protowire.ConsumeFieldValue(num, typ, d.b)
	if n < 0 {
		return consumeError(n)
	}
	d.b = d.b[n:]
	return nil
}

// expect reports whether the current value has wire type want. Otherwise the value is
// skipped as unknown.
func (d *Decoder) expect(typ, want protowire.Type) (bool, error) {
	if typ == want {
		return true, nil
	}
	log.WithFields(logger.Fields{
		"at":    "(Decoder) expect",
		"field": d.num,
		"got":   typ,
		"want":  want,
	}).Debug("skipping field with unexpected wire type")
	return false, d.Skip(d.num, typ)
}

func (d *Decoder) rawBytes(typ protowire.Type) ([]byte, bool, error) {
	if ok, err := d.expect(typ, protowire.BytesType); !ok {
		return nil, false, err
	}
	v, n := protowire.ConsumeBytes(d.b)
	if n < 0 {
		return nil, false, consumeError(n)
	}
	d.b = d.b[n:]
	return v, true, nil
}

func (d *Decoder) varint(typ protowire.Type) (uint64, bool, error) {
	if ok, err := d.expect(typ, protowire.VarintType); !ok {
		return 0, false, err
	}
	v, n := protowire.ConsumeVarint(d.b)
	if n < 0 {
		return 0, false, consumeError(n)
	}
	d.b = d.b[n:]
	return v, true, nil
}

func (d *Decoder) str(typ protowire.Type) (string, bool, error) {
	v, ok, err := d.rawBytes(typ)
	if !ok {
		return "", false, err
	}
	if !utf8.Valid(v) {
		return "", false, ErrInvalidUTF8
	}
	return string(v), true, nil
}

// String reads a length-delimited UTF-8 string into p.
func (d *Decoder) String(typ protowire.Type, p *string) error {
	v, ok, err := d.str(typ)
	if ok {
		*p = v
	}
	return err
}

// AppendString reads a string and appends it to vs.
func (d *Decoder) AppendString(typ protowire.Type, vs []string) ([]string, error) {
	v, ok, err := d.str(typ)
	if !ok {
		return vs, err
	}
	return append(vs, v), nil
}

// Bytes reads a length-delimited byte string into p. The result does not alias the
// input.
func (d *Decoder) Bytes(typ protowire.Type, p *[]byte) error {
	v, ok, err := d.rawBytes(typ)
	if ok {
		*p = bytes.Clone(v)
	}
	return err
}

// AppendBytes reads a byte string and appends it to vs.
func (d *Decoder) AppendBytes(typ protowire.Type, vs [][]byte) ([][]byte, error) {
	v, ok, err := d.rawBytes(typ)
	if !ok {
		return vs, err
	}
	return append(vs, bytes.Clone(v)), nil
}

// Uint64 reads a varint into p.
func (d *Decoder) Uint64(typ protowire.Type, p *uint64) error {
	v, ok, err := d.varint(typ)
	if ok {
		*p = v
	}
	return err
}

// Bool reads a varint encoded bool into p; any non-zero value is true.
func (d *Decoder) Bool(typ protowire.Type, p *bool) error {
	v, ok, err := d.varint(typ)
	if ok {
		*p = protowire.DecodeBool(v)
	}
	return err
}

// Enum reads a varint encoded enum value into p. Values outside the known set are
// kept as is.
func Enum[E ~int32](d *Decoder, typ protowire.Type, p *E) error {
	v, ok, err := d.varint(typ)
	if ok {
		*p = E(int32(v))
	}
	return err
}

// Fixed32 reads a little-endian fixed32 into p.
func (d *Decoder) Fixed32(typ protowire.Type, p *uint32) error {
	if ok, err := d.expect(typ, protowire.Fixed32Type); !ok {
		return err
	}
	v, n := protowire.ConsumeFixed32(d.b)
	if n < 0 {
		return consumeError(n)
	}
	d.b = d.b[n:]
	*p = v
	return nil
}

// StringMap reads one map<string, string> entry and stores it into m, allocating m
// when nil. A later entry with the same key overwrites the earlier one; a missing key
// or value decodes as the empty string.
func (d *Decoder) StringMap(typ protowire.Type, m map[string]string) (map[string]string, error) {
	entry, ok, err := d.rawBytes(typ)
	if !ok {
		return m, err
	}
	var key, value string
	err = Decode(entry, "map entry", func(d *Decoder, num protowire.Number, typ protowire.Type) error {
		switch num {
		case 1:
			return d.String(typ, &key)
		case 2:
			return d.String(typ, &value)
		default:
			return d.Skip(num, typ)
		}
	})
	if err != nil {
		return m, err
	}
	if m == nil {
		m = make(map[string]string)
	}
	m[key] = value
	return m, nil
}

// Unmarshaler is implemented by every schema type.
type Unmarshaler interface {
	UnmarshalBinary(data []byte) error
}

// ReadMessage reads a length-delimited nested message into a new T. It returns nil
// and no error when the value had another wire type and was skipped.
func ReadMessage[T any, PT interface {
	*T
	Unmarshaler
}](d *Decoder, typ protowire.Type) (PT, error) {
	raw, ok, err := d.rawBytes(typ)
	if !ok {
		return nil, err
	}
	m := PT(new(T))
	if err := m.UnmarshalBinary(raw); err != nil {
		return nil, err
	}
	return m, nil
}

// ReadRepeated reads a nested message and appends it to ms.
func ReadRepeated[T any, PT interface {
	*T
	Unmarshaler
}](d *Decoder, typ protowire.Type, ms []PT) ([]PT, error) {
	m, err := ReadMessage[T, PT](d, typ)
	if m == nil {
		return ms, err
	}
	return append(ms, m), nil
}
