package wire

import (
	"maps"
	"slices"

	"google.golang.org/protobuf/encoding/protowire"
)

// Message is implemented by every schema type. Size must return exactly the number
// of bytes AppendTo appends. Both must accept a nil receiver, which encodes as an
// empty message.
type Message interface {
	Size() int
	AppendTo(b []byte) []byte
}

// Marshal encodes m into a freshly allocated buffer of exactly m.Size() bytes.
func Marshal(m Message) []byte {
	return m.AppendTo(make([]byte, 0, m.Size()))
}

func sizeLen(num protowire.Number, n int) int {
	return protowire.SizeTag(num) + protowire.SizeBytes(n)
}

// SizeString returns the encoded size of a singular string field, 0 when v is empty.
func SizeString(num protowire.Number, v string) int {
	if v == "" {
		return 0
	}
	return sizeLen(num, len(v))
}

// AppendString appends a singular string field unless v is empty.
func AppendString(b []byte, num protowire.Number, v string) []byte {
	if v == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}

// SizeBytes returns the encoded size of a singular bytes field, 0 when v is empty.
func SizeBytes(num protowire.Number, v []byte) int {
	if len(v) == 0 {
		return 0
	}
	return sizeLen(num, len(v))
}

// AppendBytes appends a singular bytes field unless v is empty.
func AppendBytes(b []byte, num protowire.Number, v []byte) []byte {
	if len(v) == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}

// SizeBool returns the encoded size of a bool field, 0 when v is false.
func SizeBool(num protowire.Number, v bool) int {
	if !v {
		return 0
	}
	return protowire.SizeTag(num) + 1
}

// AppendBool appends a bool field unless v is false.
func AppendBool(b []byte, num protowire.Number, v bool) []byte {
	if !v {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, 1)
}

// SizeUint64 returns the encoded size of a uint64 varint field, 0 when v is zero.
func SizeUint64(num protowire.Number, v uint64) int {
	if v == 0 {
		return 0
	}
	return protowire.SizeTag(num) + protowire.SizeVarint(v)
}

// AppendUint64 appends a uint64 varint field unless v is zero.
func AppendUint64(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

// SizeEnum returns the encoded size of an enum field, 0 for the zero variant.
// Negative values are sign extended to ten bytes as protobuf requires.
func SizeEnum(num protowire.Number, v int32) int {
	if v == 0 {
		return 0
	}
	return protowire.SizeTag(num) + protowire.SizeVarint(uint64(int64(v)))
}

// AppendEnum appends an enum field unless v is the zero variant.
func AppendEnum(b []byte, num protowire.Number, v int32) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(int64(v)))
}

// SizeFixed32 returns the encoded size of a fixed32 field, 0 when v is zero.
func SizeFixed32(num protowire.Number, v uint32) int {
	if v == 0 {
		return 0
	}
	return protowire.SizeTag(num) + protowire.SizeFixed32()
}

// AppendFixed32 appends a fixed32 field unless v is zero.
func AppendFixed32(b []byte, num protowire.Number, v uint32) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.Fixed32Type)
	return protowire.AppendFixed32(b, v)
}

// SizeRepeatedString returns the encoded size of a repeated string field. Every
// element is emitted, empty strings included.
func SizeRepeatedString(num protowire.Number, vs []string) int {
	n := 0
	for _, v := range vs {
		n += sizeLen(num, len(v))
	}
	return n
}

// AppendRepeatedString appends one tag+value pair per element.
func AppendRepeatedString(b []byte, num protowire.Number, vs []string) []byte {
	for _, v := range vs {
		b = protowire.AppendTag(b, num, protowire.BytesType)
		b = protowire.AppendString(b, v)
	}
	return b
}

// SizeRepeatedBytes returns the encoded size of a repeated bytes field.
func SizeRepeatedBytes(num protowire.Number, vs [][]byte) int {
	n := 0
	for _, v := range vs {
		n += sizeLen(num, len(v))
	}
	return n
}

// AppendRepeatedBytes appends one tag+value pair per element.
func AppendRepeatedBytes(b []byte, num protowire.Number, vs [][]byte) []byte {
	for _, v := range vs {
		b = protowire.AppendTag(b, num, protowire.BytesType)
		b = protowire.AppendBytes(b, v)
	}
	return b
}

// SizeMessage returns the encoded size of a length-prefixed nested message. Presence
// is decided by the caller: a nested message that is set is always emitted, even when
// it encodes to zero bytes.
func SizeMessage(num protowire.Number, m Message) int {
	return sizeLen(num, m.Size())
}

// AppendMessage appends m as a length-prefixed nested message.
func AppendMessage(b []byte, num protowire.Number, m Message) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	b = protowire.AppendVarint(b, uint64(m.Size()))
	return m.AppendTo(b)
}

// SizeRepeated returns the encoded size of a repeated nested message field.
func SizeRepeated[M Message](num protowire.Number, ms []M) int {
	n := 0
	for _, m := range ms {
		n += SizeMessage(num, m)
	}
	return n
}

// AppendRepeated appends every element of ms as a nested message.
func AppendRepeated[M Message](b []byte, num protowire.Number, ms []M) []byte {
	for _, m := range ms {
		b = AppendMessage(b, num, m)
	}
	return b
}

func sizeMapEntry(k, v string) int {
	return sizeLen(1, len(k)) + sizeLen(2, len(v))
}

// SizeStringMap returns the encoded size of a map<string, string> field.
func SizeStringMap(num protowire.Number, m map[string]string) int {
	n := 0
	for k, v := range m {
		n += sizeLen(num, sizeMapEntry(k, v))
	}
	return n
}

// AppendStringMap appends one entry sub-message per map element. Entries are emitted
// in sorted key order so that equal maps always produce identical bytes; receivers
// must not depend on that order.
func AppendStringMap(b []byte, num protowire.Number, m map[string]string) []byte {
	for _, k := range slices.Sorted(maps.Keys(m)) {
		v := m[k]
		b = protowire.AppendTag(b, num, protowire.BytesType)
		b = protowire.AppendVarint(b, uint64(sizeMapEntry(k, v)))
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendString(b, k)
		b = protowire.AppendTag(b, 2, protowire.BytesType)
		b = protowire.AppendString(b, v)
	}
	return b
}
