package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

// sample is a small message used to exercise the helpers end to end.
type sample struct {
	Name    string
	Blob    []byte
	Flag    bool
	Count   uint64
	Kind    int32
	Code    uint32
	Paths   []string
	Chunks  [][]byte
	Params  map[string]string
	Child   *sample
	Entries []*sample
}

func (s *sample) Size() int {
	if s == nil {
		return 0
	}
	n := SizeString(1, s.Name) +
		SizeBytes(2, s.Blob) +
		SizeBool(3, s.Flag) +
		SizeUint64(4, s.Count) +
		SizeEnum(5, s.Kind) +
		SizeFixed32(6, s.Code) +
		SizeRepeatedString(7, s.Paths) +
		SizeRepeatedBytes(8, s.Chunks) +
		SizeStringMap(9, s.Params) +
		SizeRepeated(11, s.Entries)
	if s.Child != nil {
		n += SizeMessage(10, s.Child)
	}
	return n
}

func (s *sample) AppendTo(b []byte) []byte {
	if s == nil {
		return b
	}
	b = AppendString(b, 1, s.Name)
	b = AppendBytes(b, 2, s.Blob)
	b = AppendBool(b, 3, s.Flag)
	b = AppendUint64(b, 4, s.Count)
	b = AppendEnum(b, 5, s.Kind)
	b = AppendFixed32(b, 6, s.Code)
	b = AppendRepeatedString(b, 7, s.Paths)
	b = AppendRepeatedBytes(b, 8, s.Chunks)
	b = AppendStringMap(b, 9, s.Params)
	if s.Child != nil {
		b = AppendMessage(b, 10, s.Child)
	}
	b = AppendRepeated(b, 11, s.Entries)
	return b
}

func (s *sample) UnmarshalBinary(data []byte) error {
	*s = sample{}
	return Decode(data, "sample", func(d *Decoder, num protowire.Number, typ protowire.Type) (err error) {
		switch num {
		case 1:
			err = d.String(typ, &s.Name)
		case 2:
			err = d.Bytes(typ, &s.Blob)
		case 3:
			err = d.Bool(typ, &s.Flag)
		case 4:
			err = d.Uint64(typ, &s.Count)
		case 5:
			err = Enum(d, typ, &s.Kind)
		case 6:
			err = d.Fixed32(typ, &s.Code)
		case 7:
			s.Paths, err = d.AppendString(typ, s.Paths)
		case 8:
			s.Chunks, err = d.AppendBytes(typ, s.Chunks)
		case 9:
			s.Params, err = d.StringMap(typ, s.Params)
		case 10:
			var v *sample
			if v, err = ReadMessage[sample](d, typ); v != nil {
				s.Child = v
			}
		case 11:
			s.Entries, err = ReadRepeated[sample](d, typ, s.Entries)
		default:
			err = d.Skip(num, typ)
		}
		return err
	})
}

func TestRoundTrip(t *testing.T) {
	in := &sample{
		Name:   "Device.",
		Blob:   []byte{0xde, 0xad},
		Flag:   true,
		Count:  1 << 40,
		Kind:   3,
		Code:   7004,
		Paths:  []string{"a", "", "c"},
		Chunks: [][]byte{{1}, {2, 3}},
		Params: map[string]string{"k1": "v1", "k2": ""},
		Child:  &sample{Name: "child"},
		Entries: []*sample{
			{Code: 1},
			{Paths: []string{"x"}},
		},
	}
	data := Marshal(in)
	require.Len(t, data, in.Size())

	out := &sample{}
	require.NoError(t, out.UnmarshalBinary(data))
	assert.Equal(t, in, out)
}

func TestDefaultsAreOmitted(t *testing.T) {
	assert.Empty(t, Marshal(&sample{}))
	assert.Equal(t, 0, (*sample)(nil).Size())

	// A set but empty nested message is still emitted.
	data := Marshal(&sample{Child: &sample{}})
	assert.Equal(t, []byte{0x52, 0x00}, data)
}

func TestFixed32Encoding(t *testing.T) {
	data := Marshal(&sample{Code: 1})
	assert.Equal(t, []byte{0x35, 0x01, 0x00, 0x00, 0x00}, data)
}

func TestNegativeEnumSize(t *testing.T) {
	s := &sample{Kind: -1}
	data := Marshal(s)
	assert.Len(t, data, 11)
	assert.Equal(t, len(data), s.Size())

	out := &sample{}
	require.NoError(t, out.UnmarshalBinary(data))
	assert.Equal(t, int32(-1), out.Kind)
}

func TestUnknownFieldsAreSkipped(t *testing.T) {
	var b []byte
	b = protowire.AppendTag(b, 99, protowire.VarintType)
	b = protowire.AppendVarint(b, 12345)
	b = AppendString(b, 1, "name")
	b = protowire.AppendTag(b, 100, protowire.BytesType)
	b = protowire.AppendBytes(b, []byte("ignored"))
	b = protowire.AppendTag(b, 101, protowire.Fixed64Type)
	b = protowire.AppendFixed64(b, 1)
	b = protowire.AppendTag(b, 102, protowire.Fixed32Type)
	b = protowire.AppendFixed32(b, 1)

	out := &sample{}
	require.NoError(t, out.UnmarshalBinary(b))
	assert.Equal(t, &sample{Name: "name"}, out)
}

func TestDecodeErrors(t *testing.T) {
	t.Run("TruncatedLength", func(t *testing.T) {
		b := AppendString(nil, 1, "hello")
		err := (&sample{}).UnmarshalBinary(b[:len(b)-1])
		assert.ErrorIs(t, err, ErrTruncated)
	})

	t.Run("TruncatedVarint", func(t *testing.T) {
		err := (&sample{}).UnmarshalBinary([]byte{0x20, 0x80})
		assert.ErrorIs(t, err, ErrTruncated)
	})

	t.Run("TruncatedTag", func(t *testing.T) {
		err := (&sample{}).UnmarshalBinary([]byte{0x80})
		assert.ErrorIs(t, err, ErrTruncated)
	})

	t.Run("InvalidUTF8", func(t *testing.T) {
		var b []byte
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendBytes(b, []byte{0xff, 0xfe})
		err := (&sample{}).UnmarshalBinary(b)
		assert.ErrorIs(t, err, ErrInvalidUTF8)
	})

	t.Run("FieldNumberZero", func(t *testing.T) {
		err := (&sample{}).UnmarshalBinary([]byte{0x00, 0x00})
		assert.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("NestedErrorPropagates", func(t *testing.T) {
		child := []byte{0x0a, 0x05, 'a'}
		var b []byte
		b = protowire.AppendTag(b, 10, protowire.BytesType)
		b = protowire.AppendBytes(b, child)
		err := (&sample{}).UnmarshalBinary(b)
		assert.ErrorIs(t, err, ErrTruncated)
	})
}

func TestWireTypeMismatchIsSkipped(t *testing.T) {
	known := func(b []byte) []byte {
		b = AppendString(b, 1, "name")
		return AppendFixed32(b, 6, 7)
	}
	want := &sample{}
	require.NoError(t, want.UnmarshalBinary(known(nil)))

	mismatched := []struct {
		name string
		num  protowire.Number
		typ  protowire.Type
		val  func([]byte) []byte
	}{
		{"StringAsVarint", 1, protowire.VarintType, func(b []byte) []byte { return protowire.AppendVarint(b, 1) }},
		{"BytesAsFixed64", 2, protowire.Fixed64Type, func(b []byte) []byte { return protowire.AppendFixed64(b, 1) }},
		{"BoolAsBytes", 3, protowire.BytesType, func(b []byte) []byte { return protowire.AppendBytes(b, []byte("yes")) }},
		{"Uint64AsFixed32", 4, protowire.Fixed32Type, func(b []byte) []byte { return protowire.AppendFixed32(b, 1) }},
		{"EnumAsBytes", 5, protowire.BytesType, func(b []byte) []byte { return protowire.AppendBytes(b, nil) }},
		{"Fixed32AsVarint", 6, protowire.VarintType, func(b []byte) []byte { return protowire.AppendVarint(b, 99) }},
		{"RepeatedStringAsVarint", 7, protowire.VarintType, func(b []byte) []byte { return protowire.AppendVarint(b, 1) }},
		{"RepeatedBytesAsVarint", 8, protowire.VarintType, func(b []byte) []byte { return protowire.AppendVarint(b, 1) }},
		{"MapAsFixed32", 9, protowire.Fixed32Type, func(b []byte) []byte { return protowire.AppendFixed32(b, 1) }},
		{"MessageAsVarint", 10, protowire.VarintType, func(b []byte) []byte { return protowire.AppendVarint(b, 1) }},
		{"RepeatedMessageAsFixed64", 11, protowire.Fixed64Type, func(b []byte) []byte { return protowire.AppendFixed64(b, 1) }},
	}
	for _, tt := range mismatched {
		t.Run(tt.name, func(t *testing.T) {
			// The mismatched value sits after the known fields so it cannot clobber them.
			b := known(nil)
			b = protowire.AppendTag(b, tt.num, tt.typ)
			b = tt.val(b)

			out := &sample{}
			require.NoError(t, out.UnmarshalBinary(b))
			assert.Equal(t, want, out)
		})
	}

	t.Run("TruncatedSkippedValue", func(t *testing.T) {
		b := protowire.AppendTag(nil, 1, protowire.Fixed64Type)
		b = append(b, 0x01, 0x02)
		err := (&sample{}).UnmarshalBinary(b)
		assert.ErrorIs(t, err, ErrTruncated)
	})
}

func TestStringMapLastEntryWins(t *testing.T) {
	var b []byte
	b = AppendStringMap(b, 9, map[string]string{"k": "first"})
	b = AppendStringMap(b, 9, map[string]string{"k": "second"})

	out := &sample{}
	require.NoError(t, out.UnmarshalBinary(b))
	assert.Equal(t, map[string]string{"k": "second"}, out.Params)
}

func TestStringMapMissingValue(t *testing.T) {
	var entry []byte
	entry = AppendString(entry, 1, "key")
	var b []byte
	b = protowire.AppendTag(b, 9, protowire.BytesType)
	b = protowire.AppendBytes(b, entry)

	out := &sample{}
	require.NoError(t, out.UnmarshalBinary(b))
	assert.Equal(t, map[string]string{"key": ""}, out.Params)
}

func TestStringMapIsDeterministic(t *testing.T) {
	m := map[string]string{"c": "3", "a": "1", "b": "2"}
	first := AppendStringMap(nil, 1, m)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, AppendStringMap(nil, 1, m))
	}
}
