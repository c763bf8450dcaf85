package marshal

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestParseTypeName(t *testing.T) {
	tests := map[string]struct {
		input    string
		expected Tag
	}{
		"fully qualified long": {
			input:    "org.apache.cassandra.db.marshal.LongType",
			expected: Int64,
		},
		"fully qualified integer": {
			input:    "org.apache.cassandra.db.marshal.IntegerType",
			expected: Int32,
		},
		"fully qualified utf8": {
			input:    "org.apache.cassandra.db.marshal.UTF8Type",
			expected: UTF8,
		},
		"fully qualified ascii": {
			input:    "org.apache.cassandra.db.marshal.AsciiType",
			expected: Ascii,
		},
		"fully qualified time uuid": {
			input:    "org.apache.cassandra.db.marshal.TimeUUIDType",
			expected: TimeUUID,
		},
		"fully qualified lexical uuid": {
			input:    "org.apache.cassandra.db.marshal.LexicalUUIDType",
			expected: LexicalUUID,
		},
		"fully qualified bytes": {
			input:    "org.apache.cassandra.db.marshal.BytesType",
			expected: Bytes,
		},
		"empty string falls back to bytes": {
			input:    "",
			expected: Bytes,
		},
		"bare name without package falls back to bytes": {
			input:    "LongType",
			expected: Bytes,
		},
		"unknown trailing component falls back to bytes": {
			input:    "org.apache.cassandra.db.marshal.CounterColumnType",
			expected: Bytes,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, tc.expected, ParseTypeName(tc.input))
		})
	}
}

func TestPackInt64Layout(t *testing.T) {
	req := require.New(t)

	b, err := Pack(int64(1), Int64)
	req.NoError(err)
	req.Equal([]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01}, b)

	v, err := Unpack(b, Int64)
	req.NoError(err)
	req.Equal(int64(1), v)
}

func TestPackUnpackRoundTrip(t *testing.T) {
	u := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

	tests := map[string]struct {
		tag      Tag
		value    interface{}
		expected interface{}
	}{
		"int64 positive": {
			tag:      Int64,
			value:    int64(982734928347),
			expected: int64(982734928347),
		},
		"int64 negative": {
			tag:      Int64,
			value:    int64(-42),
			expected: int64(-42),
		},
		"int64 from plain int": {
			tag:      Int64,
			value:    7,
			expected: int64(7),
		},
		"int32 positive": {
			tag:      Int32,
			value:    int32(2147483647),
			expected: int32(2147483647),
		},
		"int32 negative": {
			tag:      Int32,
			value:    int32(-2147483648),
			expected: int32(-2147483648),
		},
		"utf8": {
			tag:      UTF8,
			value:    "héllo wörld",
			expected: "héllo wörld",
		},
		"ascii": {
			tag:      Ascii,
			value:    "plain",
			expected: "plain",
		},
		"time uuid": {
			tag:      TimeUUID,
			value:    u,
			expected: u,
		},
		"lexical uuid": {
			tag:      LexicalUUID,
			value:    u,
			expected: u,
		},
		"bytes passthrough": {
			tag:      Bytes,
			value:    []byte{0xde, 0xad, 0xbe, 0xef},
			expected: []byte{0xde, 0xad, 0xbe, 0xef},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)

			packed, err := Pack(tc.value, tc.tag)
			req.NoError(err)

			unpacked, err := Unpack(packed, tc.tag)
			req.NoError(err)
			req.Equal(tc.expected, unpacked)
		})
	}
}

func TestPackInvalidValues(t *testing.T) {
	tests := map[string]struct {
		tag   Tag
		value interface{}
	}{
		"string under long type": {
			tag:   Int64,
			value: "not a number",
		},
		"int64 overflowing int32": {
			tag:   Int32,
			value: int64(1) << 40,
		},
		"uint64 overflowing int64": {
			tag:   Int64,
			value: uint64(1) << 63,
		},
		"int under utf8 type": {
			tag:   UTF8,
			value: 42,
		},
		"short byte slice under uuid type": {
			tag:   TimeUUID,
			value: []byte{0x01, 0x02},
		},
		"int under lexical uuid type": {
			tag:   LexicalUUID,
			value: 42,
		},
		"struct under bytes type": {
			tag:   Bytes,
			value: struct{}{},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)

			_, err := Pack(tc.value, tc.tag)
			req.Error(err)
			req.ErrorIs(err, ErrInvalidValue)
		})
	}
}

func TestUnpackMalformedLengths(t *testing.T) {
	tests := map[string]struct {
		tag   Tag
		input []byte
	}{
		"seven bytes under long type": {
			tag:   Int64,
			input: make([]byte, 7),
		},
		"eight bytes under integer type": {
			tag:   Int32,
			input: make([]byte, 8),
		},
		"fifteen bytes under time uuid": {
			tag:   TimeUUID,
			input: make([]byte, 15),
		},
		"empty under lexical uuid": {
			tag:   LexicalUUID,
			input: nil,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)

			_, err := Unpack(tc.input, tc.tag)
			req.Error(err)
			req.ErrorIs(err, ErrMalformedValue)
		})
	}
}
