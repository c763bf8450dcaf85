// Package marshal packs native Go values into the typed byte sequences the
// store's comparators and validators understand, and unpacks them back.
// The byte layouts must match the store's native ordering semantics exactly;
// a wrong layout silently corrupts range queries rather than failing.
package marshal

import (
	"encoding/binary"
	"math"
	"strings"

	"github.com/google/uuid"
)

// Tag identifies one of the closed set of primitive wire types a comparator
// or validator can declare.
type Tag uint8

const (
	Bytes Tag = iota
	Int64
	Int32
	UTF8
	Ascii
	TimeUUID
	LexicalUUID
)

func (t Tag) String() string {
	switch t {
	case Int64:
		return "LongType"
	case Int32:
		return "IntegerType"
	case UTF8:
		return "UTF8Type"
	case Ascii:
		return "AsciiType"
	case TimeUUID:
		return "TimeUUIDType"
	case LexicalUUID:
		return "LexicalUUIDType"
	default:
		return "BytesType"
	}
}

// ParseTypeName resolves a fully-qualified type-class path from the schema
// catalog to a Tag. Only the trailing path component matters; anything
// unrecognized or absent falls back to Bytes.
func ParseTypeName(name string) Tag {
	if name == "" {
		return Bytes
	}
	idx := strings.LastIndex(name, ".")
	if idx == -1 {
		return Bytes
	}
	switch name[idx+1:] {
	case "LongType":
		return Int64
	case "IntegerType":
		return Int32
	case "UTF8Type":
		return UTF8
	case "AsciiType":
		return Ascii
	case "TimeUUIDType":
		return TimeUUID
	case "LexicalUUIDType":
		return LexicalUUID
	default:
		return Bytes
	}
}

// Pack converts a native value into the byte sequence the store expects for
// the given tag. It fails with ErrInvalidValue when the value cannot
// represent the target type; it never coerces silently.
func Pack(v interface{}, tag Tag) ([]byte, error) {
	switch tag {
	case Int64:
		n, ok := toInt64(v)
		if !ok {
			return nil, newError(ErrInvalidValue, "%T cannot be packed as a 64-bit integer", v)
		}
		b := make([]byte, 8)
		binary.BigEndian.PutUint64(b, uint64(n))
		return b, nil
	case Int32:
		n, ok := toInt64(v)
		if !ok || n > math.MaxInt32 || n < math.MinInt32 {
			return nil, newError(ErrInvalidValue, "%v (%T) cannot be packed as a 32-bit integer", v, v)
		}
		b := make([]byte, 4)
		binary.BigEndian.PutUint32(b, uint32(int32(n)))
		return b, nil
	case Ascii, UTF8:
		switch s := v.(type) {
		case string:
			return []byte(s), nil
		case []byte:
			return s, nil
		}
		return nil, newError(ErrInvalidValue, "%T cannot be packed as a string type", v)
	case TimeUUID, LexicalUUID:
		u, ok := toUUID(v)
		if !ok {
			return nil, newError(ErrInvalidValue, "%v (%T) has no 16-byte UUID representation", v, v)
		}
		b := make([]byte, 16)
		copy(b, u[:])
		return b, nil
	default: // Bytes
		switch s := v.(type) {
		case []byte:
			return s, nil
		case string:
			return []byte(s), nil
		}
		return nil, newError(ErrInvalidValue, "%T cannot be packed as raw bytes", v)
	}
}

// Unpack converts a wire byte sequence back to the native value for the
// given tag. It is the exact inverse of Pack; the only failure mode is a
// byte length that does not match the type, which yields ErrMalformedValue.
func Unpack(b []byte, tag Tag) (interface{}, error) {
	switch tag {
	case Int64:
		if len(b) != 8 {
			return nil, newError(ErrMalformedValue, "LongType expects 8 bytes, got %d", len(b))
		}
		return int64(binary.BigEndian.Uint64(b)), nil
	case Int32:
		if len(b) != 4 {
			return nil, newError(ErrMalformedValue, "IntegerType expects 4 bytes, got %d", len(b))
		}
		return int32(binary.BigEndian.Uint32(b)), nil
	case Ascii, UTF8:
		return string(b), nil
	case TimeUUID, LexicalUUID:
		if len(b) != 16 {
			return nil, newError(ErrMalformedValue, "%s expects 16 bytes, got %d", tag, len(b))
		}
		u, err := uuid.FromBytes(b)
		if err != nil {
			return nil, newError(ErrMalformedValue, "%v", err)
		}
		return u, nil
	default: // Bytes
		return b, nil
	}
}

func toInt64(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		if uint64(n) > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	}
	return 0, false
}

func toUUID(v interface{}) (uuid.UUID, bool) {
	switch u := v.(type) {
	case uuid.UUID:
		return u, true
	case [16]byte:
		return u, true
	case []byte:
		if len(u) == 16 {
			parsed, err := uuid.FromBytes(u)
			return parsed, err == nil
		}
	}
	return uuid.UUID{}, false
}
