package marshal

import (
	"crypto/rand"
	"encoding/binary"
	"time"

	"github.com/google/uuid"
)

// Boundary selects how the non-timestamp bits of a generated time UUID are
// filled. Slice bounds need deterministic extremes so the encoded value
// compares at or below (start) or at or above (finish) every UUID sharing
// the same timestamp under the store's comparator.
type Boundary int

const (
	// BoundaryNone randomizes the clock-sequence and node bits. Suitable
	// for ordinary column names, not for slice bounds.
	BoundaryNone Boundary = iota
	// BoundaryStart zeroes the non-timestamp bits: the lowest UUID for the
	// timestamp, used as an inclusive lower slice bound.
	BoundaryStart
	// BoundaryFinish maximizes the non-timestamp bits: the highest UUID
	// for the timestamp, used as an inclusive upper slice bound.
	BoundaryFinish
)

// uuidEpochOffset is the number of 100ns intervals between the UUID epoch
// 1582-10-15 00:00:00 and the Unix epoch 1970-01-01 00:00:00.
const uuidEpochOffset = 0x01b21dd213814000

// FromTime builds a version-1 UUID whose timestamp field encodes t, with
// the remaining bits filled according to boundary. The RFC 4122 variant
// bits are set in every case so the result sorts with server-generated
// time UUIDs.
func FromTime(t time.Time, boundary Boundary) uuid.UUID {
	ts := t.UnixNano()/100 + uuidEpochOffset

	var u uuid.UUID
	binary.BigEndian.PutUint32(u[0:4], uint32(ts&0xffffffff))
	binary.BigEndian.PutUint16(u[4:6], uint16((ts>>32)&0xffff))
	binary.BigEndian.PutUint16(u[6:8], uint16((ts>>48)&0x0fff)|0x1000)

	switch boundary {
	case BoundaryStart:
		u[8] = 0x80 // variant bits only, clock sequence and node stay zero
	case BoundaryFinish:
		u[8] = 0x80 | 0x3f
		u[9] = 0xff
		for i := 10; i < 16; i++ {
			u[i] = 0xff
		}
	default:
		var r [8]byte
		_, _ = rand.Read(r[:])
		u[8] = 0x80 | (r[0] & 0x3f)
		u[9] = r[1]
		copy(u[10:], r[2:])
	}
	return u
}

// UUIDTime extracts the wall-clock time encoded in a version-1 UUID. It is
// the inverse of FromTime at 100ns precision.
func UUIDTime(u uuid.UUID) time.Time {
	ts := int64(binary.BigEndian.Uint32(u[0:4])) |
		int64(binary.BigEndian.Uint16(u[4:6]))<<32 |
		int64(binary.BigEndian.Uint16(u[6:8])&0x0fff)<<48
	return time.Unix(0, (ts-uuidEpochOffset)*100)
}

// TimeUUIDValue resolves a caller-supplied value into the UUID to pack for
// a TimeUUID column. A UUID passes through untouched; a time.Time, Unix
// seconds (int64), or fractional Unix seconds (float64) are converted with
// the requested boundary role.
func TimeUUIDValue(v interface{}, boundary Boundary) (uuid.UUID, error) {
	switch t := v.(type) {
	case uuid.UUID:
		return t, nil
	case time.Time:
		return FromTime(t, boundary), nil
	case int64:
		return FromTime(time.Unix(t, 0), boundary), nil
	case int:
		return FromTime(time.Unix(int64(t), 0), boundary), nil
	case float64:
		sec := int64(t)
		nsec := int64((t - float64(sec)) * 1e9)
		return FromTime(time.Unix(sec, nsec), boundary), nil
	}
	return uuid.UUID{}, newError(ErrInvalidValue, "%T is neither a UUID, a time, nor a Unix timestamp", v)
}
