package columnfamily

import (
	"github.com/widerow/widerow/marshal"
)

// packName packs a column or supercolumn name under the comparator-resolved
// tag. TimeUUID names honor the boundary role: slice bounds become the
// lowest or highest UUID for the timestamp, ordinary names a randomized one.
// With name packing disabled the value passes through as raw bytes.
func (cf *ColumnFamily) packName(v interface{}, isSupercolName bool, boundary marshal.Boundary) ([]byte, error) {
	if !cf.packNames {
		return marshal.Pack(v, marshal.Bytes)
	}

	tag := cf.nameTag
	if isSupercolName {
		tag = cf.supercolNameTag
	}

	if tag == marshal.TimeUUID {
		u, err := marshal.TimeUUIDValue(v, boundary)
		if err != nil {
			return nil, err
		}
		v = u
	}
	return marshal.Pack(v, tag)
}

// unpackName is packName's inverse, minus the boundary handling which only
// exists on the way in.
func (cf *ColumnFamily) unpackName(b []byte, isSupercolName bool) (interface{}, error) {
	if !cf.packNames {
		return b, nil
	}

	tag := cf.nameTag
	if isSupercolName {
		tag = cf.supercolNameTag
	}
	return marshal.Unpack(b, tag)
}

// valueTagFor resolves the validator tag for a column addressed by its wire
// name. Explicitly typed columns win; everything else uses the family
// default. Both the write and read paths key by the packed bytes, so the
// same column resolves the same tag in both directions whatever the
// comparator type.
func (cf *ColumnFamily) valueTagFor(rawName []byte) marshal.Tag {
	if tag, ok := cf.valueTags[string(rawName)]; ok {
		return tag
	}
	return cf.defaultValueTag
}

func (cf *ColumnFamily) packValue(rawName []byte, v interface{}) ([]byte, error) {
	if !cf.packValues {
		return marshal.Pack(v, marshal.Bytes)
	}
	return marshal.Pack(v, cf.valueTagFor(rawName))
}

func (cf *ColumnFamily) unpackValue(b []byte, rawName []byte) (interface{}, error) {
	if !cf.packValues {
		return b, nil
	}
	return marshal.Unpack(b, cf.valueTagFor(rawName))
}

// packSliceBounds packs the supercolumn selector and the range bounds of a
// slice request. A nil or empty-string bound means "unbounded" and is never
// packed; the wire form stays empty.
func (cf *ColumnFamily) packSliceBounds(superColumn, start, finish interface{}) (sc, s, f []byte, err error) {
	if !isUnbounded(superColumn) {
		sc, err = cf.packName(superColumn, true, marshal.BoundaryNone)
		if err != nil {
			return nil, nil, nil, err
		}
	}
	if !isUnbounded(start) {
		s, err = cf.packName(start, cf.super, marshal.BoundaryStart)
		if err != nil {
			return nil, nil, nil, err
		}
	}
	if !isUnbounded(finish) {
		f, err = cf.packName(finish, cf.super, marshal.BoundaryFinish)
		if err != nil {
			return nil, nil, nil, err
		}
	}
	return sc, s, f, nil
}

func isUnbounded(v interface{}) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && s == ""
}
