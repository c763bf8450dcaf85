package columnfamily

import (
	"github.com/widerow/widerow/wire"
)

// assembleColumn converts one wire column into its caller-facing leaf:
// the unpacked value, or a TimestampedValue when timestamps were requested.
func (cf *ColumnFamily) assembleColumn(col *wire.Column, includeTimestamps bool) (interface{}, error) {
	value, err := cf.unpackValue(col.Value, col.Name)
	if err != nil {
		return nil, err
	}
	if includeTimestamps {
		return TimestampedValue{Value: value, Timestamp: col.Timestamp}, nil
	}
	return value, nil
}

// assembleSuperColumn nests one mapping level for a supercolumn's
// subcolumns, each run through the ordinary value-unpack rule.
func (cf *ColumnFamily) assembleSuperColumn(sc *wire.SuperColumn, includeTimestamps bool) (ResultMap, error) {
	sub := cf.newMap()
	for i := range sc.Columns {
		col := &sc.Columns[i]
		name, err := cf.unpackName(col.Name, false)
		if err != nil {
			return nil, err
		}
		leaf, err := cf.assembleColumn(col, includeTimestamps)
		if err != nil {
			return nil, err
		}
		sub.Set(name, leaf)
	}
	return sub, nil
}

// assembleColumns converts a wire slice result into an ordered mapping of
// unpacked name to leaf, preserving the server's return order.
func (cf *ColumnFamily) assembleColumns(list []wire.ColumnOrSuperColumn, includeTimestamps bool) (ResultMap, error) {
	m := cf.newMap()
	for i := range list {
		cosc := &list[i]
		if cosc.SuperColumn != nil {
			name, err := cf.unpackName(cosc.SuperColumn.Name, true)
			if err != nil {
				return nil, err
			}
			sub, err := cf.assembleSuperColumn(cosc.SuperColumn, includeTimestamps)
			if err != nil {
				return nil, err
			}
			m.Set(name, sub)
			continue
		}
		// Bare columns carry column names even in a supercolumn family:
		// a read through a supercolumn selector returns the subcolumns
		// directly, named under the subcomparator.
		name, err := cf.unpackName(cosc.Column.Name, false)
		if err != nil {
			return nil, err
		}
		leaf, err := cf.assembleColumn(cosc.Column, includeTimestamps)
		if err != nil {
			return nil, err
		}
		m.Set(name, leaf)
	}
	return m, nil
}

// assembleKeySlices converts a row list into a mapping keyed by row key,
// in the order the server returned the rows.
func (cf *ColumnFamily) assembleKeySlices(slices []wire.KeySlice, includeTimestamps bool) (ResultMap, error) {
	m := cf.newMap()
	for i := range slices {
		columns, err := cf.assembleColumns(slices[i].Columns, includeTimestamps)
		if err != nil {
			return nil, err
		}
		m.Set(slices[i].Key, columns)
	}
	return m, nil
}
