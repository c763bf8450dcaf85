package columnfamily

import (
	"math"

	"github.com/widerow/widerow/marshal"
	"github.com/widerow/widerow/wire"
)

// ReadOptions narrow a read to a subset of a row's columns. An explicit
// Columns list wins outright: the range fields (ColumnStart, ColumnFinish,
// ColumnReversed, ColumnCount) are then ignored entirely.
type ReadOptions struct {
	// Columns limits the fetch to these names.
	Columns []interface{}
	// ColumnStart / ColumnFinish bound the range form, both inclusive.
	// nil (or an empty string) means unbounded on that side.
	ColumnStart  interface{}
	ColumnFinish interface{}
	// ColumnReversed fetches the range in reverse comparator order.
	ColumnReversed bool
	// ColumnCount caps the columns fetched per row. Defaults to 100.
	ColumnCount int
	// SuperColumn restricts the fetch to one supercolumn's subcolumns.
	SuperColumn interface{}
	// IncludeTimestamps makes every leaf a TimestampedValue instead of a
	// bare value.
	IncludeTimestamps bool
	// Consistency overrides the handle's read consistency when nonzero.
	Consistency wire.ConsistencyLevel
}

// buildSlice assembles the addressing and predicate of a slice request from
// caller options. The predicate is the explicit-list form whenever Columns
// is non-empty, otherwise the range form.
func (cf *ColumnFamily) buildSlice(opts *ReadOptions) (wire.ColumnParent, wire.SlicePredicate, error) {
	sc, start, finish, err := cf.packSliceBounds(opts.SuperColumn, opts.ColumnStart, opts.ColumnFinish)
	if err != nil {
		return wire.ColumnParent{}, nil, err
	}

	parent := wire.ColumnParent{ColumnFamily: cf.name, SuperColumn: sc}

	if len(opts.Columns) > 0 {
		names, packErr := cf.packColumnNames(opts.Columns)
		if packErr != nil {
			return wire.ColumnParent{}, nil, packErr
		}
		return parent, names, nil
	}

	count := opts.ColumnCount
	if count <= 0 {
		count = defaultColumnCount
	}
	return parent, &wire.SliceRange{
		Start:    start,
		Finish:   finish,
		Reversed: opts.ColumnReversed,
		Count:    int32(count),
	}, nil
}

// buildCountSlice is buildSlice for counting: the range form is unbounded in
// count and direction-independent, so the count cap becomes the int32
// maximum and reversed is forced off.
func (cf *ColumnFamily) buildCountSlice(opts *ReadOptions) (wire.ColumnParent, wire.SlicePredicate, error) {
	sc, start, finish, err := cf.packSliceBounds(opts.SuperColumn, opts.ColumnStart, opts.ColumnFinish)
	if err != nil {
		return wire.ColumnParent{}, nil, err
	}

	parent := wire.ColumnParent{ColumnFamily: cf.name, SuperColumn: sc}

	if len(opts.Columns) > 0 {
		names, packErr := cf.packColumnNames(opts.Columns)
		if packErr != nil {
			return wire.ColumnParent{}, nil, packErr
		}
		return parent, names, nil
	}

	return parent, &wire.SliceRange{
		Start:    start,
		Finish:   finish,
		Reversed: false,
		Count:    math.MaxInt32,
	}, nil
}

func (cf *ColumnFamily) packColumnNames(columns []interface{}) (wire.ColumnNames, error) {
	names := make(wire.ColumnNames, 0, len(columns))
	for _, col := range columns {
		packed, err := cf.packName(col, cf.super, marshal.BoundaryNone)
		if err != nil {
			return nil, err
		}
		names = append(names, packed)
	}
	return names, nil
}

// IndexExpression compares one column's value against a native value under
// an operator. Name and value are packed with the ordinary resolution rules
// before the request goes out.
type IndexExpression struct {
	Name  interface{}
	Op    wire.IndexOperator
	Value interface{}
}

// IndexClause filters an indexed-slice query. At least one expression must
// target an indexed column; the server enforces that.
type IndexClause struct {
	Expressions []IndexExpression
	StartKey    string
	// Count caps the rows returned. Defaults to 100.
	Count int
}

func (cf *ColumnFamily) packIndexClause(clause IndexClause) (wire.IndexClause, error) {
	out := wire.IndexClause{
		StartKey: clause.StartKey,
		Count:    int32(clause.Count),
	}
	if out.Count <= 0 {
		out.Count = defaultColumnCount
	}
	for _, expr := range clause.Expressions {
		name, err := cf.packName(expr.Name, false, marshal.BoundaryNone)
		if err != nil {
			return wire.IndexClause{}, err
		}
		value, err := cf.packValue(name, expr.Value)
		if err != nil {
			return wire.IndexClause{}, err
		}
		out.Expressions = append(out.Expressions, wire.IndexExpression{
			ColumnName: name,
			Op:         expr.Op,
			Value:      value,
		})
	}
	return out, nil
}
