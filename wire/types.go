// Package wire holds the request and response shapes of the remote store's
// RPC protocol, plus the Client interface the data-access layer consumes.
// The layouts here are fixed by the server; this package never interprets
// name or value bytes.
package wire

// ConsistencyLevel is the minimum replica acknowledgment the store requires
// before a read or write returns. It is passed through opaquely. The zero
// value is reserved so handles can treat it as "use the configured default".
type ConsistencyLevel int32

const (
	ConsistencyOne ConsistencyLevel = iota + 1
	ConsistencyQuorum
	ConsistencyLocalQuorum
	ConsistencyEachQuorum
	ConsistencyAll
	ConsistencyAny
)

func (c ConsistencyLevel) String() string {
	switch c {
	case ConsistencyOne:
		return "ONE"
	case ConsistencyQuorum:
		return "QUORUM"
	case ConsistencyLocalQuorum:
		return "LOCAL_QUORUM"
	case ConsistencyEachQuorum:
		return "EACH_QUORUM"
	case ConsistencyAll:
		return "ALL"
	case ConsistencyAny:
		return "ANY"
	default:
		return "UNKNOWN"
	}
}

// ParseConsistencyLevel maps the textual form back to a level. Unknown
// strings fall back to ONE.
func ParseConsistencyLevel(s string) ConsistencyLevel {
	switch s {
	case "ANY":
		return ConsistencyAny
	case "QUORUM":
		return ConsistencyQuorum
	case "LOCAL_QUORUM":
		return ConsistencyLocalQuorum
	case "EACH_QUORUM":
		return ConsistencyEachQuorum
	case "ALL":
		return ConsistencyAll
	default:
		return ConsistencyOne
	}
}

// Column is a single name/value cell with its write timestamp in
// microseconds and an optional TTL in seconds (0 means no expiry).
type Column struct {
	Name      []byte
	Value     []byte
	Timestamp int64
	TTL       int32
}

// SuperColumn groups subcolumns under one supercolumn name.
type SuperColumn struct {
	Name    []byte
	Columns []Column
}

// ColumnOrSuperColumn carries exactly one of its two fields, depending on
// whether the family stores supercolumns.
type ColumnOrSuperColumn struct {
	Column      *Column
	SuperColumn *SuperColumn
}

// ColumnParent addresses the container of a slice: a column family, and for
// supercolumn families optionally a single supercolumn within it.
type ColumnParent struct {
	ColumnFamily string
	SuperColumn  []byte
}

// SlicePredicate selects the columns of a slice request. Exactly one of the
// two forms exists per request: an explicit name list, or an ordered range.
type SlicePredicate interface {
	isSlicePredicate()
}

// ColumnNames is the explicit-list predicate form.
type ColumnNames [][]byte

func (ColumnNames) isSlicePredicate() {}

// SliceRange is the range predicate form. Empty Start or Finish means
// unbounded on that side. Count caps the number of columns returned.
type SliceRange struct {
	Start    []byte
	Finish   []byte
	Reversed bool
	Count    int32
}

func (*SliceRange) isSlicePredicate() {}

// KeyRange bounds a range-of-rows request. Both ends are inclusive; an empty
// end key means the end of the ring. Count caps the rows per page.
type KeyRange struct {
	StartKey string
	EndKey   string
	Count    int32
}

// KeySlice is one row of a range or indexed query result.
type KeySlice struct {
	Key     string
	Columns []ColumnOrSuperColumn
}

// IndexOperator compares an indexed column's value against an expression
// value.
type IndexOperator int32

const (
	IndexOpEQ IndexOperator = iota
	IndexOpGTE
	IndexOpGT
	IndexOpLTE
	IndexOpLT
)

func (op IndexOperator) String() string {
	switch op {
	case IndexOpEQ:
		return "EQ"
	case IndexOpGTE:
		return "GTE"
	case IndexOpGT:
		return "GT"
	case IndexOpLTE:
		return "LTE"
	case IndexOpLT:
		return "LT"
	default:
		return "UNKNOWN"
	}
}

// IndexExpression compares one column against one packed value.
type IndexExpression struct {
	ColumnName []byte
	Op         IndexOperator
	Value      []byte
}

// IndexClause is the row filter of an indexed-slice query. At least one
// expression must target an indexed column; the server enforces that.
type IndexClause struct {
	Expressions []IndexExpression
	StartKey    string
	Count       int32
}

// Mutation stages either an insert (Column or SuperColumn set) or a Deletion
// for one row of one family.
type Mutation struct {
	Column      *Column
	SuperColumn *SuperColumn
	Deletion    *Deletion
}

// Deletion removes columns selected by Predicate at Timestamp. A nil
// Predicate removes the whole row (or the whole supercolumn when
// SuperColumn is set).
type Deletion struct {
	Timestamp   int64
	SuperColumn []byte
	Predicate   SlicePredicate
}

// ColumnDef is the schema entry of one explicitly typed column.
type ColumnDef struct {
	Name            []byte
	ValidationClass string
	IndexName       string
}

// CfDef is a column family's schema declaration as stored in the catalog.
type CfDef struct {
	Name                   string
	ComparatorType         string
	SubcomparatorType      string
	DefaultValidationClass string
	ColumnMetadata         []ColumnDef
}
