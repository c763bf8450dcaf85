package wire

import "context"

// Client is the remote procedure surface the data-access layer consumes.
// Every call is synchronous and blocking; cancellation, timeouts, and
// replica selection are the transport's responsibility. Implementations
// must surface failures unmodified and never retry.
type Client interface {
	// DescribeKeyspace returns the schema declarations of every column
	// family in the connected keyspace, keyed by family name.
	DescribeKeyspace(ctx context.Context) (map[string]*CfDef, error)

	// GetSlice fetches the columns of one row selected by the predicate.
	GetSlice(ctx context.Context, key string, parent ColumnParent, predicate SlicePredicate, cl ConsistencyLevel) ([]ColumnOrSuperColumn, error)

	// MultigetSlice fetches the same slice for many rows at once. Rows
	// without matching columns come back with empty slices.
	MultigetSlice(ctx context.Context, keys []string, parent ColumnParent, predicate SlicePredicate, cl ConsistencyLevel) (map[string][]ColumnOrSuperColumn, error)

	// GetCount counts the columns one row has within the predicate.
	GetCount(ctx context.Context, key string, parent ColumnParent, predicate SlicePredicate, cl ConsistencyLevel) (int32, error)

	// MultigetCount counts columns for many rows at once.
	MultigetCount(ctx context.Context, keys []string, parent ColumnParent, predicate SlicePredicate, cl ConsistencyLevel) (map[string]int32, error)

	// GetRangeSlices fetches one page of rows with keys inside keyRange.
	GetRangeSlices(ctx context.Context, parent ColumnParent, predicate SlicePredicate, keyRange KeyRange, cl ConsistencyLevel) ([]KeySlice, error)

	// GetIndexedSlices fetches the rows matching an index clause.
	GetIndexedSlices(ctx context.Context, parent ColumnParent, clause IndexClause, predicate SlicePredicate, cl ConsistencyLevel) ([]KeySlice, error)

	// BatchMutate applies staged mutations grouped by row key and family.
	BatchMutate(ctx context.Context, mutations map[string]map[string][]Mutation, cl ConsistencyLevel) error

	// Truncate marks every row of the family as deleted. All replicas must
	// be reachable; otherwise it fails with ErrUnavailable.
	Truncate(ctx context.Context, columnFamily string) error
}
