package columnfamily

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Get fetches one row's columns as an ordered mapping of unpacked name to
// value. A key with zero matching columns fails with ErrRowNotFound; it is
// the only operation that turns absence into an error.
func (cf *ColumnFamily) Get(ctx context.Context, key string, opts *ReadOptions) (ResultMap, error) {
	if opts == nil {
		opts = &ReadOptions{}
	}
	opCounter(cf.name, "get").Inc()
	log.Debug().Str("family", cf.name).Str("key", key).Msg("get")

	parent, predicate, err := cf.buildSlice(opts)
	if err != nil {
		return nil, err
	}

	columns, err := cf.client.GetSlice(ctx, key, parent, predicate, cf.rcl(opts.Consistency))
	if err != nil {
		return nil, err
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrRowNotFound, key)
	}
	return cf.assembleColumns(columns, opts.IncludeTimestamps)
}

// Multiget fetches the same slice for many rows. Keys with data appear in
// the result in their original input order; keys without data are omitted
// entirely, leaving no placeholder.
func (cf *ColumnFamily) Multiget(ctx context.Context, keys []string, opts *ReadOptions) (ResultMap, error) {
	if opts == nil {
		opts = &ReadOptions{}
	}
	opCounter(cf.name, "multiget").Inc()
	log.Debug().Str("family", cf.name).Int("keys", len(keys)).Msg("multiget")

	parent, predicate, err := cf.buildSlice(opts)
	if err != nil {
		return nil, err
	}

	keymap, err := cf.client.MultigetSlice(ctx, keys, parent, predicate, cf.rcl(opts.Consistency))
	if err != nil {
		return nil, err
	}

	result := cf.newMap()
	for _, key := range keys {
		columns, ok := keymap[key]
		if !ok || len(columns) == 0 {
			continue
		}
		assembled, assembleErr := cf.assembleColumns(columns, opts.IncludeTimestamps)
		if assembleErr != nil {
			return nil, assembleErr
		}
		result.Set(key, assembled)
	}
	return result, nil
}

// GetIndexedSlices fetches the rows matching an index clause, keyed by row
// key. Every expression's name and value is packed with the ordinary
// resolution rules first. Zero matches fail with ErrRowNotFound.
func (cf *ColumnFamily) GetIndexedSlices(ctx context.Context, clause IndexClause, opts *ReadOptions) (ResultMap, error) {
	if opts == nil {
		opts = &ReadOptions{}
	}
	opCounter(cf.name, "get_indexed_slices").Inc()
	log.Debug().Str("family", cf.name).Int("expressions", len(clause.Expressions)).Msg("get indexed slices")

	parent, predicate, err := cf.buildSlice(opts)
	if err != nil {
		return nil, err
	}
	packed, err := cf.packIndexClause(clause)
	if err != nil {
		return nil, err
	}

	slices, err := cf.client.GetIndexedSlices(ctx, parent, packed, predicate, cf.rcl(opts.Consistency))
	if err != nil {
		return nil, err
	}
	if len(slices) == 0 {
		return nil, fmt.Errorf("%w: no rows match index clause", ErrRowNotFound)
	}
	return cf.assembleKeySlices(slices, opts.IncludeTimestamps)
}

// GetCount counts one row's columns within the given bounds. Counting is
// direction-independent and uncapped, whatever the options say.
func (cf *ColumnFamily) GetCount(ctx context.Context, key string, opts *ReadOptions) (int32, error) {
	if opts == nil {
		opts = &ReadOptions{}
	}
	opCounter(cf.name, "get_count").Inc()

	parent, predicate, err := cf.buildCountSlice(opts)
	if err != nil {
		return 0, err
	}
	return cf.client.GetCount(ctx, key, parent, predicate, cf.rcl(opts.Consistency))
}

// MultigetCount counts columns for many rows in one round trip.
func (cf *ColumnFamily) MultigetCount(ctx context.Context, keys []string, opts *ReadOptions) (map[string]int32, error) {
	if opts == nil {
		opts = &ReadOptions{}
	}
	opCounter(cf.name, "multiget_count").Inc()

	parent, predicate, err := cf.buildCountSlice(opts)
	if err != nil {
		return nil, err
	}
	return cf.client.MultigetCount(ctx, keys, parent, predicate, cf.rcl(opts.Consistency))
}
