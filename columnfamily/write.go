package columnfamily

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/widerow/widerow/wire"
)

// WriteOptions configure inserts and removes.
type WriteOptions struct {
	// Timestamp is the write timestamp in microseconds. Zero means "take
	// one from the handle's clock".
	Timestamp int64
	// TTL expires the written columns after this many seconds. Zero means
	// no expiry. Ignored by removes.
	TTL int32
	// Consistency overrides the handle's write consistency when nonzero.
	Consistency wire.ConsistencyLevel
}

// Insert writes or updates one row's columns. For a supercolumn family the
// column values are themselves maps of subcolumn name to value. It returns
// the timestamp applied to every written column.
func (cf *ColumnFamily) Insert(ctx context.Context, key string, columns map[interface{}]interface{}, opts *WriteOptions) (int64, error) {
	return cf.BatchInsert(ctx, map[string]map[interface{}]interface{}{key: columns}, opts)
}

// BatchInsert writes or updates columns for many rows. One timestamp is
// taken for the whole call and shared by every row's mutation, so the batch
// is time-consistent relative to any later write. It returns that
// timestamp.
func (cf *ColumnFamily) BatchInsert(ctx context.Context, rows map[string]map[interface{}]interface{}, opts *WriteOptions) (int64, error) {
	if opts == nil {
		opts = &WriteOptions{}
	}
	opCounter(cf.name, "batch_insert").Inc()
	log.Debug().Str("family", cf.name).Int("rows", len(rows)).Msg("batch insert")

	ts := opts.Timestamp
	if ts == 0 {
		ts = cf.timestamp()
	}

	batch := cf.Batch(0, opts.Consistency)
	for key, columns := range rows {
		if err := batch.Insert(ctx, key, columns, ts, opts.TTL); err != nil {
			return 0, err
		}
	}
	if err := batch.Send(ctx); err != nil {
		return 0, err
	}
	return ts, nil
}

// Remove deletes a row, or a subset of its columns when columns is
// non-empty. superColumn narrows the deletion to one supercolumn. It
// returns the timestamp the tombstones carry.
func (cf *ColumnFamily) Remove(ctx context.Context, key string, columns []interface{}, superColumn interface{}, opts *WriteOptions) (int64, error) {
	if opts == nil {
		opts = &WriteOptions{}
	}
	opCounter(cf.name, "remove").Inc()
	log.Debug().Str("family", cf.name).Str("key", key).Msg("remove")

	ts := opts.Timestamp
	if ts == 0 {
		ts = cf.timestamp()
	}

	batch := cf.Batch(0, opts.Consistency)
	if err := batch.Remove(ctx, key, columns, superColumn, ts); err != nil {
		return 0, err
	}
	if err := batch.Send(ctx); err != nil {
		return 0, err
	}
	return ts, nil
}

// Truncate marks every row of the family as deleted. It is all-or-nothing:
// if the store cannot reach every replica it fails with ErrUnavailable and
// deletes nothing.
func (cf *ColumnFamily) Truncate(ctx context.Context) error {
	opCounter(cf.name, "truncate").Inc()
	log.Debug().Str("family", cf.name).Msg("truncate")
	return cf.client.Truncate(ctx, cf.name)
}
