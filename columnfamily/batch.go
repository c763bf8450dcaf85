package columnfamily

import (
	"context"
	"fmt"

	"github.com/widerow/widerow/marshal"
	"github.com/widerow/widerow/wire"
)

// Mutator stages inserts and removes and flushes them in as few RPC batches
// as possible, each bounded by the queue size. The queue auto-flushes when
// it fills; Send flushes whatever is left. Staged state survives a failed
// flush so the caller can retry or abandon it.
//
// A Mutator is not safe for concurrent use; callers sharing one must
// serialize staging and flushing themselves.
type Mutator struct {
	cf        *ColumnFamily
	queueSize int
	cl        wire.ConsistencyLevel
	queue     []rowMutation
}

type rowMutation struct {
	key      string
	mutation wire.Mutation
}

// Batch creates a mutator over this handle. queueSize caps the mutations
// per RPC call; zero means the handle's configured maximum.
func (cf *ColumnFamily) Batch(queueSize int, cl wire.ConsistencyLevel) *Mutator {
	if queueSize <= 0 {
		queueSize = cf.maxBatchSize
	}
	return &Mutator{
		cf:        cf,
		queueSize: queueSize,
		cl:        cf.wcl(cl),
	}
}

// Insert stages one row's columns for writing at ts (microseconds). A zero
// ts takes one from the handle's clock. For supercolumn families every
// column value must be a map of subcolumn name to value.
func (m *Mutator) Insert(ctx context.Context, key string, columns map[interface{}]interface{}, ts int64, ttl int32) error {
	if ts == 0 {
		ts = m.cf.timestamp()
	}

	if m.cf.super {
		for scName, sub := range columns {
			subColumns, ok := sub.(map[interface{}]interface{})
			if !ok {
				return fmt.Errorf("%w: supercolumn %v value must be a map of subcolumns", marshal.ErrInvalidValue, scName)
			}
			name, err := m.cf.packName(scName, true, marshal.BoundaryNone)
			if err != nil {
				return err
			}
			packed, err := m.packColumns(subColumns, ts, ttl)
			if err != nil {
				return err
			}
			err = m.stage(ctx, rowMutation{
				key:      key,
				mutation: wire.Mutation{SuperColumn: &wire.SuperColumn{Name: name, Columns: packed}},
			})
			if err != nil {
				return err
			}
		}
		return nil
	}

	packed, err := m.packColumns(columns, ts, ttl)
	if err != nil {
		return err
	}
	for i := range packed {
		col := packed[i]
		if err := m.stage(ctx, rowMutation{key: key, mutation: wire.Mutation{Column: &col}}); err != nil {
			return err
		}
	}
	return nil
}

func (m *Mutator) packColumns(columns map[interface{}]interface{}, ts int64, ttl int32) ([]wire.Column, error) {
	out := make([]wire.Column, 0, len(columns))
	for name, value := range columns {
		packedName, err := m.cf.packName(name, false, marshal.BoundaryNone)
		if err != nil {
			return nil, err
		}
		packedValue, err := m.cf.packValue(packedName, value)
		if err != nil {
			return nil, err
		}
		out = append(out, wire.Column{
			Name:      packedName,
			Value:     packedValue,
			Timestamp: ts,
			TTL:       ttl,
		})
	}
	return out, nil
}

// Remove stages a deletion at ts. An empty columns list deletes the whole
// row (or the whole supercolumn when superColumn is set).
func (m *Mutator) Remove(ctx context.Context, key string, columns []interface{}, superColumn interface{}, ts int64) error {
	if ts == 0 {
		ts = m.cf.timestamp()
	}

	deletion := &wire.Deletion{Timestamp: ts}
	if !isUnbounded(superColumn) {
		packed, err := m.cf.packName(superColumn, true, marshal.BoundaryNone)
		if err != nil {
			return err
		}
		deletion.SuperColumn = packed
	}
	if len(columns) > 0 {
		// With a supercolumn selector the names are subcolumns; without
		// one they are top-level names.
		isSuper := m.cf.super && deletion.SuperColumn == nil
		names := make(wire.ColumnNames, 0, len(columns))
		for _, col := range columns {
			packed, err := m.cf.packName(col, isSuper, marshal.BoundaryNone)
			if err != nil {
				return err
			}
			names = append(names, packed)
		}
		deletion.Predicate = names
	}

	return m.stage(ctx, rowMutation{key: key, mutation: wire.Mutation{Deletion: deletion}})
}

func (m *Mutator) stage(ctx context.Context, rm rowMutation) error {
	m.queue = append(m.queue, rm)
	if len(m.queue) >= m.queueSize {
		return m.Send(ctx)
	}
	return nil
}

// Send flushes every staged mutation, splitting into multiple RPC calls
// when the queue exceeds the configured maximum per call. On success the
// staged state is cleared.
func (m *Mutator) Send(ctx context.Context) error {
	for len(m.queue) > 0 {
		chunk := m.queue
		if len(chunk) > m.queueSize {
			chunk = chunk[:m.queueSize]
		}

		grouped := make(map[string]map[string][]wire.Mutation)
		for _, rm := range chunk {
			byFamily, ok := grouped[rm.key]
			if !ok {
				byFamily = make(map[string][]wire.Mutation)
				grouped[rm.key] = byFamily
			}
			byFamily[m.cf.name] = append(byFamily[m.cf.name], rm.mutation)
		}

		if err := m.cf.client.BatchMutate(ctx, grouped, m.cl); err != nil {
			return err
		}
		m.queue = m.queue[len(chunk):]
	}
	m.queue = nil
	return nil
}
