package columnfamily

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/widerow/widerow/wire"
)

// RangeOptions configure a range scan. The embedded ReadOptions shape each
// row's slice exactly as they do for Get.
type RangeOptions struct {
	ReadOptions
	// RowCount caps the total rows emitted across all pages. Zero means
	// no cap.
	RowCount int
}

// GetRange returns a lazy forward-only iterator over the rows with keys in
// [start, finish], both inclusive. Empty bounds mean the ends of the ring.
// Pages of at most the handle's buffer size are fetched on demand; rows on
// page boundaries are emitted exactly once.
//
// The iterator is single-pass and not restartable: consuming it again means
// creating a new one, which re-issues every fetch. It is not safe for
// concurrent use; independent iterators over the same range are.
func (cf *ColumnFamily) GetRange(ctx context.Context, start, finish string, opts *RangeOptions) *RangeScanIterator {
	if opts == nil {
		opts = &RangeOptions{}
	}
	opCounter(cf.name, "get_range").Inc()
	log.Debug().Str("family", cf.name).Str("start", start).Str("finish", finish).Msg("get range")

	it := &RangeScanIterator{
		cf:        cf,
		ctx:       ctx,
		cl:        cf.rcl(opts.Consistency),
		includeTS: opts.IncludeTimestamps,
		lastKey:   start,
		endKey:    finish,
		pageSize:  cf.bufferSize,
		rowLimit:  opts.RowCount,
	}
	if it.rowLimit > 0 && it.rowLimit < it.pageSize {
		it.pageSize = it.rowLimit
	}

	parent, predicate, err := cf.buildSlice(&opts.ReadOptions)
	if err != nil {
		it.err = err
		it.exhausted = true
		return it
	}
	it.parent = parent
	it.predicate = predicate
	return it
}

// RangeScanIterator walks a key range one page at a time. Cursor state is
// plain fields advanced by Next; a key is never revisited once emitted.
type RangeScanIterator struct {
	cf        *ColumnFamily
	ctx       context.Context
	parent    wire.ColumnParent
	predicate wire.SlicePredicate
	cl        wire.ConsistencyLevel
	includeTS bool

	lastKey  string
	endKey   string
	pageSize int
	rowLimit int
	emitted  int

	buf       []wire.KeySlice
	idx       int
	fetched   bool // at least one page has been fetched
	final     bool // the buffered page is the last one
	exhausted bool
	err       error

	key     string
	columns ResultMap
}

// Next advances to the next row, fetching another page when the buffered
// one is drained. It returns false when the range is exhausted or a fetch
// or unpack failed; Err distinguishes the two.
func (it *RangeScanIterator) Next() bool {
	if it.exhausted || it.err != nil {
		return false
	}
	for {
		if it.idx < len(it.buf) {
			row := &it.buf[it.idx]
			it.idx++

			columns, err := it.cf.assembleColumns(row.Columns, it.includeTS)
			if err != nil {
				it.err = err
				it.exhausted = true
				return false
			}
			it.key = row.Key
			it.columns = columns
			it.emitted++
			if it.rowLimit > 0 && it.emitted >= it.rowLimit {
				// The cap cuts the sequence off regardless of what
				// is left in the page.
				it.buf = nil
				it.idx = 0
				it.final = true
			}
			return true
		}

		if it.final {
			it.exhausted = true
			return false
		}
		if !it.fetch() {
			return false
		}
	}
}

// fetch pulls one page of rows with keys in [lastKey, endKey]. The first
// row of every page after the first duplicates the previous page's last
// emitted row (the lower bound is inclusive) and is dropped.
func (it *RangeScanIterator) fetch() bool {
	keyRange := wire.KeyRange{
		StartKey: it.lastKey,
		EndKey:   it.endKey,
		Count:    int32(it.pageSize),
	}
	page, err := it.cf.client.GetRangeSlices(it.ctx, it.parent, it.predicate, keyRange, it.cl)
	if err != nil {
		it.err = err
		it.exhausted = true
		return false
	}
	if len(page) == 0 {
		it.exhausted = true
		return false
	}

	if len(page) < it.pageSize {
		it.final = true
	}
	last := page[len(page)-1].Key
	if it.endKey != "" && last == it.endKey {
		// Both ends are inclusive, so nothing can follow the end key;
		// skip the extra round trip a full page would otherwise cost.
		it.final = true
	}
	it.lastKey = last

	if it.fetched {
		page = page[1:]
	}
	if len(page) == 0 {
		// The page held nothing but the boundary duplicate; the cursor
		// cannot advance any further.
		it.final = true
	}
	it.fetched = true
	it.buf = page
	it.idx = 0
	return true
}

// Key returns the row key of the last row Next advanced to.
func (it *RangeScanIterator) Key() string {
	return it.key
}

// Columns returns the assembled columns of the last row Next advanced to.
func (it *RangeScanIterator) Columns() ResultMap {
	return it.columns
}

// Err returns the first failure the iterator hit, if any.
func (it *RangeScanIterator) Err() error {
	return it.err
}
