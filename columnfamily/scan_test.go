package columnfamily

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/widerow/widerow/wire"
)

func keySlice(key string, cols ...wire.ColumnOrSuperColumn) wire.KeySlice {
	return wire.KeySlice{Key: key, Columns: cols}
}

func drain(t *testing.T, it *RangeScanIterator) []string {
	t.Helper()
	var keys []string
	for it.Next() {
		keys = append(keys, it.Key())
	}
	require.NoError(t, it.Err())
	return keys
}

func TestGetRangeDeduplicatesPageBoundaries(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := NewMockClient(ctrl)
	cf := newEventsHandle(t, client, func(cfg *Config) { cfg.BufferSize = 2 })

	// Three stored rows a < b < c with page size 2: exactly two fetches.
	// The second page re-returns b (the lower bound is inclusive of the
	// prior page's last key) and the iterator must drop it.
	gomock.InOrder(
		client.EXPECT().
			GetRangeSlices(gomock.Any(), gomock.Any(), gomock.Any(), wire.KeyRange{StartKey: "a", EndKey: "c", Count: 2}, wire.ConsistencyOne).
			Return([]wire.KeySlice{
				keySlice("a", column("x", []byte("1"), 0)),
				keySlice("b", column("x", []byte("2"), 0)),
			}, nil),
		client.EXPECT().
			GetRangeSlices(gomock.Any(), gomock.Any(), gomock.Any(), wire.KeyRange{StartKey: "b", EndKey: "c", Count: 2}, wire.ConsistencyOne).
			Return([]wire.KeySlice{
				keySlice("b", column("x", []byte("2"), 0)),
				keySlice("c", column("x", []byte("3"), 0)),
			}, nil),
	)

	it := cf.GetRange(context.Background(), "a", "c", nil)
	req.Equal([]string{"a", "b", "c"}, drain(t, it))
}

func TestGetRangeShortPageEndsSequence(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := NewMockClient(ctrl)
	cf := newEventsHandle(t, client, func(cfg *Config) { cfg.BufferSize = 10 })

	client.EXPECT().
		GetRangeSlices(gomock.Any(), gomock.Any(), gomock.Any(), wire.KeyRange{StartKey: "", EndKey: "", Count: 10}, wire.ConsistencyOne).
		Return([]wire.KeySlice{
			keySlice("a", column("x", []byte("1"), 0)),
			keySlice("b", column("x", []byte("2"), 0)),
		}, nil)

	it := cf.GetRange(context.Background(), "", "", nil)
	req.Equal([]string{"a", "b"}, drain(t, it))
}

func TestGetRangeEmptyPageEndsImmediately(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := NewMockClient(ctrl)
	cf := newEventsHandle(t, client, nil)

	client.EXPECT().
		GetRangeSlices(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), wire.ConsistencyOne).
		Return(nil, nil)

	it := cf.GetRange(context.Background(), "", "", nil)
	req.False(it.Next())
	req.NoError(it.Err())
}

func TestGetRangeRowLimitCutsPageShort(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := NewMockClient(ctrl)
	cf := newEventsHandle(t, client, func(cfg *Config) { cfg.BufferSize = 10 })

	// RowCount below the buffer size also shrinks the page request.
	client.EXPECT().
		GetRangeSlices(gomock.Any(), gomock.Any(), gomock.Any(), wire.KeyRange{StartKey: "", EndKey: "", Count: 2}, wire.ConsistencyOne).
		Return([]wire.KeySlice{
			keySlice("a", column("x", []byte("1"), 0)),
			keySlice("b", column("x", []byte("2"), 0)),
		}, nil)

	it := cf.GetRange(context.Background(), "", "", &RangeOptions{RowCount: 2})
	req.Equal([]string{"a", "b"}, drain(t, it))
}

func TestGetRangeFetchErrorSurfaces(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	boom := errors.New("connection reset")
	client := NewMockClient(ctrl)
	cf := newEventsHandle(t, client, nil)

	client.EXPECT().
		GetRangeSlices(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), wire.ConsistencyOne).
		Return(nil, boom)

	it := cf.GetRange(context.Background(), "", "", nil)
	req.False(it.Next())
	req.ErrorIs(it.Err(), boom)

	// Exhausted means exhausted: no more fetches once an error landed.
	req.False(it.Next())
}

func TestGetRangeNotRestartable(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := NewMockClient(ctrl)
	cf := newEventsHandle(t, client, nil)

	client.EXPECT().
		GetRangeSlices(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), wire.ConsistencyOne).
		Return([]wire.KeySlice{keySlice("a", column("x", []byte("1"), 0))}, nil).
		Times(2)

	first := cf.GetRange(context.Background(), "", "", nil)
	req.Equal([]string{"a"}, drain(t, first))
	req.False(first.Next())

	// A fresh iterator over the same range issues its own fetches.
	second := cf.GetRange(context.Background(), "", "", nil)
	req.Equal([]string{"a"}, drain(t, second))
}
