package columnfamily

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/widerow/widerow/wire"
)

func TestInsertPacksAndSharesTimestamp(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := NewMockClient(ctrl)
	cf := newEventsHandle(t, client, func(cfg *Config) {
		cfg.Timestamp = func() int64 { return 777 }
	})

	client.EXPECT().
		BatchMutate(gomock.Any(), gomock.Any(), wire.ConsistencyOne).
		DoAndReturn(func(_ context.Context, mutations map[string]map[string][]wire.Mutation, _ wire.ConsistencyLevel) error {
			req.Len(mutations, 1)
			byFamily := mutations["k1"]
			req.Len(byFamily["events"], 2)
			for _, m := range byFamily["events"] {
				req.NotNil(m.Column)
				req.Equal(int64(777), m.Column.Timestamp)
			}
			return nil
		})

	ts, err := cf.Insert(context.Background(), "k1", map[interface{}]interface{}{
		"age":  int64(30),
		"city": []byte("rome"),
	}, nil)
	req.NoError(err)
	req.Equal(int64(777), ts)
}

func TestBatchInsertSharesOneTimestampAcrossRows(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := NewMockClient(ctrl)
	cf := newEventsHandle(t, client, func(cfg *Config) {
		calls := int64(0)
		cfg.Timestamp = func() int64 {
			calls++
			return 1000 + calls
		}
	})

	client.EXPECT().
		BatchMutate(gomock.Any(), gomock.Any(), wire.ConsistencyOne).
		DoAndReturn(func(_ context.Context, mutations map[string]map[string][]wire.Mutation, _ wire.ConsistencyLevel) error {
			req.Len(mutations, 2)
			for _, byFamily := range mutations {
				for _, m := range byFamily["events"] {
					// The clock ticked exactly once for the whole call.
					req.Equal(int64(1001), m.Column.Timestamp)
				}
			}
			return nil
		})

	ts, err := cf.BatchInsert(context.Background(), map[string]map[interface{}]interface{}{
		"k1": {"city": []byte("rome")},
		"k2": {"city": []byte("oslo")},
	}, nil)
	req.NoError(err)
	req.Equal(int64(1001), ts)
}

func TestInsertSupercolumnFamily(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := NewMockClient(ctrl)
	describeReturning(client, sessionsDef())
	cf, err := New(context.Background(), &Config{
		Client:    client,
		Name:      "sessions",
		Super:     true,
		Timestamp: func() int64 { return 5 },
	})
	req.NoError(err)

	client.EXPECT().
		BatchMutate(gomock.Any(), gomock.Any(), wire.ConsistencyOne).
		DoAndReturn(func(_ context.Context, mutations map[string]map[string][]wire.Mutation, _ wire.ConsistencyLevel) error {
			byFamily := mutations["k1"]
			req.Len(byFamily["sessions"], 1)
			sc := byFamily["sessions"][0].SuperColumn
			req.NotNil(sc)
			req.Equal([]byte{0, 0, 0, 0, 0, 0, 0, 7}, sc.Name)
			req.Len(sc.Columns, 1)
			req.Equal([]byte("status"), sc.Columns[0].Name)
			req.Equal([]byte("open"), sc.Columns[0].Value)
			return nil
		})

	_, err = cf.Insert(context.Background(), "k1", map[interface{}]interface{}{
		int64(7): map[interface{}]interface{}{"status": "open"},
	}, nil)
	req.NoError(err)
}

func TestInsertTypedColumnUnderLongComparator(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := NewMockClient(ctrl)
	describeReturning(client, countersDef())
	cf, err := New(context.Background(), &Config{
		Client:    client,
		Name:      "counters",
		Timestamp: func() int64 { return 1 },
	})
	req.NoError(err)

	// The validator override is declared against the packed wire name, so
	// the write path must resolve it for a natively addressed column the
	// same way the read path does.
	client.EXPECT().
		BatchMutate(gomock.Any(), gomock.Any(), wire.ConsistencyOne).
		DoAndReturn(func(_ context.Context, mutations map[string]map[string][]wire.Mutation, _ wire.ConsistencyLevel) error {
			col := mutations["k1"]["counters"][0].Column
			req.NotNil(col)
			req.Equal([]byte{0, 0, 0, 0, 0, 0, 0, 1}, col.Name)
			req.Equal([]byte{0, 0, 0, 0, 0, 0, 0, 42}, col.Value)
			return nil
		})

	_, err = cf.Insert(context.Background(), "k1", map[interface{}]interface{}{
		int64(1): int64(42),
	}, nil)
	req.NoError(err)
}

func TestRemoveWholeRow(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := NewMockClient(ctrl)
	cf := newEventsHandle(t, client, func(cfg *Config) {
		cfg.Timestamp = func() int64 { return 9 }
	})

	client.EXPECT().
		BatchMutate(gomock.Any(), gomock.Any(), wire.ConsistencyOne).
		DoAndReturn(func(_ context.Context, mutations map[string]map[string][]wire.Mutation, _ wire.ConsistencyLevel) error {
			del := mutations["k1"]["events"][0].Deletion
			req.NotNil(del)
			req.Equal(int64(9), del.Timestamp)
			// No predicate: the whole row goes.
			req.Nil(del.Predicate)
			return nil
		})

	ts, err := cf.Remove(context.Background(), "k1", nil, nil, nil)
	req.NoError(err)
	req.Equal(int64(9), ts)
}

func TestRemoveSpecificColumns(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := NewMockClient(ctrl)
	cf := newEventsHandle(t, client, nil)

	client.EXPECT().
		BatchMutate(gomock.Any(), gomock.Any(), wire.ConsistencyOne).
		DoAndReturn(func(_ context.Context, mutations map[string]map[string][]wire.Mutation, _ wire.ConsistencyLevel) error {
			del := mutations["k1"]["events"][0].Deletion
			req.Equal(wire.ColumnNames{[]byte("age"), []byte("city")}, del.Predicate)
			return nil
		})

	_, err := cf.Remove(context.Background(), "k1", []interface{}{"age", "city"}, nil, nil)
	req.NoError(err)
}

func TestMutatorFlushesInBoundedChunks(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := NewMockClient(ctrl)
	cf := newEventsHandle(t, client, nil)

	// Five staged mutations with a queue of two: two auto-flushes while
	// staging, then one final send with the remainder.
	var sizes []int
	client.EXPECT().
		BatchMutate(gomock.Any(), gomock.Any(), wire.ConsistencyOne).
		DoAndReturn(func(_ context.Context, mutations map[string]map[string][]wire.Mutation, _ wire.ConsistencyLevel) error {
			total := 0
			for _, byFamily := range mutations {
				for _, ms := range byFamily {
					total += len(ms)
				}
			}
			sizes = append(sizes, total)
			return nil
		}).
		Times(3)

	batch := cf.Batch(2, 0)
	for _, key := range []string{"k1", "k2", "k3", "k4", "k5"} {
		req.NoError(batch.Remove(context.Background(), key, nil, nil, 1))
	}
	req.NoError(batch.Send(context.Background()))
	req.Equal([]int{2, 2, 1}, sizes)

	// The queue is empty after a successful send.
	req.NoError(batch.Send(context.Background()))
}

func TestTruncateSurfacesUnavailable(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := NewMockClient(ctrl)
	cf := newEventsHandle(t, client, nil)

	client.EXPECT().
		Truncate(gomock.Any(), "events").
		Return(wire.ErrUnavailable)

	err := cf.Truncate(context.Background())
	req.ErrorIs(err, wire.ErrUnavailable)
}
