package columnfamily

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/widerow/widerow/wire"
)

func TestGetCountDirectionIndependent(t *testing.T) {
	tests := map[string]struct {
		opts *ReadOptions
	}{
		"forward":  {opts: &ReadOptions{ColumnReversed: false}},
		"reversed": {opts: &ReadOptions{ColumnReversed: true}},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := NewMockClient(ctrl)
			cf := newEventsHandle(t, client, nil)

			client.EXPECT().
				GetCount(gomock.Any(), "k1", gomock.Any(), gomock.Any(), wire.ConsistencyOne).
				DoAndReturn(func(_ context.Context, _ string, _ wire.ColumnParent, predicate wire.SlicePredicate, _ wire.ConsistencyLevel) (int32, error) {
					sr, ok := predicate.(*wire.SliceRange)
					req.True(ok)
					req.False(sr.Reversed)
					req.Equal(int32(math.MaxInt32), sr.Count)
					return 3, nil
				})

			n, err := cf.GetCount(context.Background(), "k1", tc.opts)
			req.NoError(err)
			req.Equal(int32(3), n)
			req.GreaterOrEqual(n, int32(0))
		})
	}
}

func TestMultigetCount(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := NewMockClient(ctrl)
	cf := newEventsHandle(t, client, nil)

	client.EXPECT().
		MultigetCount(gomock.Any(), []string{"k1", "k2"}, gomock.Any(), gomock.Any(), wire.ConsistencyOne).
		Return(map[string]int32{"k1": 2, "k2": 0}, nil)

	counts, err := cf.MultigetCount(context.Background(), []string{"k1", "k2"}, nil)
	req.NoError(err)
	req.Equal(map[string]int32{"k1": 2, "k2": 0}, counts)
}

func TestGetCountExplicitColumns(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := NewMockClient(ctrl)
	cf := newEventsHandle(t, client, nil)

	client.EXPECT().
		GetCount(gomock.Any(), "k1", gomock.Any(), wire.ColumnNames{[]byte("a"), []byte("b")}, wire.ConsistencyOne).
		Return(int32(2), nil)

	n, err := cf.GetCount(context.Background(), "k1", &ReadOptions{Columns: []interface{}{"a", "b"}})
	req.NoError(err)
	req.Equal(int32(2), n)
}
