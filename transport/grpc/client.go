// Package grpc dials a widerow gateway and exposes it through the wire.Client
// interface. Calls are issued with conn.Invoke against the Store service using
// the JSON codec, so the adapter stays free of generated stubs.
package grpc

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/widerow/widerow/wire"
)

const service = "/widerow.Store/"

// Config carries the dial parameters for a gateway connection.
type Config struct {
	// Target is the gRPC dial target, host:port.
	Target string
	// Keyspace scopes every request issued on the connection.
	Keyspace string
	// TLS enables transport security when non-nil. A nil value dials
	// with insecure credentials.
	TLS *tls.Config
}

func (c *Config) validate() error {
	var errs []error
	if c.Target == "" {
		errs = append(errs, fmt.Errorf("target is required"))
	}
	if c.Keyspace == "" {
		errs = append(errs, fmt.Errorf("keyspace is required"))
	}
	return errors.Join(errs...)
}

// Client implements wire.Client over a single gRPC connection.
type Client struct {
	conn     *grpc.ClientConn
	keyspace string
}

var _ wire.Client = (*Client)(nil)

// New dials the gateway named by cfg. The connection is established lazily;
// the first RPC observes any dial failure.
func New(cfg *Config) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	creds := insecure.NewCredentials()
	if cfg.TLS != nil {
		creds = credentials.NewTLS(cfg.TLS)
	}

	conn, err := grpc.NewClient(cfg.Target,
		grpc.WithTransportCredentials(creds),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(codecName)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create gateway connection: %w", err)
	}

	log.Debug().
		Str("target", cfg.Target).
		Str("keyspace", cfg.Keyspace).
		Msg("gateway client created")

	return &Client{conn: conn, keyspace: cfg.Keyspace}, nil
}

// Close tears down the underlying connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

func (c *Client) invoke(ctx context.Context, method string, req, resp interface{}) error {
	if err := c.conn.Invoke(ctx, service+method, req, resp); err != nil {
		return mapError(err)
	}
	return nil
}

// mapError folds gateway status codes back into the sentinel errors callers
// match on. Unavailable means the cluster could not satisfy the requested
// consistency; everything else passes through verbatim.
func mapError(err error) error {
	st, ok := status.FromError(err)
	if ok && st.Code() == codes.Unavailable {
		return fmt.Errorf("%w: %s", wire.ErrUnavailable, st.Message())
	}
	return err
}

func (c *Client) DescribeKeyspace(ctx context.Context) (map[string]*wire.CfDef, error) {
	req := describeKeyspaceRequest{Keyspace: c.keyspace}
	var resp describeKeyspaceResponse
	if err := c.invoke(ctx, "DescribeKeyspace", &req, &resp); err != nil {
		return nil, err
	}
	families := make(map[string]*wire.CfDef, len(resp.Families))
	for name, def := range resp.Families {
		families[name] = def.toWire()
	}
	return families, nil
}

func (c *Client) GetSlice(ctx context.Context, key string, parent wire.ColumnParent, predicate wire.SlicePredicate, cl wire.ConsistencyLevel) ([]wire.ColumnOrSuperColumn, error) {
	req := getSliceRequest{
		Keyspace:    c.keyspace,
		Key:         key,
		Parent:      fromColumnParent(parent),
		Predicate:   fromSlicePredicate(predicate),
		Consistency: int32(cl),
	}
	var resp getSliceResponse
	if err := c.invoke(ctx, "GetSlice", &req, &resp); err != nil {
		return nil, err
	}
	return toColumnOrSuperColumns(resp.Columns), nil
}

func (c *Client) MultigetSlice(ctx context.Context, keys []string, parent wire.ColumnParent, predicate wire.SlicePredicate, cl wire.ConsistencyLevel) (map[string][]wire.ColumnOrSuperColumn, error) {
	req := multigetSliceRequest{
		Keyspace:    c.keyspace,
		Keys:        keys,
		Parent:      fromColumnParent(parent),
		Predicate:   fromSlicePredicate(predicate),
		Consistency: int32(cl),
	}
	var resp multigetSliceResponse
	if err := c.invoke(ctx, "MultigetSlice", &req, &resp); err != nil {
		return nil, err
	}
	rows := make(map[string][]wire.ColumnOrSuperColumn, len(resp.Rows))
	for key, cols := range resp.Rows {
		rows[key] = toColumnOrSuperColumns(cols)
	}
	return rows, nil
}

func (c *Client) GetCount(ctx context.Context, key string, parent wire.ColumnParent, predicate wire.SlicePredicate, cl wire.ConsistencyLevel) (int32, error) {
	req := getCountRequest{
		Keyspace:    c.keyspace,
		Key:         key,
		Parent:      fromColumnParent(parent),
		Predicate:   fromSlicePredicate(predicate),
		Consistency: int32(cl),
	}
	var resp getCountResponse
	if err := c.invoke(ctx, "GetCount", &req, &resp); err != nil {
		return 0, err
	}
	return resp.Count, nil
}

func (c *Client) MultigetCount(ctx context.Context, keys []string, parent wire.ColumnParent, predicate wire.SlicePredicate, cl wire.ConsistencyLevel) (map[string]int32, error) {
	req := multigetCountRequest{
		Keyspace:    c.keyspace,
		Keys:        keys,
		Parent:      fromColumnParent(parent),
		Predicate:   fromSlicePredicate(predicate),
		Consistency: int32(cl),
	}
	var resp multigetCountResponse
	if err := c.invoke(ctx, "MultigetCount", &req, &resp); err != nil {
		return nil, err
	}
	return resp.Counts, nil
}

func (c *Client) GetRangeSlices(ctx context.Context, parent wire.ColumnParent, predicate wire.SlicePredicate, keyRange wire.KeyRange, cl wire.ConsistencyLevel) ([]wire.KeySlice, error) {
	req := getRangeSlicesRequest{
		Keyspace:    c.keyspace,
		Parent:      fromColumnParent(parent),
		Predicate:   fromSlicePredicate(predicate),
		Range:       keyRangeDTO{StartKey: keyRange.StartKey, EndKey: keyRange.EndKey, Count: keyRange.Count},
		Consistency: int32(cl),
	}
	var resp keySlicesResponse
	if err := c.invoke(ctx, "GetRangeSlices", &req, &resp); err != nil {
		return nil, err
	}
	return toKeySlices(resp.Slices), nil
}

func (c *Client) GetIndexedSlices(ctx context.Context, parent wire.ColumnParent, clause wire.IndexClause, predicate wire.SlicePredicate, cl wire.ConsistencyLevel) ([]wire.KeySlice, error) {
	req := getIndexedSlicesRequest{
		Keyspace:    c.keyspace,
		Parent:      fromColumnParent(parent),
		Clause:      fromIndexClause(clause),
		Predicate:   fromSlicePredicate(predicate),
		Consistency: int32(cl),
	}
	var resp keySlicesResponse
	if err := c.invoke(ctx, "GetIndexedSlices", &req, &resp); err != nil {
		return nil, err
	}
	return toKeySlices(resp.Slices), nil
}

func (c *Client) BatchMutate(ctx context.Context, mutations map[string]map[string][]wire.Mutation, cl wire.ConsistencyLevel) error {
	byKey := make(map[string]map[string][]mutationDTO, len(mutations))
	for key, byFamily := range mutations {
		families := make(map[string][]mutationDTO, len(byFamily))
		for family, ms := range byFamily {
			dtos := make([]mutationDTO, 0, len(ms))
			for _, m := range ms {
				dtos = append(dtos, fromMutation(m))
			}
			families[family] = dtos
		}
		byKey[key] = families
	}
	req := batchMutateRequest{
		Keyspace:    c.keyspace,
		Mutations:   byKey,
		Consistency: int32(cl),
	}
	var resp emptyResponse
	return c.invoke(ctx, "BatchMutate", &req, &resp)
}

func (c *Client) Truncate(ctx context.Context, columnFamily string) error {
	req := truncateRequest{Keyspace: c.keyspace, ColumnFamily: columnFamily}
	var resp emptyResponse
	return c.invoke(ctx, "Truncate", &req, &resp)
}
