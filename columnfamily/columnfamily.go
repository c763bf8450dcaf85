// Package columnfamily provides the caller-facing data-access handle for one
// column family of a remote wide-column store. It resolves the family's
// schema once at construction, packs and unpacks names and values under the
// declared comparator and validator types, shapes slice and range requests,
// and assembles wire results back into ordered mappings.
package columnfamily

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/widerow/widerow/marshal"
	"github.com/widerow/widerow/wire"
)

//go:generate mockgen -destination=./client_mock.go -package=columnfamily github.com/widerow/widerow/wire Client

const (
	defaultBufferSize  = 1024
	defaultColumnCount = 100
	defaultBatchSize   = 100
)

// TimestampedValue pairs an unpacked column value with its server-side
// write timestamp in microseconds. Reads return it in place of the bare
// value when timestamps are requested.
type TimestampedValue struct {
	Value     interface{}
	Timestamp int64
}

// ColumnFamily is a handle over one column family. Its schema-derived
// metadata is immutable after construction and safe for unsynchronized
// concurrent reads. The handle starts no goroutines and never retries;
// transport failures propagate to the caller unmodified.
type ColumnFamily struct {
	client       wire.Client
	name         string
	super        bool
	bufferSize   int
	maxBatchSize int
	readCL       wire.ConsistencyLevel
	writeCL      wire.ConsistencyLevel
	timestamp    func() int64
	newMap       MapFactory
	packNames    bool
	packValues   bool

	nameTag         marshal.Tag
	supercolNameTag marshal.Tag
	defaultValueTag marshal.Tag
	valueTags       map[string]marshal.Tag
}

type Config struct {
	// Client is the RPC surface of the remote store.
	Client wire.Client
	// Name is the column family this handle addresses.
	Name string
	// Super marks a two-level family whose column values are themselves
	// mappings of subcolumns.
	Super bool
	// BufferSize is the page size of range scans. Defaults to 1024.
	BufferSize int
	// MaxBatchSize caps the mutations per batch-mutate call. Defaults to 100.
	MaxBatchSize int
	// ReadConsistency and WriteConsistency default to ONE.
	ReadConsistency  wire.ConsistencyLevel
	WriteConsistency wire.ConsistencyLevel
	// Timestamp supplies write timestamps in microseconds. Injected so
	// tests can substitute a deterministic clock. Defaults to the wall
	// clock.
	Timestamp func() int64
	// MapFactory selects the result-map implementation. Defaults to the
	// insertion-ordered map.
	MapFactory MapFactory
	// DisableNamePacking and DisableValuePacking bypass schema-directed
	// marshaling independently; raw bytes then pass through unchanged.
	DisableNamePacking  bool
	DisableValuePacking bool
	// Catalog optionally shares one schema fetch across handles. A nil
	// catalog gets a private one.
	Catalog *Catalog
}

func (c *Config) validate() error {
	var errGrp []error
	if c.Client == nil {
		errGrp = append(errGrp, fmt.Errorf("client required"))
	}
	if c.Name == "" {
		errGrp = append(errGrp, fmt.Errorf("column family name required"))
	}
	return errors.Join(errGrp...)
}

// New constructs a handle for one column family. The family's schema is
// fetched synchronously before anything else; a family missing from the
// catalog fails with ErrFamilyNotFound.
func New(ctx context.Context, cfg *Config) (*ColumnFamily, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	catalog := cfg.Catalog
	if catalog == nil {
		catalog = NewCatalog(cfg.Client)
	}
	def, err := catalog.Family(ctx, cfg.Name)
	if err != nil {
		return nil, err
	}

	cf := &ColumnFamily{
		client:       cfg.Client,
		name:         cfg.Name,
		super:        cfg.Super,
		bufferSize:   cfg.BufferSize,
		maxBatchSize: cfg.MaxBatchSize,
		readCL:       cfg.ReadConsistency,
		writeCL:      cfg.WriteConsistency,
		timestamp:    cfg.Timestamp,
		newMap:       cfg.MapFactory,
		packNames:    !cfg.DisableNamePacking,
		packValues:   !cfg.DisableValuePacking,
	}
	if cf.bufferSize <= 0 {
		cf.bufferSize = defaultBufferSize
	}
	if cf.maxBatchSize <= 0 {
		cf.maxBatchSize = defaultBatchSize
	}
	if cf.readCL == 0 {
		cf.readCL = wire.ConsistencyOne
	}
	if cf.writeCL == 0 {
		cf.writeCL = wire.ConsistencyOne
	}
	if cf.timestamp == nil {
		cf.timestamp = func() int64 { return time.Now().UnixMicro() }
	}
	if cf.newMap == nil {
		cf.newMap = NewOrderedMap
	}

	if cf.packNames {
		if cf.super {
			cf.nameTag = marshal.ParseTypeName(def.SubcomparatorType)
			cf.supercolNameTag = marshal.ParseTypeName(def.ComparatorType)
		} else {
			cf.nameTag = marshal.ParseTypeName(def.ComparatorType)
		}
	}
	if cf.packValues {
		cf.defaultValueTag = marshal.ParseTypeName(def.DefaultValidationClass)
		cf.valueTags = make(map[string]marshal.Tag, len(def.ColumnMetadata))
		for _, cd := range def.ColumnMetadata {
			cf.valueTags[string(cd.Name)] = marshal.ParseTypeName(cd.ValidationClass)
		}
	}

	return cf, nil
}

// Name returns the column family this handle addresses.
func (cf *ColumnFamily) Name() string {
	return cf.name
}

// rcl returns the handle's read consistency if alternative is unset
func (cf *ColumnFamily) rcl(alternative wire.ConsistencyLevel) wire.ConsistencyLevel {
	if alternative == 0 {
		return cf.readCL
	}
	return alternative
}

// wcl returns the handle's write consistency if alternative is unset
func (cf *ColumnFamily) wcl(alternative wire.ConsistencyLevel) wire.ConsistencyLevel {
	if alternative == 0 {
		return cf.writeCL
	}
	return alternative
}
