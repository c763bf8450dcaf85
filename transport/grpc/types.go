package grpc

import (
	"github.com/widerow/widerow/wire"
)

// Request and response bodies for the Store service. Field names follow the
// gateway's JSON contract; byte slices travel as base64 strings under the
// standard encoding.

type describeKeyspaceRequest struct {
	Keyspace string `json:"keyspace"`
}

type describeKeyspaceResponse struct {
	Families map[string]cfDefDTO `json:"families"`
}

type getSliceRequest struct {
	Keyspace    string            `json:"keyspace"`
	Key         string            `json:"key"`
	Parent      columnParentDTO   `json:"parent"`
	Predicate   slicePredicateDTO `json:"predicate"`
	Consistency int32             `json:"consistency"`
}

type getSliceResponse struct {
	Columns []columnOrSuperColumnDTO `json:"columns"`
}

type multigetSliceRequest struct {
	Keyspace    string            `json:"keyspace"`
	Keys        []string          `json:"keys"`
	Parent      columnParentDTO   `json:"parent"`
	Predicate   slicePredicateDTO `json:"predicate"`
	Consistency int32             `json:"consistency"`
}

type multigetSliceResponse struct {
	Rows map[string][]columnOrSuperColumnDTO `json:"rows"`
}

type getCountRequest struct {
	Keyspace    string            `json:"keyspace"`
	Key         string            `json:"key"`
	Parent      columnParentDTO   `json:"parent"`
	Predicate   slicePredicateDTO `json:"predicate"`
	Consistency int32             `json:"consistency"`
}

type getCountResponse struct {
	Count int32 `json:"count"`
}

type multigetCountRequest struct {
	Keyspace    string            `json:"keyspace"`
	Keys        []string          `json:"keys"`
	Parent      columnParentDTO   `json:"parent"`
	Predicate   slicePredicateDTO `json:"predicate"`
	Consistency int32             `json:"consistency"`
}

type multigetCountResponse struct {
	Counts map[string]int32 `json:"counts"`
}

type getRangeSlicesRequest struct {
	Keyspace    string            `json:"keyspace"`
	Parent      columnParentDTO   `json:"parent"`
	Predicate   slicePredicateDTO `json:"predicate"`
	Range       keyRangeDTO       `json:"range"`
	Consistency int32             `json:"consistency"`
}

type getIndexedSlicesRequest struct {
	Keyspace    string            `json:"keyspace"`
	Parent      columnParentDTO   `json:"parent"`
	Clause      indexClauseDTO    `json:"clause"`
	Predicate   slicePredicateDTO `json:"predicate"`
	Consistency int32             `json:"consistency"`
}

type keySlicesResponse struct {
	Slices []keySliceDTO `json:"slices"`
}

type batchMutateRequest struct {
	Keyspace    string                              `json:"keyspace"`
	Mutations   map[string]map[string][]mutationDTO `json:"mutations"`
	Consistency int32                               `json:"consistency"`
}

type truncateRequest struct {
	Keyspace     string `json:"keyspace"`
	ColumnFamily string `json:"column_family"`
}

type emptyResponse struct{}

type columnParentDTO struct {
	ColumnFamily string `json:"column_family"`
	SuperColumn  []byte `json:"super_column,omitempty"`
}

func fromColumnParent(p wire.ColumnParent) columnParentDTO {
	return columnParentDTO{ColumnFamily: p.ColumnFamily, SuperColumn: p.SuperColumn}
}

// slicePredicateDTO flattens the two predicate forms into one body; exactly
// one of the fields is populated.
type slicePredicateDTO struct {
	ColumnNames [][]byte       `json:"column_names,omitempty"`
	SliceRange  *sliceRangeDTO `json:"slice_range,omitempty"`
}

type sliceRangeDTO struct {
	Start    []byte `json:"start"`
	Finish   []byte `json:"finish"`
	Reversed bool   `json:"reversed"`
	Count    int32  `json:"count"`
}

func fromSlicePredicate(p wire.SlicePredicate) slicePredicateDTO {
	switch v := p.(type) {
	case wire.ColumnNames:
		return slicePredicateDTO{ColumnNames: v}
	case *wire.SliceRange:
		return slicePredicateDTO{SliceRange: &sliceRangeDTO{
			Start:    v.Start,
			Finish:   v.Finish,
			Reversed: v.Reversed,
			Count:    v.Count,
		}}
	default:
		return slicePredicateDTO{}
	}
}

type keyRangeDTO struct {
	StartKey string `json:"start_key"`
	EndKey   string `json:"end_key"`
	Count    int32  `json:"count"`
}

type columnDTO struct {
	Name      []byte `json:"name"`
	Value     []byte `json:"value"`
	Timestamp int64  `json:"timestamp"`
	TTL       int32  `json:"ttl,omitempty"`
}

func fromColumn(c wire.Column) columnDTO {
	return columnDTO{Name: c.Name, Value: c.Value, Timestamp: c.Timestamp, TTL: c.TTL}
}

func (d columnDTO) toWire() wire.Column {
	return wire.Column{Name: d.Name, Value: d.Value, Timestamp: d.Timestamp, TTL: d.TTL}
}

type superColumnDTO struct {
	Name    []byte      `json:"name"`
	Columns []columnDTO `json:"columns"`
}

func fromSuperColumn(sc wire.SuperColumn) superColumnDTO {
	cols := make([]columnDTO, 0, len(sc.Columns))
	for _, c := range sc.Columns {
		cols = append(cols, fromColumn(c))
	}
	return superColumnDTO{Name: sc.Name, Columns: cols}
}

func (d superColumnDTO) toWire() wire.SuperColumn {
	cols := make([]wire.Column, 0, len(d.Columns))
	for _, c := range d.Columns {
		cols = append(cols, c.toWire())
	}
	return wire.SuperColumn{Name: d.Name, Columns: cols}
}

type columnOrSuperColumnDTO struct {
	Column      *columnDTO      `json:"column,omitempty"`
	SuperColumn *superColumnDTO `json:"super_column,omitempty"`
}

func toColumnOrSuperColumns(dtos []columnOrSuperColumnDTO) []wire.ColumnOrSuperColumn {
	if len(dtos) == 0 {
		return nil
	}
	out := make([]wire.ColumnOrSuperColumn, 0, len(dtos))
	for _, d := range dtos {
		var cosc wire.ColumnOrSuperColumn
		if d.Column != nil {
			c := d.Column.toWire()
			cosc.Column = &c
		}
		if d.SuperColumn != nil {
			sc := d.SuperColumn.toWire()
			cosc.SuperColumn = &sc
		}
		out = append(out, cosc)
	}
	return out
}

type keySliceDTO struct {
	Key     string                   `json:"key"`
	Columns []columnOrSuperColumnDTO `json:"columns"`
}

func toKeySlices(dtos []keySliceDTO) []wire.KeySlice {
	if len(dtos) == 0 {
		return nil
	}
	out := make([]wire.KeySlice, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, wire.KeySlice{Key: d.Key, Columns: toColumnOrSuperColumns(d.Columns)})
	}
	return out
}

type indexExpressionDTO struct {
	Name  []byte `json:"name"`
	Op    string `json:"op"`
	Value []byte `json:"value"`
}

type indexClauseDTO struct {
	Expressions []indexExpressionDTO `json:"expressions"`
	StartKey    string               `json:"start_key"`
	Count       int32                `json:"count"`
}

func fromIndexClause(clause wire.IndexClause) indexClauseDTO {
	exprs := make([]indexExpressionDTO, 0, len(clause.Expressions))
	for _, e := range clause.Expressions {
		exprs = append(exprs, indexExpressionDTO{
			Name:  e.ColumnName,
			Op:    e.Op.String(),
			Value: e.Value,
		})
	}
	return indexClauseDTO{Expressions: exprs, StartKey: clause.StartKey, Count: clause.Count}
}

type deletionDTO struct {
	Timestamp   int64              `json:"timestamp"`
	SuperColumn []byte             `json:"super_column,omitempty"`
	Predicate   *slicePredicateDTO `json:"predicate,omitempty"`
}

type mutationDTO struct {
	Column      *columnDTO      `json:"column,omitempty"`
	SuperColumn *superColumnDTO `json:"super_column,omitempty"`
	Deletion    *deletionDTO    `json:"deletion,omitempty"`
}

func fromMutation(m wire.Mutation) mutationDTO {
	var dto mutationDTO
	if m.Column != nil {
		c := fromColumn(*m.Column)
		dto.Column = &c
	}
	if m.SuperColumn != nil {
		sc := fromSuperColumn(*m.SuperColumn)
		dto.SuperColumn = &sc
	}
	if m.Deletion != nil {
		del := deletionDTO{Timestamp: m.Deletion.Timestamp, SuperColumn: m.Deletion.SuperColumn}
		if m.Deletion.Predicate != nil {
			p := fromSlicePredicate(m.Deletion.Predicate)
			del.Predicate = &p
		}
		dto.Deletion = &del
	}
	return dto
}

type columnDefDTO struct {
	Name            []byte `json:"name"`
	ValidationClass string `json:"validation_class"`
	IndexName       string `json:"index_name,omitempty"`
}

type cfDefDTO struct {
	Name                   string         `json:"name"`
	ComparatorType         string         `json:"comparator_type"`
	SubcomparatorType      string         `json:"subcomparator_type,omitempty"`
	DefaultValidationClass string         `json:"default_validation_class"`
	ColumnMetadata         []columnDefDTO `json:"column_metadata,omitempty"`
}

func (d cfDefDTO) toWire() *wire.CfDef {
	def := &wire.CfDef{
		Name:                   d.Name,
		ComparatorType:         d.ComparatorType,
		SubcomparatorType:      d.SubcomparatorType,
		DefaultValidationClass: d.DefaultValidationClass,
	}
	if len(d.ColumnMetadata) > 0 {
		def.ColumnMetadata = make([]wire.ColumnDef, 0, len(d.ColumnMetadata))
		for _, cd := range d.ColumnMetadata {
			def.ColumnMetadata = append(def.ColumnMetadata, wire.ColumnDef{
				Name:            cd.Name,
				ValidationClass: cd.ValidationClass,
				IndexName:       cd.IndexName,
			})
		}
	}
	return def
}
