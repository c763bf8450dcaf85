package columnfamily

import "errors"

var (
	// ErrFamilyNotFound reports a column family missing from the schema
	// catalog. It is raised at handle construction, before any marshaling
	// is attempted.
	ErrFamilyNotFound = errors.New("column family not found")
	// ErrRowNotFound reports a single-key Get that matched zero columns,
	// or an indexed query that matched zero rows. Multiget and range scans
	// never raise it; they represent absence by omission.
	ErrRowNotFound = errors.New("row not found")
)
