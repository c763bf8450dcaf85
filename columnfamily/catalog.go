package columnfamily

import (
	"context"
	"fmt"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/widerow/widerow/wire"
)

// Catalog is a client-side view of the keyspace's schema declarations. The
// keyspace is described once and cached, so many handles built over one
// connection share a single catalog fetch. Safe for concurrent use.
type Catalog struct {
	client   wire.Client
	families *xsync.MapOf[string, *wire.CfDef]
}

// NewCatalog creates an empty catalog over a client connection.
func NewCatalog(client wire.Client) *Catalog {
	return &Catalog{
		client:   client,
		families: xsync.NewMapOf[string, *wire.CfDef](),
	}
}

// Family returns the schema declaration of one column family, fetching the
// keyspace description on first use. A family absent from the catalog fails
// with ErrFamilyNotFound.
func (c *Catalog) Family(ctx context.Context, name string) (*wire.CfDef, error) {
	if def, ok := c.families.Load(name); ok {
		return def, nil
	}

	defs, err := c.client.DescribeKeyspace(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to describe keyspace: %w", err)
	}
	for n, d := range defs {
		c.families.Store(n, d)
	}

	def, ok := c.families.Load(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFamilyNotFound, name)
	}
	return def, nil
}
