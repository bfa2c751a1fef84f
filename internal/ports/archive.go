package ports

import (
	"context"

	"promptvault/internal/domain"
)

// ArchiveCodec converts a full dataset to and from a compressed backup
// archive. Encode and Decode may be CPU-bound; both honor ctx so a caller
// can bound them.
type ArchiveCodec interface {
	// Encode assembles the archive: the authoritative JSON payload plus
	// one derived plain-text export per folder with green content. A
	// failure returns before any bytes are delivered.
	Encode(ctx context.Context, data domain.VaultData) ([]byte, error)

	// Decode opens the archive, locates the authoritative payload and
	// validates its shape. The derived exports are ignored. Any failure
	// is a validation error; the caller must not apply a partial result.
	Decode(ctx context.Context, archive []byte) (domain.VaultData, error)
}
