package port

import (
	"context"

	"github.com/bnema/jsonpeek/internal/domain/entity"
)

// Exporter delivers a file artifact to the user.
type Exporter interface {
	// Export writes the artifact and returns where it ended up.
	Export(ctx context.Context, artifact entity.Artifact) (string, error)
}
