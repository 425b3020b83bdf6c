package port

import (
	"context"

	"github.com/bnema/jsonpeek/internal/domain/entity"
)

// PermissionChecker answers whether a capability is available to the process.
type PermissionChecker interface {
	HasPermission(ctx context.Context, perm entity.PermissionType) bool
}
