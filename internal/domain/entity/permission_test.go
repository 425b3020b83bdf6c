package entity_test

import (
	"testing"

	"github.com/bnema/jsonpeek/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestPermissionType_Constants(t *testing.T) {
	assert.Equal(t, "storage", string(entity.PermissionTypeStorage))
	assert.Equal(t, "clipboard", string(entity.PermissionTypeClipboard))
}

func TestPermissionTypesToStrings(t *testing.T) {
	got := entity.PermissionTypesToStrings([]entity.PermissionType{
		entity.PermissionTypeStorage,
		entity.PermissionTypeClipboard,
	})
	assert.Equal(t, []string{"storage", "clipboard"}, got)
}
