package entity_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/bnema/jsonpeek/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestErrorKinds_MatchSentinels(t *testing.T) {
	cause := errors.New("boom")

	parseErr := fmt.Errorf("format: %w", &entity.ParseError{Err: cause})
	assert.ErrorIs(t, parseErr, entity.ErrParse)
	assert.ErrorIs(t, parseErr, cause)
	assert.NotErrorIs(t, parseErr, entity.ErrStorageUnavailable)

	storageErr := &entity.StorageError{Op: "get history", Err: cause}
	assert.ErrorIs(t, storageErr, entity.ErrStorageUnavailable)
	assert.Contains(t, storageErr.Error(), "get history")

	missing := &entity.MissingElementError{Names: []string{"input", "output"}}
	assert.ErrorIs(t, missing, entity.ErrMissingElement)
	assert.Equal(t, "Missing elements: input, output", missing.Error())

	corrupt := &entity.CorruptEntryError{Content: "x", Err: cause}
	assert.ErrorIs(t, corrupt, entity.ErrHistoryEntryCorrupt)
}

func TestNewHistoryEntry_TimestampFormat(t *testing.T) {
	at := mustTime(t, "2024-05-06T07:08:09.123Z")
	entry := entity.NewHistoryEntry(`{"a":1}`, at)

	assert.Equal(t, "2024-05-06T07:08:09.123Z", entry.Timestamp)
	assert.True(t, entry.Time().Equal(at))
	assert.True(t, entity.HistoryEntry{Content: "1"}.Time().IsZero())
}
