package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/bnema/jsonpeek/internal/application/port"
	"github.com/bnema/jsonpeek/internal/domain/entity"
	"github.com/bnema/jsonpeek/internal/domain/jsonvalue"
	"github.com/bnema/jsonpeek/internal/logging"
)

var emptyHistory = []byte("[]")

// ValidateEntry reports whether a history entry may be stored or shown.
// It is the one check shared by append, load, and the popup.
func ValidateEntry(entry entity.HistoryEntry) error {
	if err := jsonvalue.Valid(entry.Content); err != nil {
		return &entity.CorruptEntryError{Content: entry.Content, Err: err}
	}
	return nil
}

// HistoryStore keeps the bounded list of submitted JSON snippets.
type HistoryStore struct {
	store port.KeyValueStore
	now   func() time.Time
}

// HistoryStoreOption configures a HistoryStore.
type HistoryStoreOption func(*HistoryStore)

// WithClock overrides the time source used to stamp entries.
func WithClock(now func() time.Time) HistoryStoreOption {
	return func(h *HistoryStore) { h.now = now }
}

// NewHistoryStore creates a history store over the local scope of store.
func NewHistoryStore(store port.KeyValueStore, opts ...HistoryStoreOption) *HistoryStore {
	h := &HistoryStore{store: store, now: time.Now}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// historySlot is the decoded content of the history key.
// Items stay raw so unrecognised ones survive a rewrite.
type historySlot struct {
	items   []json.RawMessage
	corrupt bool
}

func (h *HistoryStore) read(ctx context.Context) (historySlot, error) {
	raw, found, err := h.store.Get(ctx, port.ScopeLocal, entity.HistoryKey)
	if err != nil {
		return historySlot{}, &entity.StorageError{Op: "read history", Err: err}
	}
	if !found {
		return historySlot{}, nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return historySlot{corrupt: true}, nil
	}
	return historySlot{items: items}, nil
}

func (h *HistoryStore) write(ctx context.Context, items []json.RawMessage) error {
	if items == nil {
		items = []json.RawMessage{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}
	if err := h.store.Set(ctx, port.ScopeLocal, entity.HistoryKey, data); err != nil {
		return &entity.StorageError{Op: "write history", Err: err}
	}
	return nil
}

// Append stores raw as the newest entry. Text that is not valid JSON is
// dropped without error. Only the last HistoryMaxEntries items are kept.
func (h *HistoryStore) Append(ctx context.Context, raw string) error {
	log := logging.FromContext(ctx)

	entry := entity.NewHistoryEntry(raw, h.now())
	if err := ValidateEntry(entry); err != nil {
		log.Warn().Err(err).Str("content", logging.TruncateContent(raw, 80)).Msg("discarding invalid history entry")
		return nil
	}

	slot, err := h.read(ctx)
	if err != nil {
		return err
	}
	if slot.corrupt {
		log.Warn().Msg("history slot is not a list, overwriting")
	}

	item, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode history entry: %w", err)
	}

	items := append(slot.items, item)
	if len(items) > entity.HistoryMaxEntries {
		items = items[len(items)-entity.HistoryMaxEntries:]
	}

	if err := h.write(ctx, items); err != nil {
		return err
	}

	log.Debug().Int("entries", len(items)).Msg("history entry saved")
	return nil
}

// Load returns up to limit recent entries, newest first. A limit of zero or
// less returns everything. Entries that fail validation are skipped. A slot
// that is not a list is reset to an empty list.
func (h *HistoryStore) Load(ctx context.Context, limit int) ([]entity.HistoryEntry, error) {
	log := logging.FromContext(ctx)

	slot, err := h.read(ctx)
	if err != nil {
		return nil, err
	}
	if slot.corrupt {
		log.Warn().Msg("history slot is not a list, resetting")
		if err := h.write(ctx, nil); err != nil {
			log.Error().Err(err).Msg("failed to reset corrupt history")
		}
		return []entity.HistoryEntry{}, nil
	}

	items := slot.items
	if limit > 0 && len(items) > limit {
		items = items[len(items)-limit:]
	}

	entries := make([]entity.HistoryEntry, 0, len(items))
	for i := len(items) - 1; i >= 0; i-- {
		entry, ok := decodeHistoryItem(items[i])
		if !ok {
			log.Warn().Err(entity.ErrHistoryEntryCorrupt).Msg("skipping unrecognised history item")
			continue
		}
		if err := ValidateEntry(entry); err != nil {
			log.Warn().Err(err).Str("content", logging.TruncateContent(entry.Content, 80)).Msg("skipping corrupt history entry")
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// RepairIfCorrupt resets the slot to an empty list when it does not hold a
// list. It reports whether a repair was written.
func (h *HistoryStore) RepairIfCorrupt(ctx context.Context) (bool, error) {
	slot, err := h.read(ctx)
	if err != nil {
		return false, err
	}
	if !slot.corrupt {
		return false, nil
	}
	if err := h.write(ctx, nil); err != nil {
		return false, err
	}
	logging.FromContext(ctx).Info().Msg("history storage repaired")
	return true, nil
}

// Clear removes every history entry.
func (h *HistoryStore) Clear(ctx context.Context) error {
	return h.write(ctx, nil)
}

// decodeHistoryItem reads either an entry object or a legacy bare string.
// Object entries whose content is a JSON value rather than a string keep the
// compact text of that value.
func decodeHistoryItem(raw json.RawMessage) (entity.HistoryEntry, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return entity.HistoryEntry{}, false
	}

	switch trimmed[0] {
	case '"':
		content, ok := decodeContent(trimmed)
		return entity.HistoryEntry{Content: content}, ok
	case '{':
		var item struct {
			Content   json.RawMessage `json:"content"`
			Timestamp any             `json:"timestamp"`
		}
		if err := json.Unmarshal(trimmed, &item); err != nil {
			return entity.HistoryEntry{}, false
		}
		content, ok := decodeContent(item.Content)
		if !ok {
			return entity.HistoryEntry{}, false
		}
		ts, _ := item.Timestamp.(string)
		return entity.HistoryEntry{Content: content, Timestamp: ts}, true
	default:
		return entity.HistoryEntry{}, false
	}
}

// decodeContent unquotes a string value and compacts any other non-null one.
func decodeContent(raw json.RawMessage) (string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", false
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", false
		}
		return s, true
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return "", false
	}
	return buf.String(), true
}
