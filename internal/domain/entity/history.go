package entity

import "time"

// HistoryMaxEntries is the number of submissions kept in the history list.
const HistoryMaxEntries = 10

// HistoryTimestampLayout matches the ISO-8601 form produced by toISOString.
const HistoryTimestampLayout = "2006-01-02T15:04:05.000Z"

// HistoryKey is the storage key holding the history list in the local scope.
const HistoryKey = "history"

// HistoryEntry is one persisted JSON submission.
// Content is the raw text as submitted, never the formatted form.
type HistoryEntry struct {
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

// NewHistoryEntry creates a history entry stamped with the given time.
func NewHistoryEntry(content string, at time.Time) HistoryEntry {
	return HistoryEntry{
		Content:   content,
		Timestamp: at.UTC().Format(HistoryTimestampLayout),
	}
}

// Time parses the entry timestamp. Legacy entries without one return the zero time.
func (h HistoryEntry) Time() time.Time {
	if h.Timestamp == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, h.Timestamp)
	if err != nil {
		return time.Time{}
	}
	return t
}
