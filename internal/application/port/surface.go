package port

import (
	"context"
	"time"

	"github.com/bnema/jsonpeek/internal/domain/entity"
	"github.com/bnema/jsonpeek/internal/domain/highlight"
)

// TextInput is the editable JSON input.
type TextInput interface {
	Value() string
	SetValue(text string)
}

// OutputDisplay shows the result of an action.
type OutputDisplay interface {
	ShowStyled(out highlight.Styled)
	ShowText(text string)
	Clear()
}

// MessageArea shows a transient message that dismisses itself after d.
type MessageArea interface {
	Show(message string, d time.Duration)
	Clear()
}

// HistoryView lists recent history entries and reports selections.
type HistoryView interface {
	ShowEntries(entries []entity.HistoryEntry)
	ShowUnavailable(reason string)
	OnSelect(action func(ctx context.Context, entry entity.HistoryEntry))
}

// Trigger runs its bound action when the user activates it.
type Trigger interface {
	Bind(action func(ctx context.Context))
}

// Surface groups the element handles the popup controller drives.
// Toast is optional, every other handle is required.
type Surface struct {
	Input           TextInput
	Output          OutputDisplay
	ErrorMessage    MessageArea
	HistoryList     HistoryView
	FormatTrigger   Trigger
	CompressTrigger Trigger
	ExportTrigger   Trigger
	Toast           MessageArea
}

// Missing returns the names of required handles that are nil.
func (s Surface) Missing() []string {
	var missing []string
	if s.Input == nil {
		missing = append(missing, "input")
	}
	if s.Output == nil {
		missing = append(missing, "output")
	}
	if s.ErrorMessage == nil {
		missing = append(missing, "errorMsg")
	}
	if s.HistoryList == nil {
		missing = append(missing, "historyList")
	}
	if s.FormatTrigger == nil {
		missing = append(missing, "formatBtn")
	}
	if s.CompressTrigger == nil {
		missing = append(missing, "compressBtn")
	}
	if s.ExportTrigger == nil {
		missing = append(missing, "exportBtn")
	}
	return missing
}
