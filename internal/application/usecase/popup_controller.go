package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/jsonpeek/internal/application/port"
	"github.com/bnema/jsonpeek/internal/domain/entity"
	"github.com/bnema/jsonpeek/internal/domain/highlight"
	"github.com/bnema/jsonpeek/internal/domain/jsonvalue"
	"github.com/bnema/jsonpeek/internal/logging"
)

// Messages shown on the popup surface.
const (
	MsgEmptyInput         = "Please input JSON content"
	MsgCopied             = "Formatted JSON copied to clipboard!"
	MsgHistoryUnavailable = "History unavailable"
)

// ErrEmptyInput is wrapped in the ParseError returned for blank input.
var ErrEmptyInput = errors.New("empty input")

// Default popup timings and history size.
const (
	DefaultHistoryDisplayLimit  = 5
	DefaultErrorDisplayDuration = 5 * time.Second
	DefaultToastDuration        = 2 * time.Second
)

// PopupSettings tunes how the popup presents results.
type PopupSettings struct {
	HistoryDisplayLimit  int
	ErrorDisplayDuration time.Duration
	ToastDuration        time.Duration
}

// DefaultPopupSettings returns the built-in popup settings.
func DefaultPopupSettings() PopupSettings {
	return PopupSettings{
		HistoryDisplayLimit:  DefaultHistoryDisplayLimit,
		ErrorDisplayDuration: DefaultErrorDisplayDuration,
		ToastDuration:        DefaultToastDuration,
	}
}

func (s PopupSettings) withDefaults() PopupSettings {
	d := DefaultPopupSettings()
	if s.HistoryDisplayLimit < 0 {
		s.HistoryDisplayLimit = d.HistoryDisplayLimit
	}
	if s.ErrorDisplayDuration <= 0 {
		s.ErrorDisplayDuration = d.ErrorDisplayDuration
	}
	if s.ToastDuration <= 0 {
		s.ToastDuration = d.ToastDuration
	}
	return s
}

// PopupDeps holds the collaborators of a PopupController.
// Clipboard, Exporter and Permissions are optional.
type PopupDeps struct {
	Surface     port.Surface
	History     *HistoryStore
	Options     *OptionsManager
	Clipboard   port.Clipboard
	Exporter    port.Exporter
	Permissions port.PermissionChecker
	Settings    PopupSettings
}

// PopupController drives the format/compress/export workflow over a surface.
type PopupController struct {
	surface     port.Surface
	history     *HistoryStore
	options     *OptionsManager
	clipboard   port.Clipboard
	exporter    port.Exporter
	permissions port.PermissionChecker
	settings    PopupSettings

	opts   entity.Options
	state  entity.PopupState
	output string
}

// NewPopupController validates the surface and builds a controller.
func NewPopupController(deps PopupDeps) (*PopupController, error) {
	if missing := deps.Surface.Missing(); len(missing) > 0 {
		return nil, &entity.MissingElementError{Names: missing}
	}
	if deps.History == nil || deps.Options == nil {
		return nil, fmt.Errorf("popup controller requires history and options")
	}

	return &PopupController{
		surface:     deps.Surface,
		history:     deps.History,
		options:     deps.Options,
		clipboard:   deps.Clipboard,
		exporter:    deps.Exporter,
		permissions: deps.Permissions,
		settings:    deps.Settings.withDefaults(),
		opts:        entity.DefaultOptions(),
		state:       entity.PopupIdle,
	}, nil
}

// Init binds the surface triggers, loads options and shows the history.
// Storage problems degrade the history list instead of failing.
func (c *PopupController) Init(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	ctx = logging.WithComponent(ctx, "popup")
	log := logging.FromContext(ctx)

	if c.permissions != nil && !c.permissions.HasPermission(ctx, entity.PermissionTypeStorage) {
		log.Warn().Msg("storage permission missing, history may be unavailable")
	}

	c.surface.FormatTrigger.Bind(func(ctx context.Context) {
		_ = c.SubmitFormat(ctx, c.surface.Input.Value())
	})
	c.surface.CompressTrigger.Bind(func(ctx context.Context) {
		_ = c.SubmitCompress(ctx, c.surface.Input.Value())
	})
	c.surface.ExportTrigger.Bind(func(ctx context.Context) {
		_, _ = c.SubmitExport(ctx)
	})
	c.surface.HistoryList.OnSelect(func(ctx context.Context, entry entity.HistoryEntry) {
		_ = c.SelectHistoryEntry(ctx, entry)
	})

	opts, err := c.options.Load(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("using default options")
	}
	c.opts = opts

	if _, err := c.history.RepairIfCorrupt(ctx); err != nil {
		log.Warn().Err(err).Msg("history repair failed")
	}
	c.refreshHistory(ctx)

	log.Debug().Int("indent", c.opts.Indent).Str("theme", string(c.opts.Theme)).Msg("popup initialized")
	return nil
}

// State returns the current controller state.
func (c *PopupController) State() entity.PopupState { return c.state }

// Output returns the plain text of the current output, empty when there is none.
func (c *PopupController) Output() string { return c.output }

// Options returns the options in effect.
func (c *PopupController) Options() entity.Options { return c.opts }

// SetOptions replaces the options used for later renders.
func (c *PopupController) SetOptions(opts entity.Options) { c.opts = opts }

// SetSettings replaces timings and history size, e.g. after a config reload.
func (c *PopupController) SetSettings(s PopupSettings) { c.settings = s.withDefaults() }

// SubmitFormat formats raw, stores it in history and copies the result.
func (c *PopupController) SubmitFormat(ctx context.Context, raw string) error {
	log := logging.FromContext(ctx)

	v, err := c.parseInput(raw)
	if err != nil {
		return err
	}

	styled := highlight.Render(v, c.opts.Indent)
	c.surface.Output.ShowStyled(styled)
	c.output = styled.Plain()
	c.state = entity.PopupFormatted

	if err := c.history.Append(ctx, strings.TrimSpace(raw)); err != nil {
		log.Warn().Err(err).Msg("failed to save history")
	}
	c.refreshHistory(ctx)
	c.copy(ctx, c.output, "Saving to Clipboard")

	log.Debug().Int("bytes", len(c.output)).Msg("json formatted")
	return nil
}

// SubmitCompress minifies raw and copies the result. History is untouched.
func (c *PopupController) SubmitCompress(ctx context.Context, raw string) error {
	v, err := c.parseInput(raw)
	if err != nil {
		return err
	}

	c.output = highlight.Compact(v)
	c.surface.Output.ShowText(c.output)
	c.state = entity.PopupFormatted
	c.copy(ctx, c.output, "Compressing JSON")
	return nil
}

// SubmitExport packages the current output as a file. It returns nil, nil
// when there is nothing to export.
func (c *PopupController) SubmitExport(ctx context.Context) (*entity.Artifact, error) {
	if c.output == "" {
		return nil, nil
	}

	artifact := entity.NewExportArtifact(c.output)
	if c.exporter == nil {
		return &artifact, nil
	}

	path, err := c.exporter.Export(ctx, artifact)
	if err != nil {
		c.showError(ctx, "Exporting JSON", err)
		return nil, fmt.Errorf("failed to export: %w", err)
	}
	c.toast(fmt.Sprintf("Exported to %s", path))
	return &artifact, nil
}

// SelectHistoryEntry loads a history entry back into the input and renders it.
// Content that is not valid JSON and not already wrapped in braces is retried
// wrapped in braces, which restores bare member lists.
func (c *PopupController) SelectHistoryEntry(ctx context.Context, entry entity.HistoryEntry) error {
	c.surface.ErrorMessage.Clear()
	c.state = entity.PopupParsing

	text := entry.Content
	v, err := jsonvalue.Parse(text)
	if err != nil && !braceDelimited(text) {
		text = "{" + text + "}"
		v, err = jsonvalue.Parse(text)
	}
	c.surface.Input.SetValue(text)

	if err != nil {
		corrupt := &entity.CorruptEntryError{Content: entry.Content, Err: err}
		c.clearOutput()
		c.state = entity.PopupParseError
		c.surface.ErrorMessage.Show(corrupt.Error(), c.settings.ErrorDisplayDuration)
		logging.FromContext(ctx).Warn().Err(err).Msg("history entry could not be rendered")
		return corrupt
	}

	styled := highlight.Render(v, c.opts.Indent)
	c.surface.Output.ShowStyled(styled)
	c.output = styled.Plain()
	c.state = entity.PopupFormatted
	return nil
}

// Paste replaces the input with the clipboard text when it is valid JSON.
func (c *PopupController) Paste(ctx context.Context) error {
	if c.clipboard == nil {
		err := errors.New("clipboard unavailable")
		c.showError(ctx, "Pasting JSON", err)
		return err
	}

	text, err := c.clipboard.ReadText(ctx)
	if err != nil {
		c.showError(ctx, "Pasting JSON", err)
		return fmt.Errorf("failed to read clipboard: %w", err)
	}
	if err := jsonvalue.Valid(text); err != nil {
		c.showError(ctx, "Pasting JSON", err)
		return err
	}

	c.surface.Input.SetValue(text)
	c.surface.ErrorMessage.Clear()
	return nil
}

// parseInput runs the shared validity gate for format and compress.
func (c *PopupController) parseInput(raw string) (jsonvalue.Value, error) {
	c.surface.ErrorMessage.Clear()

	if strings.TrimSpace(raw) == "" {
		c.clearOutput()
		c.state = entity.PopupParseError
		c.surface.ErrorMessage.Show(MsgEmptyInput, c.settings.ErrorDisplayDuration)
		return jsonvalue.Value{}, &entity.ParseError{Err: ErrEmptyInput}
	}

	c.state = entity.PopupParsing
	v, err := jsonvalue.Parse(raw)
	if err != nil {
		c.clearOutput()
		c.state = entity.PopupParseError
		c.surface.ErrorMessage.Show(err.Error(), c.settings.ErrorDisplayDuration)
		return jsonvalue.Value{}, err
	}
	return v, nil
}

func (c *PopupController) refreshHistory(ctx context.Context) {
	entries, err := c.history.Load(ctx, c.settings.HistoryDisplayLimit)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("history unavailable")
		c.surface.HistoryList.ShowUnavailable(MsgHistoryUnavailable)
		return
	}
	c.surface.HistoryList.ShowEntries(entries)
}

func (c *PopupController) copy(ctx context.Context, text, action string) {
	if c.clipboard == nil {
		return
	}
	if c.permissions != nil && !c.permissions.HasPermission(ctx, entity.PermissionTypeClipboard) {
		return
	}
	if err := c.clipboard.WriteText(ctx, text); err != nil {
		c.showError(ctx, action, err)
		return
	}
	c.toast(MsgCopied)
}

func (c *PopupController) toast(message string) {
	if c.surface.Toast != nil {
		c.surface.Toast.Show(message, c.settings.ToastDuration)
	}
}

func (c *PopupController) showError(ctx context.Context, action string, err error) {
	logging.FromContext(ctx).Error().Err(err).Str("action", action).Msg("popup action failed")
	c.surface.ErrorMessage.Show(fmt.Sprintf("Error: %s - %s", action, err.Error()), c.settings.ErrorDisplayDuration)
}

func (c *PopupController) clearOutput() {
	c.output = ""
	c.surface.Output.Clear()
}

func braceDelimited(text string) bool {
	t := strings.TrimSpace(text)
	return strings.HasPrefix(t, "{") && strings.HasSuffix(t, "}")
}
