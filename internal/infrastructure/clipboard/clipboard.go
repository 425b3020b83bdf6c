// Package clipboard provides a clipboard adapter using wl-clipboard (Wayland) or
// xclip/xsel (X11), falling back to the platform clipboard everywhere else.
package clipboard

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/bnema/jsonpeek/internal/application/port"
	"github.com/bnema/jsonpeek/internal/logging"
)

// ErrDisabled is returned by the disabled adapter.
var ErrDisabled = errors.New("clipboard disabled")

// tool describes one command-line clipboard helper.
type tool struct {
	copyName  string
	copyArgs  []string
	pasteName string
	pasteArgs []string
}

var (
	wlTool    = tool{copyName: "wl-copy", pasteName: "wl-paste", pasteArgs: []string{"--no-newline"}}
	xclipTool = tool{
		copyName: "xclip", copyArgs: []string{"-selection", "clipboard"},
		pasteName: "xclip", pasteArgs: []string{"-selection", "clipboard", "-o"},
	}
	xselTool = tool{
		copyName: "xsel", copyArgs: []string{"--clipboard", "--input"},
		pasteName: "xsel", pasteArgs: []string{"--clipboard", "--output"},
	}
)

// Adapter implements port.Clipboard using system clipboard tools.
type Adapter struct {
	copyCmd   string
	copyArgs  []string
	pasteCmd  string
	pasteArgs []string
}

type detector struct {
	getenv   func(string) string
	lookPath func(string) (string, error)
}

// New creates a new clipboard adapter.
// Wayland tools win over X11 ones. When neither is available the
// platform clipboard library is used.
func New() port.Clipboard {
	return detector{getenv: os.Getenv, lookPath: exec.LookPath}.detect()
}

func (d detector) detect() port.Clipboard {
	var candidates []tool
	if d.getenv("WAYLAND_DISPLAY") != "" {
		candidates = append(candidates, wlTool)
	}
	if d.getenv("DISPLAY") != "" {
		candidates = append(candidates, xclipTool, xselTool)
	}

	for _, t := range candidates {
		copyPath, err := d.lookPath(t.copyName)
		if err != nil {
			continue
		}
		pastePath, err := d.lookPath(t.pasteName)
		if err != nil {
			pastePath = ""
		}
		return &Adapter{
			copyCmd:   copyPath,
			copyArgs:  t.copyArgs,
			pasteCmd:  pastePath,
			pasteArgs: t.pasteArgs,
		}
	}

	return &System{}
}

// WriteText copies text to the clipboard.
func (a *Adapter) WriteText(ctx context.Context, text string) error {
	log := logging.FromContext(ctx)

	if a.copyCmd == "" {
		err := fmt.Errorf("no clipboard tool available (install wl-clipboard or xclip)")
		log.Error().Err(err).Msg("clipboard write failed")
		return err
	}

	cmd := exec.CommandContext(ctx, a.copyCmd, a.copyArgs...)
	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Run(); err != nil {
		log.Error().Err(err).Str("tool", filepath.Base(a.copyCmd)).Msg("clipboard write failed")
		return err
	}

	log.Debug().Str("tool", filepath.Base(a.copyCmd)).Int("len", len(text)).Msg("clipboard write success")
	return nil
}

// ReadText reads text from the clipboard.
func (a *Adapter) ReadText(ctx context.Context) (string, error) {
	log := logging.FromContext(ctx)

	if a.pasteCmd == "" {
		err := fmt.Errorf("no clipboard read tool available (install wl-clipboard or xclip)")
		log.Error().Err(err).Msg("clipboard read failed")
		return "", err
	}

	out, err := exec.CommandContext(ctx, a.pasteCmd, a.pasteArgs...).Output()
	if err != nil {
		log.Debug().Err(err).Str("tool", filepath.Base(a.pasteCmd)).Msg("clipboard read failed (may be empty)")
		return "", err
	}

	log.Debug().Str("tool", filepath.Base(a.pasteCmd)).Int("len", len(out)).Msg("clipboard read success")
	return string(out), nil
}

// System implements port.Clipboard on top of the platform clipboard library.
type System struct{}

// WriteText copies text to the clipboard.
func (*System) WriteText(ctx context.Context, text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard unsupported on this platform")
	}
	if err := clipboard.WriteAll(text); err != nil {
		logging.FromContext(ctx).Error().Err(err).Msg("clipboard write failed")
		return err
	}
	return nil
}

// ReadText reads text from the clipboard.
func (*System) ReadText(ctx context.Context) (string, error) {
	if clipboard.Unsupported {
		return "", fmt.Errorf("clipboard unsupported on this platform")
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("clipboard read failed (may be empty)")
		return "", err
	}
	return text, nil
}

// Disabled is used when clipboard access is turned off in the config.
type Disabled struct{}

func (Disabled) WriteText(context.Context, string) error { return ErrDisabled }

func (Disabled) ReadText(context.Context) (string, error) { return "", ErrDisabled }
