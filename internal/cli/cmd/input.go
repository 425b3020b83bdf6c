package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/jsonpeek/internal/application/port"
	"github.com/bnema/jsonpeek/internal/application/usecase"
	"github.com/bnema/jsonpeek/internal/cli"
	"github.com/bnema/jsonpeek/internal/cli/styles"
	"github.com/bnema/jsonpeek/internal/domain/highlight"
	"github.com/bnema/jsonpeek/internal/infrastructure/surface"
)

// maxInputBytes bounds what is read from a file or stdin.
var maxInputBytes int64 = 64 << 20

// readInput returns the JSON text named by args: a file path, or stdin when
// the argument is missing or "-".
func readInput(cmd *cobra.Command, args []string) (string, error) {
	var r io.Reader
	name := "stdin"
	if len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		r = f
		name = args[0]
	} else {
		r = cmd.InOrStdin()
	}

	data, err := io.ReadAll(io.LimitReader(r, maxInputBytes+1))
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", name, err)
	}
	if int64(len(data)) > maxInputBytes {
		return "", fmt.Errorf("%s is larger than %d bytes", name, maxInputBytes)
	}
	return string(data), nil
}

// oneShot is a popup controller driven through a headless surface.
type oneShot struct {
	buf  *surface.Buffer
	ctrl *usecase.PopupController
}

// newOneShot builds a controller for a single CLI action. A nil clipboard
// disables copying.
func newOneShot(a *cli.App, clip port.Clipboard) (*oneShot, error) {
	buf := surface.NewBuffer()
	ctrl, err := a.NewPopup(a.Ctx(), buf.Surface(), clip)
	if err != nil {
		return nil, err
	}
	return &oneShot{buf: buf, ctrl: ctrl}, nil
}

// report prints confirmations and any error still on display to stderr.
// Errors that failed the action are returned to cobra instead.
func (o *oneShot) report(cmd *cobra.Command, theme *styles.Theme) {
	w := cmd.ErrOrStderr()
	for _, msg := range o.buf.Toast.All() {
		fmt.Fprintln(w, theme.SuccessStyle.Render(styles.IconCheck+" "+msg))
	}
	if msg := o.buf.Error.Current(); msg != "" {
		fmt.Fprintln(w, theme.ErrorStyle.Render(styles.IconX+" "+msg))
	}
}

// writeStyled prints highlighted output as HTML or through the ANSI palette.
func writeStyled(cmd *cobra.Command, theme *styles.Theme, out highlight.Styled, asHTML bool) {
	w := cmd.OutOrStdout()
	if asHTML {
		fmt.Fprintln(w, out.HTML())
		return
	}
	palette := styles.NewANSIPalette(theme.Name, styles.ParseColorMode(flagColor))
	fmt.Fprintln(w, out.Paint(palette))
}

func requireApp() (*cli.App, error) {
	a := GetApp()
	if a == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return a, nil
}
