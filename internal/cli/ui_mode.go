package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// uiModeDecision is the outcome of resolving the --ui flag: whether the
// live table runs, plus a warning to surface when the request was
// downgraded.
type uiModeDecision struct {
	useLive bool
	warning string
}

// isTerminal is swappable in tests to simulate TTY and pipe output.
var isTerminal = defaultIsTerminal

// resolveUIMode picks between the live lint table and plain text.
// Verbose output always wins over the live UI so per-file lines stay
// readable in scrollback.
func resolveUIMode(mode string, verbose bool, stdout io.Writer) (uiModeDecision, error) {
	if verbose {
		return uiModeDecision{useLive: false}, nil
	}
	normalized := strings.ToLower(strings.TrimSpace(mode))
	if normalized == "" {
		normalized = "auto"
	}
	switch normalized {
	case "auto":
		return uiModeDecision{useLive: isTerminal(stdout)}, nil
	case "live":
		if isTerminal(stdout) {
			return uiModeDecision{useLive: true}, nil
		}
		return uiModeDecision{
			useLive: false,
			warning: "--ui live needs a terminal; printing plain lint output instead.",
		}, nil
	case "plain":
		return uiModeDecision{useLive: false}, nil
	default:
		return uiModeDecision{}, fmt.Errorf("unknown ui mode %q: want auto, live, or plain", mode)
	}
}

// defaultIsTerminal reports whether the lint output goes to a TTY.
func defaultIsTerminal(stdout io.Writer) bool {
	if stdout == nil {
		return false
	}
	if file, ok := stdout.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	if fder, ok := stdout.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(fder.Fd()))
	}
	return false
}
