package cli

import (
	"strings"

	"github.com/EmergencyTemporalShift/Winpath/internal/types"
)

const usageText = `Usage: winpath [OPTIONS] [--] <windows-path>

Convert a Windows-style path from a Wine prefix to the host path,
then act on it. The default action opens the converted path in the
host file browser.

Options:
  -o, --output     Print the converted path to stdout
  -d, --dry-run    Same as --output
  -c, --clipboard  Copy the converted path (tries wl-copy, then xclip)
  -w, --wl-copy    Copy the converted path using wl-copy
  -x, --xclip      Copy the converted path using xclip
  -h, --help       Show this help
  -V, --version    Show version information

Example:
  winpath 'Z:\home\user\.local\share\Steam'
`

// Options is the immutable result of parsing the argument list.
type Options struct {
	Mode        types.Mode
	Clipboard   types.ClipboardTool
	Path        string
	ShowHelp    bool
	ShowVersion bool
}

// parseArgs consumes flags from the front of args until the first
// token not starting with "-", or a literal "--" (itself consumed).
// The next token is the path. Later flags override earlier ones, so
// the rightmost of conflicting mode or tool flags wins.
//
// Unrecognized dash-prefixed tokens are consumed and silently
// ignored. That matches the historical behavior; erroring instead
// would reject invocations that work today.
func parseArgs(args []string) (*Options, error) {
	opts := &Options{Mode: types.ModeOpen, Clipboard: types.ClipboardAuto}

	i := 0
	for i < len(args) {
		arg := args[i]
		if arg == "--" {
			i++
			break
		}
		if !strings.HasPrefix(arg, "-") {
			break
		}
		switch arg {
		case "-o", "--output", "-d", "--dry-run":
			opts.Mode = types.ModePrint
		case "-c", "--clipboard":
			opts.Mode = types.ModeCopy
			opts.Clipboard = types.ClipboardAuto
		case "-w", "--wl-copy":
			opts.Mode = types.ModeCopy
			opts.Clipboard = types.ClipboardWlCopy
		case "-x", "--xclip":
			opts.Mode = types.ModeCopy
			opts.Clipboard = types.ClipboardXclip
		case "-h", "--help":
			opts.ShowHelp = true
		case "-V", "--version":
			opts.ShowVersion = true
		}
		i++
	}

	if opts.ShowHelp || opts.ShowVersion {
		return opts, nil
	}

	if i >= len(args) || args[i] == "" {
		return nil, &types.AppError{Op: "parse", Err: types.ErrMissingPath, Help: usageText}
	}
	opts.Path = args[i]

	return opts, nil
}
