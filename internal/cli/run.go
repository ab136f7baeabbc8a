package cli

import (
	"fmt"
	"io"

	"github.com/EmergencyTemporalShift/Winpath/internal/types"
	"github.com/EmergencyTemporalShift/Winpath/internal/validation"
	"github.com/EmergencyTemporalShift/Winpath/pkg/winpath"
)

// run converts the path and dispatches on the selected mode. out is
// where print mode writes the converted path; confirmations go to the
// logger on stderr so stdout stays clean.
func run(ctx *AppContext, out io.Writer, opts *Options) error {
	log := ctx.Logger

	raw := opts.Path
	if !winpath.IsWindowsPath(raw) {
		log.Debug("Input has no Windows-style markers, passing through: %s", validation.SanitizeString(raw))
	}

	converted := winpath.ToHostPath(raw)
	log.Debug("Converted %s -> %s (mode: %s, clipboard: %s)",
		validation.SanitizeString(raw), validation.SanitizeString(converted), opts.Mode, opts.Clipboard)

	switch opts.Mode {
	case types.ModePrint:
		fmt.Fprintln(out, converted)
		return nil

	case types.ModeCopy:
		tool, err := ctx.Host.CopyToClipboard(opts.Clipboard, converted)
		if err != nil {
			return err
		}
		log.Success("Copied %s to clipboard using %s", converted, tool)
		return nil

	default: // ModeOpen
		if err := ctx.Host.Open(converted); err != nil {
			// Fire-and-forget: the opener's fate does not affect the
			// exit status.
			log.Debug("Opener failed to start: %v", err)
		}
		log.Info("Opening %s", converted)
		return nil
	}
}
