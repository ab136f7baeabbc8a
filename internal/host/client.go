// Package host invokes the host desktop utilities winpath relies on:
// clipboard tools and the default-open mechanism.
package host

import (
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/EmergencyTemporalShift/Winpath/internal/logging"
	"github.com/EmergencyTemporalShift/Winpath/internal/types"
)

// Known clipboard backends, probed in this order in auto mode.
const (
	WlCopyTool = "wl-copy"
	XclipTool  = "xclip"
)

// Client handles host utility invocations
type Client struct {
	logger      *logging.Logger
	opener      string
	copyTimeout time.Duration

	// Exec hooks, replaceable in tests.
	LookPath func(name string) (string, error)
	RunTool  func(ctx context.Context, stdin, name string, args ...string) error
	Spawn    func(name string, args ...string) error
}

// NewClient creates a new host client
func NewClient(logger *logging.Logger, opener string, copyTimeout time.Duration) *Client {
	return &Client{
		logger:      logger,
		opener:      opener,
		copyTimeout: copyTimeout,
		LookPath:    exec.LookPath,
		RunTool:     runTool,
		Spawn:       spawn,
	}
}

func runTool(ctx context.Context, stdin, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = strings.NewReader(stdin)
	return cmd.Run()
}

// spawn starts a detached process. Its streams stay connected to the
// null device so they never interleave with our output, and it is
// released immediately instead of waited on.
func spawn(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}

// ToolAvailable reports whether an executable is on the search path.
func (c *Client) ToolAvailable(name string) bool {
	_, err := c.LookPath(name)
	return err == nil
}

// CopyToClipboard resolves a clipboard backend for the preference and
// feeds text to it on its standard input, with no trailing newline.
// It returns the name of the tool used.
func (c *Client) CopyToClipboard(pref types.ClipboardTool, text string) (string, error) {
	name, args, err := c.resolveBackend(pref)
	if err != nil {
		return "", err
	}

	c.logger.Debug("Running: %s %s", name, strings.Join(args, " "))

	ctx, cancel := context.WithTimeout(context.Background(), c.copyTimeout)
	defer cancel()

	if err := c.RunTool(ctx, text, name, args...); err != nil {
		return "", &types.AppError{Op: "copy", Tool: name, Err: err}
	}
	return name, nil
}

func (c *Client) resolveBackend(pref types.ClipboardTool) (string, []string, error) {
	switch pref {
	case types.ClipboardWlCopy:
		if !c.ToolAvailable(WlCopyTool) {
			return "", nil, &types.AppError{
				Op:   "copy",
				Tool: WlCopyTool,
				Err:  types.ErrToolNotFound,
				Help: "Install wl-clipboard, or use -x to copy with xclip.",
			}
		}
		return WlCopyTool, nil, nil

	case types.ClipboardXclip:
		if !c.ToolAvailable(XclipTool) {
			return "", nil, &types.AppError{
				Op:   "copy",
				Tool: XclipTool,
				Err:  types.ErrToolNotFound,
				Help: "Install xclip, or use -w to copy with wl-copy.",
			}
		}
		return XclipTool, []string{"-selection", "clipboard"}, nil

	default: // auto: wl-copy first, then xclip
		if c.ToolAvailable(WlCopyTool) {
			c.logger.Debug("Auto-detected clipboard tool: %s", WlCopyTool)
			return WlCopyTool, nil, nil
		}
		if c.ToolAvailable(XclipTool) {
			c.logger.Debug("Auto-detected clipboard tool: %s", XclipTool)
			return XclipTool, []string{"-selection", "clipboard"}, nil
		}
		return "", nil, &types.AppError{
			Op:   "copy",
			Err:  types.ErrNoClipboardTool,
			Help: "Install wl-clipboard (Wayland) or xclip (X11) to enable clipboard copies.",
		}
	}
}

// Open launches the default-open mechanism on path as a detached
// process. The launch outcome is deliberately not part of this
// process's exit status; a start failure is only surfaced to the
// caller for debug logging.
func (c *Client) Open(path string) error {
	c.logger.Debug("Spawning: %s %s", c.opener, path)
	return c.Spawn(c.opener, path)
}
