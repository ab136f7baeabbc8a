package cli

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"testing"
	"time"

	"github.com/EmergencyTemporalShift/Winpath/internal/config"
	"github.com/EmergencyTemporalShift/Winpath/internal/host"
	"github.com/EmergencyTemporalShift/Winpath/internal/logging"
	"github.com/EmergencyTemporalShift/Winpath/internal/types"
)

type recordedCall struct {
	name  string
	args  []string
	stdin string
}

func newTestContext(t *testing.T, present ...string) (*AppContext, *[]recordedCall, *[]recordedCall) {
	t.Helper()

	available := map[string]bool{}
	for _, name := range present {
		available[name] = true
	}

	logger := logging.New(true, false)
	client := host.NewClient(logger, config.DefaultOpener, 5*time.Second)

	var runs, spawns []recordedCall
	client.LookPath = func(name string) (string, error) {
		if available[name] {
			return "/usr/bin/" + name, nil
		}
		return "", exec.ErrNotFound
	}
	client.RunTool = func(ctx context.Context, stdin, name string, args ...string) error {
		runs = append(runs, recordedCall{name: name, args: args, stdin: stdin})
		return nil
	}
	client.Spawn = func(name string, args ...string) error {
		spawns = append(spawns, recordedCall{name: name, args: args})
		return nil
	}

	ctx := &AppContext{
		Config: &config.Config{Quiet: true, Opener: config.DefaultOpener, CopyTimeout: 5 * time.Second},
		Logger: logger,
		Host:   client,
	}
	return ctx, &runs, &spawns
}

func TestRunPrintMode(t *testing.T) {
	ctx, _, spawns := newTestContext(t)
	var out bytes.Buffer

	opts := &Options{Mode: types.ModePrint, Path: `Z:\home\user\file`}
	if err := run(ctx, &out, opts); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	if got := out.String(); got != "/home/user/file\n" {
		t.Errorf("stdout = %q, want %q", got, "/home/user/file\n")
	}
	if len(*spawns) != 0 {
		t.Errorf("print mode must not spawn anything, got %v", *spawns)
	}
}

func TestRunOpenMode(t *testing.T) {
	ctx, _, spawns := newTestContext(t)
	var out bytes.Buffer

	opts := &Options{Mode: types.ModeOpen, Path: `Z:\home\user\.local\share\Steam`}
	if err := run(ctx, &out, opts); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	if len(*spawns) != 1 {
		t.Fatalf("got %d spawns, want 1", len(*spawns))
	}
	sp := (*spawns)[0]
	if sp.name != config.DefaultOpener {
		t.Errorf("spawned %q, want %q", sp.name, config.DefaultOpener)
	}
	if len(sp.args) != 1 || sp.args[0] != "/home/user/.local/share/Steam" {
		t.Errorf("spawn args = %v, want the converted path", sp.args)
	}
	if out.Len() != 0 {
		t.Errorf("open mode must not write to stdout, got %q", out.String())
	}
}

func TestRunOpenModeIgnoresSpawnFailure(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	ctx.Host.Spawn = func(name string, args ...string) error {
		return errors.New("opener missing")
	}
	var out bytes.Buffer

	opts := &Options{Mode: types.ModeOpen, Path: "Z:/x"}
	if err := run(ctx, &out, opts); err != nil {
		t.Errorf("open mode must succeed even when the spawn fails, got %v", err)
	}
}

func TestRunCopyMode(t *testing.T) {
	ctx, runs, _ := newTestContext(t, host.XclipTool)
	var out bytes.Buffer

	opts := &Options{Mode: types.ModeCopy, Clipboard: types.ClipboardAuto, Path: "C:foo"}
	if err := run(ctx, &out, opts); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	if len(*runs) != 1 {
		t.Fatalf("got %d tool runs, want 1", len(*runs))
	}
	call := (*runs)[0]
	if call.name != host.XclipTool {
		t.Errorf("tool = %q, want %q", call.name, host.XclipTool)
	}
	if call.stdin != "/foo" {
		t.Errorf("stdin = %q, want %q", call.stdin, "/foo")
	}
}

func TestRunCopyModeNoTool(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	var out bytes.Buffer

	opts := &Options{Mode: types.ModeCopy, Clipboard: types.ClipboardWlCopy, Path: "Z:/x"}
	err := run(ctx, &out, opts)
	if !errors.Is(err, types.ErrToolNotFound) {
		t.Fatalf("error = %v, want ErrToolNotFound", err)
	}
}
