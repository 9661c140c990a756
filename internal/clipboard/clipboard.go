// Package clipboard provides cross-platform clipboard access via shell commands.
package clipboard

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// ErrClipboardUnavailable is returned when clipboard access is not available.
var ErrClipboardUnavailable = errors.New("clipboard unavailable")

// Copier receives text destined for the clipboard.
type Copier interface {
	Copy(text string) error
}

// System copies through the platform clipboard tool.
// Command, if set, overrides detection (e.g. "wl-copy" or "xsel --clipboard --input").
type System struct {
	Command string
}

// Copy implements Copier.
func (s System) Copy(text string) error {
	cmd, err := s.command()
	if err != nil {
		return err
	}
	cmd.Stdin = strings.NewReader(text)
	if out, err := cmd.CombinedOutput(); err != nil {
		if msg := strings.TrimSpace(string(out)); msg != "" {
			return fmt.Errorf("running %s: %w: %s", cmd.Path, err, msg)
		}
		return fmt.Errorf("running %s: %w", cmd.Path, err)
	}
	return nil
}

// Tool returns the clipboard command line that Copy would run, or "" if none.
func (s System) Tool() string {
	cmd, err := s.command()
	if err != nil {
		return ""
	}
	return strings.Join(cmd.Args, " ")
}

func (s System) command() (*exec.Cmd, error) {
	if fields := strings.Fields(s.Command); len(fields) > 0 {
		if _, err := exec.LookPath(fields[0]); err != nil {
			return nil, fmt.Errorf("%w: %s not found", ErrClipboardUnavailable, fields[0])
		}
		return exec.Command(fields[0], fields[1:]...), nil
	}
	return getClipboardCommand()
}

// getClipboardCommand picks the clipboard tool for this platform.
func getClipboardCommand() (*exec.Cmd, error) {
	switch runtime.GOOS {
	case "darwin":
		if _, err := exec.LookPath("pbcopy"); err == nil {
			return exec.Command("pbcopy"), nil
		}
	case "windows":
		if _, err := exec.LookPath("clip"); err == nil {
			return exec.Command("clip"), nil
		}
	case "linux", "freebsd", "openbsd", "netbsd":
		// Wayland first when a compositor is running, then X11 tools
		if os.Getenv("WAYLAND_DISPLAY") != "" {
			if _, err := exec.LookPath("wl-copy"); err == nil {
				return exec.Command("wl-copy"), nil
			}
		}
		if _, err := exec.LookPath("xclip"); err == nil {
			return exec.Command("xclip", "-selection", "clipboard"), nil
		}
		if _, err := exec.LookPath("xsel"); err == nil {
			return exec.Command("xsel", "--clipboard", "--input"), nil
		}
	}
	return nil, ErrClipboardUnavailable
}
