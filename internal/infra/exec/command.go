package exec

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"time"
)

// DefaultViewer returns the command and leading arguments that open an image
// with the desktop's default application on goos.
func DefaultViewer(goos string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{"-W"}
	case "windows":
		return "cmd", []string{"/c", "start", "/wait", ""}
	default:
		return "xdg-open", nil
	}
}

// ResolveViewer picks the configured viewer, falling back to the OS default.
func ResolveViewer(command string, args []string) (string, []string) {
	if command != "" {
		return command, args
	}
	name, defArgs := DefaultViewer(runtime.GOOS)
	return name, append(defArgs, args...)
}

// RunViewer launches command with args and waits for it to exit.
// A zero timeout means no limit beyond ctx.
// Returns combined output and error.
func RunViewer(ctx context.Context, timeout time.Duration, command string, args ...string) ([]byte, error) {
	if err := validateInstalled(command); err != nil {
		return nil, err
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, command, args...)
	cmd.WaitDelay = time.Second
	output, err := cmd.CombinedOutput()

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return output, fmt.Errorf("viewer %s timed out after %v", command, timeout)
	}
	if err != nil {
		return output, fmt.Errorf("viewer %s failed: %w", command, err)
	}
	return output, nil
}

// validateInstalled checks that command is in PATH
func validateInstalled(command string) error {
	if _, err := exec.LookPath(command); err != nil {
		return fmt.Errorf("viewer %q is not installed or not in PATH: %w", command, err)
	}
	return nil
}
