package platform

import (
	"bytes"
	"context"
	"os/exec"
	"time"
)

// DefaultWaitDelay bounds how long Run waits for output pipes to close after
// the process was killed
const DefaultWaitDelay = 2 * time.Second

// CommandRunner runs an external program to completion and returns its
// combined output
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands through os/exec. When ctx is done the process and
// everything it started are killed.
type ExecRunner struct {
	waitDelay time.Duration
}

// NewExecRunner creates a runner working in the current directory
func NewExecRunner() *ExecRunner {
	return &ExecRunner{waitDelay: DefaultWaitDelay}
}

// Run starts name with args and waits for it to exit
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	// A grandchild holding stdout (ffmpeg under yt-dlp) must not keep Wait
	// blocked past the deadline
	cmd.WaitDelay = r.waitDelay
	killProcessGroup(cmd)

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	err := cmd.Run()
	if ctx.Err() != nil {
		// Report the context error rather than "signal: killed"
		return out.Bytes(), ctx.Err()
	}
	return out.Bytes(), err
}
