// Package merge invokes the external ViolaCLI tool to combine enabled mods
// against the base cpk_list.cfg.bin, and moves the merged output into the
// game installation.
package merge

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"

	"vmm/internal/domain"
)

// Result contains the output from one ViolaCLI invocation
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner executes ViolaCLI merges. No timeout is enforced on the tool; the
// only way to interrupt a merge is cancelling ctx (best-effort stop on
// application exit).
type Runner struct{}

// NewRunner creates a merge runner
func NewRunner() *Runner {
	return &Runner{}
}

// Merge runs the tool at toolPath against cfgBin with modPaths as the
// ordered inputs, writing merged output under workDir. modPaths order is
// the merge priority and is passed through exactly as given.
func (r *Runner) Merge(ctx context.Context, toolPath, cfgBin string, modPaths []string, workDir string) (*Result, error) {
	result := &Result{}

	info, err := os.Stat(toolPath)
	if os.IsNotExist(err) {
		return result, fmt.Errorf("%w: %s", domain.ErrInvalidViola, toolPath)
	}
	if err != nil {
		return result, fmt.Errorf("checking merge tool: %w", err)
	}
	if info.IsDir() {
		return result, fmt.Errorf("%w: %s is a directory", domain.ErrInvalidViola, toolPath)
	}

	if err := os.MkdirAll(workDir, 0755); err != nil {
		return result, fmt.Errorf("creating work dir: %w", err)
	}

	args := append([]string{"merge", "--cfg", cfgBin, "--out", workDir}, modPaths...)
	cmd := exec.CommandContext(ctx, toolPath, args...)
	cmd.WaitDelay = 100 * time.Millisecond // Allow graceful shutdown after context cancel

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()
	result.Stdout = stdout.String()
	result.Stderr = stderr.String()

	if err != nil {
		if ctx.Err() != nil {
			return result, fmt.Errorf("merge interrupted: %w", ctx.Err())
		}
		if exitErr, ok := err.(*exec.ExitError); ok {
			result.ExitCode = exitErr.ExitCode()
			return result, fmt.Errorf("%w: exit code %d", domain.ErrMergeFailed, result.ExitCode)
		}
		return result, fmt.Errorf("running merge tool: %w", err)
	}

	return result, nil
}

// Cleanup removes the merge work directory. Best effort; a failure leaves
// the output behind for inspection.
func (r *Runner) Cleanup(workDir string) error {
	if err := os.RemoveAll(workDir); err != nil {
		return fmt.Errorf("cleaning work dir: %w", err)
	}
	return nil
}
