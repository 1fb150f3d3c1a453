// Package compiler wraps the external javac binary for post-hoc sanity
// checks on generated files. Results are advisory: the pipeline only
// logs them and never feeds them back into repair.
package compiler

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"
)

// Checker compiles a single generated file into a throwaway directory.
type Checker struct {
	javac   string
	timeout time.Duration
}

// NewChecker creates a Checker around the given javac path ("javac" to
// use PATH resolution).
func NewChecker(javacPath string) *Checker {
	return &Checker{javac: javacPath, timeout: 30 * time.Second}
}

// Check compiles the file and returns an error carrying javac's output
// when compilation fails. Missing collaborator classes will fail here;
// that is expected and exactly why the result is only logged.
func (c *Checker) Check(ctx context.Context, file string) error {
	tmpDir, err := os.MkdirTemp("", "testsmith-javac-*")
	if err != nil {
		return fmt.Errorf("failed to create scratch dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, c.javac, "-proc:none", "-nowarn", "-d", tmpDir, file)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("javac failed: %w\n%s", err, out)
	}
	return nil
}
