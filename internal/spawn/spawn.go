// Package spawn launches external programs on behalf of the UI. Every
// launch is fire-and-forget: the child is started, never waited on, and
// failures are returned for the caller to surface in a warning dialog.
package spawn

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
)

// ErrTargetMissing marks a launch attempt against a path that no longer
// exists. The pinned item itself is kept; only the launch is refused.
var ErrTargetMissing = errors.New("target no longer exists")

// ErrChromeNotFound is returned when no Chrome installation can be located.
var ErrChromeNotFound = errors.New("Google Chrome is not installed or not found in the default location")

// Open opens the path itself in the file manager, used for pinned folders.
func Open(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("%w: %s", ErrTargetMissing, path)
	}
	cmd := openCommand(path)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	log.Printf("[SPAWN] Opened %s", path)
	return nil
}

// OpenLocation opens the file manager on the directory containing path.
func OpenLocation(path string) error {
	dir := parentDir(path)
	cmd := openCommand(dir)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open location %s: %w", dir, err)
	}
	log.Printf("[SPAWN] Opened location %s", dir)
	return nil
}

// Run starts the target with its own directory as working directory.
func Run(path string) error {
	return run(path, false)
}

// RunElevated starts the target with an elevation prompt.
func RunElevated(path string) error {
	return run(path, true)
}

func run(path string, elevated bool) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("%w: %s", ErrTargetMissing, path)
	}

	cmd := runCommand(path, parentDir(path), elevated)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to run %s: %w", path, err)
	}
	log.Printf("[SPAWN] Started %s (elevated=%v)", path, elevated)
	return nil
}

// LaunchChromeProfile starts Chrome bound to the given profile directory.
// The child keeps running after we return; nothing is waited on.
func LaunchChromeProfile(profileID string) error {
	cmd, err := chromeCommand(profileID)
	if err != nil {
		return err
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to launch Chrome profile %s: %w", profileID, err)
	}
	log.Printf("[SPAWN] Launched Chrome profile %s", profileID)
	return nil
}

// psQuote escapes a value for a single-quoted PowerShell string, where the
// only special character is the quote itself, doubled to escape.
func psQuote(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// parentDir returns the containing directory, splitting on both separator
// styles so Windows paths behave even when inspected elsewhere.
func parentDir(path string) string {
	trimmed := strings.TrimRight(path, `\/`)
	if i := strings.LastIndexAny(trimmed, `\/`); i > 0 {
		return trimmed[:i]
	}
	return trimmed
}
