//go:build windows

package spawn

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"

	"golang.org/x/sys/windows"
)

var chromeCandidates = []string{
	`C:\Program Files\Google\Chrome\Application\chrome.exe`,
	`C:\Program Files (x86)\Google\Chrome\Application\chrome.exe`,
}

// noConsole keeps child processes from flashing a console window, which
// matters because the launcher binaries are built windowed themselves.
func noConsole(cmd *exec.Cmd) *exec.Cmd {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		HideWindow:    true,
		CreationFlags: windows.CREATE_NO_WINDOW,
	}
	return cmd
}

func openCommand(dir string) *exec.Cmd {
	return exec.Command("explorer", dir)
}

// runCommand goes through PowerShell's Start-Process so the file is opened
// with its registered association and, when elevated, the UAC prompt.
func runCommand(path, dir string, elevated bool) *exec.Cmd {
	script := fmt.Sprintf("Start-Process -FilePath '%s' -WorkingDirectory '%s'", psQuote(path), psQuote(dir))
	if elevated {
		script += " -Verb RunAs"
	}
	return noConsole(exec.Command("powershell", "-NoProfile", "-WindowStyle", "Hidden", "-Command", script))
}

func chromeCommand(profileID string) (*exec.Cmd, error) {
	for _, candidate := range chromeCandidates {
		if _, err := os.Stat(candidate); err == nil {
			return noConsole(exec.Command(candidate, "--profile-directory="+profileID)), nil
		}
	}
	return nil, ErrChromeNotFound
}
