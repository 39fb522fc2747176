//go:build !windows

package spawn

import (
	"os"
	"os/exec"
	"runtime"
)

const macChromePath = "/Applications/Google Chrome.app/Contents/MacOS/Google Chrome"

func opener() string {
	if runtime.GOOS == "darwin" {
		return "open"
	}
	return "xdg-open"
}

func openCommand(dir string) *exec.Cmd {
	return exec.Command(opener(), dir)
}

// runCommand opens the target through the desktop opener, the closest
// counterpart to Windows file associations. Elevation has no desktop
// equivalent here, so the flag is ignored.
func runCommand(path, dir string, elevated bool) *exec.Cmd {
	cmd := exec.Command(opener(), path)
	cmd.Dir = dir
	return cmd
}

func chromeCommand(profileID string) (*exec.Cmd, error) {
	if runtime.GOOS == "darwin" {
		if _, err := os.Stat(macChromePath); err != nil {
			return nil, ErrChromeNotFound
		}
		return exec.Command(macChromePath, "--profile-directory="+profileID), nil
	}
	return exec.Command("google-chrome", "--profile-directory="+profileID), nil
}
