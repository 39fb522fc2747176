//go:build !windows

package icon

import (
	"errors"

	"github.com/gotk3/gotk3/gdk"
)

// ErrShellUnsupported is returned by the shell strategy on platforms
// without a native file-association icon service.
var ErrShellUnsupported = errors.New("shell icon extraction is not supported on this platform")

func shellIcon(path string, size int) (*gdk.Pixbuf, error) {
	return nil, ErrShellUnsupported
}
