package icon

import (
	"os"
	"path/filepath"
	"strings"
)

// Bucket groups file extensions into the coarse categories the fallback
// glyph table distinguishes.
type Bucket int

const (
	BucketOther Bucket = iota
	BucketExecutable
	BucketScript
	BucketDocument
	BucketMedia
	BucketShortcut
	BucketDirectory
)

func (b Bucket) String() string {
	switch b {
	case BucketExecutable:
		return "executable"
	case BucketScript:
		return "script"
	case BucketDocument:
		return "document"
	case BucketMedia:
		return "media"
	case BucketShortcut:
		return "shortcut"
	case BucketDirectory:
		return "directory"
	default:
		return "other"
	}
}

var bucketByExt = map[string]Bucket{
	".exe": BucketExecutable,
	".msi": BucketExecutable,
	".bat": BucketExecutable,
	".cmd": BucketExecutable,
	".com": BucketExecutable,

	".py":  BucketScript,
	".pyw": BucketScript,
	".js":  BucketScript,
	".vbs": BucketScript,
	".ps1": BucketScript,

	".txt":  BucketDocument,
	".doc":  BucketDocument,
	".docx": BucketDocument,
	".pdf":  BucketDocument,
	".rtf":  BucketDocument,

	".mp3": BucketMedia,
	".mp4": BucketMedia,
	".avi": BucketMedia,
	".mov": BucketMedia,
	".wav": BucketMedia,

	".lnk": BucketShortcut,
}

// Classify maps a path to its glyph bucket. Directories are detected by
// stat; anything unreadable falls through to the extension table.
func Classify(path string) Bucket {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return BucketDirectory
	}

	ext := strings.ToLower(filepath.Ext(path))
	if b, ok := bucketByExt[ext]; ok {
		return b
	}
	return BucketOther
}

// themeIconName returns the freedesktop icon name the theme strategy looks
// up for a bucket.
func (b Bucket) themeIconName() string {
	switch b {
	case BucketExecutable:
		return "application-x-executable"
	case BucketScript:
		return "text-x-script"
	case BucketDocument:
		return "x-office-document"
	case BucketMedia:
		return "video-x-generic"
	case BucketShortcut:
		return "emblem-symbolic-link"
	case BucketDirectory:
		return "folder"
	default:
		return "text-x-generic"
	}
}

// glyphPixel is the RGBA fill color of the built-in glyph tile for a
// bucket. These are the final fallback and must never depend on an
// installed theme.
func (b Bucket) glyphPixel() uint32 {
	switch b {
	case BucketExecutable:
		return 0x458588ff
	case BucketScript:
		return 0x98971aff
	case BucketDocument:
		return 0xd79921ff
	case BucketMedia:
		return 0xb16286ff
	case BucketShortcut:
		return 0x689d6aff
	case BucketDirectory:
		return 0xd65d0eff
	default:
		return 0x7c6f64ff
	}
}
