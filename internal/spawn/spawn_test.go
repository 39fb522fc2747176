package spawn

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestRun_MissingTarget(t *testing.T) {
	err := Run(filepath.Join(t.TempDir(), "gone.exe"))
	if !errors.Is(err, ErrTargetMissing) {
		t.Fatalf("expected ErrTargetMissing, got %v", err)
	}

	err = RunElevated(filepath.Join(t.TempDir(), "gone.exe"))
	if !errors.Is(err, ErrTargetMissing) {
		t.Fatalf("expected ErrTargetMissing, got %v", err)
	}
}

func TestPSQuote(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`C:\Program Files\app.exe`, `C:\Program Files\app.exe`},
		{`C:\It's Here\app.exe`, `C:\It''s Here\app.exe`},
		{"''", "''''"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := psQuote(tt.in); got != tt.want {
			t.Errorf("psQuote(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParentDir(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`C:\Windows\notepad.exe`, `C:\Windows`},
		{`C:\Windows\System32\`, `C:\Windows`},
		{"/usr/bin/editor", "/usr/bin"},
		{"standalone", "standalone"},
	}
	for _, tt := range tests {
		if got := parentDir(tt.in); got != tt.want {
			t.Errorf("parentDir(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
