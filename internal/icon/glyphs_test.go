package icon

import (
	"os"
	"path/filepath"
	"testing"
)

func TestClassify_Extensions(t *testing.T) {
	tests := []struct {
		path string
		want Bucket
	}{
		{"C:\\Windows\\notepad.exe", BucketExecutable},
		{"installer.MSI", BucketExecutable},
		{"run.bat", BucketExecutable},
		{"script.py", BucketScript},
		{"deploy.ps1", BucketScript},
		{"notes.txt", BucketDocument},
		{"report.PDF", BucketDocument},
		{"song.mp3", BucketMedia},
		{"clip.mp4", BucketMedia},
		{"app.lnk", BucketShortcut},
		{"archive.zip", BucketOther},
		{"no-extension", BucketOther},
	}

	for _, tt := range tests {
		if got := Classify(tt.path); got != tt.want {
			t.Errorf("Classify(%q) = %s, want %s", tt.path, got, tt.want)
		}
	}
}

func TestClassify_Directory(t *testing.T) {
	dir := t.TempDir()
	if got := Classify(dir); got != BucketDirectory {
		t.Fatalf("Classify(dir) = %s, want directory", got)
	}

	// A real file with a media extension still classifies by extension.
	file := filepath.Join(dir, "clip.mp4")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if got := Classify(file); got != BucketMedia {
		t.Fatalf("Classify(file) = %s, want media", got)
	}
}

func TestBucket_TotalGlyphTable(t *testing.T) {
	buckets := []Bucket{
		BucketOther, BucketExecutable, BucketScript,
		BucketDocument, BucketMedia, BucketShortcut, BucketDirectory,
	}
	for _, b := range buckets {
		if b.glyphPixel() == 0 {
			t.Errorf("bucket %s has no glyph color", b)
		}
		if b.themeIconName() == "" {
			t.Errorf("bucket %s has no theme icon name", b)
		}
	}
}

func TestQualitySettings_Defaults(t *testing.T) {
	s := DefaultQualitySettings()
	if !s.UseHighQualityScaling {
		t.Error("expected high quality scaling on by default")
	}
	if s.UseDPIAwareScaling {
		t.Error("expected DPI-aware scaling off by default")
	}
	if got, want := len(s.PreferredSourceSizes), 4; got != want {
		t.Fatalf("expected %d preferred sizes, got %d", want, got)
	}
	if s.FallbackScalingMethod != "smooth" {
		t.Errorf("unexpected fallback method %q", s.FallbackScalingMethod)
	}
	if !s.CacheEnabled || s.CacheSizeLimit != 100 {
		t.Errorf("unexpected cache defaults: enabled=%v limit=%d", s.CacheEnabled, s.CacheSizeLimit)
	}
}
