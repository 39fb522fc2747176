// Package icon resolves best-effort icons for arbitrary filesystem paths.
// Several extraction strategies are tried in a fixed priority order; the
// built-in glyph table is total, so resolution degrades to a placeholder
// tile instead of failing.
package icon

import (
	"fmt"
	"log"

	"github.com/gotk3/gotk3/gdk"
	"github.com/gotk3/gotk3/gtk"
)

// ExtractionError records which strategy failed and why. Failures are
// collected, not raised: the next strategy is always tried.
type ExtractionError struct {
	Strategy string
	Err      error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("icon strategy %s: %v", e.Strategy, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// Strategy is one independent way of obtaining an icon bitmap for a path.
// Load returns a pixbuf at (or near) the requested size.
type Strategy struct {
	Name string
	Load func(path string, size int) (*gdk.Pixbuf, error)
}

// Extractor resolves icons using the strategy chain and memoizes composed
// sets by (resolved path, sorted sizes).
type Extractor struct {
	settings   QualitySettings
	cache      *Cache[*Set]
	strategies []Strategy
}

// NewExtractor creates an extractor with the standard strategy order:
// native shell association, GTK icon theme, built-in glyph table.
func NewExtractor(settings QualitySettings) *Extractor {
	return &Extractor{
		settings: settings,
		cache:    NewCache[*Set](settings.CacheSizeLimit),
		strategies: []Strategy{
			{Name: "shell", Load: shellIcon},
			{Name: "theme", Load: themeIcon},
			{Name: "glyph", Load: glyphIcon},
		},
	}
}

// Settings returns the quality settings the extractor was built with.
func (e *Extractor) Settings() QualitySettings {
	return e.settings
}

// CacheLen reports how many composed icon sets are memoized.
func (e *Extractor) CacheLen() int {
	return e.cache.Len()
}

// ClearCache drops all memoized icon sets.
func (e *Extractor) ClearCache() {
	e.cache.Purge()
	log.Printf("[ICON] Extraction cache cleared")
}

// extractOne runs the strategy chain once for a single size. The first
// strategy returning a pixbuf wins; every failure is collected.
func (e *Extractor) extractOne(path string, size int) (*gdk.Pixbuf, []error) {
	var errs []error
	for _, s := range e.strategies {
		pb, err := s.Load(path, size)
		if err != nil {
			errs = append(errs, &ExtractionError{Strategy: s.Name, Err: err})
			continue
		}
		if pb != nil {
			return pb, errs
		}
	}
	return nil, errs
}

// ExtractMulti unions the strategy results across the size list into one
// multi-resolution set. Results are memoized FIFO by (path, sizes).
func (e *Extractor) ExtractMulti(path string, sizes []int) *Set {
	key := CacheKey(path, sizes)
	if e.settings.CacheEnabled {
		if set, ok := e.cache.Get(key); ok {
			return set
		}
	}

	set := NewSet()
	for _, size := range sizes {
		pb, errs := e.extractOne(path, size)
		for _, err := range errs {
			log.Printf("[ICON] %s (path=%s size=%d)", err, path, size)
		}
		if pb != nil {
			set.Add(pb)
		}
	}

	if e.settings.CacheEnabled {
		e.cache.Put(key, set)
	}
	return set
}

// Extract returns the best icon for a single target size. It never fails;
// at worst the result is the extension-bucket glyph, and nil only when
// pixbuf allocation itself is impossible.
func (e *Extractor) Extract(path string, size int) *gdk.Pixbuf {
	sizes := e.settings.PreferredSourceSizes
	if len(sizes) == 0 {
		sizes = []int{size}
	}
	set := e.ExtractMulti(path, sizes)

	if e.settings.UseDPIAwareScaling {
		return set.RenderForScale(size, displayScaleFactor(), e.settings)
	}
	return set.Render(size, e.settings)
}

// displayScaleFactor derives the UI scale from the screen DPI, defaulting
// to 1 when no screen is available (e.g. in tests).
func displayScaleFactor() float64 {
	screen, err := gdk.ScreenGetDefault()
	if err != nil || screen == nil {
		return 1
	}
	res := screen.GetResolution()
	if res <= 0 {
		return 1
	}
	return res / 96
}

// themeIcon looks up a generic freedesktop icon name for the path's bucket
// in the default GTK icon theme.
func themeIcon(path string, size int) (*gdk.Pixbuf, error) {
	theme, err := gtk.IconThemeGetDefault()
	if err != nil {
		return nil, fmt.Errorf("no default icon theme: %w", err)
	}

	name := Classify(path).themeIconName()
	pb, err := theme.LoadIcon(name, size, gtk.ICON_LOOKUP_USE_BUILTIN)
	if err != nil {
		return nil, fmt.Errorf("failed to load theme icon %q: %w", name, err)
	}
	return pb, nil
}

// glyphIcon renders the built-in placeholder tile for the path's bucket.
// This is the terminal fallback and depends on nothing outside the process.
func glyphIcon(path string, size int) (*gdk.Pixbuf, error) {
	pb, err := gdk.PixbufNew(gdk.COLORSPACE_RGB, true, 8, size, size)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate glyph pixbuf: %w", err)
	}
	pb.Fill(Classify(path).glyphPixel())
	return pb, nil
}
