package icon

import (
	"math"
	"sort"

	"github.com/gotk3/gotk3/gdk"
)

// Set is a multi-resolution icon: the union of strategy results across a
// size list, keyed by actual pixbuf width.
type Set struct {
	pixbufs map[int]*gdk.Pixbuf
}

// NewSet returns an empty icon set.
func NewSet() *Set {
	return &Set{pixbufs: make(map[int]*gdk.Pixbuf)}
}

// Add stores a pixbuf under its real width. A later pixbuf of the same
// width replaces the earlier one.
func (s *Set) Add(pb *gdk.Pixbuf) {
	if pb == nil {
		return
	}
	s.pixbufs[pb.GetWidth()] = pb
}

// Empty reports whether no strategy produced anything.
func (s *Set) Empty() bool {
	return len(s.pixbufs) == 0
}

// Sizes lists the available source widths in ascending order.
func (s *Set) Sizes() []int {
	sizes := make([]int, 0, len(s.pixbufs))
	for size := range s.pixbufs {
		sizes = append(sizes, size)
	}
	sort.Ints(sizes)
	return sizes
}

// Best picks the smallest available source at least as large as target, so
// rendering scales down rather than up. When every source is smaller, the
// largest one is returned.
func (s *Set) Best(target int) *gdk.Pixbuf {
	if s.Empty() {
		return nil
	}

	sizes := s.Sizes()
	for _, size := range sizes {
		if size >= target {
			return s.pixbufs[size]
		}
	}
	return s.pixbufs[sizes[len(sizes)-1]]
}

// Render produces a pixbuf at exactly the target size, smooth-rescaling
// from the best source when the settings ask for quality and using fast
// nearest-neighbour otherwise.
func (s *Set) Render(target int, settings QualitySettings) *gdk.Pixbuf {
	best := s.Best(target)
	if best == nil {
		return nil
	}
	if best.GetWidth() == target && best.GetHeight() == target {
		return best
	}

	interp := gdk.INTERP_NEAREST
	if settings.UseHighQualityScaling || settings.FallbackScalingMethod == "smooth" {
		interp = gdk.INTERP_HYPER
	}

	scaled, err := best.ScaleSimple(target, target, interp)
	if err != nil {
		return best
	}
	return scaled
}

// RenderForScale renders at target size multiplied by the display scale
// factor, for crisp icons on high-DPI screens.
func (s *Set) RenderForScale(target int, scale float64, settings QualitySettings) *gdk.Pixbuf {
	if scale <= 0 {
		scale = 1
	}
	effective := int(math.Round(float64(target) * scale))
	if effective < 1 {
		effective = target
	}
	return s.Render(effective, settings)
}
