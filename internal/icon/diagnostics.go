package icon

import (
	"fmt"
	"os"
	"runtime"
)

const diagnosticProbeSize = 48

// Diagnostics reports which extraction strategies worked for a path and
// what a user could do about the ones that did not.
type Diagnostics struct {
	FilePath        string   `json:"file_path"`
	FileExists      bool     `json:"file_exists"`
	FileType        string   `json:"file_type"`
	Methods         []string `json:"extraction_methods"`
	AvailableSizes  []int    `json:"available_sizes"`
	Errors          []string `json:"errors"`
	Recommendations []string `json:"recommendations"`
}

// Diagnose runs every strategy once at a probe size and summarizes the
// outcome. It never fails: a fully broken path simply reports zero
// successful methods.
func (e *Extractor) Diagnose(path string) Diagnostics {
	diag := Diagnostics{
		FilePath: path,
		FileType: "missing",
	}

	if info, err := os.Stat(path); err == nil {
		diag.FileExists = true
		if info.IsDir() {
			diag.FileType = "directory"
		} else {
			diag.FileType = "file"
		}
	}

	set := NewSet()
	for _, s := range e.strategies {
		pb, err := s.Load(path, diagnosticProbeSize)
		if err != nil {
			diag.Errors = append(diag.Errors, fmt.Sprintf("%s: %v", s.Name, err))
			diag.Recommendations = append(diag.Recommendations, recommendationFor(s.Name))
			continue
		}
		if pb != nil {
			diag.Methods = append(diag.Methods, s.Name)
			set.Add(pb)
		}
	}
	diag.AvailableSizes = set.Sizes()

	if !diag.FileExists {
		diag.Recommendations = append(diag.Recommendations, "pin an existing file or folder; this path no longer exists")
	}

	return diag
}

func recommendationFor(strategy string) string {
	switch strategy {
	case "shell":
		if runtime.GOOS != "windows" {
			return "native shell icons are only available on Windows; theme icons are used instead"
		}
		return "verify the file association in the Windows registry"
	case "theme":
		return "install a GTK icon theme (e.g. Adwaita) so generic file icons resolve"
	default:
		return "report this; the built-in glyph table should never fail"
	}
}
