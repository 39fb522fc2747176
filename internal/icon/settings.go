package icon

// QualitySettings controls how extracted icons are scaled and cached. The
// zero value disables every enhancement; DefaultQualitySettings is what the
// launcher persists on first run.
type QualitySettings struct {
	UseHighQualityScaling bool   `json:"use_high_quality_scaling"`
	UseDPIAwareScaling    bool   `json:"use_dpi_aware_scaling"`
	PreferredSourceSizes  []int  `json:"preferred_source_sizes"`
	FallbackScalingMethod string `json:"fallback_scaling_method"`
	CacheEnabled          bool   `json:"cache_enabled"`
	CacheSizeLimit        int    `json:"cache_size_limit"`
}

// DefaultQualitySettings returns the high-quality defaults.
func DefaultQualitySettings() QualitySettings {
	return QualitySettings{
		UseHighQualityScaling: true,
		UseDPIAwareScaling:    false,
		PreferredSourceSizes:  []int{32, 48, 64, 128},
		FallbackScalingMethod: "smooth",
		CacheEnabled:          true,
		CacheSizeLimit:        100,
	}
}
