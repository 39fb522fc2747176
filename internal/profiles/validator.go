package profiles

import (
	"log"
	"os"
	"path/filepath"
)

// Validator checks saved profiles against the Chrome profile directories
// that actually exist on disk.
type Validator struct {
	dataDir string
}

// NewValidator validates against the platform default Chrome directory.
func NewValidator() *Validator {
	return NewValidatorAt(ChromeUserDataDir())
}

// NewValidatorAt validates against an explicit directory.
func NewValidatorAt(dataDir string) *Validator {
	return &Validator{dataDir: dataDir}
}

// Exists reports whether the profile's directory is still present. An
// empty profile id never exists.
func (v *Validator) Exists(profileID string) bool {
	if profileID == "" {
		return false
	}
	_, err := os.Stat(filepath.Join(v.dataDir, profileID))
	return err == nil
}

// FindDeleted returns the profiles whose Chrome directory is gone. They
// are flagged for the user, never removed automatically.
func (v *Validator) FindDeleted(profiles []Profile) []Profile {
	var deleted []Profile
	for _, p := range profiles {
		if !v.Exists(p.ProfileID) {
			deleted = append(deleted, p)
		}
	}
	return deleted
}

// Cleanup partitions the roster into kept and removed profiles, keeping
// exactly those that still exist. The caller shows the confirmation dialog
// before persisting the kept set.
func (v *Validator) Cleanup(profiles []Profile) (kept, removed []Profile) {
	for _, p := range profiles {
		if v.Exists(p.ProfileID) {
			kept = append(kept, p)
		} else {
			removed = append(removed, p)
		}
	}
	SortByName(kept)
	if len(removed) > 0 {
		log.Printf("[PROFILE-STORE] Cleanup flagged %d deleted profiles", len(removed))
	}
	return kept, removed
}
