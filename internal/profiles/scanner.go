package profiles

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// ChromeUserDataDir returns the platform default Chrome user data
// directory.
func ChromeUserDataDir() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "Google", "Chrome", "User Data")
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "Google", "Chrome")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "google-chrome")
	}
}

// Scanner discovers Chrome profiles under a user data directory.
type Scanner struct {
	dataDir string
}

// NewScanner scans the platform default Chrome directory.
func NewScanner() *Scanner {
	return NewScannerAt(ChromeUserDataDir())
}

// NewScannerAt scans an explicit directory, used by the config override and
// by tests.
func NewScannerAt(dataDir string) *Scanner {
	return &Scanner{dataDir: dataDir}
}

// DataDir returns the scanned Chrome user data directory.
func (sc *Scanner) DataDir() string {
	return sc.dataDir
}

// Scan reads Chrome's Local State profile cache and returns one fresh
// record per installed profile. A missing or unreadable Chrome directory
// yields an empty result, never an error: scanning is best effort.
func (sc *Scanner) Scan() []Profile {
	state, err := readJSONFile(filepath.Join(sc.dataDir, "Local State"))
	if err != nil {
		log.Printf("[PROFILE-SCAN] No readable Local State in %s: %v", sc.dataDir, err)
		return nil
	}

	infoCache, ok := dig(state, "profile", "info_cache").(map[string]any)
	if !ok {
		return nil
	}

	var found []Profile
	for profileID, raw := range infoCache {
		entry, _ := raw.(map[string]any)

		name := stringAt(entry, "name")
		if name == "" {
			name = derivedProfileName(profileID)
		}

		found = append(found, Profile{
			Profile:      name,
			ChannelTypes: []string{DefaultChannelType},
			SubTypes:     []string{DefaultSubType},
			ProfileID:    profileID,
			Email:        sc.profileEmail(entry, profileID),
		})
	}

	SortByName(found)
	log.Printf("[PROFILE-SCAN] Found %d Chrome profiles in %s", len(found), sc.dataDir)
	return found
}

// derivedProfileName names a cache entry with no display name. Chrome
// directory ids already read like "Profile 2"; anything else gets the
// prefix added.
func derivedProfileName(profileID string) string {
	if strings.HasPrefix(profileID, "Profile") {
		return profileID
	}
	return fmt.Sprintf("Profile %s", profileID)
}

// profileEmail probes the places Chrome is known to stash the account
// email, in decreasing order of reliability. Empty when nothing matches.
func (sc *Scanner) profileEmail(infoEntry map[string]any, profileID string) string {
	// Local State user_name is usually the signed-in email.
	if userName := stringAt(infoEntry, "user_name"); strings.Contains(userName, "@") {
		return strings.TrimSpace(userName)
	}

	if prefs, err := readJSONFile(filepath.Join(sc.dataDir, profileID, "Preferences")); err == nil {
		probes := []func(map[string]any) string{
			func(m map[string]any) string { return stringDig(m, "account_id_migration_state", "email") },
			func(m map[string]any) string { return stringDig(m, "profile", "email_address") },
			func(m map[string]any) string { return stringDig(m, "signin", "email") },
			trackedAccountEmail,
			func(m map[string]any) string { return stringDig(m, "identity", "primary_account_email") },
			func(m map[string]any) string { return stringDig(m, "sync", "requested", "email") },
		}
		for _, probe := range probes {
			if email := probe(prefs); email != "" {
				return strings.TrimSpace(email)
			}
		}
	}

	if secure, err := readJSONFile(filepath.Join(sc.dataDir, profileID, "Secure Preferences")); err == nil {
		if email := stringDig(secure, "account_id_migration_state", "email"); email != "" {
			return strings.TrimSpace(email)
		}
		if email := stringDig(secure, "profile", "email_address"); email != "" {
			return strings.TrimSpace(email)
		}
	}

	return ""
}

// trackedAccountEmail scans account_tracker_service.accounts, a map keyed
// by opaque account id, for any entry carrying an email.
func trackedAccountEmail(prefs map[string]any) string {
	accounts, ok := dig(prefs, "account_tracker_service", "accounts").(map[string]any)
	if !ok {
		return ""
	}
	for _, raw := range accounts {
		if entry, ok := raw.(map[string]any); ok {
			if email := stringAt(entry, "email"); email != "" {
				return email
			}
		}
	}
	return ""
}

// Merge appends scanned profiles whose profile_id is not already in the
// roster. It returns the merged roster and the newly added records.
func Merge(existing, scanned []Profile) ([]Profile, []Profile) {
	seen := make(map[string]bool, len(existing))
	for _, p := range existing {
		seen[p.ProfileID] = true
	}

	var added []Profile
	merged := append([]Profile{}, existing...)
	for _, p := range scanned {
		if seen[p.ProfileID] {
			continue
		}
		seen[p.ProfileID] = true
		merged = append(merged, p)
		added = append(added, p)
	}

	SortByName(merged)
	return merged, added
}

func readJSONFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return doc, nil
}

// dig walks nested JSON objects by key, returning nil when any hop is
// missing or not an object.
func dig(doc map[string]any, keys ...string) any {
	var current any = doc
	for _, key := range keys {
		m, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		current = m[key]
	}
	return current
}

func stringDig(doc map[string]any, keys ...string) string {
	s, _ := dig(doc, keys...).(string)
	return s
}

func stringAt(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	s, _ := m[key].(string)
	return s
}
