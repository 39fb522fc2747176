package profiles

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeChromeDir builds a fake Chrome user data directory.
func writeChromeDir(t *testing.T, localState map[string]any) string {
	t.Helper()
	dir := t.TempDir()
	writeJSON(t, filepath.Join(dir, "Local State"), localState)
	return dir
}

func writeJSON(t *testing.T, path string, doc map[string]any) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))
}

func infoCache(entries map[string]any) map[string]any {
	return map[string]any{"profile": map[string]any{"info_cache": entries}}
}

func TestScanner_MissingDirYieldsNothing(t *testing.T) {
	sc := NewScannerAt(filepath.Join(t.TempDir(), "no-chrome"))
	require.Empty(t, sc.Scan())
}

func TestScanner_ReadsInfoCache(t *testing.T) {
	dir := writeChromeDir(t, infoCache(map[string]any{
		"Default":   map[string]any{"name": "Person 1", "user_name": "alice@example.com"},
		"Profile 2": map[string]any{},
		"Guest":     map[string]any{},
	}))

	got := NewScannerAt(dir).Scan()
	require.Len(t, got, 3)

	// Sorted by profile name; nameless entries get a derived one, without
	// doubling the "Profile" prefix for ids that already carry it.
	require.Equal(t, "Person 1", got[0].Profile)
	require.Equal(t, "alice@example.com", got[0].Email)
	require.Equal(t, "Profile 2", got[1].Profile)
	require.Equal(t, "", got[1].Email)
	require.Equal(t, "Profile Guest", got[2].Profile)

	for _, p := range got {
		require.Equal(t, []string{"user_custom"}, p.ChannelTypes)
		require.Equal(t, []string{"Personal"}, p.SubTypes)
	}
}

func TestScanner_EmailProbeOrder(t *testing.T) {
	tests := []struct {
		name   string
		entry  map[string]any
		prefs  map[string]any
		secure map[string]any
		want   string
	}{
		{
			name:  "local state user_name wins",
			entry: map[string]any{"user_name": "top@example.com"},
			prefs: map[string]any{"signin": map[string]any{"email": "lower@example.com"}},
			want:  "top@example.com",
		},
		{
			name:  "user_name without at sign is ignored",
			entry: map[string]any{"user_name": "not-an-email"},
			prefs: map[string]any{"profile": map[string]any{"email_address": "prefs@example.com"}},
			want:  "prefs@example.com",
		},
		{
			name: "migration state beats profile email",
			prefs: map[string]any{
				"account_id_migration_state": map[string]any{"email": "first@example.com"},
				"profile":                    map[string]any{"email_address": "second@example.com"},
			},
			want: "first@example.com",
		},
		{
			name: "tracked accounts are scanned",
			prefs: map[string]any{
				"account_tracker_service": map[string]any{
					"accounts": map[string]any{
						"gaia-1": map[string]any{"email": "tracked@example.com"},
					},
				},
			},
			want: "tracked@example.com",
		},
		{
			name:  "sync requested email",
			prefs: map[string]any{"sync": map[string]any{"requested": map[string]any{"email": "sync@example.com"}}},
			want:  "sync@example.com",
		},
		{
			name:   "secure preferences is the last resort",
			secure: map[string]any{"profile": map[string]any{"email_address": "secure@example.com"}},
			want:   "secure@example.com",
		},
		{
			name: "nothing found",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := tt.entry
			if entry == nil {
				entry = map[string]any{}
			}
			dir := writeChromeDir(t, infoCache(map[string]any{"Profile 9": entry}))
			if tt.prefs != nil {
				writeJSON(t, filepath.Join(dir, "Profile 9", "Preferences"), tt.prefs)
			}
			if tt.secure != nil {
				writeJSON(t, filepath.Join(dir, "Profile 9", "Secure Preferences"), tt.secure)
			}

			got := NewScannerAt(dir).Scan()
			require.Len(t, got, 1)
			require.Equal(t, tt.want, got[0].Email)
		})
	}
}

func TestMerge_DedupesByProfileID(t *testing.T) {
	existing := []Profile{
		{Profile: "Work", ProfileID: "Profile 1"},
	}
	scanned := []Profile{
		{Profile: "Work again", ProfileID: "Profile 1"},
		{Profile: "Fresh", ProfileID: "Profile 2"},
	}

	merged, added := Merge(existing, scanned)
	require.Len(t, merged, 2)
	require.Len(t, added, 1)
	require.Equal(t, "Profile 2", added[0].ProfileID)

	// Merging again adds nothing.
	merged2, added2 := Merge(merged, scanned)
	require.Len(t, merged2, 2)
	require.Empty(t, added2)
}

func TestValidator_ExistsAndCleanup(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "Default"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "Profile 1"), 0755))

	v := NewValidatorAt(dir)
	require.True(t, v.Exists("Default"))
	require.False(t, v.Exists("Profile 99"))
	require.False(t, v.Exists(""))

	roster := []Profile{
		{Profile: "b", ProfileID: "Profile 1"},
		{Profile: "a", ProfileID: "Default"},
		{Profile: "gone", ProfileID: "Profile 99"},
		{Profile: "no-id", ProfileID: ""},
	}

	deleted := v.FindDeleted(roster)
	require.Len(t, deleted, 2)

	kept, removed := v.Cleanup(roster)
	require.Len(t, kept, 2)
	require.Len(t, removed, 2)

	// Cleanup removes exactly the flagged set and re-sorts the survivors.
	require.Equal(t, "a", kept[0].Profile)
	require.Equal(t, "b", kept[1].Profile)
	require.Equal(t, "gone", removed[0].Profile)
	require.Equal(t, "no-id", removed[1].Profile)
}
