package ui

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/supercut-tools/superlauncher/internal/profiles"
)

func entriesOf(ps ...profiles.Profile) []rosterEntry {
	entries := make([]rosterEntry, len(ps))
	for i, p := range ps {
		entries[i] = rosterEntry{profile: p, index: i}
	}
	return entries
}

func profileOrder(entries []rosterEntry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.profile.Profile
	}
	return names
}

func TestSortEntries_ByNameCaseInsensitiveEmptyLast(t *testing.T) {
	entries := entriesOf(
		profiles.Profile{Profile: "c", Name: "zeta"},
		profiles.Profile{Profile: "b", Name: ""},
		profiles.Profile{Profile: "a", Name: "Alpha"},
	)

	sortEntries(entries, colName, true)
	require.Equal(t, []string{"a", "c", "b"}, profileOrder(entries))

	// Descending flips the order of the named rows; empty stays last.
	sortEntries(entries, colName, false)
	require.Equal(t, []string{"c", "a", "b"}, profileOrder(entries))
}

func TestSortEntries_ProfileIDIsNatural(t *testing.T) {
	entries := entriesOf(
		profiles.Profile{Profile: "ten", ProfileID: "Profile 10"},
		profiles.Profile{Profile: "none", ProfileID: ""},
		profiles.Profile{Profile: "two", ProfileID: "Profile 2"},
		profiles.Profile{Profile: "default", ProfileID: "Default"},
	)

	sortEntries(entries, colProfileID, true)
	require.Equal(t, []string{"default", "two", "ten", "none"}, profileOrder(entries))
}

func TestSortEntries_AmountIsNumeric(t *testing.T) {
	entries := entriesOf(
		profiles.Profile{Profile: "big", TotalChannel: "12"},
		profiles.Profile{Profile: "small", TotalChannel: "9"},
		profiles.Profile{Profile: "blank", TotalChannel: ""},
	)

	sortEntries(entries, colAmount, true)
	require.Equal(t, []string{"small", "big", "blank"}, profileOrder(entries))

	sortEntries(entries, colAmount, false)
	require.Equal(t, []string{"big", "small", "blank"}, profileOrder(entries))
}

func TestSortEntries_KeepsRosterIndices(t *testing.T) {
	entries := entriesOf(
		profiles.Profile{Profile: "b"},
		profiles.Profile{Profile: "a"},
	)

	sortEntries(entries, colProfile, true)
	require.Equal(t, []string{"a", "b"}, profileOrder(entries))
	require.Equal(t, 1, entries[0].index)
	require.Equal(t, 0, entries[1].index)
}
