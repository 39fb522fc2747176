package profiles

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "profile.json"))
}

func TestProfileStore_RoundTrip(t *testing.T) {
	st := newTestStore(t)

	in := []Profile{
		{Profile: "Work", ProfileID: "Profile 1", ChannelTypes: []string{"Premium"}, SubTypes: []string{"Personal"}, Email: "work@example.com"},
		{Profile: "home", ProfileID: "Default", ChannelTypes: []string{"user_custom"}, SubTypes: []string{"Personal"}},
	}
	require.NoError(t, st.Save(in))

	got := st.Load()
	require.Len(t, got, 2)

	// Saved and loaded rosters are sorted by profile name.
	require.Equal(t, "home", got[0].Profile)
	require.Equal(t, "Work", got[1].Profile)
	require.Equal(t, "work@example.com", got[1].Email)
}

func TestProfileStore_MissingFileYieldsEmpty(t *testing.T) {
	st := newTestStore(t)
	require.Empty(t, st.Load())
	require.Empty(t, st.Load())
}

func TestProfileStore_MalformedFileYieldsEmpty(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, os.WriteFile(st.Path(), []byte("{not json"), 0644))

	require.Empty(t, st.Load())
	require.Empty(t, st.Load())
}

func TestProfileStore_GeometrySurvivesRosterSaves(t *testing.T) {
	st := newTestStore(t)

	require.Nil(t, st.Geometry())
	require.NoError(t, st.SaveGeometry(Geometry{X: 40, Y: 60, Width: 760, Height: 577}))

	// Saving the roster must not clobber the saved geometry.
	require.NoError(t, st.Save([]Profile{{Profile: "Work", ProfileID: "Profile 1"}}))

	g := st.Geometry()
	require.NotNil(t, g)
	require.Equal(t, Geometry{X: 40, Y: 60, Width: 760, Height: 577}, *g)
	require.Len(t, st.Load(), 1)
}

func TestProfileStore_MigratesLegacyDocument(t *testing.T) {
	st := newTestStore(t)
	legacy := `{"profiles":[{"profile":"Old","profile_id":"Profile 7","channel_type":"Standard"}]}`
	require.NoError(t, os.WriteFile(st.Path(), []byte(legacy), 0644))

	got := st.Load()
	require.Len(t, got, 1)
	require.Equal(t, []string{"Standard"}, got[0].ChannelTypes)
	require.Equal(t, []string{"Personal"}, got[0].SubTypes)
	require.Equal(t, "", got[0].Email)
}
