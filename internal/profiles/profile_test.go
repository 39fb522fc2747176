package profiles

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProfile_LegacyMigration(t *testing.T) {
	tests := []struct {
		name         string
		raw          string
		wantChannels []string
		wantSubTypes []string
	}{
		{
			name:         "scalar channel_type becomes a list",
			raw:          `{"profile":"Work","profile_id":"Profile 1","channel_type":"Premium"}`,
			wantChannels: []string{"Premium"},
			wantSubTypes: []string{"Personal"},
		},
		{
			name:         "missing channel fields get defaults",
			raw:          `{"profile":"Old","profile_id":"Default"}`,
			wantChannels: []string{"user_custom"},
			wantSubTypes: []string{"Personal"},
		},
		{
			name:         "modern record is untouched",
			raw:          `{"profile":"New","channel_types":["Standard","Basic"],"sub_types":["Shared"]}`,
			wantChannels: []string{"Standard", "Basic"},
			wantSubTypes: []string{"Shared"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Profile
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &p))
			require.Equal(t, tt.wantChannels, p.ChannelTypes)
			require.Equal(t, tt.wantSubTypes, p.SubTypes)
		})
	}
}

func TestProfile_MigratedFieldsPersist(t *testing.T) {
	var p Profile
	require.NoError(t, json.Unmarshal([]byte(`{"profile":"Work","channel_type":"Premium"}`), &p))

	out, err := json.Marshal(p)
	require.NoError(t, err)

	var round Profile
	require.NoError(t, json.Unmarshal(out, &round))
	require.Equal(t, []string{"Premium"}, round.ChannelTypes)
}

func TestNaturalLess(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"Profile 2", "Profile 10", true},
		{"Profile 10", "Profile 2", false},
		{"Profile 2", "Profile 2", false},
		{"profile 3", "Profile 12", true},
		{"Default", "Profile 1", true},
		{"abc", "abd", true},
		{"", "a", true},
	}
	for _, tt := range tests {
		if got := NaturalLess(tt.a, tt.b); got != tt.want {
			t.Errorf("NaturalLess(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestSortByProfileID_EmptyLast(t *testing.T) {
	ps := []Profile{
		{Profile: "c", ProfileID: ""},
		{Profile: "a", ProfileID: "Profile 10"},
		{Profile: "b", ProfileID: "Profile 2"},
		{Profile: "d", ProfileID: "Default"},
	}
	SortByProfileID(ps)

	ids := make([]string, len(ps))
	for i, p := range ps {
		ids[i] = p.ProfileID
	}
	require.Equal(t, []string{"Default", "Profile 2", "Profile 10", ""}, ids)
}

func TestSortByName_CaseInsensitive(t *testing.T) {
	ps := []Profile{
		{Profile: "zeta"},
		{Profile: "Alpha"},
		{Profile: "beta"},
	}
	SortByName(ps)
	require.Equal(t, "Alpha", ps[0].Profile)
	require.Equal(t, "beta", ps[1].Profile)
	require.Equal(t, "zeta", ps[2].Profile)
}
