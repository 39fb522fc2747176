// Package profiles manages the Chrome profile roster: the profile.json
// document, discovery of real Chrome profiles on disk, and validation of
// saved entries against what Chrome still has.
package profiles

import (
	"encoding/json"
	"sort"
	"strings"
)

// Defaults applied when older documents lack the newer fields.
const (
	DefaultChannelType = "user_custom"
	DefaultSubType     = "Personal"
)

// Profile is one managed Chrome profile row.
type Profile struct {
	Name         string   `json:"name"`
	Profile      string   `json:"profile"`
	ChannelTypes []string `json:"channel_types"`
	SubTypes     []string `json:"sub_types"`
	ProfileID    string   `json:"profile_id"`
	Email        string   `json:"email"`
	TotalChannel string   `json:"total_channel"`
	Notes        string   `json:"notes"`
}

// UnmarshalJSON migrates legacy records in place: a scalar channel_type
// becomes the channel_types list, and missing list fields get their
// defaults so every loaded profile is fully populated.
func (p *Profile) UnmarshalJSON(data []byte) error {
	type alias Profile
	aux := struct {
		*alias
		LegacyChannelType string `json:"channel_type"`
	}{alias: (*alias)(p)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	if len(p.ChannelTypes) == 0 {
		if aux.LegacyChannelType != "" {
			p.ChannelTypes = []string{aux.LegacyChannelType}
		} else {
			p.ChannelTypes = []string{DefaultChannelType}
		}
	}
	if len(p.SubTypes) == 0 {
		p.SubTypes = []string{DefaultSubType}
	}
	return nil
}

// SortByName orders profiles alphabetically by profile name,
// case-insensitively. Every persistence path sorts before writing so the
// file and the table always agree.
func SortByName(profiles []Profile) {
	sort.SliceStable(profiles, func(i, j int) bool {
		return strings.ToLower(profiles[i].Profile) < strings.ToLower(profiles[j].Profile)
	})
}

// naturalKey splits a string into alternating text and digit runs.
type naturalKey []naturalPart

type naturalPart struct {
	text   string
	number int
	digits bool
}

func makeNaturalKey(s string) naturalKey {
	var key naturalKey
	runStart := 0
	runDigits := false

	flush := func(end int) {
		if end == runStart {
			return
		}
		run := s[runStart:end]
		if runDigits {
			n := 0
			for _, r := range run {
				n = n*10 + int(r-'0')
			}
			key = append(key, naturalPart{number: n, digits: true})
		} else {
			key = append(key, naturalPart{text: strings.ToLower(run)})
		}
	}

	for i, r := range s {
		isDigit := r >= '0' && r <= '9'
		if i == 0 {
			runDigits = isDigit
			continue
		}
		if isDigit != runDigits {
			flush(i)
			runStart = i
			runDigits = isDigit
		}
	}
	flush(len(s))
	return key
}

func (a naturalKey) less(b naturalKey) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		pa, pb := a[i], b[i]
		switch {
		case pa.digits && pb.digits:
			if pa.number != pb.number {
				return pa.number < pb.number
			}
		case !pa.digits && !pb.digits:
			if pa.text != pb.text {
				return pa.text < pb.text
			}
		default:
			// Digit runs sort before text runs, like "10" before "Default".
			return pa.digits
		}
	}
	return len(a) < len(b)
}

// NaturalLess compares two strings with digit runs compared numerically, so
// "Profile 2" sorts before "Profile 10".
func NaturalLess(a, b string) bool {
	return makeNaturalKey(a).less(makeNaturalKey(b))
}

// SortByProfileID orders profiles by natural profile-ID order with empty
// IDs last, the ordering the table uses for its Profile ID column.
func SortByProfileID(profiles []Profile) {
	sort.SliceStable(profiles, func(i, j int) bool {
		a, b := profiles[i].ProfileID, profiles[j].ProfileID
		if (a == "") != (b == "") {
			return b == ""
		}
		return NaturalLess(a, b)
	})
}
