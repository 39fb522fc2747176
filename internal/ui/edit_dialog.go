package ui

import (
	"strings"

	"github.com/gotk3/gotk3/gtk"

	"github.com/supercut-tools/superlauncher/internal/config"
	"github.com/supercut-tools/superlauncher/internal/profiles"
)

// EditProfileDialog edits one profile record. Profile ID and email are
// shown read-only; they belong to Chrome, not to the user. Returns the
// edited record and whether the user accepted.
func EditProfileDialog(parent *gtk.Window, cfg *config.Config, p profiles.Profile) (profiles.Profile, bool) {
	dialog, err := gtk.DialogNewWithButtons("Edit Profile", parent, gtk.DIALOG_MODAL,
		[]interface{}{"Cancel", gtk.RESPONSE_CANCEL},
		[]interface{}{"Save", gtk.RESPONSE_OK},
	)
	if err != nil {
		return p, false
	}
	defer dialog.Destroy()
	dialog.SetDefaultResponse(gtk.RESPONSE_OK)

	content, err := dialog.GetContentArea()
	if err != nil {
		return p, false
	}

	grid, err := gtk.GridNew()
	if err != nil {
		return p, false
	}
	grid.SetRowSpacing(6)
	grid.SetColumnSpacing(12)
	grid.SetMarginTop(8)
	grid.SetMarginBottom(8)
	grid.SetMarginStart(8)
	grid.SetMarginEnd(8)

	row := 0
	attachLabel := func(text string) {
		label, _ := gtk.LabelNew(text)
		label.SetHAlign(gtk.ALIGN_START)
		grid.Attach(label, 0, row, 1, 1)
	}
	attachEntry := func(initial string, editable bool) *gtk.Entry {
		entry, _ := gtk.EntryNew()
		entry.SetText(initial)
		entry.SetEditable(editable)
		entry.SetHExpand(true)
		grid.Attach(entry, 1, row, 1, 1)
		row++
		return entry
	}

	attachLabel("Name:")
	nameEntry := attachEntry(p.Name, true)

	attachLabel("Profile:")
	profileEntry := attachEntry(p.Profile, true)

	attachLabel("Profile ID:")
	attachEntry(p.ProfileID, false)

	attachLabel("Email:")
	attachEntry(p.Email, false)

	attachLabel("Amount:")
	amountEntry := attachEntry(p.TotalChannel, true)

	attachLabel("Notes:")
	notesEntry := attachEntry(p.Notes, true)

	attachLabel("Channel type:")
	channelGroup := newToggleGroup(cfg.Profiles.ChannelTypes, p.ChannelTypes)
	grid.Attach(channelGroup.box, 1, row, 1, 1)
	row++

	attachLabel("Sub type:")
	subGroup := newToggleGroup(cfg.Profiles.SubTypes, p.SubTypes)
	grid.Attach(subGroup.box, 1, row, 1, 1)

	content.PackStart(grid, true, true, 0)
	dialog.ShowAll()

	if dialog.Run() != gtk.RESPONSE_OK {
		return p, false
	}

	p.Name = entryText(nameEntry)
	p.Profile = entryText(profileEntry)
	p.TotalChannel = strings.TrimSpace(digitsOnly(entryText(amountEntry)))
	p.Notes = entryText(notesEntry)
	p.ChannelTypes = channelGroup.selected(profiles.DefaultChannelType)
	p.SubTypes = subGroup.selected(profiles.DefaultSubType)
	return p, true
}

func entryText(entry *gtk.Entry) string {
	text, err := entry.GetText()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(text)
}

// digitsOnly strips everything but digits; the amount column is numeric.
func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// toggleGroup is a row of check buttons with select-all and clear-all.
type toggleGroup struct {
	box     *gtk.Box
	buttons map[string]*gtk.CheckButton
	order   []string
	// fallback applied by selected() when the user clears everything.
}

func newToggleGroup(options, active []string) *toggleGroup {
	g := &toggleGroup{
		buttons: make(map[string]*gtk.CheckButton, len(options)),
		order:   options,
	}

	g.box, _ = gtk.BoxNew(gtk.ORIENTATION_VERTICAL, 4)

	buttonRow, _ := gtk.BoxNew(gtk.ORIENTATION_HORIZONTAL, 6)
	activeSet := make(map[string]bool, len(active))
	for _, a := range active {
		activeSet[a] = true
	}

	for _, option := range options {
		btn, _ := gtk.CheckButtonNewWithLabel(option)
		btn.SetActive(activeSet[option])
		g.buttons[option] = btn
		buttonRow.PackStart(btn, false, false, 0)
	}
	g.box.PackStart(buttonRow, false, false, 0)

	utility, _ := gtk.BoxNew(gtk.ORIENTATION_HORIZONTAL, 6)

	selectAll, _ := gtk.ButtonNewWithLabel("Select All")
	selectAll.Connect("clicked", func() {
		for _, btn := range g.buttons {
			btn.SetActive(true)
		}
	})
	utility.PackStart(selectAll, false, false, 0)

	clearAll, _ := gtk.ButtonNewWithLabel("Clear All")
	clearAll.Connect("clicked", func() {
		for _, btn := range g.buttons {
			btn.SetActive(false)
		}
	})
	utility.PackStart(clearAll, false, false, 0)

	g.box.PackStart(utility, false, false, 0)
	return g
}

// selected returns the checked options in display order. An empty
// selection collapses to the fallback so at least one tag always remains.
func (g *toggleGroup) selected(fallback string) []string {
	var picked []string
	for _, option := range g.order {
		if g.buttons[option].GetActive() {
			picked = append(picked, option)
		}
	}
	if len(picked) == 0 {
		return []string{fallback}
	}
	return picked
}
