package ui

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/gotk3/gotk3/glib"
	"github.com/gotk3/gotk3/gtk"

	"github.com/supercut-tools/superlauncher/internal/config"
	"github.com/supercut-tools/superlauncher/internal/profiles"
	"github.com/supercut-tools/superlauncher/internal/spawn"
)

// ListStore column layout for the profile table.
const (
	colName = iota
	colProfile
	colEmail
	colChannels
	colAmount
	colNotes
	colProfileID
	colForeground
	colRosterIndex
)

const flaggedColor = "#cc3333"

// Search scopes, in combo order.
var searchScopes = []string{
	"All Fields", "Name", "Profile", "Email", "Notes", "Amount", "Profile ID",
}

// ProfileWindow is the Chrome profile manager.
type ProfileWindow struct {
	cfg       *config.Config
	store     *profiles.Store
	scanner   *profiles.Scanner
	validator *profiles.Validator

	roster []profiles.Profile

	win    *gtk.Window
	search *gtk.SearchEntry
	scope  *gtk.ComboBoxText
	model  *gtk.ListStore
	table  *gtk.TreeView

	sortColumn int
	sortAsc    bool
}

// NewProfileWindow loads the roster and builds the manager window.
func NewProfileWindow(cfg *config.Config, st *profiles.Store, scanner *profiles.Scanner, validator *profiles.Validator) (*ProfileWindow, error) {
	win, err := gtk.WindowNew(gtk.WINDOW_TOPLEVEL)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	pw := &ProfileWindow{
		cfg:        cfg,
		store:      st,
		scanner:    scanner,
		validator:  validator,
		roster:     st.Load(),
		win:        win,
		sortColumn: -1,
	}

	win.SetTitle("SimpleChrome")
	win.SetName("profile-window")
	win.SetDefaultSize(760, 577)
	pw.restoreGeometry()

	if err := pw.buildLayout(); err != nil {
		return nil, err
	}

	win.Connect("destroy", func() {
		pw.saveGeometry()
		gtk.MainQuit()
	})

	pw.refresh()
	pw.scheduleStartupCheck()
	return pw, nil
}

// Show presents the window.
func (pw *ProfileWindow) Show() {
	pw.win.ShowAll()
}

// Window exposes the toplevel for dialog parenting.
func (pw *ProfileWindow) Window() *gtk.Window {
	return pw.win
}

func (pw *ProfileWindow) buildLayout() error {
	vbox, err := gtk.BoxNew(gtk.ORIENTATION_VERTICAL, 6)
	if err != nil {
		return err
	}
	vbox.SetMarginTop(8)
	vbox.SetMarginBottom(8)
	vbox.SetMarginStart(8)
	vbox.SetMarginEnd(8)

	header, err := gtk.BoxNew(gtk.ORIENTATION_HORIZONTAL, 6)
	if err != nil {
		return err
	}

	search, err := gtk.SearchEntryNew()
	if err != nil {
		return err
	}
	search.SetName("search-entry")
	search.SetPlaceholderText("Search profiles...")
	search.Connect("search-changed", func() { pw.refresh() })
	pw.search = search
	header.PackStart(search, true, true, 0)

	scope, err := gtk.ComboBoxTextNew()
	if err != nil {
		return err
	}
	for _, s := range searchScopes {
		scope.AppendText(s)
	}
	scope.SetActive(0)
	scope.Connect("changed", func() { pw.refresh() })
	pw.scope = scope
	header.PackEnd(scope, false, false, 0)

	vbox.PackStart(header, false, false, 0)

	if err := pw.buildTable(); err != nil {
		return err
	}

	scrolled, err := gtk.ScrolledWindowNew(nil, nil)
	if err != nil {
		return err
	}
	scrolled.SetPolicy(gtk.POLICY_AUTOMATIC, gtk.POLICY_AUTOMATIC)
	scrolled.Add(pw.table)
	vbox.PackStart(scrolled, true, true, 0)

	buttons, err := gtk.BoxNew(gtk.ORIENTATION_HORIZONTAL, 6)
	if err != nil {
		return err
	}

	launchBtn, _ := gtk.ButtonNewWithLabel("Launch")
	launchBtn.Connect("clicked", func() { pw.onLaunch() })
	buttons.PackStart(launchBtn, false, false, 0)

	editBtn, _ := gtk.ButtonNewWithLabel("Edit")
	editBtn.Connect("clicked", func() { pw.onEdit() })
	buttons.PackStart(editBtn, false, false, 0)

	scanBtn, _ := gtk.ButtonNewWithLabel("Scan")
	scanBtn.Connect("clicked", func() { pw.onScan() })
	buttons.PackStart(scanBtn, false, false, 0)

	cleanupBtn, _ := gtk.ButtonNewWithLabel("Cleanup")
	cleanupBtn.Connect("clicked", func() { pw.onCleanup() })
	buttons.PackEnd(cleanupBtn, false, false, 0)

	vbox.PackStart(buttons, false, false, 0)

	pw.win.Add(vbox)
	return nil
}

func (pw *ProfileWindow) buildTable() error {
	model, err := gtk.ListStoreNew(
		glib.TYPE_STRING, // name
		glib.TYPE_STRING, // profile
		glib.TYPE_STRING, // email
		glib.TYPE_STRING, // channel types
		glib.TYPE_STRING, // amount
		glib.TYPE_STRING, // notes
		glib.TYPE_STRING, // profile id
		glib.TYPE_STRING, // foreground
		glib.TYPE_INT,    // roster index
	)
	if err != nil {
		return err
	}
	pw.model = model

	table, err := gtk.TreeViewNew()
	if err != nil {
		return err
	}
	table.SetModel(model)
	table.Connect("row-activated", func() { pw.onLaunch() })
	pw.table = table

	headers := []struct {
		title string
		col   int
	}{
		{"Name", colName},
		{"Profile", colProfile},
		{"Email", colEmail},
		{"Channel Types", colChannels},
		{"Amount", colAmount},
		{"Notes", colNotes},
		{"Profile ID", colProfileID},
	}

	for _, h := range headers {
		renderer, err := gtk.CellRendererTextNew()
		if err != nil {
			return err
		}
		column, err := gtk.TreeViewColumnNewWithAttribute(h.title, renderer, "text", h.col)
		if err != nil {
			return err
		}
		column.AddAttribute(renderer, "foreground", colForeground)
		column.SetResizable(true)
		column.SetClickable(true)
		col := h.col
		column.Connect("clicked", func() { pw.onHeaderClicked(col) })
		table.AppendColumn(column)
	}
	return nil
}

// onHeaderClicked sorts the table by the clicked column; clicking the
// same header again flips the direction.
func (pw *ProfileWindow) onHeaderClicked(column int) {
	if pw.sortColumn == column {
		pw.sortAsc = !pw.sortAsc
	} else {
		pw.sortColumn = column
		pw.sortAsc = true
	}
	pw.refresh()
}

// refresh rebuilds the table from the roster, applying the search filter
// and flagging profiles whose Chrome directory is gone.
func (pw *ProfileWindow) refresh() {
	query := ""
	if pw.search != nil {
		if text, err := pw.search.GetText(); err == nil {
			query = strings.TrimSpace(text)
		}
	}
	scope := "All Fields"
	if pw.scope != nil {
		if active := pw.scope.GetActiveText(); active != "" {
			scope = active
		}
	}

	visible := filterProfiles(pw.roster, query, scope)
	if pw.sortColumn >= 0 {
		sortEntries(visible, pw.sortColumn, pw.sortAsc)
	}

	pw.model.Clear()
	for _, entry := range visible {
		iter := pw.model.Append()

		foreground := ""
		if !pw.validator.Exists(entry.profile.ProfileID) {
			foreground = flaggedColor
		}

		err := pw.model.Set(iter,
			[]int{colName, colProfile, colEmail, colChannels, colAmount, colNotes, colProfileID, colForeground, colRosterIndex},
			[]interface{}{
				entry.profile.Name,
				entry.profile.Profile,
				entry.profile.Email,
				strings.Join(entry.profile.ChannelTypes, ", "),
				entry.profile.TotalChannel,
				entry.profile.Notes,
				entry.profile.ProfileID,
				foreground,
				entry.index,
			},
		)
		if err != nil {
			log.Printf("[UI] Failed to append profile row: %v", err)
		}
	}
}

// rosterEntry pairs a profile with its index in the backing roster, so
// table selections survive filtering and re-sorting.
type rosterEntry struct {
	profile profiles.Profile
	index   int
}

// sortColumnKey reads the cell text a column sorts by.
func sortColumnKey(p profiles.Profile, column int) string {
	switch column {
	case colName:
		return p.Name
	case colProfile:
		return p.Profile
	case colEmail:
		return p.Email
	case colChannels:
		return strings.Join(p.ChannelTypes, ", ")
	case colAmount:
		return p.TotalChannel
	case colNotes:
		return p.Notes
	case colProfileID:
		return p.ProfileID
	}
	return ""
}

// sortEntries orders table rows by one column. Empty values sort last in
// either direction; the Profile ID and Amount columns compare digit runs
// numerically, the rest case-insensitively.
func sortEntries(entries []rosterEntry, column int, ascending bool) {
	sort.SliceStable(entries, func(i, j int) bool {
		a := sortColumnKey(entries[i].profile, column)
		b := sortColumnKey(entries[j].profile, column)
		if (a == "") != (b == "") {
			return b == ""
		}
		if !ascending {
			a, b = b, a
		}
		if column == colProfileID || column == colAmount {
			return profiles.NaturalLess(a, b)
		}
		return strings.ToLower(a) < strings.ToLower(b)
	})
}

func filterProfiles(roster []profiles.Profile, query, scope string) []rosterEntry {
	entries := make([]rosterEntry, 0, len(roster))
	lowered := strings.ToLower(query)

	for i, p := range roster {
		if query == "" || profileMatches(p, lowered, scope) {
			entries = append(entries, rosterEntry{profile: p, index: i})
		}
	}
	return entries
}

func profileMatches(p profiles.Profile, lowered, scope string) bool {
	contains := func(s string) bool {
		return strings.Contains(strings.ToLower(s), lowered)
	}

	switch scope {
	case "Name":
		return contains(p.Name)
	case "Profile":
		return contains(p.Profile)
	case "Email":
		return contains(p.Email)
	case "Notes":
		return contains(p.Notes)
	case "Amount":
		return contains(p.TotalChannel)
	case "Profile ID":
		return contains(p.ProfileID)
	default:
		return contains(p.Name) || contains(p.Profile) || contains(p.Email) ||
			contains(p.Notes) || contains(p.TotalChannel) || contains(p.ProfileID) ||
			contains(strings.Join(p.ChannelTypes, " "))
	}
}

// selectedRosterIndex resolves the selected row back to the roster.
func (pw *ProfileWindow) selectedRosterIndex() int {
	selection, err := pw.table.GetSelection()
	if err != nil {
		return -1
	}
	_, iter, ok := selection.GetSelected()
	if !ok {
		return -1
	}

	value, err := pw.model.GetValue(iter, colRosterIndex)
	if err != nil {
		return -1
	}
	raw, err := value.GoValue()
	if err != nil {
		return -1
	}
	index, ok := raw.(int)
	if !ok || index < 0 || index >= len(pw.roster) {
		return -1
	}
	return index
}

func (pw *ProfileWindow) onLaunch() {
	index := pw.selectedRosterIndex()
	if index < 0 {
		ShowInfo(pw.win, "SimpleChrome", "Select a profile first.")
		return
	}
	p := pw.roster[index]

	if p.ProfileID == "" {
		ShowWarning(pw.win, "No Profile ID", "Selected profile does not have a valid profile ID.")
		return
	}

	if !pw.validator.Exists(p.ProfileID) {
		ShowError(pw.win, "Profile Not Found",
			fmt.Sprintf("Profile '%s' no longer exists.\nIt may have been deleted from Chrome.\n\nUse the 'Cleanup' button to remove deleted profiles.", p.Profile))
		return
	}

	if err := spawn.LaunchChromeProfile(p.ProfileID); err != nil {
		ShowError(pw.win, "Launch Error", fmt.Sprintf("Failed to launch Chrome profile: %v", err))
	}
}

func (pw *ProfileWindow) onEdit() {
	index := pw.selectedRosterIndex()
	if index < 0 {
		ShowInfo(pw.win, "SimpleChrome", "Select a profile first.")
		return
	}

	edited, ok := EditProfileDialog(pw.win, pw.cfg, pw.roster[index])
	if !ok {
		return
	}

	pw.roster[index] = edited
	if err := pw.store.Save(pw.roster); err != nil {
		ShowError(pw.win, "Error", fmt.Sprintf("Failed to save profiles: %v", err))
		return
	}
	pw.roster = pw.store.Load()
	pw.refresh()
}

func (pw *ProfileWindow) onScan() {
	scanned := pw.scanner.Scan()
	if len(scanned) == 0 {
		ShowInfo(pw.win, "No Chrome Profiles",
			"No Chrome profiles found. Make sure Chrome is installed and has been used at least once.")
		return
	}

	merged, added := profiles.Merge(pw.roster, scanned)
	if len(added) == 0 {
		ShowInfo(pw.win, "No New Profiles", "All profiles already added.")
		return
	}

	pw.roster = merged
	if err := pw.store.Save(pw.roster); err != nil {
		ShowError(pw.win, "Error", "Failed to save profiles to file.")
		return
	}
	pw.refresh()

	if len(added) > 5 {
		ShowSuccess(pw.win, "Success", fmt.Sprintf("Added %d Chrome profile(s) to the list.", len(added)))
	} else {
		names := make([]string, len(added))
		for i, p := range added {
			names[i] = p.Profile
		}
		ShowSuccess(pw.win, "Success", fmt.Sprintf("Added profiles: %s", strings.Join(names, ", ")))
	}
}

func (pw *ProfileWindow) onCleanup() {
	kept, removed := pw.validator.Cleanup(pw.roster)
	if len(removed) == 0 {
		ShowInfo(pw.win, "No Cleanup Needed", "All profiles are valid and exist.")
		return
	}

	names := make([]string, len(removed))
	for i, p := range removed {
		names[i] = p.Profile
	}

	message := fmt.Sprintf("%d profiles will be removed:\n\n%s\n\nThis action cannot be undone.\n",
		len(removed), strings.Join(names, " , "))
	if !Confirm(pw.win, "Confirm Cleanup", message) {
		return
	}

	pw.roster = kept
	if err := pw.store.Save(pw.roster); err != nil {
		ShowError(pw.win, "Error", fmt.Sprintf("Failed to save profiles: %v", err))
		return
	}
	pw.refresh()

	ShowSuccess(pw.win, "Profiles Cleaned",
		fmt.Sprintf("Successfully removed %d deleted profiles:\n%s", len(removed), strings.Join(names, ", ")))
}

func (pw *ProfileWindow) restoreGeometry() {
	g := pw.store.Geometry()
	if g == nil {
		return
	}
	if g.Width > 0 && g.Height > 0 {
		pw.win.Resize(g.Width, g.Height)
	}
	pw.win.Move(g.X, g.Y)
}

func (pw *ProfileWindow) saveGeometry() {
	x, y := pw.win.GetPosition()
	w, h := pw.win.GetSize()

	if err := pw.store.SaveGeometry(profiles.Geometry{X: x, Y: y, Width: w, Height: h}); err != nil {
		log.Printf("[UI] Failed to save window position: %v", err)
	}
}

// scheduleStartupCheck warns about already-deleted profiles shortly after
// the window shows. Warn only: nothing is removed without the user asking.
func (pw *ProfileWindow) scheduleStartupCheck() {
	delay := pw.cfg.Profiles.StartupCheckDelayMs
	if delay <= 0 {
		delay = 2000
	}

	glib.TimeoutAdd(uint(delay), func() bool {
		deleted := pw.validator.FindDeleted(pw.roster)
		if len(deleted) > 0 {
			names := make([]string, len(deleted))
			for i, p := range deleted {
				names[i] = p.Profile
			}
			ShowWarning(pw.win, "Deleted Profiles Found",
				fmt.Sprintf("Found %d deleted Chrome profiles:\n\n%s", len(deleted), strings.Join(names, " , ")))
			pw.refresh()
		}
		return false
	})
}
