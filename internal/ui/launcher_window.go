package ui

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/gotk3/gotk3/gdk"
	"github.com/gotk3/gotk3/gtk"
	"github.com/gotk3/gotk3/pango"

	"github.com/supercut-tools/superlauncher/internal/config"
	"github.com/supercut-tools/superlauncher/internal/launcher"
	"github.com/supercut-tools/superlauncher/internal/spawn"
	"github.com/supercut-tools/superlauncher/internal/store"
)

// dragThresholdPx separates a click from a reorder drag.
const dragThresholdPx = 12

// LauncherWindow is the pinned-app grid.
type LauncherWindow struct {
	cfg   *config.Config
	st    *store.Store
	grid  *launcher.Grid
	icons *PixbufCache

	win    *gtk.Window
	search *gtk.SearchEntry
	flow   *gtk.FlowBox

	visible  []store.Item
	selected int

	dragFrom   int
	dragStartX int
	dragStartY int
}

// NewLauncherWindow builds the main window and populates the grid.
func NewLauncherWindow(cfg *config.Config, st *store.Store, grid *launcher.Grid, icons *PixbufCache) (*LauncherWindow, error) {
	win, err := gtk.WindowNew(gtk.WINDOW_TOPLEVEL)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	lw := &LauncherWindow{
		cfg:      cfg,
		st:       st,
		grid:     grid,
		icons:    icons,
		win:      win,
		selected: -1,
		dragFrom: -1,
	}

	win.SetTitle(cfg.AppName)
	win.SetName("launcher-window")
	win.SetDefaultSize(cfg.Launcher.Window.Width, cfg.Launcher.Window.Height)
	lw.restoreGeometry()

	if err := lw.buildLayout(); err != nil {
		return nil, err
	}

	win.Connect("key-press-event", lw.onKeyPress)
	win.Connect("destroy", func() {
		lw.saveGeometry()
		gtk.MainQuit()
	})

	lw.refresh()
	return lw, nil
}

// Show presents the window.
func (lw *LauncherWindow) Show() {
	lw.win.ShowAll()
}

// Window exposes the toplevel for dialog parenting.
func (lw *LauncherWindow) Window() *gtk.Window {
	return lw.win
}

func (lw *LauncherWindow) buildLayout() error {
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

	title, _ := gtk.LabelNew(lw.cfg.AppName)
	title.SetHAlign(gtk.ALIGN_START)
	header.PackStart(title, false, false, 0)

	search, err := gtk.SearchEntryNew()
	if err != nil {
		return err
	}
	search.SetName("search-entry")
	search.SetPlaceholderText("Search apps... (Ctrl+F)")
	search.Connect("search-changed", func() { lw.refresh() })
	lw.search = search
	header.PackStart(search, true, true, 0)

	moreBtn, _ := gtk.ButtonNewWithLabel("More")
	moreBtn.Connect("clicked", func() { lw.onMore() })
	header.PackEnd(moreBtn, false, false, 0)

	runBtn, _ := gtk.ButtonNewWithLabel("Run")
	runBtn.Connect("clicked", func() { lw.onRunSelected() })
	header.PackEnd(runBtn, false, false, 0)

	addBtn, _ := gtk.ButtonNewWithLabel("Add")
	addBtn.Connect("clicked", func() { lw.onAdd() })
	header.PackEnd(addBtn, false, false, 0)

	vbox.PackStart(header, false, false, 0)

	scrolled, err := gtk.ScrolledWindowNew(nil, nil)
	if err != nil {
		return err
	}
	scrolled.SetPolicy(gtk.POLICY_NEVER, gtk.POLICY_AUTOMATIC)

	flow, err := gtk.FlowBoxNew()
	if err != nil {
		return err
	}
	flow.SetMaxChildrenPerLine(uint(lw.cfg.Launcher.Grid.Columns))
	flow.SetMinChildrenPerLine(1)
	flow.SetSelectionMode(gtk.SELECTION_SINGLE)
	flow.SetHomogeneous(true)
	flow.SetActivateOnSingleClick(false)
	flow.Connect("child-activated", func(_ *gtk.FlowBox, child *gtk.FlowBoxChild) {
		lw.runIndex(child.GetIndex())
	})
	lw.flow = flow

	scrolled.Add(flow)
	vbox.PackStart(scrolled, true, true, 0)

	lw.win.Add(vbox)
	return nil
}

// refresh rebuilds the tiles from the current filter.
func (lw *LauncherWindow) refresh() {
	query := ""
	if lw.search != nil {
		if text, err := lw.search.GetText(); err == nil {
			query = text
		}
	}

	if lw.cfg.Launcher.Search.Fuzzy {
		lw.visible = lw.grid.FuzzyFilter(query)
	} else {
		lw.visible = lw.grid.Filter(query)
	}
	lw.selected = -1

	lw.flow.GetChildren().Foreach(func(item interface{}) {
		if w, ok := item.(*gtk.Widget); ok {
			w.Destroy()
		}
	})

	for i, it := range lw.visible {
		tile, err := lw.buildTile(i, it)
		if err != nil {
			log.Printf("[UI] Failed to build tile for %s: %v", it.Path, err)
			continue
		}
		lw.flow.Add(tile)
	}
	lw.flow.ShowAll()
}

func (lw *LauncherWindow) buildTile(index int, it store.Item) (*gtk.EventBox, error) {
	eb, err := gtk.EventBoxNew()
	if err != nil {
		return nil, err
	}

	box, err := gtk.BoxNew(gtk.ORIENTATION_VERTICAL, 4)
	if err != nil {
		return nil, err
	}
	box.SetSizeRequest(lw.cfg.Launcher.Grid.TileSize, lw.cfg.Launcher.Grid.TileSize)

	iconSize := lw.cfg.Launcher.Icons.IconSize
	var image *gtk.Image
	if pb := lw.icons.Get(it.Path, iconSize); pb != nil {
		image, err = gtk.ImageNewFromPixbuf(pb)
	} else {
		image, err = gtk.ImageNew()
	}
	if err != nil {
		return nil, err
	}
	box.PackStart(image, true, false, 0)

	caption, err := gtk.LabelNew(it.DisplayName())
	if err != nil {
		return nil, err
	}
	caption.SetEllipsize(pango.ELLIPSIZE_END)
	caption.SetMaxWidthChars(14)
	caption.SetJustify(gtk.JUSTIFY_CENTER)
	if style, err := caption.GetStyleContext(); err == nil {
		style.AddClass("tile-caption")
	}
	box.PackStart(caption, false, false, 0)

	if style, err := box.GetStyleContext(); err == nil {
		style.AddClass("tile")
	}

	eb.Add(box)
	eb.Connect("button-press-event", func(_ *gtk.EventBox, ev *gdk.Event) bool {
		return lw.onTilePress(index, ev)
	})
	eb.Connect("button-release-event", func(source *gtk.EventBox, ev *gdk.Event) bool {
		return lw.onTileRelease(source, ev)
	})
	return eb, nil
}

func (lw *LauncherWindow) onTilePress(index int, ev *gdk.Event) bool {
	btn := gdk.EventButtonNewFromEvent(ev)
	lw.selected = index
	switch btn.Button() {
	case 1:
		lw.dragFrom = index
		lw.dragStartX = int(btn.XRoot())
		lw.dragStartY = int(btn.YRoot())
		if btn.Type() == gdk.EVENT_DOUBLE_BUTTON_PRESS {
			lw.dragFrom = -1
			lw.runIndex(index)
			return true
		}
	case 3:
		lw.showContextMenu(index, ev)
		return true
	}
	return false
}

// onTileRelease finishes the reorder gesture: if the press travelled past
// the threshold, the tile is spliced to the slot under the pointer.
func (lw *LauncherWindow) onTileRelease(source *gtk.EventBox, ev *gdk.Event) bool {
	from := lw.dragFrom
	lw.dragFrom = -1
	if from < 0 {
		return false
	}

	btn := gdk.EventButtonNewFromEvent(ev)
	dx := int(btn.XRoot()) - lw.dragStartX
	dy := int(btn.YRoot()) - lw.dragStartY
	if dx*dx+dy*dy < dragThresholdPx*dragThresholdPx {
		return false
	}

	fx, fy, err := source.TranslateCoordinates(lw.flow, int(btn.X()), int(btn.Y()))
	if err != nil {
		return false
	}

	to := lw.slotAt(fx, fy)
	if to < 0 || to == from {
		return false
	}

	if err := lw.moveVisible(from, to); err != nil {
		log.Printf("[UI] Reorder failed: %v", err)
		return false
	}
	lw.refresh()
	return true
}

// slotAt maps flowbox coordinates to a visible tile index.
func (lw *LauncherWindow) slotAt(x, y int) int {
	for i := range lw.visible {
		child := lw.flow.GetChildAtIndex(i)
		if child == nil {
			continue
		}
		alloc := child.GetAllocation()
		if x >= alloc.GetX() && x < alloc.GetX()+alloc.GetWidth() &&
			y >= alloc.GetY() && y < alloc.GetY()+alloc.GetHeight() {
			return i
		}
	}
	return -1
}

// moveVisible translates visible-list positions into backing-list positions
// before splicing, so reordering also works while a filter is active.
func (lw *LauncherWindow) moveVisible(from, to int) error {
	if from < 0 || from >= len(lw.visible) || to < 0 || to >= len(lw.visible) {
		return fmt.Errorf("reorder out of range")
	}

	backing := lw.grid.Items()
	src := indexOfPath(backing, lw.visible[from].Path)
	dst := indexOfPath(backing, lw.visible[to].Path)
	if src < 0 || dst < 0 {
		return fmt.Errorf("reorder target not in grid")
	}
	return lw.grid.Move(src, dst)
}

func indexOfPath(items []store.Item, path string) int {
	for i, it := range items {
		if it.Path == path {
			return i
		}
	}
	return -1
}

// onRunSelected runs the tile the user last clicked, the header-button
// counterpart of double-click.
func (lw *LauncherWindow) onRunSelected() {
	if lw.selected < 0 || lw.selected >= len(lw.visible) {
		ShowInfo(lw.win, lw.cfg.AppName, "Select a tile first.")
		return
	}
	lw.runIndex(lw.selected)
}

// onMore pops the selected tile's action menu from the header. A nil
// trigger event makes the menu position itself from the current click.
func (lw *LauncherWindow) onMore() {
	if lw.selected < 0 || lw.selected >= len(lw.visible) {
		ShowInfo(lw.win, lw.cfg.AppName, "Select a tile first.")
		return
	}
	lw.showContextMenu(lw.selected, nil)
}

func (lw *LauncherWindow) runIndex(index int) {
	if index < 0 || index >= len(lw.visible) {
		return
	}
	it := lw.visible[index]

	var err error
	if isDir(it.Path) {
		err = spawn.Open(it.Path)
	} else {
		err = spawn.Run(it.Path)
	}
	if err != nil {
		lw.reportSpawnError(it, err)
	}
}

func (lw *LauncherWindow) reportSpawnError(it store.Item, err error) {
	if errors.Is(err, spawn.ErrTargetMissing) {
		ShowWarning(lw.win, lw.cfg.AppName,
			fmt.Sprintf("'%s' no longer exists.\n%s", it.DisplayName(), it.Path))
		return
	}
	ShowWarning(lw.win, lw.cfg.AppName, fmt.Sprintf("Failed to run:\n%v", err))
}

func (lw *LauncherWindow) showContextMenu(index int, ev *gdk.Event) {
	if index < 0 || index >= len(lw.visible) {
		return
	}
	it := lw.visible[index]

	menu, err := gtk.MenuNew()
	if err != nil {
		return
	}

	appendItem := func(label string, action func()) {
		mi, err := gtk.MenuItemNewWithLabel(label)
		if err != nil {
			return
		}
		mi.Connect("activate", action)
		menu.Append(mi)
	}

	if isDir(it.Path) {
		appendItem("Open", func() {
			if err := spawn.Open(it.Path); err != nil {
				lw.reportSpawnError(it, err)
			}
		})
		appendItem("Open parent folder", func() {
			if err := spawn.OpenLocation(it.Path); err != nil {
				lw.reportSpawnError(it, err)
			}
		})
	} else {
		appendItem("Run", func() {
			if err := spawn.Run(it.Path); err != nil {
				lw.reportSpawnError(it, err)
			}
		})
		appendItem("Run as administrator", func() {
			if err := spawn.RunElevated(it.Path); err != nil {
				lw.reportSpawnError(it, err)
			}
		})
		appendItem("Open location", func() {
			if err := spawn.OpenLocation(it.Path); err != nil {
				lw.reportSpawnError(it, err)
			}
		})
	}

	sep, _ := gtk.SeparatorMenuItemNew()
	menu.Append(sep)

	appendItem("Rename", func() { lw.onRename(it) })
	appendItem("Unpin", func() { lw.onUnpin(it) })
	appendItem("Log icon diagnostics", func() { lw.logIconDiagnostics(it) })

	menu.ShowAll()
	menu.PopupAtPointer(ev)
}

// logIconDiagnostics writes an extraction report for a tile to the log,
// the first thing to ask for when an icon renders as a glyph placeholder.
func (lw *LauncherWindow) logIconDiagnostics(it store.Item) {
	diag := lw.icons.Extractor().Diagnose(it.Path)
	log.Printf("[UI] Icon diagnostics for %s: exists=%v type=%s methods=%v sizes=%v",
		diag.FilePath, diag.FileExists, diag.FileType, diag.Methods, diag.AvailableSizes)
	for _, e := range diag.Errors {
		log.Printf("[UI]   error: %s", e)
	}
	for _, r := range diag.Recommendations {
		log.Printf("[UI]   hint: %s", r)
	}

	hits, misses, rate, size := lw.icons.Stats()
	log.Printf("[UI] Pixbuf cache: %d hits, %d misses (%.1f%% hit rate), %d cached", hits, misses, rate, size)
	ShowInfo(lw.win, lw.cfg.AppName,
		fmt.Sprintf("Icon diagnostics for '%s' written to the log.", it.DisplayName()))
}

func (lw *LauncherWindow) onAdd() {
	chooser, err := gtk.FileChooserDialogNewWith2Buttons(
		"Pin a file or folder", lw.win, gtk.FILE_CHOOSER_ACTION_OPEN,
		"Cancel", gtk.RESPONSE_CANCEL,
		"Pin", gtk.RESPONSE_ACCEPT,
	)
	if err != nil {
		return
	}
	defer chooser.Destroy()

	if chooser.Run() != gtk.RESPONSE_ACCEPT {
		return
	}

	path := chooser.GetFilename()
	if path == "" {
		return
	}

	if _, err := lw.grid.Pin(path); err != nil {
		if errors.Is(err, launcher.ErrAlreadyPinned) {
			ShowInfo(lw.win, lw.cfg.AppName, "That item is already pinned.")
		} else {
			ShowWarning(lw.win, lw.cfg.AppName, fmt.Sprintf("Failed to pin:\n%v", err))
		}
		return
	}
	lw.refresh()
}

func (lw *LauncherWindow) onRename(it store.Item) {
	title, ok := PromptText(lw.win, "Rename", "Title:", it.DisplayName())
	if !ok {
		return
	}
	if err := lw.grid.Rename(it.Path, title); err != nil {
		ShowWarning(lw.win, lw.cfg.AppName, fmt.Sprintf("Failed to rename:\n%v", err))
		return
	}
	lw.refresh()
}

func (lw *LauncherWindow) onUnpin(it store.Item) {
	if !Confirm(lw.win, "Confirm Removal",
		fmt.Sprintf("Are you sure you want to unpin '%s'?", it.DisplayName())) {
		return
	}
	if err := lw.grid.Unpin(it.Path); err != nil {
		ShowWarning(lw.win, lw.cfg.AppName, fmt.Sprintf("Failed to unpin:\n%v", err))
		return
	}
	lw.icons.Invalidate(it.Path)
	lw.refresh()
}

func (lw *LauncherWindow) onKeyPress(_ *gtk.Window, ev *gdk.Event) bool {
	key := gdk.EventKeyNewFromEvent(ev)
	if key.State()&gdk.CONTROL_MASK == 0 {
		return false
	}

	switch key.KeyVal() {
	case gdk.KEY_n, gdk.KEY_N:
		lw.onAdd()
		return true
	case gdk.KEY_r, gdk.KEY_R:
		lw.icons.Clear()
		lw.refresh()
		return true
	case gdk.KEY_f, gdk.KEY_F:
		lw.search.GrabFocus()
		return true
	}
	return false
}

func (lw *LauncherWindow) restoreGeometry() {
	doc := lw.st.Load()
	if doc.WindowPosition == nil {
		return
	}
	g := doc.WindowPosition
	if g.Width > 0 && g.Height > 0 {
		lw.win.Resize(g.Width, g.Height)
	}
	lw.win.Move(g.X, g.Y)
}

func (lw *LauncherWindow) saveGeometry() {
	x, y := lw.win.GetPosition()
	w, h := lw.win.GetSize()

	doc := lw.st.Load()
	doc.WindowPosition = &store.Geometry{X: x, Y: y, Width: w, Height: h}
	if err := lw.st.Save(doc); err != nil {
		log.Printf("[UI] Failed to save window position: %v", err)
	}
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
