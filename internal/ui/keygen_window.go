package ui

import (
	"fmt"

	"github.com/gotk3/gotk3/gdk"
	"github.com/gotk3/gotk3/gtk"

	"github.com/supercut-tools/superlauncher/internal/keygen"
)

// KeygenWindow issues SuperCut license keys.
type KeygenWindow struct {
	generator *keygen.Generator

	win     *gtk.Window
	email   *gtk.Entry
	keyView *gtk.Label

	current keygen.License
}

// NewKeygenWindow builds the keygen front end.
func NewKeygenWindow(generator *keygen.Generator) (*KeygenWindow, error) {
	win, err := gtk.WindowNew(gtk.WINDOW_TOPLEVEL)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	kw := &KeygenWindow{generator: generator, win: win}

	win.SetTitle("SuperCut Keygen")
	win.SetName("keygen-window")
	win.SetDefaultSize(420, 220)
	win.SetResizable(false)

	if err := kw.buildLayout(); err != nil {
		return nil, err
	}

	win.Connect("destroy", gtk.MainQuit)
	return kw, nil
}

// Show presents the window.
func (kw *KeygenWindow) Show() {
	kw.win.ShowAll()
}

func (kw *KeygenWindow) buildLayout() error {
	vbox, err := gtk.BoxNew(gtk.ORIENTATION_VERTICAL, 8)
	if err != nil {
		return err
	}
	vbox.SetMarginTop(12)
	vbox.SetMarginBottom(12)
	vbox.SetMarginStart(12)
	vbox.SetMarginEnd(12)

	prompt, _ := gtk.LabelNew("Licensee email:")
	prompt.SetHAlign(gtk.ALIGN_START)
	vbox.PackStart(prompt, false, false, 0)

	email, err := gtk.EntryNew()
	if err != nil {
		return err
	}
	email.SetPlaceholderText("name@example.com")
	email.SetActivatesDefault(true)
	email.Connect("activate", func() { kw.onGenerate() })
	kw.email = email
	vbox.PackStart(email, false, false, 0)

	generate, _ := gtk.ButtonNewWithLabel("Generate Key")
	generate.Connect("clicked", func() { kw.onGenerate() })
	vbox.PackStart(generate, false, false, 0)

	keyView, _ := gtk.LabelNew("")
	keyView.SetSelectable(true)
	keyView.SetHAlign(gtk.ALIGN_CENTER)
	if style, err := keyView.GetStyleContext(); err == nil {
		style.AddClass("key-display")
	}
	kw.keyView = keyView
	vbox.PackStart(keyView, true, true, 0)

	copyBtn, _ := gtk.ButtonNewWithLabel("Copy to Clipboard")
	copyBtn.Connect("clicked", func() { kw.onCopy() })
	vbox.PackStart(copyBtn, false, false, 0)

	kw.win.Add(vbox)
	return nil
}

func (kw *KeygenWindow) onGenerate() {
	text, err := kw.email.GetText()
	if err != nil {
		return
	}

	license, err := kw.generator.Issue(text)
	if err != nil {
		ShowWarning(kw.win, "SuperCut Keygen", fmt.Sprintf("Cannot generate a key:\n%v", err))
		return
	}

	kw.current = license
	kw.keyView.SetText(license.Key)
}

func (kw *KeygenWindow) onCopy() {
	if kw.current.Key == "" {
		ShowInfo(kw.win, "SuperCut Keygen", "Generate a key first.")
		return
	}

	clipboard, err := gtk.ClipboardGet(gdk.SELECTION_CLIPBOARD)
	if err != nil {
		ShowWarning(kw.win, "SuperCut Keygen", fmt.Sprintf("Clipboard unavailable: %v", err))
		return
	}
	clipboard.SetText(kw.current.String())
	ShowSuccess(kw.win, "SuperCut Keygen", "License copied to the clipboard.")
}
