package ui

import (
	"github.com/gotk3/gotk3/gtk"
)

// ShowInfo presents a plain informational dialog.
func ShowInfo(parent *gtk.Window, title, message string) {
	showMessage(parent, gtk.MESSAGE_INFO, title, message)
}

// ShowSuccess presents a confirmation that an action completed.
func ShowSuccess(parent *gtk.Window, title, message string) {
	showMessage(parent, gtk.MESSAGE_INFO, title, message)
}

// ShowWarning presents a non-fatal problem. Launch and scan failures all
// end up here; nothing in the suite escalates past a warning dialog.
func ShowWarning(parent *gtk.Window, title, message string) {
	showMessage(parent, gtk.MESSAGE_WARNING, title, message)
}

// ShowError presents an error the user needs to act on.
func ShowError(parent *gtk.Window, title, message string) {
	showMessage(parent, gtk.MESSAGE_ERROR, title, message)
}

func showMessage(parent *gtk.Window, kind gtk.MessageType, title, message string) {
	dialog := gtk.MessageDialogNew(parent, gtk.DIALOG_MODAL, kind, gtk.BUTTONS_OK, "%s", message)
	dialog.SetTitle(title)
	dialog.Run()
	dialog.Destroy()
}

// Confirm asks a yes/no question, defaulting to no.
func Confirm(parent *gtk.Window, title, message string) bool {
	dialog := gtk.MessageDialogNew(parent, gtk.DIALOG_MODAL, gtk.MESSAGE_QUESTION, gtk.BUTTONS_YES_NO, "%s", message)
	dialog.SetTitle(title)
	dialog.SetDefaultResponse(gtk.RESPONSE_NO)
	response := dialog.Run()
	dialog.Destroy()
	return response == gtk.RESPONSE_YES
}

// PromptText asks for a single line of text, returning the entry and
// whether the user accepted.
func PromptText(parent *gtk.Window, title, label, initial string) (string, bool) {
	dialog, err := gtk.DialogNewWithButtons(title, parent, gtk.DIALOG_MODAL,
		[]interface{}{"Cancel", gtk.RESPONSE_CANCEL},
		[]interface{}{"OK", gtk.RESPONSE_OK},
	)
	if err != nil {
		return "", false
	}
	defer dialog.Destroy()
	dialog.SetDefaultResponse(gtk.RESPONSE_OK)

	content, err := dialog.GetContentArea()
	if err != nil {
		return "", false
	}

	prompt, _ := gtk.LabelNew(label)
	prompt.SetHAlign(gtk.ALIGN_START)
	content.PackStart(prompt, false, false, 6)

	entry, _ := gtk.EntryNew()
	entry.SetText(initial)
	entry.SetActivatesDefault(true)
	content.PackStart(entry, false, false, 6)

	dialog.ShowAll()
	if dialog.Run() != gtk.RESPONSE_OK {
		return "", false
	}

	text, err := entry.GetText()
	if err != nil {
		return "", false
	}
	return text, true
}
