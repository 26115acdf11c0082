package tui

// draftSavedMsg reports the outcome of a background draft save.
// Saving is fire-and-forget; the message only exists to keep the
// program loop flowing.
type draftSavedMsg struct {
	err error
}

// exportDoneMsg reports a finished PDF export
type exportDoneMsg struct {
	path string
	err  error
}
