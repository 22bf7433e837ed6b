package tui

// Each action runs off the update loop and reports back with one of these.
type (
	submitDoneMsg struct{ err error }
	resetDoneMsg  struct{ err error }
	copyDoneMsg   struct{ err error }
)
