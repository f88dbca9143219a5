package views

import "resumemcp/internal/application/precompute"

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height and message handling.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets a message to display in the view
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// listHeight is the number of list rows that fit below the header and above
// the help line.
func (s *ViewState) listHeight(chrome int) int {
	if s.Height <= 0 {
		return defaultListHeight
	}
	return max(s.Height-chrome, 1)
}

const defaultListHeight = 15

// Messages for view switching
type SwitchToToolsMsg struct{}

type SwitchToKeysMsg struct {
	Tool precompute.Tool
}

type SwitchToPayloadMsg struct {
	Tool precompute.Tool
	Keys []string
}

type SwitchToHelpMsg struct{}

type CloseHelpMsg struct{}

// OpenArtifactMsg asks the application to open a generated file
type OpenArtifactMsg struct {
	Path string
}
