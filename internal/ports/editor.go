package ports

import "os/exec"

// EditorOpener opens a generated file in an external program
type EditorOpener interface {
	// Command returns an exec.Cmd for showing the file.
	// This is useful for integrating with bubbletea's ExecProcess
	Command(path string) (*exec.Cmd, error)
}
