// Package editor opens generated artifacts in the user's editor or pager.
package editor

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"strings"

	"resumemcp/internal/application"
	"resumemcp/internal/ports"
)

// fallbacks are tried in order when no environment variable names a program.
var fallbacks = [][]string{
	{"nvim", "-R"},
	{"vim", "-R"},
	{"less"},
	{"more"},
}

// Opener implements ports.EditorOpener
type Opener struct {
	getenv   func(string) string
	lookPath func(string) (string, error)
	stat     func(string) (os.FileInfo, error)
}

// Ensure Opener implements EditorOpener
var _ ports.EditorOpener = (*Opener)(nil)

// NewOpener creates a new editor opener
func NewOpener() *Opener {
	return &Opener{
		getenv:   os.Getenv,
		lookPath: exec.LookPath,
		stat:     os.Stat,
	}
}

// Command returns an exec.Cmd showing path, for use with bubbletea's
// ExecProcess. The file must exist.
func (o *Opener) Command(path string) (*exec.Cmd, error) {
	if _, err := o.stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w (run generate first)", path, application.ErrNotFound)
		}
		return nil, err
	}

	argv := o.program()
	if argv == nil {
		return nil, fmt.Errorf("no editor found: set $EDITOR or $PAGER")
	}

	cmd := exec.Command(argv[0], append(argv[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd, nil
}

// program returns the command line to run, without the file argument.
// $VISUAL, $EDITOR and $PAGER may carry flags, e.g. "code --wait".
func (o *Opener) program() []string {
	for _, name := range []string{"VISUAL", "EDITOR", "PAGER"} {
		if argv := strings.Fields(o.getenv(name)); len(argv) > 0 {
			return argv
		}
	}

	for _, argv := range fallbacks {
		if path, err := o.lookPath(argv[0]); err == nil {
			return append([]string{path}, argv[1:]...)
		}
	}
	return nil
}
