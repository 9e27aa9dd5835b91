package editor

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// ResolveEditor determines which editor to use based on config, env vars, and fallback.
func ResolveEditor(configEditor string) string {
	if configEditor != "" {
		return configEditor
	}
	if ed := os.Getenv("EDITOR"); ed != "" {
		return ed
	}
	if ed := os.Getenv("VISUAL"); ed != "" {
		return ed
	}
	return "vi"
}

// Editor runs an external editor attached to the given streams.
type Editor struct {
	Command string
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
}

// New returns an Editor for command attached to the process terminal.
func New(command string) *Editor {
	return &Editor{Command: command, Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Edit opens initialContent in the editor and returns the saved buffer.
// changed is false when the buffer comes back empty or unchanged.
func (e *Editor) Edit(ctx context.Context, initialContent string) (content string, changed bool, err error) {
	tmp, err := os.CreateTemp("", "gitdiary-*.md")
	if err != nil {
		return "", false, fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.WriteString(initialContent); err != nil {
		tmp.Close()
		return "", false, fmt.Errorf("writing temp file: %w", err)
	}
	tmp.Close()

	parts := strings.Fields(e.Command)
	if len(parts) == 0 {
		return "", false, fmt.Errorf("empty editor command")
	}

	cmdArgs := append(parts[1:], tmpName)
	cmd := exec.CommandContext(ctx, parts[0], cmdArgs...)
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	if err := cmd.Run(); err != nil {
		return "", false, fmt.Errorf("editor exited with error: %w", err)
	}

	data, err := os.ReadFile(tmpName)
	if err != nil {
		return "", false, fmt.Errorf("reading edited file: %w", err)
	}

	result := string(data)
	if strings.TrimSpace(result) == "" {
		return "", false, nil
	}
	if strings.TrimSpace(result) == strings.TrimSpace(initialContent) {
		return initialContent, false, nil
	}
	return result, true, nil
}
