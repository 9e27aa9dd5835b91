package editor

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestResolveEditorConfig(t *testing.T) {
	result := ResolveEditor("nano")
	if result != "nano" {
		t.Errorf("expected nano, got %q", result)
	}
}

func TestResolveEditorEnvEditor(t *testing.T) {
	t.Setenv("EDITOR", "vim")
	t.Setenv("VISUAL", "code")
	result := ResolveEditor("")
	if result != "vim" {
		t.Errorf("expected vim (from EDITOR), got %q", result)
	}
}

func TestResolveEditorEnvVisual(t *testing.T) {
	t.Setenv("EDITOR", "")
	t.Setenv("VISUAL", "code")
	result := ResolveEditor("")
	if result != "code" {
		t.Errorf("expected code (from VISUAL), got %q", result)
	}
}

func TestResolveEditorFallback(t *testing.T) {
	t.Setenv("EDITOR", "")
	t.Setenv("VISUAL", "")
	result := ResolveEditor("")
	if result != "vi" {
		t.Errorf("expected vi (fallback), got %q", result)
	}
}

// script writes a shell editor that runs body with the buffer path in $1.
func script(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "editor.sh")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0755); err != nil {
		t.Fatal(err)
	}
	return "sh " + path
}

func TestEditUnchanged(t *testing.T) {
	content, changed, err := New("true").Edit(context.Background(), "original content")
	if err != nil {
		t.Fatalf("Edit: %v", err)
	}
	if changed {
		t.Error("expected changed=false for unchanged content")
	}
	if content != "original content" {
		t.Errorf("content = %q, want %q", content, "original content")
	}
}

func TestEditChanged(t *testing.T) {
	ed := New(script(t, `printf 'new text\n' > "$1"`))
	content, changed, err := ed.Edit(context.Background(), "original")
	if err != nil {
		t.Fatalf("Edit: %v", err)
	}
	if !changed || content != "new text\n" {
		t.Errorf("content = %q changed = %v", content, changed)
	}
}

func TestEditEmptyResult(t *testing.T) {
	ed := New(script(t, `: > "$1"`))
	content, changed, err := ed.Edit(context.Background(), "original")
	if err != nil {
		t.Fatalf("Edit: %v", err)
	}
	if changed {
		t.Error("expected changed=false for empty result")
	}
	if content != "" {
		t.Errorf("content = %q, want empty", content)
	}
}

func TestEditFailingEditor(t *testing.T) {
	if _, _, err := New("false").Edit(context.Background(), "x"); err == nil {
		t.Error("expected error from failing editor")
	}
}

func TestEditEmptyCommand(t *testing.T) {
	if _, _, err := New("  ").Edit(context.Background(), "x"); err == nil {
		t.Error("expected error for empty command")
	}
}
