package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"

	"github.com/tiniprime/RugRun/internal/proof"
)

var errNoClipboard = errors.New("clipboard unavailable")

// writeClipboard is swapped out in tests.
var writeClipboard = func(text string) error {
	if clipboard.Unsupported {
		return errNoClipboard
	}
	return clipboard.WriteAll(text)
}

// proofDir returns the fallback directory for proofs that could not be
// copied to the clipboard.
func proofDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".rugrun", "proofs")
	}
	return filepath.Join(home, ".rugrun", "proofs")
}

// CopyProof puts the proof JSON on the system clipboard. Without a usable
// clipboard (SSH sessions, headless boxes) the proof is written to a file
// under dir instead. The returned string is the status line to show.
func CopyProof(p proof.RunProof, dir string) (string, error) {
	text, err := p.JSON()
	if err != nil {
		return "", err
	}
	if err := writeClipboard(text); err != nil {
		return saveProof(p, text, dir)
	}
	return "Proof copied to clipboard", nil
}

func saveProof(p proof.RunProof, text, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("proof: create dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("proof_%s.json", p.Nonce))
	if err := os.WriteFile(path, []byte(text+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("proof: write: %w", err)
	}
	return "Proof saved to " + path, nil
}
