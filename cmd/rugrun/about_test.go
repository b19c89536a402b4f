package main

import (
	"testing"

	"github.com/tiniprime/RugRun/internal/platform/tui"
)

func TestAboutSections(t *testing.T) {
	if s, err := aboutSections(nil); err != nil || s != nil {
		t.Errorf("no argument = %v, %v; expected every page", s, err)
	}
	s, err := aboutSections([]string{"faq"})
	if err != nil || len(s) != 1 || s[0] != tui.AboutFAQ {
		t.Errorf("faq = %v, %v", s, err)
	}
	if _, err := aboutSections([]string{"roadmap"}); err == nil {
		t.Error("expected error for an unknown page")
	}
}
