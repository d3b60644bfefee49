package components

import (
	"strings"
	"testing"

	"gantterm/internal/tui/styles"
)

func TestStatusBar_JoinsItems(t *testing.T) {
	sb := NewStatusBar()
	out := sb.Render(80, []string{"q quit", "f fit"}, "", styles.Dark())

	if !strings.Contains(out, "q quit") || !strings.Contains(out, "f fit") {
		t.Errorf("missing hint items: %q", out)
	}
	if !strings.Contains(out, "•") {
		t.Errorf("missing separator: %q", out)
	}
}

func TestStatusBar_NoticeReplacesHints(t *testing.T) {
	sb := NewStatusBar()
	out := sb.Render(80, []string{"q quit"}, "saved chart.png", styles.Dark())

	if !strings.Contains(out, "saved chart.png") {
		t.Errorf("notice missing: %q", out)
	}
	if strings.Contains(out, "q quit") {
		t.Errorf("hints should be hidden while a notice is active: %q", out)
	}
}

func TestStatusBar_EmptyItems(t *testing.T) {
	sb := NewStatusBar()
	// Must not panic and must return something renderable.
	_ = sb.Render(40, nil, "", styles.Dark())
}
