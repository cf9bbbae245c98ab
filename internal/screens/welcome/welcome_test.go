package welcome

import (
	"strings"
	"testing"

	"github.com/codelane/coderoom/internal/profile"
	"github.com/codelane/coderoom/internal/screen"
)

func TestRenderBanner_CompactFallback(t *testing.T) {
	wide := RenderBanner(100)
	if !strings.Contains(wide, "██") {
		t.Error("wide banner should use block art")
	}

	narrow := RenderBanner(40)
	if !strings.Contains(narrow, "C O D E R O O M") {
		t.Errorf("narrow banner should use compact text, got %q", narrow)
	}
}

func TestTransition_OnlyFiresOnce(t *testing.T) {
	calls := 0
	w := New("unused", func(profile.Profile) screen.Screen {
		calls++
		return nil
	})

	if cmd := w.transition(profile.Profile{Name: "Ada"}); cmd == nil {
		t.Fatal("first transition should produce a command")
	}
	if cmd := w.transition(profile.Profile{Name: "Ada"}); cmd != nil {
		t.Error("second transition should be a no-op")
	}
	if calls != 1 {
		t.Errorf("home factory ran %d times, want 1", calls)
	}
}
