package constants

import (
	"strings"
	"testing"

	"github.com/abhisek/engihub/internal/study"
)

func TestConstantsScreen_ListsQuickRefAndMore(t *testing.T) {
	c := New()
	if c.Title() != "Engineering Constants" {
		t.Errorf("Title = %q", c.Title())
	}
	view := c.View(100, 40)
	for _, k := range study.QuickRef() {
		if !strings.Contains(view, k.Label) || !strings.Contains(view, k.Value) {
			t.Errorf("view missing %s", k.Label)
		}
	}
	if !strings.Contains(view, "Speed of Light") {
		t.Error("expected the extended table")
	}
}
