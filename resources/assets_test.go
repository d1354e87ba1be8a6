package resources

import (
	"strings"
	"testing"
)

func TestIconsLoadAndCache(t *testing.T) {
	for _, name := range []string{IconActive, IconPaused, IconBreak} {
		first, err := Icon(name)
		if err != nil {
			t.Fatalf("Icon(%s) failed: %v", name, err)
		}
		if !strings.Contains(string(first.Content()), "<svg") {
			t.Errorf("%s is not an svg", name)
		}
		second := MustIcon(name)
		if first != second {
			t.Errorf("%s was not cached", name)
		}
	}
}

func TestMissingIcon(t *testing.T) {
	if _, err := Icon("missing.svg"); err == nil {
		t.Error("expected error for missing icon")
	}
}

func TestChimeIsWAV(t *testing.T) {
	data := Chime()
	if len(data) < 44 {
		t.Fatalf("chime too short: %d bytes", len(data))
	}
	if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		t.Errorf("chime is not a RIFF/WAVE file")
	}
}
