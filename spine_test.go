package epub

import (
	"fmt"
	"testing"
)

func TestBuildSpine(t *testing.T) {
	entries := buildSpine(testChapters(4))
	if len(entries) != 4 {
		t.Fatalf("spine length = %d, want 4", len(entries))
	}
	for i, e := range entries {
		want := fmt.Sprintf("chapter%d", i+1)
		if e.IDRef != want {
			t.Errorf("spine entry %d = %q, want %q", i, e.IDRef, want)
		}
	}
}

func TestBuildSpineEmpty(t *testing.T) {
	if entries := buildSpine(nil); len(entries) != 0 {
		t.Errorf("spine for no chapters = %v, want empty", entries)
	}
}
