package exam_test

import (
	"testing"

	"github.com/practico-app/practico-lambda/internal/exam"
)

func TestCatalog(t *testing.T) {
	types := exam.Catalog()
	if len(types) == 0 {
		t.Fatal("catalog must not be empty")
	}

	seen := make(map[string]bool)
	for _, e := range types {
		if e.ID == "" || e.Name == "" {
			t.Errorf("catalog entry %+v has empty fields", e)
		}
		if seen[e.ID] {
			t.Errorf("duplicate exam id %q", e.ID)
		}
		seen[e.ID] = true
	}

	types[0].Name = "mutated"
	if exam.Catalog()[0].Name == "mutated" {
		t.Error("Catalog must return a copy, not the backing slice")
	}
}
