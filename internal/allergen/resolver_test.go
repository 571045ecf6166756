package allergen

import "testing"

func testCatalog() []Allergen {
	return []Allergen{
		{ID: "id-milk", Name: "Milk"},
		{ID: "id-eggs", Name: "Eggs"},
		{ID: "id-peanuts", Name: "Peanuts"},
	}
}

func TestResolveCaseAndWhitespaceInsensitive(t *testing.T) {
	r := NewResolver(testCatalog())

	a := r.Resolve(" Milk, EGGS ")
	b := r.Resolve("milk,eggs")

	if len(a) != 2 || len(b) != 2 {
		t.Fatalf("expected 2 IDs each, got %d and %d", len(a), len(b))
	}

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("expected identical resolution, got %v vs %v", a, b)
		}
	}
}

func TestResolveDropsUnknownTokens(t *testing.T) {
	r := NewResolver(testCatalog())

	ids := r.Resolve("Milk, Unicorn Dust, Peanuts")
	if len(ids) != 2 {
		t.Fatalf("expected 2 IDs, got %d", len(ids))
	}
	if ids[0] != "id-milk" || ids[1] != "id-peanuts" {
		t.Fatalf("unexpected IDs: %v", ids)
	}
}

func TestResolveEmptyInput(t *testing.T) {
	r := NewResolver(testCatalog())

	if ids := r.Resolve(""); ids != nil {
		t.Fatalf("expected nil, got %v", ids)
	}
	if ids := r.Resolve("  , ,"); ids != nil {
		t.Fatalf("expected nil for blank tokens, got %v", ids)
	}
}
