package importer

import "testing"

func TestParseMenuText_CategoryThenItem(t *testing.T) {
	rows := ParseMenuText("BURGERS\nBurger $9.50\n")

	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].Category != "BURGERS" {
		t.Fatalf("expected category BURGERS, got %q", rows[0].Category)
	}
	if rows[0].Name != "Burger" {
		t.Fatalf("expected name Burger, got %q", rows[0].Name)
	}
	if rows[0].Price != "9.50" {
		t.Fatalf("expected price 9.50, got %q", rows[0].Price)
	}
	if rows[0].Description != "" {
		t.Fatalf("OCR rows never carry a description, got %q", rows[0].Description)
	}
}

func TestParseMenuText_FirstPriceWins(t *testing.T) {
	rows := ParseMenuText("Combo $12 $3 extra\n")

	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].Name != "Combo" {
		t.Fatalf("expected name Combo, got %q", rows[0].Name)
	}
	if rows[0].Price != "12" {
		t.Fatalf("expected price 12, got %q", rows[0].Price)
	}
}

func TestParseMenuText_ItemBeforeAnyCategory(t *testing.T) {
	rows := ParseMenuText("Fries $3.00\nSIDES\nOnion Rings $4.00\n")

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Category != "" {
		t.Fatalf("expected empty category before first header, got %q", rows[0].Category)
	}
	if rows[1].Category != "SIDES" {
		t.Fatalf("expected category SIDES, got %q", rows[1].Category)
	}
}

func TestParseMenuText_NoiseDiscarded(t *testing.T) {
	text := "Joe's Diner\n" + // mixed case, no price: noise
		"123 Main Street\n" + // lowercase present: noise
		"MAINS\n" +
		"Steak $21.00\n" +
		"call 555-0199 for reservations\n"

	rows := ParseMenuText(text)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].Name != "Steak" || rows[0].Category != "MAINS" {
		t.Fatalf("unexpected row: %+v", rows[0])
	}
}

// A category-shaped line carrying a stray $ matches neither rule and is
// dropped; the previous category stays in effect.
func TestParseMenuText_CategoryWithStrayDollarIsNoise(t *testing.T) {
	text := "STARTERS\n" +
		"DEALS UNDER $\n" +
		"Wings $8.00\n"

	rows := ParseMenuText(text)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].Category != "STARTERS" {
		t.Fatalf("expected STARTERS to remain current, got %q", rows[0].Category)
	}
}

func TestParseMenuText_PriceOnlyLineDropped(t *testing.T) {
	rows := ParseMenuText("$9.50\n")
	if len(rows) != 0 {
		t.Fatalf("expected no rows for a nameless price line, got %d", len(rows))
	}
}

func TestParseMenuText_BlankLinesIgnored(t *testing.T) {
	rows := ParseMenuText("\n\nMAINS\n\nPasta $11.00\n\n")
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
}

func TestClassifyLine(t *testing.T) {
	cases := []struct {
		line string
		want lineKind
	}{
		{"BURGERS", lineCategory},
		{"Burger $9.50", lineItem},
		{"BURGERS $9.50", lineItem},
		{"DEALS UNDER $", lineNoise},
		{"Joe's Diner", lineNoise},
		{"123 MAIN STREET", lineCategory}, // digits are caps-stable
	}

	for _, tc := range cases {
		if got := classifyLine(tc.line); got != tc.want {
			t.Errorf("classifyLine(%q) = %d, want %d", tc.line, got, tc.want)
		}
	}
}
