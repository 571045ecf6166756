package importer

import (
	"strings"
	"testing"
)

func TestExtractCSV_RowsInFileOrder(t *testing.T) {
	input := "name,description,category,price,allergens\n" +
		"Soup,Hot tomato soup,Starters,5.00,Celery\n" +
		"Salad,Garden salad,Starters,7.50,\n" +
		"Burger,Beef burger,Mains,12.00,\"Milk, Eggs\"\n"

	rows, err := ExtractCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	if rows[0].Name != "Soup" || rows[1].Name != "Salad" || rows[2].Name != "Burger" {
		t.Fatalf("rows out of order: %+v", rows)
	}
	if rows[2].Allergens != "Milk, Eggs" {
		t.Fatalf("expected quoted allergens preserved, got %q", rows[2].Allergens)
	}
}

func TestExtractCSV_MissingNameColumn(t *testing.T) {
	input := "title,price\nSoup,5.00\n"

	rows, err := ExtractCSV(strings.NewReader(input))
	if err != ErrMissingNameColumn {
		t.Fatalf("expected ErrMissingNameColumn, got %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected zero rows, got %d", len(rows))
	}
}

func TestExtractCSV_MalformedQuoting(t *testing.T) {
	input := "name,price\n\"Soup,5.00\n"

	if _, err := ExtractCSV(strings.NewReader(input)); err != ErrCSVParse {
		t.Fatalf("expected ErrCSVParse, got %v", err)
	}
}

func TestExtractCSV_HeaderCaseInsensitive(t *testing.T) {
	input := "Name, Price\nSoup,5.00\n"

	rows, err := ExtractCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 || rows[0].Name != "Soup" || rows[0].Price != "5.00" {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}

func TestExtractCSV_MinimalNamePriceFile(t *testing.T) {
	input := "name,price\nSoup,5.00\nSalad,7.50\n"

	rows, err := ExtractCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Name != "Soup" || rows[0].Price != "5.00" {
		t.Fatalf("unexpected first row: %+v", rows[0])
	}
	if rows[1].Name != "Salad" || rows[1].Price != "7.50" {
		t.Fatalf("unexpected second row: %+v", rows[1])
	}
}

func TestTemplateRoundTrips(t *testing.T) {
	rows, err := ExtractCSV(strings.NewReader(string(Template())))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("expected 3 example rows, got %d", len(rows))
	}

	for i, row := range rows {
		if row.Name != templateRecords[i+1][0] {
			t.Fatalf("row %d: expected name %q, got %q", i, templateRecords[i+1][0], row.Name)
		}
		if row.Price != templateRecords[i+1][3] {
			t.Fatalf("row %d: expected price %q, got %q", i, templateRecords[i+1][3], row.Price)
		}
		if err := row.Validate(); err != nil {
			t.Fatalf("template row %d should be valid: %v", i, err)
		}
	}
}
