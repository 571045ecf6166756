package importer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/log-ai-n/manassistant/internal/allergen"
	"github.com/log-ai-n/manassistant/internal/menu"
)

func testResolver() *allergen.Resolver {
	return allergen.NewResolver([]allergen.Allergen{
		{ID: "id-milk", Name: "Milk"},
		{ID: "id-eggs", Name: "Eggs"},
	})
}

func TestCommit_AllRowsPersisted(t *testing.T) {
	repo := menu.NewInMemoryRepository()

	var progress []int
	committer := NewCommitter(repo, testResolver(), func(p int) {
		progress = append(progress, p)
	})

	rows := []RawRow{
		{Name: "Soup", Price: "5.00"},
		{Name: "Salad", Price: "7.50", Allergens: "Milk, Eggs"},
		{Name: "Burger", Price: "12.00"},
		{Name: "Fries"},
	}

	result, err := committer.Commit(context.Background(), "rest-1", rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.ItemIDs) != 4 {
		t.Fatalf("expected 4 committed IDs, got %d", len(result.ItemIDs))
	}
	if len(repo.Items) != 4 {
		t.Fatalf("expected 4 items persisted, got %d", len(repo.Items))
	}

	for _, item := range repo.Items {
		if !item.Active {
			t.Fatalf("imported items must be active: %+v", item)
		}
	}

	// progress is reported after every row, allergens or not
	want := []int{25, 50, 75, 100}
	if len(progress) != len(want) {
		t.Fatalf("expected %d progress updates, got %v", len(want), progress)
	}
	for i := range want {
		if progress[i] != want[i] {
			t.Fatalf("expected progress %v, got %v", want, progress)
		}
	}

	// second row got both allergen links at the bulk default severity
	links := repo.Links[result.ItemIDs[1]]
	if len(links) != 2 {
		t.Fatalf("expected 2 allergen links, got %d", len(links))
	}
	for _, link := range links {
		if link.Severity != allergen.DefaultSeverity {
			t.Fatalf("expected severity %d, got %d", allergen.DefaultSeverity, link.Severity)
		}
	}
}

func TestCommit_UnknownAllergenDoesNotFailRow(t *testing.T) {
	repo := menu.NewInMemoryRepository()
	committer := NewCommitter(repo, testResolver(), nil)

	rows := []RawRow{
		{Name: "Mystery Dish", Allergens: "Unicorn Dust"},
	}

	result, err := committer.Commit(context.Background(), "rest-1", rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.ItemIDs) != 1 {
		t.Fatalf("expected 1 committed row, got %d", len(result.ItemIDs))
	}
	if len(repo.Links[result.ItemIDs[0]]) != 0 {
		t.Fatal("unresolved allergens must not create links")
	}
}

func TestCommit_PartialFailureKeepsEarlierRows(t *testing.T) {
	repo := menu.NewInMemoryRepository()
	repo.FailCreateAt = 3 // row 3 of 6 fails to insert

	committer := NewCommitter(repo, testResolver(), nil)

	rows := []RawRow{
		{Name: "One"}, {Name: "Two"}, {Name: "Three"},
		{Name: "Four"}, {Name: "Five"}, {Name: "Six"},
	}

	result, err := committer.Commit(context.Background(), "rest-1", rows)
	if !errors.Is(err, ErrImportFailed) {
		t.Fatalf("expected ErrImportFailed, got %v", err)
	}

	// rows before the failure stay committed; nothing is rolled back
	if len(result.ItemIDs) != 2 {
		t.Fatalf("expected 2 committed IDs, got %d", len(result.ItemIDs))
	}
	if len(repo.Items) != 2 {
		t.Fatalf("expected 2 items persisted, got %d", len(repo.Items))
	}
}

func TestCommit_LinkFailureKeepsItemRow(t *testing.T) {
	repo := menu.NewInMemoryRepository()
	repo.FailLinks = true

	committer := NewCommitter(repo, testResolver(), nil)

	rows := []RawRow{{Name: "Salad", Allergens: "Milk"}}

	result, err := committer.Commit(context.Background(), "rest-1", rows)
	if !errors.Is(err, ErrImportFailed) {
		t.Fatalf("expected ErrImportFailed, got %v", err)
	}

	// the item insert succeeded before the link batch failed
	if len(result.ItemIDs) != 1 || len(repo.Items) != 1 {
		t.Fatalf("expected the item row to remain committed: %+v", result)
	}
}

func TestCommit_FailsClosedBeforeWriting(t *testing.T) {
	repo := menu.NewInMemoryRepository()
	committer := NewCommitter(repo, testResolver(), nil)

	rows := []RawRow{
		{Name: "Fine", Price: "5.00"},
		{Name: ""}, // invalid
	}

	_, err := committer.Commit(context.Background(), "rest-1", rows)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if len(repo.Items) != 0 {
		t.Fatalf("validation must reject before any write, got %d items", len(repo.Items))
	}
}

func TestCommit_NegativePriceRejected(t *testing.T) {
	repo := menu.NewInMemoryRepository()
	committer := NewCommitter(repo, testResolver(), nil)

	_, err := committer.Commit(context.Background(), "rest-1", []RawRow{
		{Name: "Refund Special", Price: "-2.00"},
	})
	if err == nil {
		t.Fatal("expected validation error for negative price")
	}
}

func TestCommit_EmptyRowList(t *testing.T) {
	repo := menu.NewInMemoryRepository()
	committer := NewCommitter(repo, testResolver(), nil)

	result, err := committer.Commit(context.Background(), "rest-1", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Total != 0 || len(result.ItemIDs) != 0 {
		t.Fatalf("unexpected result: %+v", result)
	}
}

// End-to-end over the CSV path: extract then commit.
func TestCSVExtractThenCommit(t *testing.T) {
	rows, err := ExtractCSV(strings.NewReader("name,price\nSoup,5.00\nSalad,7.50\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 previewed rows, got %d", len(rows))
	}

	repo := menu.NewInMemoryRepository()
	committer := NewCommitter(repo, testResolver(), nil)

	result, err := committer.Commit(context.Background(), "rest-1", rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.ItemIDs) != 2 || len(repo.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(repo.Items))
	}

	for _, item := range repo.Items {
		if !item.Active {
			t.Fatal("imported items must be active")
		}
		if len(repo.Links[item.ID]) != 0 {
			t.Fatal("no allergen associations expected")
		}
	}

	if *repo.Items[0].Price != 5.00 || *repo.Items[1].Price != 7.50 {
		t.Fatalf("unexpected prices: %+v", repo.Items)
	}
}
