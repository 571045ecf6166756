package menu

import (
	"context"
	"testing"
)

func TestCreateItem_Success(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo)

	price := 9.50
	item := &Item{
		RestaurantID: "rest-1",
		Name:         "Burger",
		Price:        &price,
		Active:       true,
	}

	err := service.CreateItem(context.Background(), item, []AllergenLink{
		{AllergenID: "id-milk", Severity: 3},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if item.ID == "" {
		t.Fatal("expected generated item ID")
	}
	if len(repo.Links[item.ID]) != 1 {
		t.Fatalf("expected 1 allergen link, got %d", len(repo.Links[item.ID]))
	}
	if repo.Links[item.ID][0].Severity != 3 {
		t.Fatalf("expected severity 3, got %d", repo.Links[item.ID][0].Severity)
	}
}

func TestCreateItem_EmptyNameRejected(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo)

	err := service.CreateItem(context.Background(), &Item{RestaurantID: "rest-1"}, nil)
	if err == nil {
		t.Fatal("expected error for empty name")
	}
	if len(repo.Items) != 0 {
		t.Fatal("no item should be persisted")
	}
}

func TestCreateItem_NegativePriceRejected(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo)

	price := -1.0
	err := service.CreateItem(context.Background(), &Item{
		RestaurantID: "rest-1",
		Name:         "Burger",
		Price:        &price,
	}, nil)
	if err == nil {
		t.Fatal("expected error for negative price")
	}
}

func TestCreateItem_SeverityOutOfRange(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo)

	err := service.CreateItem(context.Background(), &Item{
		RestaurantID: "rest-1",
		Name:         "Burger",
	}, []AllergenLink{{AllergenID: "id-milk", Severity: 9}})
	if err == nil {
		t.Fatal("expected error for severity out of range")
	}
}
