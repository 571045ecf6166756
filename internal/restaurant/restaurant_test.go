package restaurant

import (
	"context"
	"testing"
)

func TestCreateRestaurantRequiresName(t *testing.T) {
	service := NewService(NewInMemoryRepository())

	if _, err := service.CreateRestaurant(context.Background(), "", "", "", "owner-1"); err == nil {
		t.Fatal("expected error for empty name")
	}
}

func TestCreateAndListRestaurants(t *testing.T) {
	service := NewService(NewInMemoryRepository())

	created, err := service.CreateRestaurant(
		context.Background(),
		"The Green Fork",
		"12 Oak Lane",
		"555-0101",
		"owner-1",
	)
	if err != nil {
		t.Fatal(err)
	}
	if created.ID == "" {
		t.Fatal("expected generated id")
	}

	mine, err := service.ListMyRestaurants(context.Background(), "owner-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(mine) != 1 || mine[0].Name != "The Green Fork" {
		t.Fatalf("unexpected list: %+v", mine)
	}

	other, err := service.ListMyRestaurants(context.Background(), "owner-2")
	if err != nil {
		t.Fatal(err)
	}
	if len(other) != 0 {
		t.Fatalf("expected no restaurants for other owner, got %d", len(other))
	}
}

func TestUpdateSettingsEnforcesOwnership(t *testing.T) {
	service := NewService(NewInMemoryRepository())

	created, err := service.CreateRestaurant(
		context.Background(),
		"The Green Fork",
		"12 Oak Lane",
		"555-0101",
		"owner-1",
	)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := service.UpdateSettings(
		context.Background(),
		created.ID,
		"owner-2",
		"Hijacked",
		"",
		"",
	); err != ErrNotOwner {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}

	updated, err := service.UpdateSettings(
		context.Background(),
		created.ID,
		"owner-1",
		"The Greener Fork",
		"14 Oak Lane",
		"555-0102",
	)
	if err != nil {
		t.Fatal(err)
	}
	if updated.Name != "The Greener Fork" || updated.Address != "14 Oak Lane" {
		t.Fatalf("unexpected update result: %+v", updated)
	}
}

func TestGetRestaurantHidesOthers(t *testing.T) {
	service := NewService(NewInMemoryRepository())

	created, _ := service.CreateRestaurant(
		context.Background(),
		"The Green Fork",
		"",
		"",
		"owner-1",
	)

	if _, err := service.GetRestaurant(context.Background(), created.ID, "owner-2"); err != ErrNotOwner {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
}
