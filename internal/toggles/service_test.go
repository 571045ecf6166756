package toggles

import (
	"context"
	"testing"
)

func TestUnstoredFeatureDefaultsToEnabled(t *testing.T) {
	service := NewService(NewInMemoryRepository())

	enabled, err := service.IsEnabled(context.Background(), "rest-1", FeatureMenuImport)
	if err != nil {
		t.Fatal(err)
	}
	if !enabled {
		t.Fatal("expected default enabled")
	}
}

func TestSetToggleOverridesDefault(t *testing.T) {
	service := NewService(NewInMemoryRepository())

	if _, err := service.SetToggle(context.Background(), "rest-1", FeatureRealtime, false); err != nil {
		t.Fatal(err)
	}

	enabled, err := service.IsEnabled(context.Background(), "rest-1", FeatureRealtime)
	if err != nil {
		t.Fatal(err)
	}
	if enabled {
		t.Fatal("expected disabled after toggle off")
	}

	// other restaurants keep the default
	enabled, _ = service.IsEnabled(context.Background(), "rest-2", FeatureRealtime)
	if !enabled {
		t.Fatal("toggle leaked to another restaurant")
	}
}

func TestSetToggleRejectsUnknownFeature(t *testing.T) {
	service := NewService(NewInMemoryRepository())

	if _, err := service.SetToggle(context.Background(), "rest-1", "time_travel", true); err != ErrUnknownFeature {
		t.Fatalf("expected ErrUnknownFeature, got %v", err)
	}
}

func TestListTogglesIncludesDefaults(t *testing.T) {
	service := NewService(NewInMemoryRepository())

	if _, err := service.SetToggle(context.Background(), "rest-1", FeatureGuestMemories, false); err != nil {
		t.Fatal(err)
	}

	out, err := service.ListToggles(context.Background(), "rest-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != len(knownFeatures) {
		t.Fatalf("expected %d toggles, got %d", len(knownFeatures), len(out))
	}

	byFeature := make(map[string]bool)
	for _, toggle := range out {
		byFeature[toggle.Feature] = toggle.Enabled
	}
	if byFeature[FeatureGuestMemories] {
		t.Fatal("expected guest_memories disabled")
	}
	if !byFeature[FeatureMenuImport] {
		t.Fatal("expected menu_import default enabled")
	}
}
