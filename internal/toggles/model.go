package toggles

import "time"

type Toggle struct {
	RestaurantID string    `json:"restaurant_id"`
	Feature      string    `json:"feature"`
	Enabled      bool      `json:"enabled"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Features a restaurant can switch on or off.
const (
	FeatureMenuImport    = "menu_import"
	FeatureGuestMemories = "guest_memories"
	FeatureRealtime      = "realtime"
)

var knownFeatures = map[string]bool{
	FeatureMenuImport:    true,
	FeatureGuestMemories: true,
	FeatureRealtime:      true,
}
