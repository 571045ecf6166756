package memory

import "time"

// Memory is a note a restaurant keeps about a returning guest.
type Memory struct {
	ID           string    `json:"id"`
	RestaurantID string    `json:"restaurant_id"`
	GuestName    string    `json:"guest_name"`
	Note         string    `json:"note"`
	Summary      string    `json:"summary"`
	CreatedAt    time.Time `json:"created_at"`
}
