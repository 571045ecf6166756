package team

import "time"

type Member struct {
	ID           string    `json:"id"`
	RestaurantID string    `json:"restaurant_id"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Roles a member can hold inside a restaurant.
const (
	RoleManager = "MANAGER"
	RoleStaff   = "STAFF"
)

func validRole(role string) bool {
	return role == RoleManager || role == RoleStaff
}
