package allergen

// Allergen is a platform-defined allergen. The catalog is read-only
// to every flow in this service; rows are seeded at schema init.
type Allergen struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DefaultSeverity is assigned to allergen links created by bulk import.
// Manual item entry allows per-allergen severity instead.
const DefaultSeverity = 1
