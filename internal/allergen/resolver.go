package allergen

import "strings"

// Resolver maps free-text allergen names to catalog IDs.
// Built once per import session from the full catalog; lookup is
// case- and whitespace-insensitive. Unknown names resolve to nothing.
type Resolver struct {
	byName map[string]string
}

func NewResolver(allergens []Allergen) *Resolver {
	byName := make(map[string]string, len(allergens))
	for _, a := range allergens {
		byName[strings.ToLower(strings.TrimSpace(a.Name))] = a.ID
	}
	return &Resolver{byName: byName}
}

// Resolve splits a comma-joined allergen list and returns the IDs of
// every name found in the catalog. Unresolved tokens are dropped
// silently; a bad allergen name never fails a row import.
func (r *Resolver) Resolve(names string) []string {
	if strings.TrimSpace(names) == "" {
		return nil
	}

	var ids []string
	for _, token := range strings.Split(names, ",") {
		key := strings.ToLower(strings.TrimSpace(token))
		if key == "" {
			continue
		}
		if id, ok := r.byName[key]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}
