package importer

import (
	"context"
	"fmt"
	"math"

	"github.com/log-ai-n/manassistant/internal/allergen"
	"github.com/log-ai-n/manassistant/internal/menu"
)

// Result reports a commit outcome. ItemIDs always holds the IDs of
// rows that were persisted, so after a partial failure the caller
// knows exactly which rows succeeded and can resume with the rest.
type Result struct {
	ItemIDs []string `json:"item_ids"`
	Total   int      `json:"total"`
}

// ProgressFunc receives the cumulative percentage after each row.
type ProgressFunc func(percent int)

// Committer persists normalized rows one at a time, in order.
// Writes are sequential and non-transactional across rows: rows
// committed before a failure stay committed.
type Committer struct {
	store    menu.Repository
	resolver *allergen.Resolver
	progress ProgressFunc
}

func NewCommitter(
	store menu.Repository,
	resolver *allergen.Resolver,
	progress ProgressFunc,
) *Committer {
	return &Committer{
		store:    store,
		resolver: resolver,
		progress: progress,
	}
}

// Commit validates every row up front (fail closed, nothing written),
// then inserts each row's item and its resolved allergen links,
// reporting progress after every row. The first unrecoverable write
// aborts the rest; the returned Result still lists what was committed.
func (c *Committer) Commit(
	ctx context.Context,
	restaurantID string,
	rows []RawRow,
) (*Result, error) {

	result := &Result{Total: len(rows)}

	if len(rows) == 0 {
		return result, nil
	}

	for i, row := range rows {
		if err := row.Validate(); err != nil {
			return result, fmt.Errorf("row %d: %w", i+1, err)
		}
	}

	for i, row := range rows {
		price, _ := row.ParsePrice()

		item := &menu.Item{
			RestaurantID: restaurantID,
			Name:         row.Name,
			Description:  row.Description,
			Category:     row.Category,
			Price:        price,
			Active:       true,
		}

		if err := c.store.CreateItem(ctx, item); err != nil {
			return result, fmt.Errorf("%w: %v", ErrImportFailed, err)
		}

		links := c.buildLinks(row)
		if len(links) > 0 {
			if err := c.store.LinkAllergens(ctx, item.ID, links); err != nil {
				// the item row itself stays committed
				result.ItemIDs = append(result.ItemIDs, item.ID)
				return result, fmt.Errorf("%w: %v", ErrImportFailed, err)
			}
		}

		result.ItemIDs = append(result.ItemIDs, item.ID)

		if c.progress != nil {
			c.progress(int(math.Round(100 * float64(i+1) / float64(len(rows)))))
		}
	}

	return result, nil
}

// buildLinks resolves a row's allergen names to links with the bulk
// default severity. Unresolved names are dropped, never an error.
func (c *Committer) buildLinks(row RawRow) []menu.AllergenLink {
	if c.resolver == nil {
		return nil
	}

	ids := c.resolver.Resolve(row.Allergens)
	links := make([]menu.AllergenLink, 0, len(ids))
	for _, id := range ids {
		links = append(links, menu.AllergenLink{
			AllergenID: id,
			Severity:   allergen.DefaultSeverity,
		})
	}
	return links
}
