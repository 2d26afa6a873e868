package order

import (
	"errors"
	"math"
	"sort"

	"webshopper/internal/domain/catalog"
	"webshopper/internal/domain/recipe"
	"webshopper/internal/domain/unit"
)

var ErrProductNotFound = errors.New("product referenced by recipe not found")

// RoundUpThreshold is the container fraction above which an extra container
// is bought. Fractions at or below it are treated as covered by the overage
// already present in typical recipe measurements. The comparison is strictly
// greater-than: a raw count of exactly 2.05 truncates to 2.
const RoundUpThreshold = 0.05

// Item is one accumulated tally entry: a normalized base-unit quantity plus
// the dimension it was accumulated in.
type Item struct {
	Quantity  float64
	Dimension unit.Dimension
}

// Tally maps productID to its normalized quantity summed across every recipe
// and ingredient in the order. Built fresh per order request, never persisted.
type Tally map[string]Item

// ProductIDs returns the tallied product ids in sorted order.
func (t Tally) ProductIDs() []string {
	ids := make([]string, 0, len(t))
	for id := range t {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Normalize converts every ingredient of every recipe into its dimension's
// base unit and sums the results per product. Summation is commutative, so
// recipe and ingredient order never changes the outcome. An unknown unit
// aborts the whole tally: units come from a fixed server-side catalog, so a
// miss is a data-integrity fault rather than bad user input. Two ingredients
// that reference the same product across dimensions also abort, since the
// sums would be meaningless.
func Normalize(recipes []*recipe.Recipe) (Tally, error) {
	tally := make(Tally)
	for _, r := range recipes {
		for _, ing := range r.Ingredients() {
			dim, err := ing.Unit().Dimension()
			if err != nil {
				return nil, err
			}
			base, err := unit.ToBase(ing.Quantity(), ing.Unit())
			if err != nil {
				return nil, err
			}
			item, ok := tally[ing.ProductID()]
			if !ok {
				tally[ing.ProductID()] = Item{Quantity: base, Dimension: dim}
				continue
			}
			if item.Dimension != dim {
				return nil, unit.ErrDimensionMismatch
			}
			item.Quantity += base
			tally[ing.ProductID()] = item
		}
	}
	return tally, nil
}

// RoundedLine records a product whose container count was rounded up, so the
// response can show the user why they are buying an extra container.
type RoundedLine struct {
	ProductID     string
	Description   string
	RawContainers float64
	Containers    int64
}

// FinalTally is the purchasable result of one order computation: whole
// container counts per product plus the round-up report. A count of zero is
// valid and means no purchase is needed for that product.
type FinalTally struct {
	Counts    map[string]int64
	RoundedUp []RoundedLine
}

// ToContainers converts a tally into whole container counts. Every tallied
// product must be present in the supplied map; a missing product fails the
// entire order, because a partial order would silently omit needed items.
func ToContainers(tally Tally, products map[string]*catalog.Product) (FinalTally, error) {
	final := FinalTally{Counts: make(map[string]int64, len(tally))}

	for _, productID := range tally.ProductIDs() {
		item := tally[productID]
		product, ok := products[productID]
		if !ok {
			return FinalTally{}, ErrProductNotFound
		}

		container, err := product.ContainerFor(item.Dimension)
		if err != nil {
			return FinalTally{}, err
		}

		raw := item.Quantity / container.Quantity
		floor := math.Floor(raw)
		count := int64(floor)
		if raw-floor > RoundUpThreshold {
			count++
			final.RoundedUp = append(final.RoundedUp, RoundedLine{
				ProductID:     productID,
				Description:   product.Description(),
				RawContainers: raw,
				Containers:    count,
			})
		}
		final.Counts[productID] = count
	}

	return final, nil
}

// Line is one cart submission line item.
type Line struct {
	ProductID string
	Quantity  int64
}

// BuildLines projects the final tally into cart lines, sorted by product id.
// Zero counts are omitted: nothing needs to be purchased for them and the
// retailer cart API rejects zero-quantity items.
func BuildLines(final FinalTally) []Line {
	ids := make([]string, 0, len(final.Counts))
	for id := range final.Counts {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	lines := make([]Line, 0, len(ids))
	for _, id := range ids {
		if final.Counts[id] == 0 {
			continue
		}
		lines = append(lines, Line{ProductID: id, Quantity: final.Counts[id]})
	}
	return lines
}
