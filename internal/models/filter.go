package models

// PriceRange is a coarse price bracket for catalog filtering.
type PriceRange string

const (
	PriceAll       PriceRange = "all"
	PriceUnder500  PriceRange = "under500"
	Price500To1000 PriceRange = "500to1000"
	PriceAbove1000 PriceRange = "above1000"
)

// SortKey selects the catalog sort order.
type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortPriceLow  SortKey = "price_low"
	SortPriceHigh SortKey = "price_high"
	SortName      SortKey = "name"
)

// FilterCriteria is the full set of knobs for deriving a catalog view.
// Zero values mean "pass everything through" for their stage.
type FilterCriteria struct {
	Search     string     `json:"search"`
	CategoryID int        `json:"category"`
	PriceRange PriceRange `json:"price_range"`
	SortBy     SortKey    `json:"sort"`
}
