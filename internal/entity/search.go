package entity

// Sentinel values meaning "no preference" for a criteria field.
const (
	CuisineAll = "All"
	BudgetAny  = "Any"
	RatingAny  = "Any"
)

// Location is the city/district pair a search is scoped to.
type Location struct {
	City     string `json:"city"`
	District string `json:"district"`
}

// SearchCriteria narrows a search beyond plain location.
// Absence of preference is always expressed with a sentinel, never by omission.
type SearchCriteria struct {
	Cuisine   string `json:"cuisine"`
	Budget    string `json:"budget"`
	MinRating string `json:"min_rating"`
	Keyword   string `json:"keyword"`
}

// DefaultCriteria returns criteria with every field set to "no preference".
func DefaultCriteria() SearchCriteria {
	return SearchCriteria{Cuisine: CuisineAll, Budget: BudgetAny, MinRating: RatingAny}
}

// HasCuisine reports whether a concrete cuisine was selected.
func (c SearchCriteria) HasCuisine() bool { return c.Cuisine != CuisineAll }

// HasBudget reports whether a concrete budget tier was selected.
func (c SearchCriteria) HasBudget() bool { return c.Budget != BudgetAny }

// HasMinRating reports whether a minimum rating threshold was selected.
func (c SearchCriteria) HasMinRating() bool { return c.MinRating != RatingAny }

// MapReference is a grounding link shown next to the generated text.
type MapReference struct {
	Title    string `json:"title"`
	URI      string `json:"uri"`
	SourceID string `json:"source_id,omitempty"`
}

// SearchResult is the normalized outcome of a single search.
type SearchResult struct {
	Text          string         `json:"text"`
	MapReferences []MapReference `json:"map_references"`
}
