package dto

// SearchLogFilter contains query parameters for the search history listing.
type SearchLogFilter struct {
	City   string
	Status string
	Limit  int
}
