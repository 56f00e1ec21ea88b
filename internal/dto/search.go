package dto

import "github.com/octobees/food-finder/internal/entity"

// SearchRequest is the payload of POST /search. Empty filter fields mean
// "no preference".
type SearchRequest struct {
	City      string `json:"city"`
	District  string `json:"district"`
	Cuisine   string `json:"cuisine,omitempty"`
	Budget    string `json:"budget,omitempty"`
	MinRating string `json:"min_rating,omitempty"`
	Keyword   string `json:"keyword,omitempty"`
}

// MapReferenceResponse is a grounding link as returned to the browser.
type MapReferenceResponse struct {
	Title    string `json:"title"`
	URI      string `json:"uri"`
	SourceID string `json:"source_id,omitempty"`
	Host     string `json:"host,omitempty"`
}

// SearchResponse carries the generated text and its map references.
type SearchResponse struct {
	Location      entity.Location        `json:"location"`
	Criteria      entity.SearchCriteria  `json:"criteria"`
	Summary       string                 `json:"summary"`
	Text          string                 `json:"text"`
	MapReferences []MapReferenceResponse `json:"map_references"`
	Model         string                 `json:"model,omitempty"`
}
