package entity

import (
	"time"

	"github.com/google/uuid"
)

// Search log statuses.
const (
	SearchStatusSuccess = "success"
	SearchStatusFailed  = "failed"
)

// SearchLog records one search attempt for operators.
type SearchLog struct {
	ID             uuid.UUID `json:"id"`
	RequestID      string    `json:"request_id,omitempty"`
	City           string    `json:"city"`
	District       string    `json:"district"`
	Cuisine        string    `json:"cuisine"`
	Budget         string    `json:"budget"`
	MinRating      string    `json:"min_rating"`
	Keyword        string    `json:"keyword,omitempty"`
	Status         string    `json:"status"`
	ReferenceCount int       `json:"reference_count"`
	DroppedChunks  int       `json:"dropped_chunks"`
	LatencyMS      int64     `json:"latency_ms"`
	ErrorMessage   *string   `json:"error_message,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
