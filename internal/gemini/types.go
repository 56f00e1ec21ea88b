package gemini

import "strings"

// GenerateContentRequest is the body of a models.generateContent call.
type GenerateContentRequest struct {
	Contents         []Content         `json:"contents"`
	Tools            []Tool            `json:"tools,omitempty"`
	GenerationConfig *GenerationConfig `json:"generationConfig,omitempty"`
}

// Content is a single turn in the conversation.
type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

// Part is one piece of a turn. Only text parts are used here.
type Part struct {
	Text    string `json:"text,omitempty"`
	Thought bool   `json:"thought,omitempty"`
}

// Tool enables a server-side tool for the call.
type Tool struct {
	GoogleMaps *GoogleMaps `json:"googleMaps,omitempty"`
}

// GoogleMaps turns on Google Maps grounding. It has no options.
type GoogleMaps struct{}

// GenerationConfig carries sampling parameters.
type GenerationConfig struct {
	Temperature *float64 `json:"temperature,omitempty"`
}

// GenerateContentResponse is the raw provider response.
type GenerateContentResponse struct {
	Candidates     []Candidate     `json:"candidates"`
	PromptFeedback *PromptFeedback `json:"promptFeedback,omitempty"`
	UsageMetadata  *UsageMetadata  `json:"usageMetadata,omitempty"`
	ModelVersion   string          `json:"modelVersion,omitempty"`
}

// Candidate is one generated answer.
type Candidate struct {
	Content           *Content           `json:"content,omitempty"`
	FinishReason      string             `json:"finishReason,omitempty"`
	GroundingMetadata *GroundingMetadata `json:"groundingMetadata,omitempty"`
}

// PromptFeedback explains why a prompt was blocked, if it was.
type PromptFeedback struct {
	BlockReason string `json:"blockReason,omitempty"`
}

// UsageMetadata reports token accounting for the call.
type UsageMetadata struct {
	PromptTokenCount     int `json:"promptTokenCount"`
	CandidatesTokenCount int `json:"candidatesTokenCount"`
	TotalTokenCount      int `json:"totalTokenCount"`
}

// GroundingMetadata holds the references backing a candidate.
type GroundingMetadata struct {
	GroundingChunks  []GroundingChunk `json:"groundingChunks,omitempty"`
	WebSearchQueries []string         `json:"webSearchQueries,omitempty"`
}

// GroundingChunk is a tagged variant: at most one of Web or Maps is
// meaningful, see Kind.
type GroundingChunk struct {
	Web  *WebChunk  `json:"web,omitempty"`
	Maps *MapsChunk `json:"maps,omitempty"`
}

// WebChunk references a web page.
type WebChunk struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// MapsChunk references a Google Maps place. Older responses carry the link
// in URI, newer ones in GoogleMapsURI.
type MapsChunk struct {
	URI           string `json:"uri,omitempty"`
	GoogleMapsURI string `json:"googleMapsUri,omitempty"`
	Title         string `json:"title,omitempty"`
	SourceID      string `json:"sourceId,omitempty"`
	PlaceID       string `json:"placeId,omitempty"`
}

// ChunkKind classifies a grounding chunk.
type ChunkKind int

const (
	ChunkKindUnknown ChunkKind = iota
	ChunkKindWeb
	ChunkKindMaps

	chunkKindCount
)

// ChunkKinds lists every kind, unknown included.
func ChunkKinds() []ChunkKind {
	kinds := make([]ChunkKind, 0, chunkKindCount)
	for k := ChunkKind(0); k < chunkKindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

func (k ChunkKind) String() string {
	switch k {
	case ChunkKindWeb:
		return "web"
	case ChunkKindMaps:
		return "maps"
	default:
		return "unknown"
	}
}

// Kind reports which shape the chunk carries. Web wins when both are set.
func (c GroundingChunk) Kind() ChunkKind {
	switch {
	case c.Web != nil:
		return ChunkKindWeb
	case c.Maps != nil:
		return ChunkKindMaps
	default:
		return ChunkKindUnknown
	}
}

// Text concatenates the text parts of the first candidate, skipping
// thought parts. It is empty when the response carries no text.
func (r *GenerateContentResponse) Text() string {
	if r == nil || len(r.Candidates) == 0 || r.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range r.Candidates[0].Content.Parts {
		if part.Thought {
			continue
		}
		b.WriteString(part.Text)
	}
	return b.String()
}

// GroundingChunks returns the chunks of the first candidate, or nil.
func (r *GenerateContentResponse) GroundingChunks() []GroundingChunk {
	if r == nil || len(r.Candidates) == 0 || r.Candidates[0].GroundingMetadata == nil {
		return nil
	}
	return r.Candidates[0].GroundingMetadata.GroundingChunks
}
