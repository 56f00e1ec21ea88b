package service

import (
	"testing"

	"github.com/octobees/food-finder/internal/gemini"
)

func responseWithChunks(text string, chunks ...gemini.GroundingChunk) *gemini.GenerateContentResponse {
	return &gemini.GenerateContentResponse{Candidates: []gemini.Candidate{{
		Content:           &gemini.Content{Parts: []gemini.Part{{Text: text}}},
		GroundingMetadata: &gemini.GroundingMetadata{GroundingChunks: chunks},
	}}}
}

func TestExtractSearchResult_Fallbacks(t *testing.T) {
	tests := map[string]*gemini.GenerateContentResponse{
		"nil response":      nil,
		"no candidates":     {},
		"no content":        {Candidates: []gemini.Candidate{{}}},
		"empty text":        responseWithChunks(""),
		"only thought part": {Candidates: []gemini.Candidate{{Content: &gemini.Content{Parts: []gemini.Part{{Text: "plan", Thought: true}}}}}},
	}

	for name, resp := range tests {
		t.Run(name, func(t *testing.T) {
			result := ExtractSearchResult(resp)
			if result.Text != FallbackResultText {
				t.Fatalf("expected fallback text, got %q", result.Text)
			}
			if result.MapReferences == nil || len(result.MapReferences) != 0 {
				t.Fatalf("expected empty references, got %+v", result.MapReferences)
			}
		})
	}
}

func TestExtractSearchResult_WebChunk(t *testing.T) {
	resp := responseWithChunks("text", gemini.GroundingChunk{Web: &gemini.WebChunk{URI: "https://example.com/a", Title: "Example"}})
	result := ExtractSearchResult(resp)

	if result.Text != "text" {
		t.Fatalf("unexpected text %q", result.Text)
	}
	if len(result.MapReferences) != 1 {
		t.Fatalf("expected one reference, got %d", len(result.MapReferences))
	}
	ref := result.MapReferences[0]
	if ref.URI != "https://example.com/a" || ref.Title != "Example" || ref.SourceID != "" {
		t.Fatalf("unexpected reference: %+v", ref)
	}
}

func TestExtractSearchResult_MapsChunk(t *testing.T) {
	tests := map[string]struct {
		chunk gemini.MapsChunk
		title string
		uri   string
		src   string
	}{
		"untitled uses default": {
			chunk: gemini.MapsChunk{URI: "https://maps.google.com/?cid=1"},
			title: DefaultMapTitle, uri: "https://maps.google.com/?cid=1",
		},
		"google maps uri preferred": {
			chunk: gemini.MapsChunk{Title: "鼎王麻辣鍋", URI: "https://old", GoogleMapsURI: "https://maps.google.com/?cid=2", SourceID: "src-2"},
			title: "鼎王麻辣鍋", uri: "https://maps.google.com/?cid=2", src: "src-2",
		},
		"empty google maps uri falls back": {
			chunk: gemini.MapsChunk{Title: "Shop", URI: "https://maps.google.com/?cid=3"},
			title: "Shop", uri: "https://maps.google.com/?cid=3",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			chunk := tt.chunk
			result := ExtractSearchResult(responseWithChunks("text", gemini.GroundingChunk{Maps: &chunk}))
			if len(result.MapReferences) != 1 {
				t.Fatalf("expected one reference, got %d", len(result.MapReferences))
			}
			ref := result.MapReferences[0]
			if ref.Title != tt.title || ref.URI != tt.uri || ref.SourceID != tt.src {
				t.Fatalf("unexpected reference: %+v", ref)
			}
		})
	}
}

func TestExtractSearchResult_DropsUnknownAndKeepsOrder(t *testing.T) {
	resp := responseWithChunks("text",
		gemini.GroundingChunk{Maps: &gemini.MapsChunk{Title: "First", GoogleMapsURI: "https://maps/1"}},
		gemini.GroundingChunk{},
		gemini.GroundingChunk{Web: &gemini.WebChunk{Title: "Third", URI: "https://web/3"}},
	)

	result := ExtractSearchResult(resp)
	if len(result.MapReferences) != 2 {
		t.Fatalf("expected two references, got %+v", result.MapReferences)
	}
	if result.MapReferences[0].Title != "First" || result.MapReferences[1].Title != "Third" {
		t.Fatalf("expected input order preserved, got %+v", result.MapReferences)
	}
}

func TestExtractSearchResult_NoDeduplication(t *testing.T) {
	same := gemini.GroundingChunk{Web: &gemini.WebChunk{Title: "Same", URI: "https://same"}}
	result := ExtractSearchResult(responseWithChunks("text", same, same))
	if len(result.MapReferences) != 2 {
		t.Fatalf("expected duplicates to be kept, got %d", len(result.MapReferences))
	}
}

func TestExtractSearchResult_LengthRelationship(t *testing.T) {
	chunks := []gemini.GroundingChunk{
		{Web: &gemini.WebChunk{URI: "https://a"}},
		{},
		{Maps: &gemini.MapsChunk{URI: "https://b"}},
		{},
	}
	result := ExtractSearchResult(responseWithChunks("text", chunks...))
	dropped := CountChunkKinds(responseWithChunks("text", chunks...))[gemini.ChunkKindUnknown]

	if len(result.MapReferences) != len(chunks)-dropped {
		t.Fatalf("expected %d references, got %d", len(chunks)-dropped, len(result.MapReferences))
	}
	if dropped != 2 {
		t.Fatalf("expected 2 dropped chunks, got %d", dropped)
	}
}

// Every chunk kind needs a sample here; a kind added to the gemini package
// without an extraction rule fails this test.
func TestMapReference_CoversEveryKind(t *testing.T) {
	samples := map[gemini.ChunkKind]gemini.GroundingChunk{
		gemini.ChunkKindUnknown: {},
		gemini.ChunkKindWeb:     {Web: &gemini.WebChunk{URI: "https://web"}},
		gemini.ChunkKindMaps:    {Maps: &gemini.MapsChunk{URI: "https://maps"}},
	}

	for _, kind := range gemini.ChunkKinds() {
		chunk, ok := samples[kind]
		if !ok {
			t.Fatalf("no sample chunk for kind %s", kind)
		}
		if chunk.Kind() != kind {
			t.Fatalf("sample for %s classifies as %s", kind, chunk.Kind())
		}
		_, kept := mapReference(chunk)
		if kept != (kind != gemini.ChunkKindUnknown) {
			t.Fatalf("kind %s: expected kept=%v, got %v", kind, kind != gemini.ChunkKindUnknown, kept)
		}
	}
}

func TestCountChunkKinds(t *testing.T) {
	counts := CountChunkKinds(nil)
	if len(counts) != 0 {
		t.Fatalf("expected no counts for nil response, got %v", counts)
	}

	counts = CountChunkKinds(responseWithChunks("text",
		gemini.GroundingChunk{Web: &gemini.WebChunk{}},
		gemini.GroundingChunk{Maps: &gemini.MapsChunk{}},
		gemini.GroundingChunk{Maps: &gemini.MapsChunk{}},
	))
	if counts[gemini.ChunkKindWeb] != 1 || counts[gemini.ChunkKindMaps] != 2 || counts[gemini.ChunkKindUnknown] != 0 {
		t.Fatalf("unexpected counts: %v", counts)
	}
}
