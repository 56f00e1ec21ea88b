package service

import (
	"github.com/octobees/food-finder/internal/entity"
	"github.com/octobees/food-finder/internal/gemini"
)

const (
	// FallbackResultText replaces an empty model answer.
	FallbackResultText = "抱歉，暫時無法產生美食清單，請稍後再試。"
	// DefaultMapTitle names a maps reference that came without a title.
	DefaultMapTitle = "Location on Map"
)

// ExtractSearchResult normalizes a provider response. It never fails: missing
// text falls back to FallbackResultText, missing chunks to an empty list, and
// chunks of an unrecognized kind are dropped.
func ExtractSearchResult(resp *gemini.GenerateContentResponse) entity.SearchResult {
	text := resp.Text()
	if text == "" {
		text = FallbackResultText
	}

	chunks := resp.GroundingChunks()
	refs := make([]entity.MapReference, 0, len(chunks))
	for _, chunk := range chunks {
		if ref, ok := mapReference(chunk); ok {
			refs = append(refs, ref)
		}
	}

	return entity.SearchResult{Text: text, MapReferences: refs}
}

func mapReference(chunk gemini.GroundingChunk) (entity.MapReference, bool) {
	switch chunk.Kind() {
	case gemini.ChunkKindWeb:
		return entity.MapReference{Title: chunk.Web.Title, URI: chunk.Web.URI}, true
	case gemini.ChunkKindMaps:
		title := chunk.Maps.Title
		if title == "" {
			title = DefaultMapTitle
		}
		uri := chunk.Maps.GoogleMapsURI
		if uri == "" {
			uri = chunk.Maps.URI
		}
		return entity.MapReference{Title: title, URI: uri, SourceID: chunk.Maps.SourceID}, true
	default:
		return entity.MapReference{}, false
	}
}

// CountChunkKinds tallies the grounding chunks of a response by kind.
func CountChunkKinds(resp *gemini.GenerateContentResponse) map[gemini.ChunkKind]int {
	counts := make(map[gemini.ChunkKind]int)
	for _, chunk := range resp.GroundingChunks() {
		counts[chunk.Kind()]++
	}
	return counts
}
