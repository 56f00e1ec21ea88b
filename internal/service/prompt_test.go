package service

import (
	"strings"
	"testing"

	"github.com/octobees/food-finder/internal/entity"
)

var constraintPrefixes = map[string]string{
	"cuisine": "- Cuisine Type:",
	"budget":  "- Price Range:",
	"rating":  "- Minimum Google Maps Rating:",
	"keyword": "- Special Request/Keyword:",
}

func constraintLinesOf(prompt string) []string {
	var lines []string
	for _, line := range strings.Split(prompt, "\n") {
		for _, prefix := range constraintPrefixes {
			if strings.HasPrefix(line, prefix) {
				lines = append(lines, line)
			}
		}
	}
	return lines
}

var taipeiDaan = entity.Location{City: "Taipei City", District: "Daan District"}

func TestPromptBuilder_DefaultCriteria(t *testing.T) {
	prompt := NewPromptBuilder("").Build(taipeiDaan, entity.DefaultCriteria())

	if lines := constraintLinesOf(prompt); len(lines) != 0 {
		t.Fatalf("expected no constraint lines, got %v", lines)
	}
	if strings.Contains(prompt, "User Preferences:") {
		t.Fatalf("expected no preferences block for default criteria")
	}
	if !strings.Contains(prompt, "(Google Maps 4.0+ stars preferred)") {
		t.Fatalf("expected default rating preference, got:\n%s", prompt)
	}
	if !strings.Contains(prompt, "in Taipei City Daan District (Taiwan).") {
		t.Fatalf("expected location in prompt, got:\n%s", prompt)
	}
}

func TestPromptBuilder_SingleCriterion(t *testing.T) {
	tests := map[string]struct {
		criteria entity.SearchCriteria
		want     string
	}{
		"cuisine": {
			criteria: entity.SearchCriteria{Cuisine: "Brunch", Budget: entity.BudgetAny, MinRating: entity.RatingAny},
			want:     "- Cuisine Type: Focus specifically on Brunch.",
		},
		"budget": {
			criteria: entity.SearchCriteria{Cuisine: entity.CuisineAll, Budget: "Moderate", MinRating: entity.RatingAny},
			want:     "- Price Range: Focus on Moderate options.",
		},
		"rating": {
			criteria: entity.SearchCriteria{Cuisine: entity.CuisineAll, Budget: entity.BudgetAny, MinRating: "4.5"},
			want:     "- Minimum Google Maps Rating: 4.5 stars or higher.",
		},
		"keyword": {
			criteria: entity.SearchCriteria{Cuisine: entity.CuisineAll, Budget: entity.BudgetAny, MinRating: entity.RatingAny, Keyword: "  牛肉麵 "},
			want:     `- Special Request/Keyword: Must relate to "牛肉麵".`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			prompt := NewPromptBuilder("Taiwan").Build(taipeiDaan, tt.criteria)
			lines := constraintLinesOf(prompt)
			if len(lines) != 1 {
				t.Fatalf("expected exactly one constraint line, got %v", lines)
			}
			if lines[0] != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, lines[0])
			}
		})
	}
}

func TestPromptBuilder_WhitespaceKeywordIgnored(t *testing.T) {
	criteria := entity.DefaultCriteria()
	criteria.Keyword = " \t\n "

	prompt := NewPromptBuilder("").Build(taipeiDaan, criteria)
	if strings.Contains(prompt, constraintPrefixes["keyword"]) {
		t.Fatalf("expected no keyword clause, got:\n%s", prompt)
	}
}

func TestPromptBuilder_Deterministic(t *testing.T) {
	builder := NewPromptBuilder("")
	criteria := entity.SearchCriteria{Cuisine: "Hot Pot", Budget: "High-end", MinRating: "3.5", Keyword: "包廂"}

	first := builder.Build(taipeiDaan, criteria)
	second := builder.Build(taipeiDaan, criteria)
	if first != second {
		t.Fatalf("expected identical prompts")
	}
}

func TestPromptBuilder_ConstraintOrder(t *testing.T) {
	criteria := entity.SearchCriteria{Cuisine: "Vegetarian", Budget: "Cheap/Street Food", MinRating: "4.0", Keyword: "late"}
	lines := ConstraintLines(criteria)
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %v", lines)
	}
	order := []string{"cuisine", "budget", "rating", "keyword"}
	for i, key := range order {
		if !strings.HasPrefix(lines[i], constraintPrefixes[key]) {
			t.Fatalf("expected line %d to be %s, got %q", i, key, lines[i])
		}
	}
}

func TestPromptBuilder_HotPotScenario(t *testing.T) {
	criteria := entity.SearchCriteria{Cuisine: "Hot Pot", Budget: entity.BudgetAny, MinRating: "4.0", Keyword: ""}
	prompt := NewPromptBuilder("").Build(taipeiDaan, criteria)

	if !strings.Contains(prompt, "- Cuisine Type: Focus specifically on Hot Pot.") {
		t.Fatalf("expected cuisine line, got:\n%s", prompt)
	}
	if !strings.Contains(prompt, "- Minimum Google Maps Rating: 4.0 stars or higher.") {
		t.Fatalf("expected rating line, got:\n%s", prompt)
	}
	if strings.Contains(prompt, constraintPrefixes["budget"]) || strings.Contains(prompt, constraintPrefixes["keyword"]) {
		t.Fatalf("expected no budget or keyword line, got:\n%s", prompt)
	}
	if RatingPreference(criteria) != "4.0+" || !strings.Contains(prompt, "(Google Maps 4.0+ stars preferred)") {
		t.Fatalf("expected rating preference 4.0+, got:\n%s", prompt)
	}
}

func TestPromptBuilder_OutputContract(t *testing.T) {
	prompt := NewPromptBuilder("").Build(taipeiDaan, entity.DefaultCriteria())
	for _, fragment := range []string{
		"recommend 6-8",
		"Provide the name.",
		"Give a brief description.",
		"Explain why it fits the criteria",
		"foodie tourist",
		"Use Traditional Chinese (Taiwan).",
		"closest matches or best local alternatives and explain why",
	} {
		if !strings.Contains(prompt, fragment) {
			t.Fatalf("expected prompt to contain %q", fragment)
		}
	}
}

func TestRatingPreference(t *testing.T) {
	if got := RatingPreference(entity.DefaultCriteria()); got != DefaultRatingPreference {
		t.Fatalf("expected default preference, got %s", got)
	}
	criteria := entity.DefaultCriteria()
	criteria.MinRating = "3.5"
	if got := RatingPreference(criteria); got != "3.5+" {
		t.Fatalf("expected 3.5+, got %s", got)
	}
}
