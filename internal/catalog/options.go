package catalog

import (
	"strings"

	"github.com/octobees/food-finder/internal/entity"
)

// Option is a selectable filter value and its display label.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Options groups every filter enumeration offered by the search form.
type Options struct {
	Cuisines []Option `json:"cuisines"`
	Budgets  []Option `json:"budgets"`
	Ratings  []Option `json:"ratings"`
}

var (
	cuisineOptions = []Option{
		{Label: "不限種類", Value: entity.CuisineAll},
		{Label: "在地小吃", Value: "Street Food/Snacks"},
		{Label: "餐廳/聚餐", Value: "Restaurant"},
		{Label: "早午餐", Value: "Brunch"},
		{Label: "火鍋", Value: "Hot Pot"},
		{Label: "日式料理", Value: "Japanese Food"},
		{Label: "咖啡甜點", Value: "Cafe & Dessert"},
		{Label: "宵夜", Value: "Late Night Food"},
		{Label: "素食", Value: "Vegetarian"},
	}

	budgetOptions = []Option{
		{Label: "不限預算", Value: entity.BudgetAny},
		{Label: "銅板美食 ($)", Value: "Cheap/Street Food"},
		{Label: "中價位 ($$)", Value: "Moderate"},
		{Label: "高級享受 ($$$)", Value: "High-end"},
	}

	ratingOptions = []Option{
		{Label: "不限評分", Value: entity.RatingAny},
		{Label: "3.5 顆星以上", Value: "3.5"},
		{Label: "4.0 顆星以上", Value: "4.0"},
		{Label: "4.5 顆星以上", Value: "4.5"},
	}
)

// MaxKeywordLength bounds the free-text keyword, in runes.
const MaxKeywordLength = 100

// AllOptions returns the filter enumerations in display order.
func AllOptions() Options {
	return Options{Cuisines: cuisineOptions, Budgets: budgetOptions, Ratings: ratingOptions}
}

// ValidCuisine reports whether value is one of the cuisine options.
func ValidCuisine(value string) bool { return contains(cuisineOptions, value) }

// ValidBudget reports whether value is one of the budget options.
func ValidBudget(value string) bool { return contains(budgetOptions, value) }

// ValidRating reports whether value is one of the rating options.
func ValidRating(value string) bool { return contains(ratingOptions, value) }

func contains(options []Option, value string) bool {
	for _, opt := range options {
		if opt.Value == value {
			return true
		}
	}
	return false
}

// Summary renders the one-line filter label shown above a result,
// e.g. `篩選: 火鍋 · Moderate · 4.0★+ · 關鍵字: "麻辣"`.
func Summary(criteria entity.SearchCriteria) string {
	var b strings.Builder
	b.WriteString("篩選: ")
	if criteria.HasCuisine() {
		b.WriteString(criteria.Cuisine)
	} else {
		b.WriteString("全種類")
	}
	if criteria.HasBudget() {
		b.WriteString(" · " + criteria.Budget)
	}
	if criteria.HasMinRating() {
		b.WriteString(" · " + criteria.MinRating + "★+")
	}
	if criteria.Keyword != "" {
		b.WriteString(` · 關鍵字: "` + criteria.Keyword + `"`)
	}
	return b.String()
}
