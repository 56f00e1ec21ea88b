package service

import (
	"strings"

	"github.com/octobees/food-finder/internal/entity"
)

// DefaultRatingPreference is shown in the prompt header when no minimum rating is selected.
const DefaultRatingPreference = "4.0+"

// PromptBuilder renders search criteria into an instruction for the model.
type PromptBuilder struct {
	Region string
}

// NewPromptBuilder creates a prompt builder scoped to a region.
func NewPromptBuilder(region string) *PromptBuilder {
	if strings.TrimSpace(region) == "" {
		region = "Taiwan"
	}
	return &PromptBuilder{Region: region}
}

// Build returns the prompt for a location and criteria. Identical input
// always yields an identical prompt.
func (b *PromptBuilder) Build(loc entity.Location, criteria entity.SearchCriteria) string {
	var p strings.Builder

	p.WriteString("Please recommend 6-8 popular and highly-rated food spots (Google Maps ")
	p.WriteString(RatingPreference(criteria))
	p.WriteString(" stars preferred) in ")
	p.WriteString(loc.City + " " + loc.District)
	p.WriteString(" (" + b.Region + ").\n\n")

	if lines := ConstraintLines(criteria); len(lines) > 0 {
		p.WriteString("User Preferences:\n")
		for _, line := range lines {
			p.WriteString(line)
			p.WriteString("\n")
		}
		p.WriteString("\n")
	}

	p.WriteString("For each recommendation:\n")
	p.WriteString("1. Provide the name.\n")
	p.WriteString("2. Give a brief description.\n")
	p.WriteString("3. Explain why it fits the criteria (if applicable).\n\n")
	p.WriteString("Ensure the response is helpful for a foodie tourist.\n")
	p.WriteString("Use Traditional Chinese (Taiwan).\n")
	p.WriteString("If the specific criteria cannot be met perfectly, find the closest matches or best local alternatives and explain why.\n")

	return p.String()
}

// ConstraintLines lists one line per non-default criterion, in the order
// cuisine, budget, rating, keyword.
func ConstraintLines(criteria entity.SearchCriteria) []string {
	var lines []string
	if criteria.HasCuisine() {
		lines = append(lines, "- Cuisine Type: Focus specifically on "+criteria.Cuisine+".")
	}
	if criteria.HasBudget() {
		lines = append(lines, "- Price Range: Focus on "+criteria.Budget+" options.")
	}
	if criteria.HasMinRating() {
		lines = append(lines, "- Minimum Google Maps Rating: "+criteria.MinRating+" stars or higher.")
	}
	if keyword := strings.TrimSpace(criteria.Keyword); keyword != "" {
		lines = append(lines, `- Special Request/Keyword: Must relate to "`+keyword+`".`)
	}
	return lines
}

// RatingPreference is the rating marker embedded in the prompt header.
func RatingPreference(criteria entity.SearchCriteria) string {
	if criteria.HasMinRating() {
		return criteria.MinRating + "+"
	}
	return DefaultRatingPreference
}
