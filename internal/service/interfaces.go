package service

import (
	"context"
	"net/url"

	"github.com/mwhite7112/woodpantry-recipefinder/internal/clients"
)

// RecipeAPI abstracts the recipe API client for testing.
type RecipeAPI interface {
	Get(ctx context.Context, path string, params url.Values) clients.Payload
}

// SearchPublisher abstracts the search event publisher for testing.
type SearchPublisher interface {
	PublishRecipesSearched(ctx context.Context, terms []string, phase string, recipeIDs []string) error
}
