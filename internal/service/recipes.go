package service

import (
	"cmp"
	"context"
	"log/slog"
	"math/rand/v2"
	"net/url"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/mwhite7112/woodpantry-recipefinder/internal/clients"
)

const (
	pathFilter = "filter.php"
	pathLookup = "lookup.php"
	pathRandom = "random.php"

	// DefaultRandomCount is how many cards the discovery pages show.
	DefaultRandomCount = 6

	// randomAttemptsPerRecipe bounds random.php calls at n*4 so an upstream
	// that keeps repeating itself cannot stall a request.
	randomAttemptsPerRecipe = 4

	defaultFallbackConcurrency = 4
)

// IdeaPairs are the preset ingredient combinations offered by the ideas flow.
var IdeaPairs = []string{
	"chicken, garlic",
	"shrimp, chili",
	"beef, tomato",
	"mushroom, cream",
	"zucchini, feta",
}

// RecipeSummary is the card shown for one recipe.
type RecipeSummary struct {
	ID          string  `json:"idMeal"`
	Name        string  `json:"name"`
	ImageURL    string  `json:"image"`
	Description *string `json:"description"`
}

// RecipeService resolves ingredient lists and discovery requests to recipes.
// It keeps no state between calls.
type RecipeService struct {
	api         RecipeAPI
	synonyms    SynonymTable
	publisher   SearchPublisher
	concurrency int
	pick        func(n int) int
}

// Option customises a RecipeService.
type Option func(*RecipeService)

// WithSynonyms replaces the built-in synonym table.
func WithSynonyms(table SynonymTable) Option {
	return func(s *RecipeService) { s.synonyms = table }
}

// WithPublisher emits an event after every non-empty search.
func WithPublisher(p SearchPublisher) Option {
	return func(s *RecipeService) { s.publisher = p }
}

// WithFallbackConcurrency bounds the parallel single-ingredient lookups of the
// fallback phase. Values below 1 mean sequential.
func WithFallbackConcurrency(n int) Option {
	return func(s *RecipeService) { s.concurrency = max(n, 1) }
}

// WithPicker replaces the random choice used by Ideas. pick must return a
// value in [0, n).
func WithPicker(pick func(n int) int) Option {
	return func(s *RecipeService) { s.pick = pick }
}

func NewRecipeService(api RecipeAPI, opts ...Option) *RecipeService {
	s := &RecipeService{
		api:         api,
		synonyms:    DefaultSynonyms(),
		concurrency: defaultFallbackConcurrency,
		pick:        rand.IntN,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SearchRecipes resolves comma-separated ingredient text to ranked recipes.
//
// All terms are first sent as one combined filter; if that finds anything the
// API's order is returned as is and no fallback runs. Entries without an id
// cannot be linked and are skipped, even when that leaves nothing. Otherwise every term and each of its synonyms
// is looked up on its own, and recipes are ranked by how many distinct input
// ingredients they matched, then by name. Upstream failures only shrink the
// result; the returned slice is never nil.
func (s *RecipeService) SearchRecipes(ctx context.Context, rawInput string) []RecipeSummary {
	terms := ParseIngredients(rawInput)
	if len(terms) == 0 {
		searchesTotal.WithLabelValues(PhaseEmptyInput).Inc()
		return []RecipeSummary{}
	}

	recipes, phase := s.search(ctx, terms)
	searchesTotal.WithLabelValues(phase).Inc()
	s.publish(ctx, terms, phase, recipes)
	return recipes
}

func (s *RecipeService) search(ctx context.Context, terms []string) ([]RecipeSummary, string) {
	if exact := s.filter(ctx, strings.Join(terms, ",")); len(exact) > 0 {
		return summarize(exact), PhaseExact
	}

	ranked := s.fallback(ctx, terms)
	if len(ranked) == 0 {
		return []RecipeSummary{}, PhaseNoResults
	}
	return ranked, PhaseFallback
}

type lookup struct {
	base string
	term string
}

// fallback queries each (base, synonym) pair separately. Results land in
// per-lookup slots and are merged in lookup order, so the outcome does not
// depend on which request finishes first.
func (s *RecipeService) fallback(ctx context.Context, terms []string) []RecipeSummary {
	var lookups []lookup
	for _, base := range uniqueTerms(terms) {
		for _, term := range s.synonyms.Expand(base) {
			lookups = append(lookups, lookup{base: base, term: term})
		}
	}
	fallbackLookups.Observe(float64(len(lookups)))

	results := make([][]clients.Meal, len(lookups))
	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for i, l := range lookups {
		g.Go(func() error {
			results[i] = s.filter(ctx, l.term)
			return nil
		})
	}
	_ = g.Wait()

	matched := make(map[string]map[string]struct{})
	cached := make(map[string]clients.Meal)
	var order []string
	for i, l := range lookups {
		for _, meal := range results[i] {
			id := meal.ID()
			if id == "" {
				continue
			}
			if _, seen := cached[id]; !seen {
				cached[id] = meal
				matched[id] = make(map[string]struct{})
				order = append(order, id)
			}
			matched[id][l.base] = struct{}{}
		}
	}

	slices.SortStableFunc(order, func(a, b string) int {
		if c := cmp.Compare(len(matched[b]), len(matched[a])); c != 0 {
			return c
		}
		// Name() is trimmed, so surrounding whitespace in strMeal does not
		// affect the order.
		return strings.Compare(cached[a].Name(), cached[b].Name())
	})

	out := make([]RecipeSummary, 0, len(order))
	for _, id := range order {
		out = append(out, toSummary(cached[id]))
	}
	return out
}

func (s *RecipeService) filter(ctx context.Context, ingredients string) []clients.Meal {
	return s.api.Get(ctx, pathFilter, url.Values{"i": {ingredients}}).Meals()
}

func (s *RecipeService) publish(ctx context.Context, terms []string, phase string, recipes []RecipeSummary) {
	if s.publisher == nil {
		return
	}
	ids := make([]string, 0, len(recipes))
	for _, r := range recipes {
		ids = append(ids, r.ID)
	}
	if err := s.publisher.PublishRecipesSearched(ctx, terms, phase, ids); err != nil {
		slog.Warn("publish recipes.searched failed", "terms", terms, "error", err)
	}
}

// RandomRecipes collects up to n distinct random recipes. It stops early when
// the API returns nothing.
func (s *RecipeService) RandomRecipes(ctx context.Context, n int) []RecipeSummary {
	out := make([]RecipeSummary, 0, max(n, 0))
	seen := make(map[string]struct{}, max(n, 0))
	for attempt := 0; len(out) < n && attempt < n*randomAttemptsPerRecipe; attempt++ {
		meals := s.api.Get(ctx, pathRandom, nil).Meals()
		if len(meals) == 0 {
			break
		}
		meal := meals[0]
		id := meal.ID()
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, toSummary(meal))
	}
	return out
}

// RecipeByID fetches the full record for id. The bool is false when the API
// has no such recipe or could not be reached.
func (s *RecipeService) RecipeByID(ctx context.Context, id string) (clients.Meal, bool) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, false
	}
	meals := s.api.Get(ctx, pathLookup, url.Values{"i": {id}}).Meals()
	if len(meals) == 0 {
		return nil, false
	}
	return meals[0], true
}

// Ideas searches one randomly chosen preset pair and returns the pair along
// with its results.
func (s *RecipeService) Ideas(ctx context.Context) (string, []RecipeSummary) {
	pair := IdeaPairs[s.pick(len(IdeaPairs))]
	return pair, s.SearchRecipes(ctx, pair)
}

// summarize maps meals to cards in order, dropping meals without an id and
// repeats of an id already seen.
func summarize(meals []clients.Meal) []RecipeSummary {
	out := make([]RecipeSummary, 0, len(meals))
	seen := make(map[string]struct{}, len(meals))
	for _, m := range meals {
		id := m.ID()
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, toSummary(m))
	}
	return out
}

func toSummary(m clients.Meal) RecipeSummary {
	return RecipeSummary{ID: m.ID(), Name: m.Name(), ImageURL: m.Thumb()}
}
