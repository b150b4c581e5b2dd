package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwhite7112/woodpantry-recipefinder/internal/service"
)

func fakeUpstream(t *testing.T) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/filter.php" && r.URL.Query().Get("i") == "chicken,garlic":
			w.Write([]byte(`{"meals":[{"idMeal":"52795","strMeal":"Chicken Handi","strMealThumb":"https://img/52795.jpg"}]}`)) //nolint:errcheck
		case r.URL.Path == "/random.php":
			w.Write([]byte(`{"meals":[{"idMeal":"52772","strMeal":"Teriyaki Chicken Casserole"}]}`)) //nolint:errcheck
		default:
			w.Write([]byte(`{"meals":null}`)) //nolint:errcheck
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out

	base := []string{name, "--env-file", filepath.Join(t.TempDir(), "none.env"), "--log-level", "error"}
	err := app.Run(context.Background(), append(base, args...))
	return out.String(), err
}

func TestSearchCommand(t *testing.T) {
	server := fakeUpstream(t)

	out, err := runApp(t, "--base-url", server.URL, "search", "Chicken,", "Garlic")
	require.NoError(t, err)

	var recipes []service.RecipeSummary
	require.NoError(t, json.Unmarshal([]byte(out), &recipes))
	require.Len(t, recipes, 1)
	assert.Equal(t, "Chicken Handi", recipes[0].Name)
}

func TestSearchCommand_RequiresIngredients(t *testing.T) {
	_, err := runApp(t, "search")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one ingredient")
}

func TestRandomCommand(t *testing.T) {
	server := fakeUpstream(t)

	// The fake always returns the same recipe, so only one distinct card comes back.
	out, err := runApp(t, "--base-url", server.URL, "random", "--n", "2")
	require.NoError(t, err)

	var recipes []service.RecipeSummary
	require.NoError(t, json.Unmarshal([]byte(out), &recipes))
	require.Len(t, recipes, 1)
	assert.Equal(t, "52772", recipes[0].ID)
}

func TestRandomCommand_InvalidN(t *testing.T) {
	_, err := runApp(t, "random", "--n", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "n must be positive")
}

func TestInvalidBaseURL(t *testing.T) {
	_, err := runApp(t, "--base-url", "ftp://example.com", "search", "egg")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}
