package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/mwhite7112/woodpantry-recipefinder/internal/api"
	"github.com/mwhite7112/woodpantry-recipefinder/internal/clients"
	"github.com/mwhite7112/woodpantry-recipefinder/internal/config"
	"github.com/mwhite7112/woodpantry-recipefinder/internal/events"
	"github.com/mwhite7112/woodpantry-recipefinder/internal/logging"
	"github.com/mwhite7112/woodpantry-recipefinder/internal/service"
)

const name = "recipefinder"

func newApp() *cli.Command {
	return &cli.Command{
		Name:    name,
		Usage:   "Find recipes from the ingredients you have",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "env-file",
				Usage: "dotenv file to load before reading the environment",
				Value: ".env",
			},
			&cli.StringFlag{
				Name:  "base-url",
				Usage: "recipe API base URL (overrides BASE_URL)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level: debug, info, warn, error (overrides LOG_LEVEL)",
			},
		},
		Commands: []*cli.Command{
			serveCmd(),
			searchCmd(),
			randomCmd(),
		},
	}
}

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the web front end",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "port",
				Usage: "listen port (overrides PORT)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if port := cmd.String("port"); port != "" {
				cfg.Port = port
			}

			var opts []service.Option
			if cfg.RabbitMQURL != "" {
				pub, err := events.NewRecipesSearchedPublisher(cfg.RabbitMQURL)
				if err != nil {
					return fmt.Errorf("search events: %w", err)
				}
				defer pub.Close()
				opts = append(opts, service.WithPublisher(pub))
			}

			recipes, err := newRecipeService(cfg, opts...)
			if err != nil {
				return err
			}
			return serve(ctx, cfg, api.NewRouter(recipes))
		},
	}
}

func searchCmd() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Search recipes for a comma-separated ingredient list",
		ArgsUsage: "<ingredients...>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			input := strings.Join(cmd.Args().Slice(), " ")
			if strings.TrimSpace(input) == "" {
				return errors.New("at least one ingredient is required")
			}
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			recipes, err := newRecipeService(cfg)
			if err != nil {
				return err
			}
			return writeJSON(cmd.Root().Writer, recipes.SearchRecipes(ctx, input))
		},
	}
}

func randomCmd() *cli.Command {
	return &cli.Command{
		Name:  "random",
		Usage: "Print random recipes",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "n",
				Usage: "number of recipes",
				Value: service.DefaultRandomCount,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			n := int(cmd.Int("n"))
			if n < 1 {
				return fmt.Errorf("n must be positive, got %d", n)
			}
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			recipes, err := newRecipeService(cfg)
			if err != nil {
				return err
			}
			return writeJSON(cmd.Root().Writer, recipes.RandomRecipes(ctx, n))
		},
	}
}

// loadConfig reads the environment, applies global flag overrides, validates
// and installs the default logger.
func loadConfig(cmd *cli.Command) (config.Config, error) {
	cfg, err := config.Load(cmd.String("env-file"))
	if err != nil {
		return config.Config{}, err
	}
	if v := cmd.String("base-url"); v != "" {
		cfg.BaseURL = v
	}
	if v := cmd.String("log-level"); v != "" {
		cfg.LogLevel = v
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	logging.SetDefaultStructuredLogger(name, version, cfg.LogLevel)
	return cfg, nil
}

func newRecipeService(cfg config.Config, opts ...service.Option) (*service.RecipeService, error) {
	if cfg.SynonymsFile != "" {
		table, err := service.LoadSynonymsFile(cfg.SynonymsFile)
		if err != nil {
			return nil, err
		}
		slog.Info("loaded synonyms", "path", cfg.SynonymsFile, "entries", table.Len())
		opts = append(opts, service.WithSynonyms(table))
	}
	opts = append(opts, service.WithFallbackConcurrency(cfg.FallbackConcurrency))

	httpClient := &http.Client{Timeout: cfg.UpstreamTimeout}
	mealDB := clients.NewMealDBClient(cfg.ResolvedBaseURL(), httpClient)
	return service.NewRecipeService(mealDB, opts...), nil
}

func serve(ctx context.Context, cfg config.Config, handler http.Handler) error {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("recipefinder listening", "addr", srv.Addr, "base_url", cfg.BaseURL)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
