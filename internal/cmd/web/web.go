// Package web parses web command flags and launches the directory server.
package web

import (
	"context"
	"flag"
	"fmt"

	entrypoint "github.com/louisbranch/topbrands/internal/platform/cmd"
	"github.com/louisbranch/topbrands/internal/services/web"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr     string `env:"TOPBRANDS_WEB_HTTP_ADDR" envDefault:"localhost:8080"`
	BaseURL      string `env:"TOPBRANDS_WEB_BASE_URL" envDefault:"http://localhost:8080"`
	AnalyticsID  string `env:"TOPBRANDS_WEB_ANALYTICS_ID"`
	LogPageViews bool   `env:"TOPBRANDS_WEB_PAGE_VIEW_LOG"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	bindFlags(fs, &cfg)
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseConfigFrom parses an explicit environment map and flags into a Config.
func ParseConfigFrom(fs *flag.FlagSet, args []string, environment map[string]string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfigFrom(&cfg, environment); err != nil {
		return Config{}, err
	}
	bindFlags(fs, &cfg)
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func bindFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "Public base URL for canonical links")
	fs.StringVar(&cfg.AnalyticsID, "analytics-id", cfg.AnalyticsID, "Analytics measurement id; empty disables the beacon")
	fs.BoolVar(&cfg.LogPageViews, "log-page-views", cfg.LogPageViews, "Log each page view")
}

// Run starts the directory web server.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(ctx context.Context) error {
		server, err := web.NewServer(ctx, web.Config{
			HTTPAddr:     cfg.HTTPAddr,
			BaseURL:      cfg.BaseURL,
			AnalyticsID:  cfg.AnalyticsID,
			LogPageViews: cfg.LogPageViews,
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}
