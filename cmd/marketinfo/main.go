// marketinfo loads a market composition descriptor and prints its contents.
// Usage: go run ./cmd/marketinfo --config configs/ibex35.example.yaml
//
// With no lookup flags the full constituent listing is printed. --ticker does
// an exact ticker lookup, --name a case-insensitive substring search over
// constituent short names.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/bmequant/ibex-data/internal/config"
	"github.com/bmequant/ibex-data/internal/loader"
	"github.com/bmequant/ibex-data/internal/market"
	"github.com/bmequant/ibex-data/internal/model"
	"github.com/bmequant/ibex-data/internal/version"
)

func main() {
	configPath := flag.String("config", "configs/ibex35.example.yaml", "path to config file")
	ticker := flag.String("ticker", "", "look up one constituent by exact ticker")
	name := flag.String("name", "", "search constituents by short name substring")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	// Load config
	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Setup logger
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(cfg.Log.Level),
	}))

	meta := market.Metadata{
		Name:      cfg.Market.Name,
		OpenTime:  cfg.Market.OpenTime,
		CloseTime: cfg.Market.CloseTime,
		Currency:  cfg.Market.Currency,
	}

	m, err := loader.Load(cfg.Market.DescriptorPath, meta)
	if err != nil {
		logger.Error("failed to load descriptor",
			"path", cfg.Market.DescriptorPath,
			"kind", errorKind(err),
			"error", err,
		)
		os.Exit(1)
	}
	logger.Info("descriptor loaded",
		"market", m.Name(),
		"constituents", len(m.Tickers()),
	)

	switch {
	case *ticker != "":
		c, ok := m.CompanyByTicker(*ticker)
		if !ok {
			fmt.Printf("no constituent with ticker %q\n", *ticker)
			return
		}
		printCompany(c)

	case *name != "":
		matches, ok := m.CompaniesByName(*name)
		if !ok {
			fmt.Printf("no constituent short name contains %q\n", *name)
			return
		}
		for _, c := range matches {
			printCompany(c)
		}

	default:
		fmt.Print(market.Describe(m))
	}
}

func printCompany(c model.Company) {
	fmt.Println(c)
	if full, ok := c.FullName(); ok {
		fmt.Printf("  full name: %s\n", full)
	}
	fmt.Printf("  isin:      %s\n", c.ISIN())
	if id, ok := c.ExtraID(); ok {
		fmt.Printf("  extra id:  %s\n", id)
	}
}

// errorKind maps a load failure to its taxonomy name for logging.
func errorKind(err error) string {
	switch {
	case errors.Is(err, loader.ErrSourceUnreadable):
		return "source_unreadable"
	case errors.Is(err, loader.ErrMalformedSource):
		return "malformed_source"
	case errors.Is(err, loader.ErrMissingField):
		return "missing_field"
	case errors.Is(err, loader.ErrDuplicateTicker):
		return "duplicate_ticker"
	default:
		return "unknown"
	}
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
