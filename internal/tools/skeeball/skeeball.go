package skeeball

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	simulator "github.com/louisbranch/skeeball/internal/core/skeeball"
	entrypoint "github.com/louisbranch/skeeball/internal/platform/cmd"
	"github.com/louisbranch/skeeball/internal/platform/i18n/catalog"
	"github.com/louisbranch/skeeball/internal/random"
)

// Config holds simulator command configuration.
type Config struct {
	Seed   int64  `env:"SKEEBALL_SEED"`
	Locale string `env:"SKEEBALL_LOCALE" envDefault:"en-US"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for a reproducible run (0 = random)")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "console message locale (en-US, pt-BR)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run reads a play count from in, plays that many balls and writes the
// per-play lines and the results table to out.
func Run(ctx context.Context, cfg Config, in io.Reader, out io.Writer) error {
	if in == nil {
		return errors.New("input is required")
	}
	if out == nil {
		return errors.New("output is required")
	}
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceSkeeBall, func(ctx context.Context) error {
		return play(ctx, cfg, in, out)
	})
}

func play(ctx context.Context, cfg Config, in io.Reader, out io.Writer) error {
	rng, _, err := random.NewRand(cfg.Seed)
	if err != nil {
		return fmt.Errorf("seed random source: %w", err)
	}
	printer := catalog.Default().Printer(cfg.Locale)

	plays, err := ReadPlayCount(in, out, printer)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(out); err != nil {
		return fmt.Errorf("write separator: %w", err)
	}

	runner := simulator.Runner{Rand: rng, Out: out, Printer: printer}
	session, err := runner.Run(ctx, plays)
	if err != nil {
		return fmt.Errorf("run session: %w", err)
	}
	return runner.Report(session.Scores())
}
