package skeeball

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"math/rand"
	"strings"
	"testing"

	simulator "github.com/louisbranch/skeeball/internal/core/skeeball"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("skeeball", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Seed != 0 {
		t.Fatalf("expected default seed 0, got %d", cfg.Seed)
	}
	if cfg.Locale != "en-US" {
		t.Fatalf("expected default locale en-US, got %q", cfg.Locale)
	}
}

func TestParseConfigEnvThenFlags(t *testing.T) {
	t.Setenv("SKEEBALL_SEED", "17")
	t.Setenv("SKEEBALL_LOCALE", "pt-BR")

	fs := flag.NewFlagSet("skeeball", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-seed", "99"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Seed != 99 {
		t.Fatalf("expected flag seed 99, got %d", cfg.Seed)
	}
	if cfg.Locale != "pt-BR" {
		t.Fatalf("expected env locale pt-BR, got %q", cfg.Locale)
	}
}

func TestParseConfigBadArgs(t *testing.T) {
	fs := flag.NewFlagSet("skeeball", flag.ContinueOnError)
	fs.SetOutput(&bytes.Buffer{})
	if _, err := ParseConfig(fs, []string{"-invalid"}); err == nil {
		t.Fatal("expected error for unknown flag")
	}
}

func TestParseConfigBadEnv(t *testing.T) {
	t.Setenv("SKEEBALL_SEED", "lucky")
	fs := flag.NewFlagSet("skeeball", flag.ContinueOnError)
	if _, err := ParseConfig(fs, nil); err == nil {
		t.Fatal("expected error for malformed seed")
	}
}

func TestRunPinnedSeedOutput(t *testing.T) {
	t.Setenv("SKEEBALL_OTEL_ENDPOINT", "")

	var out bytes.Buffer
	err := Run(context.Background(), Config{Seed: 42, Locale: "en-US"}, strings.NewReader("3\n"), &out)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	var plays bytes.Buffer
	session, err := simulator.RunSession(context.Background(), rand.New(rand.NewSource(42)), 3, &plays)
	if err != nil {
		t.Fatalf("reference session: %v", err)
	}
	want := MessagePlaysPrompt + "\n" + plays.String() + simulator.FormatReport(session.Scores())
	if out.String() != want {
		t.Fatalf("output =\n%q\nwant\n%q", out.String(), want)
	}
}

func TestRunRepromptsThenPlays(t *testing.T) {
	t.Setenv("SKEEBALL_OTEL_ENDPOINT", "")

	var out bytes.Buffer
	err := Run(context.Background(), Config{Seed: 7}, strings.NewReader("-1\n11\n10\n"), &out)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	got := out.String()
	if n := strings.Count(got, MessageInvalidPlays); n != 2 {
		t.Fatalf("expected 2 invalid notices, got %d in %q", n, got)
	}
	if n := strings.Count(got, "Rolling ball #"); n != 10 {
		t.Fatalf("expected 10 play lines, got %d", n)
	}
	if !strings.Contains(got, "Rolling ball #10. Landed in ") {
		t.Fatalf("missing tenth play in %q", got)
	}
}

func TestRunZeroPlaysPrintsEmptyReport(t *testing.T) {
	t.Setenv("SKEEBALL_OTEL_ENDPOINT", "")

	var out bytes.Buffer
	if err := Run(context.Background(), Config{Seed: 1}, strings.NewReader("0\n"), &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	want := MessagePlaysPrompt + "\n" + simulator.FormatReport(nil)
	if out.String() != want {
		t.Fatalf("output = %q, want %q", out.String(), want)
	}
}

func TestRunLocalizedMessages(t *testing.T) {
	t.Setenv("SKEEBALL_OTEL_ENDPOINT", "")

	var out bytes.Buffer
	if err := Run(context.Background(), Config{Seed: 3, Locale: "pt-BR"}, strings.NewReader("12 2"), &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	got := out.String()
	for _, want := range []string{
		"Digite o número de jogadas (1-10): ",
		"Entrada inválida. Digite um número entre 1 e 10.\n",
		"Lançando bola #2. Caiu em ",
		"|  Play #  |   Score  |\n",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in %q", want, got)
		}
	}
}

func TestRunNoInput(t *testing.T) {
	t.Setenv("SKEEBALL_OTEL_ENDPOINT", "")

	var out bytes.Buffer
	err := Run(context.Background(), Config{Seed: 1}, strings.NewReader(""), &out)
	if !errors.Is(err, ErrNoInput) {
		t.Fatalf("expected %v, got %v", ErrNoInput, err)
	}
}

func TestRunRequiresIO(t *testing.T) {
	if err := Run(context.Background(), Config{}, nil, &bytes.Buffer{}); err == nil {
		t.Fatal("expected error for nil input")
	}
	if err := Run(context.Background(), Config{}, strings.NewReader("1"), nil); err == nil {
		t.Fatal("expected error for nil output")
	}
}

func TestRunCancelledContext(t *testing.T) {
	t.Setenv("SKEEBALL_OTEL_ENDPOINT", "")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Run(ctx, Config{Seed: 1}, strings.NewReader("4"), &bytes.Buffer{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected %v, got %v", context.Canceled, err)
	}
}
