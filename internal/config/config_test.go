package config

import (
	"flag"
	"strings"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("massduel", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Lang != "en" {
		t.Fatalf("expected default lang en, got %q", cfg.Lang)
	}
	if !cfg.Color {
		t.Fatal("expected color enabled by default")
	}
	if cfg.Sim {
		t.Fatal("expected interactive mode by default")
	}
	if cfg.Runs != 1000 || cfg.Workers != 8 {
		t.Fatalf("unexpected batch defaults: runs=%d workers=%d", cfg.Runs, cfg.Workers)
	}
}

func TestParseConfigEnv(t *testing.T) {
	t.Setenv("MASSDUEL_SEED", "99")
	t.Setenv("MASSDUEL_COLOR", "false")
	t.Setenv("MASSDUEL_RULES", "rules.yaml")

	fs := flag.NewFlagSet("massduel", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Seed != 99 {
		t.Fatalf("expected seed 99, got %d", cfg.Seed)
	}
	if cfg.Color {
		t.Fatal("expected color disabled from env")
	}
	if cfg.RulesPath != "rules.yaml" {
		t.Fatalf("expected rules path from env, got %q", cfg.RulesPath)
	}
}

func TestParseConfigFlagsOverrideEnv(t *testing.T) {
	t.Setenv("MASSDUEL_SEED", "99")

	fs := flag.NewFlagSet("massduel", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-seed", "7", "-sim", "-a", "greedy", "-n", "10"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Seed != 7 {
		t.Fatalf("expected flag seed 7, got %d", cfg.Seed)
	}
	if !cfg.Sim || cfg.SideA != "greedy" || cfg.Runs != 10 {
		t.Fatalf("unexpected batch config: %+v", cfg)
	}
}

func TestParseConfigEnvError(t *testing.T) {
	t.Setenv("MASSDUEL_SEED", "not-an-int")

	fs := flag.NewFlagSet("massduel", flag.ContinueOnError)
	_, err := ParseConfig(fs, nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestParseConfigRejectsZeroRuns(t *testing.T) {
	fs := flag.NewFlagSet("massduel", flag.ContinueOnError)
	if _, err := ParseConfig(fs, []string{"-n", "0"}); err == nil {
		t.Fatal("expected error for -n 0")
	}
}
