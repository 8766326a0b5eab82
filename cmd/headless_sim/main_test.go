package main

import (
	"testing"

	"github.com/gonewx/fourwalls/pkg/config"
)

func TestSimulateIsDeterministic(t *testing.T) {
	cfg := config.DefaultGameConfig()
	opts := runOptions{ticks: 1800, strikeEvery: 10}

	a, err := simulate(cfg, 7, opts)
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	b, err := simulate(cfg, 7, opts)
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	if a.ticks != b.ticks || a.report != b.report {
		t.Errorf("same seed produced different runs:\n%+v\n%+v", a.report, b.report)
	}
}

func TestSimulateWithoutStrikesEndsInGameOver(t *testing.T) {
	cfg := config.DefaultGameConfig()
	res, err := simulate(cfg, 1, runOptions{ticks: 60 * 60 * 30, strikeEvery: 0})
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	if !res.gameOver {
		t.Fatalf("undefended castle survived %d ticks", res.ticks)
	}
	if len(res.breached) == 0 {
		t.Error("game over without a breached side")
	}
	if res.report.TotalKilled() != 0 {
		t.Errorf("killed = %d without strikes", res.report.TotalKilled())
	}
}

func TestSimulateStrikesKillEnemies(t *testing.T) {
	cfg := config.DefaultGameConfig()
	res, err := simulate(cfg, 3, runOptions{ticks: 60 * 60, strikeEvery: 5})
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	if res.report.TotalKilled() == 0 {
		t.Error("automatic strikes never killed an enemy")
	}
}

func TestSimulateRejectsUnknownDifficulty(t *testing.T) {
	_, err := simulate(config.DefaultGameConfig(), 1, runOptions{ticks: 10, difficulty: "nightmare"})
	if err == nil {
		t.Error("expected error for unknown difficulty")
	}
}
