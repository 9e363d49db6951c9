package main

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func TestApplyFlags(t *testing.T) {
	defer saveRestoreString(modeFlag, "divide")()
	defer saveRestoreInt(depthFlag, 5)()
	defer saveRestoreString(fenFlag, "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1")()
	defer saveRestoreString(movesFlag, "  e4   Kd7 ")()
	defer saveRestoreInt(pushLimit, 3)()
	defer saveRestoreBool(chess960, true)()
	defer saveRestoreInt(workers, 2)()
	defer saveRestoreString(cacheDir, "/tmp/perft")()
	defer saveRestoreString(logLevel, "debug")()

	cfg := config.NewConfig()
	testutil.AssertNoError(t, applyFlags(cfg))

	testutil.AssertEqual(t, cfg.Mode, config.ModeDivide)
	testutil.AssertEqual(t, cfg.FEN, "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1")
	testutil.AssertEqual(t, cfg.Moves, []string{"e4", "Kd7"})
	testutil.AssertEqual(t, *cfg.Engine, config.EngineConfig{PushLimit: 3, Castle960: true})
	testutil.AssertEqual(t, *cfg.Perft, config.PerftConfig{Depth: 5, Workers: 2, CacheDir: "/tmp/perft"})
	testutil.AssertEqual(t, cfg.Log.Level, "debug")
	testutil.AssertNoError(t, cfg.Validate())
}

func TestApplyFlagsUnknownMode(t *testing.T) {
	defer saveRestoreString(modeFlag, "solve")()

	err := applyFlags(config.NewConfig())
	testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
}

func TestApplyPerftFlagsAutoWorkers(t *testing.T) {
	defer saveRestoreInt(workers, 0)()

	cfg := config.NewConfig()
	want := cfg.Perft.Workers
	applyPerftFlags(cfg)
	testutil.AssertEqual(t, cfg.Perft.Workers, want)
}

func TestApplyPositionFlagsNoMoves(t *testing.T) {
	defer saveRestoreString(fenFlag, "")()
	defer saveRestoreString(movesFlag, "")()

	cfg := config.NewConfig()
	applyPositionFlags(cfg)
	testutil.AssertEqual(t, cfg.FEN, "")
	testutil.AssertEqual(t, len(cfg.Moves), 0)
}
