package runner

import (
	"reflect"
	"strings"
	"testing"

	"github.com/tiniprime/RugRun/internal/config"
	"github.com/tiniprime/RugRun/internal/core"
	"github.com/tiniprime/RugRun/internal/registry"
)

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestVariantsRegistered(t *testing.T) {
	for id, title := range map[string]string{
		config.VariantRugRun:       "RugRun",
		config.VariantGetRichQuick: "GetRichQuick",
	} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q) failed: %v", id, err)
		}
		if g.Title() != title {
			t.Errorf("Title() = %q, expected %q", g.Title(), title)
		}
		if _, ok := g.(registry.Prover); !ok {
			t.Errorf("%s should expose run proofs", id)
		}
	}
}

func TestGameJumpStartsAndPauses(t *testing.T) {
	g := NewGame(config.VariantRugRun)
	g.Reset(core.RuntimeConfig{Seed: 3, Identity: "guest"})

	res := g.Step(input(core.ActionJump))
	if res.State.Phase != core.PhasePlaying {
		t.Fatalf("jump from idle should start the run, phase = %v", res.State.Phase)
	}

	g.Step(input(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("pause should toggle on")
	}
	frame := g.Engine().Snapshot().Frame
	for i := 0; i < 10; i++ {
		g.Step(input(core.ActionJump))
	}
	if g.Engine().Snapshot().Frame != frame {
		t.Error("paused game should not advance")
	}
	if g.Engine().Snapshot().Airborne {
		t.Error("jump while paused should be ignored")
	}

	g.Step(input(core.ActionPause))
	if g.State().Paused {
		t.Error("pause should toggle off")
	}
}

func TestGameRestartAfterOver(t *testing.T) {
	rec := newFakeRecorder()
	g := NewGame(config.VariantGetRichQuick)
	g.Reset(core.RuntimeConfig{Seed: 3, Identity: "guest", Recorder: rec})
	g.Step(input(core.ActionJump))

	e := g.Engine()
	e.obstacles.items = append(e.obstacles.items, Obstacle{X: 60, Width: 40, Height: 40})
	if res := g.Step(core.NewInputFrame()); !res.Ended {
		t.Fatal("setup: expected the run to end")
	}
	if _, ok := g.LastProof(); !ok {
		t.Error("expected a proof after game over")
	}

	// Restart only from Over
	res := g.Step(input(core.ActionRestart))
	if res.State.Phase != core.PhasePlaying {
		t.Errorf("restart should start a new run, phase = %v", res.State.Phase)
	}
	if len(rec.appends) != 1 {
		t.Errorf("expected one recorded run, got %d", len(rec.appends))
	}
}

func TestRenderDoesNotMutate(t *testing.T) {
	e := New(config.Default(config.VariantRugRun), WithSeed(5))
	screen := core.NewScreen(80, 24)

	e.Render(screen)
	if !strings.Contains(screen.String(), "RugRun") {
		t.Error("idle screen should show the title")
	}

	e.StartRun()
	for i := 0; i < 120; i++ {
		e.Step()
	}
	before := e.Snapshot()
	e.Render(screen)
	if !reflect.DeepEqual(before, e.Snapshot()) {
		t.Error("Render mutated the run")
	}
	if !strings.Contains(screen.Row(0), "Score:") {
		t.Errorf("HUD missing from row 0: %q", screen.Row(0))
	}

	small := core.NewScreen(10, 4)
	e.Render(small)
	if !strings.Contains(small.String(), "Terminal") {
		t.Error("tiny screens should show a size hint")
	}
}
