package game

import (
	"context"
	"testing"
	"time"
)

func TestRecorderRoundTrip(t *testing.T) {
	dir := t.TempDir()
	rec, err := NewRecorder(dir, "abc")
	if err != nil {
		t.Fatalf("NewRecorder failed: %v", err)
	}

	g := newTestGame(t, boxedSettings())
	g.Turn = 1
	inputs := []Direction{DirNone, DirUp, DirLeft}
	for _, d := range inputs {
		g.Tick(d)
		rec.RecordStep(NewStepRecord("abc", 1, g, d))
	}
	if err := rec.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	rec.RecordStep(StepRecord{}) // ignored after close

	records, err := ReadRecords(rec.Path())
	if err != nil {
		t.Fatalf("ReadRecords failed: %v", err)
	}
	if len(records) != len(inputs) {
		t.Fatalf("Expected %d records, got %d", len(inputs), len(records))
	}
	last := records[len(records)-1]
	if last.Turn != g.Turn || last.Input != "left" || last.Outcome != g.Outcome().String() {
		t.Errorf("Unexpected last record %+v", last)
	}

	w := last.World()
	if w.At(g.Snake.Head()) != CellHead {
		t.Errorf("Rebuilt world should have the head at %v", g.Snake.Head())
	}
	if !g.Dead && w.At(g.Food) != CellFood {
		t.Errorf("Rebuilt world should have the food at %v", g.Food)
	}
}

func TestLeaderboard(t *testing.T) {
	lb, err := OpenLeaderboard(t.TempDir() + "/data/runs.db")
	if err != nil {
		t.Fatalf("OpenLeaderboard failed: %v", err)
	}
	defer lb.Close()

	ctx := context.Background()
	now := time.Now()
	runs := []Run{
		{Name: "a", Turns: 12, Size: 3, Outcome: "caught", Date: now},
		{Name: "b", Turns: 90, Size: 6, Outcome: "caught", Date: now},
		{Name: "c", Turns: 40, Size: 4, Outcome: "stuck", Date: now},
	}
	for _, r := range runs {
		if _, err := lb.RecordRun(ctx, r); err != nil {
			t.Fatalf("RecordRun failed: %v", err)
		}
	}

	top, err := lb.Top(ctx, 2)
	if err != nil {
		t.Fatalf("Top failed: %v", err)
	}
	if len(top) != 2 || top[0].Name != "b" || top[1].Name != "c" {
		t.Fatalf("Unexpected leaderboard %+v", top)
	}
	if top[1].Outcome != "stuck" || top[0].Date.IsZero() {
		t.Errorf("Fields not stored: %+v", top[1])
	}
}

func TestRunFromGame(t *testing.T) {
	g := newTestGame(t, boxedSettings())
	g.Turn = 17
	g.Tick(DirNone)

	run := RunFromGame("me", "sess", g)
	if run.Outcome != "stuck" || run.Turns != 17 || run.Size != 8 {
		t.Errorf("Unexpected run %+v", run)
	}
}
