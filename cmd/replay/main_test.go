package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/trytobebee/food_run/pkg/game"
	"github.com/trytobebee/food_run/pkg/renderer"
)

func recordGame(t *testing.T, dir string, ticks int) string {
	t.Helper()
	rec, err := game.NewRecorder(dir, "sess")
	if err != nil {
		t.Fatalf("NewRecorder failed: %v", err)
	}
	g := game.NewDefaultGame()
	for i := 0; i < ticks && !g.Over(); i++ {
		g.Tick(game.DirNone)
		rec.RecordStep(game.NewStepRecord("sess", 1, g, game.DirNone))
	}
	if err := rec.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	return rec.Path()
}

func TestListRecords(t *testing.T) {
	dir := t.TempDir()
	path := recordGame(t, dir, 3)
	os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644)

	records, err := listRecords(dir)
	if err != nil {
		t.Fatalf("listRecords failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("Expected one recording, got %d", len(records))
	}
	if records[0].Name != filepath.Base(path) || records[0].SessionID != "sess" {
		t.Errorf("Unexpected entry %+v", records[0])
	}

	var out bytes.Buffer
	printLibrary(&out, dir, records)
	if !strings.Contains(out.String(), "Session: sess") {
		t.Errorf("Library listing missing session: %q", out.String())
	}
}

func TestListRecordsMissingDir(t *testing.T) {
	records, err := listRecords(filepath.Join(t.TempDir(), "nope"))
	if err != nil || len(records) != 0 {
		t.Errorf("Missing dir should list nothing, got %v %v", records, err)
	}
}

func TestPlay(t *testing.T) {
	records, err := game.ReadRecords(recordGame(t, t.TempDir(), 4))
	if err != nil {
		t.Fatalf("ReadRecords failed: %v", err)
	}

	var out bytes.Buffer
	var pauses []time.Duration
	play(renderer.NewTerminalRendererTo(&out), records, 20, func(d time.Duration) {
		pauses = append(pauses, d)
	})

	if got := strings.Count(out.String(), "\033[H\033[2J"); got != len(records) {
		t.Errorf("Expected %d frames, got %d", len(records), got)
	}
	if len(pauses) != len(records)-1 {
		t.Fatalf("Expected %d pauses, got %d", len(records)-1, len(pauses))
	}
	for _, d := range pauses {
		if d != 50*time.Millisecond {
			t.Errorf("Expected 50ms pause at 20fps, got %v", d)
		}
	}
}

func TestFrameDelay(t *testing.T) {
	now := time.Now()
	a := game.StepRecord{Episode: 1, Time: now}
	b := game.StepRecord{Episode: 1, Time: now.Add(300 * time.Millisecond)}
	c := game.StepRecord{Episode: 2, Time: now.Add(2 * time.Second)}

	tests := []struct {
		name       string
		prev, next game.StepRecord
		fps        float64
		want       time.Duration
	}{
		{"fixed rate", a, b, 10, 100 * time.Millisecond},
		{"recorded pace", a, b, 0, 300 * time.Millisecond},
		{"new round", b, c, 0, 0},
		{"clock went back", b, a, 0, 0},
	}
	for _, tt := range tests {
		if got := frameDelay(tt.prev, tt.next, tt.fps); got != tt.want {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}
}
