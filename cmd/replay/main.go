package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/trytobebee/food_run/pkg/game"
	"github.com/trytobebee/food_run/pkg/renderer"
)

// RecordFile is one recording found in the record directory
type RecordFile struct {
	Name      string
	Size      int64
	Time      time.Time
	SessionID string
}

func main() {
	recordDir := flag.String("dir", "records", "directory holding JSONL recordings")
	file := flag.String("file", "", "recording to play, empty lists the library")
	pngPath := flag.String("png", "", "write the final board of the recording to this PNG")
	fps := flag.Float64("fps", 10, "frames per second, 0 replays at the recorded pace")
	flag.Parse()

	if *file == "" {
		records, err := listRecords(*recordDir)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		printLibrary(os.Stdout, *recordDir, records)
		return
	}

	path := *file
	if _, err := os.Stat(path); err != nil {
		path = filepath.Join(*recordDir, *file)
	}
	records, err := game.ReadRecords(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	r := renderer.NewTerminalRenderer()
	r.HideCursor()
	play(r, records, *fps, time.Sleep)
	r.ShowCursor()

	if *pngPath != "" && len(records) > 0 {
		if err := renderer.SavePNG(*pngPath, records[len(records)-1].World(), renderer.DefaultBlockSize); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		fmt.Printf("📷 Final board saved to %s\n", *pngPath)
	}
}

// listRecords returns the recordings in dir, newest first
func listRecords(dir string) ([]RecordFile, error) {
	files, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	var records []RecordFile
	for _, f := range files {
		if f.IsDir() || filepath.Ext(f.Name()) != ".jsonl" {
			continue
		}
		info, err := f.Info()
		if err != nil {
			continue
		}
		// expecting format: game_{sessionID}_{timestamp}.jsonl
		parts := strings.Split(f.Name(), "_")
		sessID := ""
		if len(parts) >= 2 {
			sessID = parts[1]
		}
		records = append(records, RecordFile{
			Name:      f.Name(),
			Size:      info.Size(),
			Time:      info.ModTime(),
			SessionID: sessID,
		})
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Time.After(records[j].Time)
	})
	return records, nil
}

func printLibrary(out io.Writer, dir string, records []RecordFile) {
	fmt.Fprintln(out, "📼 Replay Library")
	if len(records) == 0 {
		fmt.Fprintf(out, "No recordings found in %s\n", dir)
		return
	}
	for _, rec := range records {
		fmt.Fprintf(out, "%s\n    Session: %s | Size: %d bytes | %s\n",
			rec.Name, rec.SessionID, rec.Size, rec.Time.Format("2006-01-02 15:04:05"))
	}
}

// play draws every record, pausing between frames
func play(r *renderer.TerminalRenderer, records []game.StepRecord, fps float64, sleep func(time.Duration)) {
	for i, rec := range records {
		if i > 0 {
			sleep(frameDelay(records[i-1], rec, fps))
		}
		r.Render(rec.World(), rec.Score, rec.Turn, rec.Message)
		r.Lines(fmt.Sprintf("round %d | input: %s | speed: %.2f | %s", rec.Episode, rec.Input, rec.Speed, rec.Outcome))
	}
}

// frameDelay is fixed when fps is set, otherwise the gap between the two ticks
func frameDelay(prev, next game.StepRecord, fps float64) time.Duration {
	if fps > 0 {
		return time.Duration(float64(time.Second) / fps)
	}
	d := next.Time.Sub(prev.Time)
	if d < 0 || next.Episode != prev.Episode {
		return 0
	}
	return d
}
