package game

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// StepRecord is one recorded tick
type StepRecord struct {
	SessionID string    `json:"sessionId"`
	Episode   int       `json:"episode"`
	Height    int       `json:"height"`
	Width     int       `json:"width"`
	Input     string    `json:"input"`
	Turn      int       `json:"turn"`
	Speed     float64   `json:"speed"`
	Score     int       `json:"score"`
	Outcome   string    `json:"outcome"`
	Snake     []Point   `json:"snake"`
	Food      Point     `json:"food"`
	Message   string    `json:"message,omitempty"`
	Time      time.Time `json:"time"`
}

// NewStepRecord captures the game right after a tick driven by dir
func NewStepRecord(sessionID string, episode int, g *Game, dir Direction) StepRecord {
	return StepRecord{
		SessionID: sessionID,
		Episode:   episode,
		Height:    g.World.Height(),
		Width:     g.World.Width(),
		Input:     dir.String(),
		Turn:      g.Turn,
		Speed:     g.Speed,
		Score:     g.Score,
		Outcome:   g.Outcome().String(),
		Snake:     g.Snake.Positions(),
		Food:      g.Food,
		Message:   g.Message,
		Time:      time.Now(),
	}
}

// World rebuilds the board the record was taken from
func (r StepRecord) World() *World {
	return BuildWorld(r.Height, r.Width, r.Snake, r.Food)
}

// GameRecorder handles asynchronous logging of game steps
type GameRecorder struct {
	path       string
	file       *os.File
	writer     *bufio.Writer
	recordChan chan StepRecord
	wg         sync.WaitGroup
	mu         sync.Mutex
	closed     bool
}

// NewRecorder creates a new recorder that writes to recordDir.
// Filename format: game_{sessionID}_{timestamp}.jsonl
func NewRecorder(recordDir, sessionID string) (*GameRecorder, error) {
	if err := os.MkdirAll(recordDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create records dir: %w", err)
	}

	timestamp := time.Now().Unix()
	filename := fmt.Sprintf("game_%s_%d.jsonl", sessionID, timestamp)
	path := filepath.Join(recordDir, filename)

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create record file: %w", err)
	}

	r := &GameRecorder{
		path:       path,
		file:       f,
		writer:     bufio.NewWriter(f),
		recordChan: make(chan StepRecord, 1000), // Buffer up to 1000 frames
	}

	r.wg.Add(1)
	go r.writeLoop()

	return r, nil
}

// Path returns the file the recorder writes to
func (r *GameRecorder) Path() string {
	return r.path
}

// RecordStep queues a record to be written. Non-blocking (drops if full).
func (r *GameRecorder) RecordStep(rec StepRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}

	select {
	case r.recordChan <- rec:
	default:
		// Channel full, drop frame to protect game loop timing
	}
}

// Close flushes the buffer and closes the file
func (r *GameRecorder) Close() error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	close(r.recordChan)
	r.mu.Unlock()

	r.wg.Wait()
	return r.file.Close()
}

func (r *GameRecorder) writeLoop() {
	defer r.wg.Done()

	encoder := json.NewEncoder(r.writer)
	for rec := range r.recordChan {
		if err := encoder.Encode(rec); err != nil {
			fmt.Fprintf(os.Stderr, "Error recording frame: %v\n", err)
			continue
		}
	}
	if err := r.writer.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "Error flushing records: %v\n", err)
	}
}

// ReadRecords loads every record of a JSONL recording
func ReadRecords(path string) ([]StepRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open recording: %w", err)
	}
	defer f.Close()

	var records []StepRecord
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		if len(scanner.Bytes()) == 0 {
			continue
		}
		var rec StepRecord
		if err := json.Unmarshal(scanner.Bytes(), &rec); err != nil {
			return nil, fmt.Errorf("bad record on line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read recording: %w", err)
	}
	return records, nil
}
