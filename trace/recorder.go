// Package trace writes a per-step CSV log of a game session.
package trace

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"led-snake/game"

	"github.com/gocarina/gocsv"
)

// StepRecord is one CSV row.
type StepRecord struct {
	Session   string `csv:"session"`
	Step      int    `csv:"step"`
	Direction string `csv:"direction"`
	Outcome   string `csv:"outcome"`
	Collision string `csv:"collision"`
	HeadRow   int    `csv:"head_row"`
	HeadCol   int    `csv:"head_col"`
	Size      int    `csv:"size"`
	Free      int    `csv:"free"`
	Fruit     int    `csv:"fruit"`
}

// NewStepRecord flattens a post-step snapshot.
func NewStepRecord(s game.Snapshot) StepRecord {
	head := s.Head()
	return StepRecord{
		Session:   s.Session,
		Step:      s.Steps,
		Direction: s.Heading.String(),
		Outcome:   s.Outcome.String(),
		Collision: s.Collision.String(),
		HeadRow:   head.Row,
		HeadCol:   head.Col,
		Size:      len(s.Body),
		Free:      s.Free,
		Fruit:     s.Fruit,
	}
}

// Recorder appends StepRecords to a writer, emitting the header once.
type Recorder struct {
	mu            sync.Mutex
	w             io.Writer
	closer        io.Closer
	headerWritten bool
	rows          int
}

// NewRecorder writes to w. The caller keeps ownership of w.
func NewRecorder(w io.Writer) *Recorder {
	return &Recorder{w: w}
}

// Create opens <dir>/<session>.csv. It returns nil when dir is empty.
func Create(dir, session string) (*Recorder, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating trace directory: %w", err)
	}
	path := filepath.Join(dir, session+".csv")
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}
	return &Recorder{w: f, closer: f}, nil
}

// Record writes one snapshot as a row.
func (r *Recorder) Record(s game.Snapshot) error {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	records := []StepRecord{NewStepRecord(s)}
	if !r.headerWritten {
		if err := gocsv.Marshal(records, r.w); err != nil {
			return fmt.Errorf("writing trace header: %w", err)
		}
		r.headerWritten = true
	} else if err := gocsv.MarshalWithoutHeaders(records, r.w); err != nil {
		return fmt.Errorf("writing trace row: %w", err)
	}
	r.rows++
	return nil
}

// Rows returns how many rows have been written.
func (r *Recorder) Rows() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rows
}

// Close closes the underlying file when the recorder opened it.
func (r *Recorder) Close() error {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closer == nil {
		return nil
	}
	err := r.closer.Close()
	r.closer = nil
	return err
}

// ReadFile loads a trace written by Recorder.
func ReadFile(path string) ([]StepRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var records []StepRecord
	if err := gocsv.UnmarshalFile(f, &records); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return records, nil
}
