package trace

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"led-snake/config"
	"led-snake/game"
	"led-snake/game/types"

	"github.com/gocarina/gocsv"
)

func newGame(t *testing.T) *game.Game {
	t.Helper()
	g, err := game.New(config.Default())
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestRecorderWritesHeaderOnce(t *testing.T) {
	g := newGame(t)
	var buf bytes.Buffer
	r := NewRecorder(&buf)

	g.Step(types.Right)
	if err := r.Record(g.Snapshot()); err != nil {
		t.Fatal(err)
	}
	g.Step(types.Down)
	if err := r.Record(g.Snapshot()); err != nil {
		t.Fatal(err)
	}

	if n := strings.Count(buf.String(), "session,step"); n != 1 {
		t.Errorf("Expected one header, found %d", n)
	}
	var rows []StepRecord
	if err := gocsv.UnmarshalString(buf.String(), &rows); err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 || r.Rows() != 2 {
		t.Fatalf("Expected 2 rows, got %d (recorder says %d)", len(rows), r.Rows())
	}

	grew := rows[0]
	if grew.Outcome != types.Grew.String() {
		t.Errorf("Unexpected outcome %q", grew.Outcome)
	}
	if grew.Step != 1 || grew.Size != 2 || grew.HeadRow != 0 || grew.HeadCol != 1 {
		t.Errorf("Unexpected first row %+v", grew)
	}
	if grew.Session != g.UUID {
		t.Errorf("Expected session %s, got %s", g.UUID, grew.Session)
	}

	blocked := rows[1]
	if blocked.Outcome != types.Blocked.String() || blocked.Collision != types.WallCollision.String() {
		t.Errorf("Unexpected second row %+v", blocked)
	}
	if blocked.Direction != types.Down.String() {
		t.Errorf("Expected direction %s, got %s", types.Down, blocked.Direction)
	}
}

func TestCreateAndReadFile(t *testing.T) {
	g := newGame(t)
	dir := filepath.Join(t.TempDir(), "traces")

	r, err := Create(dir, g.UUID)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		g.Step(types.Up)
		if err := r.Record(g.Snapshot()); err != nil {
			t.Fatal(err)
		}
	}
	if err := r.Close(); err != nil {
		t.Fatal(err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("Second Close should be a no-op, got %v", err)
	}

	rows, err := ReadFile(filepath.Join(dir, g.UUID+".csv"))
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}
	if rows[2].HeadRow != 3 || rows[2].Free != types.BoardSize-1 {
		t.Errorf("Unexpected last row %+v", rows[2])
	}
}

func TestDisabledRecorder(t *testing.T) {
	r, err := Create("", "unused")
	if err != nil || r != nil {
		t.Fatalf("Expected nil recorder, got %v %v", r, err)
	}
	if err := r.Record(newGame(t).Snapshot()); err != nil {
		t.Errorf("Nil recorder should ignore records, got %v", err)
	}
	if r.Rows() != 0 || r.Close() != nil {
		t.Error("Nil recorder should report nothing")
	}
}
