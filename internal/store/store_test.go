package store

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/sortviz/internal/algo"
	"github.com/san-kum/sortviz/internal/sequence"
)

func captureInsertion(t *testing.T) *Trace {
	t.Helper()
	seq, err := sequence.FromValues([]int{3, 1, 4, 2})
	if err != nil {
		t.Fatal(err)
	}
	e := algo.NewWith(algo.Insertion, seq, rand.New(rand.NewSource(1)))
	return Capture(e, algo.MaxSteps(4))
}

func TestCapture(t *testing.T) {
	trace := captureInsertion(t)

	if len(trace.Frames) != 6 {
		t.Fatalf("expected 6 frames, got %d", len(trace.Frames))
	}
	if got := trace.Final(); got[0] != 1 || got[1] != 2 || got[2] != 3 || got[3] != 4 {
		t.Errorf("expected sorted final frame, got %v", got)
	}
	if trace.Frames[0].Values[0] != 1 || trace.Frames[0].Swaps != 1 {
		t.Errorf("unexpected first frame: %+v", trace.Frames[0])
	}
	if st := trace.Stats(); st != (algo.Stats{Steps: 6, Comparisons: 5, Swaps: 3}) {
		t.Errorf("unexpected stats %+v", st)
	}
}

func TestCaptureRespectsLimit(t *testing.T) {
	e := algo.New(algo.Bubble, 10, rand.New(rand.NewSource(2)))
	trace := Capture(e, 5)
	if len(trace.Frames) != 5 {
		t.Errorf("expected 5 frames, got %d", len(trace.Frames))
	}
}

func TestStoreSaveLoad(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save(42, captureInsertion(t))
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Error("expected non-empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Algorithm != "insertion" {
		t.Errorf("expected algorithm 'insertion', got '%s'", meta.Algorithm)
	}
	if meta.Seed != 42 {
		t.Errorf("expected seed 42, got %d", meta.Seed)
	}
	if meta.Steps != 6 || meta.Swaps != 3 || !meta.Sorted {
		t.Errorf("unexpected summary %+v", meta)
	}

	trace, err := st.LoadTrace(runID)
	if err != nil {
		t.Fatalf("load trace failed: %v", err)
	}
	if trace.Kind != algo.Insertion {
		t.Errorf("expected insertion, got %s", trace.Kind)
	}
	if len(trace.Frames) != 6 {
		t.Errorf("expected 6 frames, got %d", len(trace.Frames))
	}
	if trace.Initial[0] != 3 {
		t.Errorf("initial order lost: %v", trace.Initial)
	}
	if trace.Stats() != (algo.Stats{Steps: 6, Comparisons: 5, Swaps: 3}) {
		t.Errorf("counters lost: %+v", trace.Stats())
	}
}

func TestStoreList(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}

	if _, err := st.Save(1, captureInsertion(t)); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if _, err := st.Save(2, captureInsertion(t)); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	os.WriteFile(filepath.Join(tmpDir, "stray.txt"), []byte("x"), 0644)

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("expected 2 runs, got %d", len(runs))
	}
}

func TestStoreListMissingDir(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "absent"))
	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestStoreFileStructure(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	runID, err := st.Save(42, captureInsertion(t))
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runDir := filepath.Join(tmpDir, runID)
	if _, err := os.Stat(filepath.Join(runDir, "run.json")); os.IsNotExist(err) {
		t.Error("run.json not created")
	}
	if _, err := os.Stat(filepath.Join(runDir, "trace.csv")); os.IsNotExist(err) {
		t.Error("trace.csv not created")
	}
}

func TestLoadMissingRun(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.Load("nope"); err == nil {
		t.Error("expected error for missing run")
	}
	if _, err := st.LoadTrace("nope"); err == nil {
		t.Error("expected error for missing trace")
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, 9, captureInsertion(t)); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	var data ExportData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if data.Algorithm != "insertion" || data.Size != 4 || data.Seed != 9 {
		t.Errorf("unexpected header %+v", data)
	}
	if len(data.Frames) != 6 {
		t.Errorf("expected 6 frames, got %d", len(data.Frames))
	}
}

func TestExportJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	if err := ExportJSON(path, 1, captureInsertion(t)); err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("export file missing: %v", err)
	}
}
