package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/san-kum/sortviz/internal/algo"
)

const (
	metaFile  = "run.json"
	traceFile = "trace.csv"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return errors.Wrap(os.MkdirAll(s.baseDir, 0755), "create data dir")
}

type RunMetadata struct {
	ID          string    `json:"id"`
	Algorithm   string    `json:"algorithm"`
	Size        int       `json:"size"`
	Seed        int64     `json:"seed"`
	Timestamp   time.Time `json:"timestamp"`
	Steps       int       `json:"steps"`
	Comparisons int       `json:"comparisons"`
	Swaps       int       `json:"swaps"`
	Sorted      bool      `json:"sorted"`
	Initial     []int     `json:"initial"`
	Final       []int     `json:"final"`
}

// Save writes the trace summary and every frame under a new run directory and
// returns the run id.
func (s *Store) Save(seed int64, trace *Trace) (string, error) {
	runID := fmt.Sprintf("%s_%s", trace.Kind, uuid.NewString()[:8])
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", errors.Wrap(err, "create run dir")
	}

	st := trace.Stats()
	final := trace.Final()
	meta := RunMetadata{
		ID:          runID,
		Algorithm:   trace.Kind.String(),
		Size:        len(trace.Initial),
		Seed:        seed,
		Timestamp:   time.Now(),
		Steps:       st.Steps,
		Comparisons: st.Comparisons,
		Swaps:       st.Swaps,
		Sorted:      sort.IntsAreSorted(final),
		Initial:     trace.Initial,
		Final:       final,
	}

	if err := writeJSON(filepath.Join(runDir, metaFile), meta); err != nil {
		return "", err
	}
	if err := writeTrace(filepath.Join(runDir, traceFile), trace); err != nil {
		return "", err
	}
	return runID, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create metadata")
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(v), "encode metadata")
}

func writeTrace(path string, trace *Trace) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create trace")
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{"step", "comparisons", "swaps"}
	for i := range trace.Initial {
		header = append(header, fmt.Sprintf("v%d", i))
	}
	if err := w.Write(header); err != nil {
		return errors.Wrap(err, "write trace header")
	}

	rows := append([]Frame{{Values: trace.Initial}}, trace.Frames...)
	for _, fr := range rows {
		row := []string{strconv.Itoa(fr.Step), strconv.Itoa(fr.Comparisons), strconv.Itoa(fr.Swaps)}
		for _, v := range fr.Values {
			row = append(row, strconv.Itoa(v))
		}
		if err := w.Write(row); err != nil {
			return errors.Wrap(err, "write trace row")
		}
	}
	w.Flush()
	return errors.Wrap(w.Error(), "flush trace")
}

// List returns every stored run, oldest first. Unreadable entries are skipped.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, errors.Wrap(err, "read data dir")
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metaFile))
	if err != nil {
		return nil, errors.Wrapf(err, "load run %s", runID)
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, errors.Wrapf(err, "decode run %s", runID)
	}
	return &meta, nil
}

// LoadTrace reads the frames of a stored run. The first frame is the initial
// order at step 0.
func (s *Store) LoadTrace(runID string) (*Trace, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}
	kind, err := algo.ParseKind(meta.Algorithm)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(filepath.Join(s.baseDir, runID, traceFile))
	if err != nil {
		return nil, errors.Wrapf(err, "open trace %s", runID)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "read trace %s", runID)
	}
	if len(records) < 2 {
		return nil, errors.Errorf("trace %s has no frames", runID)
	}

	frames := make([]Frame, 0, len(records)-1)
	for line, record := range records[1:] {
		nums := make([]int, len(record))
		for i, field := range record {
			n, err := strconv.Atoi(field)
			if err != nil {
				return nil, errors.Wrapf(err, "trace %s line %d", runID, line+2)
			}
			nums[i] = n
		}
		frames = append(frames, Frame{
			Step:        nums[0],
			Comparisons: nums[1],
			Swaps:       nums[2],
			Values:      nums[3:],
		})
	}

	return &Trace{Kind: kind, Initial: frames[0].Values, Frames: frames[1:]}, nil
}
