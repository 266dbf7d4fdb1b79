package store

import (
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"
)

type ExportData struct {
	Algorithm   string  `json:"algorithm"`
	Size        int     `json:"size"`
	Seed        int64   `json:"seed"`
	Steps       int     `json:"steps"`
	Comparisons int     `json:"comparisons"`
	Swaps       int     `json:"swaps"`
	Initial     []int   `json:"initial"`
	Frames      [][]int `json:"frames"`
}

func newExportData(seed int64, trace *Trace) ExportData {
	st := trace.Stats()
	data := ExportData{
		Algorithm:   trace.Kind.String(),
		Size:        len(trace.Initial),
		Seed:        seed,
		Steps:       st.Steps,
		Comparisons: st.Comparisons,
		Swaps:       st.Swaps,
		Initial:     trace.Initial,
		Frames:      make([][]int, len(trace.Frames)),
	}
	for i, f := range trace.Frames {
		data.Frames[i] = f.Values
	}
	return data
}

// WriteJSON encodes the trace as indented JSON to w.
func WriteJSON(w io.Writer, seed int64, trace *Trace) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(newExportData(seed, trace)), "encode export")
}

func ExportJSON(path string, seed int64, trace *Trace) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create export")
	}
	defer file.Close()

	return WriteJSON(file, seed, trace)
}
