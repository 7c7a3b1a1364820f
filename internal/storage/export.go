package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/san-kum/lifelab/internal/life"
)

type ExportData struct {
	ID          string                   `json:"id"`
	Pattern     string                   `json:"pattern"`
	Width       int                      `json:"width"`
	Height      int                      `json:"height"`
	Generations int                      `json:"generations"`
	Seed        int64                    `json:"seed"`
	Metrics     map[string]float64       `json:"metrics"`
	History     []life.GenerationSummary `json:"history"`
}

// ExportJSON writes a complete run record as indented JSON.
func ExportJSON(w io.Writer, meta *RunMetadata, history []life.GenerationSummary) error {
	data := ExportData{
		ID:          meta.ID,
		Pattern:     meta.Pattern,
		Width:       meta.Width,
		Height:      meta.Height,
		Generations: meta.Generations,
		Seed:        meta.Seed,
		Metrics:     meta.Metrics,
		History:     history,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// ExportCSV writes the per-generation history as CSV rows.
func ExportCSV(w io.Writer, history []life.GenerationSummary) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"generation", "population", "births", "deaths", "changed"}); err != nil {
		return err
	}
	for _, row := range history {
		rec := []string{
			strconv.Itoa(row.Generation),
			strconv.Itoa(row.Population),
			strconv.Itoa(row.Births),
			strconv.Itoa(row.Deaths),
			strconv.Itoa(row.Changed),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	return nil
}
