// Package storage persists headless run records: metadata plus the
// per-generation history. Records are statistics about a run, not a
// resumable grid snapshot.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/lifelab/internal/life"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID          string             `json:"id"`
	Pattern     string             `json:"pattern"`
	Timestamp   time.Time          `json:"timestamp"`
	Width       int                `json:"width"`
	Height      int                `json:"height"`
	Generations int                `json:"generations"`
	Seed        int64              `json:"seed"`
	Metrics     map[string]float64 `json:"metrics"`
}

// History records generation summaries as they happen. It implements the
// engine's Observer interface.
type History struct {
	Rows []life.GenerationSummary
}

func (h *History) OnGeneration(s life.GenerationSummary) {
	h.Rows = append(h.Rows, s)
}

func (s *Store) Save(pattern string, width, height int, seed int64, hist *History, metrics map[string]float64) (string, error) {
	runID := fmt.Sprintf("%s_%d", pattern, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:          runID,
		Pattern:     pattern,
		Timestamp:   time.Now(),
		Width:       width,
		Height:      height,
		Generations: len(hist.Rows),
		Seed:        seed,
		Metrics:     metrics,
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(runDir, "history.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"generation", "population", "births", "deaths", "changed"}); err != nil {
		return "", err
	}
	for _, row := range hist.Rows {
		rec := []string{
			strconv.Itoa(row.Generation),
			strconv.Itoa(row.Population),
			strconv.Itoa(row.Births),
			strconv.Itoa(row.Deaths),
			strconv.Itoa(row.Changed),
		}
		if err := w.Write(rec); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadHistory(runID string) ([]life.GenerationSummary, error) {
	csvPath := filepath.Join(s.baseDir, runID, "history.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return []life.GenerationSummary{}, nil
	}

	rows := make([]life.GenerationSummary, 0, len(records)-1)
	for _, rec := range records[1:] {
		if len(rec) < 5 {
			continue
		}
		var vals [5]int
		ok := true
		for i := 0; i < 5; i++ {
			v, err := strconv.Atoi(rec[i])
			if err != nil {
				ok = false
				break
			}
			vals[i] = v
		}
		if !ok {
			continue
		}
		rows = append(rows, life.GenerationSummary{
			Generation: vals[0],
			Population: vals[1],
			Births:     vals[2],
			Deaths:     vals[3],
			Changed:    vals[4],
		})
	}

	return rows, nil
}
