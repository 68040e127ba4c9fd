// Package runstore persists run artifacts under the home directory. Each run
// gets its own directory holding the run record, the process report, the
// enriched entry list and the annotated text.
package runstore

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jackzampolin/tocmark/internal/home"
	"github.com/jackzampolin/tocmark/internal/toc"
)

// Artifact file names within a run directory.
const (
	RecordFileName    = "record.yaml"
	ReportFileName    = "report.yaml"
	EntriesFileName   = "entries.yaml"
	AnnotatedFileName = "annotated.txt"
)

// Record summarizes one saved run.
type Record struct {
	ID            string             `yaml:"id" json:"id"`
	PDFPath       string             `yaml:"pdf_path" json:"pdf_path"`
	StructurePath string             `yaml:"structure_path" json:"structure_path"`
	CreatedAt     time.Time          `yaml:"created_at" json:"created_at"`
	StatusCounts  map[toc.Status]int `yaml:"status_counts" json:"status_counts"`
}

// Store reads and writes run artifacts.
type Store struct {
	home *home.Dir
}

// New creates a Store rooted at the given home directory.
func New(h *home.Dir) *Store {
	return &Store{home: h}
}

// Save writes all artifacts for a run. The run directory is created; a
// failure removes it again so half-written runs never surface in List.
func (s *Store) Save(rec Record, report *toc.Report, annotated string) error {
	dir := s.home.RunDir(rec.ID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create run directory: %w", err)
	}

	if err := s.writeArtifacts(dir, rec, report, annotated); err != nil {
		os.RemoveAll(dir)
		return err
	}
	return nil
}

func (s *Store) writeArtifacts(dir string, rec Record, report *toc.Report, annotated string) error {
	if err := writeYAML(filepath.Join(dir, RecordFileName), rec); err != nil {
		return err
	}
	if err := writeYAML(filepath.Join(dir, ReportFileName), report); err != nil {
		return err
	}
	if err := writeYAML(filepath.Join(dir, EntriesFileName), report.Entries); err != nil {
		return err
	}
	path := filepath.Join(dir, AnnotatedFileName)
	if err := os.WriteFile(path, []byte(annotated), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", AnnotatedFileName, err)
	}
	return nil
}

// Load reads a run's record and report.
func (s *Store) Load(runID string) (Record, *toc.Report, error) {
	dir := s.home.RunDir(runID)

	var rec Record
	if err := readYAML(filepath.Join(dir, RecordFileName), &rec); err != nil {
		return Record{}, nil, err
	}

	var report toc.Report
	if err := readYAML(filepath.Join(dir, ReportFileName), &report); err != nil {
		return Record{}, nil, err
	}

	return rec, &report, nil
}

// Annotated reads a run's annotated text.
func (s *Store) Annotated(runID string) (string, error) {
	data, err := os.ReadFile(filepath.Join(s.home.RunDir(runID), AnnotatedFileName))
	if err != nil {
		return "", fmt.Errorf("failed to read annotated text: %w", err)
	}
	return string(data), nil
}

// List returns records for all saved runs, newest first. Directories without
// a readable record are skipped.
func (s *Store) List() ([]Record, error) {
	entries, err := os.ReadDir(s.home.RunsDir())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read runs directory: %w", err)
	}

	var records []Record
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		var rec Record
		if err := readYAML(filepath.Join(s.home.RunDir(entry.Name()), RecordFileName), &rec); err != nil {
			continue
		}
		records = append(records, rec)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
	return records, nil
}

func writeYAML(path string, data any) error {
	out, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	return nil
}

func readYAML(path string, into any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	if err := yaml.Unmarshal(data, into); err != nil {
		return fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return nil
}
