package toc

// Report tallies terminal statuses across all entries and carries the ordered
// per-entry records.
type Report struct {
	StatusCounts map[Status]int `json:"status_counts" yaml:"status_counts"`
	Entries      []Entry        `json:"entries" yaml:"entries"`
}

// BuildReport aggregates enriched entries into a report. All three status
// keys are always present, zero counts included, so consumers can key on
// them unconditionally. Entries keep their original ToC order; the input is
// not mutated.
func BuildReport(entries []Entry) *Report {
	report := &Report{
		StatusCounts: map[Status]int{
			StatusSuccess:         0,
			StatusNotInText:       0,
			StatusUnmatchedInText: 0,
		},
		Entries: make([]Entry, len(entries)),
	}
	copy(report.Entries, entries)

	for _, e := range entries {
		if _, ok := report.StatusCounts[e.Status]; ok {
			report.StatusCounts[e.Status]++
		}
	}
	return report
}
