package ringdown

// Summarize derives all quantities for one event and packages them as a
// report. This is the usual entry point for callers that do not need the
// dimensioned intermediates.
func Summarize(ev Event) (Report, error) {
	derived, err := Derive(ev)
	if err != nil {
		return Report{}, err
	}
	return NewReport(ev, derived), nil
}

// SummarizeAll derives reports for a slice of events, failing on the
// first invalid one. No partial results are returned on error.
func SummarizeAll(events []Event) ([]Report, error) {
	reports := make([]Report, 0, len(events))
	for _, ev := range events {
		report, err := Summarize(ev)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}

// SummarizeName resolves a catalogued event by name and summarizes it in
// one step.
func SummarizeName(cat Catalogue, name string) (Report, error) {
	ev, err := cat.Resolve(name)
	if err != nil {
		return Report{}, err
	}
	return Summarize(ev)
}
