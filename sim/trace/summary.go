package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalRecords      int
	ExecutedCount     int
	CancelledCount    int
	DiscardedCount    int
	FirstExecution    float64
	LastExecution     float64
	UniqueLabels      int
	LabelDistribution map[string]int // event label → count of executions
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		LabelDistribution: make(map[string]int),
	}
	if st == nil {
		return summary
	}

	summary.TotalRecords = len(st.Records)
	for _, r := range st.Records {
		switch r.Outcome {
		case OutcomeExecuted:
			if summary.ExecutedCount == 0 {
				summary.FirstExecution = r.Time
			}
			summary.ExecutedCount++
			summary.LastExecution = r.Time
			summary.LabelDistribution[r.Label]++
		case OutcomeCancelled:
			summary.CancelledCount++
		case OutcomeDiscarded:
			summary.DiscardedCount++
		}
	}

	summary.UniqueLabels = len(summary.LabelDistribution)

	return summary
}
