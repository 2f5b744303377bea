package trace

import "testing"

func TestSummarize_NilTrace_ZeroValues(t *testing.T) {
	summary := Summarize(nil)
	if summary.TotalRecords != 0 || summary.UniqueLabels != 0 {
		t.Errorf("expected zero summary, got %+v", summary)
	}
	if summary.LabelDistribution == nil {
		t.Error("expected non-nil label distribution")
	}
}

func TestSummarize_EmptyTrace_ZeroValues(t *testing.T) {
	// GIVEN an empty trace
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelEvents})

	// WHEN summarized
	summary := Summarize(st)

	// THEN all counts are zero
	if summary.TotalRecords != 0 {
		t.Errorf("expected 0 total records, got %d", summary.TotalRecords)
	}
	if summary.ExecutedCount != 0 || summary.CancelledCount != 0 || summary.DiscardedCount != 0 {
		t.Error("expected 0 executed, cancelled and discarded")
	}
	if len(summary.LabelDistribution) != 0 {
		t.Error("expected empty label distribution")
	}
}

func TestSummarize_PopulatedTrace_CorrectCounts(t *testing.T) {
	// GIVEN a trace with every outcome
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelEvents})
	st.Record(EventRecord{Seq: 0, Time: 1, Label: "Arrival", Outcome: OutcomeExecuted})
	st.Record(EventRecord{Seq: 1, Time: 2, Label: "Departure", Outcome: OutcomeCancelled})
	st.Record(EventRecord{Seq: 2, Time: 3, Label: "Arrival", Outcome: OutcomeExecuted})
	st.Record(EventRecord{Seq: 3, Time: 4, Label: "Departure", Outcome: OutcomeExecuted})
	st.Record(EventRecord{Seq: 4, Time: 50, Label: "Arrival", Outcome: OutcomeDiscarded})

	// WHEN summarized
	summary := Summarize(st)

	// THEN counts match
	if summary.TotalRecords != 5 {
		t.Errorf("expected 5 total records, got %d", summary.TotalRecords)
	}
	if summary.ExecutedCount != 3 {
		t.Errorf("expected 3 executed, got %d", summary.ExecutedCount)
	}
	if summary.CancelledCount != 1 {
		t.Errorf("expected 1 cancelled, got %d", summary.CancelledCount)
	}
	if summary.DiscardedCount != 1 {
		t.Errorf("expected 1 discarded, got %d", summary.DiscardedCount)
	}
	if summary.FirstExecution != 1 || summary.LastExecution != 4 {
		t.Errorf("expected execution window [1, 4], got [%v, %v]", summary.FirstExecution, summary.LastExecution)
	}
}

func TestSummarize_LabelDistribution_CountsOnlyExecutions(t *testing.T) {
	// GIVEN repeated labels with a cancelled one mixed in
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelEvents})
	st.Record(EventRecord{Label: "Arrival", Outcome: OutcomeExecuted})
	st.Record(EventRecord{Label: "Arrival", Outcome: OutcomeExecuted})
	st.Record(EventRecord{Label: "Departure", Outcome: OutcomeExecuted})
	st.Record(EventRecord{Label: "Timeout", Outcome: OutcomeCancelled})

	// WHEN summarized
	summary := Summarize(st)

	// THEN only executed labels appear
	if summary.UniqueLabels != 2 {
		t.Errorf("expected 2 unique labels, got %d", summary.UniqueLabels)
	}
	if summary.LabelDistribution["Arrival"] != 2 {
		t.Errorf("expected Arrival=2, got %d", summary.LabelDistribution["Arrival"])
	}
	if _, ok := summary.LabelDistribution["Timeout"]; ok {
		t.Error("cancelled label must not appear in distribution")
	}
}
