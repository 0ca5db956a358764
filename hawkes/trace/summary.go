package trace

// TraceSummary aggregates statistics from a ClusterTrace.
type TraceSummary struct {
	Generations        int     // generations recorded, immigrants included
	TotalEvents        int     // events across all generations
	Immigrants         int     // size of generation 0
	MeanOffspring      float64 // children per parent across branching generations
	PeakGenerationSize int     // largest single generation
}

// Summarize computes aggregate statistics from a ClusterTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(ct *ClusterTrace) *TraceSummary {
	summary := &TraceSummary{}
	if ct == nil {
		return summary
	}

	summary.Generations = len(ct.Generations)
	totalParents := 0
	totalChildren := 0
	for _, g := range ct.Generations {
		summary.TotalEvents += g.Children
		if g.Children > summary.PeakGenerationSize {
			summary.PeakGenerationSize = g.Children
		}
		if g.Index == 0 {
			summary.Immigrants = g.Children
			continue
		}
		totalParents += g.Parents
		totalChildren += g.Children
	}
	if totalParents > 0 {
		summary.MeanOffspring = float64(totalChildren) / float64(totalParents)
	}
	return summary
}
