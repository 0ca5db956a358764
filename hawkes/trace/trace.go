// Package trace provides cluster-structure recording for branching
// simulations. This package has no dependencies on hawkes/ — it stores pure
// data types.
package trace

// GenerationRecord captures one generation of the branching cascade.
// Generation 0 is the immigrant population and has zero parents.
type GenerationRecord struct {
	Index    int // generation number, 0 = immigrants
	Parents  int // events in the previous generation
	Children int // events produced in this generation
}

// ClusterTrace accumulates per-generation records for one simulation run.
// A nil *ClusterTrace is a valid no-op recorder.
type ClusterTrace struct {
	Generations []GenerationRecord
}

// Record appends one generation record. Safe on a nil receiver.
func (ct *ClusterTrace) Record(index, parents, children int) {
	if ct == nil {
		return
	}
	ct.Generations = append(ct.Generations, GenerationRecord{
		Index:    index,
		Parents:  parents,
		Children: children,
	})
}
