package hawkes

import "sort"

// Event is a single occurrence in a marked point process. Mark identifies
// which of the K component processes produced it.
type Event struct {
	Time float64
	Mark int
}

// Realization is a sequence of events sorted ascending in time, confined to
// the observation window [0, horizon).
type Realization []Event

// Times returns the event times in order.
func (r Realization) Times() []float64 {
	times := make([]float64, len(r))
	for i, e := range r {
		times[i] = e.Time
	}
	return times
}

// Marks returns the event marks in order.
func (r Realization) Marks() []int {
	marks := make([]int, len(r))
	for i, e := range r {
		marks[i] = e.Mark
	}
	return marks
}

// sortByTime orders events ascending in time. The sort is stable so that
// exact ties keep their accumulation order, making output a pure function of
// the RNG stream.
func sortByTime(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Time < events[j].Time
	})
}
