// Aggregates realization-wide statistics for final reporting.

package hawkes

import "fmt"

// Summary aggregates statistics about a realization for final reporting.
// Useful for eyeballing simulated output and debugging parameter choices.
type Summary struct {
	TotalEvents   int     // number of events in the realization
	Horizon       float64 // observation window length
	CountsByMark  []int   // events per component process
	LastEventTime float64 // time of the final event, 0 if empty
	MeanGap       float64 // mean inter-event gap, 0 if fewer than 2 events
}

// Summarize computes a Summary over a realization with k component processes.
func Summarize(r Realization, k int, horizon float64) Summary {
	s := Summary{
		TotalEvents:  len(r),
		Horizon:      horizon,
		CountsByMark: make([]int, k),
	}
	for _, e := range r {
		if e.Mark >= 0 && e.Mark < k {
			s.CountsByMark[e.Mark]++
		}
	}
	if len(r) > 0 {
		s.LastEventTime = r[len(r)-1].Time
	}
	if len(r) > 1 {
		s.MeanGap = (r[len(r)-1].Time - r[0].Time) / float64(len(r)-1)
	}
	return s
}

// Print displays the summary at the end of a simulation run.
func (s Summary) Print() {
	fmt.Println("=== Realization Summary ===")
	fmt.Printf("Total Events     : %d\n", s.TotalEvents)
	fmt.Printf("Horizon          : %.4f\n", s.Horizon)
	for k, c := range s.CountsByMark {
		fmt.Printf("Process %d Events : %d\n", k, c)
	}
	if s.TotalEvents > 0 {
		fmt.Printf("Last Event Time  : %.4f\n", s.LastEventTime)
	}
	if s.TotalEvents > 1 {
		fmt.Printf("Mean Gap         : %.6f\n", s.MeanGap)
	}
}
