package cmd

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/hawkes-sim/hawkes-sim/hawkes"
)

// ReadRealizationCSV parses a realization from a headerless CSV file of
// time,mark rows. Ordering and mark-range checks are left to the likelihood
// engine, which validates before computing.
func ReadRealizationCSV(path string) (times []float64, marks []int, err error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	times = make([]float64, 0, len(rows))
	marks = make([]int, 0, len(rows))
	for i, row := range rows {
		if len(row) != 2 {
			return nil, nil, fmt.Errorf("%s row %d: want 2 fields (time,mark), got %d", path, i+1, len(row))
		}
		t, err := strconv.ParseFloat(row[0], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("%s row %d: bad time %q: %w", path, i+1, row[0], err)
		}
		m, err := strconv.Atoi(row[1])
		if err != nil {
			return nil, nil, fmt.Errorf("%s row %d: bad mark %q: %w", path, i+1, row[1], err)
		}
		times = append(times, t)
		marks = append(marks, m)
	}
	return times, marks, nil
}

// WriteRealizationCSV writes a realization as time,mark rows.
func WriteRealizationCSV(path string, r hawkes.Realization) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	for _, e := range r {
		record := []string{
			strconv.FormatFloat(e.Time, 'g', 17, 64),
			strconv.Itoa(e.Mark),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	w.Flush()
	return w.Error()
}
