package utils

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"

	"github.com/facette/natsort"
)

// CSV rows are ordered naturally by their first Key columns.
type CSV struct {
	Rows [][]string
	Key  int
}

func (data CSV) Less(i, j int) bool {
	for c := 0; c < max(data.Key, 1); c++ {
		a, b := data.Rows[i][c], data.Rows[j][c]
		if a != b {
			return natsort.Compare(a, b)
		}
	}
	return false
}

func (data CSV) Len() int {
	return len(data.Rows)
}
func (data CSV) Swap(i, j int) {
	data.Rows[i], data.Rows[j] = data.Rows[j], data.Rows[i]
}

func WriteAsCSV(w io.Writer, data CSV, columns []string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("error writing csv header: %w", err)
	}
	sort.Stable(data)
	if err := cw.WriteAll(data.Rows); err != nil {
		return fmt.Errorf("error writing csv: %w", err)
	}
	return nil
}
