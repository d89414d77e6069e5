package output

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"

	"github.com/wildstyl3r/seaecho/internal/sweep"
	"github.com/wildstyl3r/seaecho/internal/utils"
)

// SweepInfo summarises one finished sweep.
type SweepInfo struct {
	Name     string
	Kind     string
	Points   int
	Failed   int
	Warnings int
	Files    []string
	// over points that did not fail
	TSMean    float64 // [dB]
	TSStd     float64 // [dB]
	ModesMean float64
	Peaks     []sweep.Peak `toml:",omitempty"`
}

// RunInfo is written next to the tables as run.toml.
type RunInfo struct {
	ID      string
	Input   string
	Started time.Time
	Elapsed string
	Threads int
	Sweeps  []SweepInfo
}

func NewRunInfo(input string, threads int) RunInfo {
	return RunInfo{
		ID:      uuid.NewString(),
		Input:   input,
		Started: time.Now().UTC(),
		Threads: threads,
	}
}

func Summarise(plan sweep.Plan, rows []sweep.Row, files []string, peaks []sweep.Peak) SweepInfo {
	info := SweepInfo{Name: plan.Name, Kind: string(plan.Kind), Points: len(rows), Files: files, Peaks: peaks}
	var ts []float64
	var modes, warnings []int
	for _, r := range rows {
		warnings = append(warnings, len(r.Record.Warnings))
		if r.Err != nil {
			info.Failed++
			continue
		}
		ts = append(ts, r.Record.TS)
		modes = append(modes, r.Record.ModesUsed)
	}
	info.Warnings = utils.SumSlice(warnings)
	mean, variance := utils.MeanAndVariance(ts, false)
	info.TSMean, info.TSStd = mean, math.Sqrt(variance)
	info.ModesMean = utils.Average(modes)
	return info
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 8, 64)
}

// Finish writes run.toml and summary.csv into dir.
func (ri *RunInfo) Finish(dir string) error {
	ri.Elapsed = time.Since(ri.Started).Round(time.Millisecond).String()
	if dir != "" {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return err
		}
	}

	meta, err := os.Create(filepath.Join(dir, "run.toml"))
	if err != nil {
		return err
	}
	err = toml.NewEncoder(meta).Encode(ri)
	if cerr := meta.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("error writing run metadata: %w", err)
	}

	summary := utils.CSV{Key: 1}
	for _, s := range ri.Sweeps {
		summary.Rows = append(summary.Rows, []string{
			s.Name, s.Kind, strconv.Itoa(s.Points), strconv.Itoa(s.Failed), strconv.Itoa(s.Warnings),
			formatFloat(s.TSMean), formatFloat(s.TSStd), formatFloat(s.ModesMean),
		})
	}
	file, err := utils.OpenFile(false, dir, "", "summary", ".csv")
	if err != nil {
		return err
	}
	err = utils.WriteAsCSV(file, summary, []string{"sweep", "kind", "points", "failed", "warnings", "ts_mean", "ts_std", "modes_mean"})
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	return err
}
