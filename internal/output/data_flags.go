package output

import (
	"errors"
	"flag"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/wildstyl3r/seaecho/internal/config"
	"github.com/wildstyl3r/seaecho/internal/sweep"
	"github.com/wildstyl3r/seaecho/internal/utils"
)

type DataItem struct {
	saveFlag   *bool
	fileSuffix string
}

// SweepDataItem is one output file: key columns followed by columnNames.
type SweepDataItem struct {
	DataItem
	columnNames func(units []string) []string
	values      func(r sweep.Row, units []string) []string
}

type DataFlags struct {
	all        *bool
	items      map[string]SweepDataItem
	outputPath string
}

func format(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func frequencyIn(units []string) string {
	return "(" + config.UnitName(config.Frequency, units) + ")"
}

func NewDataFlags(fs *flag.FlagSet) *DataFlags {
	return &DataFlags{
		all: fs.Bool("all", false, "save every available table"),
		items: map[string]SweepDataItem{
			"Target strength": {
				DataItem: DataItem{
					saveFlag:   fs.Bool("ts", true, "save target strength"),
					fileSuffix: "ts",
				},
				columnNames: func(units []string) []string {
					return []string{"ka", "TS (dB re 1 m^2)"}
				},
				values: func(r sweep.Row, units []string) []string {
					if r.Err != nil {
						return []string{"", ""}
					}
					return []string{format(r.Record.Ka), format(r.Record.TS)}
				},
			},
			"Damping": {
				DataItem: DataItem{
					saveFlag:   fs.Bool("d", false, "save resonance frequency and damping terms of bubble models"),
					fileSuffix: "damping",
				},
				columnNames: func(units []string) []string {
					return []string{"resonance " + frequencyIn(units), "radiation", "thermal", "viscous", "total"}
				},
				values: func(r sweep.Row, units []string) []string {
					if r.Err != nil {
						return []string{"", "", "", "", ""}
					}
					d := r.Record.Damping
					return []string{
						format(config.FromSI(r.Record.ResonanceFrequency, config.Frequency, units)),
						format(d.Radiation), format(d.Thermal), format(d.Viscous), format(d.Total()),
					}
				},
			},
			"Absorption": {
				DataItem: DataItem{
					saveFlag:   fs.Bool("a", false, "save seawater absorption"),
					fileSuffix: "absorption",
				},
				columnNames: func(units []string) []string {
					return []string{"alpha (dB/km)"}
				},
				values: func(r sweep.Row, units []string) []string {
					return []string{format(r.Absorption)}
				},
			},
			"Diagnostics": {
				DataItem: DataItem{
					saveFlag:   fs.Bool("diag", false, "save modes used, working precision and warnings"),
					fileSuffix: "diag",
				},
				columnNames: func(units []string) []string {
					return []string{"modes", "converged", "precision (bits)", "warnings", "error"}
				},
				values: func(r sweep.Row, units []string) []string {
					var warnings []string
					for _, w := range r.Record.Warnings {
						warnings = append(warnings, w.Error())
					}
					failure := ""
					if r.Err != nil {
						failure = r.Err.Error()
					}
					return []string{
						strconv.Itoa(r.Record.ModesUsed),
						strconv.FormatBool(r.Record.Converged),
						strconv.FormatUint(uint64(r.Record.Precision), 10),
						strings.Join(warnings, "; "),
						failure,
					}
				},
			},
		},
	}
}

func (df *DataFlags) SetOutputPath(path string) {
	df.outputPath = path
}

func (df *DataFlags) GetOutputPath() string {
	return df.outputPath
}

// Enabled lists the selected tables by name.
func (df *DataFlags) Enabled() []string {
	var names []string
	for name, item := range df.items {
		if *item.saveFlag || *df.all {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

func keyColumns(units []string) []string {
	return []string{
		"point",
		"frequency " + frequencyIn(units),
		"radius (" + config.UnitName(config.Length, units) + ")",
		"model",
	}
}

// Save writes one CSV file per selected table and returns their paths.
func (df *DataFlags) Save(plan sweep.Plan, rows []sweep.Row) (files []string, err error) {
	units := plan.Params.OutputUnits()
	models := max(len(rows)/max(len(plan.Points), 1), 1)
	var problems []error
	for _, name := range df.Enabled() {
		item := df.items[name]
		data := utils.CSV{Key: 1}
		for i, r := range rows {
			row := []string{
				strconv.Itoa(i/models + 1),
				format(config.FromSI(r.Frequency, config.Frequency, units)),
				format(config.FromSI(r.Size, config.Length, units)),
				r.Model,
			}
			data.Rows = append(data.Rows, append(row, item.values(r, units)...))
		}

		file, err := utils.OpenFile(plan.Params.MakeDir, df.outputPath, item.fileSuffix, plan.Name, ".csv")
		if err != nil {
			problems = append(problems, fmt.Errorf("unable to save %s: %w", name, err))
			continue
		}
		err = utils.WriteAsCSV(file, data, append(keyColumns(units), item.columnNames(units)...))
		if cerr := file.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			problems = append(problems, fmt.Errorf("unable to save %s: %w", name, err))
			continue
		}
		files = append(files, file.Name())
	}
	return files, errors.Join(problems...)
}
