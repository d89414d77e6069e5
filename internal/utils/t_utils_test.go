package utils

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func verbose() {
	chk.Verbose = true
}

func Test_grid01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("grid01. linear, logarithmic and stepped grids")

	lin := Linspace(10e3, 100e3, 10)
	chk.Int(tst, "len(lin)", len(lin), 10)
	for i, x := range lin {
		chk.Float64(tst, "lin", 1e-9, x, 10e3*float64(i+1))
	}

	log := Logspace(1e3, 1e6, 4)
	chk.Int(tst, "len(log)", len(log), 4)
	for i, x := range log {
		chk.Float64(tst, "log", 1e-6, x, math.Pow(10, float64(i+3)))
	}

	steps := Steps(1, 2, 0.25)
	chk.Int(tst, "len(steps)", len(steps), 5)
	chk.Float64(tst, "last step", 1e-15, steps[4], 2)

	chk.Int(tst, "len(Steps(1, 1.9, 0.5))", len(Steps(1, 1.9, 0.5)), 2)
	chk.Int(tst, "len(Linspace(0, 1, 0))", len(Linspace(0, 1, 0)), 0)
	chk.Int(tst, "len(Steps(2, 1, 0.5))", len(Steps(2, 1, 0.5)), 0)
	chk.Float64(tst, "Linspace(3, 9, 1)", 1e-15, Linspace(3, 9, 1)[0], 3)
}

func Test_stats01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("stats01. sums, means and ordering")

	ints := []int{3, 1, 4, 1, 5}
	chk.Int(tst, "SumSlice", SumSlice(ints), 14)
	chk.Int(tst, "Argmax", Argmax(ints), 4)
	mean, variance := MeanAndVariance([]float64{1, 2, 3, 4}, true)
	chk.Float64(tst, "mean", 1e-15, mean, 2.5)
	chk.Float64(tst, "variance", 1e-15, variance, 5./3.)
	if !math.IsNaN(Average([]float64{})) {
		tst.Errorf("average of an empty slice should be NaN\n")
	}
	if !IsNonDecreasing([]int{8, 9, 9, 10}) || IsNonDecreasing([]int{2, 1}) {
		tst.Errorf("IsNonDecreasing is wrong\n")
	}
	chk.Int(tst, "IntAbs", IntAbs(-7), 7)
	if p := Intersect([]string{"a", "b"}, []string{"c", "b"}); p == nil || *p != "b" {
		tst.Errorf("Intersect should find b\n")
	}
}

func Test_search01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("search01. ternary and binary search")

	f := func(x float64) float64 { return -(x - 1.3) * (x - 1.3) }
	x, fx := TernarySearchMaxF(f, 0, 4, 1e-9)
	chk.Float64(tst, "argmax", 1e-8, x, 1.3)
	chk.Float64(tst, "max", 1e-15, fx, 0)

	left, right := BracketMax([]float64{0, 1, 2, 3}, []float64{0, 5, 2, 1})
	chk.Float64(tst, "left", 1e-15, left, 0)
	chk.Float64(tst, "right", 1e-15, right, 2)
	left, right = BracketMax([]float64{0, 1, 2, 3}, []float64{0, 1, 2, 9})
	chk.Float64(tst, "left at end", 1e-15, left, 2)
	chk.Float64(tst, "right at end", 1e-15, right, 3)

	lo, hi := BinarySearch(func(x float64) bool { return x*x > 2 }, 0, 2, 1e-10)
	chk.Float64(tst, "sqrt2 lo", 1e-9, lo, math.Sqrt2)
	chk.Float64(tst, "sqrt2 hi", 1e-9, hi, math.Sqrt2)
}

func Test_csv01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("csv01. natural ordering of csv rows")

	data := CSV{Key: 2, Rows: [][]string{
		{"100000", "Medwin_Clay", "-40"},
		{"20000", "Medwin_Clay", "-41"},
		{"20000", "Breathing", "-42"},
		{"9000", "Medwin_Clay", "-43"},
	}}
	var buf bytes.Buffer
	if err := WriteAsCSV(&buf, data, []string{"frequency", "model", "ts"}); err != nil {
		tst.Errorf("WriteAsCSV failed: %v\n", err)
		return
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	chk.Int(tst, "lines", len(lines), 5)
	want := []string{
		"frequency,model,ts",
		"9000,Medwin_Clay,-43",
		"20000,Breathing,-42",
		"20000,Medwin_Clay,-41",
		"100000,Medwin_Clay,-40",
	}
	for i := range want {
		if lines[i] != want[i] {
			tst.Errorf("line %d: got %q, want %q\n", i, lines[i], want[i])
		}
	}
}

func Test_files01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("files01. output file naming")

	chk.String(tst, GetFilename("/tmp/sweeps/run.toml"), "run")

	dir := tst.TempDir()
	profile := filepath.Join(dir, "ctd.txt")
	if err := os.WriteFile(profile, []byte("# depth temperature\n0 12.5\n\n50 9\n"), 0640); err != nil {
		tst.Fatalf("cannot write profile: %v\n", err)
	}
	pairs, err := ReadFloatPairs(profile)
	if err != nil {
		tst.Errorf("ReadFloatPairs failed: %v\n", err)
		return
	}
	chk.Int(tst, "pairs", len(pairs), 2)
	chk.Float64(tst, "depth", 1e-15, pairs[1][0], 50)
	chk.Float64(tst, "temperature", 1e-15, pairs[0][1], 12.5)
	if err := os.WriteFile(profile, []byte("0 12.5 35\n"), 0640); err != nil {
		tst.Fatalf("cannot write profile: %v\n", err)
	}
	if _, err := ReadFloatPairs(profile); err == nil {
		tst.Errorf("three columns must be rejected\n")
	}

	f, err := OpenFile(true, dir, "ts", "shallow", ".csv")
	if err != nil {
		tst.Errorf("OpenFile failed: %v\n", err)
		return
	}
	f.Close()
	if _, err := os.Stat(filepath.Join(dir, "ts", "shallow.csv")); err != nil {
		tst.Errorf("expected file in suffix directory: %v\n", err)
	}

	f, err = OpenFile(false, filepath.Join(dir, "flat"), "ts", "shallow", ".csv")
	if err != nil {
		tst.Errorf("OpenFile failed: %v\n", err)
		return
	}
	f.Close()
	if _, err := os.Stat(filepath.Join(dir, "flat", "shallow_ts.csv")); err != nil {
		tst.Errorf("expected suffixed file: %v\n", err)
	}
}
