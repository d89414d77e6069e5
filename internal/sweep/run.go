package sweep

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
	"golang.org/x/sync/errgroup"

	"github.com/wildstyl3r/seaecho/internal/engine"
)

// Row is one evaluated (point, model) pair. Err is set when the point failed;
// the other points of the sweep are still evaluated.
type Row struct {
	Point
	Model      string
	Absorption float64 // [dB/km], NaN outside the formula's range
	Record     engine.Record
	Err        error
}

// progress prints "\rDone:[n/total]" to a terminal and nothing otherwise.
type progress struct {
	mu    sync.Mutex
	w     io.Writer
	done  int
	total int
}

func newProgress(w io.Writer, total int) *progress {
	f, ok := w.(*os.File)
	if !ok || !(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		w = nil
	}
	p := &progress{w: w, total: total}
	p.print()
	return p
}

func (p *progress) print() {
	if p.w != nil {
		fmt.Fprintf(p.w, "\rDone:[%d/%d]", p.done, p.total)
	}
}

func (p *progress) step() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.done++
	p.print()
}

func (p *progress) finish() {
	if p.w != nil {
		fmt.Fprintln(p.w)
	}
}

// Run evaluates every job of plan on at most threads goroutines. Rows come back in
// plan order whatever the scheduling. The error is non-nil only when ctx ends.
func Run(ctx context.Context, plan Plan, threads int, status io.Writer) ([]Row, error) {
	models := []string{engine.SphereModel}
	if plan.Kind == engine.BubbleKind {
		models = models[:0]
		for _, m := range plan.Models {
			models = append(models, string(m))
		}
	}

	rows := make([]Row, len(plan.Points)*len(models))
	bar := newProgress(status, len(rows))
	defer bar.finish()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(threads, 1))
	for i, point := range plan.Points {
		for j, model := range models {
			slot := &rows[i*len(models)+j]
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				*slot = evaluate(plan, point, model)
				bar.step()
				return nil
			})
		}
	}
	return rows, g.Wait()
}

func evaluate(plan Plan, point Point, model string) Row {
	row := Row{Point: point, Model: model, Absorption: math.NaN()}
	if alpha, err := plan.Env.Absorption(point.Frequency); err == nil {
		row.Absorption = alpha
	}
	row.Record, row.Err = evaluateRecord(plan, point, model)
	return row
}
