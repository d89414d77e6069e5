package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"sort"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/facette/natsort"

	"github.com/wildstyl3r/seaecho/internal/config"
	"github.com/wildstyl3r/seaecho/internal/engine"
	"github.com/wildstyl3r/seaecho/internal/output"
	"github.com/wildstyl3r/seaecho/internal/sweep"
)

func main() {
	log.SetPrefix("seaecho: ")
	log.SetFlags(0)

	dataFlags := output.NewDataFlags(flag.CommandLine)
	var configFileNamePointer = flag.String("input", "seaecho", "sweep configuration in toml format")
	var verbose = flag.Bool("v", false, "print environment, peaks and warnings")
	var threads = flag.Int("threads", runtime.NumCPU(), "parallel evaluations")
	var metricsFile = flag.String("metrics", "", "write Prometheus textfile metrics to this file")
	var listModels = flag.Bool("models", false, "list bubble models and exit")
	flag.Parse()

	if *listModels {
		for _, id := range engine.Models() {
			fmt.Println(id)
		}
		return
	}

	startTime := time.Now()
	fmt.Printf("Current time: %s\n", startTime.UTC().Format(time.UnixDate))

	cfg, meta, err := config.LoadConfig(*configFileNamePointer)
	if err != nil {
		log.Fatalln(err)
	}
	sweeps, err := cfg.Unified(&meta, *verbose, *threads)
	if err != nil {
		log.Fatalln(err)
	}
	dataFlags.SetOutputPath(cfg.OutputDir)

	names := make([]string, 0, len(sweeps))
	for name := range sweeps {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return natsort.Compare(names[i], names[j])
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	run := output.NewRunInfo(*configFileNamePointer, *threads)
	metrics := output.NewMetrics()
	for _, name := range names {
		sp := sweeps[name]
		plan, err := sweep.NewPlan(name, sp)
		if err != nil {
			log.Println("skipping sweep:", err)
			continue
		}
		fmt.Printf("\n%s: %s sweep, %d evaluations\n", name, plan.Kind, plan.Jobs())
		if plan.EnvWarning != nil {
			log.Printf("WARN %s: %v", name, plan.EnvWarning)
		}
		if sp.Verbose() {
			env := plan.Env
			fmt.Printf("density %.3f kg/m^3, sound speed %.2f m/s, ambient pressure %sPa\n",
				env.Density, env.SoundSpeed, humanize.SIWithDigits(env.AmbientPressure, 4, ""))
		}

		sweepStart := time.Now()
		rows, err := sweep.Run(ctx, plan, sp.Threads(), os.Stderr)
		if err != nil {
			log.Fatalln(err)
		}
		metrics.Observe(name, rows, time.Since(sweepStart).Seconds())

		for _, r := range rows {
			if r.Err != nil {
				log.Printf("WARN %s at %sHz: %v", name, humanize.SIWithDigits(r.Frequency, 3, ""), r.Err)
			} else if sp.Verbose() {
				for _, w := range r.Record.Warnings {
					log.Printf("WARN %s at %sHz: %v", name, humanize.SIWithDigits(r.Frequency, 3, ""), w)
				}
			}
		}

		var peaks []sweep.Peak
		if sp.FindPeak {
			peaks = sweep.FindPeaks(plan, rows)
			for _, p := range peaks {
				unit := "Hz"
				if plan.Params.Sweep == "size" {
					unit = "m"
				}
				fmt.Printf("%s peak: %.2f dB at %s%s", p.Model, p.TS, humanize.SIWithDigits(p.At, 4, ""), unit)
				if w := p.Width(); w > 0 {
					fmt.Printf(", -3 dB width %s%s", humanize.SIWithDigits(w, 3, ""), unit)
				}
				fmt.Println()
			}
		}

		files, err := dataFlags.Save(plan, rows)
		if err != nil {
			log.Println(err)
		}
		if sp.Verbose() {
			for _, f := range files {
				fmt.Println(f + " saved")
			}
		}
		run.Sweeps = append(run.Sweeps, output.Summarise(plan, rows, files, peaks))
	}

	if err := run.Finish(dataFlags.GetOutputPath()); err != nil {
		log.Fatalln("error writing run summary:", err)
	}
	if *metricsFile != "" {
		if err := metrics.Write(*metricsFile); err != nil {
			log.Fatalln("error writing metrics:", err)
		}
	}
	fmt.Printf("Elapsed time: %v\n", time.Since(startTime))
}
