package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"strings"

	"iris/internal/engine"
	"iris/internal/trace"
)

func main() {
	base := trace.DefaultScenario()
	frames := flag.Int("frames", base.Frames, "frames to simulate per run")
	fps := flag.Int("fps", base.FPS, "frames per second of the scripted clock")
	progress := flag.Float64("progress", base.Progress, "fixed stage progress; negative sweeps across all stages")
	seed := flag.Int64("seed", base.Seed, "seed of the first run's scripted pointer")
	runs := flag.Int("runs", 1, "runs per profile; run i uses seed+i")
	clicks := flag.Int("clicks", base.Clicks, "clicks scripted per run")
	metric := flag.String("metric", trace.MetricSpread, "metric to plot: "+strings.Join(trace.Metrics, ", "))
	profiles := flag.String("profiles", "desktop", "comma separated profiles: desktop, mobile")
	stageList := flag.String("stages", "", "comma separated stage sequence (default sequence when empty)")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	if !trace.ValidMetric(*metric) {
		log.Fatalf("unknown metric %q (available: %s)", *metric, strings.Join(trace.Metrics, ", "))
	}

	var scenarios []trace.Scenario
	for _, profile := range strings.Split(*profiles, ",") {
		profile = strings.TrimSpace(profile)
		var mobile bool
		switch profile {
		case "desktop":
		case "mobile":
			mobile = true
		default:
			log.Fatalf("unknown profile %q", profile)
		}
		for i := 0; i < max(*runs, 1); i++ {
			s := base
			s.Mobile = mobile
			s.Stages = engine.ParseStages(*stageList)
			s.Seed = *seed + int64(i)
			s.Frames = *frames
			s.FPS = *fps
			s.Progress = *progress
			s.Clicks = *clicks
			scenarios = append(scenarios, s)
		}
	}
	if len(scenarios) == 0 {
		log.Fatalf("no profiles selected")
	}

	log.Printf("tracing %d run(s) on %d worker(s)", len(scenarios), *workers)
	results, err := trace.Sweep(scenarios, *workers)
	if err != nil {
		log.Fatalf("trace failed: %v", err)
	}
	fmt.Print(trace.Report(results, trace.ReportOptions{Metric: *metric}))
}
