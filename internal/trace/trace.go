// Package trace runs the engine headless with a scripted pointer and records
// per-frame metrics.
package trace

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"iris/internal/core"
	"iris/internal/engine"
	"iris/internal/mathx"
	prng "iris/pkg/core"
)

// Metric names recorded for every frame.
const (
	MetricSpread   = "spread"   // mean particle distance from the center
	MetricGlow     = "glow"     // mean glow
	MetricBounce   = "bounce"   // largest click-bounce offset
	MetricWave     = "wave"     // ripple wavefront radius, 0 when idle
	MetricCore     = "core"     // core intensity from the pointer
	MetricProgress = "progress" // stage progress
)

// Metrics lists every recorded metric in report order.
var Metrics = []string{MetricProgress, MetricSpread, MetricGlow, MetricBounce, MetricWave, MetricCore}

// Scenario is one scripted run.
type Scenario struct {
	Mobile   bool
	Stages   []string
	Seed     int64
	Frames   int
	FPS      int
	Progress float64 // negative sweeps from 0 to the last stage
	Clicks   int
	Width    float64
	Height   float64
}

// DefaultScenario returns a ten second desktop sweep.
func DefaultScenario() Scenario {
	return Scenario{Seed: 42, Frames: 600, FPS: 60, Progress: -1, Clicks: 3, Width: 960, Height: 720}
}

// Name labels the scenario in reports.
func (s Scenario) Name() string {
	profile := "desktop"
	if s.Mobile {
		profile = "mobile"
	}
	return fmt.Sprintf("%s/seed=%d", profile, s.Seed)
}

// Result holds the series of one run.
type Result struct {
	Scenario Scenario
	Series   map[string][]float64
	Clicks   []int // frames a click landed on
}

// Stats summarises one series.
type Stats struct {
	Min, Mean, Max float64
}

// Stats returns the summary of metric, zero when it was not recorded.
func (r Result) Stats(metric string) Stats {
	v := r.Series[metric]
	if len(v) == 0 {
		return Stats{}
	}
	s := Stats{Min: math.Inf(1), Max: math.Inf(-1)}
	sum := 0.0
	for _, x := range v {
		s.Min = math.Min(s.Min, x)
		s.Max = math.Max(s.Max, x)
		sum += x
	}
	s.Mean = sum / float64(len(v))
	return s
}

// ValidMetric reports whether name is a recorded metric.
func ValidMetric(name string) bool {
	for _, m := range Metrics {
		if m == name {
			return true
		}
	}
	return false
}

// Run executes s.
func Run(s Scenario) (Result, error) {
	if s.Frames <= 0 {
		return Result{}, fmt.Errorf("trace: frames must be positive, got %d", s.Frames)
	}
	if s.FPS <= 0 {
		s.FPS = 60
	}
	cfg := engine.DefaultConfig()
	cfg.Mobile = s.Mobile
	cfg.Trails = !s.Mobile
	if len(s.Stages) > 0 {
		cfg.Stages = s.Stages
	}
	e, err := engine.New(cfg)
	if err != nil {
		return Result{}, fmt.Errorf("trace: %w", err)
	}
	center := core.Point{X: s.Width / 2, Y: s.Height / 2}
	e.SetCenter(center)

	rng := prng.NewRNG(s.Seed)
	clickAt := rng.Picks(s.Frames, s.Clicks)
	// Lissajous path around the ring with seeded proportions and phase.
	ax := rng.Float64Range(0.8, 1.4) * engine.DefaultConfig().BaseRadius
	ay := rng.Float64Range(0.8, 1.4) * engine.DefaultConfig().BaseRadius
	fx := rng.Float64Range(0.1, 0.3)
	fy := rng.Float64Range(0.1, 0.3)
	phase := rng.Float64Range(0, mathx.TwoPi)

	res := Result{Scenario: s, Series: make(map[string][]float64, len(Metrics))}
	for _, m := range Metrics {
		res.Series[m] = make([]float64, 0, s.Frames)
	}

	step := core.NewFixedStep(s.FPS).Step()
	next := 0
	for frame := 0; frame < s.Frames; frame++ {
		now := float64(frame) * step
		if s.Progress < 0 {
			denom := math.Max(float64(s.Frames-1), 1)
			e.SetProgress(float64(frame) / denom * e.MaxProgress())
		} else {
			e.SetProgress(s.Progress)
		}
		pointer := core.Point{
			X: rng.Jitter(center.X+ax*math.Cos(mathx.TwoPi*fx*now+phase), 2),
			Y: rng.Jitter(center.Y+ay*math.Sin(mathx.TwoPi*fy*now), 2),
		}
		e.SetPointer(pointer)
		if next < len(clickAt) && clickAt[next] == frame {
			e.Click(pointer, now)
			res.Clicks = append(res.Clicks, frame)
			next++
		}

		f := e.Frame(now)
		spread, glow, bounce := 0.0, 0.0, 0.0
		for i, p := range f.Particles {
			spread += mathx.Distance(center.X, center.Y, p.X, p.Y)
			glow += p.Glow
			bounce = math.Max(bounce, e.ClickOffset(i))
		}
		n := float64(len(f.Particles))
		res.Series[MetricProgress] = append(res.Series[MetricProgress], f.Context.ScrollProgress)
		res.Series[MetricSpread] = append(res.Series[MetricSpread], spread/n)
		res.Series[MetricGlow] = append(res.Series[MetricGlow], glow/n)
		res.Series[MetricBounce] = append(res.Series[MetricBounce], bounce)
		res.Series[MetricWave] = append(res.Series[MetricWave], e.Wave().Radius(now))
		res.Series[MetricCore] = append(res.Series[MetricCore], f.CoreIntensity)
	}
	return res, nil
}

// Sweep runs every scenario on a pool of workers and returns the results in
// scenario order. Failed runs are joined into one error.
func Sweep(scenarios []Scenario, workers int) ([]Result, error) {
	if workers <= 0 {
		workers = 1
	}
	type job struct {
		idx int
		s   Scenario
	}
	type outcome struct {
		idx int
		res Result
		err error
	}
	jobs := make(chan job)
	outcomes := make(chan outcome)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				res, err := Run(j.s)
				outcomes <- outcome{idx: j.idx, res: res, err: err}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(outcomes)
	}()

	go func() {
		for i, s := range scenarios {
			jobs <- job{idx: i, s: s}
		}
		close(jobs)
	}()

	results := make([]Result, len(scenarios))
	failed := make([]error, len(scenarios))
	for o := range outcomes {
		if o.err != nil {
			failed[o.idx] = fmt.Errorf("%s: %w", scenarios[o.idx].Name(), o.err)
			continue
		}
		results[o.idx] = o.res
	}
	if err := errors.Join(failed...); err != nil {
		return nil, err
	}
	return results, nil
}
