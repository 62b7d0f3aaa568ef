package trace

import (
	"errors"
	"strings"
	"testing"

	"iris/internal/engine"
)

func shortScenario(mobile bool) Scenario {
	s := DefaultScenario()
	s.Mobile = mobile
	s.Frames = 120
	return s
}

func TestRunRecordsEverySeries(t *testing.T) {
	res, err := Run(shortScenario(false))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for _, m := range Metrics {
		if n := len(res.Series[m]); n != 120 {
			t.Fatalf("%s has %d samples", m, n)
		}
	}
	if len(res.Clicks) != 3 {
		t.Fatalf("clicks %v", res.Clicks)
	}
	p := res.Series[MetricProgress]
	if p[0] != 0 || p[len(p)-1] != 3 {
		t.Fatalf("sweep ran %v..%v", p[0], p[len(p)-1])
	}
	if st := res.Stats(MetricSpread); st.Min <= 0 || st.Max < st.Mean || st.Mean < st.Min {
		t.Fatalf("spread stats %+v", st)
	}
}

func TestRunIsDeterministic(t *testing.T) {
	a, err := Run(shortScenario(true))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	b, _ := Run(shortScenario(true))
	for _, m := range Metrics {
		for i := range a.Series[m] {
			if a.Series[m][i] != b.Series[m][i] {
				t.Fatalf("%s differs at frame %d", m, i)
			}
		}
	}
}

func TestFixedProgress(t *testing.T) {
	s := shortScenario(false)
	s.Progress = 1
	res, err := Run(s)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if st := res.Stats(MetricProgress); st.Min != 1 || st.Max != 1 {
		t.Fatalf("progress %+v", st)
	}
}

func TestSweepKeepsOrderAndReportsErrors(t *testing.T) {
	scenarios := []Scenario{shortScenario(false), shortScenario(true), shortScenario(false)}
	scenarios[2].Seed = 9
	results, err := Sweep(scenarios, 2)
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	for i, r := range results {
		if r.Scenario.Name() != scenarios[i].Name() {
			t.Fatalf("result %d is %s", i, r.Scenario.Name())
		}
	}

	bad := shortScenario(false)
	bad.Stages = []string{"spiral"}
	if _, err := Sweep([]Scenario{bad}, 1); !errors.Is(err, engine.ErrUnknownStage) {
		t.Fatalf("Sweep error %v", err)
	}
}

func TestReport(t *testing.T) {
	res, err := Run(shortScenario(false))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	out := Report([]Result{res}, ReportOptions{Metric: MetricGlow})
	for _, want := range []string{"desktop/seed=42", "spread", "glow"} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}
	if !ValidMetric(MetricWave) || ValidMetric("speed") {
		t.Fatal("ValidMetric")
	}
}
