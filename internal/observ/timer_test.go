package observ

import (
	"strings"
	"testing"
)

func TestTimerReport(t *testing.T) {
	timer := NewTimer()
	a := timer.Begin("config")
	timer.End(a, "modwrap.toml")
	b := timer.Begin("wrap")
	timer.End(b, "")
	timer.End(99, "ignored")

	report := timer.Report()
	if len(report.Phases) != 2 {
		t.Fatalf("expected 2 phases, got %d", len(report.Phases))
	}
	if report.Phases[0].Name != "config" || report.Phases[0].Note != "modwrap.toml" {
		t.Fatalf("unexpected first phase %+v", report.Phases[0])
	}
	if report.TotalMS < report.Phases[0].DurationMS {
		t.Fatalf("total %v smaller than a phase", report.TotalMS)
	}

	summary := timer.Summary()
	for _, want := range []string{"timings:", "config", "// modwrap.toml", "total"} {
		if !strings.Contains(summary, want) {
			t.Fatalf("summary missing %q:\n%s", want, summary)
		}
	}
}

func TestNilTimer(t *testing.T) {
	var timer *Timer
	timer.End(timer.Begin("x"), "")
	if len(timer.Report().Phases) != 0 {
		t.Fatalf("nil timer must report nothing")
	}
}
