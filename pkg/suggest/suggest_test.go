package suggest

import (
	"strings"
	"testing"

	"igpulse/models"
)

func strPtr(s string) *string   { return &s }
func f64Ptr(v float64) *float64 { return &v }

func TestGenerate_FullReport(t *testing.T) {
	report := models.AggregateReport{
		MostCommonMood:   strPtr("comedy"),
		TopHashtags:      []string{"lol", "memes"},
		AverageHookRatio: f64Ptr(0.75),
	}

	lines := Generate(report)
	if len(lines) != 5 {
		t.Fatalf("len(lines) = %d, want 5: %v", len(lines), lines)
	}
	if !strings.Contains(lines[0], "comedy") {
		t.Errorf("lines[0] = %q, want mood line", lines[0])
	}
	if !strings.Contains(lines[1], "lol, memes") {
		t.Errorf("lines[1] = %q, want hashtag line", lines[1])
	}
	if !strings.Contains(lines[2], "0.75") {
		t.Errorf("lines[2] = %q, want hook ratio line", lines[2])
	}
}

func TestGenerate_LowHookWarning(t *testing.T) {
	report := models.AggregateReport{AverageHookRatio: f64Ptr(0.1)}

	lines := Generate(report)
	found := false
	for _, l := range lines {
		if strings.Contains(l, "stronger hooks") {
			found = true
		}
	}
	if !found {
		t.Errorf("no hook warning for ratio below threshold: %v", lines)
	}
}

func TestGenerate_NoWarningAtThreshold(t *testing.T) {
	report := models.AggregateReport{AverageHookRatio: f64Ptr(0.2)}

	for _, l := range Generate(report) {
		if strings.Contains(l, "stronger hooks") {
			t.Errorf("hook warning emitted at threshold: %q", l)
		}
	}
}

func TestGenerate_StaticTipsAlwaysPresent(t *testing.T) {
	lines := Generate(models.AggregateReport{})
	if len(lines) != 2 {
		t.Fatalf("len(lines) = %d, want only the two static tips: %v", len(lines), lines)
	}
	if !strings.Contains(lines[0], "most active") {
		t.Errorf("lines[0] = %q, want posting-time tip", lines[0])
	}
	if !strings.Contains(lines[1], "dominant mood") {
		t.Errorf("lines[1] = %q, want styling tip", lines[1])
	}
}
