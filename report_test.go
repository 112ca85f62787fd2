package ringdown

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"testing"
)

func TestSummarize_GW150914(t *testing.T) {
	report, err := SummarizeName(Builtin(), "GW150914")
	if err != nil {
		t.Fatalf("SummarizeName failed: %v", err)
	}

	if report.Event != "GW150914" {
		t.Errorf("Event = %q, want GW150914", report.Event)
	}
	if report.TauMS != 4.0 {
		t.Errorf("TauMS = %v, want 4.0", report.TauMS)
	}
	if report.FreqHz != 251.0 {
		t.Errorf("FreqHz = %v, want 251.0", report.FreqHz)
	}
	for field, v := range map[string]float64{
		"DiffusivityM2PerS": report.DiffusivityM2PerS,
		"SpeedMPerS":        report.SpeedMPerS,
		"WavelengthM":       report.WavelengthM,
	} {
		if v <= 0 || math.IsInf(v, 0) || math.IsNaN(v) {
			t.Errorf("%s = %v, want finite positive", field, v)
		}
	}
}

func TestReportText_Labels(t *testing.T) {
	report, err := SummarizeName(Builtin(), "GW150914")
	if err != nil {
		t.Fatalf("SummarizeName failed: %v", err)
	}

	text := report.Text()
	for _, want := range []string{
		"Event: GW150914",
		"Reference: Abbott et al. (2016, PRL 116, 061102)",
		"Tau_220: 4.000 ms",
		"Freq_220: 251.0 Hz",
		"Diffusivity (D = c^2 tau):",
		"m^2/s",
		"Characteristic speed:",
		"m/s",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("Text() missing %q in:\n%s", want, text)
		}
	}
}

// TestReportJSON_RoundTrip verifies that the JSON mode carries exactly the
// numbers the text mode displays: both render the same Report.
func TestReportJSON_RoundTrip(t *testing.T) {
	report, err := SummarizeName(Builtin(), "GW150914")
	if err != nil {
		t.Fatalf("SummarizeName failed: %v", err)
	}

	data, err := json.Marshal(report)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var decoded Report
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if decoded != report {
		t.Errorf("round-trip mismatch:\n got %+v\nwant %+v", decoded, report)
	}

	// Flat mapping with the expected field names.
	var flat map[string]any
	if err := json.Unmarshal(data, &flat); err != nil {
		t.Fatalf("Unmarshal to map failed: %v", err)
	}
	for _, key := range []string{
		"event", "tau_ms", "freq_hz",
		"diffusivity_m2_per_s", "speed_m_per_s", "wavelength_m", "reference",
	} {
		if _, ok := flat[key]; !ok {
			t.Errorf("JSON missing field %q: %s", key, data)
		}
	}

	// Text and JSON agree on the displayed magnitudes.
	text := report.Text()
	if want := fmt.Sprintf("%.3e", flat["diffusivity_m2_per_s"].(float64)); !strings.Contains(text, want) {
		t.Errorf("text diffusivity does not match JSON value %s:\n%s", want, text)
	}
}

func TestSummarizeAll_FailsAtomically(t *testing.T) {
	good, err := Builtin().Resolve("GW150914")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	bad := Event{Name: "broken", Tau: 0, Freq: hz(251)}

	reports, err := SummarizeAll([]Event{good, bad})
	if err == nil {
		t.Fatal("SummarizeAll succeeded, want error")
	}
	if reports != nil {
		t.Errorf("SummarizeAll returned partial results: %v", reports)
	}
}

func TestSummarizeName_Unknown(t *testing.T) {
	_, err := SummarizeName(Builtin(), "GW_NONEXISTENT")
	if err == nil {
		t.Fatal("SummarizeName succeeded, want error")
	}
}
