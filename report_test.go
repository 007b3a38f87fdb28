package fontreach

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/fontreach/fontreach/wordlists"
)

func sampleReport() *Report {
	loc := NewLocation()
	loc.SetAxis("wght", 700)

	c := NewExemplarCollector(2)
	c.Push(we("quặng", -230, 1100))
	c.Push(we("plain", -10, 720))
	c.Push(we("boring", 0, 500))

	return &Report{
		Location:  loc,
		WordList:  wordlists.Define("sample", nil),
		Exemplars: c.Build(),
	}
}

func TestReportString(t *testing.T) {
	got := sampleReport().String()

	for _, want := range []string{"sample", "wght=700", "lowest:", "highest:", "quặng"} {
		if !strings.Contains(got, want) {
			t.Errorf("String() missing %q:\n%s", want, got)
		}
	}

	// Deepest first under lowest, tallest first under highest.
	if strings.Index(got, "quặng") > strings.Index(got, "plain") {
		t.Errorf("exemplar order wrong:\n%s", got)
	}
}

func TestReportStringEmpty(t *testing.T) {
	r := &Report{
		Location:  NewLocation(),
		WordList:  wordlists.Define("empty", nil),
		Exemplars: NewExemplarCollector(1).Build(),
	}
	if !r.IsEmpty() {
		t.Fatal("report with no exemplars not IsEmpty")
	}
	if got := r.String(); !strings.Contains(got, "no measurable words") {
		t.Errorf("String() = %q", got)
	}
}

func TestReportMarshalJSON(t *testing.T) {
	raw, err := json.Marshal(sampleReport())
	if err != nil {
		t.Fatal(err)
	}

	var decoded struct {
		Location string `json:"location"`
		WordList string `json:"word_list"`
		Lowest   []struct {
			Word    string  `json:"word"`
			Lowest  float64 `json:"lowest"`
			Highest float64 `json:"highest"`
		} `json:"lowest"`
		Highest []json.RawMessage `json:"highest"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("round trip: %v\n%s", err, raw)
	}

	if decoded.Location != "wght=700" {
		t.Errorf("location = %q, want wght=700", decoded.Location)
	}
	if decoded.WordList != "sample" {
		t.Errorf("word_list = %q, want sample", decoded.WordList)
	}
	if len(decoded.Lowest) != 2 || decoded.Lowest[0].Word != "quặng" {
		t.Errorf("lowest = %+v", decoded.Lowest)
	}
	if decoded.Lowest[0].Lowest != -230 || decoded.Lowest[0].Highest != 1100 {
		t.Errorf("lowest[0] extremes = %+v", decoded.Lowest[0])
	}
	if len(decoded.Highest) != 2 {
		t.Errorf("got %d highest, want 2", len(decoded.Highest))
	}
}

func TestNewReporterEmptyData(t *testing.T) {
	if _, err := NewReporter(nil); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("NewReporter(nil) = %v, want ErrEmptyFontData", err)
	}
}

func TestNewReporterGarbageData(t *testing.T) {
	if _, err := NewReporter([]byte("definitely not a font")); err == nil {
		t.Error("garbage font data did not fail")
	}
}
