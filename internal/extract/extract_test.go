package extract

import (
	"strings"
	"testing"
)

func TestNumberNearLabel_ThousandsSeparator(t *testing.T) {
	html := "<p>citations: 1,276 total h5-index</p>"
	v, ok := NumberNearLabel(html, H5IndexLabel)
	if !ok {
		t.Fatal("expected a number near the label")
	}
	if v != 1276 {
		t.Errorf("got %v, want 1276", v)
	}
}

func TestNumberNearLabel_Decimal(t *testing.T) {
	html := "<p>Monthly Citation Metric index: 12.3</p>"
	v, ok := NumberNearLabel(html, MCMLabel)
	if !ok {
		t.Fatal("expected a number near the label")
	}
	if v != 12.3 {
		t.Errorf("got %v, want 12.3", v)
	}
}

func TestNumberNearLabel_EuropeanDecimal(t *testing.T) {
	html := "Monthly Citation Metric: 1.234,5 no total"
	v, ok := NumberNearLabel(html, MCMLabel)
	if !ok {
		t.Fatal("expected a number near the label")
	}
	if v != 1234.5 {
		t.Errorf("got %v, want 1234.5", v)
	}
}

func TestNumberNearLabel_LabelMissing(t *testing.T) {
	if _, ok := NumberNearLabel("<p>nothing relevant here</p>", H5IndexLabel); ok {
		t.Error("expected a miss when the label is absent")
	}
}

func TestNumberNearLabel_NoNumber(t *testing.T) {
	if _, ok := NumberNearLabel("Monthly Citation Metric without figures", MCMLabel); ok {
		t.Error("expected a miss when no number is in the window")
	}
}

func TestNumberNearLabel_CaseInsensitive(t *testing.T) {
	v, ok := NumberNearLabel("MONTHLY citation METRIC: 7", MCMLabel)
	if !ok || v != 7 {
		t.Errorf("got %v ok=%v, want 7 true", v, ok)
	}
}

func TestSeries_MissingPhrase(t *testing.T) {
	html := `2024-01 2024-02 <script>var data = [0.1, 0.2];</script>`
	if s := Series(html); len(s) != 0 {
		t.Errorf("got %d points, want 0 when the phrase is absent", len(s))
	}
}

func TestSeries_NoArray(t *testing.T) {
	html := `2024-01 Monthly Citation Metric but no array follows`
	if s := Series(html); len(s) != 0 {
		t.Errorf("got %d points, want 0 when no array follows", len(s))
	}
}

func TestSeries_DuplicateMonthAndExtraValue(t *testing.T) {
	html := `2024-01 2024-02 2024-01 Monthly Citation Metric [0.10, 0.20, 0.30]`
	s := Series(html)
	if len(s) != 2 {
		t.Fatalf("got %d points, want 2", len(s))
	}
	if s[0].Month != "2024-01" || s[0].Value != 0.1 {
		t.Errorf("point 0: got %+v", s[0])
	}
	if s[1].Month != "2024-02" || s[1].Value != 0.2 {
		t.Errorf("point 1: got %+v", s[1])
	}
}

func TestSeries_TruncatesToShorterList(t *testing.T) {
	html := `2024-01 2024-02 2024-03 Monthly Citation Metric [1.5, 2.5]`
	s := Series(html)
	if len(s) != 2 {
		t.Fatalf("got %d points, want min(3 months, 2 values) = 2", len(s))
	}
}

func TestSeries_RoundsToFourDecimals(t *testing.T) {
	html := `2024-01 Monthly Citation Metric [0.123456]`
	s := Series(html)
	if len(s) != 1 {
		t.Fatalf("got %d points, want 1", len(s))
	}
	if s[0].Value != 0.1235 {
		t.Errorf("got %v, want 0.1235", s[0].Value)
	}
}

func TestSeries_SkipsQuotedMonthArray(t *testing.T) {
	// The month array is quoted strings, so the first numeric array is the
	// values one.
	html := `Monthly Citation Metric <script>var m = ["2024-01","2024-02"]; var d = [0.4, 0.5];</script>`
	s := Series(html)
	if len(s) != 2 {
		t.Fatalf("got %d points, want 2", len(s))
	}
	if s[0].Value != 0.4 || s[1].Value != 0.5 {
		t.Errorf("got %+v", s)
	}
}

func TestSeries_WindowLimit(t *testing.T) {
	// The array sits beyond the 50000-byte window after the phrase.
	html := "2024-01 Monthly Citation Metric " + strings.Repeat("x", seriesWindow) + " [0.1]"
	if s := Series(html); len(s) != 0 {
		t.Errorf("got %d points, want 0 when the array is outside the window", len(s))
	}
}
