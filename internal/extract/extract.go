// Package extract implements the text heuristics that pull metrics out of a
// Scilit source page. The page is unstructured from our point of view: the
// regexes below are the contract with the upstream front-end, not a grammar,
// so they must not be "improved" into structured parsing.
package extract

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/peas8810/ojs/internal/models"
)

// Labels the scalar heuristic is applied to.
var (
	H5IndexLabel = regexp.MustCompile(`(?i)\bh5[-\s]?index\b`)
	MCMLabel     = regexp.MustCompile(`(?i)Monthly\s+Citation\s+Metric`)
)

var (
	// Numbers like 12, 12.3 and 1,276.
	reNumber = regexp.MustCompile(`\d{1,3}(?:[.,]\d{3})*(?:[.,]\d+)?`)
	reMonth  = regexp.MustCompile(`20\d{2}-\d{2}`)
	// A JS-style array of plain decimals: [0.1, 0.2, ...]
	reArray = regexp.MustCompile(`\[(?:\s*\d+(?:\.\d+)?\s*,?)+\s*\]`)
	reValue = regexp.MustCompile(`\d+(?:\.\d+)?`)
)

const (
	labelWindowBefore = 200
	labelWindowAfter  = 400
	seriesWindow      = 50000
)

// NumberNearLabel locates the first match of label in html and returns the
// first number found in a small window around it. ok is false when the label
// is absent or no parsable number follows; a miss is not an error.
func NumberNearLabel(html string, label *regexp.Regexp) (float64, bool) {
	loc := label.FindStringIndex(html)
	if loc == nil {
		return 0, false
	}

	start := loc[0] - labelWindowBefore
	if start < 0 {
		start = 0
	}
	end := loc[1] + labelWindowAfter
	if end > len(html) {
		end = len(html)
	}

	raw := reNumber.FindString(html[start:end])
	if raw == "" {
		return 0, false
	}
	return normalizeNumber(raw)
}

// normalizeNumber parses a matched number token. Separator groups of exactly
// three digits are thousands groups ("1,276" is 1276); a shorter or longer
// trailing group is the decimal part ("12.3" is 12.3, "1.234,5" is 1234.5).
func normalizeNumber(raw string) (float64, bool) {
	digits := raw
	frac := ""
	if sep := strings.LastIndexAny(raw, ".,"); sep != -1 && len(raw)-sep-1 != 3 {
		digits, frac = raw[:sep], raw[sep+1:]
	}
	digits = strings.NewReplacer(".", "", ",", "").Replace(digits)
	if frac != "" {
		digits += "." + frac
	}

	v, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Series extracts the Monthly Citation Metric time series. Months are every
// distinct YYYY-MM token in the page, in first-seen order; values come from
// the first bracketed numeric array within a window after the "Monthly
// Citation Metric" phrase. The i-th month is paired with the i-th value and
// the longer list is truncated, with no further alignment check.
func Series(html string) []models.SeriesPoint {
	months := distinctMonths(html)

	loc := MCMLabel.FindStringIndex(html)
	if loc == nil {
		return nil
	}
	end := loc[0] + seriesWindow
	if end > len(html) {
		end = len(html)
	}

	arr := reArray.FindString(html[loc[0]:end])
	if arr == "" {
		return nil
	}

	var values []float64
	for _, tok := range reValue.FindAllString(arr, -1) {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			continue
		}
		values = append(values, v)
	}

	n := len(months)
	if len(values) < n {
		n = len(values)
	}
	if n == 0 {
		return nil
	}

	series := make([]models.SeriesPoint, 0, n)
	for i := 0; i < n; i++ {
		series = append(series, models.SeriesPoint{
			Month: months[i],
			Value: math.Round(values[i]*10000) / 10000,
		})
	}
	return series
}

func distinctMonths(html string) []string {
	seen := make(map[string]bool)
	var months []string
	for _, m := range reMonth.FindAllString(html, -1) {
		if !seen[m] {
			seen[m] = true
			months = append(months, m)
		}
	}
	return months
}
