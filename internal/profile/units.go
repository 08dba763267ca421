package profile

import (
	"math"
	"strconv"
	"strings"
)

const (
	cmPerInch   = 2.54
	inchPerFoot = 12
	lbsPerKg    = 2.205
)

// FeetInchesToCm converts a feet/inches pair typed into the form into whole
// centimeters. Unparsable parts count as zero.
func FeetInchesToCm(feet, inches string) float64 {
	if strings.TrimSpace(feet) == "" && strings.TrimSpace(inches) == "" {
		return 0
	}
	total := parseLeadingInt(feet)*inchPerFoot + parseLeadingInt(inches)
	return math.Round(float64(total) * cmPerInch)
}

// LbsToKg converts a typed pound value into whole kilograms.
func LbsToKg(pounds string) float64 {
	if strings.TrimSpace(pounds) == "" {
		return 0
	}
	return math.Round(parseLeadingFloat(pounds) / lbsPerKg)
}

// KgToLbs is the display inverse of LbsToKg.
func KgToLbs(kg float64) float64 {
	if kg <= 0 {
		return 0
	}
	return math.Round(kg * lbsPerKg)
}

// CmToFeetInches splits a metric height into whole feet and remaining inches
// for the imperial height inputs.
func CmToFeetInches(cm float64) (feet, inches int) {
	if cm <= 0 {
		return 0, 0
	}
	totalInches := int(math.Round(cm / cmPerInch))
	return totalInches / inchPerFoot, totalInches % inchPerFoot
}

// parseLeadingInt reads an optional sign and the leading run of digits,
// ignoring anything after it ("5ft" -> 5, "5.9" -> 5, "abc" -> 0).
func parseLeadingInt(value string) int {
	s := strings.TrimSpace(value)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

// parseLeadingFloat is the decimal counterpart of parseLeadingInt
// ("150.5 lbs" -> 150.5).
func parseLeadingFloat(value string) float64 {
	s := strings.TrimSpace(value)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := 0
	seenDot := false
	for end < len(s) {
		c := s[end]
		if c >= '0' && c <= '9' {
			digits++
			end++
			continue
		}
		if c == '.' && !seenDot {
			seenDot = true
			end++
			continue
		}
		break
	}
	if digits == 0 {
		return 0
	}
	f, err := strconv.ParseFloat(strings.TrimSuffix(s[:end], "."), 64)
	if err != nil {
		return 0
	}
	return f
}
