package provider

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ParsedDuration is a run time broken down for display. The zero value is
// DurationUnavailable.
type ParsedDuration struct {
	Hours        uint `json:"hours" yaml:"hours"`
	Minutes      uint `json:"minutes" yaml:"minutes"`
	Seconds      uint `json:"seconds" yaml:"seconds"`
	Milliseconds uint `json:"milliseconds" yaml:"milliseconds"`
	Available    bool `json:"available" yaml:"available"`
}

// DurationUnavailable marks a duration without an hour/minute/second form.
var DurationUnavailable = ParsedDuration{}

func (d ParsedDuration) String() string {
	if !d.Available {
		return "No time provided"
	}
	return fmt.Sprintf("%02d:%02d:%02d.%03d", d.Hours, d.Minutes, d.Seconds, d.Milliseconds)
}

// P[nY][nM][nW][nD][T[nH][nM][n[.f]S]]
var isoDuration = regexp.MustCompile(
	`^P(?:(\d+)Y)?(?:(\d+)M)?(?:(\d+)W)?(?:(\d+)D)?(T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)(?:[.,](\d+))?S)?)?$`,
)

const (
	msPerSecond = 1000
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
	hoursPerDay = 24
)

// ParseDuration parses an ISO-8601 duration such as "PT1H2M3.004S".
//
// A duration with no time designator ("P1Y", "P3D") yields
// DurationUnavailable, as does one carrying years or months, whose length is
// not fixed. Weeks and days next to a time part are folded into hours.
// Malformed input returns ErrDurationParse.
func ParseDuration(raw string) (ParsedDuration, error) {
	m := isoDuration.FindStringSubmatch(raw)
	if m == nil || raw == "P" {
		return DurationUnavailable, fmt.Errorf("%w: %q", ErrDurationParse, raw)
	}
	hasTime := m[5] != ""
	if hasTime && m[6] == "" && m[7] == "" && m[8] == "" {
		return DurationUnavailable, fmt.Errorf("%w: %q has an empty time part", ErrDurationParse, raw)
	}

	var f [9]uint64
	for i := 1; i <= 8; i++ {
		if i == 5 || m[i] == "" {
			continue
		}
		n, err := strconv.ParseUint(m[i], 10, 32)
		if err != nil {
			return DurationUnavailable, fmt.Errorf("%w: %q: %v", ErrDurationParse, raw, err)
		}
		f[i] = n
	}

	if !hasTime || f[1] != 0 || f[2] != 0 {
		return DurationUnavailable, nil
	}

	total := ((f[3]*7+f[4])*hoursPerDay+f[6])*msPerHour +
		f[7]*msPerMinute +
		f[8]*msPerSecond +
		fractionMillis(m[9])

	return ParsedDuration{
		Hours:        uint(total / msPerHour),
		Minutes:      uint(total % msPerHour / msPerMinute),
		Seconds:      uint(total % msPerMinute / msPerSecond),
		Milliseconds: uint(total % msPerSecond),
		Available:    true,
	}, nil
}

// fractionMillis reads the first three fractional digits as milliseconds.
func fractionMillis(frac string) uint64 {
	if frac == "" {
		return 0
	}
	if len(frac) > 3 {
		frac = frac[:3]
	}
	frac += strings.Repeat("0", 3-len(frac))
	n, _ := strconv.ParseUint(frac, 10, 16)
	return n
}
