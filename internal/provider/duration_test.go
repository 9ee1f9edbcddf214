package provider

import (
	"errors"
	"testing"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want ParsedDuration
	}{
		{
			name: "full time part",
			raw:  "PT1H2M3.004S",
			want: ParsedDuration{Hours: 1, Minutes: 2, Seconds: 3, Milliseconds: 4, Available: true},
		},
		{
			name: "seconds only with short fraction",
			raw:  "PT45.5S",
			want: ParsedDuration{Seconds: 45, Milliseconds: 500, Available: true},
		},
		{
			name: "fraction longer than millis is truncated",
			raw:  "PT1.23456S",
			want: ParsedDuration{Seconds: 1, Milliseconds: 234, Available: true},
		},
		{
			name: "minutes carry into hours",
			raw:  "PT90M",
			want: ParsedDuration{Hours: 1, Minutes: 30, Available: true},
		},
		{
			name: "days fold into hours",
			raw:  "P1DT2H",
			want: ParsedDuration{Hours: 26, Available: true},
		},
		{
			name: "zero seconds is still a time",
			raw:  "PT0S",
			want: ParsedDuration{Available: true},
		},
		{
			name: "years only",
			raw:  "P1Y",
			want: DurationUnavailable,
		},
		{
			name: "days only",
			raw:  "P3D",
			want: DurationUnavailable,
		},
		{
			name: "months next to a time part",
			raw:  "P2MT1H",
			want: DurationUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDuration(tt.raw)
			if err != nil {
				t.Fatalf("ParseDuration(%q) returned error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("ParseDuration(%q) = %+v, want %+v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseDurationMalformed(t *testing.T) {
	for _, raw := range []string{"", "P", "PT", "1H", "PT1.5H", "PTxS", "garbage", "PT1H2M3.004"} {
		t.Run(raw, func(t *testing.T) {
			got, err := ParseDuration(raw)
			if !errors.Is(err, ErrDurationParse) {
				t.Fatalf("ParseDuration(%q) error = %v, want ErrDurationParse", raw, err)
			}
			if got.Available {
				t.Errorf("ParseDuration(%q) returned an available duration on failure", raw)
			}
		})
	}
}

func TestParsedDurationString(t *testing.T) {
	d := ParsedDuration{Hours: 1, Minutes: 2, Seconds: 3, Milliseconds: 4, Available: true}
	if got := d.String(); got != "01:02:03.004" {
		t.Errorf("String() = %q, want %q", got, "01:02:03.004")
	}
	if got := DurationUnavailable.String(); got != "No time provided" {
		t.Errorf("unavailable String() = %q", got)
	}
}
