package speedrun

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/albapepper/speedrun-lb/internal/provider"
)

func strPtr(s string) *string { return &s }

func userRef(id string) RawPlayerRef {
	return RawPlayerRef{Rel: "user", ID: strPtr(id), URI: "https://www.speedrun.com/api/v1/users/" + id}
}

func guestRef(name string) RawPlayerRef {
	return RawPlayerRef{Rel: "guest", Name: strPtr(name), URI: "https://www.speedrun.com/api/v1/guests/" + name}
}

func TestSelectVideo(t *testing.T) {
	tests := []struct {
		name string
		uris []string
		want string
	}{
		{name: "none", uris: nil, want: ""},
		{name: "empty", uris: []string{}, want: ""},
		{name: "one", uris: []string{"a"}, want: "a"},
		{name: "two picks the second", uris: []string{"a", "b"}, want: "b"},
		{name: "more than two picks the last", uris: []string{"a", "b", "c"}, want: "c"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SelectVideo(tt.uris); got != tt.want {
				t.Errorf("SelectVideo(%v) = %q, want %q", tt.uris, got, tt.want)
			}
		})
	}
}

func TestVideoURIs(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "absent", raw: "", want: nil},
		{name: "null", raw: "null", want: nil},
		{name: "text only", raw: `{"text":"see description"}`, want: []string{}},
		{name: "links not a list", raw: `{"links":"nope"}`, want: nil},
		{name: "two links in order", raw: `{"links":[{"uri":"https://mirror"},{"uri":"https://primary"}]}`, want: []string{"https://mirror", "https://primary"}},
		{name: "empty uri skipped", raw: `{"links":[{"uri":""},{"uri":"https://only"}]}`, want: []string{"https://only"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := videoURIs(json.RawMessage(tt.raw))
			if len(got) != len(tt.want) {
				t.Fatalf("videoURIs(%s) = %v, want %v", tt.raw, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("index %d: got %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestResolvePlayer(t *testing.T) {
	t.Run("registered user", func(t *testing.T) {
		got, err := ResolvePlayer([]RawPlayerRef{userRef("0jm34we8")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != (provider.RegisteredUser{ID: "0jm34we8"}) {
			t.Errorf("got %#v", got)
		}
	})

	t.Run("guest", func(t *testing.T) {
		got, err := ResolvePlayer([]RawPlayerRef{guestRef("speedy")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != (provider.GuestName{Name: "speedy"}) {
			t.Errorf("got %#v", got)
		}
	})

	t.Run("first reference wins", func(t *testing.T) {
		got, err := ResolvePlayer([]RawPlayerRef{guestRef("lead"), userRef("second")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Display() != "lead" {
			t.Errorf("Display() = %q, want lead", got.Display())
		}
	})

	failures := map[string][]RawPlayerRef{
		"empty list":               nil,
		"user without id":          {{Rel: "user", Name: strPtr("has a name")}},
		"guest without name":       {{Rel: "guest", ID: strPtr("has an id")}},
		"unknown rel without name": {{Rel: "team"}},
	}
	for name, refs := range failures {
		t.Run(name, func(t *testing.T) {
			_, err := ResolvePlayer(refs)
			if !errors.Is(err, provider.ErrMalformedPlayerReference) {
				t.Errorf("error = %v, want ErrMalformedPlayerReference", err)
			}
		})
	}
}

func rawEntry(place uint, id, realtime string, players ...RawPlayerRef) RawRunEntry {
	return RawRunEntry{
		Place: place,
		Run: RawRun{
			ID:        id,
			Weblink:   "https://www.speedrun.com/run/" + id,
			Videos:    json.RawMessage(`{"links":[{"uri":"https://mirror/` + id + `"},{"uri":"https://primary/` + id + `"}]}`),
			Times:     RawTimes{Primary: realtime, Realtime: strPtr(realtime)},
			Submitted: "2020-01-02T03:04:05Z",
			Players:   players,
		},
	}
}

func TestNormalizeRun(t *testing.T) {
	entry, err := NormalizeRun(rawEntry(1, "run1", "PT1H2M3.004S", userRef("u1"), guestRef("g2")))
	if err != nil {
		t.Fatalf("NormalizeRun returned error: %v", err)
	}

	if entry.Place != 1 {
		t.Errorf("Place = %d, want 1", entry.Place)
	}
	run := entry.Run
	if run.ID != "run1" || run.Weblink != "https://www.speedrun.com/run/run1" {
		t.Errorf("unexpected id/weblink: %q %q", run.ID, run.Weblink)
	}
	if run.VideoURI != "https://primary/run1" {
		t.Errorf("VideoURI = %q, want primary link", run.VideoURI)
	}
	want := provider.ParsedDuration{Hours: 1, Minutes: 2, Seconds: 3, Milliseconds: 4, Available: true}
	if run.Duration != want {
		t.Errorf("Duration = %+v, want %+v", run.Duration, want)
	}
	if run.SubmittedAt != "2020-01-02T03:04:05Z" {
		t.Errorf("SubmittedAt = %q", run.SubmittedAt)
	}
	if len(run.Players) != 2 {
		t.Fatalf("expected 2 players, got %d", len(run.Players))
	}
	if run.Player() != (provider.RegisteredUser{ID: "u1"}) {
		t.Errorf("primary player = %#v", run.Player())
	}
	if run.Players[1] != (provider.GuestName{Name: "g2"}) {
		t.Errorf("second player = %#v", run.Players[1])
	}
}

func TestNormalizeRunFallsBackToPrimaryTime(t *testing.T) {
	raw := rawEntry(3, "igt", "PT10S", userRef("u"))
	raw.Run.Times = RawTimes{Primary: "PT12.5S"}
	raw.Run.Videos = nil

	entry, err := NormalizeRun(raw)
	if err != nil {
		t.Fatalf("NormalizeRun returned error: %v", err)
	}
	if entry.Run.Duration.Seconds != 12 || entry.Run.Duration.Milliseconds != 500 {
		t.Errorf("Duration = %+v, want 12.500s", entry.Run.Duration)
	}
	if entry.Run.VideoURI != "" {
		t.Errorf("VideoURI = %q, want empty", entry.Run.VideoURI)
	}
}

func TestNormalizeRunFailures(t *testing.T) {
	t.Run("bad duration", func(t *testing.T) {
		_, err := NormalizeRun(rawEntry(1, "r", "one hour", userRef("u")))
		if !errors.Is(err, provider.ErrDurationParse) {
			t.Errorf("error = %v, want ErrDurationParse", err)
		}
	})

	t.Run("no players", func(t *testing.T) {
		_, err := NormalizeRun(rawEntry(1, "r", "PT1S"))
		if !errors.Is(err, provider.ErrMalformedPlayerReference) {
			t.Errorf("error = %v, want ErrMalformedPlayerReference", err)
		}
	})

	t.Run("malformed co-op partner", func(t *testing.T) {
		_, err := NormalizeRun(rawEntry(1, "r", "PT1S", userRef("u"), RawPlayerRef{Rel: "user"}))
		if !errors.Is(err, provider.ErrMalformedPlayerReference) {
			t.Errorf("error = %v, want ErrMalformedPlayerReference", err)
		}
	})
}
