package speedrun

import (
	"errors"
	"testing"

	"github.com/albapepper/speedrun-lb/internal/provider"
)

func testCatalog() provider.Catalog {
	return BuildCatalog([]RawCategory{
		{ID: "c1", Name: "Any%", Type: "per-game"},
		{ID: "c2", Name: "Extras", Type: "misc"},
		{ID: "c3", Name: "Level 1", Type: "per-level"},
	})
}

func TestAssembleFiltersByKind(t *testing.T) {
	records := []RawRecord{
		{
			Game:     "g1",
			Weblink:  "https://www.speedrun.com/g1#Any",
			Category: "c1",
			Runs: []RawRunEntry{
				rawEntry(1, "fast", "PT10M", userRef("u1")),
				rawEntry(2, "middle", "PT11M", guestRef("guest")),
				rawEntry(3, "slow", "PT12M", userRef("u3")),
			},
		},
		{
			Game:     "g1",
			Category: "c2",
			Runs:     []RawRunEntry{rawEntry(1, "misc-run", "PT1M", userRef("u9"))},
		},
	}

	boards, err := Assemble(records, testCatalog(), provider.KindPerGame)
	if err != nil {
		t.Fatalf("Assemble returned error: %v", err)
	}
	if len(boards) != 1 {
		t.Fatalf("expected 1 board, got %d", len(boards))
	}

	b := boards[0]
	if b.GameID != "g1" || b.CategoryID != "c1" || b.CategoryName != "Any%" {
		t.Errorf("unexpected board header: %+v", b)
	}
	if b.Weblink != "https://www.speedrun.com/g1#Any" {
		t.Errorf("Weblink = %q", b.Weblink)
	}

	wantIDs := []string{"fast", "middle", "slow"}
	if len(b.Entries) != len(wantIDs) {
		t.Fatalf("expected %d entries, got %d", len(wantIDs), len(b.Entries))
	}
	for i, id := range wantIDs {
		if b.Entries[i].Run.ID != id {
			t.Errorf("entry %d: got %q, want %q", i, b.Entries[i].Run.ID, id)
		}
		if b.Entries[i].Place != uint(i+1) {
			t.Errorf("entry %d: place %d, want %d", i, b.Entries[i].Place, i+1)
		}
	}
}

func TestAssembleKeepsCategoryOrder(t *testing.T) {
	catalog := BuildCatalog([]RawCategory{
		{ID: "a", Name: "A", Type: "per-game"},
		{ID: "b", Name: "B", Type: "per-game"},
		{ID: "c", Name: "C", Type: "per-game"},
	})
	records := []RawRecord{{Category: "c"}, {Category: "a"}, {Category: "b"}}

	boards, err := Assemble(records, catalog, provider.KindPerGame)
	if err != nil {
		t.Fatalf("Assemble returned error: %v", err)
	}
	var got string
	for _, b := range boards {
		got += b.CategoryID
	}
	if got != "cab" {
		t.Errorf("board order = %q, want %q", got, "cab")
	}
	for _, b := range boards {
		if b.Entries == nil {
			t.Errorf("board %s: Entries should be empty, not nil", b.CategoryID)
		}
	}
}

func TestAssembleOtherKinds(t *testing.T) {
	records := []RawRecord{
		{Category: "c1", Runs: []RawRunEntry{rawEntry(1, "r1", "PT1S", userRef("u"))}},
		{Category: "c3", Runs: []RawRunEntry{rawEntry(1, "r3", "PT1S", userRef("u"))}},
	}

	boards, err := Assemble(records, testCatalog(), provider.KindPerLevel)
	if err != nil {
		t.Fatalf("Assemble returned error: %v", err)
	}
	if len(boards) != 1 || boards[0].CategoryID != "c3" {
		t.Errorf("per-level boards = %+v, want only c3", boards)
	}
}

func TestAssembleUnknownCategory(t *testing.T) {
	records := []RawRecord{
		{Category: "c1", Runs: []RawRunEntry{rawEntry(1, "r1", "PT1S", userRef("u"))}},
		{Category: "ghost", Runs: []RawRunEntry{rawEntry(1, "r2", "PT1S", userRef("u"))}},
	}

	boards, err := Assemble(records, testCatalog(), provider.KindPerGame)
	if !errors.Is(err, provider.ErrUnknownCategory) {
		t.Fatalf("error = %v, want ErrUnknownCategory", err)
	}
	if boards != nil {
		t.Errorf("expected no partial output, got %d boards", len(boards))
	}
}

func TestAssembleUnknownCategoryEvenWhenFilteredOut(t *testing.T) {
	records := []RawRecord{{Category: "ghost"}}
	if _, err := Assemble(records, testCatalog(), provider.KindPerLevel); !errors.Is(err, provider.ErrUnknownCategory) {
		t.Errorf("error = %v, want ErrUnknownCategory", err)
	}
}

func TestAssembleRunFailureIsFatal(t *testing.T) {
	records := []RawRecord{
		{Category: "c1", Runs: []RawRunEntry{
			rawEntry(1, "ok", "PT1S", userRef("u")),
			rawEntry(2, "broken", "PT1S"),
		}},
	}

	boards, err := Assemble(records, testCatalog(), provider.KindPerGame)
	if !errors.Is(err, provider.ErrMalformedPlayerReference) {
		t.Fatalf("error = %v, want ErrMalformedPlayerReference", err)
	}
	if boards != nil {
		t.Errorf("expected no partial output, got %d boards", len(boards))
	}
}
