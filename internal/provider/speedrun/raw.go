package speedrun

import "encoding/json"

// Raw payload shapes of the speedrun.com v1 API, one struct per nesting
// level. They are decoded from the "data" member of each response and only
// ever read by the normalize functions in this package.

// RawLink is a {rel, uri} pair from a resource's links list.
type RawLink struct {
	Rel string `json:"rel"`
	URI string `json:"uri"`
}

// RawNames holds localized names; either may be null upstream.
type RawNames struct {
	International string `json:"international"`
	Japanese      string `json:"japanese"`
}

// RawGame is one element of the games search result.
type RawGame struct {
	ID           string    `json:"id"`
	Abbreviation string    `json:"abbreviation"`
	Names        RawNames  `json:"names"`
	Released     uint16    `json:"released"`
	Links        []RawLink `json:"links"`
}

// RawCategory is one element of a game's categories list.
type RawCategory struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Type          string `json:"type"`
	Miscellaneous bool   `json:"miscellaneous"`
}

// RawRecord is the top-N board of one category from the records endpoint.
type RawRecord struct {
	Game     string        `json:"game"`
	Weblink  string        `json:"weblink"`
	Category string        `json:"category"`
	Runs     []RawRunEntry `json:"runs"`
}

// RawRunEntry wraps a run with its placement.
type RawRunEntry struct {
	Place uint   `json:"place"`
	Run   RawRun `json:"run"`
}

// RawRun is the run object itself.
type RawRun struct {
	ID        string          `json:"id"`
	Weblink   string          `json:"weblink"`
	Videos    json.RawMessage `json:"videos"`
	Times     RawTimes        `json:"times"`
	Submitted string          `json:"submitted"`
	Players   []RawPlayerRef  `json:"players"`
}

// RawTimes carries ISO-8601 durations; realtime is null on boards timed
// by game time only.
type RawTimes struct {
	Primary  string  `json:"primary"`
	Realtime *string `json:"realtime"`
}

// RawPlayerRef points at a registered user (rel "user", id set) or a guest
// (rel "guest", name set).
type RawPlayerRef struct {
	Rel  string  `json:"rel"`
	ID   *string `json:"id,omitempty"`
	Name *string `json:"name,omitempty"`
	URI  string  `json:"uri"`
}

// RawUser is the users endpoint payload.
type RawUser struct {
	ID      string   `json:"id"`
	Weblink string   `json:"weblink"`
	Names   RawNames `json:"names"`
}

type rawVideos struct {
	Links []struct {
		URI string `json:"uri"`
	} `json:"links"`
}
