package roster

// Position is the primary position code of a player.
type Position string

const (
	GK  Position = "GK"
	FWD Position = "FWD"
	MID Position = "MID"
	DEF Position = "DEF"
)

// SubPosition is the representative detailed code implied by a Position.
type SubPosition string

const (
	SubGK SubPosition = "GK"
	SubST SubPosition = "ST"
	SubCM SubPosition = "CM"
	SubCB SubPosition = "CB"
)

// Entry is one normalized player record. Optional values are nil when they
// could not be recovered from the page.
type Entry struct {
	Jersey      *int        `json:"jersey"`
	FirstName   string      `json:"firstName"`
	LastName    string      `json:"lastName"`
	Position    Position    `json:"position"`
	SubPosition SubPosition `json:"subPosition"`
	Height      *string     `json:"height"`
	Year        *string     `json:"year"`
	Hometown    *string     `json:"hometown"`
}

// Name returns the full name of the player.
func (e Entry) Name() string {
	if e.LastName == "" {
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}

// Result is the roster extracted for one team. An empty result is a failed
// extraction, not an error.
type Result struct {
	// Strategy is the name of the recognizer which produced the entries.
	Strategy string  `json:"-"`
	Entries  []Entry `json:"entries"`
}

func emptyResult() Result {
	return Result{Entries: []Entry{}}
}

func (r Result) Ok() bool {
	return len(r.Entries) > 0
}
