package reconcile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// CharacterID is the string form of an integer character identifier.
// It is the only field used to match characters across sources.
type CharacterID string

// UnmarshalJSON accepts both JSON strings and JSON numbers, since the
// collection service and the media catalog disagree on the encoding.
func (id *CharacterID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = CharacterID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("character id: %w", err)
	}
	*id = CharacterID(n.String())
	return nil
}

// Int returns the numeric value of the id, or 0 when it is not an integer.
func (id CharacterID) Int() int64 {
	n, _ := strconv.ParseInt(string(id), 10, 64)
	return n
}

// Character is one anime character as known to the collection service or the
// media catalog. Date and Type are only set on owned characters.
type Character struct {
	ID    CharacterID `json:"id"`
	Name  string      `json:"name"`
	Image string      `json:"image"`
	Date  *time.Time  `json:"date,omitempty"`
	Type  string      `json:"type,omitempty"`
}

// HasDate reports whether the character carries an acquisition date.
// The collection service encodes "no date" as the zero time.
func (c Character) HasDate() bool {
	return c.Date != nil && !c.Date.IsZero()
}

// OwnedCharacter is a Character annotated for rendering.
type OwnedCharacter struct {
	Character

	// Owners lists the users in scope that own the character, in supply order.
	// It is nil unless someone other than the primary user owns it.
	Owners []string `json:"owners,omitempty"`

	// Missing marks roster entries the primary user does not own.
	Missing bool `json:"missing"`
}

// User is a collection profile.
type User struct {
	ID              string      `json:"id"`
	Favorite        *Character  `json:"favorite,omitempty"`
	Quote           string      `json:"quote,omitempty"`
	AnilistURL      string      `json:"anilist_url,omitempty"`
	DiscordUsername string      `json:"discord_username,omitempty"`
	DiscordAvatar   string      `json:"discord_avatar,omitempty"`
	Characters      []Character `json:"waifus,omitempty"`
}

// DisplayName returns the Discord username, falling back to the id.
func (u User) DisplayName() string {
	if u.DiscordUsername != "" {
		return u.DiscordUsername
	}
	return u.ID
}

// SortKey selects one of the fixed comparators.
type SortKey int

const (
	SortDate SortKey = iota
	SortName
	SortID
)

var sortKeyNames = map[SortKey]string{
	SortDate: "date",
	SortName: "name",
	SortID:   "id",
}

func (k SortKey) String() string {
	if name, ok := sortKeyNames[k]; ok {
		return name
	}
	return "SortKey(" + strconv.Itoa(int(k)) + ")"
}

// ParseSortKey parses "date", "name" or "id" (case-insensitive).
// An empty string selects SortDate.
func ParseSortKey(s string) (SortKey, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return SortDate, nil
	}
	for k, name := range sortKeyNames {
		if name == s {
			return k, nil
		}
	}
	return SortDate, fmt.Errorf("unknown sort key %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (k SortKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Sort is a sort selection: a key plus an optional reversal.
type Sort struct {
	Key      SortKey `json:"key"`
	Reversed bool    `json:"reversed"`
}

// DisplayCap is the maximum number of entries returned after sorting.
type DisplayCap int

// ShowAll disables capping.
const ShowAll DisplayCap = -1

// DefaultDisplayCap is the cap selected when none is given.
const DefaultDisplayCap DisplayCap = 200

// DisplayCapPresets are the caps offered to users.
var DisplayCapPresets = []DisplayCap{100, 200, 500, ShowAll}

func (c DisplayCap) String() string {
	if c == ShowAll {
		return "all"
	}
	return strconv.Itoa(int(c))
}

// ParseDisplayCap accepts a positive integer, "all" or "-1".
// An empty string selects DefaultDisplayCap.
func ParseDisplayCap(s string) (DisplayCap, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "":
		return DefaultDisplayCap, nil
	case "all", "-1":
		return ShowAll, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid display cap %q, want a positive number or one of %s", s, DisplayCapChoices())
	}
	return DisplayCap(n), nil
}

// DisplayCapChoices formats DisplayCapPresets as "100|200|500|all".
func DisplayCapChoices() string {
	names := make([]string, len(DisplayCapPresets))
	for i, c := range DisplayCapPresets {
		names[i] = c.String()
	}
	return strings.Join(names, "|")
}

// Input bundles everything one recomputation reads.
type Input struct {
	// PrimaryID is the profile being viewed.
	PrimaryID string
	// Characters is the list being displayed: the primary user's collection
	// or their wishlist.
	Characters []Character
	// PrimaryOwned is what the primary user owns. Ownership is resolved from
	// it rather than from Characters. Nil means Characters is the owned list.
	PrimaryOwned []Character
	// Compare holds the compare users in selection order.
	Compare []User
	// Roster is the selected media roster. Nil means no media is selected.
	Roster []Character
	// Search is the free-text search.
	Search string
	// Sort is the sort selection.
	Sort Sort
	// Cap is the display cap.
	Cap DisplayCap
}

// owned returns the primary user's owned characters.
func (in Input) owned() []Character {
	if in.PrimaryOwned == nil {
		return in.Characters
	}
	return in.PrimaryOwned
}

// Summary provides aggregate counts for a Result.
type Summary struct {
	// Owned counts primary-owned entries that passed the filters.
	Owned int `json:"owned"`
	// Missing counts roster entries the primary user lacks.
	Missing int `json:"missing"`
	// Shared counts entries owned by at least one compare user.
	Shared int `json:"shared"`
	// Total is the number of entries before capping.
	Total int `json:"total"`
	// Shown is the number of entries after capping.
	Shown int `json:"shown"`
}

// Result is the ordered, capped list ready for rendering.
type Result struct {
	Characters []OwnedCharacter `json:"characters"`
	Summary    Summary          `json:"summary"`
}
