package reconcile

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCharacterID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    CharacterID
		wantErr bool
	}{
		{"string", `{"id":"123"}`, "123", false},
		{"number", `{"id":123}`, "123", false},
		{"large number", `{"id":90071992547409931}`, "90071992547409931", false},
		{"null", `{"id":null}`, "", false},
		{"object", `{"id":{}}`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Character
			err := json.Unmarshal([]byte(tt.payload), &c)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.ID)
		})
	}
}

func TestCharacterID_Int(t *testing.T) {
	assert.Equal(t, int64(42), CharacterID("42").Int())
	assert.Equal(t, int64(0), CharacterID("abc").Int())
}

func TestCharacter_HasDate(t *testing.T) {
	var zero time.Time
	now := time.Now()

	assert.False(t, Character{}.HasDate())
	assert.False(t, Character{Date: &zero}.HasDate())
	assert.True(t, Character{Date: &now}.HasDate())
}

func TestUser_DecodesCollectionPayload(t *testing.T) {
	payload := `{
	  "id": "206794847581896705",
	  "quote": "hello",
	  "favorite": {"id": 1, "name": "Rem", "image": "https://img/1", "date": "0001-01-01T00:00:00Z", "type": ""},
	  "waifus": [
	    {"id": 1, "name": "Rem", "image": "https://img/1", "date": "2023-04-01T10:00:00Z", "type": "ROLL"}
	  ]
	}`

	var u User
	require.NoError(t, json.Unmarshal([]byte(payload), &u))
	assert.Equal(t, "206794847581896705", u.ID)
	require.NotNil(t, u.Favorite)
	assert.False(t, u.Favorite.HasDate())
	require.Len(t, u.Characters, 1)
	assert.True(t, u.Characters[0].HasDate())
	assert.Equal(t, "ROLL", u.Characters[0].Type)
	assert.Equal(t, "206794847581896705", u.DisplayName())
}

func TestParseSortKey(t *testing.T) {
	tests := []struct {
		in      string
		want    SortKey
		wantErr bool
	}{
		{"", SortDate, false},
		{"date", SortDate, false},
		{"Name", SortName, false},
		{" id ", SortID, false},
		{"rating", SortDate, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSortKey(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDisplayCap(t *testing.T) {
	tests := []struct {
		in      string
		want    DisplayCap
		wantErr bool
	}{
		{"", DefaultDisplayCap, false},
		{"all", ShowAll, false},
		{"ALL", ShowAll, false},
		{"-1", ShowAll, false},
		{"100", 100, false},
		{"0", 0, true},
		{"-5", 0, true},
		{"lots", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDisplayCap(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
	assert.Equal(t, "all", ShowAll.String())
	assert.Equal(t, "200", DefaultDisplayCap.String())
}

func TestDisplayCapPresets(t *testing.T) {
	assert.Equal(t, "100|200|500|all", DisplayCapChoices())
	assert.Contains(t, DisplayCapPresets, DefaultDisplayCap)

	for _, c := range DisplayCapPresets {
		got, err := ParseDisplayCap(c.String())
		assert.NoError(t, err)
		assert.Equal(t, c, got)
	}

	_, err := ParseDisplayCap("lots")
	assert.ErrorContains(t, err, DisplayCapChoices())
}
