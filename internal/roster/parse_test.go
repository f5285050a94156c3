package roster

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePosition(t *testing.T) {
	testCases := []struct {
		text     string
		position Position
		sub      SubPosition
	}{
		{text: "Goalkeeper", position: GK, sub: SubGK},
		{text: "gk", position: GK, sub: SubGK},
		{text: "GK/F", position: MID, sub: SubCM},
		{text: "Forward", position: FWD, sub: SubST},
		{text: "F", position: FWD, sub: SubST},
		{text: "st", position: FWD, sub: SubST},
		{text: "Striker", position: FWD, sub: SubST},
		{text: "Midfielder/Defender", position: MID, sub: SubCM},
		{text: "M/F", position: MID, sub: SubCM},
		{text: "D/F", position: MID, sub: SubCM},
		{text: "1st", position: MID, sub: SubCM},
		{text: "DEF/FWD", position: DEF, sub: SubCB},
		{text: "Forward/Midfielder", position: FWD, sub: SubST},
		{text: "FWD", position: FWD, sub: SubST},
		{text: "MF", position: MID, sub: SubCM},
		{text: "Defender", position: DEF, sub: SubCB},
		{text: "D", position: DEF, sub: SubCB},
		{text: "Outside Back", position: DEF, sub: SubCB},
		{text: "Fullback", position: DEF, sub: SubCB},
		{text: "", position: MID, sub: SubCM},
		{text: "Utility", position: MID, sub: SubCM},
		{text: "  \n forward \t", position: FWD, sub: SubST},
	}

	for _, test := range testCases {
		position, sub := ParsePosition(test.text)
		require.Equal(t, test.position, position, "input %q", test.text)
		require.Equal(t, test.sub, sub, "input %q", test.text)
	}
}

func TestParsePositionIdempotent(t *testing.T) {
	for _, text := range []string{"GK", "FWD", "MID", "DEF", "Forward", "Back", "nonsense"} {
		position, sub := ParsePosition(text)
		again, againSub := ParsePosition(string(position))
		require.Equal(t, position, again, "input %q", text)
		require.Equal(t, sub, againSub, "input %q", text)
	}
}

func TestParsePositionClosedRange(t *testing.T) {
	allowed := map[Position]bool{GK: true, FWD: true, MID: true, DEF: true}
	for _, text := range []string{"", "?", "12", "Gardien", "Mittelfeld", "ゴールキーパー", "Ht.", "F/D/M"} {
		position, _ := ParsePosition(text)
		require.True(t, allowed[position], "input %q gave %q", text, position)
	}
}

func TestParseHeight(t *testing.T) {
	testCases := []struct {
		text     string
		expected *string
	}{
		{text: `6'2"`, expected: strp("6-2")},
		{text: "5-11", expected: strp("5-11")},
		{text: "6 2", expected: strp("6-2")},
		{text: "6’ 1”", expected: strp("6-1")},
		{text: "", expected: nil},
		{text: "N/A", expected: nil},
		{text: "6", expected: nil},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, ParseHeight(test.text), "input %q", test.text)
	}
}

func TestParseClassYear(t *testing.T) {
	testCases := []struct {
		text     string
		expected *string
	}{
		{text: "Junior", expected: strp("Jr")},
		{text: "Fr.", expected: strp("Fr")},
		{text: "R-Fr.", expected: strp("Fr")},
		{text: "sophomore", expected: strp("So")},
		{text: "Sr.", expected: strp("Sr")},
		{text: "Senior", expected: strp("Sr")},
		{text: "Gr.", expected: strp("GR")},
		{text: "5th", expected: strp("5T")},
		{text: "G", expected: nil},
		{text: "   ", expected: nil},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, ParseClassYear(test.text), "input %q", test.text)
	}
}

func TestSplitName(t *testing.T) {
	testCases := []struct {
		text     string
		ok       bool
		expected Name
	}{
		{text: "John Smith", ok: true, expected: Name{First: "John", Last: "Smith"}},
		{text: "23 John Smith", ok: true, expected: Name{First: "John", Last: "Smith", LeakedJersey: intp(23)}},
		{text: "  Juan   Carlos  de la Cruz ", ok: true, expected: Name{First: "Juan", Last: "Carlos de la Cruz"}},
		{text: "Pelé", ok: true, expected: Name{First: "Pelé"}},
		{text: "7", ok: false},
		{text: "", ok: false},
	}

	for _, test := range testCases {
		name, ok := SplitName(test.text)
		require.Equal(t, test.ok, ok, "input %q", test.text)
		if !ok {
			continue
		}
		require.Equal(t, test.expected, name, "input %q", test.text)
	}
}

func TestJersey(t *testing.T) {
	require.Equal(t, intp(7), exactJersey(" 7 "))
	require.Nil(t, exactJersey("#7"))
	require.Nil(t, exactJersey(""))
	require.Equal(t, intp(7), firstJersey("#7"))
	require.Equal(t, intp(12), firstJersey("No. 12"))
	require.Nil(t, firstJersey("GK"))
}

func TestHitEntry(t *testing.T) {
	entry, ok := Hit{Name: "23 John Smith"}.Entry()
	require.True(t, ok)
	require.Equal(t, intp(23), entry.Jersey)
	require.Equal(t, "John", entry.FirstName)
	require.Equal(t, "Smith", entry.LastName)
	require.Equal(t, MID, entry.Position)
	require.Nil(t, entry.Height)
	require.Nil(t, entry.Year)
	require.Nil(t, entry.Hometown)

	// the dedicated jersey field wins over digits leaking into the name
	entry, ok = Hit{Jersey: intp(4), Name: "23 John Smith"}.Entry()
	require.True(t, ok)
	require.Equal(t, intp(4), entry.Jersey)

	_, ok = Hit{Name: "Kai", FullName: true}.Entry()
	require.False(t, ok)

	entry, ok = Hit{Name: "Kai"}.Entry()
	require.True(t, ok)
	require.Equal(t, "", entry.LastName)

	_, ok = Hit{Name: "   "}.Entry()
	require.False(t, ok)
}
