package roster

import (
	"regexp"
	"strconv"
	"strings"

	"ncaa-rosters/lib/textutil"
)

type positionRule struct {
	position Position
	sub      SubPosition
	// contains is matched as a substring of the whole text.
	contains []string
	// codes are matched against the whole text only, "M/F" is not a forward.
	codes []string
}

// rules are checked in order, the first match wins. "Midfielder/Defender"
// resolves to MID because MID is checked before DEF.
var positionRules = []positionRule{
	{position: GK, sub: SubGK, contains: []string{"GOAL"}, codes: []string{"GK"}},
	{position: FWD, sub: SubST, contains: []string{"FORWARD", "STRIKER"}, codes: []string{"F", "FW", "FWD", "ST"}},
	{position: MID, sub: SubCM, contains: []string{"MID"}, codes: []string{"M", "MF"}},
	{position: DEF, sub: SubCB, contains: []string{"DEF", "BACK"}, codes: []string{"D", "DF"}},
}

func (r positionRule) matches(text string) bool {
	if textutil.ContainsAny(text, r.contains) {
		return true
	}
	for _, code := range r.codes {
		if text == code {
			return true
		}
	}
	return false
}

// ParsePosition maps free position text onto a primary and sub position,
// unknown text defaults to (MID, CM).
func ParsePosition(text string) (Position, SubPosition) {
	text = strings.ToUpper(textutil.Clean(text))
	for _, rule := range positionRules {
		if rule.matches(text) {
			return rule.position, rule.sub
		}
	}
	return MID, SubCM
}

var heightRegex = regexp.MustCompile(`(\d+)['’′"\-\s]*(\d+)`)

// ParseHeight normalizes heights like 6-2, 6'2" or "6 2" into "6-2".
func ParseHeight(text string) *string {
	groups := heightRegex.FindStringSubmatch(textutil.Clean(text))
	if groups == nil {
		return nil
	}
	height := groups[1] + "-" + groups[2]
	return &height
}

type classYear struct {
	keywords []string
	value    string
}

var classYears = []classYear{
	{keywords: []string{"FR", "FRESHMAN"}, value: "Fr"},
	{keywords: []string{"SO", "SOPHOMORE"}, value: "So"},
	{keywords: []string{"JR", "JUNIOR"}, value: "Jr"},
	{keywords: []string{"SR", "SENIOR"}, value: "Sr"},
}

// ParseClassYear normalizes a class year into Fr, So, Jr or Sr, falling back
// to the first two characters of the text (ex. "GR" for graduate students).
func ParseClassYear(text string) *string {
	text = strings.ToUpper(textutil.Clean(text))
	if text == "" {
		return nil
	}
	for _, year := range classYears {
		if textutil.ContainsAny(text, year.keywords) {
			value := year.value
			return &value
		}
	}
	runes := []rune(text)
	if len(runes) < 2 {
		return nil
	}
	value := string(runes[:2])
	return &value
}

// Name is a player name split into its parts.
type Name struct {
	First string
	Last  string
	// LeakedJersey is a jersey number that was found at the start of the name.
	LeakedJersey *int
}

// Tokens returns how many whitespace separated tokens the name has.
func (n Name) Tokens() int {
	if n.Last == "" {
		return 1
	}
	return 1 + len(strings.Fields(n.Last))
}

// SplitName splits a raw name into first and last name, stripping a jersey
// number that leaked into the front of it.
func SplitName(text string) (Name, bool) {
	tokens := strings.Fields(textutil.Clean(text))

	var name Name
	if len(tokens) > 0 && textutil.IsDigits(tokens[0]) {
		name.LeakedJersey = parseNumber(tokens[0])
		tokens = tokens[1:]
	}
	if len(tokens) == 0 {
		return Name{}, false
	}

	name.First = tokens[0]
	name.Last = strings.Join(tokens[1:], " ")
	return name, true
}

func parseNumber(digits string) *int {
	n, err := strconv.Atoi(digits)
	if err != nil || n < 0 {
		return nil
	}
	return &n
}

var exactJerseyRegex = regexp.MustCompile(`^\s*(\d+)\s*$`)
var anyDigitsRegex = regexp.MustCompile(`\d+`)

// exactJersey accepts text that is only a number.
func exactJersey(text string) *int {
	groups := exactJerseyRegex.FindStringSubmatch(text)
	if groups == nil {
		return nil
	}
	return parseNumber(groups[1])
}

// firstJersey takes the first number found anywhere in text, ex. "#10".
func firstJersey(text string) *int {
	digits := anyDigitsRegex.FindString(text)
	if digits == "" {
		return nil
	}
	return parseNumber(digits)
}
