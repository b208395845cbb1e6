package deadlines

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Term is an admission term within a year.
type Term int

const (
	TermSpring Term = iota + 1
	TermSummer
	TermFall
)

func (t Term) String() string {
	switch t {
	case TermSpring:
		return "Spring"
	case TermSummer:
		return "Summer"
	case TermFall:
		return "Fall"
	}
	return "Unknown"
}

// Semester is a parsed semester label like "Fall 2027". Terms within the same
// year order Spring < Summer < Fall.
type Semester struct {
	Term Term
	Year int
}

func (s Semester) String() string {
	return fmt.Sprintf("%s %d", s.Term, s.Year)
}

// Before reports whether s comes earlier in calendar time than other.
func (s Semester) Before(other Semester) bool {
	if s.Year != other.Year {
		return s.Year < other.Year
	}
	return s.Term < other.Term
}

var reSemester = regexp.MustCompile(`^([A-Za-z]+)[\s,]+([0-9]{4})$`)

var termSynonyms = map[string]Term{
	"spring": TermSpring,
	"summer": TermSummer,
	"fall":   TermFall,
	"autumn": TermFall,
}

// ParseSemester parses labels like "Fall 2027", "autumn 2026", "Spring, 2028".
func ParseSemester(label string) (Semester, error) {
	m := reSemester.FindStringSubmatch(strings.TrimSpace(label))
	if m == nil {
		return Semester{}, fmt.Errorf("invalid semester label %q (want e.g. \"Fall 2027\")", label)
	}
	term, ok := termSynonyms[strings.ToLower(m[1])]
	if !ok {
		return Semester{}, fmt.Errorf("unknown term %q in semester label", m[1])
	}
	year, err := strconv.Atoi(m[2])
	if err != nil {
		return Semester{}, err
	}
	return Semester{Term: term, Year: year}, nil
}

var reOffset = regexp.MustCompile(`^([+-])([0-9]{2}):([0-9]{2})$`)

// ParseUTCOffset parses offsets like "-05:00" or "+09:30" into a fixed zone.
// An empty string means UTC.
func ParseUTCOffset(offset string) (*time.Location, error) {
	s := strings.TrimSpace(offset)
	if s == "" || strings.EqualFold(s, "UTC") || s == "Z" {
		return time.UTC, nil
	}
	m := reOffset.FindStringSubmatch(s)
	if m == nil {
		return nil, fmt.Errorf("invalid UTC offset %q (want e.g. \"-05:00\")", offset)
	}
	hours, _ := strconv.Atoi(m[2])
	mins, _ := strconv.Atoi(m[3])
	if hours > 14 || mins > 59 {
		return nil, fmt.Errorf("UTC offset %q out of range", offset)
	}
	sec := hours*3600 + mins*60
	if m[1] == "-" {
		sec = -sec
	}
	return time.FixedZone("UTC"+s, sec), nil
}
