package model

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Placeholder is shown for optional fields that are missing.
const Placeholder = "N/A"

var phoneRegexp = regexp.MustCompile(`(\d{2})(\d{4,5})(\d{4})`)

// FormatDate renders an ISO date as dd/MM/yyyy.
func FormatDate(s string) string {
	if s == "" {
		return Placeholder
	}
	t, err := ParseDate(s)
	if err != nil {
		return Placeholder
	}
	return t.Format("02/01/2006")
}

// FormatPhone groups the first digit run as "(AA) NNNNN-NNNN"; anything around it is kept.
func FormatPhone(s string) string {
	if s == "" {
		return Placeholder
	}
	loc := phoneRegexp.FindStringSubmatchIndex(s)
	if loc == nil {
		return s
	}
	var b strings.Builder
	b.WriteString(s[:loc[0]])
	b.WriteString("(" + s[loc[2]:loc[3]] + ") ")
	b.WriteString(s[loc[4]:loc[5]] + "-" + s[loc[6]:loc[7]])
	b.WriteString(s[loc[1]:])
	return b.String()
}

// Initials stands in for the avatar image: first letters of the first and last word.
func Initials(name string) string {
	words := strings.Fields(name)
	if len(words) == 0 {
		return "?"
	}
	first := firstLetter(words[0])
	if len(words) == 1 {
		return first
	}
	return first + firstLetter(words[len(words)-1])
}

func firstLetter(w string) string {
	r, _ := utf8.DecodeRuneInString(w)
	return string(unicode.ToUpper(r))
}
