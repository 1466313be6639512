package naming

import (
	"errors"
	"strings"
)

// ErrEmptySlug is returned by Derive when the slug is empty.
var ErrEmptySlug = errors.New("slug is empty")

// Bundle holds every naming variant derived from a slug.
// All fields are pure functions of Slug.
type Bundle struct {
	Slug                   string // user-profile
	CamelName              string // userProfile
	ClassName              string // UserProfile
	ConstantName           string // USER_PROFILE
	HumanPhrase            string // user profile
	HumanPhraseCapitalized string // User profile
	UpperPhrase            string // USER PROFILE
	PluralResource         string // user-profiles
}

// Derive builds the naming bundle for slug.
func Derive(slug string) (Bundle, error) {
	if slug == "" {
		return Bundle{}, ErrEmptySlug
	}

	camel := Camel(slug)
	human := Human(slug)

	return Bundle{
		Slug:                   slug,
		CamelName:              camel,
		ClassName:              Capitalize(camel),
		ConstantName:           Constant(slug),
		HumanPhrase:            human,
		HumanPhraseCapitalized: Capitalize(human),
		UpperPhrase:            Upper(human),
		PluralResource:         Plural(slug),
	}, nil
}

// Camel replaces every hyphen followed by a letter with that letter
// upper-cased. Other characters, including hyphens not followed by a
// letter, are left alone.
// Examples: user-profile → userProfile, top-10-list → top-10List
func Camel(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '-' && i+1 < len(s) && isLetter(s[i+1]) {
			b.WriteByte(toUpper(s[i+1]))
			i++
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// Class returns the PascalCase class name for a slug.
// Example: user-profile → UserProfile
func Class(s string) string {
	return Capitalize(Camel(s))
}

// Constant converts a slug to CONSTANT_CASE.
// Example: user-profile → USER_PROFILE
func Constant(s string) string {
	return Upper(strings.ReplaceAll(s, "-", "_"))
}

// Human turns hyphens into spaces.
// Example: user-profile → user profile
func Human(s string) string {
	return strings.Join(strings.Split(s, "-"), " ")
}

// Capitalize upper-cases the first byte of s if it is an ASCII letter.
func Capitalize(s string) string {
	if s == "" {
		return ""
	}
	return string(toUpper(s[0])) + s[1:]
}

// Upper upper-cases ASCII letters only.
func Upper(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' {
			return r - ('a' - 'A')
		}
		return r
	}, s)
}

// Plural appends "s" unless s already ends in "s".
// Irregular plurals are not handled: category → categorys.
func Plural(s string) string {
	if s == "" || strings.HasSuffix(s, "s") {
		return s
	}
	return s + "s"
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func toUpper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
