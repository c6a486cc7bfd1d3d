package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var nonSlug = regexp.MustCompile("[^a-z0-9]+")

// GenerateSlug turns an event name into a URL segment: "Jornada Académica 2025"
// becomes "jornada-academica-2025".
func GenerateSlug(name string) string {
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	slug, _, err := transform.String(fold, name)
	if err != nil {
		slug = name
	}
	slug = nonSlug.ReplaceAllString(strings.ToLower(slug), "-")
	return strings.Trim(slug, "-")
}
