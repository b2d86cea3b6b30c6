// Package render substitutes copyright placeholders in license templates.
package render

import "strings"

// yearTokens and authorTokens are the placeholder spellings found across the
// license templates served by the registry. Matching is literal and
// case-sensitive.
var yearTokens = []string{
	"[year]",
	"[yyyy]",
	"<year>",
	"YEAR",
}

var authorTokens = []string{
	"[fullname]",
	"[name of copyright owner]",
	"<copyright holders>",
	"<name of author>",
}

// Render returns template with every occurrence of each recognised year
// placeholder replaced by year and each author placeholder replaced by
// author. Tokens not present are ignored; unrecognised tokens pass through
// unchanged.
func Render(template, year, author string) string {
	out := template
	for _, token := range yearTokens {
		out = strings.ReplaceAll(out, token, year)
	}
	for _, token := range authorTokens {
		out = strings.ReplaceAll(out, token, author)
	}
	return out
}
