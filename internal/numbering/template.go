// Package numbering generates human-facing business identifiers such as
// customer and quote numbers from a persisted counter and a schema
// template.
package numbering

import (
	"strconv"
	"strings"
	"time"
)

// Schema template tokens.
const (
	TokenYear4   = "%YYYY"
	TokenYear2   = "%YY"
	TokenMonth   = "%MM"
	TokenCounter = "%COUNTER"
)

// tokens in substitution order. %YYYY must come before %YY so the longer
// token wins over its own prefix.
var tokens = []struct {
	token  string
	expand func(now time.Time, counter int64) string
}{
	{TokenYear4, func(now time.Time, _ int64) string { return now.Format("2006") }},
	{TokenYear2, func(now time.Time, _ int64) string { return now.Format("06") }},
	{TokenMonth, func(now time.Time, _ int64) string { return now.Format("01") }},
	{TokenCounter, func(_ time.Time, counter int64) string { return strconv.FormatInt(counter, 10) }},
}

// Render substitutes the schema tokens with the given date and counter
// value. The counter is inserted verbatim, without padding.
func Render(schema string, now time.Time, counter int64) string {
	out := schema
	for _, t := range tokens {
		out = strings.Replace(out, t.token, t.expand(now, counter), 1)
	}

	return out
}
