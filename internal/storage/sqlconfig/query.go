package sqlconfig

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike makes s match literally inside a LIKE pattern that uses the
// default backslash escape. Both storage backends build search patterns with it.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}
