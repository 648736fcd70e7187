package hands

import "strings"

// NormalizeIdentity reduces a raw identity token ("display name @ sessionid")
// to its canonical form: the substring before the first '@', trimmed and
// lower-cased. Idempotent, and the only comparison key used anywhere players
// are grouped or matched.
func NormalizeIdentity(raw string) string {
	name := raw
	if idx := strings.Index(raw, "@"); idx >= 0 {
		name = raw[:idx]
	}
	return strings.ToLower(strings.TrimSpace(name))
}

// SameIdentity reports whether two raw tokens normalise to the same player.
func SameIdentity(a, b string) bool {
	return NormalizeIdentity(a) == NormalizeIdentity(b)
}

// IsIdentityToken reports whether a player field looks like a real identity
// token rather than log noise picked up by the player/details split. The raw
// export always writes identities as "name @ sessionid".
func IsIdentityToken(raw string) bool {
	return strings.Contains(raw, "@")
}
