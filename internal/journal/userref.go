package journal

import (
	"fmt"
	"html"
	"regexp"
	"strings"
)

// A user-reference marker looks like <user name="someone" site="example.com">.
// Attribute names are case-insensitive and may appear in any order; values are
// double-quoted and may contain HTML entities. The marker must fit on one
// line; anything else is left alone.
var (
	userRefRe = regexp.MustCompile(`(?i)<user\s+[^>\n]*?>`)
	attrRe    = regexp.MustCompile(`(?i)([a-z][a-z0-9_-]*)\s*=\s*"([^"]*)"`)
)

// ExpandUserRefs rewrites every user-reference marker in text into a profile
// link. pattern is a URL template with a single {} slot that receives the
// mangled username; it may be empty, in which case every marker must carry a
// site attribute or the expansion fails.
func ExpandUserRefs(text, pattern string) (string, error) {
	var firstErr error

	out := userRefRe.ReplaceAllStringFunc(text, func(marker string) string {
		name, site, ok := parseUserRef(marker)
		if !ok {
			return marker
		}

		// Usernames map onto subdomains with underscores swapped for
		// dashes, e.g. a_user lives at a-user.example.com.
		label := strings.ReplaceAll(strings.ToLower(name), "_", "-")

		var href string
		switch {
		case site != "":
			href = "https://" + label + "." + site + "/profile"
		case pattern != "":
			href = strings.Replace(pattern, "{}", label, 1)
		default:
			if firstErr == nil {
				firstErr = fmt.Errorf("user reference %q has no site attribute and no URL pattern is configured", name)
			}
			return marker
		}

		return `<a class="user" href="` + html.EscapeString(href) + `">` + html.EscapeString(name) + `</a>`
	})

	if firstErr != nil {
		return "", firstErr
	}
	return out, nil
}

// parseUserRef extracts the effective user name and optional site from a
// marker. The user attribute supplies the name, but a name or comm attribute
// overrides it; when both appear, the later one in declaration order wins.
// ok is false when the marker names no user at all.
func parseUserRef(marker string) (name, site string, ok bool) {
	var user, override string
	haveOverride := false

	for _, m := range attrRe.FindAllStringSubmatch(marker, -1) {
		key := strings.ToLower(m[1])
		val := html.UnescapeString(m[2])
		switch key {
		case "user":
			user = val
		case "name", "comm":
			override = val
			haveOverride = true
		case "site":
			site = val
		}
	}

	name = user
	if haveOverride {
		name = override
	}
	return name, site, name != ""
}
