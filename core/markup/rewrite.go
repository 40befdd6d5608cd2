package markup

import (
	"regexp"
	"strconv"
	"strings"
)

// tagAliasPrefix makes digit-leading tag names valid in the message grammar,
// which forbids names that start with a digit.
const tagAliasPrefix = "tag-"

var tagPattern = regexp.MustCompile(`<(/?)([a-zA-Z0-9_-]+)\s*(/?)>`)

// RewriteTags converts HTML-style tags in a template into message-grammar
// markup placeholders: "<b>" becomes "{#b}", "</b>" becomes "{/b}" and
// "<br/>" becomes "{#br/}". Numeric tag names ("<0>") are aliased with a
// non-digit-leading prefix; UnaliasTag reverses the alias during component
// lookup. Angle brackets that do not form a tag are left untouched.
func RewriteTags(template string) string {
	if !strings.Contains(template, "<") {
		return template
	}
	return tagPattern.ReplaceAllStringFunc(template, func(tag string) string {
		m := tagPattern.FindStringSubmatch(tag)
		name := aliasTag(m[2])
		switch {
		case m[1] == "/":
			return "{/" + name + "}"
		case m[3] == "/":
			return "{#" + name + "/}"
		default:
			return "{#" + name + "}"
		}
	})
}

func aliasTag(name string) string {
	if name != "" && name[0] >= '0' && name[0] <= '9' {
		return tagAliasPrefix + name
	}
	return name
}

// UnaliasTag strips the numeric-tag alias, returning "0" for "tag-0".
// Names that are not aliases pass through unchanged.
func UnaliasTag(name string) string {
	rest, ok := strings.CutPrefix(name, tagAliasPrefix)
	if !ok || rest == "" {
		return name
	}
	if _, err := strconv.Atoi(rest); err != nil {
		return name
	}
	return rest
}
