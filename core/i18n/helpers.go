package i18n

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// maxAcceptLanguageLength caps header parsing. RFC 7231 doesn't specify a
// limit, but 4KB is generous for legitimate headers while preventing memory
// exhaustion from oversized ones.
const maxAcceptLanguageLength = 4096

// languageTag represents a parsed language tag with quality value
type languageTag struct {
	tag     string
	quality float64
}

// ParseAcceptLanguage parses the Accept-Language header and returns the most
// applicable language from the available languages list.
// It supports quality values (q=0.9) and will match the highest quality
// available language. If no match is found, returns the first available language.
//
// Example header: "en-US,en;q=0.9,pl;q=0.8"
// Available: ["pl", "en", "de"]
// Returns: "en" (highest quality match)
func ParseAcceptLanguage(header string, available []string) string {
	if len(available) == 0 {
		return ""
	}
	if header == "" {
		return available[0]
	}

	tags := parseLanguageTags(header)

	// Iterate in server-preferred order so equal client qualities respect
	// server priorities (RFC 7231 section 5.3.5). An exact tag match beats a
	// base-language match at the same quality; a strictly higher quality
	// wins either way.
	var best string
	bestQuality := -1.0
	bestExact := false
	for _, avail := range available {
		norm := normalizeLanguageTag(avail)
		for _, tag := range tags {
			if tag.tag == norm {
				if tag.quality > bestQuality || (tag.quality == bestQuality && !bestExact) {
					best, bestQuality, bestExact = avail, tag.quality, true
				}
				break
			}
			if matchesLanguage(tag.tag, avail) {
				if best == "" || tag.quality > bestQuality {
					best, bestQuality, bestExact = avail, tag.quality, false
				}
				break
			}
		}
	}

	if best != "" {
		return best
	}
	return available[0]
}

// MatchLanguage checks a requested language against the available list and
// returns the available form it matches, trying an exact match before a
// base-language match ("en-GB" matches available "en").
func MatchLanguage(requested string, available []string) (string, bool) {
	norm := normalizeLanguageTag(requested)
	if norm == "" {
		return "", false
	}
	for _, avail := range available {
		if normalizeLanguageTag(avail) == norm {
			return avail, true
		}
	}
	for _, avail := range available {
		if matchesLanguage(norm, avail) {
			return avail, true
		}
	}
	return "", false
}

// parseLanguageTags parses the Accept-Language header into language tags with quality values
func parseLanguageTags(header string) []languageTag {
	// Truncate oversized headers
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	var tags []languageTag

	for part := range strings.SplitSeq(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		quality := 1.0
		langPart := part

		if lang, qPart, found := strings.Cut(part, ";"); found {
			langPart = strings.TrimSpace(lang)
			qPart = strings.TrimSpace(qPart)
			if after, ok := strings.CutPrefix(qPart, "q="); ok {
				if q, err := strconv.ParseFloat(after, 64); err == nil && q >= 0 && q <= 1 {
					quality = q
				}
			}
		}

		if langPart != "" && langPart != "*" {
			tags = append(tags, languageTag{
				tag:     normalizeLanguageTag(langPart),
				quality: quality,
			})
		}
	}

	// Sort by quality descending to respect user preferences
	slices.SortFunc(tags, func(a, b languageTag) int {
		return cmp.Compare(b.quality, a.quality)
	})

	return tags
}

// normalizeLanguageTag normalizes a language tag to lowercase
func normalizeLanguageTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}

// matchesLanguage checks if a requested language matches an available language.
// Supports base-language matching: "en" matches "en-us" and vice versa.
func matchesLanguage(requested, available string) bool {
	requested = normalizeLanguageTag(requested)
	available = normalizeLanguageTag(available)

	if requested == available {
		return true
	}

	reqBase, _, _ := strings.Cut(requested, "-")
	availBase, _, _ := strings.Cut(available, "-")
	return reqBase == availBase
}
