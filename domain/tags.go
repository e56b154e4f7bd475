// SPDX-License-Identifier: GPL-3.0-or-later
package domain

import (
	"regexp"
	"strings"
)

const MaxTagLength = 100

var (
	tagSpaces   = regexp.MustCompile(`\s+`)
	tagDashes   = regexp.MustCompile(`-{2,}`)
	tagFiltered = regexp.MustCompile("[/?#\\[\\]@!$&'()*+,;=.%\\\\`^|{}\"<>]+")
)

// CleanTag normalizes a tag name, an empty result means the name is unusable.
func CleanTag(name string) string {
	tag := strings.ToLower(strings.TrimSpace(name))
	tag = tagSpaces.ReplaceAllString(tag, "-")
	tag = tagFiltered.ReplaceAllString(tag, "")
	tag = tagDashes.ReplaceAllString(tag, "-")

	runes := []rune(tag)
	if len(runes) > MaxTagLength {
		tag = string(runes[:MaxTagLength])
	}
	return tag
}

// CleanTags cleans, dedupes and drops empty names, keeping the first occurrence order.
func CleanTags(names []string) []string {
	seen := map[string]bool{}
	tags := []string{}
	for _, n := range names {
		t := CleanTag(n)
		if len(t) == 0 || seen[t] {
			continue
		}
		seen[t] = true
		tags = append(tags, t)
	}
	return tags
}
