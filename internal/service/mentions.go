package service

import "regexp"

var mentionRe = regexp.MustCompile(`@([A-Za-z0-9_.]+)`)

// scanMentions возвращает @-имена в порядке появления, без дублей.
func scanMentions(content string) []string {
	matches := mentionRe.FindAllStringSubmatch(content, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(matches))
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		name := m[1]
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}
