package gap

import "strings"

// skillAliases maps a lowercased skill name to alternative spellings that
// count as a match in resume text.
var skillAliases = map[string][]string{
	"javascript": {"js", "node.js", "nodejs"},
	"typescript": {"ts"},
	"python":     {"py"},
	"postgresql": {"postgres"},
	"kubernetes": {"k8s"},
	"react":      {"reactjs", "react.js"},
	"vue":        {"vuejs", "vue.js"},
	"angular":    {"angularjs"},
}

// skillVariations returns the known alternative spellings of a skill plus
// three generated variants: no-spaces, no-hyphens, and hyphen-joined.
func skillVariations(skillLower string) []string {
	var variations []string
	if aliases, ok := skillAliases[skillLower]; ok {
		variations = append(variations, aliases...)
	}
	variations = append(variations,
		strings.ReplaceAll(skillLower, " ", ""),
		strings.ReplaceAll(skillLower, "-", ""),
		strings.ReplaceAll(skillLower, " ", "-"),
	)
	return variations
}

// skillInText reports whether a skill, or any of its variations, occurs as
// a substring of the lowercased resume text.
func skillInText(skillName, textLower string) bool {
	skillLower := strings.ToLower(skillName)
	if strings.Contains(textLower, skillLower) {
		return true
	}
	for _, variation := range skillVariations(skillLower) {
		if strings.Contains(textLower, variation) {
			return true
		}
	}
	return false
}
