package render

import "strings"

// skillIcon maps a lowercase substring of a skill name to a decorative icon
// token. Checked in order; the first match wins, so the broader entries sit
// after the specific ones they would shadow.
type skillIcon struct {
	match string
	icon  string
}

var skillIcons = []skillIcon{
	{"javascript", "code"},
	{"react", "code"},
	{"node", "code"},
	{"python", "code"},
	{"java", "code"},
	{"css", "palette"},
	{"html", "palette"},
	{"design", "palette"},
	{"ui/ux", "palette"},
	{"database", "database"},
	{"sql", "database"},
	{"mongodb", "database"},
	{"web", "globe"},
	{"mobile", "smartphone"},
	{"android", "smartphone"},
	{"ios", "smartphone"},
}

const defaultSkillIcon = "zap"

// SkillIcon picks the icon token for a skill name.
func SkillIcon(name string) string {
	lower := strings.ToLower(name)
	for _, entry := range skillIcons {
		if strings.Contains(lower, entry.match) {
			return entry.icon
		}
	}
	return defaultSkillIcon
}
