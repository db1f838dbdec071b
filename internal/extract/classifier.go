package extract

import (
	"regexp"
	"strings"

	"github.com/Robindeep5394188/Material-Review/pkg/models"
)

var (
	slvRe   = regexp.MustCompile(`\bSLV\b`)
	lidRe   = regexp.MustCompile(`\bLID\b`)
	glassRe = regexp.MustCompile(`\bGLASS\b`)
	frgRe   = regexp.MustCompile(`\bFRG\b`)
)

// rule is one step of the classification chain. A rule with an empty
// category excludes the line from every bucket.
type rule struct {
	name     string
	match    func(string) bool
	category models.Category
}

// ruleChain is evaluated top to bottom, first match wins. Order matters:
// the two polysheet exclusions must run before the wrap and glass rules
// or a combined polysheet/glass line would land in the wrong bucket.
var ruleChain = []rule{
	{
		name:  "polysheet-lid combination",
		match: func(d string) bool { return strings.Contains(d, "POLYSHEET") && strings.Contains(d, "LID") },
	},
	{
		name:  "polysheet-glass combination",
		match: func(d string) bool { return strings.Contains(d, "POLYSHEET") && strings.Contains(d, "GLASS") },
	},
	{
		name: "wrap indicators",
		match: func(d string) bool {
			return strings.Contains(d, "SBA") || strings.Contains(d, "SHRINK") ||
				strings.Contains(d, "SLEEVE") || slvRe.MatchString(d)
		},
		category: models.CategoryWrap,
	},
	{
		name:     "front label",
		match:    func(d string) bool { return strings.Contains(d, "FLBL") || strings.Contains(d, "WLBL") },
		category: models.CategoryFrontLabel,
	},
	{
		name:     "back label",
		match:    func(d string) bool { return strings.Contains(d, "BLBL") },
		category: models.CategoryBackLabel,
	},
	{
		name:     "lid",
		match:    func(d string) bool { return lidRe.MatchString(d) },
		category: models.CategoryLid,
	},
	{
		name: "glass",
		match: func(d string) bool {
			return (strings.Contains(d, "CYLINDER") && strings.Contains(d, "GLASS")) || glassRe.MatchString(d)
		},
		category: models.CategoryGlass,
	},
	{
		name:     "fragrance",
		match:    func(d string) bool { return strings.Contains(d, "FRAG") || frgRe.MatchString(d) },
		category: models.CategoryFragrance,
	},
}

// Classify assigns a document line to at most one component category.
// Lines matching no rule, or matching an exclusion rule, contribute nothing.
func Classify(line string) (models.Category, bool) {
	d := strings.ToUpper(line)
	for _, r := range ruleChain {
		if r.match(d) {
			if r.category == "" {
				return "", false
			}
			return r.category, true
		}
	}
	return "", false
}
