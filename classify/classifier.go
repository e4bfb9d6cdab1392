package classify

import (
	"strings"

	"github.com/bighouseburgers/ops_backend/config"
)

// CategoryOther is returned when no rule matches.
const CategoryOther = "Other"

// Classifier assigns a category to a free-text (name, type) pair using an
// ordered keyword rule set. Rule order is the priority; classification is a
// pure function of the rule set and its inputs.
type Classifier struct {
	rules []config.CategoryRule
}

func New(rules []config.CategoryRule) *Classifier {
	return &Classifier{rules: rules}
}

// Categorize returns the first category any of whose keywords is a
// case-insensitive substring of either field.
func (c *Classifier) Categorize(name, typ string) string {
	loweredName := strings.ToLower(name)
	loweredType := strings.ToLower(typ)
	for _, rule := range c.rules {
		for _, keyword := range rule.Keywords {
			k := strings.ToLower(keyword)
			if k == "" {
				continue
			}
			if strings.Contains(loweredName, k) || strings.Contains(loweredType, k) {
				return rule.Category
			}
		}
	}
	return CategoryOther
}

// Categories lists the rule categories in priority order.
func (c *Classifier) Categories() []string {
	out := make([]string, 0, len(c.rules))
	for _, r := range c.rules {
		out = append(out, r.Category)
	}
	return out
}
