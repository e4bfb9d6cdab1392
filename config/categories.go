package config

// CategoryRule maps free-text vendor or payroll names onto an expense
// category. Rule order is the match priority.
type CategoryRule struct {
	Category string
	Keywords []string
}

// CategoryRuleSetVersion changes whenever DefaultCategoryRules changes, so
// artifacts can record which rule set produced them.
const CategoryRuleSetVersion = "2025-08"

// DefaultCategoryRules is the vendor/payroll keyword table for both
// locations. Keywords are matched as case-insensitive substrings.
func DefaultCategoryRules() []CategoryRule {
	return []CategoryRule{
		{
			Category: "Food Expense",
			Keywords: []string{
				"Big House Burgers Kingsville", "CC Produce", "Corpus Christi Produce",
				"M&M Ramos Distribution", "MCM Bread and Sweets", "US Foods",
				"Cash & Carry", "Pepsi Cola", "Pepsi-Cola",
			},
		},
		{
			Category: "Beer Expense",
			Keywords: []string{
				"Andrew's Distributors", "L&F Distributors",
			},
		},
		{
			Category: "Liquor Expenses",
			Keywords: []string{
				"The Jigger", "Jigger", "Discount Liquor",
			},
		},
		{
			Category: "Payroll Expense",
			Keywords: []string{
				"Hourly Regular", "Hourly OT", "Manager Salary", "Assistant Manager",
				"Admin", "Vacation", "Bonus",
			},
		},
		{
			Category: "Utility Expense",
			Keywords: []string{
				"Centerpoint", "Center Point", "Constellation", "Directv", "Jim Wells",
				"Jim wells County Appraisal District", "NuCo2", "STGR", "Spectrum",
				"Toast", "Easy", "City of Kingsville",
			},
		},
	}
}
