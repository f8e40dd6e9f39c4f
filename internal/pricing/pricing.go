package pricing

import (
	"strconv"
	"strings"

	"promosync/internal/models"
)

// ApplicableMargin scans the rule set in list order and returns the margin of
// the first rule whose condition holds for the product's category/supplier
// classification. If no rule matches it returns the default margin.
func ApplicableMargin(category, supplier string, rules models.RuleSet) float64 {
	for _, rule := range rules.Rules {
		var fieldValue string
		switch rule.Field {
		case models.RuleFieldCategory:
			fieldValue = category
		case models.RuleFieldSupplier:
			fieldValue = supplier
		default:
			continue
		}

		if matches(fieldValue, rule.Operator, rule.Value) {
			return rule.Margin
		}
	}
	return rules.DefaultMargin
}

// matches evaluates a single condition. Comparison is case-insensitive; a
// condition is trivially false when either side is empty.
func matches(fieldValue string, op models.RuleOperator, ruleValue string) bool {
	if fieldValue == "" || ruleValue == "" {
		return false
	}

	have := strings.ToLower(fieldValue)
	want := strings.ToLower(ruleValue)

	switch op {
	case models.OperatorIs:
		return have == want
	case models.OperatorIsNot:
		return have != want
	case models.OperatorContains:
		return strings.Contains(have, want)
	case models.OperatorDoesNotContain:
		return !strings.Contains(have, want)
	default:
		return false
	}
}

// Apply computes the storefront regular price from a base supplier price and
// a margin percentage, formatted to exactly two decimal places.
func Apply(basePrice, margin float64) string {
	return strconv.FormatFloat(basePrice*(1+margin/100), 'f', 2, 64)
}
