package models

type RuleField string

const (
	RuleFieldCategory RuleField = "category"
	RuleFieldSupplier RuleField = "supplier"
)

type RuleOperator string

const (
	OperatorIs             RuleOperator = "is"
	OperatorIsNot          RuleOperator = "is_not"
	OperatorContains       RuleOperator = "contains"
	OperatorDoesNotContain RuleOperator = "does_not_contain"
)

// MarginRule maps a product condition to an overriding margin percentage.
// Rule order matters: evaluation is first-match-wins.
type MarginRule struct {
	Field    RuleField    `json:"field"`
	Operator RuleOperator `json:"operator"`
	Value    string       `json:"value"`
	Margin   float64      `json:"margin"`
}

// RuleSet is the margin configuration a job captures at submission time.
type RuleSet struct {
	DefaultMargin float64      `json:"default_margin"`
	Rules         []MarginRule `json:"margin_rules"`
}

type NotificationSettings struct {
	OnComplete    bool `json:"on_complete"`
	OnItemFailure bool `json:"on_item_failure"`
}

// Settings is the process-wide configuration, shallow-merged on update.
type Settings struct {
	DefaultMargin      float64              `json:"default_margin"`
	MarginRules        []MarginRule         `json:"margin_rules"`
	CategoryMap        map[string]string    `json:"category_map"`
	Notifications      NotificationSettings `json:"notifications"`
	RateLimitPerMinute int                  `json:"rate_limit_per_minute"`
}

func DefaultSettings() Settings {
	return Settings{
		DefaultMargin:      30,
		MarginRules:        []MarginRule{},
		CategoryMap:        map[string]string{},
		Notifications:      NotificationSettings{OnComplete: true, OnItemFailure: true},
		RateLimitPerMinute: 60,
	}
}

// RuleSet extracts the margin configuration portion of the settings.
func (s Settings) RuleSet() RuleSet {
	rules := make([]MarginRule, len(s.MarginRules))
	copy(rules, s.MarginRules)
	return RuleSet{DefaultMargin: s.DefaultMargin, Rules: rules}
}
