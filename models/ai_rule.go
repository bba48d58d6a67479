package models

import (
	"regexp"
	"slices"
	"time"
)

// AiRule is an instruction template steering AI-generated case text.
// Placeholders use the {{parameter}} syntax. Priorities are dense (1..N)
// within a category; the reorder operation is the only way to change them.
type AiRule struct {
	Id        string
	Name      string
	Template  string
	Category  AiRuleCategory
	RuleType  AiRuleType
	Priority  int
	Enabled   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type AiRuleCategory string

const (
	AiRuleCategoryCaseDescription AiRuleCategory = "case_description"
	AiRuleCategoryDonorMessage    AiRuleCategory = "donor_message"
	AiRuleCategoryReport          AiRuleCategory = "report"
	AiRuleCategoryUnknown         AiRuleCategory = "unknown"
)

var ValidAiRuleCategories = []AiRuleCategory{
	AiRuleCategoryCaseDescription,
	AiRuleCategoryDonorMessage,
	AiRuleCategoryReport,
}

func AiRuleCategoryFrom(s string) AiRuleCategory {
	if slices.Contains(ValidAiRuleCategories, AiRuleCategory(s)) {
		return AiRuleCategory(s)
	}
	return AiRuleCategoryUnknown
}

type AiRuleType string

const (
	AiRuleTypeStyle   AiRuleType = "style"
	AiRuleTypeContent AiRuleType = "content"
	AiRuleTypeSafety  AiRuleType = "safety"
	AiRuleTypeUnknown AiRuleType = "unknown"
)

var ValidAiRuleTypes = []AiRuleType{AiRuleTypeStyle, AiRuleTypeContent, AiRuleTypeSafety}

func AiRuleTypeFrom(s string) AiRuleType {
	if slices.Contains(ValidAiRuleTypes, AiRuleType(s)) {
		return AiRuleType(s)
	}
	return AiRuleTypeUnknown
}

var aiRuleParamPattern = regexp.MustCompile(`\{\{\s*([a-zA-Z0-9_]+)\s*\}\}`)

// ExtractParams returns the placeholder names of a template, deduplicated,
// in order of first appearance.
func (r AiRule) ExtractParams() []string {
	return ExtractTemplateParams(r.Template)
}

func ExtractTemplateParams(template string) []string {
	matches := aiRuleParamPattern.FindAllStringSubmatch(template, -1)
	params := make([]string, 0, len(matches))
	seen := make(map[string]struct{}, len(matches))
	for _, m := range matches {
		if _, ok := seen[m[1]]; ok {
			continue
		}
		seen[m[1]] = struct{}{}
		params = append(params, m[1])
	}
	return params
}

// SubstituteTemplateParams replaces every {{param}} placeholder with its
// value. Placeholders without a value are left untouched.
func SubstituteTemplateParams(template string, params map[string]string) string {
	return aiRuleParamPattern.ReplaceAllStringFunc(template, func(match string) string {
		name := aiRuleParamPattern.FindStringSubmatch(match)[1]
		if value, ok := params[name]; ok {
			return value
		}
		return match
	})
}

type CreateAiRuleAttributes struct {
	Name     string
	Template string
	Category AiRuleCategory
	RuleType AiRuleType
	Enabled  bool
}

type UpdateAiRuleAttributes struct {
	Id       string
	Name     *string
	Template *string
	RuleType *AiRuleType
	Enabled  *bool
}

type ReorderAiRulesAttributes struct {
	Category   AiRuleCategory
	OrderedIds []string
}
