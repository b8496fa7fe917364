// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the search-agent pipeline.
package types

// Intent labels a query as answerable directly or requiring the
// multi-stage company research workflow.
type Intent string

const (
	IntentSimple   Intent = "simple"
	IntentResearch Intent = "research"
)

// Category is one of the fixed research topics evaluated per company.
type Category string

const (
	CategoryCustomers   Category = "customers and target audience"
	CategoryProducts    Category = "products and services"
	CategoryFeatures    Category = "features and capabilities"
	CategoryPricing     Category = "pricing information"
	CategoryPositioning Category = "market positioning and competitors"
)

// Categories returns the fixed, ordered category set. The compiled report's
// section order follows this order.
func Categories() []Category {
	return []Category{
		CategoryCustomers,
		CategoryProducts,
		CategoryFeatures,
		CategoryPricing,
		CategoryPositioning,
	}
}

// CategoryResult holds the generated text for one category and the model
// that produced it. Failed reports that both capability tiers failed and
// Text carries a placeholder instead of research content.
type CategoryResult struct {
	Text      string `json:"text" yaml:"text"`
	ModelUsed string `json:"model_used" yaml:"model_used"`
	Failed    bool   `json:"failed,omitempty" yaml:"failed,omitempty"`
}

// ResearchBundle maps every category to its result. A bundle produced by
// the researcher always contains all five categories, even when individual
// lookups fail.
type ResearchBundle map[Category]CategoryResult

// Texts returns the category→text mapping keyed by category string.
func (b ResearchBundle) Texts() map[string]string {
	out := make(map[string]string, len(b))
	for cat, r := range b {
		out[string(cat)] = r.Text
	}
	return out
}

// ModelsUsed returns the category→model mapping keyed by category string.
func (b ResearchBundle) ModelsUsed() map[string]string {
	out := make(map[string]string, len(b))
	for cat, r := range b {
		out[string(cat)] = r.ModelUsed
	}
	return out
}

// Complete reports whether every fixed category is present exactly once.
func (b ResearchBundle) Complete() bool {
	for _, cat := range Categories() {
		if _, ok := b[cat]; !ok {
			return false
		}
	}
	return len(b) == len(Categories())
}

// Result is the externally observable outcome of one pipeline invocation.
// QueryType selects which branch fields are populated: Response/TokensUsed/
// ModelUsed for a simple answer, the company fields for a research report.
type Result struct {
	QueryType     Intent `json:"query_type" yaml:"query_type"`
	OriginalQuery string `json:"original_query" yaml:"original_query"`

	// Simple branch.
	Response   string `json:"response,omitempty" yaml:"response,omitempty"`
	TokensUsed int    `json:"tokens_used,omitempty" yaml:"tokens_used,omitempty"`
	ModelUsed  string `json:"model_used,omitempty" yaml:"model_used,omitempty"`

	// Research branch.
	CompanyName     string            `json:"company_name,omitempty" yaml:"company_name,omitempty"`
	OfficialWebsite string            `json:"official_website,omitempty" yaml:"official_website,omitempty"`
	ResearchReport  string            `json:"research_report,omitempty" yaml:"research_report,omitempty"`
	ResearchData    map[string]string `json:"research_data,omitempty" yaml:"research_data,omitempty"`
	ModelsUsed      map[string]string `json:"models_used,omitempty" yaml:"models_used,omitempty"`
}
