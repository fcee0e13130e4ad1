package domain

import "time"

// Category groups risk factors by the analyzer that produced them.
type Category string

const (
	// CategoryLexical marks structural findings on the URL string itself.
	CategoryLexical Category = "Lexical"
	// CategoryDomain marks findings derived from domain registration data.
	CategoryDomain Category = "Domain"
	// CategoryBrand marks brand impersonation findings.
	CategoryBrand Category = "Brand"
)

// RiskLevel is the discretized verdict.
type RiskLevel string

const (
	// RiskLevelLow is assigned to scores below the medium boundary.
	RiskLevelLow RiskLevel = "Low"
	// RiskLevelMedium is assigned to scores from the medium boundary up to the high boundary.
	RiskLevelMedium RiskLevel = "Medium"
	// RiskLevelHigh is assigned to scores at or above the high boundary.
	RiskLevelHigh RiskLevel = "High"
)

// RiskFactor is a named, weighted contribution to the overall score.
type RiskFactor struct {
	// Code is a stable identifier of the rule that fired.
	Code string
	// Description is the human-readable justification.
	Description string
	// Weight is the additive, non-negative contribution to the score.
	Weight float64
	// Category names the analyzer that produced the factor.
	Category Category
}

// DomainInfo holds registration data for a registered domain.
// A nil field means the value was unavailable.
type DomainInfo struct {
	Registrar      *string
	CreationDate   *time.Time
	ExpirationDate *time.Time
	// DomainAgeDays is derived from CreationDate as of the lookup time.
	DomainAgeDays *int
}

// Available reports whether any registration data is present.
func (d DomainInfo) Available() bool {
	return d.Registrar != nil || d.CreationDate != nil || d.ExpirationDate != nil
}

// BrandMatch records the best match of a domain against one brand.
type BrandMatch struct {
	Brand       string
	Distance    int
	Description string
}

// Features carries the intermediate data used to compute a verdict.
type Features struct {
	URL          NormalizedURL
	DomainInfo   DomainInfo
	BrandMatches []BrandMatch
}

// AnalysisResult is the verdict returned for a single URL.
type AnalysisResult struct {
	URL         string
	RiskScore   float64
	RiskLevel   RiskLevel
	RiskFactors []RiskFactor
	// Features is only set for verbose analyses.
	Features *Features
}
