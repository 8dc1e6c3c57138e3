package advice

// ActionItem is a single recommended action with its priority and timeline.
type ActionItem struct {
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	Priority        ActionPriority `json:"priority"`
	Category        string         `json:"category"`
	Timeline        string         `json:"timeline"`
	EstimatedImpact string         `json:"estimated_impact,omitempty"`
	ResourcesNeeded []string       `json:"resources_needed,omitempty"`
	SuccessMetrics  []string       `json:"success_metrics,omitempty"`
}

// Validate enforces the required fields and the priority enumeration.
func (a *ActionItem) Validate() error {
	if err := firstError(
		requireString("title", a.Title),
		requireString("description", a.Description),
		requireString("category", a.Category),
		requireString("timeline", a.Timeline),
	); err != nil {
		return err
	}
	if a.Priority == "" {
		return &MissingFieldError{Field: "priority"}
	}
	if !a.Priority.Valid() {
		return &InvalidEnumValueError{Field: "priority", Value: string(a.Priority), Allowed: actionPriorities}
	}
	return nil
}

// RiskAssessment summarises the caller's financial risk position.
type RiskAssessment struct {
	OverallRiskLevel       string         `json:"overall_risk_level"`
	RiskFactors            []string       `json:"risk_factors"`
	MitigationStrategies   []string       `json:"mitigation_strategies"`
	RiskToleranceAlignment *bool          `json:"risk_tolerance_alignment"`
	StressTestResults      map[string]any `json:"stress_test_results,omitempty"`
}

// Validate enforces the required fields. The factor and strategy lists must
// be present, though they may legitimately be empty.
func (r *RiskAssessment) Validate() error {
	if err := requireString("overall_risk_level", r.OverallRiskLevel); err != nil {
		return err
	}
	if r.RiskFactors == nil {
		return &MissingFieldError{Field: "risk_factors"}
	}
	if r.MitigationStrategies == nil {
		return &MissingFieldError{Field: "mitigation_strategies"}
	}
	if r.RiskToleranceAlignment == nil {
		return &MissingFieldError{Field: "risk_tolerance_alignment"}
	}
	return nil
}

// PortfolioAnalysis carries allocation and performance findings for an
// existing portfolio.
type PortfolioAnalysis struct {
	CurrentAllocation         map[string]float64 `json:"current_allocation"`
	RecommendedAllocation     map[string]float64 `json:"recommended_allocation"`
	DiversificationScore      *float64           `json:"diversification_score"`
	PerformanceMetrics        map[string]float64 `json:"performance_metrics"`
	RebalancingNeeded         *bool              `json:"rebalancing_needed"`
	UnderperformingAssets     []string           `json:"underperforming_assets,omitempty"`
	OptimizationOpportunities []string           `json:"optimization_opportunities,omitempty"`
}

// Validate enforces required fields and the 0–100 diversification score.
func (p *PortfolioAnalysis) Validate() error {
	if p.CurrentAllocation == nil {
		return &MissingFieldError{Field: "current_allocation"}
	}
	if p.RecommendedAllocation == nil {
		return &MissingFieldError{Field: "recommended_allocation"}
	}
	if err := requireRange("diversification_score", p.DiversificationScore, 0, 100); err != nil {
		return err
	}
	if p.PerformanceMetrics == nil {
		return &MissingFieldError{Field: "performance_metrics"}
	}
	if p.RebalancingNeeded == nil {
		return &MissingFieldError{Field: "rebalancing_needed"}
	}
	return nil
}

// AdviceRecord is the typed response schema for personal financial advice,
// portfolio analysis, and risk assessment requests.
type AdviceRecord struct {
	AdviceSummary       string             `json:"advice_summary"`
	DetailedAnalysis    string             `json:"detailed_analysis"`
	ActionItems         []ActionItem       `json:"action_items"`
	RiskAssessment      *RiskAssessment    `json:"risk_assessment"`
	PortfolioAnalysis   *PortfolioAnalysis `json:"portfolio_analysis,omitempty"`
	ConfidenceLevel     ConfidenceLevel    `json:"confidence_level"`
	FollowUpTimeline    string             `json:"follow_up_timeline"`
	AdditionalResources []string           `json:"additional_resources,omitempty"`
	ProjectedNetWorth   map[string]float64 `json:"projected_net_worth,omitempty"`
	SavingsProjections  map[string]float64 `json:"savings_projections,omitempty"`
	RetirementReadiness map[string]any     `json:"retirement_readiness,omitempty"`
}

// Validate enforces the advice schema: required summary, analysis, action
// items, risk assessment, confidence level, and follow-up timeline; the
// optional portfolio analysis is validated only when present.
func (r *AdviceRecord) Validate() error {
	if err := firstError(
		requireString("advice_summary", r.AdviceSummary),
		requireString("detailed_analysis", r.DetailedAnalysis),
	); err != nil {
		return err
	}
	if r.ActionItems == nil {
		return &MissingFieldError{Field: "action_items"}
	}
	for i := range r.ActionItems {
		if err := r.ActionItems[i].Validate(); err != nil {
			return prefixField(err, indexed("action_items", i))
		}
	}
	if r.RiskAssessment == nil {
		return &MissingFieldError{Field: "risk_assessment"}
	}
	if err := r.RiskAssessment.Validate(); err != nil {
		return prefixField(err, "risk_assessment")
	}
	if r.PortfolioAnalysis != nil {
		if err := r.PortfolioAnalysis.Validate(); err != nil {
			return prefixField(err, "portfolio_analysis")
		}
	}
	if r.ConfidenceLevel == "" {
		return &MissingFieldError{Field: "confidence_level"}
	}
	if !r.ConfidenceLevel.Valid() {
		return &InvalidEnumValueError{Field: "confidence_level", Value: string(r.ConfidenceLevel), Allowed: confidenceLevels}
	}
	return requireString("follow_up_timeline", r.FollowUpTimeline)
}
