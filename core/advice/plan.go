package advice

// GoalStrategy is the model's plan for reaching one financial goal.
type GoalStrategy struct {
	GoalID                  string           `json:"goal_id"`
	GoalName                string           `json:"goal_name"`
	StrategySummary         string           `json:"strategy_summary"`
	MonthlySavingsRequired  *float64         `json:"monthly_savings_required"`
	RecommendedInvestments  []string         `json:"recommended_investments"`
	RiskLevel               string           `json:"risk_level"`
	ProbabilityOfSuccess    *float64         `json:"probability_of_success"`
	Milestones              []map[string]any `json:"milestones,omitempty"`
	ProgressTracking        map[string]any   `json:"progress_tracking,omitempty"`
	OptimizationSuggestions []string         `json:"optimization_suggestions,omitempty"`
	AlternativeScenarios    []map[string]any `json:"alternative_scenarios,omitempty"`
}

// Validate enforces required fields, a non-negative savings requirement, and
// the 0–1 success probability.
func (g *GoalStrategy) Validate() error {
	if err := firstError(
		requireString("goal_id", g.GoalID),
		requireString("goal_name", g.GoalName),
		requireString("strategy_summary", g.StrategySummary),
		requireString("risk_level", g.RiskLevel),
	); err != nil {
		return err
	}
	if err := requireNonNegative("monthly_savings_required", g.MonthlySavingsRequired); err != nil {
		return err
	}
	if g.RecommendedInvestments == nil {
		return &MissingFieldError{Field: "recommended_investments"}
	}
	return requireRange("probability_of_success", g.ProbabilityOfSuccess, 0, 1)
}

// SavingsOptimization recommends how savings should be rebalanced across
// goals.
type SavingsOptimization struct {
	CurrentSavingsRate        *float64           `json:"current_savings_rate"`
	OptimalSavingsRate        *float64           `json:"optimal_savings_rate"`
	SavingsReallocation       map[string]float64 `json:"savings_reallocation"`
	AutomationRecommendations []string           `json:"automation_recommendations,omitempty"`
	TaxOptimization           []string           `json:"tax_optimization,omitempty"`
	ProjectedSavingsGrowth    map[string]float64 `json:"projected_savings_growth,omitempty"`
	CompoundInterestImpact    *float64           `json:"compound_interest_impact"`
}

// Validate enforces the required rates, reallocation map, and impact figure.
func (s *SavingsOptimization) Validate() error {
	if s.CurrentSavingsRate == nil {
		return &MissingFieldError{Field: "current_savings_rate"}
	}
	if s.OptimalSavingsRate == nil {
		return &MissingFieldError{Field: "optimal_savings_rate"}
	}
	if s.SavingsReallocation == nil {
		return &MissingFieldError{Field: "savings_reallocation"}
	}
	if s.CompoundInterestImpact == nil {
		return &MissingFieldError{Field: "compound_interest_impact"}
	}
	return nil
}

// ProgressTracking reports how far along one goal is.
type ProgressTracking struct {
	GoalID                    string         `json:"goal_id"`
	CurrentProgressPercentage *float64       `json:"current_progress_percentage"`
	OnTrackStatus             *bool          `json:"on_track_status"`
	DeviationAmount           *float64       `json:"deviation_amount,omitempty"`
	RecommendedAdjustments    []string       `json:"recommended_adjustments,omitempty"`
	NextMilestone             map[string]any `json:"next_milestone,omitempty"`
	CompletionProbability     *float64       `json:"completion_probability"`
}

// Validate enforces required fields, the 0–100 progress percentage, and the
// 0–1 completion probability.
func (p *ProgressTracking) Validate() error {
	if err := requireString("goal_id", p.GoalID); err != nil {
		return err
	}
	if err := requireRange("current_progress_percentage", p.CurrentProgressPercentage, 0, 100); err != nil {
		return err
	}
	if p.OnTrackStatus == nil {
		return &MissingFieldError{Field: "on_track_status"}
	}
	return requireRange("completion_probability", p.CompletionProbability, 0, 1)
}

// PlanRecord is the typed response schema for goal-planning requests.
type PlanRecord struct {
	PlannerType            string               `json:"planner_type"`
	OverallStrategySummary string               `json:"overall_strategy_summary"`
	GoalStrategies         []GoalStrategy       `json:"goal_strategies,omitempty"`
	SavingsOptimization    *SavingsOptimization `json:"savings_optimization"`
	ProgressTracking       []ProgressTracking   `json:"progress_tracking,omitempty"`
	GoalConflicts          []string             `json:"goal_conflicts,omitempty"`
	SynergyOpportunities   []string             `json:"synergy_opportunities,omitempty"`
	PriorityAdjustments    []string             `json:"priority_adjustments,omitempty"`
	NetWorthProjection     map[string]float64   `json:"net_worth_projection,omitempty"`
	CashFlowProjections    map[string]float64   `json:"cash_flow_projections,omitempty"`
	ScenarioAnalysis       map[string]any       `json:"scenario_analysis,omitempty"`
	StressTestResults      map[string]any       `json:"stress_test_results,omitempty"`
	ImmediateActions       []ActionItem         `json:"immediate_actions,omitempty"`
	QuarterlyReviews       []string             `json:"quarterly_reviews,omitempty"`
}

// Validate enforces the planner schema: required planner type, strategy
// summary, and savings optimization; optional lists are validated per
// element when present.
func (r *PlanRecord) Validate() error {
	if err := firstError(
		requireString("planner_type", r.PlannerType),
		requireString("overall_strategy_summary", r.OverallStrategySummary),
	); err != nil {
		return err
	}
	for i := range r.GoalStrategies {
		if err := r.GoalStrategies[i].Validate(); err != nil {
			return prefixField(err, indexed("goal_strategies", i))
		}
	}
	if r.SavingsOptimization == nil {
		return &MissingFieldError{Field: "savings_optimization"}
	}
	if err := r.SavingsOptimization.Validate(); err != nil {
		return prefixField(err, "savings_optimization")
	}
	for i := range r.ProgressTracking {
		if err := r.ProgressTracking[i].Validate(); err != nil {
			return prefixField(err, indexed("progress_tracking", i))
		}
	}
	for i := range r.ImmediateActions {
		if err := r.ImmediateActions[i].Validate(); err != nil {
			return prefixField(err, indexed("immediate_actions", i))
		}
	}
	return nil
}
