package advisor

import (
	"fmt"
	"strings"

	"github.com/wealthwise/wealthwise/core/profile"
)

// jsonOnlyInstruction is appended to every prompt. The model must emit the
// record itself, not a description of it; schema echoes are rejected by the
// recovery pipeline.
const jsonOnlyInstruction = `
CRITICAL INSTRUCTIONS:
- Respond with ONLY valid JSON data, no explanations outside the JSON
- Do NOT include schema definitions or "$schema" fields
- Do NOT wrap the JSON in markdown code blocks
- Be specific with numbers and recommendations`

func writeProfileFacts(b *strings.Builder, p profile.UserProfile) {
	fmt.Fprintf(b, "User profile:\n")
	fmt.Fprintf(b, "- Age: %d\n", p.Age)
	if p.Location != "" {
		fmt.Fprintf(b, "- Location: %s\n", p.Location)
	}
	fmt.Fprintf(b, "- Employment status: %s\n", p.EmploymentStatus)
	fmt.Fprintf(b, "- Annual income: %.2f\n", p.AnnualIncome)
	fmt.Fprintf(b, "- Monthly expenses: %.2f\n", p.MonthlyExpenses)
	fmt.Fprintf(b, "- Current savings: %.2f\n", p.CurrentSavings)
	fmt.Fprintf(b, "- Current investments: %.2f\n", p.CurrentInvestments)
	fmt.Fprintf(b, "- Monthly savings capacity: %.2f\n", p.MonthlySavingsCapacity)
	if p.TotalDebt > 0 {
		fmt.Fprintf(b, "- Total debt: %.2f (monthly payments %.2f)\n", p.TotalDebt, p.MonthlyDebtPayments)
	}
	fmt.Fprintf(b, "- Risk tolerance: %s\n", p.RiskTolerance)
	fmt.Fprintf(b, "- Investment experience: %d years\n", p.InvestmentExperience)
	if len(p.PreferredSectors) > 0 {
		fmt.Fprintf(b, "- Preferred sectors: %s\n", strings.Join(p.PreferredSectors, ", "))
	}
	fmt.Fprintf(b, "- Family dependents: %d\n", p.FamilyDependents)
	fmt.Fprintf(b, "- Has emergency fund: %t\n", p.HasEmergencyFund)
}

// adviceRecordFormat names the keys of the expected advice document so the
// model's output survives strict decoding.
const adviceRecordFormat = `
Respond as a single JSON object with these fields:
- "advice_summary": concise 2-3 sentence executive summary (required)
- "detailed_analysis": comprehensive multi-paragraph analysis (required)
- "action_items": array of objects with "title", "description", "priority"
  (one of "low", "medium", "high", "urgent"), "category", "timeline",
  "estimated_impact", "resources_needed", "success_metrics" (required)
- "risk_assessment": object with "overall_risk_level", "risk_factors",
  "mitigation_strategies", "risk_tolerance_alignment" (boolean, required)
- "portfolio_analysis": optional object with "current_allocation",
  "recommended_allocation", "diversification_score" (0-100),
  "rebalancing_needed", "optimization_opportunities"
- "confidence_level": one of "very_low", "low", "medium", "high",
  "very_high" (required)
- "follow_up_timeline": when to review this advice (required)
- "additional_resources": optional array of strings`

func advisorPrompt(p profile.UserProfile) string {
	var b strings.Builder
	b.WriteString("Provide comprehensive, actionable financial advice for the user below.\n\n")
	writeProfileFacts(&b, p)
	b.WriteString("\nCover overall financial health, prioritized action items, risk analysis, and retirement readiness.\n")
	b.WriteString(adviceRecordFormat)
	b.WriteString("\n")
	b.WriteString(jsonOnlyInstruction)
	return b.String()
}

func portfolioPrompt(p profile.UserProfile, pf profile.Portfolio) string {
	var b strings.Builder
	b.WriteString("Analyze this investment portfolio and recommend optimizations.\n\n")
	fmt.Fprintf(&b, "Portfolio overview:\n")
	fmt.Fprintf(&b, "- Total value: %.2f\n", pf.TotalValue)
	fmt.Fprintf(&b, "- Cash balance: %.2f\n", pf.CashBalance)
	if pf.TotalCostBasis > 0 {
		fmt.Fprintf(&b, "- Total cost basis: %.2f\n", pf.TotalCostBasis)
		fmt.Fprintf(&b, "- Unrealized gain/loss: %.2f\n", pf.UnrealizedGainLoss)
	}
	fmt.Fprintf(&b, "- Holdings: %d positions\n\n", len(pf.Holdings))
	writeProfileFacts(&b, p)
	b.WriteString("\nCover asset allocation, diversification, risk, rebalancing, and optimization opportunities.\n")
	b.WriteString(adviceRecordFormat)
	b.WriteString("\n")
	b.WriteString(jsonOnlyInstruction)
	return b.String()
}

func riskPrompt(p profile.UserProfile) string {
	var b strings.Builder
	b.WriteString("Assess the financial risk position of the user below.\n\n")
	writeProfileFacts(&b, p)
	b.WriteString("\nIdentify concrete risk factors, stress scenarios, and mitigation strategies, and state whether the user's declared risk tolerance matches their actual position.\n")
	b.WriteString(adviceRecordFormat)
	b.WriteString("\n")
	b.WriteString(jsonOnlyInstruction)
	return b.String()
}

func recommendationsPrompt(prefs profile.MarketPreferences) string {
	var b strings.Builder
	b.WriteString("Provide current market insights and sector recommendations.\n\n")
	b.WriteString("Preferences:\n")
	if len(prefs.FocusRegions) > 0 {
		fmt.Fprintf(&b, "- Focus regions: %s\n", strings.Join(prefs.FocusRegions, ", "))
	}
	if prefs.CurrencyPreference != "" {
		fmt.Fprintf(&b, "- Currency: %s\n", prefs.CurrencyPreference)
	}
	if prefs.AnalysisTimeframe != "" {
		fmt.Fprintf(&b, "- Analysis timeframe: %s\n", prefs.AnalysisTimeframe)
	}
	b.WriteString(`
Respond as a single JSON object with these fields:
- "recommendation_type": short label for the recommendation set (required)
- "executive_summary": concise summary of the market outlook (required)
- "market_insights": optional array of objects with "title", "description",
  "impact_level", "timeframe", "confidence_score" (0.0-1.0)
- "news_analysis": optional array of objects with "headline", "source",
  "impact_analysis", "sentiment_score" (-1.0 to 1.0), "relevance_score"
  (0.0-1.0)
- "sector_recommendations": optional array of objects with "sector_name",
  "recommendation_type" (one of "buy", "sell", "hold", "reduce",
  "increase", "avoid"), "confidence_level" (one of "very_low", "low",
  "medium", "high", "very_high"), "rationale", "key_drivers",
  "potential_risks", "time_horizon", optional "allocation_suggestion"
  (0-100)
- "current_risk_factors": optional array of strings
- "identified_opportunities": optional array of strings
`)
	b.WriteString(jsonOnlyInstruction)
	return b.String()
}

func plannerPrompt(p profile.UserProfile, goals profile.FinancialGoals) string {
	var b strings.Builder
	b.WriteString("Build savings and investment strategies for the user's financial goals.\n\n")
	writeProfileFacts(&b, p)
	b.WriteString("\nGoals:\n")
	for _, g := range goals.Goals {
		fmt.Fprintf(&b, "- %s (%s): target %.2f by %s, currently %.2f, priority %d\n",
			g.GoalName, g.GoalType, g.TargetAmount, g.TargetDate.Format("2006-01-02"), g.CurrentAmount, g.Priority)
	}
	b.WriteString(`
Respond as a single JSON object with these fields:
- "planner_type": short label for the planning approach (required)
- "overall_strategy_summary": summary of the combined strategy (required)
- "goal_strategies": optional array of objects with "goal_id", "goal_name",
  "strategy_summary", "monthly_savings_required" (non-negative),
  "recommended_investments", "risk_level", "probability_of_success"
  (0.0-1.0)
- "savings_optimization": object with "current_savings_rate",
  "optimal_savings_rate", "savings_reallocation",
  "compound_interest_impact" (required)
- "progress_tracking": optional array of objects with "goal_id",
  "current_progress_percentage" (0-100), "on_track_status" (boolean),
  "completion_probability" (0.0-1.0)
- "goal_conflicts": optional array of strings
- "priority_adjustments": optional array of strings
`)
	b.WriteString(jsonOnlyInstruction)
	return b.String()
}
