package profile

import "time"

// RiskTolerance is the user's declared appetite for investment risk.
type RiskTolerance string

const (
	RiskConservative   RiskTolerance = "Conservative"
	RiskModerate       RiskTolerance = "Moderate"
	RiskAggressive     RiskTolerance = "Aggressive"
	RiskVeryAggressive RiskTolerance = "VeryAggressive"
)

// EmploymentStatus describes the user's current employment situation.
type EmploymentStatus string

const (
	Employed     EmploymentStatus = "Employed"
	SelfEmployed EmploymentStatus = "SelfEmployed"
	Unemployed   EmploymentStatus = "Unemployed"
	Retired      EmploymentStatus = "Retired"
	Student      EmploymentStatus = "Student"
)

// GoalType classifies a financial goal.
type GoalType string

const (
	GoalRetirement     GoalType = "Retirement"
	GoalHomePurchase   GoalType = "HomePurchase"
	GoalEducation      GoalType = "Education"
	GoalEmergencyFund  GoalType = "EmergencyFund"
	GoalWealthBuilding GoalType = "WealthBuilding"
	GoalDebtPayoff     GoalType = "DebtPayoff"
	GoalTravel         GoalType = "Travel"
	GoalOther          GoalType = "Other"
)

// UserProfile is the caller's financial situation as submitted with a
// request. It is input to prompt construction and input validation only; the
// core never mutates or retains it.
type UserProfile struct {
	UserID           string           `json:"user_id"`
	Age              int              `json:"age"`
	Location         string           `json:"location,omitempty"`
	EmploymentStatus EmploymentStatus `json:"employment_status"`

	AnnualIncome           float64 `json:"annual_income"`
	MonthlyExpenses        float64 `json:"monthly_expenses"`
	CurrentSavings         float64 `json:"current_savings"`
	CurrentInvestments     float64 `json:"current_investments,omitempty"`
	MonthlySavingsCapacity float64 `json:"monthly_savings_capacity"`

	TotalDebt           float64 `json:"total_debt,omitempty"`
	MonthlyDebtPayments float64 `json:"monthly_debt_payments,omitempty"`

	RiskTolerance        RiskTolerance `json:"risk_tolerance"`
	InvestmentExperience int           `json:"investment_experience,omitempty"`
	PreferredSectors     []string      `json:"preferred_sectors,omitempty"`

	FamilyDependents        int     `json:"family_dependents,omitempty"`
	HasEmergencyFund        bool    `json:"has_emergency_fund,omitempty"`
	RetirementContributions float64 `json:"retirement_contributions,omitempty"`
}

// FinancialGoal is one target the user is saving toward.
type FinancialGoal struct {
	GoalID         string    `json:"goal_id"`
	GoalType       GoalType  `json:"goal_type"`
	GoalName       string    `json:"goal_name"`
	TargetAmount   float64   `json:"target_amount"`
	CurrentAmount  float64   `json:"current_amount,omitempty"`
	TargetDate     time.Time `json:"target_date"`
	Priority       int       `json:"priority"`
	IsFlexible     bool      `json:"is_flexible,omitempty"`
	AdditionalInfo string    `json:"additional_info,omitempty"`
}

// FinancialGoals is a user's full set of goals.
type FinancialGoals struct {
	UserID string          `json:"user_id"`
	Goals  []FinancialGoal `json:"goals"`
}

// Portfolio is the user's current investment portfolio.
type Portfolio struct {
	PortfolioID         string           `json:"portfolio_id"`
	TotalValue          float64          `json:"total_value"`
	CashBalance         float64          `json:"cash_balance,omitempty"`
	Holdings            []map[string]any `json:"holdings,omitempty"`
	TotalCostBasis      float64          `json:"total_cost_basis,omitempty"`
	UnrealizedGainLoss  float64          `json:"unrealized_gain_loss,omitempty"`
	RealizedGainLossYTD float64          `json:"realized_gain_loss_ytd,omitempty"`
}

// MarketPreferences tunes market analysis requests.
type MarketPreferences struct {
	FocusRegions       []string `json:"focus_regions,omitempty"`
	CurrencyPreference string   `json:"currency_preference,omitempty"`
	AnalysisTimeframe  string   `json:"analysis_timeframe,omitempty"`
	AlertThreshold     float64  `json:"alert_threshold,omitempty"`
}
