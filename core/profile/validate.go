package profile

import (
	"fmt"
	"strings"
)

// ValidationResult is the outcome of an input validation check. Errors make
// the input unusable; warnings flag suspicious but legal values.
type ValidationResult struct {
	Valid    bool
	Errors   []string
	Warnings []string
}

// Err converts a failed result into an *InvalidInputError, or nil when the
// result is valid.
func (r ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	return &InvalidInputError{Errors: r.Errors}
}

// InvalidInputError reports user input that failed validation before any
// model call was attempted.
type InvalidInputError struct {
	Errors []string
}

func (e *InvalidInputError) Error() string {
	return "profile: invalid input: " + strings.Join(e.Errors, "; ")
}

// validTimeframes are the analysis timeframes accepted in market preferences.
var validTimeframes = []string{"1D", "1W", "1M", "3M", "6M", "1Y", "2Y", "5Y"}

// ValidateUserProfile checks the demographic and financial figures of a
// profile. Unusually high income is a warning, not an error.
func ValidateUserProfile(p UserProfile) ValidationResult {
	var errs, warnings []string

	if p.Age < 18 || p.Age > 100 {
		errs = append(errs, "Age must be between 18 and 100")
	}

	if p.AnnualIncome <= 0 {
		errs = append(errs, "Annual income must be greater than 0")
	} else if p.AnnualIncome > 10_000_000 {
		warnings = append(warnings, "Annual income seems unusually high")
	}

	if p.MonthlyExpenses < 0 {
		errs = append(errs, "Monthly expenses cannot be negative")
	} else if p.MonthlyExpenses*12 > p.AnnualIncome*1.2 {
		errs = append(errs, "Monthly expenses cannot significantly exceed annual income")
	}

	if p.CurrentSavings < 0 {
		errs = append(errs, "Current savings cannot be negative")
	}

	return ValidationResult{Valid: len(errs) == 0, Errors: errs, Warnings: warnings}
}

// ValidateFinancialGoals checks that at least one goal exists and that each
// goal's amounts are coherent.
func ValidateFinancialGoals(g FinancialGoals) ValidationResult {
	var errs, warnings []string

	if len(g.Goals) == 0 {
		errs = append(errs, "At least one financial goal is required")
		return ValidationResult{Valid: false, Errors: errs}
	}

	for i, goal := range g.Goals {
		prefix := fmt.Sprintf("Goal %d", i+1)

		if goal.TargetAmount <= 0 {
			errs = append(errs, prefix+": Target amount must be greater than 0")
		}

		if goal.CurrentAmount < 0 {
			errs = append(errs, prefix+": Current amount cannot be negative")
		} else if goal.CurrentAmount > goal.TargetAmount {
			errs = append(errs, prefix+": Current amount cannot exceed target amount")
		}
	}

	return ValidationResult{Valid: len(errs) == 0, Errors: errs, Warnings: warnings}
}

// ValidatePortfolio checks that portfolio balances are non-negative.
func ValidatePortfolio(p Portfolio) ValidationResult {
	var errs []string

	if p.TotalValue < 0 {
		errs = append(errs, "Total portfolio value cannot be negative")
	}
	if p.CashBalance < 0 {
		errs = append(errs, "Cash balance cannot be negative")
	}

	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

// ValidateMarketPreferences checks the alert threshold range and the
// analysis timeframe against the accepted set.
func ValidateMarketPreferences(p MarketPreferences) ValidationResult {
	var errs []string

	if p.AlertThreshold < 0 || p.AlertThreshold > 100 {
		errs = append(errs, "Alert threshold must be between 0 and 100")
	}

	if p.AnalysisTimeframe != "" {
		valid := false
		for _, tf := range validTimeframes {
			if p.AnalysisTimeframe == tf {
				valid = true
				break
			}
		}
		if !valid {
			errs = append(errs, fmt.Sprintf("Invalid analysis timeframe: %s", p.AnalysisTimeframe))
		}
	}

	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}
