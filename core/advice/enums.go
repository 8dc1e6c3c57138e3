package advice

// ConfidenceLevel expresses how confident the model is in a recommendation.
type ConfidenceLevel string

const (
	ConfidenceVeryLow  ConfidenceLevel = "very_low"
	ConfidenceLow      ConfidenceLevel = "low"
	ConfidenceMedium   ConfidenceLevel = "medium"
	ConfidenceHigh     ConfidenceLevel = "high"
	ConfidenceVeryHigh ConfidenceLevel = "very_high"
)

var confidenceLevels = []string{
	string(ConfidenceVeryLow), string(ConfidenceLow), string(ConfidenceMedium),
	string(ConfidenceHigh), string(ConfidenceVeryHigh),
}

// Valid reports whether c is one of the defined confidence levels.
func (c ConfidenceLevel) Valid() bool {
	for _, v := range confidenceLevels {
		if string(c) == v {
			return true
		}
	}
	return false
}

// ActionPriority ranks recommended actions.
type ActionPriority string

const (
	PriorityLow    ActionPriority = "low"
	PriorityMedium ActionPriority = "medium"
	PriorityHigh   ActionPriority = "high"
	PriorityUrgent ActionPriority = "urgent"
)

var actionPriorities = []string{
	string(PriorityLow), string(PriorityMedium), string(PriorityHigh), string(PriorityUrgent),
}

// Valid reports whether p is one of the defined action priorities.
func (p ActionPriority) Valid() bool {
	for _, v := range actionPriorities {
		if string(p) == v {
			return true
		}
	}
	return false
}

// RecommendationType classifies a sector recommendation.
type RecommendationType string

const (
	RecommendBuy      RecommendationType = "buy"
	RecommendSell     RecommendationType = "sell"
	RecommendHold     RecommendationType = "hold"
	RecommendReduce   RecommendationType = "reduce"
	RecommendIncrease RecommendationType = "increase"
	RecommendAvoid    RecommendationType = "avoid"
)

var recommendationTypes = []string{
	string(RecommendBuy), string(RecommendSell), string(RecommendHold),
	string(RecommendReduce), string(RecommendIncrease), string(RecommendAvoid),
}

// Valid reports whether r is one of the defined recommendation types.
func (r RecommendationType) Valid() bool {
	for _, v := range recommendationTypes {
		if string(r) == v {
			return true
		}
	}
	return false
}
