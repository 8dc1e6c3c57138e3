package advice

// MarketInsight is a single market trend observation.
type MarketInsight struct {
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	ImpactLevel     string         `json:"impact_level"`
	Timeframe       string         `json:"timeframe"`
	SectorsAffected []string       `json:"sectors_affected,omitempty"`
	ConfidenceScore *float64       `json:"confidence_score"`
	SupportingData  map[string]any `json:"supporting_data,omitempty"`
}

// Validate enforces required fields and the 0–1 confidence score.
func (m *MarketInsight) Validate() error {
	if err := firstError(
		requireString("title", m.Title),
		requireString("description", m.Description),
		requireString("impact_level", m.ImpactLevel),
		requireString("timeframe", m.Timeframe),
	); err != nil {
		return err
	}
	return requireRange("confidence_score", m.ConfidenceScore, 0, 1)
}

// NewsAnalysis scores a financial news item for sentiment and relevance.
type NewsAnalysis struct {
	Headline           string   `json:"headline"`
	Source             string   `json:"source"`
	PublishedDate      string   `json:"published_date,omitempty"`
	SentimentScore     *float64 `json:"sentiment_score"`
	RelevanceScore     *float64 `json:"relevance_score"`
	KeyEntities        []string `json:"key_entities,omitempty"`
	ImpactAnalysis     string   `json:"impact_analysis"`
	RelatedSymbols     []string `json:"related_symbols,omitempty"`
	ActionImplications []string `json:"action_implications,omitempty"`
}

// Validate enforces required fields, the -1..1 sentiment score, and the 0–1
// relevance score.
func (n *NewsAnalysis) Validate() error {
	if err := firstError(
		requireString("headline", n.Headline),
		requireString("source", n.Source),
		requireString("impact_analysis", n.ImpactAnalysis),
	); err != nil {
		return err
	}
	return firstError(
		requireRange("sentiment_score", n.SentimentScore, -1, 1),
		requireRange("relevance_score", n.RelevanceScore, 0, 1),
	)
}

// SectorRecommendation is a buy/sell/hold style call on a market sector.
type SectorRecommendation struct {
	SectorName           string             `json:"sector_name"`
	RecommendationType   RecommendationType `json:"recommendation_type"`
	ConfidenceLevel      ConfidenceLevel    `json:"confidence_level"`
	Rationale            string             `json:"rationale"`
	KeyDrivers           []string           `json:"key_drivers"`
	PotentialRisks       []string           `json:"potential_risks"`
	TimeHorizon          string             `json:"time_horizon"`
	AllocationSuggestion *float64           `json:"allocation_suggestion,omitempty"`
	TopPicks             []string           `json:"top_picks,omitempty"`
}

// Validate enforces required fields, both enumerations, and the optional
// 0–100 allocation suggestion.
func (s *SectorRecommendation) Validate() error {
	if err := firstError(
		requireString("sector_name", s.SectorName),
		requireString("rationale", s.Rationale),
		requireString("time_horizon", s.TimeHorizon),
	); err != nil {
		return err
	}
	if s.RecommendationType == "" {
		return &MissingFieldError{Field: "recommendation_type"}
	}
	if !s.RecommendationType.Valid() {
		return &InvalidEnumValueError{Field: "recommendation_type", Value: string(s.RecommendationType), Allowed: recommendationTypes}
	}
	if s.ConfidenceLevel == "" {
		return &MissingFieldError{Field: "confidence_level"}
	}
	if !s.ConfidenceLevel.Valid() {
		return &InvalidEnumValueError{Field: "confidence_level", Value: string(s.ConfidenceLevel), Allowed: confidenceLevels}
	}
	if s.KeyDrivers == nil {
		return &MissingFieldError{Field: "key_drivers"}
	}
	if s.PotentialRisks == nil {
		return &MissingFieldError{Field: "potential_risks"}
	}
	if s.AllocationSuggestion != nil {
		return requireRange("allocation_suggestion", s.AllocationSuggestion, 0, 100)
	}
	return nil
}

// RecommendationRecord is the typed response schema for market insight and
// sector recommendation requests.
type RecommendationRecord struct {
	RecommendationType      string                 `json:"recommendation_type"`
	ExecutiveSummary        string                 `json:"executive_summary"`
	MarketInsights          []MarketInsight        `json:"market_insights,omitempty"`
	NewsAnalysis            []NewsAnalysis         `json:"news_analysis,omitempty"`
	SectorRecommendations   []SectorRecommendation `json:"sector_recommendations,omitempty"`
	MarketSentiment         map[string]any         `json:"market_sentiment,omitempty"`
	EconomicIndicators      map[string]float64     `json:"economic_indicators,omitempty"`
	CurrentRiskFactors      []string               `json:"current_risk_factors,omitempty"`
	IdentifiedOpportunities []string               `json:"identified_opportunities,omitempty"`
}

// Validate enforces the recommendation schema. The insight, news, and sector
// lists are optional, but any element present must itself be valid.
func (r *RecommendationRecord) Validate() error {
	if err := firstError(
		requireString("recommendation_type", r.RecommendationType),
		requireString("executive_summary", r.ExecutiveSummary),
	); err != nil {
		return err
	}
	for i := range r.MarketInsights {
		if err := r.MarketInsights[i].Validate(); err != nil {
			return prefixField(err, indexed("market_insights", i))
		}
	}
	for i := range r.NewsAnalysis {
		if err := r.NewsAnalysis[i].Validate(); err != nil {
			return prefixField(err, indexed("news_analysis", i))
		}
	}
	for i := range r.SectorRecommendations {
		if err := r.SectorRecommendations[i].Validate(); err != nil {
			return prefixField(err, indexed("sector_recommendations", i))
		}
	}
	return nil
}
