package advisor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wealthwise/wealthwise/core/advice"
	"github.com/wealthwise/wealthwise/core/parse"
	"github.com/wealthwise/wealthwise/core/profile"
	"github.com/wealthwise/wealthwise/core/ratelimit"
	"github.com/wealthwise/wealthwise/internal/utils"
	"github.com/wealthwise/wealthwise/providers/ai"
	"github.com/wealthwise/wealthwise/providers/observability"
)

const defaultModel = "swiss-ai/Apertus-8B-Instruct-2509"

// Per-operation admission bounds, all over a trailing one-hour window.
const (
	rateWindow = time.Hour

	personalAdviceLimit    = 10
	portfolioAnalysisLimit = 5
	riskAssessmentLimit    = 5
	recommendationsLimit   = 20
	goalPlanLimit          = 8
)

// systemPrompt frames every advisory request.
const systemPrompt = "You are a professional financial advisor trained on financial data."

// Service runs advisory requests against an LLM provider. Construct one with
// [New]; the zero value is not usable.
//
// The recovery pipeline it invokes is stateless, so a single Service is safe
// for concurrent use; the only shared mutable state is the injected
// admission-control limiter, which synchronizes internally.
type Service struct {
	provider ai.Provider
	limiter  *ratelimit.Limiter
	obs      observability.Provider
	model    string
	now      func() time.Time
}

// Option configures a Service created with [New].
type Option func(*Service)

// WithLimiter injects a shared admission-control limiter. Without it the
// service owns a private one.
func WithLimiter(l *ratelimit.Limiter) Option {
	return func(s *Service) { s.limiter = l }
}

// WithObserver injects an observability provider. Without it telemetry is
// discarded.
func WithObserver(obs observability.Provider) Option {
	return func(s *Service) { s.obs = obs }
}

// WithModel overrides the model identifier sent to the provider.
func WithModel(model string) Option {
	return func(s *Service) { s.model = model }
}

// WithClock replaces the service's time source, for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// New creates a Service backed by the given provider.
func New(provider ai.Provider, opts ...Option) *Service {
	s := &Service{
		provider: provider,
		limiter:  ratelimit.New(),
		obs:      observability.Noop(),
		model:    defaultModel,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Result wraps a recovered record with the request metadata the API layer
// reports back to clients.
type Result[T any] struct {
	Record         T
	RequestID      string
	Timestamp      time.Time
	ProcessingTime time.Duration
	ModelUsed      string
}

// PersonalAdvice generates personalized financial advice for the given
// profile.
func (s *Service) PersonalAdvice(ctx context.Context, callerID string, p profile.UserProfile) (*Result[advice.AdviceRecord], error) {
	if err := profile.ValidateUserProfile(p).Err(); err != nil {
		return nil, err
	}
	return run[advice.AdviceRecord](ctx, s, "advice", callerID, personalAdviceLimit, advisorPrompt(p))
}

// AnalyzePortfolio analyzes the user's portfolio and recommends
// optimizations.
func (s *Service) AnalyzePortfolio(ctx context.Context, callerID string, p profile.UserProfile, pf profile.Portfolio) (*Result[advice.AdviceRecord], error) {
	if err := profile.ValidateUserProfile(p).Err(); err != nil {
		return nil, err
	}
	if err := profile.ValidatePortfolio(pf).Err(); err != nil {
		return nil, err
	}
	return run[advice.AdviceRecord](ctx, s, "portfolio", callerID, portfolioAnalysisLimit, portfolioPrompt(p, pf))
}

// AssessRisk assesses the user's financial risk position.
func (s *Service) AssessRisk(ctx context.Context, callerID string, p profile.UserProfile) (*Result[advice.AdviceRecord], error) {
	if err := profile.ValidateUserProfile(p).Err(); err != nil {
		return nil, err
	}
	return run[advice.AdviceRecord](ctx, s, "risk", callerID, riskAssessmentLimit, riskPrompt(p))
}

// MarketRecommendations produces market insights and sector recommendations.
func (s *Service) MarketRecommendations(ctx context.Context, callerID string, prefs profile.MarketPreferences) (*Result[advice.RecommendationRecord], error) {
	if err := profile.ValidateMarketPreferences(prefs).Err(); err != nil {
		return nil, err
	}
	return run[advice.RecommendationRecord](ctx, s, "recommendations", callerID, recommendationsLimit, recommendationsPrompt(prefs))
}

// PlanGoals builds strategies for the user's financial goals.
func (s *Service) PlanGoals(ctx context.Context, callerID string, p profile.UserProfile, goals profile.FinancialGoals) (*Result[advice.PlanRecord], error) {
	if err := profile.ValidateUserProfile(p).Err(); err != nil {
		return nil, err
	}
	if err := profile.ValidateFinancialGoals(goals).Err(); err != nil {
		return nil, err
	}
	return run[advice.PlanRecord](ctx, s, "planner", callerID, goalPlanLimit, plannerPrompt(p, goals))
}

// run executes the shared request flow: admission, model call, recovery, and
// metadata stamping. Admission is checked before the provider is invoked, so
// a rejected caller costs no model tokens.
func run[T any](ctx context.Context, s *Service, op string, callerID string, limit int, prompt string) (*Result[T], error) {
	// Budgets are per caller per operation; the identifier scopes the
	// caller's window to this operation.
	if err := s.limiter.TryAdmit(op+":"+callerID, limit, rateWindow); err != nil {
		s.obs.Warn(ctx, "request rejected by admission controller",
			observability.String(observability.AttrOperation, op),
			observability.String(observability.AttrCallerID, callerID),
			observability.Int(observability.AttrMaxRequests, limit),
			observability.Duration(observability.AttrWindow, rateWindow),
		)
		return nil, err
	}

	requestID := fmt.Sprintf("%s_%s", op, uuid.NewString())
	ctx, span := s.obs.StartSpan(ctx, "advisor."+op,
		observability.String(observability.AttrRequestID, requestID),
		observability.String(observability.AttrCallerID, callerID),
		observability.String(observability.AttrModel, s.model),
	)
	defer span.End()

	timer := utils.NewTimer()

	resp, err := s.provider.SendMessage(ctx, ai.ChatRequest{
		Model:        s.model,
		SystemPrompt: systemPrompt,
		Messages:     []ai.Message{{Role: ai.RoleUser, Content: prompt}},
		GenerationConfig: &ai.GenerationConfig{
			MaxTokens:   4000,
			Temperature: 0.3,
			TopP:        0.9,
		},
	})
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("advisor: %s: provider call failed: %w", op, err)
	}
	if resp == nil || resp.Content == "" {
		err := fmt.Errorf("advisor: %s: no response from model", op)
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(observability.Int(observability.AttrResponseLength, len(resp.Content)))

	record, err := parse.ParseStringAs[T](resp.Content)
	if err != nil {
		span.AddEvent(observability.EventRecoveryFailed,
			observability.String(observability.AttrErrorKind, fmt.Sprintf("%T", err)),
		)
		span.RecordError(err)
		var syntaxErr *parse.UnrepairableSyntaxError
		if errors.As(err, &syntaxErr) && syntaxErr.Diagnostic != nil {
			// Operator-facing detail; the caller decides what users see.
			s.obs.Error(ctx, "model response could not be recovered",
				observability.String(observability.AttrRequestID, requestID),
				observability.String("diagnostic", syntaxErr.Diagnostic.String()),
			)
		}
		return nil, fmt.Errorf("advisor: %s: %w", op, err)
	}

	timer.Stop()
	span.AddEvent(observability.EventRecordValidated)
	span.SetAttributes(observability.Duration(observability.AttrProcessingTime, timer.GetDuration()))
	span.SetStatus(observability.StatusOK, "")

	s.obs.Info(ctx, "advisory request completed",
		observability.String(observability.AttrRequestID, requestID),
		observability.String(observability.AttrOperation, op),
		observability.Duration(observability.AttrProcessingTime, timer.GetDuration()),
	)

	return &Result[T]{
		Record:         record,
		RequestID:      requestID,
		Timestamp:      s.now().UTC(),
		ProcessingTime: timer.GetDuration(),
		ModelUsed:      s.model,
	}, nil
}
