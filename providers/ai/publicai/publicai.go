package publicai

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/wealthwise/wealthwise/internal/utils"
	"github.com/wealthwise/wealthwise/providers/ai"
)

const (
	defaultBaseURL          = "https://router.huggingface.co/v1"
	chatCompletionsEndpoint = "/chat/completions"

	// DefaultModel is the instruction-tuned model served through the
	// PublicAI provider that the advisory service targets by default.
	DefaultModel = "swiss-ai/Apertus-8B-Instruct-2509"
)

// Provider implements the ai.Provider interface for the PublicAI
// chat-completions API behind the Hugging Face router.
type Provider struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// New creates a new PublicAI provider instance, reading HF_TOKEN and
// PUBLICAI_BASE_URL from the environment when set.
func New() *Provider {
	baseURL := os.Getenv("PUBLICAI_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Provider{
		apiKey:  os.Getenv("HF_TOKEN"),
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

// Ensure Provider implements ai.Provider at compile time.
var _ ai.Provider = (*Provider)(nil)

// WithAPIKey sets the API key for the provider
func (p *Provider) WithAPIKey(apiKey string) ai.Provider {
	p.apiKey = apiKey
	return p
}

// WithBaseURL sets the base URL for the API
func (p *Provider) WithBaseURL(baseURL string) ai.Provider {
	p.baseURL = baseURL
	return p
}

// WithHttpClient sets a custom HTTP client
func (p *Provider) WithHttpClient(httpClient *http.Client) ai.Provider {
	p.client = httpClient
	return p
}

// SendMessage implements the Provider interface
func (p *Provider) SendMessage(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("API key is not set")
	}

	httpResponse, resp, err := utils.DoPostSync[chatCompletionResponse](ctx, p.client, p.baseURL+chatCompletionsEndpoint, p.apiKey, requestFromGeneric(request))
	if err != nil {
		return nil, err
	}

	if resp == nil {
		return nil, fmt.Errorf("empty response from PublicAI API: %s", httpResponse.Status)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no choices in response")
	}

	return responseToGeneric(*resp), nil
}

// IsStopMessage reports whether the given chat response should be treated as a
// terminal completion.
func (p *Provider) IsStopMessage(message *ai.ChatResponse) bool {
	if message == nil {
		return true
	}
	// Prefer the explicit finish reason from the API
	if message.FinishReason == "stop" || message.FinishReason == "length" || message.FinishReason == "content_filter" {
		return true
	}
	return message.Content == ""
}
