// Package publicai implements the ai.Provider interface against the
// Hugging Face router's OpenAI-compatible chat-completions endpoint, which
// fronts the PublicAI inference provider used for financial advisory
// generation. Configuration comes from the HF_TOKEN and PUBLICAI_BASE_URL
// environment variables, overridable through the WithAPIKey and WithBaseURL
// builder methods.
package publicai
