package observability

// Semantic conventions for observability attributes.
// These constants define standard attribute names to ensure consistency
// across different components of the system.

// --- Advisory Request Attributes ---

const (
	// AttrRequestID is the unique identifier assigned to an advisory request
	AttrRequestID = "advisor.request.id"

	// AttrCallerID is the caller identifier used for admission control
	AttrCallerID = "advisor.caller.id"

	// AttrOperation is the advisory operation name (e.g. "personal_advice")
	AttrOperation = "advisor.operation"

	// AttrProcessingTime is the wall-clock time spent serving a request
	AttrProcessingTime = "advisor.processing_time"
)

// --- Model Attributes ---

const (
	// AttrModel is the model identifier used for a request
	AttrModel = "llm.model"

	// AttrModelEndpoint is the inference endpoint URL
	AttrModelEndpoint = "llm.endpoint"

	// AttrFinishReason is the reason the generation finished
	AttrFinishReason = "llm.finish_reason"

	// AttrTokensTotal is the total number of tokens consumed
	AttrTokensTotal = "llm.tokens.total" // #nosec G101 -- Not a credential, token refers to LLM tokens
)

// --- Recovery Pipeline Attributes ---

const (
	// AttrResponseLength is the length in bytes of the raw model response
	AttrResponseLength = "parse.response.length"

	// AttrDocumentLength is the length in bytes of the extracted document
	AttrDocumentLength = "parse.document.length"

	// AttrErrorKind is the typed error kind produced by a failed recovery
	AttrErrorKind = "parse.error.kind"
)

// --- Admission Control Attributes ---

const (
	// AttrAdmitted reports whether the admission controller allowed the request
	AttrAdmitted = "ratelimit.admitted"

	// AttrMaxRequests is the configured request bound for the operation
	AttrMaxRequests = "ratelimit.max_requests"

	// AttrWindow is the configured trailing window duration
	AttrWindow = "ratelimit.window"
)

// --- HTTP Attributes ---

const (
	// AttrHTTPMethod is the HTTP request method
	AttrHTTPMethod = "http.method"

	// AttrHTTPURL is the full request URL
	AttrHTTPURL = "http.url"

	// AttrHTTPStatusCode is the HTTP response status code
	AttrHTTPStatusCode = "http.status_code"

	// AttrHTTPRequestBodySize is the request body size in bytes
	AttrHTTPRequestBodySize = "http.request.body.size"

	// AttrHTTPResponseBodySize is the response body size in bytes
	AttrHTTPResponseBodySize = "http.response.body.size"
)

// --- Event Names ---

const (
	// EventAdmissionRejected is recorded when the admission controller rejects a caller
	EventAdmissionRejected = "ratelimit.rejected"

	// EventRecoveryFailed is recorded when the recovery pipeline gives up on a response
	EventRecoveryFailed = "parse.recovery_failed"

	// EventRecordValidated is recorded when a typed record passes full validation
	EventRecordValidated = "advice.record_validated"
)
