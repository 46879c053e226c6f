package domain

// Currency is an ISO-like currency code used for cost output.
type Currency string

// CountMode selects which token category is priced.
type CountMode string

const (
	// CountPrompt prices prompt tokens at the input rate.
	CountPrompt CountMode = "prompt"

	// CountCompletion prices completion tokens at the output rate.
	CountCompletion CountMode = "completion"

	// CountTotal prices prompt and completion tokens separately and sums them.
	CountTotal CountMode = "total"
)

// Valid reports whether the mode is one of the known counting modes.
func (m CountMode) Valid() bool {
	switch m {
	case CountPrompt, CountCompletion, CountTotal:
		return true
	default:
		return false
	}
}

// ConversationRecord is a single chat-completion response as seen by the calculator.
type ConversationRecord struct {
	ID      string `json:"id,omitempty"`
	Created int64  `json:"created,omitempty"`
	Model   string `json:"model"`
	Usage   *Usage `json:"usage,omitempty"` // nil when the response carried no usable usage
}

// Usage tracks token consumption.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Valid reports whether the prompt and completion counts can be priced.
func (u *Usage) Valid() bool {
	return u != nil && u.PromptTokens >= 0 && u.CompletionTokens >= 0
}

// CostRequest selects the output currency and the counting mode.
type CostRequest struct {
	Currency Currency  `json:"currency"`
	Count    CountMode `json:"count"`
}
