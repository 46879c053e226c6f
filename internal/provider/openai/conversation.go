// Package openai maps OpenAI chat-completion responses onto the cost domain.
// It holds the compiled-in price table for the supported models and converts
// SDK response types into conversation records.
package openai

import (
	"github.com/openai/openai-go"
	"github.com/tidwall/gjson"

	"github.com/davidbz/chatcost/internal/conversation"
	"github.com/davidbz/chatcost/internal/domain"
)

// FromChatCompletion converts an SDK response into a conversation record.
// A response decoded from JSON without usable usage data yields a record with nil Usage.
// Responses built in code are taken at face value.
func FromChatCompletion(resp openai.ChatCompletion) domain.ConversationRecord {
	record := domain.ConversationRecord{
		ID:      resp.ID,
		Created: resp.Created,
		Model:   string(resp.Model),
	}

	record.Usage = usageOf(resp)

	return record
}

// FromChatCompletions converts a conversation of SDK responses, preserving order.
func FromChatCompletions(responses []openai.ChatCompletion) []domain.ConversationRecord {
	if responses == nil {
		return nil
	}

	records := make([]domain.ConversationRecord, len(responses))
	for i, resp := range responses {
		records[i] = FromChatCompletion(resp)
	}

	return records
}

// usageOf returns nil unless both token counts are usable. The SDK coerces
// strings and fractions into int64, so decoded responses are checked against
// the raw JSON of each field.
func usageOf(resp openai.ChatCompletion) *domain.Usage {
	if resp.RawJSON() == "" {
		return &domain.Usage{
			PromptTokens:     int(resp.Usage.PromptTokens),
			CompletionTokens: int(resp.Usage.CompletionTokens),
			TotalTokens:      int(resp.Usage.TotalTokens),
		}
	}

	if !resp.JSON.Usage.Valid() {
		return nil
	}

	prompt, promptOk := conversation.TokenCount(gjson.Parse(resp.Usage.JSON.PromptTokens.Raw()))
	completion, completionOk := conversation.TokenCount(gjson.Parse(resp.Usage.JSON.CompletionTokens.Raw()))
	if !promptOk || !completionOk {
		return nil
	}

	return &domain.Usage{
		PromptTokens:     prompt,
		CompletionTokens: completion,
		TotalTokens:      int(resp.Usage.TotalTokens),
	}
}
