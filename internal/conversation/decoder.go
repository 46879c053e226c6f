// Package conversation decodes raw chat-completion JSON into conversation records.
package conversation

import (
	"errors"
	"fmt"
	"math"

	"github.com/tidwall/gjson"

	"github.com/davidbz/chatcost/internal/domain"
)

// ErrInvalidConversation is returned when the payload is not a JSON array of responses.
var ErrInvalidConversation = errors.New("invalid conversation")

// Decode parses a JSON array of chat-completion responses.
// A response whose usage is missing, or whose prompt or completion token count
// is not a non-negative whole JSON number, is kept with nil Usage so the calculator skips it.
// Empty input and a JSON null decode to a nil conversation.
func Decode(data []byte) ([]domain.ConversationRecord, error) {
	if len(data) == 0 {
		return nil, nil
	}

	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrInvalidConversation)
	}

	root := gjson.ParseBytes(data)
	if root.Type == gjson.Null {
		return nil, nil
	}

	if !root.IsArray() {
		return nil, fmt.Errorf("%w: expected array, got %s", ErrInvalidConversation, root.Type)
	}

	items := root.Array()
	records := make([]domain.ConversationRecord, 0, len(items))
	for i, item := range items {
		if !item.IsObject() {
			return nil, fmt.Errorf("%w: element %d is %s, not an object", ErrInvalidConversation, i, item.Type)
		}

		records = append(records, decodeRecord(item))
	}

	return records, nil
}

func decodeRecord(item gjson.Result) domain.ConversationRecord {
	record := domain.ConversationRecord{
		ID:      item.Get("id").String(),
		Created: item.Get("created").Int(),
		Model:   item.Get("model").String(),
	}

	usage := item.Get("usage")
	if !usage.IsObject() {
		return record
	}

	prompt, promptOk := TokenCount(usage.Get("prompt_tokens"))
	completion, completionOk := TokenCount(usage.Get("completion_tokens"))
	if !promptOk || !completionOk {
		return record
	}

	record.Usage = &domain.Usage{
		PromptTokens:     prompt,
		CompletionTokens: completion,
		TotalTokens:      int(usage.Get("total_tokens").Int()),
	}

	return record
}

// TokenCount reports the value of a raw token count and whether it is usable:
// a JSON number that is whole and not negative.
func TokenCount(value gjson.Result) (int, bool) {
	if value.Type != gjson.Number {
		return 0, false
	}

	if value.Num < 0 || value.Num != math.Trunc(value.Num) {
		return 0, false
	}

	return int(value.Int()), true
}
