package toolloop

import (
	"github.com/openai/openai-go"
)

// MessageList holds the ordered conversation history for one run. It is
// append-only while the run executes and discarded when the run returns.
type MessageList struct {
	messages []openai.ChatCompletionMessageParamUnion
}

func NewMessageList(msgs ...openai.ChatCompletionMessageParamUnion) *MessageList {
	return &MessageList{messages: msgs}
}

func (ml *MessageList) Len() int {
	return len(ml.messages)
}

// Add appends one or more messages, preserving order.
func (ml *MessageList) Add(msgs ...openai.ChatCompletionMessageParamUnion) {
	ml.messages = append(ml.messages, msgs...)
}

func (ml *MessageList) All() []openai.ChatCompletionMessageParamUnion {
	return ml.messages
}
