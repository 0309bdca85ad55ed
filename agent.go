// Package toolloop - agent.go
// The Agent orchestrator: advertises tools to the LLM and routes one user
// message through at most one tool invocation.
package toolloop

import (
	"context"
	"fmt"
	"log/slog"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/openai/openai-go"
)

// Agent turns one user message into one final answer. The registry is built
// at construction and read-only afterwards, so concurrent Run calls are safe
// as long as the underlying LLM client is reentrant; the agent imposes no
// locking of its own on the run path.
type Agent struct {
	registry *Registry
	llm      LLM
	model    string
	store    RunStore
	logger   *slog.Logger
	usage    usageCounter
}

// NewAgent creates an Agent over the given model client and tools. Tool
// order is preserved; it is the order definitions are shown to the model.
func NewAgent(llm LLM, model string, tools ...*Tool) *Agent {
	return &Agent{
		registry: NewRegistry(tools...),
		llm:      llm,
		model:    model,
		logger:   slog.Default(),
	}
}

func (a *Agent) Logger() *slog.Logger {
	return a.logger
}

func (a *Agent) SetLogger(logger *slog.Logger) {
	a.logger = logger
}

// SetStore attaches an optional transcript store. Store failures are logged
// and never fail a run.
func (a *Agent) SetStore(store RunStore) {
	a.store = store
}

func (a *Agent) Registry() *Registry {
	return a.registry
}

// Run executes one user turn: system prompt + user message to the model,
// parse the reply for a tool call, dispatch it, and if a tool ran, send its
// result back for the final answer.
//
// Every failure path below the transport terminates in a string answer. A
// reply without a parsable call, or naming an unknown tool, returns the
// model's reply verbatim. A tool that raises returns the serialized
// {"error": ...} payload directly. A tool that reported its own failure
// in-band is a normal result and the model narrates it. The returned error
// is reserved for model transport failures.
func (a *Agent) Run(ctx context.Context, userMsg string) (string, error) {
	runID, err := gonanoid.New()
	if err != nil {
		return "", fmt.Errorf("generate run id: %w", err)
	}
	logger := a.logger.With("runID", runID)

	systemPrompt, err := BuildSystemPrompt(a.registry)
	if err != nil {
		return "", err
	}

	history := NewMessageList(
		openai.SystemMessage(systemPrompt),
		openai.UserMessage(userMsg),
	)

	reply, err := a.complete(ctx, history)
	if err != nil {
		return "", fmt.Errorf("model call: %w", err)
	}

	call, ok := ParseToolCall(reply)
	if !ok {
		logger.Info("No tool call in reply")
		a.record(ctx, logger, RunRecord{RunID: runID, UserMessage: userMsg, FinalAnswer: reply})
		return reply, nil
	}

	result, invoked := a.registry.Dispatch(ctx, call)
	if !invoked {
		// The model asked for a tool that was never advertised. Treated the
		// same as "no call parsed".
		logger.Warn("Unknown tool requested", "tool", call.Name)
		a.record(ctx, logger, RunRecord{RunID: runID, UserMessage: userMsg, ToolName: call.Name, FinalAnswer: reply})
		return reply, nil
	}

	resultJSON := result.JSON()
	logger.Info("Tool invoked", "tool", call.Name, "failed", result.Failed())
	if result.Failed() {
		a.record(ctx, logger, RunRecord{RunID: runID, UserMessage: userMsg, ToolName: call.Name, ToolResult: resultJSON, FinalAnswer: resultJSON})
		return resultJSON, nil
	}

	history.Add(
		openai.AssistantMessage(reply),
		openai.UserMessage(fmt.Sprintf("The result of %s is: %s", call.Name, resultJSON)),
	)
	answer, err := a.complete(ctx, history)
	if err != nil {
		return "", fmt.Errorf("model call with tool result: %w", err)
	}
	a.record(ctx, logger, RunRecord{RunID: runID, UserMessage: userMsg, ToolName: call.Name, ToolResult: resultJSON, FinalAnswer: answer})
	return answer, nil
}

func (a *Agent) complete(ctx context.Context, history *MessageList) (string, error) {
	completion, err := a.llm.New(ctx, openai.ChatCompletionNewParams{
		Messages: history.All(),
		Model:    openai.ChatModel(a.model),
	})
	if err != nil {
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", ErrNoCompletion
	}
	a.usage.add(completion.Usage)
	return completion.Choices[0].Message.Content, nil
}

func (a *Agent) record(ctx context.Context, logger *slog.Logger, rec RunRecord) {
	if a.store == nil {
		return
	}
	if err := a.store.SaveRun(ctx, rec); err != nil {
		logger.Error("Error saving run transcript", "error", err)
	}
}
