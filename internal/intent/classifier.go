package intent

import (
	"context"
	"encoding/json"
	"strings"

	"log/slog"

	"github.com/hksports/sportsbuddy/core/logger"
)

// Supported intents.
const (
	SportNow        = "sport_now"
	FindBuddy       = "find_buddy"
	GeneralQuestion = "general_question"
)

// Submitter sends a prompt to the language model and returns the raw reply.
type Submitter interface {
	Submit(ctx context.Context, content string) (string, error)
}

// Extracted carries slot values pulled out of a sport_now message.
type Extracted struct {
	Sport    string `json:"sport"`
	Location string `json:"location"`
	Time     string `json:"time"`
}

// Result is the outcome of a classification.
type Result struct {
	Intent    string
	Extracted Extracted
}

// Classifier determines user intent via the language model, with keyword
// fallbacks when the reply cannot be parsed. Classify never returns an error:
// any failure degrades to the general_question intent.
type Classifier struct {
	llm Submitter
}

// NewClassifier builds a Classifier using the given model client.
func NewClassifier(llm Submitter) *Classifier {
	return &Classifier{llm: llm}
}

const classifyPrompt = "You are an intent classifier for a sports buddy telegram bot. " +
	"Your task is to identify what the user wants based on their message. " +
	"Here are the possible intents:\n" +
	"1. sport_now - User are playing a sport now\n" +
	"2. find_buddy - User wants to find people to play sports with\n" +
	"3. general_question - User has a general question about sports\n" +
	"If the intent is sport_now, also try to extract:\n" +
	"- sport: What sport they're playing\n" +
	"- location: Where they're playing\n" +
	"- time: When they're playing\n\n" +
	"Return your answer as a JSON dictionary with this format with no additional text:\n" +
	"{'intent': 'intent_name', 'extracted_data': {'key': 'value'}}\n\n" +
	"User message: "

// Classify routes the message to one of the supported intents.
func (c *Classifier) Classify(ctx context.Context, message string) Result {
	reply, err := c.llm.Submit(ctx, classifyPrompt+message)
	if err != nil {
		logger.Intent.Warn("classification call failed",
			slog.String("event", "intent.classify"),
			slog.String("err", err.Error()),
		)
		return Result{Intent: GeneralQuestion}
	}

	res := parseReply(reply)
	logger.Intent.Info("intent classified",
		slog.String("event", "intent.classify"),
		slog.String("intent", res.Intent),
	)
	return res
}

// parseReply extracts the intent JSON from a model reply. Models often wrap
// the payload in prose or use single quotes, so the first {...} span is cut
// out and single quotes are normalised before decoding.
func parseReply(reply string) Result {
	cleaned := strings.TrimSpace(reply)
	if start, end := strings.Index(cleaned, "{"), strings.LastIndex(cleaned, "}"); start >= 0 && end >= start {
		cleaned = cleaned[start : end+1]
	}

	var payload struct {
		Intent    string    `json:"intent"`
		Extracted Extracted `json:"extracted_data"`
	}
	if err := json.Unmarshal([]byte(strings.ReplaceAll(cleaned, "'", `"`)), &payload); err == nil {
		if payload.Intent != "" {
			return Result{Intent: normalizeIntent(payload.Intent), Extracted: payload.Extracted}
		}
	}

	// Keyword fallback over the raw reply.
	lower := strings.ToLower(reply)
	switch {
	case strings.Contains(lower, SportNow):
		return Result{Intent: SportNow}
	case strings.Contains(lower, FindBuddy):
		return Result{Intent: FindBuddy}
	}
	return Result{Intent: GeneralQuestion}
}

func normalizeIntent(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case SportNow:
		return SportNow
	case FindBuddy:
		return FindBuddy
	default:
		return GeneralQuestion
	}
}

const answerPrompt = "You are a helpful sports assistant for a sports buddy telegram bot. " +
	"Give concise, sports-focused answers. Be friendly but direct. " +
	"If someone asks about sports activities, fitness, training, " +
	"or finding sports buddies, provide practical advice.\n\nUser query: "

const answerFallback = "Sorry, I'm having trouble answering that right now. Please try again later."

// Answer produces a sports-focused reply for general questions.
// Failures degrade to a fixed apology rather than an error.
func (c *Classifier) Answer(ctx context.Context, query string) string {
	reply, err := c.llm.Submit(ctx, answerPrompt+query)
	if err != nil {
		logger.Intent.Warn("answer call failed",
			slog.String("event", "intent.answer"),
			slog.String("err", err.Error()),
		)
		return answerFallback
	}
	return reply
}
