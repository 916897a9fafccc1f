package ai

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/sahanavh/cognicare/internal/models"
)

const (
	chatFallbackReply   = "Sorry, I'm having trouble connecting right now. Please try again later."
	trendsFallbackReply = "Sorry, I was unable to analyze your trends at this time."
	trendsNotEnoughData = "Not enough data to analyze. Please log more symptoms."
	fallbackMyth        = "Going out in the cold weather will give you a cold."
	fallbackFact        = "Fact: Colds are caused by viruses, not by cold air. You get sick by being exposed to a virus, often indoors."
	mythMarker          = "MYTH:"
	factMarker          = "FACT:"
)

var errMythFormat = errors.New("myth response missing MYTH:/FACT: markers")

type MythFact struct {
	Myth string `json:"myth"`
	Fact string `json:"fact"`
}

// Gateway composes prompts from user and domain data, delegates to the
// external generator, and absorbs every failure into a safe fixed reply. No
// error from the generator ever reaches a caller.
type Gateway struct {
	generator TextGenerator
}

func NewGateway(generator TextGenerator) *Gateway {
	return &Gateway{generator: generator}
}

func (gateway *Gateway) DailyMyth(ctx context.Context) MythFact {
	reply, err := gateway.generator.Generate(ctx, mythPrompt)
	if err != nil {
		log.Printf("ai: myth generation failed: %v", err)
		return MythFact{Myth: fallbackMyth, Fact: fallbackFact}
	}

	pair, err := parseMythFact(reply)
	if err != nil {
		log.Printf("ai: myth parsing failed: %v", err)
		return MythFact{Myth: fallbackMyth, Fact: fallbackFact}
	}
	return pair
}

func (gateway *Gateway) ChatReply(ctx context.Context, user models.User, message string) string {
	reply, err := gateway.generator.Generate(ctx, chatPrompt(user.Name, user.Age, message))
	if err != nil {
		log.Printf("ai: chat generation failed: %v", err)
		return chatFallbackReply
	}
	return reply
}

// AnalyzeTrends forwards the user's full symptom history to the generator.
// With zero records it answers the fixed not-enough-data message without
// calling the external service.
func (gateway *Gateway) AnalyzeTrends(ctx context.Context, user models.User, logs []models.SymptomLog) string {
	if len(logs) == 0 {
		return trendsNotEnoughData
	}

	summary := BuildHealthSummary(user.Name, user.Age, logs)
	analysis, err := gateway.generator.Generate(ctx, trendPrompt(summary))
	if err != nil {
		log.Printf("ai: trend analysis failed: %v", err)
		return trendsFallbackReply
	}
	return analysis
}

// parseMythFact splits on the first FACT: marker and strips the MYTH: label.
// The "Fact: " prefix is prepended unconditionally, matching the stored
// behavior even when the model already wrote one.
func parseMythFact(text string) (MythFact, error) {
	if !strings.Contains(text, factMarker) || !strings.Contains(text, mythMarker) {
		return MythFact{}, errMythFormat
	}

	parts := strings.SplitN(text, factMarker, 2)
	myth := strings.TrimSpace(strings.ReplaceAll(parts[0], mythMarker, ""))
	fact := "Fact: " + strings.TrimSpace(parts[1])
	return MythFact{Myth: myth, Fact: fact}, nil
}
