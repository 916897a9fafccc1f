package ai

import "context"

// TextGenerator is the external generative text collaborator. It receives a
// fully composed prompt and returns free text; the model on the far side is
// the sole enforcer of the safety rules embedded in the prompt.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
