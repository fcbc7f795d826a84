package ai

import "context"

// Extractor produces a structured object from free text. The target shape is
// described declaratively by schema and decoded into out. The boolean result
// is false when the model declined or failed to produce conforming output;
// errors are reserved for transport and API failures.
type Extractor interface {
	Extract(ctx context.Context, systemPrompt, userText string, schema *Schema, out any) (bool, error)
}
