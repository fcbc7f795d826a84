package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spigell/skill-scout/internal/ai"
	"github.com/spigell/skill-scout/internal/utils"
	"go.uber.org/zap"
)

const defaultMaxLogLength = 200

// responseDirective is appended to every system prompt so the model returns
// bare JSON conforming to the target schema.
const responseDirective = "Return only a single valid JSON object conforming to this JSON schema:\n" +
	"{{SCHEMA_JSON}}\n" +
	"Do not include explanations, markdown, or text before or after the JSON."

type contentGenerator interface {
	GenerateContent(ctx context.Context, system, message string) (string, error)
	Model() string
}

// Extractor implements ai.Extractor on top of a Gemini content generator.
type Extractor struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

// NewExtractor creates an Extractor. maxLogLength bounds prompt and response
// previews in debug logs.
func NewExtractor(generator contentGenerator, maxLogLength int, logger *zap.Logger) *Extractor {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &Extractor{
		generator: generator,
		logger:    logger,
		maxLogLen: maxLogLength,
	}
}

// Extract sends the prompt and text to Gemini and decodes the response into
// out. It returns false with a nil error when the model produced no
// parseable structured output.
func (e *Extractor) Extract(ctx context.Context, systemPrompt, userText string, schema *ai.Schema, out any) (bool, error) {
	system := systemPrompt
	if schema != nil {
		shape, err := json.Marshal(schema)
		if err != nil {
			return false, fmt.Errorf("marshal target schema: %w", err)
		}
		system = systemPrompt + "\n\n" + strings.ReplaceAll(responseDirective, "{{SCHEMA_JSON}}", string(shape))
	}

	e.logger.Debug("gemini extract request",
		zap.Int("system_length", utf8.RuneCountInString(system)),
		zap.String("system_preview", utils.TruncateForLog(system, e.maxLogLen)),
		zap.String("text_preview", utils.TruncateForLog(userText, e.maxLogLen)),
	)

	raw, err := e.generator.GenerateContent(ctx, system, userText)
	if err != nil {
		return false, err
	}

	e.logger.Debug("gemini extract response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", utils.TruncateForLog(raw, e.maxLogLen)),
	)

	cleaned := extractJSON(raw)
	if cleaned == "" {
		e.logger.Debug("model returned an empty response")
		return false, nil
	}

	if err := json.Unmarshal([]byte(cleaned), out); err != nil {
		e.logger.Debug("model returned no parseable structured output",
			zap.Error(err),
			zap.String("response_preview", utils.TruncateForLog(raw, e.maxLogLen)),
		)
		return false, nil
	}

	return true, nil
}

// extractJSON strips markdown code fences the model sometimes wraps around
// its JSON output.
func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}
