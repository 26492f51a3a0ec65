package adapter

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"kincrm/backend/internal/model"
	kerrors "kincrm/backend/pkg/errors"
	"kincrm/backend/pkg/logger"
)

// extractionSystemPrompt instructs the model to emit the strict JSON contract
// the pipeline consumes. Gender must only be set when the text states or
// clearly implies it (e.g. "my wife").
const extractionSystemPrompt = `You extract persons and relationships from conversational text about family, friends and contacts.

Return ONLY a JSON object, no prose, with this exact shape:
{
  "persons": [
    {"name": "...", "gender": "M|F or empty", "phone": "", "email": "",
     "location": "", "occupation": "", "interests": "", "is_speaker": false}
  ],
  "relationships": [
    {"person1": "...", "person2": "...", "relation_term": "...", "context": "..."}
  ]
}

Rules:
- The speaker (the "I" of the text) is a person with "is_speaker": true.
- relation_term names the role person2 plays for person1 ("my wife is Priya": person1 is the speaker, person2 is Priya, relation_term is "wife").
- Keep relation_term exactly as spoken (any language); do not translate it.
- Only fill gender when stated or clearly implied. Leave unknown fields empty.
- Names must appear in "persons" before they are used in "relationships".`

// Extractor turns free text into structured extraction batches via an
// OpenAI-compatible endpoint (LiteLLM in deployment).
type Extractor struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

// NewExtractor creates an extractor. A dummy API key is substituted when none
// is configured, which LiteLLM accepts.
func NewExtractor(baseURL, apiKey, modelID string) *Extractor {
	if apiKey == "" {
		apiKey = "dummy-key"
	}

	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL + "/v1"

	return &Extractor{
		client: openai.NewClientWithConfig(cfg),
		model:  modelID,
		logger: logger.Get(),
	}
}

// Extract runs one extraction call. A failed or unparseable completion yields
// a batch with Success=false rather than a hard error, so callers can treat
// extraction quality issues uniformly.
func (e *Extractor) Extract(ctx context.Context, text string) (model.ExtractionBatch, error) {
	batch := model.ExtractionBatch{RawText: text}

	if strings.TrimSpace(text) == "" {
		batch.Error = kerrors.ErrExtractionEmptyInput.Error()
		return batch, kerrors.ErrExtractionEmptyInput
	}

	req := openai.ChatCompletionRequest{
		Model: e.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: extractionSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		Temperature: 0.1,
	}

	// Retry with linear backoff; extraction is not latency critical.
	var resp openai.ChatCompletionResponse
	var err error
	maxRetries := 3
	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(attempt) * time.Second
			e.logger.Warn("Retrying extraction request",
				zap.Int("attempt", attempt+1),
				zap.Duration("backoff", backoff),
			)
			time.Sleep(backoff)
		}

		resp, err = e.client.CreateChatCompletion(ctx, req)
		if err == nil {
			break
		}
		e.logger.Error("Extraction request failed",
			zap.Error(err),
			zap.Int("attempt", attempt+1),
			zap.String("model", e.model),
		)
	}
	if err != nil {
		batch.Error = err.Error()
		return batch, kerrors.NewExtractionFailed(e.model, maxRetries, err)
	}

	if len(resp.Choices) == 0 {
		batch.Error = "no choices in completion"
		return batch, kerrors.NewBaseError(kerrors.ErrorTypeExtraction, "no choices in completion", nil)
	}

	content := stripCodeFences(resp.Choices[0].Message.Content)
	var payload struct {
		Persons       []model.ExtractedPerson       `json:"persons"`
		Relationships []model.ExtractedRelationship `json:"relationships"`
	}
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		e.logger.Error("Extraction returned malformed JSON",
			zap.Error(err),
			zap.String("content", truncate(content, 200)),
		)
		batch.Error = "malformed extraction payload"
		return batch, kerrors.NewExtractionBadPayload(truncate(content, 200), err)
	}

	batch.Success = true
	batch.Persons = payload.Persons
	batch.Relationships = payload.Relationships
	e.logger.Debug("Extraction completed",
		zap.Int("persons", len(batch.Persons)),
		zap.Int("relationships", len(batch.Relationships)),
	)
	return batch, nil
}

// stripCodeFences removes a surrounding markdown code fence, which some
// models add despite instructions.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
