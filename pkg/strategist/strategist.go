// Package strategist asks the reasoning service to rank commercially valuable
// marketing triggers against a city's live signals and a brand profile.
package strategist

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/ayush19353/geopulse-ai-app/pkg/models"
	"github.com/ayush19353/geopulse-ai-app/pkg/reasoning"
)

// dangerAQI is the AQI threshold above which air quality counts as a
// high-priority safety/urgency trigger.
const dangerAQI = 200

const triggersSchema = `{
	"type": "object",
	"required": ["triggers"],
	"properties": {
		"triggers": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["trigger", "tone"],
				"properties": {
					"trigger":   {"type": "string", "minLength": 1},
					"tone":      {"type": "string", "minLength": 1},
					"reasoning": {"type": "string"}
				}
			}
		}
	}
}`

// ErrInvalidResponse wraps schema violations in the service's reply.
type ErrInvalidResponse struct {
	Detail string
}

func (e *ErrInvalidResponse) Error() string {
	return "strategist response failed schema validation: " + e.Detail
}

// Strategist ranks candidate triggers. Empty-but-well-formed results are not
// errors: they signal a recoverable "no safe triggers found" outcome the
// orchestrator surfaces to the operator.
type Strategist struct {
	completer reasoning.Completer
	schema    *gojsonschema.Schema
	logger    *slog.Logger
}

func New(completer reasoning.Completer, logger *slog.Logger) (*Strategist, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(triggersSchema))
	if err != nil {
		return nil, fmt.Errorf("failed to compile triggers schema: %w", err)
	}

	return &Strategist{
		completer: completer,
		schema:    schema,
		logger:    logger.With("module", "strategist"),
	}, nil
}

type triggersEnvelope struct {
	Triggers []models.Trigger `json:"triggers"`
}

// Rank returns brand-safe triggers ordered high-priority first. It fails only
// on transport errors or an unparseable/ill-formed response.
func (s *Strategist) Rank(
	ctx context.Context,
	signal models.SignalRecord,
	profile models.BrandProfile,
) ([]models.Trigger, error) {
	s.logger.InfoContext(ctx, "Analyzing signals",
		"industry", profile.Industry, "brand", profile.BrandName, "city", signal.City)

	raw, err := s.completer.CompleteJSON(ctx, s.taskDescription(profile), "Here is the live data: "+signal.Summary())
	if err != nil {
		return nil, fmt.Errorf("trigger ranking failed: %w", err)
	}

	result, err := s.schema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return nil, &ErrInvalidResponse{Detail: err.Error()}
	}

	if !result.Valid() {
		return nil, &ErrInvalidResponse{Detail: formatSchemaErrors(result)}
	}

	var envelope triggersEnvelope

	err = json.Unmarshal(raw, &envelope)
	if err != nil {
		return nil, &ErrInvalidResponse{Detail: err.Error()}
	}

	if len(envelope.Triggers) == 0 {
		s.logger.WarnContext(ctx, "Reasoning service returned zero triggers despite fallback rule")

		return []models.Trigger{}, nil
	}

	return envelope.Triggers, nil
}

func (s *Strategist) taskDescription(profile models.BrandProfile) string {
	return fmt.Sprintf(`You are a marketing strategist for a *%s* brand with this voice: *%s*.
Your task is to analyze live data and identify *all* commercially-valuable triggers.

Priority Guide:
1. **High Priority:** Mass Cultural Events (Holidays, Sports) and Safety/Urgency Triggers (Heavy Rain, AQI > %d).
2. **Low Priority:** Ambient Triggers (e.g., Clear Skies, Haze, regular news).

**BRAND SAFETY GUARDRAIL:**
You MUST ignore any triggers that are negative, tragic, or politically sensitive. Focus only on positive or neutral events.

**FALLBACK RULE:**
If no High Priority triggers are found, you MUST identify and return at least one Low Priority 'Ambient' trigger.

**TASK:**
Return a JSON object with a key "triggers", which is a JSON list of all *brand-safe* triggers, ranked by priority.
For each trigger, provide a 'trigger', 'tone', and 'reasoning'.

Respond *ONLY* with a valid JSON object.`, profile.Industry, profile.Voice, dangerAQI)
}

func formatSchemaErrors(result *gojsonschema.Result) string {
	details := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		details = append(details, desc.String())
	}

	return strings.Join(details, "; ")
}
