// Package creative assembles the publishable assets for a confirmed trigger:
// post copy, a brand-safe image prompt, and a rendered image. The three
// sub-calls are sequential and dependent — each one's output feeds the next —
// and each failure carries the sub-call name so a retry can resume the
// pipeline from the right place.
package creative

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ayush19353/geopulse-ai-app/pkg/models"
	"github.com/ayush19353/geopulse-ai-app/pkg/reasoning"
)

// Renderer turns an image prompt into a locally persisted image file.
type Renderer interface {
	Render(ctx context.Context, prompt, name string) (string, error)
}

// Generator drives the three creative sub-calls.
type Generator struct {
	completer reasoning.Completer
	renderer  Renderer
	validate  *validator.Validate
	logger    *slog.Logger
}

func NewGenerator(completer reasoning.Completer, renderer Renderer, logger *slog.Logger) *Generator {
	return &Generator{
		completer: completer,
		renderer:  renderer,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		logger:    logger.With("module", "creative_generator"),
	}
}

// Draft runs all three sub-calls in order and returns the fully populated
// asset set. imageName is the session-scoped basename for the persisted
// image.
func (g *Generator) Draft(
	ctx context.Context,
	trigger models.Trigger,
	signal models.SignalRecord,
	profile models.BrandProfile,
	imageName string,
) (models.CreativeAssets, error) {
	var assets models.CreativeAssets

	pack, err := g.GenerateCopy(ctx, trigger, signal, profile)
	if err != nil {
		return assets, err
	}

	assets.CopyPackage = pack

	prompt, err := g.GenerateImagePrompt(ctx, pack.PostText, profile)
	if err != nil {
		return assets, err
	}

	assets.ImagePrompt = prompt

	path, err := g.RenderImage(ctx, prompt, imageName)
	if err != nil {
		return assets, err
	}

	assets.ImagePath = path

	return assets, nil
}

// GenerateCopy asks the reasoning service for the five-field copy package.
// A decoded response missing any required field fails with ErrMissingFields —
// checked explicitly because the upstream output is unstructured text coerced
// into a schema.
func (g *Generator) GenerateCopy(
	ctx context.Context,
	trigger models.Trigger,
	signal models.SignalRecord,
	profile models.BrandProfile,
) (models.CopyPackage, error) {
	g.logger.InfoContext(ctx, "Generating post copy",
		"brand", profile.BrandName, "trigger", trigger.Trigger, "tone", trigger.Tone)

	system := fmt.Sprintf(`You are an expert social media manager and marketing strategist for the brand *%s*.
Your brand voice is: *%s*
Your relevant products are: *%s*

You MUST generate five things in a JSON format:
1. `+"`post_text`"+`: A short, ready-to-publish social media post (under 500 characters).
2. `+"`hashtags`"+`: A JSON array of 3-5 relevant and trending hashtags.
3. `+"`target_audience`"+`: A JSON array of 2-3 specific audience segments this post will appeal to.
4. `+"`predicted_impact_rating`"+`: A single rating ("High", "Medium", or "Low") of this post's potential.
5. `+"`predicted_impact_reasoning`"+`: A 1-sentence analysis of *why* this post will perform well.

If the trigger is negative (pollution, extreme weather), the post text MUST reframe it positively around the brand's products.

Respond *ONLY* with a valid JSON object.`,
		profile.BrandName, profile.Voice, strings.Join(profile.ProductExamples, ", "))

	user := fmt.Sprintf("**City:** %s\n**Live Data:** %s\n**Chosen Trigger:** %q\n**Chosen Tone:** %q",
		signal.City, signal.Summary(), trigger.Trigger, trigger.Tone)

	raw, err := g.completer.CompleteJSON(ctx, system, user)
	if err != nil {
		return models.CopyPackage{}, &StageError{SubCall: SubCallCopy, Err: err}
	}

	var pack models.CopyPackage

	err = json.Unmarshal(raw, &pack)
	if err != nil {
		return models.CopyPackage{}, &StageError{
			SubCall: SubCallCopy,
			Err:     fmt.Errorf("failed to decode copy response: %w", err),
		}
	}

	err = g.validate.Struct(pack)
	if err != nil {
		return models.CopyPackage{}, &StageError{
			SubCall: SubCallCopy,
			Err:     fmt.Errorf("%w: %w", ErrMissingFields, err),
		}
	}

	return pack, nil
}

// GenerateImagePrompt derives a brand-safe image prompt from the generated
// copy. It deliberately receives ONLY the post text and the brand profile —
// never the raw signals or trigger — so negative raw-signal vocabulary cannot
// leak into the image request. The copy itself is expected to have reframed
// any negative trigger positively already.
func (g *Generator) GenerateImagePrompt(ctx context.Context, postText string, profile models.BrandProfile) (string, error) {
	g.logger.InfoContext(ctx, "Deriving image prompt", "brand", profile.BrandName)

	system := fmt.Sprintf(`You write image-generation prompts for the brand *%s* (products: *%s*).
Given a social media post, produce one concise, visually descriptive image prompt.

**SAFETY GUARDRAIL (CRITICAL):**
The prompt MUST be 100%% brand-safe and positive.
- **FOCUS ON THE POSITIVE SOLUTION, NOT THE NEGATIVE PROBLEM.**
- **UNSAFE (Negative Problem):** "A person coughing in a hazy city."
- **SAFE (Positive Solution):** "A happy person indoors, enjoying a fresh pizza, with a window showing a *blurry* city skyline."
- **BE LITERAL AND DESCRIPTIVE.** Avoid all metaphors (e.g., "explosion of flavor", "killer deal").
- **DO NOT** use any words related to violence, harm, negativity, or suffering (e.g., "attack", "choke", "trap", "suffer").
- Your prompt must be a *literal description* of a positive, safe scene.

Respond *ONLY* with a valid JSON object of the form {"image_prompt": "..."}.`,
		profile.BrandName, strings.Join(profile.ProductExamples, ", "))

	raw, err := g.completer.CompleteJSON(ctx, system, "**Post:** "+postText)
	if err != nil {
		return "", &StageError{SubCall: SubCallImagePrompt, Err: err}
	}

	var decoded struct {
		ImagePrompt string `json:"image_prompt"`
	}

	err = json.Unmarshal(raw, &decoded)
	if err != nil {
		return "", &StageError{
			SubCall: SubCallImagePrompt,
			Err:     fmt.Errorf("failed to decode image prompt response: %w", err),
		}
	}

	if decoded.ImagePrompt == "" {
		return "", &StageError{
			SubCall: SubCallImagePrompt,
			Err:     fmt.Errorf("%w: image_prompt", ErrMissingFields),
		}
	}

	return decoded.ImagePrompt, nil
}

// RenderImage renders and persists the image for the prompt.
func (g *Generator) RenderImage(ctx context.Context, prompt, name string) (string, error) {
	g.logger.InfoContext(ctx, "Rendering image", "name", name)

	path, err := g.renderer.Render(ctx, prompt, name)
	if err != nil {
		return "", &StageError{SubCall: SubCallRender, Err: err}
	}

	return path, nil
}
