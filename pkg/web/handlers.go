// Package web exposes the pipeline orchestrator's operations over REST. It is
// a pure consumer: every state read and write goes through the orchestrator,
// and rendering details stay out of the core.
package web

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"

	"github.com/ayush19353/geopulse-ai-app/pkg/catalog"
	"github.com/ayush19353/geopulse-ai-app/pkg/models"
	"github.com/ayush19353/geopulse-ai-app/pkg/persistence"
	"github.com/ayush19353/geopulse-ai-app/pkg/sessions"
)

type APIHandlers struct {
	manager   *sessions.Manager
	history   persistence.RunRepository
	validator *validator.Validate
}

func NewAPIHandlers(manager *sessions.Manager, history persistence.RunRepository, validate *validator.Validate) *APIHandlers {
	return &APIHandlers{
		manager:   manager,
		history:   history,
		validator: validate,
	}
}

// GetCatalog lists the selectable industries, brands, and cities.
func (h *APIHandlers) GetCatalog(c fiber.Ctx) error {
	brands := make(map[string][]string, len(catalog.Industries()))
	for _, industry := range catalog.Industries() {
		brands[string(industry)] = catalog.Brands(industry)
	}

	return c.JSON(fiber.Map{
		"industries": catalog.Industries(),
		"brands":     brands,
		"cities":     catalog.Cities,
	})
}

// CreateSession opens a session for a brand/city pair.
func (h *APIHandlers) CreateSession(c fiber.Ctx) error {
	var req CreateSessionRequest

	err := c.Bind().JSON(&req)
	if err != nil {
		return badRequest(c, "Invalid request body: "+err.Error())
	}

	err = h.validator.Struct(req)
	if err != nil {
		return badRequest(c, "Invalid request: "+err.Error())
	}

	profile, err := catalog.Lookup(models.Industry(req.Industry), req.Brand)
	if err != nil {
		return notFound(c, "unknown brand for industry "+req.Industry)
	}

	sessionID, orchestrator := h.manager.Create(req.City, profile)
	run := orchestrator.Snapshot()

	return c.Status(fiber.StatusCreated).JSON(SessionResponse{SessionID: sessionID, Run: run})
}

// GetSession returns the session's current run snapshot.
func (h *APIHandlers) GetSession(c fiber.Ctx) error {
	orchestrator, err := h.manager.Get(c.Params("id"))
	if err != nil {
		return handlePipelineError(c, err)
	}

	run := orchestrator.Snapshot()

	return c.JSON(SessionResponse{SessionID: c.Params("id"), Run: run, Options: triggerOptions(run)})
}

// Analyze aggregates signals and ranks triggers for the session's city.
func (h *APIHandlers) Analyze(c fiber.Ctx) error {
	orchestrator, err := h.manager.Get(c.Params("id"))
	if err != nil {
		return handlePipelineError(c, err)
	}

	run, err := orchestrator.Analyze(c.Context())
	if err != nil {
		return handlePipelineError(c, err)
	}

	return c.JSON(SessionResponse{SessionID: c.Params("id"), Run: run, Options: triggerOptions(run)})
}

// SelectTrigger confirms a ranked or custom trigger and advances to
// generation.
func (h *APIHandlers) SelectTrigger(c fiber.Ctx) error {
	orchestrator, err := h.manager.Get(c.Params("id"))
	if err != nil {
		return handlePipelineError(c, err)
	}

	var req SelectTriggerRequest

	err = c.Bind().JSON(&req)
	if err != nil {
		return badRequest(c, "Invalid request body: "+err.Error())
	}

	var run models.Run

	switch {
	case req.Custom != nil:
		err = h.validator.Struct(req.Custom)
		if err != nil {
			return badRequest(c, "Invalid custom trigger: "+err.Error())
		}

		run, err = orchestrator.ConfirmCustomTrigger(c.Context(), models.Trigger{
			Trigger: req.Custom.Trigger,
			Tone:    req.Custom.Tone,
		})
	case req.Index != nil:
		run, err = orchestrator.ConfirmTrigger(c.Context(), *req.Index)
	default:
		return badRequest(c, "Either index or custom must be provided")
	}

	if err != nil {
		return handlePipelineError(c, err)
	}

	return c.JSON(SessionResponse{SessionID: c.Params("id"), Run: run})
}

// Generate runs the three creative sub-calls for the confirmed trigger.
func (h *APIHandlers) Generate(c fiber.Ctx) error {
	orchestrator, err := h.manager.Get(c.Params("id"))
	if err != nil {
		return handlePipelineError(c, err)
	}

	run, err := orchestrator.Generate(c.Context())
	if err != nil {
		return handlePipelineError(c, err)
	}

	return c.JSON(SessionResponse{SessionID: c.Params("id"), Run: run})
}

// Publish delivers the reviewed post to every destination.
func (h *APIHandlers) Publish(c fiber.Ctx) error {
	orchestrator, err := h.manager.Get(c.Params("id"))
	if err != nil {
		return handlePipelineError(c, err)
	}

	run, err := orchestrator.Publish(c.Context())
	if err != nil {
		return handlePipelineError(c, err)
	}

	return c.JSON(SessionResponse{SessionID: c.Params("id"), Run: run})
}

// Restart abandons the current run and resets the session to selection.
func (h *APIHandlers) Restart(c fiber.Ctx) error {
	orchestrator, err := h.manager.Get(c.Params("id"))
	if err != nil {
		return handlePipelineError(c, err)
	}

	run := orchestrator.Restart(c.Context())

	return c.JSON(SessionResponse{SessionID: c.Params("id"), Run: run})
}

// CloseSession ends the session and reclaims its resources.
func (h *APIHandlers) CloseSession(c fiber.Ctx) error {
	err := h.manager.Close(c.Context(), c.Params("id"))
	if err != nil {
		return handlePipelineError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// ListRuns returns the archived run history, most recent first.
func (h *APIHandlers) ListRuns(c fiber.Ctx) error {
	runs, err := h.history.List(c.Context())
	if err != nil {
		return internalError(c, err)
	}

	return c.JSON(fiber.Map{"runs": runs, "total_count": len(runs)})
}
