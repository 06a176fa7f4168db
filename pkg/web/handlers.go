// Package web provides HTTP handlers and REST API endpoints for profile settings.
package web

import (
	"net/http"
	"time"

	"github.com/emberhq/ember/pkg/models"
	"github.com/emberhq/ember/pkg/services"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/xeipuuv/gojsonschema"
)

type APIHandlers struct {
	settingsService *services.Settings
	validator       *validator.Validate
	strictPayloads  bool
}

func NewAPIHandlers(
	settingsService *services.Settings,
	validator *validator.Validate,
	strictPayloads bool,
) *APIHandlers {
	return &APIHandlers{
		settingsService: settingsService,
		validator:       validator,
		strictPayloads:  strictPayloads,
	}
}

// RegisterRoutes mounts every settings endpoint on router.
func (h *APIHandlers) RegisterRoutes(router fiber.Router) {
	p := router.Group("/profiles")
	p.Get("/", h.GetProfiles)
	p.Post("/", h.CreateProfile)
	p.Get("/:id", h.GetProfile)
	p.Patch("/:id", h.UpdateProfile)
	p.Delete("/:id", h.DeleteProfile)

	p.Get("/:id/state", h.GetAutomationState)
	p.Patch("/:id/state", h.UpdateAutomationState)

	p.Get("/:id/best-sellers", h.GetBestSellers)
	p.Patch("/:id/best-sellers/:itemId", h.UpdateBestSellerItem)

	p.Get("/:id/runemaker", h.GetRunemakerSettings)
	p.Patch("/:id/runemaker", h.UpdateRunemakerSettings)

	p.Get("/:id/hyper-grab", h.GetHyperGrabSettings)
	p.Patch("/:id/hyper-grab", h.UpdateHyperGrabSettings)

	p.Get("/:id/targets", h.GetTargets)
	p.Post("/:id/targets", h.AddTarget)
	p.Patch("/:id/targets/:targetId", h.UpdateTarget)
	p.Delete("/:id/targets/:targetId", h.RemoveTarget)

	router.Get("/global-active", h.GetGlobalActive)
	router.Post("/global-active", h.SetGlobalActive)
}

// decode binds the request body into dst and validates it. In strict mode the
// raw body is first checked against schema. When it returns false the
// request has already been answered and the error is the response error.
func (h *APIHandlers) decode(c fiber.Ctx, schema *gojsonschema.Schema, dst any) (bool, error) {
	if h.strictPayloads {
		if err := validatePayload(schema, c.Body()); err != nil {
			return false, badRequest(c, err.Error())
		}
	}

	if err := c.Bind().JSON(dst); err != nil {
		return false, badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(dst); err != nil {
		return false, badRequest(c, err.Error())
	}

	return true, nil
}

func (h *APIHandlers) HealthCheck(c fiber.Ctx) error {
	settingsCheck, ok := h.settingsService.HealthCheck(c.Context())

	status := "unhealthy"
	message := "Ember API is unhealthy"
	httpStatus := http.StatusInternalServerError

	if ok {
		status = "healthy"
		message = "Ember API is healthy"
		httpStatus = http.StatusOK
	}

	return c.Status(httpStatus).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"checkers": fiber.Map{
			"settings": settingsCheck,
		},
		"timestamp": time.Now().UTC(),
	})
}

func (h *APIHandlers) GetProfiles(c fiber.Ctx) error {
	return c.JSON(h.settingsService.ListProfiles(c.Context()))
}

func (h *APIHandlers) GetProfile(c fiber.Ctx) error {
	profile, err := h.settingsService.GetProfile(c.Context(), c.Params("id"))
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(profile)
}

func (h *APIHandlers) CreateProfile(c fiber.Ctx) error {
	var req CreateProfileRequest
	if ok, err := h.decode(c, createProfileSchema, &req); !ok {
		return err
	}

	profile, err := h.settingsService.CreateProfile(c.Context(), req.Name, req.IsActive)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(profile)
}

func (h *APIHandlers) UpdateProfile(c fiber.Ctx) error {
	var patch models.ProfilePatch
	if ok, err := h.decode(c, profilePatchSchema, &patch); !ok {
		return err
	}

	profile, err := h.settingsService.UpdateProfile(c.Context(), c.Params("id"), patch)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(profile)
}

func (h *APIHandlers) DeleteProfile(c fiber.Ctx) error {
	if err := h.settingsService.DeleteProfile(c.Context(), c.Params("id")); err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(SuccessResponse{Success: true})
}

func (h *APIHandlers) GetAutomationState(c fiber.Ctx) error {
	state, err := h.settingsService.GetAutomationState(c.Context(), c.Params("id"))
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(state)
}

func (h *APIHandlers) UpdateAutomationState(c fiber.Ctx) error {
	var patch models.AutomationStatePatch
	if ok, err := h.decode(c, automationStatePatchSchema, &patch); !ok {
		return err
	}

	state, err := h.settingsService.UpdateAutomationState(c.Context(), c.Params("id"), patch)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(state)
}

func (h *APIHandlers) GetBestSellers(c fiber.Ctx) error {
	return c.JSON(h.settingsService.GetBestSellers(c.Context(), c.Params("id")))
}

func (h *APIHandlers) UpdateBestSellerItem(c fiber.Ctx) error {
	var patch models.BestSellerPatch
	if ok, err := h.decode(c, bestSellerPatchSchema, &patch); !ok {
		return err
	}

	item, err := h.settingsService.UpdateBestSellerItem(c.Context(), c.Params("id"), c.Params("itemId"), patch)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(item)
}

func (h *APIHandlers) GetRunemakerSettings(c fiber.Ctx) error {
	rm, err := h.settingsService.GetRunemakerSettings(c.Context(), c.Params("id"))
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(rm)
}

func (h *APIHandlers) UpdateRunemakerSettings(c fiber.Ctx) error {
	var patch models.RunemakerPatch
	if ok, err := h.decode(c, runemakerPatchSchema, &patch); !ok {
		return err
	}

	rm, err := h.settingsService.UpdateRunemakerSettings(c.Context(), c.Params("id"), patch)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(rm)
}

func (h *APIHandlers) GetHyperGrabSettings(c fiber.Ctx) error {
	hg, err := h.settingsService.GetHyperGrabSettings(c.Context(), c.Params("id"))
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(hg)
}

func (h *APIHandlers) UpdateHyperGrabSettings(c fiber.Ctx) error {
	var patch models.HyperGrabPatch
	if ok, err := h.decode(c, hyperGrabPatchSchema, &patch); !ok {
		return err
	}

	hg, err := h.settingsService.UpdateHyperGrabSettings(c.Context(), c.Params("id"), patch)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(hg)
}

func (h *APIHandlers) GetTargets(c fiber.Ctx) error {
	return c.JSON(h.settingsService.ListTargets(c.Context(), c.Params("id")))
}

func (h *APIHandlers) AddTarget(c fiber.Ctx) error {
	var req CreateTargetRequest
	if ok, err := h.decode(c, createTargetSchema, &req); !ok {
		return err
	}

	target, err := h.settingsService.AddTarget(c.Context(), c.Params("id"), req.Name)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(target)
}

func (h *APIHandlers) UpdateTarget(c fiber.Ctx) error {
	var patch models.TargetPatch
	if ok, err := h.decode(c, targetPatchSchema, &patch); !ok {
		return err
	}

	target, err := h.settingsService.UpdateTarget(c.Context(), c.Params("id"), c.Params("targetId"), patch)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(target)
}

func (h *APIHandlers) RemoveTarget(c fiber.Ctx) error {
	if err := h.settingsService.RemoveTarget(c.Context(), c.Params("id"), c.Params("targetId")); err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(SuccessResponse{Success: true})
}

func (h *APIHandlers) GetGlobalActive(c fiber.Ctx) error {
	return c.JSON(GlobalActiveResponse{Active: h.settingsService.GetGlobalActive(c.Context())})
}

func (h *APIHandlers) SetGlobalActive(c fiber.Ctx) error {
	var req GlobalActiveRequest
	if ok, err := h.decode(c, globalActiveSchema, &req); !ok {
		return err
	}

	active := h.settingsService.SetGlobalActive(c.Context(), *req.Active)

	return c.JSON(GlobalActiveResponse{Active: active})
}
