package handlers

import (
	"errors"

	"github.com/bradymcatee/recipeBox/domain"
	"github.com/bradymcatee/recipeBox/internal/api/presenters"
	"github.com/bradymcatee/recipeBox/pkg/ingredient"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	IngredientHandler interface {
		AddIngredient(c *fiber.Ctx) error
		GetIngredients(c *fiber.Ctx) error
		GetIngredientDetail(c *fiber.Ctx) error
		UpdateIngredient(c *fiber.Ctx) error
		DeleteIngredient(c *fiber.Ctx) error

		AddUsage(c *fiber.Ctx) error
		UpdateUsage(c *fiber.Ctx) error
		DeleteUsage(c *fiber.Ctx) error
		GetRecipeUsages(c *fiber.Ctx) error
		GetIngredientUsages(c *fiber.Ctx) error
	}

	ingredientHandler struct {
		ingredientService ingredient.IngredientService
		validator         *validator.Validate
	}
)

func NewIngredientHandler(ingredientService ingredient.IngredientService, validator *validator.Validate) IngredientHandler {
	return &ingredientHandler{
		ingredientService: ingredientService,
		validator:         validator,
	}
}

func (h *ingredientHandler) AddIngredient(c *fiber.Ctx) error {
	req := new(domain.SaveIngredientRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveIngredient, err)
	}

	res, err := h.ingredientService.AddIngredient(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSaveIngredient, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSaveIngredient)
}

func (h *ingredientHandler) GetIngredients(c *fiber.Ctx) error {
	res, err := h.ingredientService.GetIngredients(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetIngredients, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetIngredients)
}

func (h *ingredientHandler) GetIngredientDetail(c *fiber.Ctx) error {
	res, err := h.ingredientService.GetIngredient(c.Context(), c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrParseUUID):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetIngredients, err)
		case errors.Is(err, domain.ErrIngredientNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageIngredientNotFound, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetIngredients, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetIngredients)
}

func (h *ingredientHandler) UpdateIngredient(c *fiber.Ctx) error {
	req := new(domain.SaveIngredientRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveIngredient, err)
	}

	res, err := h.ingredientService.UpdateIngredient(c.Context(), *req, c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrParseUUID):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveIngredient, err)
		case errors.Is(err, domain.ErrIngredientNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageIngredientNotFound, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSaveIngredient, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSaveIngredient)
}

func (h *ingredientHandler) DeleteIngredient(c *fiber.Ctx) error {
	if err := h.ingredientService.DeleteIngredient(c.Context(), c.Params("id")); err != nil {
		switch {
		case errors.Is(err, domain.ErrParseUUID):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteIngredient, err)
		case errors.Is(err, domain.ErrIngredientNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageIngredientNotFound, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDeleteIngredient, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteIngredient)
}

func (h *ingredientHandler) AddUsage(c *fiber.Ctx) error {
	restaurantID := c.Locals("restaurant_id").(string)
	req := new(domain.SaveUsageRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveIngredient, err)
	}

	err := h.ingredientService.AddUsage(c.Context(), *req, c.Params("id"), c.Params("ingredientID"), restaurantID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrParseUUID):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveIngredient, err)
		case errors.Is(err, domain.ErrRecipeNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageRecipeNotFound, err)
		case errors.Is(err, domain.ErrIngredientNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageIngredientNotFound, err)
		case errors.Is(err, domain.ErrUsageAlreadyExists):
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageUsageAlreadyExists, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSaveIngredient, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusCreated, domain.MessageSuccessSaveIngredient)
}

func (h *ingredientHandler) UpdateUsage(c *fiber.Ctx) error {
	req := new(domain.SaveUsageRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveIngredient, err)
	}

	if err := h.ingredientService.UpdateUsage(c.Context(), *req, c.Params("id"), c.Params("ingredientID")); err != nil {
		switch {
		case errors.Is(err, domain.ErrParseUUID):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveIngredient, err)
		case errors.Is(err, domain.ErrUsageNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageIngredientNotFound, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSaveIngredient, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessSaveIngredient)
}

func (h *ingredientHandler) DeleteUsage(c *fiber.Ctx) error {
	if err := h.ingredientService.DeleteUsage(c.Context(), c.Params("id"), c.Params("ingredientID")); err != nil {
		switch {
		case errors.Is(err, domain.ErrParseUUID):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteIngredient, err)
		case errors.Is(err, domain.ErrUsageNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageIngredientNotFound, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDeleteIngredient, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteIngredient)
}

func (h *ingredientHandler) GetRecipeUsages(c *fiber.Ctx) error {
	restaurantID := c.Locals("restaurant_id").(string)

	res, err := h.ingredientService.GetRecipeUsages(c.Context(), c.Params("id"), restaurantID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrParseUUID):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetIngredients, err)
		case errors.Is(err, domain.ErrRecipeNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageRecipeNotFound, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetIngredients, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetIngredients)
}

func (h *ingredientHandler) GetIngredientUsages(c *fiber.Ctx) error {
	restaurantID := c.Locals("restaurant_id").(string)

	res, err := h.ingredientService.GetIngredientUsages(c.Context(), c.Params("id"), restaurantID)
	if err != nil {
		if errors.Is(err, domain.ErrParseUUID) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetIngredients, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetIngredients, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetIngredients)
}
