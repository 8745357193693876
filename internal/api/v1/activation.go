package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/subplane/subplane/internal/api/dto"
	ierr "github.com/subplane/subplane/internal/errors"
	"github.com/subplane/subplane/internal/logger"
	"github.com/subplane/subplane/internal/service"
)

type ActivationHandler struct {
	service service.ActivationService
	log     *logger.Logger
}

func NewActivationHandler(service service.ActivationService, log *logger.Logger) *ActivationHandler {
	return &ActivationHandler{
		service: service,
		log:     log,
	}
}

// @Summary Create activation
// @Description Record that an order's effect has been applied
// @Tags Activations
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param activation body dto.CreateActivationRequest true "Activation details"
// @Success 201 {object} dto.ActivationResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /activations [post]
func (h *ActivationHandler) CreateActivation(c *gin.Context) {
	var req dto.CreateActivationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateActivation(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Get activation
// @Description Get an activation by ID
// @Tags Activations
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Activation ID"
// @Success 200 {object} dto.ActivationResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /activations/{id} [get]
func (h *ActivationHandler) GetActivation(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("activation ID is required").
			WithHint("Activation ID is required").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.GetActivation(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
