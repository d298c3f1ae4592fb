package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rescuesim/responder-service/internal/models"
	"github.com/rescuesim/responder-service/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	responderService service.ResponderService
	logger           *logrus.Logger
	validate         *validator.Validate
}

func NewHandler(responderService service.ResponderService, logger *logrus.Logger) *Handler {
	return &Handler{
		responderService: responderService,
		logger:           logger,
		validate:         validator.New(),
	}
}

func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	stats, err := h.responderService.GetResponderStats(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get responder stats from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) getResponder(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid responder ID"})
		return
	}
	log := h.logger.WithField("method", "getResponder").WithField("id", id)

	responder, err := h.responderService.GetResponder(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Error("Failed to get responder from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if responder == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "responder not found"})
		return
	}
	c.JSON(http.StatusOK, responder)
}

func (h *Handler) getResponderByName(c *gin.Context) {
	name := c.Param("name")
	log := h.logger.WithField("method", "getResponderByName").WithField("name", name)

	responder, err := h.responderService.GetResponderByName(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, service.ErrMultipleMatches) {
			log.WithError(err).Error("Responder name is not unique")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "multiple responders share this name"})
			return
		}
		log.WithError(err).Error("Failed to get responder from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if responder == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "responder not found"})
		return
	}
	c.JSON(http.StatusOK, responder)
}

func (h *Handler) listResponders(c *gin.Context) {
	log := h.logger.WithField("method", "listResponders")
	limit, offset := listParams(c)

	responders, err := h.responderService.AllResponders(c.Request.Context(), limit, offset)
	if err != nil {
		log.WithError(err).Error("Failed to list responders from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, responders)
}

func (h *Handler) availableResponders(c *gin.Context) {
	log := h.logger.WithField("method", "availableResponders")
	limit, offset := listParams(c)

	responders, err := h.responderService.AvailableResponders(c.Request.Context(), limit, offset)
	if err != nil {
		log.WithError(err).Error("Failed to list available responders from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, responders)
}

func (h *Handler) personResponders(c *gin.Context) {
	log := h.logger.WithField("method", "personResponders")
	limit, offset := listParams(c)

	responders, err := h.responderService.PersonResponders(c.Request.Context(), limit, offset)
	if err != nil {
		log.WithError(err).Error("Failed to list person responders from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, responders)
}

func (h *Handler) createResponder(c *gin.Context) {
	var input CreateResponderRequest
	log := h.logger.WithField("method", "createResponder")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := CreateRequestToModel(input)
	if err := h.responderService.CreateResponder(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to create responder in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, model)
}

func (h *Handler) createResponders(c *gin.Context) {
	var input []CreateResponderRequest
	log := h.logger.WithField("method", "createResponders")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	batch := make([]*models.Responder, 0, len(input))
	for _, dto := range input {
		if err := h.validate.Struct(dto); err != nil {
			log.WithError(err).Warn("Validation failed")
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		batch = append(batch, CreateRequestToModel(dto))
	}

	if err := h.responderService.CreateResponders(c.Request.Context(), batch); err != nil {
		log.WithError(err).Error("Failed to create responders in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusCreated)
}

func (h *Handler) updateResponder(c *gin.Context) {
	var input UpdateResponderRequest
	log := h.logger.WithField("method", "updateResponder")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model, err := UpdateRequestToModel(input)
	if err != nil {
		log.WithError(err).Warn("Invalid responder id")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid responder ID"})
		return
	}

	result, err := h.responderService.UpdateResponder(c.Request.Context(), model)
	if err != nil {
		log.WithError(err).Error("Failed to update responder in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if !result.Success {
		log.WithField("id", model.ID).Debugf("Update rejected: %s", result.Message)
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) resetResponders(c *gin.Context) {
	log := h.logger.WithField("method", "resetResponders")

	if err := h.responderService.Reset(c.Request.Context()); err != nil {
		log.WithError(err).Error("Failed to reset responders in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusOK)
}

func (h *Handler) clearResponders(c *gin.Context) {
	log := h.logger.WithField("method", "clearResponders")

	var err error
	if c.Query("delete") == "all" {
		err = h.responderService.DeleteAll(c.Request.Context())
	} else {
		err = h.responderService.Clear(c.Request.Context())
	}
	if err != nil {
		log.WithError(err).Error("Failed to clear responders in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusOK)
}

func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// listParams reads optional pagination query parameters. A zero limit
// means "no limit".
func listParams(c *gin.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "0"))
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	return limit, offset
}
