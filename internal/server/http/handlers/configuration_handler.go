package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/antech/configstore/internal/domain/model"
	"github.com/antech/configstore/internal/server/http/dto"
)

// ConfigurationHandler serves build template endpoints.
type ConfigurationHandler struct {
	facade ConfigurationFacade
}

// NewConfigurationHandler constructs ConfigurationHandler.
func NewConfigurationHandler(facade ConfigurationFacade) *ConfigurationHandler {
	return &ConfigurationHandler{facade: facade}
}

// Create handles POST /api/configurations.
func (h *ConfigurationHandler) Create(c *gin.Context) {
	var req dto.ConfigurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	cfg, err := h.facade.CreateConfiguration(c.Request.Context(), CurrentUser(c), req.Name, req.Description)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toConfigurationResponse(cfg))
}

// List handles GET /api/configurations.
func (h *ConfigurationHandler) List(c *gin.Context) {
	configurations, err := h.facade.Configurations(c.Request.Context(), CurrentUser(c))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.ConfigurationResponse, 0, len(configurations))
	for i := range configurations {
		response = append(response, toConfigurationResponse(&configurations[i]))
	}
	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/configurations/:id.
func (h *ConfigurationHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	cfg, err := h.facade.Configuration(c.Request.Context(), CurrentUser(c), id)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toConfigurationResponse(cfg))
}

// Update handles PATCH /api/configurations/:id.
func (h *ConfigurationHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.ConfigurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.UpdateConfiguration(c.Request.Context(), CurrentUser(c), id, req.Name, req.Description); err != nil {
		writeDomainError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// Delete handles DELETE /api/configurations/:id.
func (h *ConfigurationHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.facade.DeleteConfiguration(c.Request.Context(), CurrentUser(c), id); err != nil {
		writeDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Quote handles GET /api/configurations/:id/price.
func (h *ConfigurationHandler) Quote(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	price, err := h.facade.QuoteConfiguration(c.Request.Context(), CurrentUser(c), id)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.QuoteResponse{Price: price.StringFixed(2)})
}

// AddItem handles POST /api/configurations/:id/items.
func (h *ConfigurationHandler) AddItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.ConfigurationItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	item, err := h.facade.AddConfigurationItem(c.Request.Context(), CurrentUser(c), id, req.Component, req.Quantity)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ConfigurationItemResponse{
		ComponentID:   item.ComponentID,
		ComponentName: item.ComponentName,
		Quantity:      item.Quantity,
	})
}

// UpdateItem handles PATCH /api/configurations/:id/items/:componentID.
func (h *ConfigurationHandler) UpdateItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	componentID, ok := pathID(c, "componentID")
	if !ok {
		return
	}
	var req dto.ItemQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.UpdateConfigurationItem(c.Request.Context(), CurrentUser(c), id, componentID, req.Quantity); err != nil {
		writeDomainError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// RemoveItem handles DELETE /api/configurations/:id/items/:componentID.
func (h *ConfigurationHandler) RemoveItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	componentID, ok := pathID(c, "componentID")
	if !ok {
		return
	}

	if err := h.facade.RemoveConfigurationItem(c.Request.Context(), CurrentUser(c), id, componentID); err != nil {
		writeDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func toConfigurationResponse(cfg *model.Configuration) dto.ConfigurationResponse {
	items := make([]dto.ConfigurationItemResponse, 0, len(cfg.Items))
	for _, item := range cfg.Items {
		items = append(items, dto.ConfigurationItemResponse{
			ComponentID:   item.ComponentID,
			ComponentName: item.ComponentName,
			Quantity:      item.Quantity,
		})
	}
	return dto.ConfigurationResponse{
		ID:          cfg.ID,
		Name:        cfg.DisplayName(),
		Description: cfg.Description,
		CreatedAt:   cfg.CreatedAt,
		Items:       items,
	}
}
