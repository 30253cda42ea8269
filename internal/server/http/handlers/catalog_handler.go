package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/antech/configstore/internal/domain/model"
	"github.com/antech/configstore/internal/server/http/dto"
)

// CatalogHandler serves catalog browsing and administration endpoints.
type CatalogHandler struct {
	facade CatalogFacade
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(facade CatalogFacade) *CatalogHandler {
	return &CatalogHandler{facade: facade}
}

// ListComponents handles GET /api/components.
func (h *CatalogHandler) ListComponents(c *gin.Context) {
	components, err := h.facade.ListComponents(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.ComponentResponse, 0, len(components))
	for i := range components {
		response = append(response, toComponentResponse(&components[i]))
	}
	c.JSON(http.StatusOK, response)
}

// GetComponent handles GET /api/components/:id.
func (h *CatalogHandler) GetComponent(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	component, err := h.facade.GetComponent(c.Request.Context(), id)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toComponentResponse(component))
}

// CreateComponent handles POST /api/admin/components.
func (h *CatalogHandler) CreateComponent(c *gin.Context) {
	component, ok := bindComponent(c)
	if !ok {
		return
	}

	created, err := h.facade.CreateComponent(c.Request.Context(), component)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toComponentResponse(created))
}

// UpdateComponent handles PATCH /api/admin/components/:id.
func (h *CatalogHandler) UpdateComponent(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	component, ok := bindComponent(c)
	if !ok {
		return
	}
	component.ID = id

	if err := h.facade.UpdateComponent(c.Request.Context(), component); err != nil {
		writeDomainError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// DeleteComponent handles DELETE /api/admin/components/:id.
func (h *CatalogHandler) DeleteComponent(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.facade.DeleteComponent(c.Request.Context(), id); err != nil {
		writeDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListComponentTypes handles GET /api/component-types.
func (h *CatalogHandler) ListComponentTypes(c *gin.Context) {
	types, err := h.facade.ListComponentTypes(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.ComponentTypeResponse, 0, len(types))
	for _, t := range types {
		response = append(response, dto.ComponentTypeResponse{ID: t.ID, Name: t.Name, Description: t.Description})
	}
	c.JSON(http.StatusOK, response)
}

// ListManufacturers handles GET /api/manufacturers.
func (h *CatalogHandler) ListManufacturers(c *gin.Context) {
	manufacturers, err := h.facade.ListManufacturers(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.ManufacturerResponse, 0, len(manufacturers))
	for _, m := range manufacturers {
		response = append(response, dto.ManufacturerResponse{ID: m.ID, Name: m.Name})
	}
	c.JSON(http.StatusOK, response)
}

// CreateManufacturer handles POST /api/admin/manufacturers.
func (h *CatalogHandler) CreateManufacturer(c *gin.Context) {
	var req dto.ManufacturerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	created, err := h.facade.CreateManufacturer(c.Request.Context(), req.Name)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ManufacturerResponse{ID: created.ID, Name: created.Name})
}

// CreateComponentType handles POST /api/admin/component-types.
func (h *CatalogHandler) CreateComponentType(c *gin.Context) {
	var req dto.ComponentTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	created, err := h.facade.CreateComponentType(c.Request.Context(), req.Name, req.Description)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ComponentTypeResponse{ID: created.ID, Name: created.Name, Description: created.Description})
}

func bindComponent(c *gin.Context) (*model.Component, bool) {
	var req dto.ComponentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return nil, false
	}
	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		c.Status(http.StatusUnprocessableEntity)
		return nil, false
	}
	return &model.Component{
		Name:           req.Name,
		TypeID:         req.TypeID,
		ManufacturerID: req.ManufacturerID,
		Price:          price,
		StockQuantity:  req.StockQuantity,
		Specification:  model.Specification(req.Specification),
	}, true
}

func toComponentResponse(component *model.Component) dto.ComponentResponse {
	return dto.ComponentResponse{
		ID:             component.ID,
		Name:           component.Name,
		TypeID:         component.TypeID,
		ManufacturerID: component.ManufacturerID,
		Price:          component.Price.StringFixed(2),
		StockQuantity:  component.StockQuantity,
		Specification:  component.Specification,
	}
}
