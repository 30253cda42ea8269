package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/antech/configstore/internal/domain/model"
	"github.com/antech/configstore/internal/server/http/dto"
)

// OrderHandler serves order ledger endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.OrderCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.CreateOrder(c.Request.Context(), CurrentUser(c), req.ConfigurationID, req.Quantity)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toOrderResponse(order))
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.Orders(c.Request.Context(), CurrentUser(c))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, toOrderResponses(orders))
}

// ListAll handles GET /api/admin/orders.
func (h *OrderHandler) ListAll(c *gin.Context) {
	orders, err := h.facade.AllOrders(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, toOrderResponses(orders))
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	order, err := h.facade.Order(c.Request.Context(), CurrentUser(c), id)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(order))
}

// Delete handles DELETE /api/orders/:id.
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.facade.DeleteOrder(c.Request.Context(), CurrentUser(c), id); err != nil {
		writeDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SetStatus handles PATCH /api/orders/:id/status.
func (h *OrderHandler) SetStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.StatusChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.SetOrderStatus(c.Request.Context(), CurrentUser(c), id, req.Status); err != nil {
		writeDomainError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// Attach handles POST /api/admin/orders/:id/configurations.
func (h *OrderHandler) Attach(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.SnapshotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	snapshot, err := h.facade.AttachConfiguration(c.Request.Context(), id, req.ConfigurationID, req.Quantity)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toSnapshotResponse(snapshot))
}

// UpdateSnapshot handles PATCH /api/admin/orders/:id/configurations/:configurationID.
func (h *OrderHandler) UpdateSnapshot(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	configurationID, ok := pathID(c, "configurationID")
	if !ok {
		return
	}
	var req dto.ItemQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	snapshot, err := h.facade.UpdateOrderConfiguration(c.Request.Context(), id, configurationID, req.Quantity)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSnapshotResponse(snapshot))
}

// RemoveSnapshot handles DELETE /api/admin/orders/:id/configurations/:configurationID.
func (h *OrderHandler) RemoveSnapshot(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	configurationID, ok := pathID(c, "configurationID")
	if !ok {
		return
	}

	if err := h.facade.RemoveOrderConfiguration(c.Request.Context(), id, configurationID); err != nil {
		writeDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Statuses handles GET /api/admin/statuses.
func (h *OrderHandler) Statuses(c *gin.Context) {
	statuses, err := h.facade.OrderStatuses(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.StatusResponse, 0, len(statuses))
	for _, status := range statuses {
		response = append(response, dto.StatusResponse{ID: status.ID, Name: status.Name})
	}
	c.JSON(http.StatusOK, response)
}

func toOrderResponse(order *model.Order) dto.OrderResponse {
	snapshots := make([]dto.SnapshotResponse, 0, len(order.Snapshots))
	for i := range order.Snapshots {
		snapshots = append(snapshots, toSnapshotResponse(&order.Snapshots[i]))
	}
	return dto.OrderResponse{
		ID:        order.ID,
		UserID:    order.UserID,
		OrderDate: order.OrderDate,
		Total:     order.Total.StringFixed(2),
		Status:    order.Status,
		Snapshots: snapshots,
	}
}

func toOrderResponses(orders []model.Order) []dto.OrderResponse {
	response := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		response = append(response, toOrderResponse(&orders[i]))
	}
	return response
}

func toSnapshotResponse(snapshot *model.OrderConfiguration) dto.SnapshotResponse {
	return dto.SnapshotResponse{
		ConfigurationID: snapshot.ConfigurationID,
		Quantity:        snapshot.Quantity,
		PriceAtTime:     snapshot.PriceAtTime.StringFixed(2),
	}
}
