package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/alcast/backoffice/internal/api/request"
	"github.com/alcast/backoffice/internal/api/response"
	"github.com/alcast/backoffice/internal/apperrors"
	"github.com/alcast/backoffice/internal/model"
	"github.com/alcast/backoffice/internal/service"
	"github.com/alcast/backoffice/internal/validation"
)

// PurchaseOrderHandler handles purchase-order HTTP requests
type PurchaseOrderHandler struct {
	orderService *service.PurchaseOrderService
}

// NewPurchaseOrderHandler creates a new PurchaseOrderHandler
func NewPurchaseOrderHandler(orderService *service.PurchaseOrderService) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{
		orderService: orderService,
	}
}

// PurchaseOrders handles GET requests to list purchase orders, optionally
// filtered by status and supplier_id query parameters.
//
// Endpoint: GET /api/purchase-orders
// Response: 200 OK with array of PurchaseOrder
func (h *PurchaseOrderHandler) PurchaseOrders(w http.ResponseWriter, r *http.Request) {
	filter := model.OrderFilter{
		Status:  model.OrderStatus(r.URL.Query().Get("status")),
		PartyID: r.URL.Query().Get("supplier_id"),
	}
	if filter.Status != "" && !filter.Status.Valid() {
		response.RespondError(w, http.StatusBadRequest, "validation failed", "unknown order status")
		return
	}

	orders, err := h.orderService.GetPurchaseOrders(filter)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveOrders.Error(), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, orders)
}

// GetPurchaseOrder handles GET requests to retrieve a single purchase order by ID.
//
// Endpoint: GET /api/purchase-orders/{uuid}
// Response: 200 OK with PurchaseOrder
// Error: 404 Not Found if order not found
func (h *PurchaseOrderHandler) GetPurchaseOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.orderService.GetPurchaseOrder(chi.URLParam(r, "uuid"))
	if err != nil {
		if errors.Is(err, apperrors.ErrPurchaseOrderNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPurchaseOrderNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveOrders.Error(), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, order)
}

// CreatePurchaseOrder handles POST requests to create a purchase order in draft
// status. The supplier must exist.
//
// Endpoint: POST /api/purchase-orders
// Request Body: CreatePurchaseOrderRequest
// Response: 201 Created with PurchaseOrder
// Error: 400 Bad Request if validation fails or the supplier does not exist
func (h *PurchaseOrderHandler) CreatePurchaseOrder(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreatePurchaseOrderRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreatePurchaseOrder(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	order, err := h.orderService.CreatePurchaseOrder(model.PurchaseOrder{
		PONumber:         req.PONumber,
		SupplierID:       req.SupplierID,
		Product:          req.Product,
		QuantityMT:       req.QuantityMT,
		UnitPrice:        req.UnitPrice,
		PricingType:      model.PricingType(req.PricingType),
		PricingPeriod:    req.PricingPeriod,
		Premium:          req.Premium,
		ExpectedDelivery: req.ExpectedDelivery,
		Location:         req.Location,
		Notes:            req.Notes,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrSupplierNotFound) {
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrSupplierNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to create purchase order", err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, order)
}

// UpdatePurchaseOrder handles PUT requests to update a purchase order.
// Orders in a terminal status (completed, cancelled) reject all changes.
//
// Endpoint: PUT /api/purchase-orders/{uuid}
// Request Body: UpdatePurchaseOrderRequest (all fields optional)
// Response: 200 OK with updated PurchaseOrder
// Error: 404 Not Found if order not found
// Error: 409 Conflict if the order status is final
func (h *PurchaseOrderHandler) UpdatePurchaseOrder(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.UpdatePurchaseOrderRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdatePurchaseOrder(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	order, err := h.orderService.GetPurchaseOrder(chi.URLParam(r, "uuid"))
	if err != nil {
		if errors.Is(err, apperrors.ErrPurchaseOrderNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPurchaseOrderNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveOrders.Error(), err.Error())
		return
	}

	applyPurchaseOrderUpdate(&order, req)

	order, err = h.orderService.UpdatePurchaseOrder(order)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrPurchaseOrderNotFound):
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPurchaseOrderNotFound.Error(), err.Error())
		case errors.Is(err, apperrors.ErrOrderStatusFinal):
			response.RespondError(w, http.StatusConflict, apperrors.ErrOrderStatusFinal.Error(), err.Error())
		default:
			response.RespondError(w, http.StatusInternalServerError, "failed to update purchase order", err.Error())
		}
		return
	}

	respondJSON(w, http.StatusOK, order)
}

// DeletePurchaseOrder handles DELETE requests to remove a purchase order.
//
// Endpoint: DELETE /api/purchase-orders/{uuid}
// Response: 204 No Content on successful deletion
// Error: 404 Not Found if order not found
func (h *PurchaseOrderHandler) DeletePurchaseOrder(w http.ResponseWriter, r *http.Request) {
	if err := h.orderService.DeletePurchaseOrder(chi.URLParam(r, "uuid")); err != nil {
		if errors.Is(err, apperrors.ErrPurchaseOrderNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrPurchaseOrderNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete purchase order", err.Error())
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}

func applyPurchaseOrderUpdate(o *model.PurchaseOrder, req request.UpdatePurchaseOrderRequest) {
	if req.Product != nil {
		o.Product = *req.Product
	}
	if req.QuantityMT != nil {
		o.QuantityMT = *req.QuantityMT
	}
	if req.UnitPrice != nil {
		o.UnitPrice = *req.UnitPrice
	}
	if req.PricingType != nil {
		o.PricingType = model.PricingType(*req.PricingType)
	}
	if req.PricingPeriod != nil {
		o.PricingPeriod = *req.PricingPeriod
	}
	if req.Premium != nil {
		o.Premium = *req.Premium
	}
	if req.ExpectedDelivery != nil {
		o.ExpectedDelivery = *req.ExpectedDelivery
	}
	if req.Location != nil {
		o.Location = *req.Location
	}
	if req.Status != nil {
		o.Status = model.OrderStatus(*req.Status)
	}
	if req.Notes != nil {
		o.Notes = *req.Notes
	}
}

// SalesOrderHandler handles sales-order HTTP requests
type SalesOrderHandler struct {
	orderService *service.SalesOrderService
}

// NewSalesOrderHandler creates a new SalesOrderHandler
func NewSalesOrderHandler(orderService *service.SalesOrderService) *SalesOrderHandler {
	return &SalesOrderHandler{
		orderService: orderService,
	}
}

// SalesOrders handles GET requests to list sales orders, optionally filtered
// by status and customer_id query parameters.
//
// Endpoint: GET /api/sales-orders
// Response: 200 OK with array of SalesOrder
func (h *SalesOrderHandler) SalesOrders(w http.ResponseWriter, r *http.Request) {
	filter := model.OrderFilter{
		Status:  model.OrderStatus(r.URL.Query().Get("status")),
		PartyID: r.URL.Query().Get("customer_id"),
	}
	if filter.Status != "" && !filter.Status.Valid() {
		response.RespondError(w, http.StatusBadRequest, "validation failed", "unknown order status")
		return
	}

	orders, err := h.orderService.GetSalesOrders(filter)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveOrders.Error(), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, orders)
}

// GetSalesOrder handles GET requests to retrieve a single sales order by ID.
//
// Endpoint: GET /api/sales-orders/{uuid}
// Response: 200 OK with SalesOrder
// Error: 404 Not Found if order not found
func (h *SalesOrderHandler) GetSalesOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.orderService.GetSalesOrder(chi.URLParam(r, "uuid"))
	if err != nil {
		if errors.Is(err, apperrors.ErrSalesOrderNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrSalesOrderNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveOrders.Error(), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, order)
}

// CreateSalesOrder handles POST requests to create a sales order in draft
// status. The customer must exist.
//
// Endpoint: POST /api/sales-orders
// Request Body: CreateSalesOrderRequest
// Response: 201 Created with SalesOrder
// Error: 400 Bad Request if validation fails or the customer does not exist
func (h *SalesOrderHandler) CreateSalesOrder(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateSalesOrderRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateSalesOrder(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	order, err := h.orderService.CreateSalesOrder(model.SalesOrder{
		SONumber:         req.SONumber,
		CustomerID:       req.CustomerID,
		Product:          req.Product,
		QuantityMT:       req.QuantityMT,
		UnitPrice:        req.UnitPrice,
		PricingType:      model.PricingType(req.PricingType),
		PricingPeriod:    req.PricingPeriod,
		Premium:          req.Premium,
		ExpectedDelivery: req.ExpectedDelivery,
		Location:         req.Location,
		Notes:            req.Notes,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrCustomerNotFound) {
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrCustomerNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to create sales order", err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, order)
}

// UpdateSalesOrder handles PUT requests to update a sales order.
// Orders in a terminal status (completed, cancelled) reject all changes.
//
// Endpoint: PUT /api/sales-orders/{uuid}
// Request Body: UpdateSalesOrderRequest (all fields optional)
// Response: 200 OK with updated SalesOrder
// Error: 404 Not Found if order not found
// Error: 409 Conflict if the order status is final
func (h *SalesOrderHandler) UpdateSalesOrder(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.UpdateSalesOrderRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateSalesOrder(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	order, err := h.orderService.GetSalesOrder(chi.URLParam(r, "uuid"))
	if err != nil {
		if errors.Is(err, apperrors.ErrSalesOrderNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrSalesOrderNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveOrders.Error(), err.Error())
		return
	}

	applySalesOrderUpdate(&order, req)

	order, err = h.orderService.UpdateSalesOrder(order)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrSalesOrderNotFound):
			response.RespondError(w, http.StatusNotFound, apperrors.ErrSalesOrderNotFound.Error(), err.Error())
		case errors.Is(err, apperrors.ErrOrderStatusFinal):
			response.RespondError(w, http.StatusConflict, apperrors.ErrOrderStatusFinal.Error(), err.Error())
		default:
			response.RespondError(w, http.StatusInternalServerError, "failed to update sales order", err.Error())
		}
		return
	}

	respondJSON(w, http.StatusOK, order)
}

// DeleteSalesOrder handles DELETE requests to remove a sales order.
//
// Endpoint: DELETE /api/sales-orders/{uuid}
// Response: 204 No Content on successful deletion
// Error: 404 Not Found if order not found
func (h *SalesOrderHandler) DeleteSalesOrder(w http.ResponseWriter, r *http.Request) {
	if err := h.orderService.DeleteSalesOrder(chi.URLParam(r, "uuid")); err != nil {
		if errors.Is(err, apperrors.ErrSalesOrderNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrSalesOrderNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete sales order", err.Error())
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}

func applySalesOrderUpdate(o *model.SalesOrder, req request.UpdateSalesOrderRequest) {
	if req.Product != nil {
		o.Product = *req.Product
	}
	if req.QuantityMT != nil {
		o.QuantityMT = *req.QuantityMT
	}
	if req.UnitPrice != nil {
		o.UnitPrice = *req.UnitPrice
	}
	if req.PricingType != nil {
		o.PricingType = model.PricingType(*req.PricingType)
	}
	if req.PricingPeriod != nil {
		o.PricingPeriod = *req.PricingPeriod
	}
	if req.Premium != nil {
		o.Premium = *req.Premium
	}
	if req.ExpectedDelivery != nil {
		o.ExpectedDelivery = *req.ExpectedDelivery
	}
	if req.Location != nil {
		o.Location = *req.Location
	}
	if req.Status != nil {
		o.Status = model.OrderStatus(*req.Status)
	}
	if req.Notes != nil {
		o.Notes = *req.Notes
	}
}
