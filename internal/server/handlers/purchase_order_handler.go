package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/procurement-mock/internal/domain/models"
	"github.com/mamadbah2/procurement-mock/internal/service/procurement"
)

// PurchaseOrderHandler serves the synthetic purchase order listing.
type PurchaseOrderHandler struct {
	svc    procurement.Lister
	logger *zap.Logger
}

// NewPurchaseOrderHandler constructs the HTTP handler adapter.
func NewPurchaseOrderHandler(svc procurement.Lister, logger *zap.Logger) *PurchaseOrderHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PurchaseOrderHandler{svc: svc, logger: logger}
}

type listQuery struct {
	StartDate   string `form:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate     string `form:"end_date" binding:"omitempty,datetime=2006-01-02"`
	CompanyCode string `form:"company_code"`
	Supplier    string `form:"supplier"`
	Status      string `form:"status"`
	Limit       int `form:"limit,default=100" binding:"min=1,max=1000"`
	Offset      int `form:"offset,default=0" binding:"min=0"`
}

// List generates a page of purchase orders matching the query filters.
func (h *PurchaseOrderHandler) List(c *gin.Context) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.logger.Warn("invalid purchase order query", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	filter := models.Filter{
		Supplier:    q.Supplier,
		Status:      q.Status,
		CompanyCode: q.CompanyCode,
		StartDate:   q.StartDate,
		EndDate:     q.EndDate,
	}

	page, err := h.svc.ListPurchaseOrders(c.Request.Context(), filter, q.Limit, q.Offset)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, page)
	case errors.Is(err, procurement.ErrAttemptsExhausted):
		h.logger.Warn("purchase order filters unsatisfiable", zap.Error(err))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "filters matched too few records", "details": err.Error()})
	case errors.Is(err, procurement.ErrInvalidPage):
		h.logger.Warn("invalid page window", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		h.logger.Warn("purchase order generation interrupted", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "request cancelled"})
	default:
		h.logger.Error("failed generating purchase orders", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate purchase orders"})
	}
}

// Health reports liveness and the variant being served.
func (h *PurchaseOrderHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "variant": h.svc.VariantName()})
}
