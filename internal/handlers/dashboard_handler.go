package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yurymalaver/salon-crm/internal/domain/metrics"
	domain "github.com/yurymalaver/salon-crm/internal/domain/reservation"
	"github.com/yurymalaver/salon-crm/internal/httpresp"
	"github.com/yurymalaver/salon-crm/internal/sync"
)

// ======================================================
// HANDLER
// ======================================================

type DashboardHandler struct {
	feed *sync.Feed
}

func NewDashboardHandler(feed *sync.Feed) *DashboardHandler {
	return &DashboardHandler{feed: feed}
}

// ======================================================
// SUMMARY
// ======================================================

func (h *DashboardHandler) Summary(c *gin.Context) {
	if !requireConnected(c, h.feed) {
		return
	}

	reservations, clients := h.feed.Snapshot()

	httpresp.OK(c, gin.H{
		"total_reservations": len(reservations),
		"pending":            metrics.CountByStatus(reservations, domain.StatusPending),
		"confirmed":          metrics.CountByStatus(reservations, domain.StatusConfirmed),
		"completed":          metrics.CountByStatus(reservations, domain.StatusCompleted),
		"cancelled":          metrics.CountByStatus(reservations, domain.StatusCancelled),
		"estimated_revenue":  metrics.EstimatedRevenue(reservations),
		"total_clients":      len(clients),
		"visits_by_weekday":  metrics.WeekdayHistogram(reservations),
	})
}
