package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yurymalaver/salon-crm/internal/sync"
)

// ======================================================
// HANDLER
// ======================================================

type FeedHandler struct {
	feed *sync.Feed
}

func NewFeedHandler(feed *sync.Feed) *FeedHandler {
	return &FeedHandler{feed: feed}
}

// ======================================================
// STATUS
// ======================================================

func (h *FeedHandler) Status(c *gin.Context) {
	state, lastErr := h.feed.Status()

	c.JSON(http.StatusOK, gin.H{
		"state":   state,
		"details": lastErr,
	})
}

// ======================================================
// RETRY
// ======================================================

func (h *FeedHandler) Retry(c *gin.Context) {
	if err := h.feed.Retry(c.Request.Context()); err != nil {
		state, lastErr := h.feed.Status()
		c.JSON(http.StatusBadGateway, gin.H{
			"state":   state,
			"details": lastErr,
		})
		return
	}

	state, _ := h.feed.Status()
	c.JSON(http.StatusOK, gin.H{"state": state})
}
