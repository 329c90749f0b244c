package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/globalreach-edu/consultancy-api/internal/cache"
	"github.com/globalreach-edu/consultancy-api/internal/dashboard"
	"github.com/globalreach-edu/consultancy-api/internal/httperr"
	"github.com/globalreach-edu/consultancy-api/internal/httpresp"
)

const (
	dashboardCacheKey = "dashboard:snapshot"
	dashboardCacheTTL = 30 * time.Second
)

type DashboardHandler struct {
	aggregator *dashboard.Aggregator
	cache      *cache.Cache
}

func NewDashboardHandler(agg *dashboard.Aggregator, ch *cache.Cache) *DashboardHandler {
	return &DashboardHandler{aggregator: agg, cache: ch}
}

func (h *DashboardHandler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	var cached dashboard.Snapshot
	if h.cache.GetJSON(ctx, dashboardCacheKey, &cached) {
		httpresp.OK(c, &cached)
		return
	}

	snap, err := h.aggregator.Snapshot(ctx)
	if err != nil {
		httperr.Internal(c, "failed_to_get_dashboard", "Error fetching dashboard stats.")
		return
	}

	h.cache.SetJSON(ctx, dashboardCacheKey, snap, dashboardCacheTTL)

	httpresp.OK(c, snap)
}
