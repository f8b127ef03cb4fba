package handlers

import (
	"net/http"

	"github.com/01moynul/umkm-web-golang/internal/models"
	"github.com/gin-gonic/gin"
)

const dashboardRecentLimit = 5

//
// --- Admin Dashboard Stats ---
//

// GetDashboardStats returns KPI data for the admin landing page
// GET /v1/admin/dashboard
func (h *Handlers) GetDashboardStats(c *gin.Context) {
	ctx := c.Request.Context()
	stats := models.DashboardStats{}
	var err error

	// 1. Counters
	if stats.TotalProducts, err = h.Store.Products.Count(ctx); err != nil {
		h.fail(c, err, "Product count")
		return
	}
	if stats.TotalCategories, err = h.Store.Categories.Count(ctx); err != nil {
		h.fail(c, err, "Category count")
		return
	}
	if stats.UnreadMessages, err = h.Store.Messages.CountUnread(ctx); err != nil {
		h.fail(c, err, "Message count")
		return
	}
	if stats.ActiveJobs, err = h.Store.Jobs.CountActive(ctx); err != nil {
		h.fail(c, err, "Job count")
		return
	}
	if stats.TotalApplications, err = h.Store.Applications.Count(ctx); err != nil {
		h.fail(c, err, "Application count")
		return
	}
	if stats.PublishedArticles, err = h.Store.Blog.CountPublished(ctx); err != nil {
		h.fail(c, err, "Article count")
		return
	}

	// 2. Latest activity
	if stats.RecentProducts, err = h.Store.Products.Recent(ctx, dashboardRecentLimit); err != nil {
		h.fail(c, err, "Recent products")
		return
	}
	if stats.RecentMessages, err = h.Store.Messages.Recent(ctx, dashboardRecentLimit); err != nil {
		h.fail(c, err, "Recent messages")
		return
	}

	c.JSON(http.StatusOK, stats)
}
