package api

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yourname/wellnessgrid/internal"
	"github.com/yourname/wellnessgrid/internal/service"
)

func PostEntry(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.MustGet("user").(*internal.User)

		var body service.EntryRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}

		if err := service.ValidateEntryRequest(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Validation failed")
			return
		}

		entry, err := service.CreateEntry(c.Request.Context(), app.EntryRepo(), user, &body)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to save entry")
			return
		}

		HandleSuccess(c, app.Logger(), entry, nil)
	}
}

func GetEntries(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.MustGet("user").(*internal.User)

		toolID := c.Query("tool_id")
		var since time.Time
		if daysStr := c.Query("days"); daysStr != "" {
			days, err := strconv.Atoi(daysStr)
			if err != nil || days <= 0 {
				HandleError(c, app.Logger(), errors.New("'days' must be a positive integer"), 400, "Invalid 'days' parameter")
				return
			}
			since = time.Now().AddDate(0, 0, -days)
		}

		entries, err := app.EntryRepo().ListEntries(c.Request.Context(), user.ID, toolID, since)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch entries")
			return
		}

		HandleSuccess(c, app.Logger(), entries, nil)
	}
}
