package api

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yourname/wellnessgrid/internal"
	"github.com/yourname/wellnessgrid/internal/service"
)

func windowDaysParam(c *gin.Context) (int, error) {
	daysStr := c.DefaultQuery("days", strconv.Itoa(service.DefaultWindowDays))
	days, err := strconv.Atoi(daysStr)
	if err != nil {
		return 0, err
	}
	if !service.AllowedWindows[days] {
		return 0, errors.New("'days' must be one of 7, 14, 30, 90")
	}
	return days, nil
}

func GetAnalytics(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.MustGet("user").(*internal.User)

		days, err := windowDaysParam(c)
		if err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid 'days' parameter")
			return
		}

		tools, err := app.ToolRepo().ListUserTools(c.Request.Context(), user.ID)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch tools")
			return
		}

		// Full snapshot: the streak scan looks back further than the window.
		entries, err := app.EntryRepo().ListEntries(c.Request.Context(), user.ID, "", time.Time{})
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch entries")
			return
		}

		analytics := service.BuildAnalytics(entries, tools, days, time.Now())
		meta := map[string]any{"window_days": days}
		HandleSuccess(c, app.Logger(), analytics, meta)
	}
}

func GetActions(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.MustGet("user").(*internal.User)

		tools, err := app.ToolRepo().ListUserTools(c.Request.Context(), user.ID)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch tools")
			return
		}

		now := time.Now()
		entries, err := app.EntryRepo().ListEntries(c.Request.Context(), user.ID, "", now.AddDate(0, 0, -service.DefaultWindowDays))
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch entries")
			return
		}

		actions := service.ComposeActions(tools, entries, now)
		HandleSuccess(c, app.Logger(), actions, nil)
	}
}

func GetDashboard(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.MustGet("user").(*internal.User)
		now := time.Now()

		tools, err := app.ToolRepo().ListUserTools(c.Request.Context(), user.ID)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch tools")
			return
		}

		entries, err := app.EntryRepo().ListEntries(c.Request.Context(), user.ID, "", time.Time{})
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch entries")
			return
		}

		meta := map[string]any{}
		score, err := app.Score().FetchScore(c.Request.Context(), user.ID)
		if err != nil {
			// Non-fatal: render a zero state with a notice instead of failing.
			app.Logger().Warnf("wellness score unavailable for user %s: %v", user.ID, err)
			meta["score_notice"] = "failed to load"
			score = 0
		}

		var recent []internal.TrackingEntry
		cutoff := now.AddDate(0, 0, -service.DefaultWindowDays)
		for _, e := range entries {
			if !e.Timestamp.Before(cutoff) {
				recent = append(recent, e)
			}
		}

		data := map[string]any{
			"wellness_score": score,
			"analytics":      service.BuildAnalytics(entries, tools, service.DefaultWindowDays, now),
			"actions":        service.ComposeActions(tools, recent, now),
			"streaks":        service.Streaks(entries, tools, now),
		}
		HandleSuccess(c, app.Logger(), data, meta)
	}
}
