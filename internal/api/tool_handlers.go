package api

import (
	"github.com/gin-gonic/gin"
	"github.com/yourname/wellnessgrid/internal"
	"github.com/yourname/wellnessgrid/internal/service"
	"github.com/yourname/wellnessgrid/internal/toolpreset"
)

func PostTool(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.MustGet("user").(*internal.User)

		var req service.UserToolRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid request: tool_id required")
			return
		}

		if err := service.ValidateUserToolRequest(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Tool validation failed")
			return
		}

		tool, err := service.EnableTool(c.Request.Context(), app.ToolRepo(), user, &req)
		if err != nil {
			if appErr, ok := err.(*internal.AppError); ok {
				HandleError(c, app.Logger(), appErr, appErr.Code, "Failed to enable tool")
				return
			}
			HandleError(c, app.Logger(), err, 500, "Failed to enable tool")
			return
		}

		HandleSuccess(c, app.Logger(), tool, nil)
	}
}

func GetTools(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.MustGet("user").(*internal.User)

		tools, err := app.ToolRepo().ListUserTools(c.Request.Context(), user.ID)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch tools")
			return
		}

		HandleSuccess(c, app.Logger(), tools, nil)
	}
}

func GetPresets(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		HandleSuccess(c, app.Logger(), toolpreset.All(), nil)
	}
}
