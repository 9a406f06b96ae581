package api

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/yourname/wellnessgrid/internal/rag"
)

type askBody struct {
	Question string `json:"question" binding:"required"`
}

// PostAsk forwards a health question to the RAG sidecar.
func PostAsk(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body askBody
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid request: question required")
			return
		}

		answer, err := app.RAG().Ask(c.Request.Context(), body.Question)
		if err != nil {
			if errors.Is(err, rag.ErrNotConfigured) {
				HandleError(c, app.Logger(), err, 503, "Health Q&A is not available")
				return
			}
			HandleError(c, app.Logger(), err, 502, "Failed to answer question")
			return
		}

		HandleSuccess(c, app.Logger(), answer, nil)
	}
}
