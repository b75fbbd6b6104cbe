package handlers

import (
	"errors"
	"net/http"

	"ajanda-server/llm"

	"github.com/gin-gonic/gin"
)

type ChatRequest struct {
	Message     string `json:"message"`
	CurrentPath string `json:"currentPath"`
	UserID      uint   `json:"userId"`
}

// Chat translates a natural-language message into a structured command via the
// configured generator and returns the validated JSON verbatim. Validation
// failures come back as 400 with the raw model output attached so prompt drift
// can be diagnosed from the response alone.
func Chat(generator llm.CommandGenerator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request ChatRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
			return
		}

		raw, err := generator.GenerateCommandJSON(c.Request.Context(), request.Message)
		if err != nil {
			if errors.Is(err, llm.ErrEmptyMessage) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "LLM call failed", "details": err.Error()})
			return
		}

		command, err := llm.ValidateCommand(raw)
		if err != nil {
			var verr *llm.ValidationError
			if errors.As(err, &verr) {
				c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error(), "raw": verr.Raw})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "raw": raw})
			return
		}

		c.Data(http.StatusOK, "application/json", command)
	}
}
