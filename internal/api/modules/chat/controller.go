package chat

import (
	"errors"
	"net/http"

	"github.com/ethanbaker/relay/internal/relay"
	"github.com/ethanbaker/relay/pkg/sdk"
	"github.com/gin-gonic/gin"
)

// postChat handles POST requests to relay a message through the shared
// conversation
func postChat(c *gin.Context) {
	// Parse request body
	var req sdk.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, sdk.ErrorResponse{Error: relay.ErrMissingInput.Error()})
		return
	}

	// Relay the message through the shared transcript
	reply, err := GetService().HandleMessage(c.Request.Context(), req.Message)
	if err != nil {
		if errors.Is(err, relay.ErrMissingInput) {
			c.JSON(http.StatusBadRequest, sdk.ErrorResponse{Error: err.Error()})
			return
		}

		c.JSON(http.StatusInternalServerError, sdk.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, sdk.ChatResponse{Reply: reply})
}
