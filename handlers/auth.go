package handlers

import (
	"net/http"
	"time"

	"slotwise/utils"

	"github.com/gin-gonic/gin"
)

// DevTokenRequest is the payload for the development token endpoint.
type DevTokenRequest struct {
	HostID string `json:"hostId" binding:"required"`
}

// DevTokenHandler issues a signed host token for local development.
// Production deployments issue tokens from the identity provider, so the
// route is only registered outside production.
func DevTokenHandler(c *gin.Context) {
	var req DevTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	token, err := utils.GenerateToken(req.HostID, 24*time.Hour)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to issue token", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}
