package rewrite

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainrewrite "github.com/alanyang/redraft/internal/domain/rewrite"
	rewritesvc "github.com/alanyang/redraft/internal/service/rewrite"
)

func Register(rg *gin.RouterGroup, svc *rewritesvc.Service) {
	rg.POST("/rewrite", rewriteEmail(svc))
	rg.GET("/history", getHistory(svc))
}

type rewriteReq struct {
	Email string `json:"email" binding:"required"`
	Tone  string `json:"tone"`
}

func rewriteEmail(svc *rewritesvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req rewriteReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email content is required"})
			return
		}
		if req.Tone == "" {
			req.Tone = "professional"
		}

		res, err := svc.Rewrite(c.Request.Context(), req.Email, req.Tone)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

func getHistory(svc *rewritesvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		entries, err := svc.History(c.Request.Context())
		if err != nil {
			if errors.Is(err, domainrewrite.ErrCorrupt) {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "rewrite history is unreadable"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, entries)
	}
}
