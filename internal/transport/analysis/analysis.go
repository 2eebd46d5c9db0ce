package analysis

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainanalysis "github.com/alanyang/redraft/internal/domain/analysis"
	domainprompt "github.com/alanyang/redraft/internal/domain/prompt"
	domainrewrite "github.com/alanyang/redraft/internal/domain/rewrite"
	analysissvc "github.com/alanyang/redraft/internal/service/analysis"
)

func Register(rg *gin.RouterGroup, svc *analysissvc.Service) {
	rg.POST("/analyse_prompt", analysePrompt(svc))
}

func analysePrompt(svc *analysissvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		report, err := svc.Analyze(c.Request.Context())
		if err != nil {
			switch {
			case errors.Is(err, domainprompt.ErrNoActiveBasePrompt):
				c.JSON(http.StatusInternalServerError, gin.H{"error": "no active base prompt configured"})
			case errors.Is(err, domainrewrite.ErrNoRewrites):
				c.JSON(http.StatusBadRequest, gin.H{"error": "no rewrite history to analyse yet"})
			case errors.Is(err, domainrewrite.ErrCorrupt):
				c.JSON(http.StatusInternalServerError, gin.H{"error": "rewrite history is unreadable"})
			case errors.Is(err, domainanalysis.ErrMalformedOutput):
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(http.StatusOK, report)
	}
}
