package prompts

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainprompt "github.com/alanyang/redraft/internal/domain/prompt"
	promptssvc "github.com/alanyang/redraft/internal/service/prompts"
)

func Register(rg *gin.RouterGroup, svc *promptssvc.Service) {
	rg.GET("/base", getBase(svc))
	rg.PUT("/base", updateBase(svc))
	rg.GET("/tones", listTones(svc))
	rg.POST("/tones", createTone(svc))
	rg.PUT("/tones/:keyword", updateTone(svc))
	rg.GET("/history", getHistory(svc))
	rg.POST("/apply-suggestion", applySuggestion(svc))
}

func getBase(svc *promptssvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := svc.ActiveBasePrompt(c.Request.Context())
		if err != nil {
			if errors.Is(err, domainprompt.ErrNoActiveBasePrompt) {
				// Valid "not yet configured" state, not an error.
				c.JSON(http.StatusOK, gin.H{"content": nil})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

type updateBaseReq struct {
	Content string `json:"content" binding:"required"`
	Reason  string `json:"reason" binding:"required"`
}

func updateBase(svc *promptssvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateBaseReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		p, err := svc.UpdateBasePrompt(c.Request.Context(), req.Content, req.Reason)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

func listTones(svc *promptssvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		tones, err := svc.ActiveTones(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if tones == nil {
			tones = []domainprompt.Tone{}
		}
		c.JSON(http.StatusOK, tones)
	}
}

type createToneReq struct {
	Keyword      string `json:"keyword" binding:"required"`
	Label        string `json:"label" binding:"required"`
	Instructions string `json:"instructions" binding:"required"`
}

func createTone(svc *promptssvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createToneReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		t, err := svc.CreateTone(c.Request.Context(), req.Keyword, req.Label, req.Instructions)
		if err != nil {
			if errors.Is(err, domainprompt.ErrDuplicateKeyword) {
				c.JSON(http.StatusConflict, gin.H{"error": "tone keyword already exists"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, t)
	}
}

type updateToneReq struct {
	Instructions string `json:"instructions" binding:"required"`
	Reason       string `json:"reason" binding:"required"`
}

func updateTone(svc *promptssvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		keyword := c.Param("keyword")

		var req updateToneReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		t, err := svc.UpdateToneInstructions(c.Request.Context(), keyword, req.Instructions, req.Reason)
		if err != nil {
			if errors.Is(err, domainprompt.ErrToneNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "tone not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		// Lenient mode reports an ignored update rather than a 404.
		if t.Keyword == "" {
			c.JSON(http.StatusOK, gin.H{"status": "ignored", "keyword": keyword})
			return
		}
		c.JSON(http.StatusOK, t)
	}
}

func getHistory(svc *promptssvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

		entries, err := svc.History(c.Request.Context(), limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if entries == nil {
			entries = []domainprompt.HistoryEntry{}
		}
		c.JSON(http.StatusOK, entries)
	}
}

type applySuggestionReq struct {
	ComponentType string `json:"component_type" binding:"required"`
	ComponentID   string `json:"component_id"`
	NewContent    string `json:"new_content" binding:"required"`
	Reason        string `json:"reason" binding:"required"`
}

func applySuggestion(svc *promptssvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req applySuggestionReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ct := domainprompt.ComponentType(req.ComponentType)
		err := svc.ApplySuggestion(c.Request.Context(), ct, req.ComponentID, req.NewContent, req.Reason)
		if err != nil {
			switch {
			case errors.Is(err, domainprompt.ErrInvalidComponent):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			case errors.Is(err, domainprompt.ErrToneNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "tone not found"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "applied"})
	}
}
