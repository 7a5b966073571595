package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/neo/passmeter_backend/internal/generator"
	"github.com/neo/passmeter_backend/internal/logging"
	"github.com/neo/passmeter_backend/internal/scoring"
)

// scoreHandler evaluates the strength of a candidate password
func (s *Server) scoreHandler(c *gin.Context) {
	// Parse request. The password field must be present but may be empty:
	// an empty password is legal input and scores 0.
	var req struct {
		Password *string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	result := s.scorer.Score(*req.Password)
	tier := scoring.Tier(result.Score)

	logging.LogScoreEvent("password_scored", result.Score, tier, map[string]interface{}{
		"common": result.CommonPassword,
	})

	response := gin.H{
		"score":    result.Score,
		"feedback": feedbackList(result.Feedback),
		"tier":     tier,
	}
	if result.CommonPassword {
		response["common_password"] = true
		response["message"] = "This password is too common and easily guessable. Please choose a different one."
	}

	c.JSON(http.StatusOK, response)
}

// generateHandler produces a random strong password
func (s *Server) generateHandler(c *gin.Context) {
	// An empty body means "use the default length"
	var req struct {
		Length int `json:"length"`
	}

	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
			return
		}
	}

	length := req.Length
	if length == 0 {
		length = generator.DefaultLength
	}

	password, err := generator.Generate(length)
	if err != nil {
		if errors.Is(err, generator.ErrLengthTooShort) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid length", "details": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate password"})
		return
	}

	// Keep the generated password for the session so the page can fetch it
	// again for the copy interaction
	sessionID := uuid.New().String()
	s.storeGeneratedPassword(sessionID, password)
	go s.cleanupSessions()

	result := s.scorer.Score(password)

	logging.LogGeneratorEvent("password_generated", length, map[string]interface{}{
		"score": result.Score,
	})

	c.JSON(http.StatusOK, gin.H{
		"password":   password,
		"score":      result.Score,
		"tier":       scoring.Tier(result.Score),
		"session_id": sessionID,
	})
}

// generatedPasswordHandler returns the last password generated for a session
func (s *Server) generatedPasswordHandler(c *gin.Context) {
	sessionID := c.Param("session")

	password, exists := s.lookupGeneratedPassword(sessionID)
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "No generated password for this session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"password":   password,
		"session_id": sessionID,
	})
}

// feedbackList normalizes nil feedback to an empty array so clients always
// receive a JSON list
func feedbackList(feedback []string) []string {
	if feedback == nil {
		return []string{}
	}
	return feedback
}
