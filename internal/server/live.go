package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/neo/passmeter_backend/internal/logging"
	"github.com/neo/passmeter_backend/internal/scoring"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
	EnableCompression: true,
}

// ScoreRequest is a live-scoring message from the page
type ScoreRequest struct {
	Password string `json:"password"`
}

// ScoreResponse is pushed back for every ScoreRequest
type ScoreResponse struct {
	Score          int      `json:"score"`
	Feedback       []string `json:"feedback"`
	Tier           string   `json:"tier"`
	CommonPassword bool     `json:"common_password"`
}

// handleScoreWebSocket re-scores the password on every message, mirroring
// the page's live analysis as the user types
func (s *Server) handleScoreWebSocket(c *gin.Context) {
	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logging.Error("Failed to upgrade connection", map[string]interface{}{"error": err.Error()})
		return
	}
	defer ws.Close()

	clientID := c.ClientIP()
	logging.LogWebSocketEvent("connected", clientID, nil)

	for {
		var req ScoreRequest
		err := ws.ReadJSON(&req)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				logging.LogWebSocketEvent("read_error", clientID, map[string]interface{}{"error": err.Error()})
			}
			break
		}

		result := s.scorer.Score(req.Password)
		resp := ScoreResponse{
			Score:          result.Score,
			Feedback:       feedbackList(result.Feedback),
			Tier:           scoring.Tier(result.Score),
			CommonPassword: result.CommonPassword,
		}

		if err := ws.WriteJSON(resp); err != nil {
			logging.LogWebSocketEvent("write_error", clientID, map[string]interface{}{"error": err.Error()})
			break
		}
	}

	logging.LogWebSocketEvent("disconnected", clientID, nil)
}
