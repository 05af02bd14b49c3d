package internal

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

type askRequest struct {
	Question string `json:"question"`
}

type askResponse struct {
	Answer string    `json:"answer"`
	Stats  Stats     `json:"stats"`
	Charts ChartData `json:"charts"`
}

// NewRouter builds the HTTP surface: POST /ask answers a question and
// attaches the stats and chart snapshots; staticDir, when non-empty, is
// served as the web UI. All semantics live in the chatbot, this layer only
// translates JSON.
func NewRouter(bot *Chatbot, staticDir string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.Default())

	r.POST("/ask", func(c *gin.Context) {
		var req askRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		answer := bot.Process(req.Question)
		logger.Info().Str("question", req.Question).Msg("question answered")

		c.JSON(http.StatusOK, askResponse{
			Answer: answer,
			Stats:  bot.Stats(),
			Charts: bot.Charts(),
		})
	})

	if staticDir != "" {
		r.StaticFile("/", filepath.Join(staticDir, "index.html"))
		r.NoRoute(gin.WrapH(http.FileServer(http.Dir(staticDir))))
	}

	return r
}

// Serve runs the HTTP server until it fails or the process is stopped.
func Serve(addr string, bot *Chatbot, staticDir string) error {
	r := NewRouter(bot, staticDir)
	logger.Info().Str("addr", addr).Msg("chatbot server listening")
	return r.Run(addr)
}
