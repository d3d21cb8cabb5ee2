package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// NewRouter assembles the gin engine: recovery, health check, the /api/v1
// group, and an optional WebSocket handler mounted at /ws.
func NewRouter(h *Handler, wsHandler http.Handler, log *logrus.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(log))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if wsHandler != nil {
		router.GET("/ws", gin.WrapH(wsHandler))
	}

	v1 := router.Group("/api/v1")
	{
		v1.POST("/simulate", h.Simulate)
		v1.GET("/runs", h.ListRuns)
		v1.GET("/runs/:id", h.GetRun)
		v1.GET("/runs/:id/hours", h.GetRunHours)
	}

	return router
}

func requestLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		log.WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"status": c.Writer.Status(),
		}).Debug("request")
	}
}
