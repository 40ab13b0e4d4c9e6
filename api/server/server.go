package server

import (
	"jenkins/api/service"
	"jenkins/config"
	"jenkins/pkg/log"
	"jenkins/pkg/prom"

	"github.com/gin-gonic/gin"
	"github.com/pborman/uuid"
)

const headerRequestID = "X-Request-Id"

var (
	svc     *service.Service
	maxBody int64
)

// Run serves the hash api until the listener fails.
func Run(cfg *config.ServerConfig, s *service.Service) error {
	engine := New(cfg, s)
	log.Infof("jenkins api listen on %s", cfg.Listen)
	if err := engine.Run(cfg.Listen); err != nil {
		log.Errorf("engine start fail due to %v", err)
		return err
	}
	return nil
}

// New builds the router around s.
func New(cfg *config.ServerConfig, s *service.Service) *gin.Engine {
	svc = s
	maxBody = cfg.MaxBody
	engine := gin.New()
	engine.Use(gin.Recovery(), requestID)
	initRouter(engine, cfg.Metrics)
	return engine
}

func initRouter(e *gin.Engine, metrics bool) {
	e.GET("/methods", listMethods)

	hash := e.Group("/hash")
	hash.GET("/:method", getHash)
	hash.POST("/:method", postHash)

	ring := e.Group("/ring")
	ring.GET("/node", getNode)

	if metrics {
		e.GET("/metrics", gin.WrapH(prom.Handler()))
	}
}

func requestID(c *gin.Context) {
	id := c.GetHeader(headerRequestID)
	if id == "" {
		id = uuid.New()
	}
	c.Header(headerRequestID, id)
	c.Next()
}
