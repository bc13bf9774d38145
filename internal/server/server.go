package server

import (
    "net/http"
    "time"

    "github.com/gin-gonic/gin"
    "go.uber.org/zap"

    "splitforest/internal/models"
    "splitforest/pkg/forest"
)

// Info describes the served model on GET /model.
type Info struct {
    Name     string            `json:"name"`
    Dim      int               `json:"dim"`
    Params   forest.Parameters `json:"params"`
    Split    string            `json:"split"`
    Trees    int               `json:"trees"`
    Accuracy float64           `json:"holdout_accuracy"`
}

type Server struct {
    model  models.Model
    info   Info
    apiKey string
    logger *zap.Logger
}

func New(model models.Model, info Info, apiKey string, logger *zap.Logger) *Server {
    if logger == nil { logger = zap.NewNop() }
    return &Server{model: model, info: info, apiKey: apiKey, logger: logger}
}

func (s *Server) Router() *gin.Engine {
    r := gin.New()
    r.Use(gin.Recovery(), s.requestLogger)

    r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

    api := r.Group("/")
    api.Use(s.apiKeyMiddleware)
    api.GET("/model", func(c *gin.Context) { c.JSON(http.StatusOK, s.info) })
    api.POST("/predict", s.handlePredict)
    api.POST("/batch", s.handleBatch)
    return r
}

func (s *Server) requestLogger(c *gin.Context) {
    start := time.Now()
    c.Next()
    s.logger.Info("requisição",
        zap.String("method", c.Request.Method),
        zap.String("path", c.Request.URL.Path),
        zap.Int("status", c.Writer.Status()),
        zap.Duration("latency", time.Since(start)),
    )
}

func (s *Server) apiKeyMiddleware(c *gin.Context) {
    if s.apiKey == "" { c.Next(); return }
    if c.GetHeader("X-API-Key") != s.apiKey {
        c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
        return
    }
    c.Next()
}

type predictReq struct {
    Features []float64 `json:"features" binding:"required"`
}

type prediction struct {
    Label        forest.Label             `json:"label"`
    Distribution map[forest.Label]float64 `json:"distribution"`
}

func (s *Server) predict(X [][]float64) []prediction {
    labels := s.model.Predict(X)
    dists := s.model.PredictProba(X)
    out := make([]prediction, len(X))
    for i := range X { out[i] = prediction{Label: labels[i], Distribution: dists[i].Map()} }
    return out
}

func (s *Server) handlePredict(c *gin.Context) {
    var req predictReq
    if err := c.ShouldBindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
        return
    }
    if len(req.Features) != s.info.Dim {
        c.JSON(http.StatusBadRequest, gin.H{"error": "wrong number of features", "want": s.info.Dim})
        return
    }
    c.JSON(http.StatusOK, s.predict([][]float64{req.Features})[0])
}

func (s *Server) handleBatch(c *gin.Context) {
    var items []predictReq
    if err := c.ShouldBindJSON(&items); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
        return
    }
    X := make([][]float64, len(items))
    for i, it := range items {
        if len(it.Features) != s.info.Dim {
            c.JSON(http.StatusBadRequest, gin.H{"error": "wrong number of features", "index": i, "want": s.info.Dim})
            return
        }
        X[i] = it.Features
    }
    c.JSON(http.StatusOK, s.predict(X))
}
