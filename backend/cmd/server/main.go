package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"kincrm/backend/internal/adapter"
	"kincrm/backend/internal/graph"
	"kincrm/backend/internal/linker"
	"kincrm/backend/internal/match"
	"kincrm/backend/internal/model"
	"kincrm/backend/pkg/config"
	kerrors "kincrm/backend/pkg/errors"
	"kincrm/backend/pkg/logger"
)

func main() {
	// Initialize logger
	if err := logger.Init("development"); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	log := logger.Get()
	log.Info("Starting HTTP API server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	ctx := context.Background()
	repo, err := graph.Connect(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to connect to Neo4j", zap.Error(err))
	}
	defer repo.Close()

	if err := repo.EnsureConstraints(ctx); err != nil {
		log.Fatal("Failed to ensure graph constraints", zap.Error(err))
	}

	// Initialize dependencies
	extractor := adapter.NewExtractor(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.ModelID)
	link := linker.New(repo, repo, cfg.DuplicateThreshold)
	finder := match.NewDuplicateResolver(repo, cfg.SimilarityThreshold)
	pronouns := match.NewPronounResolver(repo, finder)

	// Setup Gin router
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(ginLogger(log))
	router.Use(gin.Recovery())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API routes
	api := router.Group("/api")
	{
		// Ingest a pre-extracted batch
		api.POST("/ingest", func(c *gin.Context) {
			var batch model.ExtractionBatch
			if err := c.ShouldBindJSON(&batch); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}

			summary := link.ResolveAndLink(c.Request.Context(), batch)
			c.JSON(http.StatusOK, summary)
		})

		// Extract from raw text, then ingest
		api.POST("/ingest/raw", func(c *gin.Context) {
			var req struct {
				Text  string   `json:"text"`
				Texts []string `json:"texts"`
			}
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if req.Text == "" && len(req.Texts) == 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "text or texts is required"})
				return
			}

			texts := req.Texts
			if req.Text != "" {
				texts = append([]string{req.Text}, texts...)
			}

			items, err := extractor.ExtractBatch(c.Request.Context(), texts, cfg.ExtractConcurrency)
			if err != nil && len(items) == 0 {
				log.Error("Extraction failed", zap.Error(err))
				c.JSON(http.StatusBadGateway, gin.H{"error": "extraction failed"})
				return
			}

			summaries := make([]*linker.Summary, 0, len(items))
			for _, item := range items {
				summaries = append(summaries, link.ResolveAndLink(c.Request.Context(), item.Batch))
			}
			c.JSON(http.StatusOK, gin.H{"results": summaries})
		})

		// Fuzzy person search with reasoning trail
		api.GET("/persons/search", func(c *gin.Context) {
			query := c.Query("q")
			if query == "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter q is required"})
				return
			}

			result, err := finder.FindPerson(c.Request.Context(), query, c.Query("phone"))
			if err != nil {
				log.Error("Person search failed", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
				return
			}
			c.JSON(http.StatusOK, result)
		})

		// Pronoun resolution
		api.POST("/pronouns/resolve", func(c *gin.Context) {
			var req struct {
				Pronoun         string   `json:"pronoun" binding:"required"`
				ContextPersonID string   `json:"context_person_id"`
				RecentNames     []string `json:"recent_names"`
			}
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}

			result, err := pronouns.Resolve(c.Request.Context(), req.Pronoun, req.ContextPersonID, req.RecentNames)
			if err != nil {
				if kerrors.IsErrorType(err, kerrors.ErrorTypeMatch) {
					c.JSON(http.StatusUnprocessableEntity, gin.H{
						"error":     "insufficient context",
						"reasoning": result.Reasoning,
					})
					return
				}
				log.Error("Pronoun resolution failed", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "resolution failed"})
				return
			}
			c.JSON(http.StatusOK, result)
		})

		// Outgoing relationship edges for one person
		api.GET("/persons/:id/relationships", func(c *gin.Context) {
			personID := c.Param("id")
			ctx := c.Request.Context()

			person, err := repo.GetByID(ctx, personID)
			if err != nil {
				var notFound *kerrors.ErrPersonNotFound
				if errors.As(err, &notFound) {
					c.JSON(http.StatusNotFound, gin.H{"error": "person not found"})
					return
				}
				log.Error("Failed to fetch person", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch person"})
				return
			}

			edges, err := repo.GetEdges(ctx, personID)
			if err != nil {
				log.Error("Failed to fetch relationships", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch relationships"})
				return
			}

			c.JSON(http.StatusOK, gin.H{
				"person":        person,
				"relationships": edges,
			})
		})
	}

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started", zap.String("port", cfg.Port))

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited")
}

// ginLogger is a custom logger middleware for Gin
func ginLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		if raw != "" {
			path = path + "?" + raw
		}

		log.Info("HTTP Request",
			zap.Int("status", status),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Duration("latency", latency),
			zap.String("ip", c.ClientIP()),
		)
	}
}
