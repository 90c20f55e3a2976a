package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/resume-system/backend/internal/config"
	"github.com/resume-system/backend/internal/db"
	"github.com/resume-system/backend/internal/handler"
	"github.com/resume-system/backend/internal/service"
)

// @title Resume System API
// @version 1.0
// @description Resume management backend: auth, resumes, achievements, summary generation.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Local development convenience; missing .env is fine.
	_ = godotenv.Load()

	cfg := config.Load()
	ctx := context.Background()

	pool, err := db.NewPostgresPool(ctx, cfg.Postgres)
	if err != nil {
		log.Fatalf("postgres init failed: %v", err)
	}
	defer pool.Close()

	repo := &db.Postgres{Pool: pool}
	if err := repo.EnsureSchema(ctx); err != nil {
		log.Fatalf("schema init failed: %v", err)
	}

	// Fail fast without an explicit secret; there is no insecure default.
	tokens, err := service.NewTokenService(cfg.Auth.JWTSecret)
	if err != nil {
		log.Fatalf("token service init failed: %v", err)
	}

	hasher := service.NewPasswordHasher(0)
	authSvc := service.NewAuthService(repo, hasher, tokens)
	resumeSvc := service.NewResumeService(repo)
	achievementSvc := service.NewAchievementService(repo)

	authHandler := handler.NewAuthHandler(authSvc)
	resumeHandler := handler.NewResumeHandler(resumeSvc)
	achievementHandler := handler.NewAchievementHandler(achievementSvc)
	aiHandler := handler.NewAIHandler()

	router := gin.Default()
	router.Use(handler.RequestIDMiddleware())
	router.Use(handler.CORSMiddleware(cfg.CORS.AllowedOrigins))

	router.GET("/", handler.Root)
	router.GET("/ping", handler.Ping)
	router.GET("/health", handler.Health)
	router.GET("/openapi.json", handler.OpenAPIDoc)

	api := router.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/profile", handler.AuthRequired(tokens), authHandler.Profile)

	resumes := api.Group("/resumes", handler.AuthRequired(tokens))
	resumes.GET("", resumeHandler.List)
	resumes.POST("", resumeHandler.Create)
	resumes.GET("/:id", resumeHandler.Get)
	resumes.PUT("/:id", resumeHandler.Update)
	resumes.DELETE("/:id", resumeHandler.Delete)

	achievements := api.Group("/achievements", handler.AuthRequired(tokens))
	achievements.GET("", achievementHandler.List)
	achievements.POST("", achievementHandler.Create)
	achievements.GET("/:id", achievementHandler.Get)
	achievements.PUT("/:id", achievementHandler.Update)
	achievements.DELETE("/:id", achievementHandler.Delete)

	ai := api.Group("/ai", handler.AuthOptional(tokens))
	ai.POST("/generate-summary", aiHandler.GenerateSummary)
	ai.POST("/optimize-content", aiHandler.OptimizeContent)

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
