package main

import (
	"omnicrm/pkg/translator"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "omnicrm/internal/adapter/db"
	httpadapter "omnicrm/internal/adapter/http"
	"omnicrm/internal/adapter/http/handlers"
	httpmiddleware "omnicrm/internal/adapter/http/middleware"
	appservice "omnicrm/internal/app/service"
	"omnicrm/internal/config"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	cfg := config.LoadConfig()
	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	taskRepository := dbadapter.NewTaskRepository(db)
	dependencyRepository := dbadapter.NewTaskDependencyRepository(db)
	taskService := appservice.NewTaskService(taskRepository, dependencyRepository)
	dependencyService := appservice.NewTaskDependencyService(dependencyRepository, taskRepository)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies configuration", zap.Error(err))
	}
	healthHandler := handlers.NewHealthHandler(db)
	taskHandler := handlers.NewTaskHandler(taskService)
	dependencyHandler := handlers.NewDependencyHandler(dependencyService)
	httpadapter.RegisterRoutes(r, healthHandler, taskHandler, dependencyHandler)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
