package main

import (
	"go.uber.org/zap"

	"cogscreen-go/internal/config"
	"cogscreen-go/internal/database"
	logger "cogscreen-go/internal/logging"
	"cogscreen-go/internal/models"
	"cogscreen-go/internal/router"
	"cogscreen-go/internal/services"
	"cogscreen-go/internal/session"
)

func main() {
	// A plain console logger carries us until the full logger is configured.
	bootLog, err := zap.NewDevelopment()
	if err != nil {
		panic("failed to initialize bootstrap logger: " + err.Error())
	}

	if err := config.Init(".", bootLog); err != nil {
		bootLog.Fatal("Failed to load configuration", zap.Error(err))
	}

	log, err := logger.Init(config.Conf.Logging)
	if err != nil {
		bootLog.Fatal("Failed to initialize logger", zap.Error(err))
	}
	defer log.Sync()

	// Initialize Database
	database.Init(log)

	// Load the question catalog at startup
	bank, err := models.LoadQuestionBank(config.Conf.Assessment.QuestionFile)
	if err != nil {
		log.Fatal("Failed to load question catalog", zap.Error(err))
	}
	log.Info("Question catalog loaded", zap.Int("questions", len(bank.Questions)))

	// One in-memory session registry for all subjects
	manager := session.NewManager()

	// Daily reminder emails
	scheduler := services.NewScheduler(log, services.NewEmailService(log))
	scheduler.Start()

	// Setup router, passing the logger to it
	r := router.Setup(log, bank, manager)

	// Start the Gin server
	port := ":" + config.Conf.Server.Port
	log.Info("Server listening on http://localhost" + port)
	if err := r.Run(port); err != nil {
		log.Fatal("Failed to run Gin server", zap.Error(err))
	}
}
