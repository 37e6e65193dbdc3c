package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	zlog "github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lekzzicon/portfolio-backend/api"
	"github.com/lekzzicon/portfolio-backend/config"
	"github.com/lekzzicon/portfolio-backend/database"
	"github.com/lekzzicon/portfolio-backend/services"
)

func main() {
	fmt.Println("Initializing app...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	cfg := config.New()

	connStr := config.GetString(cfg, "DATABASE_URL", "")
	if connStr == "" {
		connStr = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			config.GetString(cfg, "DB_HOST", "localhost"),
			config.GetString(cfg, "DB_USER", "portfolio"),
			config.GetString(cfg, "DB_PASSWORD", ""),
			config.GetString(cfg, "DB_NAME", "portfolio"),
			config.GetString(cfg, "DB_PORT", "5432"),
			config.GetString(cfg, "DB_SSLMODE", "disable"),
		)
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  connStr,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: newLogger,
	})
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}

	// Test database connection
	var result int
	if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		fmt.Printf("Error testing database connection: %v\n", err)
		os.Exit(1)
	}

	if err := database.Migrate(db); err != nil {
		fmt.Printf("Error migrating database schema: %v\n", err)
		os.Exit(1)
	}

	currentDB := database.New(db)

	// Uploads are disabled (with a 500 configuration error on the affected
	// endpoints) when media credentials are absent; the read surface still works.
	var media services.MediaStore
	if s3Store, err := services.NewS3MediaStore(cfg); err != nil {
		zlog.Warn().Err(err).Msg("Media store not configured, uploads disabled")
	} else {
		media = s3Store
	}

	var mailer services.EmailSender
	if resend, err := services.NewResendClient(cfg); err != nil {
		zlog.Warn().Err(err).Msg("Email sender not configured, contact form disabled")
	} else {
		mailer = resend
	}

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(currentDB, media, mailer)
	if err != nil {
		fmt.Printf("Error initializing server: %v\n", err)
		os.Exit(1)
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	fmt.Printf("Closing server: %v\n", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
