package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/Hanikakadiya/Master-Quiz/internal/config"
	"github.com/Hanikakadiya/Master-Quiz/internal/domain/repository"
	"github.com/Hanikakadiya/Master-Quiz/internal/handler"
	"github.com/Hanikakadiya/Master-Quiz/internal/middleware"
	memoryRepo "github.com/Hanikakadiya/Master-Quiz/internal/repository/memory"
	pgRepo "github.com/Hanikakadiya/Master-Quiz/internal/repository/postgres"
	redisRepo "github.com/Hanikakadiya/Master-Quiz/internal/repository/redis"
	"github.com/Hanikakadiya/Master-Quiz/internal/service"
	"github.com/Hanikakadiya/Master-Quiz/internal/websocket"
	"github.com/Hanikakadiya/Master-Quiz/pkg/auth"
	"github.com/Hanikakadiya/Master-Quiz/pkg/database"
)

func main() {
	// Загружаем конфигурацию
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	log.Printf("Загрузка конфигурации из %s", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Инициализируем подключение к PostgreSQL
	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString(), database.LogLevel(gin.Mode()))
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	if cfg.Database.AutoMigrate {
		if err := database.MigrateDB(db, cfg.Database.MigrationsPath); err != nil {
			log.Printf("Failed to migrate database: %v", err)
			os.Exit(1)
		}
	}

	// Redis необязателен: без него гостевые имена хранятся в памяти процесса,
	// лимиты запросов отключены, а лента работает только в пределах инстанса
	var redisClient redis.UniversalClient
	if cfg.Redis.Enabled() {
		redisClient, err = database.NewUniversalRedisClient(ctx, cfg.Redis)
		if err != nil {
			log.Printf("Warning: Redis unavailable, falling back to in-memory sessions: %v", err)
			redisClient = nil
		} else {
			log.Println("Successfully connected to Redis")
			defer redisClient.Close()
		}
	}

	// Инициализируем репозитории
	userRepo := pgRepo.NewUserRepo(db)
	categoryRepo := pgRepo.NewCategoryRepo(db)
	questionRepo := pgRepo.NewQuestionRepo(db)
	resultRepo := pgRepo.NewResultRepo(db)

	var sessionRepo repository.GuestSessionRepository = memoryRepo.NewGuestSessionRepo()
	if redisClient != nil {
		sessionRepo, err = redisRepo.NewGuestSessionRepo(redisClient)
		if err != nil {
			log.Printf("Failed to initialize GuestSessionRepo: %v", err)
			os.Exit(1)
		}
	}

	jwtService, err := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.ExpirationHrs, cfg.JWT.Issuer)
	if err != nil {
		log.Printf("Failed to initialize JWTService: %v", err)
		os.Exit(1)
	}

	// Лента таблицы лидеров
	hub := websocket.NewHub()
	if redisClient != nil {
		relay := websocket.NewRedisRelay(redisClient, cfg.Redis.FeedChannel, hub)
		run, err := relay.Subscribe(ctx)
		if err != nil {
			log.Printf("Warning: leaderboard feed relay disabled: %v", err)
		} else {
			hub.SetRelay(relay)
			go run()
		}
	}
	go hub.Run(ctx)

	// Инициализируем сервисы
	quizService := service.NewQuizService(categoryRepo, questionRepo)
	resultService := service.NewResultService(categoryRepo, questionRepo, resultRepo, sessionRepo, hub, cfg.Session.GuestNameTTL)
	adminService := service.NewAdminService(categoryRepo, questionRepo)
	authService := service.NewAuthService(userRepo, jwtService)

	router := gin.Default()

	isProduction := gin.Mode() == gin.ReleaseMode
	// В production не доверяем прокси-заголовкам, в разработке доверяем localhost
	if isProduction {
		if err := router.SetTrustedProxies(nil); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	} else {
		if err := router.SetTrustedProxies([]string{"127.0.0.1", "::1"}); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	}

	if len(cfg.CORS.AllowedOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	limiter := middleware.NewRateLimiter(redisClient)
	handler.RegisterRoutes(router, handler.Handlers{
		Quiz:   handler.NewQuizHandler(quizService, resultService),
		Result: handler.NewResultHandler(resultService),
		Auth:   handler.NewAuthHandler(authService, jwtService.Expiration(), cfg.Session.CookieSecure || isProduction),
		Admin:  handler.NewAdminHandler(adminService, resultService),
		WS:     handler.NewWSHandler(hub, cfg.CORS.AllowedOrigins),
	}, handler.Middlewares{
		Auth: middleware.NewAuthMiddleware(jwtService),
		Session: middleware.Session(middleware.SessionConfig{
			CookieName: cfg.Session.CookieName,
			Secure:     cfg.Session.CookieSecure || isProduction,
		}),
		SubmitLimit: limiter.Limit(middleware.SubmitRateLimitConfig(cfg.Quiz.SubmitRateLimit, cfg.Quiz.SubmitRateWindow)),
		LoginLimit:  limiter.Limit(middleware.LoginRateLimitConfig(cfg.Quiz.LoginRateLimit, cfg.Quiz.LoginRateWindow)),
	})

	// Тайм-ауты защищают от slow client attacks
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Failed to start server: %v", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Останавливаем хаб и подписку на Redis
	cancel()

	shutdownTimeout := time.Duration(cfg.Server.ShutdownTimeout) * time.Second
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
		os.Exit(1)
	}

	log.Println("Server exited properly")
}
