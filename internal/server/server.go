package server

import (
	"context"
	"net/http"
	"time"

	"gymbook/internal/auth"
	"gymbook/internal/booking"
	"gymbook/internal/config"
	"gymbook/internal/gym"
	"gymbook/internal/search"
	"gymbook/internal/slot"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

type Server struct {
	router *gin.Engine
	http   *http.Server
	config *config.Config
}

func New(db *sqlx.DB, cfg *config.Config, redisClient *redis.Client) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst))

	gymRepo := gym.NewRepository(db)
	slotRegistry := slot.NewRegistry(slot.NewRepository(db))
	bookingEngine := booking.NewEngine(booking.NewRepository(db), slotRegistry)

	var gymCache *search.GymCache
	if redisClient != nil {
		gymCache = search.NewGymCache(redisClient, cfg.SearchCacheTTL)
	}
	searchService := search.NewService(gymRepo, slotRegistry, gymCache)

	gymHandler := gym.NewHandler(gym.NewService(gymRepo, cfg.JWTSecret))
	slotHandler := slot.NewHandler(slotRegistry)
	bookingHandler := booking.NewHandler(bookingEngine)
	searchHandler := search.NewHandler(searchService)

	public := router.Group("/")
	{
		public.GET("/search", searchHandler.SearchGyms)
		public.POST("/book", bookingHandler.BookSession)
	}

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", gymHandler.Register)
		authGroup.POST("/login", gymHandler.Login)
		authGroup.POST("/refresh", gymHandler.RefreshToken)
	}

	dashboard := router.Group("/dashboard")
	dashboard.Use(auth.AuthMiddleware(cfg.JWTSecret))
	{
		dashboard.GET("", bookingHandler.Dashboard)
		dashboard.GET("/me", gymHandler.GetMe)
		dashboard.GET("/slots", slotHandler.ListTimeSlots)
		dashboard.POST("/slots", slotHandler.CreateTimeSlot)
		dashboard.POST("/bookings/:bookingID/cancel", bookingHandler.CancelBooking)
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	SetupSwagger(router)

	return &Server{
		router: router,
		config: cfg,
	}
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:         ":" + port,
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
