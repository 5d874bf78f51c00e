package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "tripplanner-api/docs"
	"tripplanner-api/internal/config"
	"tripplanner-api/internal/events"
	"tripplanner-api/internal/geocoder"
	"tripplanner-api/internal/handler"
	"tripplanner-api/internal/mapview"
	"tripplanner-api/internal/otp"
	"tripplanner-api/internal/preferences"
	"tripplanner-api/internal/reachable"
	"tripplanner-api/internal/repository"
	"tripplanner-api/internal/requests"
	"tripplanner-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title        Trip Planner API
// @version      1.0
// @description  Trip planning, travelshed exploration and session preferences for the map client.
// @BasePath     /
func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	level, err := zerolog.ParseLevel(config.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Str("level", config.LogLevel).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)
	if config.GinMode == gin.DebugMode {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
	logger := log.Logger

	loc, err := config.Location()
	if err != nil {
		log.Fatal().Err(err).Str("zone", config.TimeZone).Msg("cannot load time zone")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Database connection
	conn, err := pgxpool.New(ctx, config.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer conn.Close()

	repo := repository.NewRepository(conn)
	if err := repo.Migrate(ctx); err != nil {
		log.Fatal().Err(err).Msg("cannot migrate db")
	}

	// Event broker
	publisher, err := events.NewPublisher(events.PublisherConfig{
		Driver:       config.EventsDriver,
		AMQPURL:      config.AMQPURL,
		AMQPExchange: config.AMQPExchange,
		KafkaBrokers: config.Brokers(),
		KafkaTopic:   config.KafkaTopic,
	}, logger)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create event publisher")
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Warn().Err(err).Msg("event publisher close")
		}
	}()

	// Upstream services
	httpClient := &http.Client{Timeout: config.UpstreamTimeout}
	planner := otp.New(config.OTPBaseURL, config.OTPRouter, httpClient, logger.With().Str("component", "otp").Logger(), otp.WithLocation(loc))
	reacher := reachable.New(config.ReachableURL, httpClient, loc, logger.With().Str("component", "reachable").Logger())
	geocodeClient := geocoder.New(config.GeocoderURL, httpClient, config.GeocodeCacheSize, config.GeocodeCacheTTL, logger.With().Str("component", "geocoder").Logger())

	// Session state
	var prefsRepo preferences.Repository
	if config.PersistPreferences {
		prefsRepo = repo
	}
	sessions := preferences.NewSessions(
		config.SessionCacheSize,
		config.SessionTTL,
		preferences.DefaultValues(preferences.CityHall),
		prefsRepo,
		logger.With().Str("component", "sessions").Logger(),
	)
	views := mapview.NewViews(config.SessionCacheSize, config.SessionTTL)
	tracker := requests.NewTracker(config.PlanThrottle)
	sessions.OnEvict(tracker.Forget)
	sessions.OnEvict(views.Forget)

	// Initialize layers
	sessionService := service.NewSessionService(sessions)
	homeService := service.NewHomeService(repo, config.SiteURL)
	mapService := service.NewMapService(sessions, views, mapview.DefaultCatalog())
	reverseGeocodeService := service.NewReverseGeoCodeService(geocodeClient, sessions, views, publisher, logger)
	directionsService := service.NewDirectionsService(sessions, views, planner, geocodeClient, repo, tracker, publisher, logger)
	exploreService := service.NewExploreService(sessions, views, reacher, tracker, publisher, preferences.CityHall, logger)

	gin.SetMode(config.GinMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(handler.RequestLogger(logger))
	r.Use(handler.CORS())

	r.GET("/health", func(c *gin.Context) {
		if err := conn.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	handler.NewSessionHandler(sessionService).RegisterRoutes(&r.RouterGroup)
	handler.NewHomeHandler(homeService).RegisterRoutes(&r.RouterGroup)
	handler.NewMapHandler(mapService).RegisterRoutes(&r.RouterGroup)
	handler.NewReverseGeocodeHandler(reverseGeocodeService).RegisterRoutes(&r.RouterGroup)
	handler.NewDirectionsHandler(directionsService).RegisterRoutes(&r.RouterGroup)
	handler.NewExploreHandler(exploreService).RegisterRoutes(&r.RouterGroup)

	srv := &http.Server{
		Addr:         config.ServerAddress,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: config.UpstreamTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", config.ServerAddress).Msg("HTTP server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server forced shutdown")
	}

	log.Info().Msg("stopped")
}
