package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/simhonchourasia/playbet-be/authentication"
	"github.com/simhonchourasia/playbet-be/config"
	"github.com/simhonchourasia/playbet-be/controllers"
	"github.com/simhonchourasia/playbet-be/database"
	"github.com/simhonchourasia/playbet-be/jobs"
	"github.com/simhonchourasia/playbet-be/logging"
	"github.com/simhonchourasia/playbet-be/mailer"
	"github.com/simhonchourasia/playbet-be/middleware"
	"github.com/simhonchourasia/playbet-be/notifier"
	"github.com/simhonchourasia/playbet-be/opay"
	"github.com/simhonchourasia/playbet-be/presence"
	"github.com/simhonchourasia/playbet-be/provider"
	"github.com/simhonchourasia/playbet-be/repository"
	"github.com/simhonchourasia/playbet-be/routes"
	"github.com/simhonchourasia/playbet-be/services"
	"github.com/sirupsen/logrus"
)

const serviceName = "playbet-be"

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}

func main() {
	if err := config.SetupConfig(); err != nil {
		panic("Error in config: " + err.Error())
	}
	cfg := config.GlobalConfig
	log := logging.New(cfg.Debug)
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("invalid config")
	}
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	client, err := database.Connect(context.Background(), cfg.MongoURI, log)
	if err != nil {
		log.WithError(err).Fatal("database unavailable")
	}
	db := client.Database(cfg.Cluster)

	setupCtx, cancelSetup := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.EnsureIndexes(setupCtx, db); err != nil {
		log.WithError(err).Fatal("index setup failed")
	}

	userRepo := repository.NewUserRepository(db)
	depositRepo := repository.NewDepositRepository(db)
	withdrawRepo := repository.NewWithdrawRepository(db)

	tokens := authentication.NewTokenManager(cfg.SecretKey, time.Duration(cfg.TokenTTLHours)*time.Hour)
	notify := notifier.FromConfig(cfg.Telegram, log)

	settingsSvc := services.NewSettingsService(repository.NewSettingsRepository(db), cfg.Opay.BaseURL)
	userSvc := services.NewUserService(
		userRepo,
		withdrawRepo,
		settingsSvc,
		tokens,
		mailer.New(cfg.SMTP, log),
		presence.NewClient(cfg.Presence.BaseURL, seconds(cfg.Presence.TimeoutSeconds)),
		log,
	)
	gameSvc := services.NewGameService(
		repository.NewGameRepository(db),
		userRepo,
		provider.NewClient(cfg.Provider.BaseURL, cfg.Provider.APIKey, seconds(cfg.Provider.TimeoutSeconds)),
		log,
	)
	opaySvc := services.NewOpayService(
		repository.NewOpayRepository(db),
		depositRepo,
		userRepo,
		settingsSvc,
		opay.NewClient(seconds(cfg.Opay.TimeoutSeconds)),
		notify,
		log,
	)

	if err := userSvc.EnsureAdmin(setupCtx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.WithError(err).Error("admin bootstrap failed")
	}
	cancelSetup()

	timeout := seconds(cfg.RequestTimeout)
	router := newRouter(cfg, log)
	router.GET("/", controllers.NewHealthController(serviceName, client).Status)
	routes.Setup(router, tokens, userRepo, log, routes.Controllers{
		Users:      controllers.NewUserController(userSvc, log, timeout),
		Games:      controllers.NewGameController(gameSvc, log, timeout),
		Categories: controllers.NewCategoryController(services.NewCategoryService(repository.NewCategoryRepository(db)), log, timeout),
		Deposits:   controllers.NewDepositController(services.NewDepositService(depositRepo, userRepo, settingsSvc, notify, log), log, timeout),
		Withdraws:  controllers.NewWithdrawController(services.NewWithdrawService(withdrawRepo, userRepo, settingsSvc, notify, log), log, timeout),
		Opay:       controllers.NewOpayController(opaySvc, settingsSvc, log, timeout),
		Settings:   controllers.NewSettingsController(settingsSvc, log, timeout),
		Content: controllers.NewContentController(
			services.NewContentService(
				repository.NewFeatureImageRepository(db),
				repository.NewSocialLinkRepository(db),
				cfg.UploadDir,
				log,
			),
			log,
			timeout,
		),
	})

	scheduler := jobs.NewScheduler(log)
	if err := jobs.Register(scheduler, cfg.Opay.ReconcileSpec, opaySvc, userSvc); err != nil {
		log.WithError(err).Fatal("job registration failed")
	}
	scheduler.Start()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("listen")
		}
	}()
	log.WithField("port", cfg.Port).Info("server running")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("server shutdown")
	}
	scheduler.Stop(ctx)
	if err := client.Disconnect(ctx); err != nil {
		log.WithError(err).Warn("mongo disconnect")
	}
	log.Info("bye")
}

func newRouter(cfg config.Config, log logrus.FieldLogger) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestLogger(log), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = len(cfg.CorsOrigins) == 0
	corsConfig.AllowOrigins = cfg.CorsOrigins
	corsConfig.AddAllowHeaders("Authorization", "token")
	router.Use(cors.New(corsConfig))

	router.Static(services.UploadPrefix, cfg.UploadDir)
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "route not found"})
	})
	return router
}
