package app

import (
	"net/http"
	"strings"

	"gorm.io/gorm"
	"medtrack-go/internal/config"
	"medtrack-go/internal/db"
	categoriesdomain "medtrack-go/internal/domain/categories"
	medicinesdomain "medtrack-go/internal/domain/medicines"
	reportsdomain "medtrack-go/internal/domain/reports"
	"medtrack-go/internal/notifier"
	"medtrack-go/internal/repository/inmemory"
	alertsrepo "medtrack-go/internal/repository/postgres/alerts"
	categoriesrepo "medtrack-go/internal/repository/postgres/categories"
	medicinesrepo "medtrack-go/internal/repository/postgres/medicines"
	reportsrepo "medtrack-go/internal/repository/postgres/reports"
	"medtrack-go/internal/repository/rediscache"
	"medtrack-go/internal/transport/httpserver"
	"medtrack-go/internal/transport/httpserver/handler"
	"medtrack-go/pkg/logger"
)

type App struct {
	cfg        config.Config
	log        logger.Logger
	httpServer *http.Server
	db         *gorm.DB
	redisCache *rediscache.CategoriesCache
	notifier   *notifier.Notifier
}

func New(log logger.Logger) (*App, error) {
	cfg, err := config.Load(log)
	if err != nil {
		return nil, err
	}

	dbConn, err := db.NewPostgres(cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(dbConn); err != nil {
		return nil, err
	}

	app := &App{cfg: cfg, log: log, db: dbConn}

	categoriesCache := app.newCategoriesCache()
	categoriesService := categoriesdomain.NewServiceWithCache(
		categoriesrepo.NewPostgres(dbConn),
		categoriesCache,
		cfg.Cache.CategoriesTTL,
	)

	medicinesService := medicinesdomain.NewServiceWithPolicy(
		medicinesrepo.NewPostgres(dbConn),
		alertsrepo.NewPostgres(dbConn),
		categoriesService,
		medicinesdomain.AlertPolicy{
			LeadDays:     cfg.Alerts.LeadDays,
			ReuseOnMerge: cfg.Alerts.OnMerge == config.OnMergeReuse,
		},
	)

	reportsService := reportsdomain.NewService(reportsrepo.NewPostgres(dbConn))

	handlers := handler.New(categoriesService, medicinesService, reportsService, log)
	router := httpserver.NewRouter(handlers)
	app.httpServer = httpserver.New(cfg, router)

	if cfg.Notifier.Enabled {
		app.notifier = notifier.New(medicinesService, cfg.Notifier.Schedule, log)
		if err := app.notifier.Start(); err != nil {
			return nil, err
		}
	}

	return app, nil
}

func (a *App) newCategoriesCache() categoriesdomain.Cache {
	switch strings.ToLower(a.cfg.Cache.Backend) {
	case "redis":
		cache, err := rediscache.NewCategoriesCache(a.cfg.Cache, a.log)
		if err != nil {
			a.log.Warn("app: redis cache unavailable, falling back to memory", "err", err)
			return inmemory.NewCategoriesCache()
		}
		a.redisCache = cache
		return cache
	case "off":
		return categoriesdomain.NoopCache()
	default:
		return inmemory.NewCategoriesCache()
	}
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close() error {
	if a.notifier != nil {
		a.notifier.Stop()
	}
	if a.redisCache != nil {
		if err := a.redisCache.Close(); err != nil {
			a.log.Warn("app: redis close failed", "err", err)
		}
	}
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
