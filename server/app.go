package server

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"uwazi/config"
	"uwazi/internal/accounts"
	"uwazi/internal/auth"
	"uwazi/internal/db"
	"uwazi/internal/health"
	"uwazi/internal/logs"
	"uwazi/internal/middleware"
	"uwazi/internal/models"
	"uwazi/internal/repo"
	"uwazi/internal/suppliers"
	"uwazi/internal/tenders"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type App struct {
	cfg        *config.Config
	db         *gorm.DB
	Router     *mux.Router
	httpServer *http.Server

	ctx    context.Context
	cancel context.CancelFunc
}

func (a *App) Initialize(cfg *config.Config) {
	a.cfg = cfg

	/* 1) Логи */
	logs.Init(logs.Options{
		Level:  a.cfg.Logging.Level,
		Format: a.cfg.Logging.Format,
		File:   a.cfg.Logging.File,
	})

	/* 2) DB (опционально) */
	if drv := a.cfg.Database.Driver; drv != "" {
		d, err := db.Open(drv, a.cfg.Database.DSN)
		if err != nil {
			log.Fatalf("db open failed: %v", err)
		}
		a.db = d

		if err := a.db.AutoMigrate(&models.User{},
			&models.Tender{},
			&models.Supplier{}); err != nil {
			log.Fatalf("db migrate failed: %v", err)
		}
	}

	/* 3) Сторадж: gorm поверх БД либо in-memory */
	var (
		userStore     accounts.Store
		tenderStore   tenders.Store
		supplierStore suppliers.Store
	)
	if a.db != nil {
		userStore = repo.NewUserStore(a.db)
		tenderStore = repo.NewTenderStore(a.db)
		supplierStore = repo.NewSupplierStore(a.db)
	} else {
		userStore = accounts.NewMemoryStore()
		tenderStore = tenders.NewMemoryStore()
		supplierStore = suppliers.NewMemoryStore()
	}

	/* 4) Аутентификация: кодек токенов + поток логина/регистрации */
	codec := auth.NewCodec(a.cfg.Auth.Secret, time.Duration(a.cfg.Auth.TokenTTLMinutes)*time.Minute)
	authn := auth.NewAuthenticator(codec, userStore)
	requireUser := middleware.RequireUser(authn)
	accountsSvc := accounts.NewService(userStore, codec)

	/* 5) Router + middleware */
	a.Router = mux.NewRouter().StrictSlash(true)
	a.Router.Use(
		middleware.RequestID,
		middleware.Recoverer,
		middleware.LoggerMW,
		middleware.CORS(a.cfg.CORS.Origins),
	)

	// preflight: без явного OPTIONS-маршрута mux не пропустит запрос
	// через middleware-цепочку (CORS отвечает сам)
	a.Router.PathPrefix("/").Methods(http.MethodOptions).HandlerFunc(func(http.ResponseWriter, *http.Request) {})

	/* 6) Health */
	if a.db != nil {
		health.RegisterRoutesWithDB(a.Router, a.db) // /healthz, /readyz
	} else {
		health.RegisterRoutes(a.Router) // только /healthz
	}

	/* 7) API v1 */
	api := a.Router.PathPrefix("/api/v1").Subrouter()
	accounts.RegisterRoutes(api, accounts.NewHandler(accountsSvc), requireUser)
	tenders.RegisterRoutes(api, tenders.NewHandler(tenderStore), requireUser)
	suppliers.RegisterRoutes(api, suppliers.NewHandler(supplierStore), requireUser)

	/* (необязательно) вывести известные маршруты в лог при старте */
	_ = a.Router.Walk(func(rt *mux.Route, _ *mux.Router, _ []*mux.Route) error {
		path, _ := rt.GetPathTemplate()
		methods, _ := rt.GetMethods()
		if len(methods) == 0 {
			methods = []string{"ANY"}
		}
		log.Printf("route: %-6v %s", methods, path)
		return nil
	})
}

func (a *App) Run() error {
	if a.Router == nil || a.cfg == nil {
		return fmt.Errorf("server not initialized")
	}

	bind := net.JoinHostPort(a.cfg.Server.Address, a.cfg.Server.HTTPPort)

	a.ctx, a.cancel = context.WithCancel(context.Background())
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		s := <-sigs
		logs.Logger.Infof("shutdown signal: %s", s)
		a.cancel()
	}()

	// Жёсткие таймауты — это важно для production
	a.httpServer = &http.Server{
		Addr:              bind,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logs.Logger.Infof("HTTP listening on %s", bind)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logs.Logger.Fatalf("http server error: %v", err)
		}
	}()

	<-a.ctx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.httpServer.Shutdown(ctx); err != nil {
		logs.Logger.Errorf("http shutdown: %v", err)
	}
	return nil
}
