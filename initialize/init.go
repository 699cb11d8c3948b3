package initialize

import (
	"fmt"
	"net/http"
	"time"

	"github.com/jaiswaranil8387/itsm-ticket-management/app/controllers"
	"github.com/jaiswaranil8387/itsm-ticket-management/app/db"
	"github.com/jaiswaranil8387/itsm-ticket-management/app/middleware"
	"github.com/jaiswaranil8387/itsm-ticket-management/app/models"
	"github.com/jaiswaranil8387/itsm-ticket-management/app/repo"
	"github.com/jaiswaranil8387/itsm-ticket-management/app/services"
	"github.com/jaiswaranil8387/itsm-ticket-management/app/session"
	"github.com/jaiswaranil8387/itsm-ticket-management/app/views"
	"github.com/jaiswaranil8387/itsm-ticket-management/config"
	"github.com/jaiswaranil8387/itsm-ticket-management/global"
	"github.com/jaiswaranil8387/itsm-ticket-management/router"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type App struct {
	Cfg      config.Config
	DB       *gorm.DB
	Router   http.Handler
	Sessions *session.Manager
	Tickets  *services.TicketService
	Users    *services.UserService
}

// Build wires the whole application from a config file path.
func Build(configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	return BuildWithConfig(cfg)
}

// BuildWithConfig wires the application from an already-loaded config.
// Tests use this with a sqlite in-memory database and a memory session
// store.
func BuildWithConfig(cfg *config.Config) (*App, error) {
	global.Config = *cfg
	ApplyLogLevel(cfg.LogLevel)

	gdb, err := db.Connect(db.Config{
		Driver:   cfg.DB.Driver,
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Pass,
		DBName:   cfg.DB.Name,
	})
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	global.Mdb = gdb

	if err := gdb.AutoMigrate(&models.User{}, &models.Ticket{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	ticketRepo := repo.NewTicketRepository(gdb)
	userRepo := repo.NewUserRepository(gdb)
	ticketSvc := services.NewTicketService(ticketRepo)
	userSvc := services.NewUserService(userRepo)

	if err := seedTickets(ticketRepo); err != nil {
		return nil, fmt.Errorf("seed tickets: %w", err)
	}
	if err := userSvc.EnsureAdmin(cfg.Admin.Username, cfg.Admin.Password); err != nil {
		return nil, fmt.Errorf("seed admin: %w", err)
	}

	var store session.Store
	if cfg.Redis.Addr != "" {
		global.Rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		store = session.NewRedisStore(global.Rdb)
	} else {
		store = session.NewMemoryStore()
	}
	signer := &session.CookieSigner{Secret: []byte(cfg.Session.Secret), Issuer: cfg.Session.Issuer}
	sessions := session.NewManager(store, signer, time.Duration(cfg.Session.TTLMin)*time.Minute)

	v, err := views.New()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	authCtrl := controllers.NewAuthController(userSvc, v)
	ticketCtrl := controllers.NewTicketController(ticketSvc, v)
	userCtrl := controllers.NewUserController(userSvc, v)
	healthCtrl := controllers.NewHealthController(gdb)

	h := router.New(authCtrl, ticketCtrl, userCtrl, healthCtrl)
	h = middleware.RequireLogin(h)
	sm := &middleware.Sessions{Manager: sessions}
	h = sm.Attach(h)
	h = middleware.Logging(h)

	return &App{Cfg: *cfg, DB: gdb, Router: h, Sessions: sessions, Tickets: ticketSvc, Users: userSvc}, nil
}
