// internal/app/server.go
package app

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vendora-admin/internal/config"
	"vendora-admin/internal/db"
	catalogHandler "vendora-admin/internal/handlers/catalog"
	customerHandler "vendora-admin/internal/handlers/customers"
	notifyH "vendora-admin/internal/handlers/notification"
	orderHandler "vendora-admin/internal/handlers/orders"
	wsHandler "vendora-admin/internal/handlers/ws"
	"vendora-admin/internal/middleware"
	"vendora-admin/internal/repository/redisstore"
	notifyUsecase "vendora-admin/internal/service/notification"
	"vendora-admin/internal/upstream"
	"vendora-admin/internal/websocket"
	"vendora-admin/internal/ws"
)

type Server struct {
	cfg    config.AppConfig
	engine *gin.Engine
	logger *zap.Logger

	httpServer *http.Server
	bridge     *ws.Bridge
	cancel     context.CancelFunc
}

func NewServer() *Server {
	cfg := config.Load()
	engine := gin.Default()
	return &Server{cfg: cfg, engine: engine}
}

func (s *Server) Start() error {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	// ----- Logger -----
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	s.logger = logger

	// ----- Redis (optional snapshot store) -----
	var snapshots notifyUsecase.SnapshotStore
	if s.cfg.RedisAddr != "" {
		redisClient, err := db.NewRedisClient(db.RedisConfig{
			Addr:     s.cfg.RedisAddr,
			Password: s.cfg.RedisPass,
			DB:       0,
			PoolSize: 10,
		})
		if err != nil {
			log.Fatalf("[REDIS] ❌ Failed to connect to Redis: %v", err)
		}
		log.Println("[REDIS] ✅ Connected successfully")
		snapshots = redisstore.NewNotificationSnapshotStore(redisClient, s.cfg.AdminID)
	} else {
		log.Println("[REDIS] No address configured, notification snapshots disabled")
	}

	// ----- Upstream API client -----
	apiClient := upstream.NewClient(s.cfg.UpstreamAPIURL, s.cfg.UpstreamAPIToken, logger)

	// ----- WebSocket fanout hub (UI side) -----
	hub := websocket.NewHub(logger)
	go hub.Run(ctx)

	// ----- Notification center -----
	center := notifyUsecase.NewCenter(apiClient, snapshots, hub, logger)
	if err := center.WarmStart(ctx); err != nil {
		logger.Warn("notification warm start failed", zap.Error(err))
	}
	if err := center.Refresh(ctx); err != nil {
		// The upstream may be briefly unavailable at boot; the cache
		// fills on the next refresh or push.
		logger.Warn("initial notification fetch failed", zap.Error(err))
	}

	// ----- Upstream socket bridge -----
	s.bridge = ws.NewBridge(s.cfg.UpstreamWSURL, s.cfg.UpstreamAPIToken, center, logger)
	go s.bridge.Run(ctx)

	// ----- Handlers -----
	catalogHandlerInst := catalogHandler.NewCatalogHandler(apiClient, s.cfg.DefaultPageSize, logger)
	orderHandlerInst := orderHandler.NewOrderHandler(apiClient, s.cfg.DefaultPageSize, logger)
	customerHandlerInst := customerHandler.NewCustomerHandler(apiClient, s.cfg.DefaultPageSize, logger)
	notifHandlerInst := notifyH.NewNotificationHandler(center, logger)
	wsHandlerInst := wsHandler.NewWSHandler(hub, logger)

	// ----- Middlewares -----
	authMiddleware := middleware.NewAuthMiddleware(logger)

	s.engine.Use(
		middleware.RecoveryMiddleware(logger),
		middleware.RequestID(),
		middleware.LoggingMiddleware(logger),
		middleware.CORSMiddleware(),
	)

	// ----- Router -----
	handlers := &Handlers{
		CatalogHandler:  catalogHandlerInst,
		OrderHandler:    orderHandlerInst,
		CustomerHandler: customerHandlerInst,
		NotifHandler:    notifHandlerInst,
		WSHandler:       wsHandlerInst,
		AuthMiddleware:  authMiddleware,
	}
	SetupRouter(s.engine, logger, handlers)

	// ----- Start HTTP -----
	s.httpServer = &http.Server{
		Addr:    s.cfg.HTTPAddr,
		Handler: s.engine,
	}

	log.Printf("🚀 Server running on %s", s.cfg.HTTPAddr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the bridge, the hub and the HTTP listener.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.bridge != nil {
		s.bridge.Close()
	}
	if s.cancel != nil {
		s.cancel()
	}
	if s.httpServer == nil {
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return s.httpServer.Shutdown(shutdownCtx)
}
