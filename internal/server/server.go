// Package server builds the HTTP router and runs it until shutdown.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"churchcms/internal/middleware"
	"churchcms/internal/pkg/logger"
	"churchcms/internal/pkg/response"
	"churchcms/internal/storage"
)

// Registrar mounts a resource's routes under the API group.
type Registrar interface {
	RegisterRoutes(r *gin.RouterGroup)
}

// PendingCounter reports how many blob deletions are still queued.
type PendingCounter interface {
	Pending(ctx context.Context) (int64, error)
}

type Options struct {
	Log         *logger.Logger
	DB          *gorm.DB
	Outbox      PendingCounter
	CORSOrigins []string
	// Local, when set, is served as static files.
	Local   *storage.LocalStore
	Release bool
}

func NewRouter(opts Options, handlers ...Registrar) *gin.Engine {
	if opts.Release {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.MaxMultipartMemory = 32 << 20
	r.Use(
		middleware.RequestID(),
		middleware.ErrorLogger(opts.Log),
		middleware.RequestLogger(opts.Log),
		middleware.CORS(opts.CORSOrigins),
	)

	r.GET("/health", health(opts))
	if opts.Local != nil {
		r.Static(opts.Local.StaticPath(), opts.Local.Dir())
	}

	api := r.Group("/api")
	for _, h := range handlers {
		h.RegisterRoutes(api)
	}

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "Route not found")
	})
	return r
}

func health(opts Options) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		sqlDB, err := opts.DB.DB()
		if err == nil {
			err = sqlDB.PingContext(ctx)
		}
		if err != nil {
			_ = c.Error(err)
			response.Error(c, http.StatusServiceUnavailable, "Database unavailable")
			return
		}

		data := gin.H{"database": "up"}
		if opts.Outbox != nil {
			if n, err := opts.Outbox.Pending(ctx); err == nil {
				data["pendingBlobDeletions"] = n
			}
		}
		response.Success(c, http.StatusOK, "OK", data)
	}
}

// Run serves handler on addr until ctx is cancelled, then shuts down within timeout.
func Run(ctx context.Context, log *logger.Logger, addr string, handler http.Handler, timeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("http server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
