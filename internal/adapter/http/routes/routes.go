package routes

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "motorcar_consultancy/docs" // This will be auto-generated
	"motorcar_consultancy/internal/adapter/http/handlers"
	"motorcar_consultancy/internal/adapter/http/middleware"
	"motorcar_consultancy/internal/infrastructure/config"
	"motorcar_consultancy/internal/usecase"
	"motorcar_consultancy/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const PathAPI = "/api"

// Dependencies are the collaborators the router is built from.
type Dependencies struct {
	Storage     *Storage
	Pages       fs.FS
	CORSOrigins []string
}

// NewRouter wires use cases and handlers over the given storage.
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, deps.CORSOrigins)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	h := apiHandlers{
		checkout:  handlers.NewCheckoutHandler(usecase.NewOrderUseCase(deps.Storage.Orders)),
		selection: handlers.NewServiceSelectionHandler(usecase.NewServiceSelectionUseCase(deps.Storage.Selections)),
		contact:   handlers.NewContactHandler(usecase.NewContactUseCase(deps.Storage.Contacts)),
		quote:     handlers.NewQuoteHandler(usecase.NewQuoteUseCase()),
		health:    handlers.NewHealthHandler(usecase.NewHealthUseCase(deps.Storage.Health)),
	}

	api := router.Group(PathAPI)
	api.Use(middleware.AccessLog())
	addHealthRoutes(api, h)
	addSubmissionRoutes(api, h)
	addQuoteRoutes(api, h)
	addAdminRoutes(api, h)

	pages := deps.Pages
	if pages == nil {
		pages = web.Pages
	}
	addPageRoutes(router, handlers.NewPagesHandler(pages))
	return router
}

func setMiddlewares(router *gin.Engine, origins []string) {
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(middleware.RequestID())

	corsCfg := cors.DefaultConfig()
	if len(origins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = origins
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, middleware.HeaderRequestID)
	corsCfg.ExposeHeaders = []string{middleware.HeaderRequestID}
	router.Use(cors.New(corsCfg))
}

// Run will start the server and block until SIGINT or SIGTERM, then drain
// in-flight requests for up to cfg.ShutdownTimeout.
func Run(cfg config.Config) error {
	storage, err := OpenStorage(context.Background(), cfg)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: NewRouter(Dependencies{Storage: storage, CORSOrigins: cfg.CORSOrigins}),
	}

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stopCh)

	return serve(srv, storage, cfg.ShutdownTimeout, stopCh)
}

// serve runs srv until stop fires or the listener fails. The storage is
// closed on every exit path.
func serve(srv *http.Server, storage *Storage, shutdownTimeout time.Duration, stop <-chan os.Signal) (err error) {
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if closeErr := storage.Close(ctx); closeErr != nil {
			log.Printf("[server] storage close failed: %v", closeErr)
			if err == nil {
				err = closeErr
			}
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[server] listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case sig := <-stop:
		log.Printf("[server] received signal %s, shutting down", sig)
	case err := <-errCh:
		if err != nil {
			return err
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("[server] graceful shutdown failed: %v", err)
	}
	return nil
}
