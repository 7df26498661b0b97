package httpserver

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"calendar-agent/internal/middleware"
	"calendar-agent/internal/model"
	taskHTTP "calendar-agent/internal/task/delivery/http"
	pkgErrors "calendar-agent/pkg/errors"
	"calendar-agent/pkg/response"
)

func (srv HTTPServer) mapHandlers() error {
	if err := srv.registerValidator(); err != nil {
		return err
	}
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

// registerValidator adds custom rules and makes binding errors name fields by their json keys.
func (srv HTTPServer) registerValidator() error {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		return pkgErrors.ConfigureValidator(v)
	}
	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	mw := middleware.New(srv.l)
	srv.gin.Use(mw.RequestID(), gin.CustomRecovery(srv.recoverPanic), mw.AccessLog())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "HTTP mode: production")
	} else {
		srv.l.Infof(ctx, "HTTP mode: %s", srv.environment)
	}
}

// recoverPanic answers a panicking request with the generic 500 envelope.
func (srv HTTPServer) recoverPanic(c *gin.Context, recovered any) {
	err := fmt.Errorf("panic: %v", recovered)
	srv.l.Errorf(c.Request.Context(), "%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	response.InternalError(c, err)
	c.Abort()
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/", srv.rootCheck)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() error {
	taskHTTP.RegisterRoutes(srv.gin, srv.taskHandler)
	srv.l.Infof(context.Background(), "Task route registered at POST /add-task")
	return nil
}
