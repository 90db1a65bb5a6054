package router

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/pageza/platepal/backend/internal/api"
	"github.com/pageza/platepal/backend/internal/metrics"
	"github.com/pageza/platepal/backend/internal/middleware"
	"github.com/pageza/platepal/backend/internal/web"
)

// Options configures the middleware stack around the handlers
type Options struct {
	CORSAllowOrigins []string
	Metrics          *metrics.Collector
	Gatherer         prometheus.Gatherer
}

// SetupRouter configures the application routes
func SetupRouter(opts Options, deps api.Dependencies) (*gin.Engine, error) {
	router := gin.New()

	if gin.Mode() != gin.TestMode {
		router.Use(gin.Logger())
	}
	router.Use(middleware.Recovery())

	// CORS middleware
	router.Use(middleware.CORS(opts.CORSAllowOrigins))

	if opts.Metrics != nil {
		router.Use(opts.Metrics.Middleware())
		if opts.Gatherer != nil {
			router.GET("/metrics", gin.WrapH(metrics.Handler(opts.Gatherer)))
		}
	}

	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	router.SetHTMLTemplate(tmpl)
	router.StaticFS("/static", web.Static())

	api.RegisterRoutes(router, deps)

	return router, nil
}
