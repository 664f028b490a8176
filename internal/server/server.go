package server

import (
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/mdouchement/todoapp/internal/database"
	"github.com/mdouchement/todoapp/internal/repository"
	"github.com/mdouchement/todoapp/internal/server/middlewares"
	"golang.org/x/time/rate"
)

// RateLimitWindow and RateLimitQuota bound the requests allowed per client IP.
const (
	RateLimitWindow = 15 * time.Minute
	RateLimitQuota  = 100
)

// A Controller is an Inversion Of Control pattern used to init the server package.
type Controller struct {
	Version    string
	Repository repository.Repository
	// Database is only used by the healthcheck. It is nil when the store
	// could not be opened and the demo repository is in use.
	Database       database.Client
	Environment    string
	FrontendOrigin string
	// DisableRateLimit is used by tests performing large request sequences.
	DisableRateLimit bool
}

// EchoEngine instantiates the web server.
func EchoEngine(ctrl Controller) *echo.Echo {
	engine := echo.New()
	engine.HideBanner = true
	engine.Use(middleware.Recover())
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{ctrl.FrontendOrigin},
		AllowCredentials: true,
	}))
	engine.Use(middleware.Gzip())
	engine.Use(middleware.BodyLimit("10M"))

	if !ctrl.DisableRateLimit {
		engine.Use(middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
			Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Every(RateLimitWindow / RateLimitQuota),
				Burst:     RateLimitQuota,
				ExpiresIn: RateLimitWindow,
			}),
			DenyHandler: func(c echo.Context, identifier string, err error) error {
				return c.JSON(http.StatusTooManyRequests, echo.Map{
					"message": "Too many requests from this IP, please try again later.",
				})
			},
		}))
	}

	engine.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "[${status}] ${method} ${uri} (${bytes_in}) ${latency_human}\n",
	}))
	engine.Binder = middlewares.NewBinder()
	// Error handler
	engine.HTTPErrorHandler = middlewares.NewHTTPErrorHandler(ctrl.Environment)

	////////////
	// Router //
	////////////

	router := engine.Group("/api")

	// generic handlers
	//
	router.GET("/health", func(c echo.Context) error {
		status := "OK"
		message := "Server is running"
		dbstatus := "connected"
		dbmessage := "Database connected"
		if ctrl.Database == nil {
			status = "WARNING"
			message = "Server is running but database is not connected"
			dbstatus = "disconnected"
			dbmessage = "Database not connected - using demo data"
		}

		return c.JSON(http.StatusOK, echo.Map{
			"status":      status,
			"message":     message,
			"version":     ctrl.Version,
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
			"environment": ctrl.Environment,
			"database": echo.Map{
				"status":  dbstatus,
				"message": dbmessage,
			},
		})
	})

	//
	// todo handlers
	//
	todo := &todo{
		repository: ctrl.Repository,
	}
	router.GET("/todos", todo.List)
	router.GET("/todos/:id", todo.Show)
	router.POST("/todos", todo.Create)
	router.PUT("/todos/:id", todo.Update)
	router.DELETE("/todos/:id", todo.Delete)

	return engine
}

// PrintRoutes prints the Echo engine exposed routes.
func PrintRoutes(e *echo.Echo) {
	ignored := map[string]bool{
		"":   true,
		".":  true,
		"/*": true,
	}

	routes := e.Routes()
	sort.Slice(routes, func(i int, j int) bool {
		return routes[i].Path < routes[j].Path
	})

	fmt.Println("Routes:")
	for _, route := range routes {
		if ignored[route.Path] {
			continue
		}
		fmt.Printf("%6s %s\n", route.Method, route.Path)
	}
}
