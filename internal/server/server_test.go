package server_test

import (
	"io/ioutil"
	"net/http"
	"os"
	"testing"

	"github.com/appleboy/gofight/v2"
	"github.com/labstack/echo/v4"
	"github.com/mdouchement/todoapp/internal/database"
	"github.com/mdouchement/todoapp/internal/repository"
	"github.com/mdouchement/todoapp/internal/server"
	"github.com/stretchr/testify/assert"
)

func TestRequestHealth(t *testing.T) {
	engine, _, r, cleanup := setup()
	defer cleanup()

	r.GET("/api/health").Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusOK, r.Code)
		assert.Contains(t, r.Body.String(), `"status":"OK"`)
		assert.Contains(t, r.Body.String(), `"version":"test"`)
		assert.Contains(t, r.Body.String(), `"environment":"test"`)
		assert.Contains(t, r.Body.String(), `"Database connected"`)
	})
}

func TestRequestHealthWithoutDatabase(t *testing.T) {
	engine := demoEngine()
	r := gofight.New()

	r.GET("/api/health").Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusOK, r.Code)
		assert.Contains(t, r.Body.String(), `"status":"WARNING"`)
		assert.Contains(t, r.Body.String(), `"disconnected"`)
	})
}

func TestRequestRouteNotFound(t *testing.T) {
	engine, _, r, cleanup := setup()
	defer cleanup()

	r.GET("/nope").Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusNotFound, r.Code)
		assert.JSONEq(t, `{"message":"Route not found"}`, r.Body.String())
	})

	r.PATCH("/api/todos").Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusNotFound, r.Code)
		assert.JSONEq(t, `{"message":"Route not found"}`, r.Body.String())
	})
}

func TestRequestRateLimited(t *testing.T) {
	engine := server.EchoEngine(server.Controller{
		Version:        "test",
		Repository:     repository.NewDemo(),
		Environment:    "test",
		FrontendOrigin: "http://localhost:5173",
	})
	r := gofight.New()

	for i := 0; i < server.RateLimitQuota; i++ {
		r.GET("/api/health").Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
			assert.Equal(t, http.StatusOK, r.Code)
		})
	}

	r.GET("/api/health").Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusTooManyRequests, r.Code)
		assert.JSONEq(t, `{"message":"Too many requests from this IP, please try again later."}`, r.Body.String())
	})
}

func setup() (engine *echo.Echo, ctrl server.Controller, r *gofight.RequestConfig, cleanup func()) {
	tmpfile, err := ioutil.TempFile("", "todoapp.*.db")
	if err != nil {
		panic(err)
	}
	filename := tmpfile.Name()
	tmpfile.Close()

	db, err := database.StormOpen(filename)
	if err != nil {
		panic(err)
	}

	ctrl = server.Controller{
		Version:          "test",
		Repository:       repository.NewStorm(db),
		Database:         db,
		Environment:      "test",
		FrontendOrigin:   "http://localhost:5173",
		DisableRateLimit: true,
	}
	engine = server.EchoEngine(ctrl)

	return engine, ctrl, gofight.New(), func() {
		db.Close()
		os.RemoveAll(filename)
	}
}

func demoEngine() *echo.Echo {
	return server.EchoEngine(server.Controller{
		Version:          "test",
		Repository:       repository.NewDemo(),
		Environment:      "test",
		FrontendOrigin:   "http://localhost:5173",
		DisableRateLimit: true,
	})
}
