package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/robinjoseph08/golib/logger"
	_ "github.com/snnyvrz/bookcatalog/internal/docs"
	"github.com/snnyvrz/bookcatalog/internal/dto"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter wires the catalog routes onto a fresh gin engine. health may be
// nil. /list and /delete are matched regardless of case; anything the engine
// does not know, wrong method included, gets 404 "Not Found".
func NewRouter(log logger.Logger, books *BookHandler, health *HealthHandler) http.Handler {
	e := gin.New()
	e.RedirectTrailingSlash = false
	e.RedirectFixedPath = false
	e.HandleMethodNotAllowed = false

	e.SetTrustedProxies([]string{
		"127.0.0.1",
		"::1",
	})

	e.Use(gin.Recovery(), requestLogger(log))

	books.RegisterRoutes(e)
	if health != nil {
		health.RegisterRoutes(e)
	}

	e.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	e.NoRoute(func(c *gin.Context) {
		writeMessage(c, http.StatusNotFound, dto.MessageNotFound)
	})

	return foldPaths(e, listPath, deletePath)
}

// foldPaths rewrites a request path that equals one of paths ignoring case
// to its canonical spelling before handing the request on.
func foldPaths(next http.Handler, paths ...string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, p := range paths {
			if r.URL.Path != p && strings.EqualFold(r.URL.Path, p) {
				u := *r.URL
				u.Path = p
				u.RawPath = ""

				r = r.WithContext(r.Context())
				r.URL = &u
				break
			}
		}

		next.ServeHTTP(w, r)
	})
}
