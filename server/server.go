package server

import (
	"net/http"
	"path"
	"path/filepath"

	"github.com/Luismorlan/tribe/app_setting"
	"github.com/Luismorlan/tribe/file_store"
	"github.com/Luismorlan/tribe/server/metrics"
	"github.com/Luismorlan/tribe/server/middlewares"
	"github.com/Luismorlan/tribe/store"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server holds everything handlers need. It carries no per-request state and
// is safe to share across requests.
type Server struct {
	Store   *store.Store
	Files   file_store.FileStore
	Setting app_setting.AppSetting
	Metrics *metrics.Metrics
	// Gatherer backs GET /metrics, the route is skipped when nil.
	Gatherer prometheus.Gatherer
}

// NewRouter builds the gin engine serving the REST api. extra middlewares run
// after recovery and metrics, before auth, e.g. cors or tracing.
func NewRouter(s *Server, extra ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), middlewares.Recovery())
	if s.Metrics != nil {
		router.Use(s.Metrics.Middleware())
	}
	router.Use(extra...)
	router.NoRoute(middlewares.NotFound())

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})
	if s.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.Gatherer, promhttp.HandlerOpts{})))
	}
	// Locally stored uploads are served by the api itself, other stores are
	// expected to sit behind PUBLIC_BASE_URL.
	if local, ok := s.Files.(*file_store.LocalFileStore); ok && s.Setting.UPLOAD_ROOT != "" {
		router.Static(path.Join("/", s.Setting.UPLOAD_ROOT), filepath.Join(local.Root(), s.Setting.UPLOAD_ROOT))
	}

	api := router.Group("/api", middlewares.APIKeyAuth(s.Store))
	{
		api.GET("/users/me", s.GetMe)
		api.GET("/users/:id", s.GetUser)
		api.POST("/users/:id/follow", s.FollowUser)
		api.DELETE("/users/:id/follow", s.UnfollowUser)

		api.POST("/tweets", s.CreateTweet)
		api.GET("/tweets", s.GetFeed)
		api.DELETE("/tweets/:id", s.DeleteTweet)
		api.POST("/tweets/:id/likes", s.LikeTweet)
		api.DELETE("/tweets/:id/likes", s.UnlikeTweet)

		api.POST("/medias", s.UploadMedia)
	}

	return router
}
