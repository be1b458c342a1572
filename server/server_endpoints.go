package server

import (
	"html/template"
	"net/http"

	"github.com/0xERR0R/regdomain/api"
	"github.com/0xERR0R/regdomain/config"
	"github.com/0xERR0R/regdomain/log"
	"github.com/0xERR0R/regdomain/metrics"
	"github.com/0xERR0R/regdomain/util"
	"github.com/0xERR0R/regdomain/web"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func createRouter(cfg *config.Config) *chi.Mux {
	router := chi.NewRouter()

	configureCorsHandler(cfg.Server, router)

	configureDebugHandler(router)

	configureMetricsHandler(cfg.Prometheus, router)

	configureRootHandler(cfg, router)

	return router
}

func configureRootHandler(cfg *config.Config, router *chi.Mux) {
	t := template.Must(template.New("index").Parse(web.IndexTmpl))

	router.Get("/", func(writer http.ResponseWriter, request *http.Request) {
		type HandlerLink struct {
			URL   string
			Title string
		}

		type PageData struct {
			Links     []HandlerLink
			Version   string
			BuildTime string
		}

		pd := PageData{
			Links: []HandlerLink{
				{URL: api.PathParse + "?url=https://www.example.co.uk/", Title: "Parse URL"},
				{URL: api.PathMainDomain + "?host=www.example.com", Title: "Main domain"},
				{URL: api.PathCdn + "?domain=cloudfront.net", Title: "CDN check"},
				{URL: api.PathRegistrant + "?suffix=.com", Title: "Registrant info"},
				{URL: api.PathSuffixes, Title: "All suffixes"},
				{URL: "/debug/", Title: "Go Profiler"},
			},
			Version:   util.Version,
			BuildTime: util.BuildTime,
		}

		if cfg.Prometheus.Enable {
			pd.Links = append(pd.Links, HandlerLink{
				URL:   cfg.Prometheus.Path,
				Title: "Prometheus endpoint",
			})
		}

		err := t.Execute(writer, pd)
		if err != nil {
			log.Log().Error("can't write index template: ", err)
			writer.WriteHeader(http.StatusInternalServerError)
		}
	})
}

func configureDebugHandler(router *chi.Mux) {
	router.Mount("/debug", middleware.Profiler())
}

func configureMetricsHandler(cfg config.MetricsConfig, router *chi.Mux) {
	if cfg.Enable {
		router.Handle(cfg.Path, metrics.Handler())
	}
}

func configureCorsHandler(cfg config.ServerConfig, router *chi.Mux) {
	if len(cfg.CorsOrigins) == 0 {
		return
	}

	crs := cors.New(cors.Options{
		AllowedOrigins:   cfg.CorsOrigins,
		AllowedMethods:   []string{"GET"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	})
	router.Use(crs.Handler)
}
