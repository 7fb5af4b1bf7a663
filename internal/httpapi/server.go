// Package httpapi serves the clientbuddy core as a JSON API for a browser
// front end.
package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/alexanderramin/clientbuddy/internal/intelligence"
	"github.com/alexanderramin/clientbuddy/internal/logger"
	"github.com/alexanderramin/clientbuddy/internal/persona"
	"github.com/alexanderramin/clientbuddy/internal/random"
	"github.com/alexanderramin/clientbuddy/internal/scenario"
)

type Deps struct {
	Briefs     intelligence.BriefService
	Feedback   intelligence.FeedbackService
	Reviews    intelligence.ReviewService
	Challenges intelligence.ChallengeService

	Rand random.Source
	Log  *logger.Logger

	// Registerer and Gatherer back the /metrics endpoint; nil uses the
	// prometheus defaults.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer

	CORSOrigins []string
	// MaxSessions bounds the number of live scenarios.
	MaxSessions int
}

type server struct {
	deps      Deps
	responder *persona.Responder
	sessions  *sessionStore
}

// New builds the HTTP handler.
func New(deps Deps) (http.Handler, error) {
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	if deps.Rand == nil {
		deps.Rand = random.Default()
	}
	if deps.Registerer == nil {
		deps.Registerer = prometheus.DefaultRegisterer
	}
	if deps.Gatherer == nil {
		deps.Gatherer = prometheus.DefaultGatherer
	}

	metrics, err := newHTTPMetrics(deps.Registerer)
	if err != nil {
		return nil, err
	}

	s := &server{deps: deps, responder: persona.NewResponder(deps.Rand)}
	s.sessions, err = newSessionStore(deps.MaxSessions, func() *scenario.Machine {
		return scenario.New(scenario.Deps{
			Briefs:   deps.Briefs,
			Feedback: deps.Feedback,
			Reviewer: deps.Reviews,
			Observer: scenario.NewLogObserver(deps.Log),
		})
	})
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(deps.Log))
	r.Use(metrics.middleware())
	r.Use(corsMiddleware(deps.CORSOrigins))

	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))

	api := r.Group("/api")
	{
		api.GET("/catalog", s.getCatalog)
		api.GET("/chat/welcome", s.getWelcome)
		api.POST("/chat", s.postChat)
		api.POST("/briefs", s.postBrief)
		api.POST("/briefs/translate", s.postTranslate)
		api.POST("/feedback", s.postFeedback)
		api.GET("/challenges", s.getChallenges)

		api.POST("/scenarios", s.createScenario)
		api.GET("/scenarios/:id", s.getScenario)
		api.DELETE("/scenarios/:id", s.deleteScenario)
		api.POST("/scenarios/:id/start", s.startScenario)
		api.POST("/scenarios/:id/revisions", s.submitRevision)
		api.POST("/scenarios/:id/complete", s.completeScenario)
		api.POST("/scenarios/:id/reset", s.resetScenario)
	}
	return r, nil
}
