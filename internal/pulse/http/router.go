package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/julien-sketch/progressive-pulse/internal/pulse/service"
	"github.com/julien-sketch/progressive-pulse/internal/pulse/store"
	"github.com/julien-sketch/progressive-pulse/pkg/httpx"
	"github.com/julien-sketch/progressive-pulse/pkg/jwtx"
	"github.com/julien-sketch/progressive-pulse/pkg/slogx"

	_ "github.com/julien-sketch/progressive-pulse/api/pulse" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier          jwtx.Verifier
	adminUser         string
	adminPasswordHash string
	baseURL           string
	buildVersion      string
	startTime         time.Time
	logger            *slog.Logger

	store           store.Store
	ProjectService  *service.ProjectService
	ProgressService *service.ProgressService
	DocumentService *service.DocumentService
	ReminderService *service.ReminderService
}

func NewRouter(
	verifier jwtx.Verifier,
	adminUser, adminPasswordHash string,
	baseURL, buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:               http.NewServeMux(),
		verifier:          verifier,
		adminUser:         adminUser,
		adminPasswordHash: adminPasswordHash,
		baseURL:           baseURL,
		buildVersion:      buildVersion,
		startTime:         time.Now(),
		store:             st,
		logger:            logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAdmin()
	r.registerAdvance()
	r.registerTracking()
	r.registerPro()
	r.registerJobs()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Progressive Pulse API
//	@version		0.1.0
//	@description	Client progress tracking for real-estate and training projects.
//	@description
//	@description				Clients follow their project through a capability-URL access token; no
//	@description				account is involved on the client side. Professionals advance steps from
//	@description				one-click email links or the authenticated dashboard.
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.basic	AdminAuth
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Dashboard session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAdmin() {
	create := &AdminCreateProjectHandler{
		ProjectService: r.ProjectService,
		BaseURL:        r.baseURL,
	}
	credits := &AdminGrantCreditsHandler{ProjectService: r.ProjectService}

	// Administrative surface sits behind Basic auth and a strict IP limit.
	r.Mux.Handle("POST /v1/admin/projects",
		httpx.Chain(create,
			httpx.BasicAdminAuth(r.adminUser, r.adminPasswordHash),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/admin/credits",
		httpx.Chain(credits,
			httpx.BasicAdminAuth(r.adminUser, r.adminPasswordHash),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerAdvance() {
	h := &AdvanceHandler{ProgressService: r.ProgressService}

	// GET because the link lands straight from an email client. Moderate
	// limit: the token is the credential and tokens are enumerable in shape.
	r.Mux.Handle("GET /v1/advance",
		httpx.Chain(h,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerTracking() {
	track := &TrackHandler{ProjectService: r.ProjectService}
	upload := &DocumentUploadHandler{DocumentService: r.DocumentService}
	list := &DocumentListHandler{ProjectService: r.ProjectService}

	r.Mux.Handle("GET /v1/track/{token}",
		httpx.Chain(track,
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("POST /v1/track/{token}/documents",
		httpx.Chain(upload,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /v1/track/{token}/documents",
		httpx.Chain(list,
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}

func (r *Router) registerPro() {
	h := &ProProjectsHandler{
		ProjectService: r.ProjectService,
		BaseURL:        r.baseURL,
	}

	securedList := httpx.Chain(http.HandlerFunc(h.HandleList),
		httpx.BearerAuth(r.verifier),
		httpx.RateLimitByUser(httpx.LenientLimit),
	)
	securedCreate := httpx.Chain(http.HandlerFunc(h.HandleCreate),
		httpx.BearerAuth(r.verifier),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)

	r.Mux.Handle("GET /v1/pro/projects", securedList)
	r.Mux.Handle("POST /v1/pro/projects", securedCreate)
}

func (r *Router) registerJobs() {
	h := &RemindHandler{ReminderService: r.ReminderService}

	// Triggered by the external scheduler; shares the admin credential.
	r.Mux.Handle("POST /v1/jobs/remind",
		httpx.Chain(h,
			httpx.BasicAdminAuth(r.adminUser, r.adminPasswordHash),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
