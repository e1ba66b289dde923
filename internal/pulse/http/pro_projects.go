package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/julien-sketch/progressive-pulse/internal/pulse/domain"
	"github.com/julien-sketch/progressive-pulse/internal/pulse/service"
	"github.com/julien-sketch/progressive-pulse/pkg/httpx"
	"github.com/julien-sketch/progressive-pulse/pkg/pulsesdk"
	"github.com/julien-sketch/progressive-pulse/pkg/slogx"
)

type ProProjectsHandler struct {
	ProjectService *service.ProjectService
	BaseURL        string
}

// HandleList godoc
//
//	@Summary		Professional dashboard listing
//	@Description	Lists the authenticated professional's projects, newest first, together with the remaining wallet credits. Ownership is keyed by the session's email claim.
//	@Tags			Dashboard
//	@Produce		json
//	@Success		200	{object}	pulsesdk.PortfolioResponse	"projects, credits"
//	@Failure		401	{object}	pulsesdk.ErrorResponse		"error, error_description"
//	@Failure		500	{object}	pulsesdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/pro/projects [get].
func (h *ProProjectsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	email, ok := ctx.Value(httpx.CtxKeyUserEmail).(string)
	if !ok || email == "" {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "Authentication required")
		return
	}

	portfolio, err := h.ProjectService.ListByBroker(ctx, email)
	if err != nil {
		log.Error("failed to list projects", "broker_email", email, "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Failed to list projects")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, pulsesdk.PortfolioResponse{
		Projects: toProjectInfos(portfolio.Projects, true),
		Credits:  portfolio.Credits,
	})
}

// HandleCreate godoc
//
//	@Summary		Create a project from the dashboard
//	@Description	Creates a project owned by the authenticated professional and debits one wallet credit. The broker email always comes from the session, never from the body.
//	@Tags			Dashboard
//	@Accept			json
//	@Produce		json
//	@Param			request	body		pulsesdk.CreateProjectRequest	true	"Project to create (broker_email is ignored)"
//	@Success		201		{object}	pulsesdk.CreateProjectResponse	"project, steps, track_url"
//	@Failure		400		{object}	pulsesdk.ErrorResponse			"error, error_description"
//	@Failure		401		{object}	pulsesdk.ErrorResponse			"error, error_description"
//	@Failure		402		{object}	pulsesdk.ErrorResponse			"error, error_description"
//	@Failure		500		{object}	pulsesdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/pro/projects [post].
func (h *ProProjectsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	email, ok := ctx.Value(httpx.CtxKeyUserEmail).(string)
	if !ok || email == "" {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "Authentication required")
		return
	}

	var req pulsesdk.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	project, err := h.ProjectService.CreateProject(ctx, service.CreateProjectInput{
		ClientName:   req.ClientName,
		BrokerEmail:  email,
		PropertyName: req.PropertyName,
		Category:     domain.Category(req.Category),
		DriveFolder:  req.DriveFolder,
		ChargeWallet: true,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "client_name is required")
		case errors.Is(err, domain.ErrUnknownCategory):
			httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Unknown project category")
		case errors.Is(err, service.ErrNoCredits):
			httpx.WriteError(w, http.StatusPaymentRequired, "no_credits",
				"No creation credits left on this account")
		default:
			log.Error("failed to create project", "broker_email", email, "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Failed to create project")
		}
		return
	}

	view, err := h.ProjectService.Track(ctx, project.AccessToken)
	if err != nil {
		log.Error("failed to load created project", "project_id", project.ID, "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Failed to load created project")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, pulsesdk.CreateProjectResponse{
		Project:  toProjectInfo(project, true),
		Steps:    toStepInfos(view.Steps),
		TrackURL: fmt.Sprintf("%s/v1/track/%s", h.BaseURL, url.PathEscape(project.AccessToken)),
	})
}
