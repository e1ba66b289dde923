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

type AdminCreateProjectHandler struct {
	ProjectService *service.ProjectService
	BaseURL        string
}

// ServeHTTP godoc
//
//	@Summary		Create a project
//	@Description	Creates a project from a category's step template and returns the generated access token. This is the back-office surface; it never debits a wallet.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body		pulsesdk.CreateProjectRequest	true	"Project to create"
//	@Success		201		{object}	pulsesdk.CreateProjectResponse	"project, steps, track_url"
//	@Failure		400		{object}	pulsesdk.ErrorResponse			"error, error_description"
//	@Failure		401		{object}	pulsesdk.ErrorResponse			"error, error_description"
//	@Failure		500		{object}	pulsesdk.ErrorResponse			"error, error_description"
//	@Security		AdminAuth
//	@Router			/v1/admin/projects [post].
func (h *AdminCreateProjectHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req pulsesdk.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	project, err := h.ProjectService.CreateProject(ctx, service.CreateProjectInput{
		ClientName:   req.ClientName,
		BrokerEmail:  req.BrokerEmail,
		PropertyName: req.PropertyName,
		Category:     domain.Category(req.Category),
		DriveFolder:  req.DriveFolder,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			httpx.WriteError(w, http.StatusBadRequest, "invalid_request",
				"client_name and broker_email are required")
		case errors.Is(err, domain.ErrUnknownCategory):
			httpx.WriteError(w, http.StatusBadRequest, "invalid_request",
				"Unknown project category")
		default:
			log.Error("failed to create project", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "server_error",
				"Failed to create project")
		}
		return
	}

	view, err := h.ProjectService.Track(ctx, project.AccessToken)
	if err != nil {
		log.Error("failed to load created project", "project_id", project.ID, "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error",
			"Failed to load created project")
		return
	}

	response := pulsesdk.CreateProjectResponse{
		Project:  toProjectInfo(project, true),
		Steps:    toStepInfos(view.Steps),
		TrackURL: fmt.Sprintf("%s/v1/track/%s", h.BaseURL, url.PathEscape(project.AccessToken)),
	}

	httpx.WriteJSON(w, http.StatusCreated, response)
}

type AdminGrantCreditsHandler struct {
	ProjectService *service.ProjectService
}

// ServeHTTP godoc
//
//	@Summary		Grant creation credits
//	@Description	Tops up a professional's wallet. Credits are debited one per project created through the pro dashboard.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body	pulsesdk.GrantCreditsRequest	true	"Wallet top-up"
//	@Success		204		"Credits granted"
//	@Failure		400		{object}	pulsesdk.ErrorResponse	"error, error_description"
//	@Failure		401		{object}	pulsesdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	pulsesdk.ErrorResponse	"error, error_description"
//	@Security		AdminAuth
//	@Router			/v1/admin/credits [post].
func (h *AdminGrantCreditsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req pulsesdk.GrantCreditsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	if err := h.ProjectService.GrantCredits(ctx, req.BrokerEmail, req.Credits); err != nil {
		if errors.Is(err, service.ErrMissingFields) {
			httpx.WriteError(w, http.StatusBadRequest, "invalid_request",
				"broker_email and a positive credits amount are required")
			return
		}
		log.Error("failed to grant credits", "broker_email", req.BrokerEmail, "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error",
			"Failed to grant credits")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
