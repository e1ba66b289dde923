package http

import (
	"errors"
	"net/http"

	"github.com/julien-sketch/progressive-pulse/internal/pulse/service"
	"github.com/julien-sketch/progressive-pulse/pkg/httpx"
	"github.com/julien-sketch/progressive-pulse/pkg/pulsesdk"
	"github.com/julien-sketch/progressive-pulse/pkg/slogx"
)

type TrackHandler struct {
	ProjectService *service.ProjectService
}

// ServeHTTP godoc
//
//	@Summary		Client tracking view
//	@Description	Returns the read-only tracking state for one access token: project status, the full step list, and uploaded documents. The token in the URL is the entire access model; unknown tokens return 404 with no further distinction.
//	@Tags			Tracking
//	@Produce		json
//	@Param			token	path		string					true	"Project access token"
//	@Success		200		{object}	pulsesdk.TrackResponse	"project, steps, documents"
//	@Failure		404		{object}	pulsesdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	pulsesdk.ErrorResponse	"error, error_description"
//	@Router			/v1/track/{token} [get].
func (h *TrackHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	view, err := h.ProjectService.Track(ctx, r.PathValue("token"))
	if err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "not_found", "No project matches this link")
			return
		}
		log.Error("failed to load tracking view", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Failed to load project")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, pulsesdk.TrackResponse{
		Project:   toProjectInfo(view.Project, false),
		Steps:     toStepInfos(view.Steps),
		Documents: toDocumentInfos(view.Documents),
	})
}
