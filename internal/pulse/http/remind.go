package http

import (
	"net/http"

	"github.com/julien-sketch/progressive-pulse/internal/pulse/service"
	"github.com/julien-sketch/progressive-pulse/pkg/httpx"
	"github.com/julien-sketch/progressive-pulse/pkg/pulsesdk"
	"github.com/julien-sketch/progressive-pulse/pkg/slogx"
)

type RemindHandler struct {
	ReminderService *service.ReminderService
}

// ServeHTTP godoc
//
//	@Summary		Trigger a reminder run
//	@Description	Emails every responsible professional one message listing their projects with one-click advance links. Meant to be hit by an external scheduler; the run is synchronous and the full per-recipient outcome comes back in the response.
//	@Tags			Jobs
//	@Produce		json
//	@Success		200	{object}	pulsesdk.RemindResponse	"recipients, sent, outcomes"
//	@Failure		401	{object}	pulsesdk.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	pulsesdk.ErrorResponse	"error, error_description"
//	@Security		AdminAuth
//	@Router			/v1/jobs/remind [post].
func (h *RemindHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	outcomes, err := h.ReminderService.Run(ctx)
	if err != nil {
		log.Error("reminder run failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Reminder run failed")
		return
	}

	response := pulsesdk.RemindResponse{
		Recipients: len(outcomes),
		Outcomes:   make([]pulsesdk.ReminderOutcome, len(outcomes)),
	}
	for i, o := range outcomes {
		if o.OK {
			response.Sent++
		}
		response.Outcomes[i] = pulsesdk.ReminderOutcome{
			Recipient: o.Recipient,
			Projects:  o.Projects,
			OK:        o.OK,
			Retried:   o.Retried,
			Reason:    o.Reason,
		}
	}

	httpx.WriteJSON(w, http.StatusOK, response)
}
