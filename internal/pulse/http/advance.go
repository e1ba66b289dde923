package http

import (
	"errors"
	"fmt"
	"html"
	"net/http"
	"strconv"
	"strings"

	"github.com/julien-sketch/progressive-pulse/internal/pulse/service"
	"github.com/julien-sketch/progressive-pulse/pkg/httpx"
	"github.com/julien-sketch/progressive-pulse/pkg/pulsesdk"
	"github.com/julien-sketch/progressive-pulse/pkg/slogx"
)

type AdvanceHandler struct {
	ProgressService *service.ProgressService
}

// ServeHTTP godoc
//
//	@Summary		Advance a project to a step
//	@Description	Moves the project identified by the access token to the given step. Steps up to the target become complete, later ones incomplete; percent and status update in the same transaction. Returns an HTML confirmation page for email clients, or JSON when requested via the Accept header.
//	@Tags			Progress
//	@Produce		html
//	@Produce		json
//	@Param			token	query		string					true	"Project access token"
//	@Param			step	query		int						true	"Target step (clamped into 1..N)"
//	@Success		200		{object}	pulsesdk.AdvanceResponse	"project, steps"
//	@Failure		400		{object}	pulsesdk.ErrorResponse		"error, error_description"
//	@Failure		404		{object}	pulsesdk.ErrorResponse		"error, error_description"
//	@Failure		500		{object}	pulsesdk.ErrorResponse		"error, error_description"
//	@Router			/v1/advance [get].
func (h *AdvanceHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	wantsJSON := strings.Contains(r.Header.Get("Accept"), "application/json")

	token := r.URL.Query().Get("token")
	stepRaw := r.URL.Query().Get("step")
	step, err := strconv.Atoi(stepRaw)
	if err != nil || token == "" {
		writeAdvanceError(w, wantsJSON, http.StatusBadRequest, "invalid_request",
			"token and a numeric step are required")
		return
	}

	progress, err := h.ProgressService.Advance(ctx, token, step)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStep):
			writeAdvanceError(w, wantsJSON, http.StatusBadRequest, "invalid_request",
				"step must be a positive number")
		case errors.Is(err, service.ErrProjectNotFound):
			writeAdvanceError(w, wantsJSON, http.StatusNotFound, "not_found",
				"No project matches this link")
		case errors.Is(err, service.ErrNoStepsConfigured):
			log.Error("advance on project without steps", "err", err)
			writeAdvanceError(w, wantsJSON, http.StatusInternalServerError, "server_error",
				"Project has no steps configured")
		default:
			log.Error("failed to advance project", "err", err)
			writeAdvanceError(w, wantsJSON, http.StatusInternalServerError, "server_error",
				"Failed to update project")
		}
		return
	}

	if wantsJSON {
		httpx.WriteJSON(w, http.StatusOK, pulsesdk.AdvanceResponse{
			Project: toProjectInfo(progress.Project, false),
			Steps:   toStepInfos(progress.Steps),
		})
		return
	}

	httpx.WriteHTML(w, http.StatusOK, advanceConfirmationPage(progress))
}

func writeAdvanceError(w http.ResponseWriter, wantsJSON bool, code int, errCode, desc string) {
	if wantsJSON {
		httpx.WriteError(w, code, errCode, desc)
		return
	}
	page := fmt.Sprintf(
		`<!doctype html><html lang="fr"><meta charset="utf-8"><body style="font-family:system-ui,sans-serif;background:#f5f5f7;padding:48px;text-align:center"><h1 style="font-size:22px">Lien invalide</h1><p style="color:#555">%s</p></body></html>`,
		html.EscapeString(desc))
	httpx.WriteHTML(w, code, page)
}

// advanceConfirmationPage is what the professional sees after clicking an
// email link: the new status and a check-marked step list, no further action.
func advanceConfirmationPage(p service.Progress) string {
	var b strings.Builder
	b.WriteString(`<!doctype html><html lang="fr"><meta charset="utf-8"><meta name="viewport" content="width=device-width,initial-scale=1">`)
	b.WriteString(`<body style="font-family:system-ui,-apple-system,Segoe UI,Roboto,sans-serif;background:#f5f5f7;margin:0;padding:32px 16px">`)
	b.WriteString(`<div style="max-width:520px;margin:0 auto;background:#fff;border-radius:24px;padding:28px;border:1px solid #eef2f7">`)
	b.WriteString(`<h1 style="margin:0 0 4px;font-size:20px">Dossier mis à jour ✓</h1>`)
	fmt.Fprintf(&b, `<p style="margin:0 0 18px;color:#555;font-weight:600">Client : %s</p>`,
		html.EscapeString(p.Project.ClientName))
	fmt.Fprintf(&b, `<p style="margin:0 0 6px;font-weight:800">%s</p>`,
		html.EscapeString(p.Project.StatusText))
	fmt.Fprintf(&b,
		`<div style="background:#eef2f7;border-radius:999px;height:10px;margin:0 0 18px"><div style="background:#111;border-radius:999px;height:10px;width:%d%%"></div></div>`,
		p.Project.ProgressPercent)

	for _, step := range p.Steps {
		mark, color := "○", "#999"
		if step.Completed {
			mark, color = "●", "#111"
		}
		fmt.Fprintf(&b,
			`<p style="margin:6px 0;color:%s">%s %d. %s</p>`,
			color, mark, step.OrderIndex, html.EscapeString(step.Label))
	}

	b.WriteString(`<p style="margin:18px 0 0;color:#999;font-size:13px">Vous pouvez fermer cette page.</p>`)
	b.WriteString(`</div></body></html>`)
	return b.String()
}
