package http

import (
	"errors"
	"net/http"

	"github.com/julien-sketch/progressive-pulse/internal/pulse/service"
	"github.com/julien-sketch/progressive-pulse/pkg/httpx"
	"github.com/julien-sketch/progressive-pulse/pkg/pulsesdk"
	"github.com/julien-sketch/progressive-pulse/pkg/slogx"
)

// maxUploadBytes bounds a single document upload (25 MiB, matching the mail
// attachment ceiling most providers enforce).
const maxUploadBytes = 25 << 20

type DocumentUploadHandler struct {
	DocumentService *service.DocumentService
}

// ServeHTTP godoc
//
//	@Summary		Upload a document
//	@Description	Stores one file against the project behind the access token. Multipart form with a single "file" field. Possession of the token is the whole access model.
//	@Tags			Tracking
//	@Accept			mpfd
//	@Produce		json
//	@Param			token	path		string						true	"Project access token"
//	@Param			file	formData	file						true	"File to upload"
//	@Success		201		{object}	pulsesdk.DocumentInfo		"Stored document"
//	@Failure		400		{object}	pulsesdk.ErrorResponse		"error, error_description"
//	@Failure		404		{object}	pulsesdk.ErrorResponse		"error, error_description"
//	@Failure		500		{object}	pulsesdk.ErrorResponse		"error, error_description"
//	@Router			/v1/track/{token}/documents [post].
func (h *DocumentUploadHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request",
			"Expected a multipart form with a file field")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "file field is required")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	doc, err := h.DocumentService.Upload(ctx, r.PathValue("token"),
		header.Filename, contentType, file, header.Size)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyUpload):
			httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Uploaded file is empty")
		case errors.Is(err, service.ErrProjectNotFound):
			httpx.WriteError(w, http.StatusNotFound, "not_found", "No project matches this link")
		default:
			log.Error("document upload failed", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Failed to store document")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, pulsesdk.DocumentInfo{
		ID:          doc.ID,
		FileName:    doc.FileName,
		ContentType: doc.ContentType,
		SizeBytes:   doc.SizeBytes,
		CreatedAt:   doc.CreatedAt,
	})
}

type DocumentListHandler struct {
	ProjectService *service.ProjectService
}

// ServeHTTP godoc
//
//	@Summary		List uploaded documents
//	@Description	Lists the documents uploaded against the project behind the access token, newest first.
//	@Tags			Tracking
//	@Produce		json
//	@Param			token	path		string					true	"Project access token"
//	@Success		200		{array}		pulsesdk.DocumentInfo	"Documents"
//	@Failure		404		{object}	pulsesdk.ErrorResponse	"error, error_description"
//	@Failure		500		{object}	pulsesdk.ErrorResponse	"error, error_description"
//	@Router			/v1/track/{token}/documents [get].
func (h *DocumentListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	view, err := h.ProjectService.Track(ctx, r.PathValue("token"))
	if err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "not_found", "No project matches this link")
			return
		}
		log.Error("failed to list documents", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Failed to list documents")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toDocumentInfos(view.Documents))
}
