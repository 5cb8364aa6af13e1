package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/selectshop/selectshop-go/internal/middleware"
	"github.com/selectshop/selectshop-go/internal/model"
	"github.com/selectshop/selectshop-go/internal/service"
)

// FolderHandler handles HTTP requests for folders.
type FolderHandler struct {
	service *service.FolderService
}

// NewFolderHandler creates a new FolderHandler.
func NewFolderHandler(svc *service.FolderService) *FolderHandler {
	return &FolderHandler{service: svc}
}

// HandleAddFolders handles POST /api/folders requests.
func (h *FolderHandler) HandleAddFolders(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.FolderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err.Error() == "http: request body too large" {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	created, err := h.service.AddFolders(r.Context(), claims.Subject, req.FolderNames)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFolderNamesRequired):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrUserNotFound):
			writeJSON(w, http.StatusUnauthorized, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// HandleGetFolders handles GET /api/folders requests.
func (h *FolderHandler) HandleGetFolders(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	folders, err := h.service.GetFolders(r.Context(), claims.Subject)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeJSON(w, http.StatusUnauthorized, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, folders)
}

// HandleProductsInFolder handles GET /api/folders/{folderId}/products requests.
func (h *FolderHandler) HandleProductsInFolder(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	folderID, err := strconv.ParseInt(chi.URLParam(r, "folderId"), 10, 64)
	if err != nil || folderID < 1 {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid folder id"))
		return
	}

	params, ok := listParamsFromQuery(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid pagination parameters"))
		return
	}

	page, err := h.service.GetProductsInFolder(r.Context(), claims.Subject, folderID, params)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidSort):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrUserNotFound):
			writeJSON(w, http.StatusUnauthorized, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, page)
}
