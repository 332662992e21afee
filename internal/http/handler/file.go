package handler

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"files-manager/internal/auth"
	"files-manager/internal/files"
	apperrors "files-manager/pkg/errors"
)

type FileHandler struct {
	svc FileService
}

func NewFileHandler(svc FileService) *FileHandler {
	return &FileHandler{svc: svc}
}

type UploadRequest struct {
	Name     string          `json:"name"`
	Type     string          `json:"type"`
	ParentID json.RawMessage `json:"parentId"`
	IsPublic bool            `json:"isPublic"`
	Data     string          `json:"data"`
}

func (h *FileHandler) PostUpload(c echo.Context) error {
	userID, ok := auth.GetUserID(c)
	if !ok {
		return respondError(c, http.StatusUnauthorized, msgUnauthorized)
	}

	var req UploadRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return handleHTTPError(c, err)
	}

	parentID, ok := parseParentID(req.ParentID)
	if !ok {
		return respondError(c, http.StatusBadRequest, msgParentNotFound)
	}

	f, err := h.svc.Upload(c.Request().Context(), userID, files.UploadInput{
		Name:     req.Name,
		Type:     req.Type,
		ParentID: parentID,
		IsPublic: req.IsPublic,
		Data:     req.Data,
	})
	if err != nil {
		return respondFileError(c, err, msgCreateFileFail)
	}

	return c.JSON(http.StatusCreated, newFileView(f))
}

func (h *FileHandler) GetShow(c echo.Context) error {
	userID, ok := auth.GetUserID(c)
	if !ok {
		return respondError(c, http.StatusUnauthorized, msgUnauthorized)
	}

	fileID, err := uuid.Parse(c.Param(paramID))
	if err != nil {
		return respondError(c, http.StatusNotFound, msgNotFound)
	}

	f, err := h.svc.Show(c.Request().Context(), userID, fileID)
	if err != nil {
		return respondFileError(c, err, msgNotFound)
	}

	return c.JSON(http.StatusOK, newFileView(f))
}

func (h *FileHandler) GetIndex(c echo.Context) error {
	userID, ok := auth.GetUserID(c)
	if !ok {
		return respondError(c, http.StatusUnauthorized, msgUnauthorized)
	}

	var parentID *uuid.UUID
	if raw := c.QueryParam(queryParentID); raw != "" && raw != "0" {
		id, err := uuid.Parse(raw)
		if err != nil {
			// an unparseable parent can match nothing
			return c.JSON(http.StatusOK, []FileView{})
		}
		parentID = &id
	}

	page, _ := strconv.Atoi(c.QueryParam(queryPage))

	fs, err := h.svc.List(c.Request().Context(), userID, parentID, page)
	if err != nil {
		return respondFileError(c, err, msgNotFound)
	}

	return c.JSON(http.StatusOK, newFileViews(fs))
}

func (h *FileHandler) PutPublish(c echo.Context) error {
	return h.setPublic(c, true)
}

func (h *FileHandler) PutUnpublish(c echo.Context) error {
	return h.setPublic(c, false)
}

func (h *FileHandler) setPublic(c echo.Context, public bool) error {
	userID, ok := auth.GetUserID(c)
	if !ok {
		return respondError(c, http.StatusUnauthorized, msgUnauthorized)
	}

	fileID, err := uuid.Parse(c.Param(paramID))
	if err != nil {
		return respondError(c, http.StatusNotFound, msgNotFound)
	}

	f, err := h.svc.SetPublic(c.Request().Context(), userID, fileID, public)
	if err != nil {
		return respondFileError(c, err, msgNotFound)
	}

	return c.JSON(http.StatusOK, newFileView(f))
}

// GetData streams a file's content, or a thumbnail variant when size is
// given. This is the only endpoint open to anonymous readers, for public
// files.
func (h *FileHandler) GetData(c echo.Context) error {
	fileID, err := uuid.Parse(c.Param(paramID))
	if err != nil {
		return respondError(c, http.StatusNotFound, msgNotFound)
	}

	size, _ := strconv.Atoi(c.QueryParam(querySize))

	requesterID := auth.GetOptionalUserID(c)
	data, f, err := h.svc.Content(c.Request().Context(), requesterID, fileID, size)
	if err != nil {
		return respondFileError(c, err, msgNotFound)
	}

	contentType := mime.TypeByExtension(filepath.Ext(f.Name))
	if contentType == "" {
		contentType = defaultContentType
	}

	return c.Blob(http.StatusOK, contentType, data)
}

// parseParentID reads the wire parentId, where absence, null, 0 and "0" all
// mean the root. Returns false for values that are present but not an id.
func parseParentID(raw json.RawMessage) (*uuid.UUID, bool) {
	if len(raw) == 0 || string(raw) == "null" || string(raw) == "0" {
		return nil, true
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, false
	}
	if s == "" || s == "0" {
		return nil, true
	}

	id, err := uuid.Parse(s)
	if err != nil {
		return nil, false
	}

	return &id, true
}

func respondFileError(c echo.Context, err error, fallback string) error {
	var appErr *apperrors.AppError
	msg := fallback
	if errors.As(err, &appErr) {
		msg = appErr.Message
	}

	switch {
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrFolderNoContent):
		return respondError(c, http.StatusBadRequest, msg)
	case errors.Is(err, apperrors.ErrNotFound):
		return respondError(c, http.StatusNotFound, msgNotFound)
	case errors.Is(err, apperrors.ErrUnauthorized):
		return respondError(c, http.StatusUnauthorized, msg)
	default:
		return respondError(c, http.StatusInternalServerError, fallback)
	}
}
