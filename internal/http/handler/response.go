package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"files-manager/internal/domain/file"
)

// FileView is the wire shape of a file record. ParentID renders as the
// literal 0 for root-level entries and as the parent's id otherwise,
// matching what API clients already expect.
type FileView struct {
	ID       string      `json:"id"`
	UserID   string      `json:"userId"`
	Name     string      `json:"name"`
	Type     string      `json:"type"`
	IsPublic bool        `json:"isPublic"`
	ParentID interface{} `json:"parentId"`
}

func newFileView(f *file.File) FileView {
	v := FileView{
		ID:       f.ID.String(),
		UserID:   f.UserID.String(),
		Name:     f.Name,
		Type:     string(f.Type),
		IsPublic: f.IsPublic,
		ParentID: rootParentWire,
	}
	if f.ParentID != nil {
		v.ParentID = f.ParentID.String()
	}
	return v
}

func newFileViews(fs []*file.File) []FileView {
	views := make([]FileView, 0, len(fs))
	for _, f := range fs {
		views = append(views, newFileView(f))
	}
	return views
}

func respondError(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]string{jsonKeyError: message})
}

func handleHTTPError(c echo.Context, err error) error {
	if he, ok := err.(*echo.HTTPError); ok {
		msg, _ := he.Message.(string)
		if msg == "" {
			msg = http.StatusText(he.Code)
		}
		return respondError(c, he.Code, msg)
	}

	return respondError(c, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}
