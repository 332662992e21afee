package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"files-manager/internal/auth"
	"files-manager/internal/domain/file"
	"files-manager/internal/files"
	apperrors "files-manager/pkg/errors"
)

type fakeFileService struct {
	files   map[uuid.UUID]*file.File
	content map[uuid.UUID][]byte
}

func newFakeFileService() *fakeFileService {
	return &fakeFileService{
		files:   make(map[uuid.UUID]*file.File),
		content: make(map[uuid.UUID][]byte),
	}
}

func (s *fakeFileService) Upload(_ context.Context, ownerID uuid.UUID, input files.UploadInput) (*file.File, error) {
	if input.Name == "" {
		return nil, apperrors.Validation("Missing name")
	}
	fileType := file.Type(input.Type)
	if !fileType.Valid() {
		return nil, apperrors.Validation("Missing type")
	}
	f := &file.File{
		ID:       uuid.New(),
		UserID:   ownerID,
		Name:     input.Name,
		Type:     fileType,
		IsPublic: input.IsPublic,
		ParentID: input.ParentID,
	}
	s.files[f.ID] = f
	return f, nil
}

func (s *fakeFileService) Show(_ context.Context, requesterID, fileID uuid.UUID) (*file.File, error) {
	f, ok := s.files[fileID]
	if !ok || f.UserID != requesterID {
		return nil, apperrors.NotFound("Not found")
	}
	return f, nil
}

func (s *fakeFileService) List(_ context.Context, requesterID uuid.UUID, parentID *uuid.UUID, _ int) ([]*file.File, error) {
	var out []*file.File
	for _, f := range s.files {
		if f.UserID != requesterID {
			continue
		}
		if (parentID == nil) != (f.ParentID == nil) {
			continue
		}
		if parentID != nil && *f.ParentID != *parentID {
			continue
		}
		out = append(out, f)
	}
	return out, nil
}

func (s *fakeFileService) SetPublic(_ context.Context, requesterID, fileID uuid.UUID, public bool) (*file.File, error) {
	f, err := s.Show(context.Background(), requesterID, fileID)
	if err != nil {
		return nil, err
	}
	f.IsPublic = public
	return f, nil
}

func (s *fakeFileService) Content(_ context.Context, requesterID *uuid.UUID, fileID uuid.UUID, _ int) ([]byte, *file.File, error) {
	f, ok := s.files[fileID]
	if !ok {
		return nil, nil, apperrors.NotFound("Not found")
	}
	if !f.IsPublic && (requesterID == nil || *requesterID != f.UserID) {
		return nil, nil, apperrors.NotFound("Not found")
	}
	if f.IsFolder() {
		return nil, nil, apperrors.FolderNoContent()
	}
	return s.content[fileID], f, nil
}

func uploadRequest(t *testing.T, h *FileHandler, userID uuid.UUID, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/files", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(auth.ContextKeyUserID, userID)
	require.NoError(t, h.PostUpload(c))
	return rec
}

func TestFileUpload(t *testing.T) {
	h := NewFileHandler(newFakeFileService())

	rec := uploadRequest(t, h, uuid.New(), `{"name":"notes.txt","type":"file","data":"aGVsbG8="}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var view FileView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, "notes.txt", view.Name)
	assert.Equal(t, "file", view.Type)
	assert.False(t, view.IsPublic)
	// root renders as the literal 0
	assert.Equal(t, float64(0), view.ParentID)
}

func TestFileUploadWithParent(t *testing.T) {
	svc := newFakeFileService()
	h := NewFileHandler(svc)
	userID := uuid.New()

	rec := uploadRequest(t, h, userID, `{"name":"images","type":"folder"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var folder FileView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &folder))

	rec = uploadRequest(t, h, userID, `{"name":"photo.png","type":"image","data":"aGVsbG8=","parentId":"`+folder.ID+`"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var child FileView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &child))
	assert.Equal(t, folder.ID, child.ParentID)
}

func TestFileUploadValidation(t *testing.T) {
	h := NewFileHandler(newFakeFileService())

	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{"missing name", `{"type":"file","data":"aGVsbG8="}`, "Missing name"},
		{"missing type", `{"name":"notes.txt","data":"aGVsbG8="}`, "Missing type"},
		{"garbage parentId", `{"name":"notes.txt","type":"file","data":"aGVsbG8=","parentId":["x"]}`, "Parent not found"},
		{"malformed parent uuid", `{"name":"notes.txt","type":"file","data":"aGVsbG8=","parentId":"not-a-uuid"}`, "Parent not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := uploadRequest(t, h, uuid.New(), tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantMsg)
		})
	}
}

func TestParseParentID(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name string
		raw  string
		want *uuid.UUID
		ok   bool
	}{
		{"absent", "", nil, true},
		{"null", "null", nil, true},
		{"number zero", "0", nil, true},
		{"string zero", `"0"`, nil, true},
		{"empty string", `""`, nil, true},
		{"uuid", `"` + id.String() + `"`, &id, true},
		{"bad uuid", `"nope"`, nil, false},
		{"array", `[1]`, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseParentID(json.RawMessage(tt.raw))
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFileShowNotOwned(t *testing.T) {
	svc := newFakeFileService()
	owner := uuid.New()
	f, err := svc.Upload(context.Background(), owner, files.UploadInput{Name: "a.txt", Type: "file", Data: "aGVsbG8="})
	require.NoError(t, err)

	h := NewFileHandler(svc)
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames(paramID)
	c.SetParamValues(f.ID.String())
	c.Set(auth.ContextKeyUserID, uuid.New())

	require.NoError(t, h.GetShow(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Not found"}`, rec.Body.String())
}

func TestFileShowBadID(t *testing.T) {
	h := NewFileHandler(newFakeFileService())
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames(paramID)
	c.SetParamValues("not-a-uuid")
	c.Set(auth.ContextKeyUserID, uuid.New())

	require.NoError(t, h.GetShow(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFileIndexUnparseableParent(t *testing.T) {
	h := NewFileHandler(newFakeFileService())
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/files?parentId=garbage", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(auth.ContextKeyUserID, uuid.New())

	require.NoError(t, h.GetIndex(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestFilePublishUnpublish(t *testing.T) {
	svc := newFakeFileService()
	owner := uuid.New()
	f, err := svc.Upload(context.Background(), owner, files.UploadInput{Name: "a.txt", Type: "file", Data: "aGVsbG8="})
	require.NoError(t, err)

	h := NewFileHandler(svc)
	e := echo.New()

	put := func(handler echo.HandlerFunc) FileView {
		req := httptest.NewRequest(http.MethodPut, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames(paramID)
		c.SetParamValues(f.ID.String())
		c.Set(auth.ContextKeyUserID, owner)
		require.NoError(t, handler(c))
		require.Equal(t, http.StatusOK, rec.Code)
		var view FileView
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
		return view
	}

	assert.True(t, put(h.PutPublish).IsPublic)
	assert.False(t, put(h.PutUnpublish).IsPublic)
}

func TestFileGetData(t *testing.T) {
	svc := newFakeFileService()
	owner := uuid.New()
	f, err := svc.Upload(context.Background(), owner, files.UploadInput{Name: "notes.txt", Type: "file", Data: "aGVsbG8="})
	require.NoError(t, err)
	f.IsPublic = true
	svc.content[f.ID] = []byte("hello")

	h := NewFileHandler(svc)
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames(paramID)
	c.SetParamValues(f.ID.String())

	require.NoError(t, h.GetData(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "hello", rec.Body.String())
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/plain")
}

func TestFileGetDataFolder(t *testing.T) {
	svc := newFakeFileService()
	owner := uuid.New()
	f, err := svc.Upload(context.Background(), owner, files.UploadInput{Name: "docs", Type: "folder"})
	require.NoError(t, err)

	h := NewFileHandler(svc)
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames(paramID)
	c.SetParamValues(f.ID.String())
	c.Set(auth.ContextKeyUserID, owner)

	require.NoError(t, h.GetData(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"A folder doesn't have content"}`, rec.Body.String())
}

func TestFileGetDataPrivateAnonymous(t *testing.T) {
	svc := newFakeFileService()
	f, err := svc.Upload(context.Background(), uuid.New(), files.UploadInput{Name: "a.txt", Type: "file", Data: "aGVsbG8="})
	require.NoError(t, err)

	h := NewFileHandler(svc)
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames(paramID)
	c.SetParamValues(f.ID.String())

	require.NoError(t, h.GetData(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Not found"}`, rec.Body.String())
}
