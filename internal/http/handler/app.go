package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// AppHandler serves the operational surface: store liveness and catalog
// counts.
type AppHandler struct {
	db    Pinger
	queue Pinger
	users UserCounter
	files FileCounter
}

func NewAppHandler(db, queue Pinger, users UserCounter, files FileCounter) *AppHandler {
	return &AppHandler{
		db:    db,
		queue: queue,
		users: users,
		files: files,
	}
}

type StatusResponse struct {
	Redis bool `json:"redis"`
	DB    bool `json:"db"`
}

type StatsResponse struct {
	Users int64 `json:"users"`
	Files int64 `json:"files"`
}

func (h *AppHandler) GetStatus(c echo.Context) error {
	ctx := c.Request().Context()
	return c.JSON(http.StatusOK, StatusResponse{
		Redis: h.queue.Alive(ctx),
		DB:    h.db.Alive(ctx),
	})
}

func (h *AppHandler) GetStats(c echo.Context) error {
	ctx := c.Request().Context()

	users, err := h.users.CountUsers(ctx)
	if err != nil {
		return err
	}

	files, err := h.files.CountFiles(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, StatsResponse{Users: users, Files: files})
}
