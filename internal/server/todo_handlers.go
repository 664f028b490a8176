package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mdouchement/todoapp/internal/repository"
)

// todo contains all todo handlers.
type todo struct {
	repository repository.Repository
}

// List renders all the records, most recently created first.
// When the demo repository is active it renders the fixed demonstration pair.
func (h *todo) List(c echo.Context) error {
	todos, err := h.repository.List()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, todos)
}

// Show renders the record for the given id.
func (h *todo) Show(c echo.Context) error {
	todo, err := h.repository.Get(c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, todo)
}

// Create stores a new record from the request payload.
func (h *todo) Create(c echo.Context) error {
	var params repository.CreateParams
	if err := c.Bind(&params); err != nil {
		return err
	}

	todo, err := h.repository.Create(params)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, todo)
}

// Update applies the fields present in the request payload to the record.
func (h *todo) Update(c echo.Context) error {
	var params repository.UpdateParams
	if err := c.Bind(&params); err != nil {
		return err
	}

	todo, err := h.repository.Update(c.Param("id"), params)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, todo)
}

// Delete removes the record for the given id.
func (h *todo) Delete(c echo.Context) error {
	if err := h.repository.Delete(c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Todo removed"})
}
