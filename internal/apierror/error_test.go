package apierror_test

import (
	"net/http"
	"testing"

	"github.com/mdouchement/todoapp/internal/apierror"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	err := apierror.New("some message")

	assert.Equal(t, "some message", err.Error())
	assert.Equal(t, http.StatusInternalServerError, apierror.StatusCode(err))
}

func TestStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, apierror.StatusCode(apierror.NotFound("Todo not found")))
	assert.Equal(t, http.StatusServiceUnavailable, apierror.StatusCode(apierror.ServiceUnavailable("Database not connected")))
	assert.Equal(t, http.StatusInternalServerError, apierror.StatusCode(errors.New("boom")))
}

func TestValidation(t *testing.T) {
	err := apierror.Validation([]string{"Title is required", "Priority must be low, medium or high"})

	assert.Equal(t, http.StatusBadRequest, apierror.StatusCode(err))
	assert.Equal(t, "Title is required, Priority must be low, medium or high", err.Error())
}
