package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rajank18/prograde/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
)

func serveError(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/fail", func(c *gin.Context) {
		HandleAPIError(c, err)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fail", nil))
	return w
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"course not found", apperrors.ErrCourseNotFound, http.StatusNotFound},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden},
		{"not a faculty account", apperrors.ErrNotFacultyRow, http.StatusForbidden},
		{"faculty not assigned", apperrors.ErrFacultyNotAssigned, http.StatusForbidden},
		{"file missing", apperrors.ErrFileMissing, http.StatusBadRequest},
		{"decode failure", fmt.Errorf("%w: bad quoting", apperrors.ErrDecodeFailed), http.StatusInternalServerError},
		{"store failure", fmt.Errorf("%w: connection refused", apperrors.ErrStoreFailure), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serveError(tt.err)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
