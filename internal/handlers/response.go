package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"contractdesk/internal/store"
	"contractdesk/models"
)

// Envelope is the uniform response body of every operation: code 200 means
// success, anything else carries a human-readable message and a nil data
// field.
type Envelope struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Envelope{Code: http.StatusOK, Message: "success", Data: data})
}

// respondError maps the domain error taxonomy onto envelope codes:
// NotFound 404, Conflict/Validation 400, bad credentials 401. Anything
// unrecognized is a 500 and gets logged.
func respondError(c *gin.Context, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, models.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, models.ErrConflict), errors.Is(err, models.ValidationError{}):
		code = http.StatusBadRequest
	case errors.Is(err, models.ErrInvalidCredentials):
		code = http.StatusUnauthorized
	}
	if code == http.StatusInternalServerError {
		slog.Error("Unhandled service error", "error", err, "path", c.FullPath())
		c.JSON(code, Envelope{Code: code, Message: "internal error", Data: nil})
		return
	}
	c.JSON(code, Envelope{Code: code, Message: err.Error(), Data: nil})
}

func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Envelope{Code: http.StatusBadRequest, Message: message, Data: nil})
}

// listQuery reads the shared filter spec from the query string. String ids
// and page params are normalized here; malformed numbers degrade to the
// no-restriction zero value.
func listQuery(c *gin.Context) store.Query {
	var q store.Query
	q.Keyword = c.Query("keyword")
	q.Status = c.Query("status")
	q.DepartmentID, _ = strconv.ParseInt(c.Query("departmentId"), 10, 64)
	q.PageNum, _ = strconv.Atoi(c.DefaultQuery("pageNum", strconv.Itoa(store.DefaultPageNum)))
	q.PageSize, _ = strconv.Atoi(c.DefaultQuery("pageSize", strconv.Itoa(store.DefaultPageSize)))
	return q
}

// pathID normalizes the :id path segment to an integer.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "invalid id")
		return 0, false
	}
	return id, true
}
