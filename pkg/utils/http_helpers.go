package utils

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "requestquote/pkg/errors"
	"requestquote/pkg/types"
	"requestquote/pkg/validation"
)

type HTTPResponse struct {
	Status  bool        `json:"status"`
	Body    interface{} `json:"body,omitempty"`
	Message string      `json:"message"`
}

const (
	DefaultLimit = 50
	MaxLimit     = 500
)

// ParseFilterFromQuery extracts search, sort[field]=dir, filter[field]=value
// and pagination parameters from the query string.
func ParseFilterFromQuery(values url.Values) types.Filter {
	filterReq := types.Filter{
		Sort:   make(map[string]string),
		Filter: make(map[string]interface{}),
		Limit:  DefaultLimit,
		Page:   1,
	}

	if limitStr := values.Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			if l > MaxLimit {
				filterReq.Limit = MaxLimit
			} else {
				filterReq.Limit = l
			}
		}
	}

	if pageStr := values.Get("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			filterReq.Page = p
		}
	}

	if offsetStr := values.Get("offset"); offsetStr != "" {
		if o, err := strconv.Atoi(offsetStr); err == nil && o >= 0 {
			filterReq.Offset = o
		}
	} else {
		filterReq.Offset = (filterReq.Page - 1) * filterReq.Limit
	}

	switch values.Get("withPagination") {
	case "false":
		filterReq.WithPagination = false
	default:
		filterReq.WithPagination = true
	}

	for key, vals := range values {
		if len(vals) == 0 || vals[0] == "" {
			continue
		}

		if key == "search" {
			filterReq.Search = vals[0]
			continue
		}

		if strings.HasPrefix(key, "sort[") && strings.HasSuffix(key, "]") {
			field := key[5 : len(key)-1]
			direction := strings.ToLower(vals[0])
			if direction == "asc" || direction == "desc" {
				filterReq.Sort[field] = direction
			}
			continue
		}

		if strings.HasPrefix(key, "filter[") && strings.HasSuffix(key, "]") {
			field := key[7 : len(key)-1]
			if existing, ok := filterReq.Filter[field]; ok {
				filterReq.Filter[field] = fmt.Sprintf("%v,%s", existing, vals[0])
			} else {
				filterReq.Filter[field] = vals[0]
			}
		}
	}

	return filterReq
}

func SuccessResponse(ctx echo.Context, body interface{}, message string, code int, total ...uint64) error {
	response := &HTTPResponse{Status: true, Message: message}
	if len(total) > 0 {
		filter := ParseFilterFromQuery(ctx.Request().URL.Query())
		if filter.WithPagination {
			totalPages := 0
			if filter.Limit > 0 {
				totalPages = (int(total[0]) + filter.Limit - 1) / filter.Limit
			}
			pagination := types.Pagination{
				TotalCount: total[0],
				Page:       filter.Page,
				Limit:      filter.Limit,
				TotalPages: totalPages,
			}
			response.Body = map[string]interface{}{"list": body, "pagination": pagination}
			return ctx.JSON(code, response)
		}
	}
	response.Body = body
	return ctx.JSON(code, response)
}

// ErrorResponse turns an error into the JSON envelope. HttpError instances
// keep their status and user message; validation errors become a 400 with
// the offending field; everything else is logged in full and surfaced as a
// generic 500 so storage details never leak to the caller.
func ErrorResponse(c echo.Context, err error, logger *zap.Logger) error {
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		if httpErr.Err != nil {
			logger.Error("http error",
				zap.Int("code", httpErr.Code),
				zap.String("message", httpErr.Message),
				zap.Error(httpErr.Err),
				zap.Any("context", httpErr.Context),
			)
		}
		response := map[string]interface{}{
			"status":  false,
			"message": httpErr.Message,
		}
		if httpErr.Details != nil {
			response["body"] = httpErr.Details
		}
		return c.JSON(httpErr.Code, response)
	}

	var fieldErr *validation.FieldError
	if errors.As(err, &fieldErr) {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  false,
			"message": fieldErr.Message,
			"body":    fieldErr,
		})
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var msgs []string
		for _, e := range validationErrors {
			msgs = append(msgs, fmt.Sprintf("field '%s' failed rule '%s'", e.Field(), e.Tag()))
		}
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  false,
			"message": "validation failed: " + strings.Join(msgs, "; "),
		})
	}

	code := apperrors.StatusForError(err)
	if code == http.StatusInternalServerError {
		logger.Error("unexpected error", zap.Error(err))
		return c.JSON(code, map[string]interface{}{
			"status":  false,
			"message": "internal server error",
		})
	}
	return c.JSON(code, map[string]interface{}{
		"status":  false,
		"message": err.Error(),
	})
}
