package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	domainerr "github.com/amirhossein-jamali/crypto-exchange/internal/domain/error"
	coreport "github.com/amirhossein-jamali/crypto-exchange/internal/domain/port/core"
	"github.com/amirhossein-jamali/crypto-exchange/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/crypto-exchange/internal/infrastructure/adapter/requestid"
	"github.com/gin-gonic/gin"
)

// statusFor maps domain errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case domainerr.IsValidationError(err), domainerr.IsUniquenessError(err):
		return http.StatusBadRequest
	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// respondError logs err and writes the failure envelope
func respondError(c *gin.Context, logger coreport.Logger, operation string, err error) {
	status := statusFor(err)

	fields := map[string]any{
		"operation":  operation,
		"path":       c.Request.URL.Path,
		"status":     status,
		"error":      err.Error(),
		"request_id": requestid.FromContext(c.Request.Context()),
	}
	var lf coreport.LogFielder
	if errors.As(err, &lf) {
		for k, v := range lf.LogFields() {
			fields[k] = v
		}
	}

	resp := dto.ErrorResponse{
		Code:  domainerr.ErrorCode(err),
		Error: err.Error(),
	}
	if status == http.StatusInternalServerError {
		logger.Error("Request failed", fields)
		resp.Message = "Internal server error"
	} else {
		logger.Warn("Request rejected", fields)
		resp.Message = capitalize(err.Error())
	}

	c.AbortWithStatusJSON(status, resp)
}

// bindJSON decodes the body into req, answering 400 on malformed or incomplete input
func bindJSON(c *gin.Context, logger coreport.Logger, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		logger.Warn("Invalid request format", map[string]any{
			"path":  c.Request.URL.Path,
			"error": err.Error(),
		})
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.CodeValidation,
			Message: "Invalid request format",
			Error:   err.Error(),
		})
		return false
	}
	return true
}

// pathID parses a positive integer path parameter, answering 400 otherwise
func pathID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.CodeInvalidID,
			Message: "Invalid " + name + " format",
			Error:   domainerr.ErrInvalidID.Error(),
		})
		return 0, false
	}
	return id, true
}

// queryUint parses an optional positive integer query parameter; absent means zero
func queryUint(c *gin.Context, name string) (uint64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.CodeInvalidID,
			Message: "Invalid " + name + " parameter",
			Error:   err.Error(),
		})
		return 0, false
	}
	return id, true
}

// queryInt parses an optional non-negative integer query parameter; absent means zero
func queryInt(c *gin.Context, name string) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.CodeValidation,
			Message: "Invalid " + name + " parameter",
			Error:   name + " must be a non-negative integer",
		})
		return 0, false
	}
	return n, true
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
