package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"luvo_backend/internal/logger"
	"luvo_backend/internal/middleware"
	"luvo_backend/internal/validator"
	"luvo_backend/pkg/apperrors"
)

type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{validator: v}
}

// CurrentUserID reads the authenticated user id placed on the context
// by the auth middleware.
func (h *BaseHandler) CurrentUserID(c *gin.Context) (string, bool) {
	val, ok := c.Get(middleware.ContextUserIDKey)
	if !ok {
		Fail(c, http.StatusUnauthorized, "Authentication required")
		return "", false
	}
	userID, ok := val.(string)
	if !ok || userID == "" {
		Fail(c, http.StatusUnauthorized, "Authentication required")
		return "", false
	}
	return userID, true
}

func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBindJSON(obj); err != nil {
		logger.CtxWithError(ctx, "failed to bind request body", err, "path", c.Request.URL.Path)
		Fail(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return false
	}

	if err := h.validator.Validate(obj); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			logger.CtxWarn(ctx, "validation failed", "errors", vErr.Errors, "path", c.Request.URL.Path)
			Fail(c, http.StatusBadRequest, vErr.Error())
		} else {
			logger.CtxWithError(ctx, "validator error", err, "path", c.Request.URL.Path)
			Fail(c, http.StatusInternalServerError, "Internal server error")
		}
		return false
	}
	return true
}

func (h *BaseHandler) BindQuery(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		Fail(c, http.StatusBadRequest, "Invalid query parameters: "+err.Error())
		return false
	}
	return true
}

// HandleServiceError maps an AppError onto the envelope; anything else
// becomes a 500 with a generic message.
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) {
		if appErr.HTTPCode >= http.StatusInternalServerError {
			logger.CtxWithError(c.Request.Context(), "internal error", err, "path", c.Request.URL.Path)
			Fail(c, appErr.HTTPCode, "Internal server error")
			return
		}
		Fail(c, appErr.HTTPCode, appErr.Message)
		return
	}

	logger.CtxWithError(c.Request.Context(), "unhandled error", err, "path", c.Request.URL.Path)
	Fail(c, http.StatusInternalServerError, "Internal server error")
}

// ParsePagination reads page/page_size query params with defaults.
func (h *BaseHandler) ParsePagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	return page, pageSize
}
