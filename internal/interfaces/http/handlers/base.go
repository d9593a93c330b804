package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/techzone/backend/internal/domain/shared"
	"github.com/techzone/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// BaseHandler carries shared response helpers for all handlers
type BaseHandler struct {
	log *zap.Logger
}

// NewBaseHandler creates a BaseHandler
func NewBaseHandler(log *zap.Logger) BaseHandler {
	return BaseHandler{log: log}
}

// Success writes a 200 envelope
func (h *BaseHandler) Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, dto.OK(data))
}

// Created writes a 201 envelope
func (h *BaseHandler) Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, dto.OK(data))
}

// NoContent writes a 200 envelope with a message only
func (h *BaseHandler) NoContent(c *gin.Context, message string) {
	c.JSON(http.StatusOK, dto.OKMessage(message))
}

// BadRequest writes a 400 envelope for binding failures. Validator
// errors are flattened into one message per failing field.
func (h *BaseHandler) BadRequest(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		messages := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			messages = append(messages,
				fmt.Sprintf("%s failed on the %q rule", strings.ToLower(fe.Field()), fe.Tag()))
		}
		c.JSON(http.StatusBadRequest, dto.Error("Validation failed", messages...))
		return
	}
	c.JSON(http.StatusBadRequest, dto.Error("Invalid request", err.Error()))
}

// HandleError maps an error onto the envelope and status code.
// Unexpected errors are logged and hidden behind a generic message.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	status := dto.StatusFor(err)
	if status == http.StatusInternalServerError {
		h.log.Error("request failed",
			zap.String("path", c.FullPath()),
			zap.String("method", c.Request.Method),
			zap.Error(err),
		)
		c.JSON(status, dto.Error("Internal server error"))
		return
	}
	c.JSON(status, dto.Error(err.Error()))
}

// PathUUID parses a uuid path parameter, writing 400 on failure
func (h *BaseHandler) PathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("Invalid "+name))
		return uuid.Nil, false
	}
	return id, true
}

// queryFilter builds a shared.Filter from the standard query params
func queryFilter(c *gin.Context) shared.Filter {
	filter := shared.DefaultFilter()
	if page, err := strconv.Atoi(c.Query("page")); err == nil && page > 0 {
		filter.Page = page
	}
	if size, err := strconv.Atoi(c.Query("page_size")); err == nil && size > 0 && size <= 100 {
		filter.PageSize = size
	}
	if search := c.Query("search"); search != "" {
		filter.Search = search
	}
	if orderBy := c.Query("sort_by"); orderBy != "" {
		filter.OrderBy = orderBy
	}
	if dir := c.Query("sort_dir"); dir == "asc" || dir == "desc" {
		filter.OrderDir = dir
	}
	return filter
}
