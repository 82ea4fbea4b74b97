package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"restaurant-pos/internal/store"
	"restaurant-pos/internal/util"

	"github.com/gin-gonic/gin"
)

const maxPageSize = 1000

// base carries what every resource handler needs.
type base struct {
	Store    *store.Store
	PageSize int
}

// ---------- request helpers ----------

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid id")
		return 0, false
	}
	return uint(id), true
}

func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		util.FieldError(c, http.StatusBadRequest, util.CodeInvalidParam, "malformed request body",
			util.FieldErrors{"non_field_errors": {err.Error()}})
		return false
	}
	return true
}

type pageInfo struct {
	store.Page
	Number int
	Size   int
}

// page reads ?page=&page_size=, defaulting to the configured size.
func (b *base) page(c *gin.Context) pageInfo {
	number, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if number <= 0 {
		number = 1
	}
	size, err := strconv.Atoi(c.Query("page_size"))
	if err != nil || size <= 0 || size > maxPageSize {
		size = b.PageSize
	}
	return pageInfo{
		Page:   store.Page{Offset: (number - 1) * size, Limit: size},
		Number: number,
		Size:   size,
	}
}

func listResponse(c *gin.Context, items interface{}, total int64, p pageInfo) {
	util.Success(c, util.Response{
		"items": items,
		"total": total,
		"page":  p.Number,
		"size":  p.Size,
	})
}

// ---------- error mapping ----------

func validationFailed(c *gin.Context, errs util.FieldErrors) {
	util.FieldError(c, http.StatusBadRequest, util.CodeInvalidParam, "validation failed", errs)
}

// storeError maps store errors onto replies. Anything unexpected is
// attached to the context for the request logger and reported as 500.
func storeError(c *gin.Context, err error) {
	var fe *store.FieldError
	hasField := errors.As(err, &fe)

	switch {
	case hasField && errors.Is(err, store.ErrDuplicate):
		validationFailed(c, util.FieldErrors{
			fe.Field: {fmt.Sprintf("A record with this %s already exists.", fe.Field)},
		})
	case hasField && errors.Is(err, store.ErrNotFound):
		util.FieldError(c, http.StatusNotFound, util.CodeNotFound, "referenced object not found",
			util.FieldErrors{fe.Field: {"Object with this id does not exist."}})
	case errors.Is(err, store.ErrNotFound):
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "not found")
	default:
		_ = c.Error(err)
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "internal error")
	}
}

// reply writes data with 201 for creations and 200 otherwise.
func reply(c *gin.Context, status int, data interface{}) {
	if status == http.StatusCreated {
		util.Created(c, data)
		return
	}
	util.Success(c, data)
}
