package handler

import (
	"net/http"

	"restaurant-pos/internal/models"
	"restaurant-pos/internal/serializer"
	"restaurant-pos/internal/store"
	"restaurant-pos/internal/util"

	"github.com/gin-gonic/gin"
)

// DayBookHandler serves /day-books.
type DayBookHandler struct {
	base
}

func NewDayBookHandler(s *store.Store, pageSize int) *DayBookHandler {
	return &DayBookHandler{base{Store: s, PageSize: pageSize}}
}

func (h *DayBookHandler) List(c *gin.Context) {
	p := h.page(c)
	entries, total, err := h.Store.ListDayBooks(c.Request.Context(), p.Page)
	if err != nil {
		storeError(c, err)
		return
	}
	items := make([]serializer.DayBookResp, 0, len(entries))
	for i := range entries {
		items = append(items, serializer.DayBook(&entries[i]))
	}
	listResponse(c, items, total, p)
}

func (h *DayBookHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	e, err := h.Store.GetDayBook(c.Request.Context(), id)
	if err != nil {
		storeError(c, err)
		return
	}
	util.Success(c, serializer.DayBook(e))
}

func (h *DayBookHandler) Create(c *gin.Context) {
	var in serializer.DayBookInput
	if !bindJSON(c, &in) {
		return
	}
	var e models.DayBook
	if errs := in.Apply(&e, serializer.Create); errs != nil {
		validationFailed(c, errs)
		return
	}
	if err := h.Store.SaveDayBook(c.Request.Context(), &e); err != nil {
		storeError(c, err)
		return
	}
	util.Created(c, serializer.DayBook(&e))
}

func (h *DayBookHandler) Update(c *gin.Context) { h.update(c, serializer.Replace) }

func (h *DayBookHandler) Patch(c *gin.Context) { h.update(c, serializer.Patch) }

// update keeps bill_date: it has no input field.
func (h *DayBookHandler) update(c *gin.Context, mode serializer.Mode) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	e, err := h.Store.GetDayBook(c.Request.Context(), id)
	if err != nil {
		storeError(c, err)
		return
	}
	var in serializer.DayBookInput
	if !bindJSON(c, &in) {
		return
	}
	if errs := in.Apply(e, mode); errs != nil {
		validationFailed(c, errs)
		return
	}
	if err := h.Store.SaveDayBook(c.Request.Context(), e); err != nil {
		storeError(c, err)
		return
	}
	reply(c, http.StatusOK, serializer.DayBook(e))
}

func (h *DayBookHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.Store.DeleteDayBook(c.Request.Context(), id); err != nil {
		storeError(c, err)
		return
	}
	util.NoContent(c)
}
