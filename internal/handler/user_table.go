package handler

import (
	"net/http"

	"restaurant-pos/internal/models"
	"restaurant-pos/internal/serializer"
	"restaurant-pos/internal/store"
	"restaurant-pos/internal/util"

	"github.com/gin-gonic/gin"
)

// UserTableHandler serves /user-tables.
type UserTableHandler struct {
	base
}

func NewUserTableHandler(s *store.Store, pageSize int) *UserTableHandler {
	return &UserTableHandler{base{Store: s, PageSize: pageSize}}
}

func (h *UserTableHandler) List(c *gin.Context) {
	p := h.page(c)
	tables, total, err := h.Store.ListTables(c.Request.Context(), p.Page)
	if err != nil {
		storeError(c, err)
		return
	}

	ids := make([]uint, 0, len(tables))
	for i := range tables {
		ids = append(ids, tables[i].ID)
	}
	counts, err := h.Store.OrderCounts(c.Request.Context(), ids)
	if err != nil {
		storeError(c, err)
		return
	}

	items := make([]serializer.UserTableResp, 0, len(tables))
	for i := range tables {
		items = append(items, serializer.UserTable(&tables[i], counts[tables[i].ID]))
	}
	listResponse(c, items, total, p)
}

func (h *UserTableHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	t, err := h.Store.GetTable(c.Request.Context(), id)
	if err != nil {
		storeError(c, err)
		return
	}
	h.respond(c, http.StatusOK, t)
}

func (h *UserTableHandler) Create(c *gin.Context) {
	var in serializer.UserTableInput
	if !bindJSON(c, &in) {
		return
	}
	var t models.UserTable
	if errs := in.Apply(&t, serializer.Create); errs != nil {
		validationFailed(c, errs)
		return
	}
	if err := h.Store.SaveTable(c.Request.Context(), &t); err != nil {
		storeError(c, err)
		return
	}
	h.respond(c, http.StatusCreated, &t)
}

// Update replaces every writable field (PUT).
func (h *UserTableHandler) Update(c *gin.Context) { h.update(c, serializer.Replace) }

// Patch changes only the supplied fields (PATCH).
func (h *UserTableHandler) Patch(c *gin.Context) { h.update(c, serializer.Patch) }

func (h *UserTableHandler) update(c *gin.Context, mode serializer.Mode) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	t, err := h.Store.GetTable(c.Request.Context(), id)
	if err != nil {
		storeError(c, err)
		return
	}
	var in serializer.UserTableInput
	if !bindJSON(c, &in) {
		return
	}
	if errs := in.Apply(t, mode); errs != nil {
		validationFailed(c, errs)
		return
	}
	if err := h.Store.SaveTable(c.Request.Context(), t); err != nil {
		storeError(c, err)
		return
	}
	h.respond(c, http.StatusOK, t)
}

func (h *UserTableHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.Store.DeleteTable(c.Request.Context(), id); err != nil {
		storeError(c, err)
		return
	}
	util.NoContent(c)
}

func (h *UserTableHandler) respond(c *gin.Context, status int, t *models.UserTable) {
	counts, err := h.Store.OrderCounts(c.Request.Context(), []uint{t.ID})
	if err != nil {
		storeError(c, err)
		return
	}
	reply(c, status, serializer.UserTable(t, counts[t.ID]))
}
