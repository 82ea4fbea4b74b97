package handler

import (
	"net/http"

	"restaurant-pos/internal/models"
	"restaurant-pos/internal/serializer"
	"restaurant-pos/internal/store"
	"restaurant-pos/internal/util"

	"github.com/gin-gonic/gin"
)

// MenuItemHandler serves /menu-items.
type MenuItemHandler struct {
	base
}

func NewMenuItemHandler(s *store.Store, pageSize int) *MenuItemHandler {
	return &MenuItemHandler{base{Store: s, PageSize: pageSize}}
}

func (h *MenuItemHandler) List(c *gin.Context) {
	p := h.page(c)
	menu, total, err := h.Store.ListMenuItems(c.Request.Context(), p.Page)
	if err != nil {
		storeError(c, err)
		return
	}
	items := make([]serializer.MenuItemResp, 0, len(menu))
	for i := range menu {
		items = append(items, serializer.MenuItem(&menu[i]))
	}
	listResponse(c, items, total, p)
}

func (h *MenuItemHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	m, err := h.Store.GetMenuItem(c.Request.Context(), id)
	if err != nil {
		storeError(c, err)
		return
	}
	util.Success(c, serializer.MenuItem(m))
}

func (h *MenuItemHandler) Create(c *gin.Context) {
	var in serializer.MenuItemInput
	if !bindJSON(c, &in) {
		return
	}
	var m models.MenuItem
	if errs := in.Apply(&m, serializer.Create); errs != nil {
		validationFailed(c, errs)
		return
	}
	if err := h.Store.SaveMenuItem(c.Request.Context(), &m); err != nil {
		storeError(c, err)
		return
	}
	h.respond(c, http.StatusCreated, m.ID)
}

func (h *MenuItemHandler) Update(c *gin.Context) { h.update(c, serializer.Replace) }

func (h *MenuItemHandler) Patch(c *gin.Context) { h.update(c, serializer.Patch) }

func (h *MenuItemHandler) update(c *gin.Context, mode serializer.Mode) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	m, err := h.Store.GetMenuItem(c.Request.Context(), id)
	if err != nil {
		storeError(c, err)
		return
	}
	var in serializer.MenuItemInput
	if !bindJSON(c, &in) {
		return
	}
	if errs := in.Apply(m, mode); errs != nil {
		validationFailed(c, errs)
		return
	}
	if err := h.Store.SaveMenuItem(c.Request.Context(), m); err != nil {
		storeError(c, err)
		return
	}
	h.respond(c, http.StatusOK, m.ID)
}

// Delete also removes every order for the item.
func (h *MenuItemHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.Store.DeleteMenuItem(c.Request.Context(), id); err != nil {
		storeError(c, err)
		return
	}
	util.NoContent(c)
}

// respond reloads the item so the course name reflects main_course_id.
func (h *MenuItemHandler) respond(c *gin.Context, status int, id uint) {
	m, err := h.Store.GetMenuItem(c.Request.Context(), id)
	if err != nil {
		storeError(c, err)
		return
	}
	reply(c, status, serializer.MenuItem(m))
}
