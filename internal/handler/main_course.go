package handler

import (
	"net/http"

	"restaurant-pos/internal/models"
	"restaurant-pos/internal/serializer"
	"restaurant-pos/internal/store"
	"restaurant-pos/internal/util"

	"github.com/gin-gonic/gin"
)

// MainCourseHandler serves /main-courses.
type MainCourseHandler struct {
	base
}

func NewMainCourseHandler(s *store.Store, pageSize int) *MainCourseHandler {
	return &MainCourseHandler{base{Store: s, PageSize: pageSize}}
}

func (h *MainCourseHandler) List(c *gin.Context) {
	p := h.page(c)
	courses, total, err := h.Store.ListMainCourses(c.Request.Context(), p.Page)
	if err != nil {
		storeError(c, err)
		return
	}

	ids := make([]uint, 0, len(courses))
	for i := range courses {
		ids = append(ids, courses[i].ID)
	}
	counts, err := h.Store.ItemCounts(c.Request.Context(), ids)
	if err != nil {
		storeError(c, err)
		return
	}

	items := make([]serializer.MainCourseResp, 0, len(courses))
	for i := range courses {
		items = append(items, serializer.MainCourse(&courses[i], counts[courses[i].ID]))
	}
	listResponse(c, items, total, p)
}

func (h *MainCourseHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	m, err := h.Store.GetMainCourse(c.Request.Context(), id)
	if err != nil {
		storeError(c, err)
		return
	}
	h.respond(c, http.StatusOK, m)
}

func (h *MainCourseHandler) Create(c *gin.Context) {
	var in serializer.MainCourseInput
	if !bindJSON(c, &in) {
		return
	}
	var m models.MainCourse
	if errs := in.Apply(&m, serializer.Create); errs != nil {
		validationFailed(c, errs)
		return
	}
	if err := h.Store.SaveMainCourse(c.Request.Context(), &m); err != nil {
		storeError(c, err)
		return
	}
	h.respond(c, http.StatusCreated, &m)
}

func (h *MainCourseHandler) Update(c *gin.Context) { h.update(c, serializer.Replace) }

func (h *MainCourseHandler) Patch(c *gin.Context) { h.update(c, serializer.Patch) }

func (h *MainCourseHandler) update(c *gin.Context, mode serializer.Mode) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	m, err := h.Store.GetMainCourse(c.Request.Context(), id)
	if err != nil {
		storeError(c, err)
		return
	}
	var in serializer.MainCourseInput
	if !bindJSON(c, &in) {
		return
	}
	if errs := in.Apply(m, mode); errs != nil {
		validationFailed(c, errs)
		return
	}
	if err := h.Store.SaveMainCourse(c.Request.Context(), m); err != nil {
		storeError(c, err)
		return
	}
	h.respond(c, http.StatusOK, m)
}

// Delete also removes the course's menu items and their orders.
func (h *MainCourseHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.Store.DeleteMainCourse(c.Request.Context(), id); err != nil {
		storeError(c, err)
		return
	}
	util.NoContent(c)
}

func (h *MainCourseHandler) respond(c *gin.Context, status int, m *models.MainCourse) {
	counts, err := h.Store.ItemCounts(c.Request.Context(), []uint{m.ID})
	if err != nil {
		storeError(c, err)
		return
	}
	reply(c, status, serializer.MainCourse(m, counts[m.ID]))
}
