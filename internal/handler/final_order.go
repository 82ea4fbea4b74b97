package handler

import (
	"net/http"

	"restaurant-pos/internal/models"
	"restaurant-pos/internal/serializer"
	"restaurant-pos/internal/store"
	"restaurant-pos/internal/util"

	"github.com/gin-gonic/gin"
)

// FinalOrderHandler serves /final-orders. total_amount is never read from
// the payload; the store recomputes it on every create and update.
type FinalOrderHandler struct {
	base
}

func NewFinalOrderHandler(s *store.Store, pageSize int) *FinalOrderHandler {
	return &FinalOrderHandler{base{Store: s, PageSize: pageSize}}
}

func (h *FinalOrderHandler) List(c *gin.Context) {
	p := h.page(c)
	orders, total, err := h.Store.ListFinalOrders(c.Request.Context(), p.Page)
	if err != nil {
		storeError(c, err)
		return
	}

	seen := make(map[uint]bool, len(orders))
	tableIDs := make([]uint, 0, len(orders))
	for i := range orders {
		if id := orders[i].UserTableID; !seen[id] {
			seen[id] = true
			tableIDs = append(tableIDs, id)
		}
	}
	counts, err := h.Store.OrderCounts(c.Request.Context(), tableIDs)
	if err != nil {
		storeError(c, err)
		return
	}

	items := make([]serializer.FinalOrderResp, 0, len(orders))
	for i := range orders {
		items = append(items, serializer.FinalOrder(&orders[i], counts[orders[i].UserTableID]))
	}
	listResponse(c, items, total, p)
}

func (h *FinalOrderHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	h.respond(c, http.StatusOK, id)
}

func (h *FinalOrderHandler) Create(c *gin.Context) {
	var in serializer.FinalOrderInput
	if !bindJSON(c, &in) {
		return
	}
	var o models.FinalOrder
	if errs := in.Apply(&o, serializer.Create); errs != nil {
		validationFailed(c, errs)
		return
	}
	if err := h.Store.SaveFinalOrder(c.Request.Context(), &o); err != nil {
		storeError(c, err)
		return
	}
	h.respond(c, http.StatusCreated, o.ID)
}

func (h *FinalOrderHandler) Update(c *gin.Context) { h.update(c, serializer.Replace) }

func (h *FinalOrderHandler) Patch(c *gin.Context) { h.update(c, serializer.Patch) }

// update recomputes the total whether or not quantity or item changed.
func (h *FinalOrderHandler) update(c *gin.Context, mode serializer.Mode) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	o, err := h.Store.GetFinalOrder(c.Request.Context(), id)
	if err != nil {
		storeError(c, err)
		return
	}
	var in serializer.FinalOrderInput
	if !bindJSON(c, &in) {
		return
	}
	if errs := in.Apply(o, mode); errs != nil {
		validationFailed(c, errs)
		return
	}
	if err := h.Store.SaveFinalOrder(c.Request.Context(), o); err != nil {
		storeError(c, err)
		return
	}
	h.respond(c, http.StatusOK, o.ID)
}

func (h *FinalOrderHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.Store.DeleteFinalOrder(c.Request.Context(), id); err != nil {
		storeError(c, err)
		return
	}
	util.NoContent(c)
}

// respond loads the order with its nested table and item.
func (h *FinalOrderHandler) respond(c *gin.Context, status int, id uint) {
	o, err := h.Store.GetFinalOrder(c.Request.Context(), id)
	if err != nil {
		storeError(c, err)
		return
	}
	counts, err := h.Store.OrderCounts(c.Request.Context(), []uint{o.UserTableID})
	if err != nil {
		storeError(c, err)
		return
	}
	reply(c, status, serializer.FinalOrder(o, counts[o.UserTableID]))
}
