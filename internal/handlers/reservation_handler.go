package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Lex0104/Saphir/internal/config"
	domain "github.com/Lex0104/Saphir/internal/domain/reservation"
	"github.com/Lex0104/Saphir/internal/httperr"
	"github.com/Lex0104/Saphir/internal/httpresp"
	"github.com/Lex0104/Saphir/internal/middleware"
	ucReservation "github.com/Lex0104/Saphir/internal/usecase/reservation"
)

// ======================================================
// HANDLER
// ======================================================

type ReservationHandler struct {
	cfg *config.Config

	createUC  *ucReservation.CreateReservation
	updateUC  *ucReservation.UpdateReservation
	deleteUC  *ucReservation.DeleteReservation
	listUC    *ucReservation.ListReservations
	listOwnUC *ucReservation.ListOwnReservations
	detailUC  *ucReservation.GetReservation
}

func NewReservationHandler(
	cfg *config.Config,
	createUC *ucReservation.CreateReservation,
	updateUC *ucReservation.UpdateReservation,
	deleteUC *ucReservation.DeleteReservation,
	listUC *ucReservation.ListReservations,
	listOwnUC *ucReservation.ListOwnReservations,
	detailUC *ucReservation.GetReservation,
) *ReservationHandler {
	return &ReservationHandler{
		cfg:       cfg,
		createUC:  createUC,
		updateUC:  updateUC,
		deleteUC:  deleteUC,
		listUC:    listUC,
		listOwnUC: listOwnUC,
		detailUC:  detailUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateReservationRequest struct {
	TableID uint   `json:"table_id" binding:"required"`
	Date    string `json:"date" binding:"required"`
	Time    string `json:"time" binding:"required"`
	Comment string `json:"comment"`
}

type UpdateReservationRequest struct {
	TableID *uint   `json:"table_id"`
	Date    *string `json:"date"`
	Time    *string `json:"time"`
	Comment *string `json:"comment"`
}

// ======================================================
// CREATE
// ======================================================

func (h *ReservationHandler) Create(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid reservation data.")
		return
	}

	res, err := h.createUC.Execute(c.Request.Context(), actor, ucReservation.CreateReservationInput{
		TableID: req.TableID,
		Date:    req.Date,
		Time:    req.Time,
		Comment: req.Comment,
	}, baseURLFrom(c, h.cfg))
	if err != nil {
		writeDomainError(c, h.cfg, err)
		return
	}

	c.JSON(201, res)
}

// ======================================================
// LIST (staff roster)
// ======================================================

func (h *ReservationHandler) List(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	f := domain.ListFilter{
		Date:     c.Query("date"),
		PageSize: ucReservation.RosterPageSize,
	}

	if n := c.Query("table_number"); n != "" {
		v, err := strconv.ParseUint(n, 10, 32)
		if err != nil {
			httperr.BadRequest(c, "invalid_table_number", "table_number must be a number.")
			return
		}
		f.TableNumber = uint(v)
	}

	if p := c.Query("page"); p != "" {
		v, err := strconv.Atoi(p)
		if err != nil || v < 1 {
			httperr.BadRequest(c, "invalid_page", "page must be a positive number.")
			return
		}
		f.Page = v
	}

	out, total, err := h.listUC.Execute(c.Request.Context(), actor, f)
	if err != nil {
		writeDomainError(c, h.cfg, err)
		return
	}

	page := f.Page
	if page < 1 {
		page = 1
	}
	httpresp.Page(c, out, total, page, f.PageSize)
}

// ======================================================
// MINE
// ======================================================

func (h *ReservationHandler) ListMine(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	out, err := h.listOwnUC.Execute(c.Request.Context(), actor)
	if err != nil {
		writeDomainError(c, h.cfg, err)
		return
	}

	httpresp.List(c, out)
}

// ======================================================
// DETAIL
// ======================================================

func (h *ReservationHandler) Get(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid reservation id.")
		return
	}

	res, err := h.detailUC.Execute(c.Request.Context(), actor, uint(id))
	if err != nil {
		writeDomainError(c, h.cfg, err)
		return
	}

	httpresp.OK(c, res)
}

// ======================================================
// UPDATE
// ======================================================

func (h *ReservationHandler) Update(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid reservation id.")
		return
	}

	var req UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid reservation data.")
		return
	}

	res, err := h.updateUC.Execute(c.Request.Context(), actor, ucReservation.UpdateReservationInput{
		ID:      uint(id),
		TableID: req.TableID,
		Date:    req.Date,
		Time:    req.Time,
		Comment: req.Comment,
	}, baseURLFrom(c, h.cfg))
	if err != nil {
		writeDomainError(c, h.cfg, err)
		return
	}

	httpresp.OK(c, res)
}

// ======================================================
// DELETE
// ======================================================

func (h *ReservationHandler) Delete(c *gin.Context) {
	actor := middleware.CurrentUser(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid reservation id.")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), actor, uint(id)); err != nil {
		writeDomainError(c, h.cfg, err)
		return
	}

	c.JSON(200, gin.H{"deleted": true})
}
