package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Lex0104/Saphir/internal/config"
	domain "github.com/Lex0104/Saphir/internal/domain/reservation"
	"github.com/Lex0104/Saphir/internal/httperr"
	"github.com/Lex0104/Saphir/internal/httpresp"
	"github.com/Lex0104/Saphir/internal/middleware"
	"github.com/Lex0104/Saphir/internal/models"
	"github.com/Lex0104/Saphir/internal/timezone"
	ucReservation "github.com/Lex0104/Saphir/internal/usecase/reservation"
)

type TableHandler struct {
	db      *gorm.DB
	cfg     *config.Config
	slotsUC *ucReservation.GetFreeSlots
}

func NewTableHandler(db *gorm.DB, cfg *config.Config, slotsUC *ucReservation.GetFreeSlots) *TableHandler {
	return &TableHandler{db: db, cfg: cfg, slotsUC: slotsUC}
}

// ======================================================
// PUBLIC
// ======================================================

func (h *TableHandler) List(c *gin.Context) {
	var tables []models.Table
	if err := h.db.Order("number ASC").Find(&tables).Error; err != nil {
		httperr.Internal(c, "failed_to_list_tables", "Could not load tables.")
		return
	}
	httpresp.List(c, tables)
}

// Detail returns the table and its free slots over the rolling week.
func (h *TableHandler) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid table id.")
		return
	}

	now := timezone.NowIn(h.cfg.Timezone)

	table, slots, err := h.slotsUC.Execute(c.Request.Context(), uint(id), now, domain.WindowDays)
	if err != nil {
		writeDomainError(c, h.cfg, err)
		return
	}

	c.JSON(200, gin.H{
		"table":      table,
		"free_slots": slots,
	})
}

// ======================================================
// STAFF (Manager role)
// ======================================================

type TableRequest struct {
	Number      uint   `json:"number" binding:"required"`
	Seats       uint   `json:"seats" binding:"required"`
	Description string `json:"description"`
}

func (h *TableHandler) requireManager(c *gin.Context) bool {
	actor := middleware.CurrentUser(c)
	if actor == nil || !actor.IsManager() {
		httperr.Forbidden(c, "permission_denied", "Manager role required.")
		return false
	}
	return true
}

func (h *TableHandler) Create(c *gin.Context) {
	if !h.requireManager(c) {
		return
	}

	var req TableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid table data.")
		return
	}

	table := models.Table{
		Number:      req.Number,
		Seats:       req.Seats,
		Description: req.Description,
	}

	if err := h.db.Create(&table).Error; err != nil {
		httperr.Internal(c, "failed_to_create_table", "Could not create table.")
		return
	}

	c.JSON(201, table)
}

func (h *TableHandler) Update(c *gin.Context) {
	if !h.requireManager(c) {
		return
	}

	id := c.Param("id")

	var table models.Table
	if err := h.db.First(&table, id).Error; err != nil {
		httperr.NotFound(c, "table_not_found", "Table not found.")
		return
	}

	var req TableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid table data.")
		return
	}

	table.Number = req.Number
	table.Seats = req.Seats
	table.Description = req.Description

	if err := h.db.Save(&table).Error; err != nil {
		httperr.Internal(c, "failed_to_update_table", "Could not update table.")
		return
	}

	httpresp.OK(c, table)
}

// Delete removes the table; its reservations keep existing with the table
// reference cleared, not cascaded.
func (h *TableHandler) Delete(c *gin.Context) {
	if !h.requireManager(c) {
		return
	}

	id := c.Param("id")

	var table models.Table
	if err := h.db.First(&table, id).Error; err != nil {
		httperr.NotFound(c, "table_not_found", "Table not found.")
		return
	}

	if err := h.db.Delete(&table).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_table", "Could not delete table.")
		return
	}

	c.JSON(200, gin.H{"deleted": true})
}
