package handlers

import (
	"sort"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Lex0104/Saphir/internal/httperr"
	"github.com/Lex0104/Saphir/internal/middleware"
	"github.com/Lex0104/Saphir/internal/models"
)

type WorkerHandler struct {
	db *gorm.DB
}

func NewWorkerHandler(db *gorm.DB) *WorkerHandler {
	return &WorkerHandler{db: db}
}

// ======================================================
// Display grouping for the about page
// ======================================================

var administrativeOrder = map[models.Position]int{
	models.PositionOwner:   0,
	models.PositionManager: 1,
}

var kitchenOrder = map[models.Position]int{
	models.PositionTheChef:  0,
	models.PositionSousChef: 1,
	models.PositionChef:     2,
}

var hallOrder = map[models.Position]int{
	models.PositionHostess:   0,
	models.PositionBartender: 1,
	models.PositionWaiter:    2,
}

func groupWorkers(workers []models.Worker) (administrative, kitchen, hall []models.Worker) {
	for _, w := range workers {
		if _, ok := administrativeOrder[w.Position]; ok {
			administrative = append(administrative, w)
			continue
		}
		if _, ok := kitchenOrder[w.Position]; ok {
			kitchen = append(kitchen, w)
			continue
		}
		if _, ok := hallOrder[w.Position]; ok {
			hall = append(hall, w)
		}
	}

	sortByRank := func(list []models.Worker, rank map[models.Position]int) {
		sort.SliceStable(list, func(i, j int) bool {
			return rank[list[i].Position] < rank[list[j].Position]
		})
	}

	sortByRank(administrative, administrativeOrder)
	sortByRank(kitchen, kitchenOrder)
	sortByRank(hall, hallOrder)

	return administrative, kitchen, hall
}

// List renders the staff roster grouped into the three display categories.
func (h *WorkerHandler) List(c *gin.Context) {
	var workers []models.Worker
	if err := h.db.Order("id ASC").Find(&workers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_workers", "Could not load staff.")
		return
	}

	administrative, kitchen, hall := groupWorkers(workers)

	c.JSON(200, gin.H{
		"administrative": administrative,
		"kitchen":        kitchen,
		"hall":           hall,
	})
}

// ======================================================
// STAFF (Manager role)
// ======================================================

type WorkerRequest struct {
	FirstName   string          `json:"first_name" binding:"required"`
	LastName    string          `json:"last_name" binding:"required"`
	Position    models.Position `json:"position" binding:"required"`
	Description string          `json:"description"`
}

func (h *WorkerHandler) Create(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	if actor == nil || !actor.IsManager() {
		httperr.Forbidden(c, "permission_denied", "Manager role required.")
		return
	}

	var req WorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid worker data.")
		return
	}

	if !req.Position.Valid() {
		httperr.BadRequest(c, "invalid_position", "Unknown staff position.")
		return
	}

	worker := models.Worker{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Position:    req.Position,
		Description: req.Description,
	}

	if err := h.db.Create(&worker).Error; err != nil {
		httperr.Internal(c, "failed_to_create_worker", "Could not create worker.")
		return
	}

	c.JSON(201, worker)
}
