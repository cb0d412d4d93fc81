package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/Lex0104/Saphir/internal/domain/reservation"
	"github.com/Lex0104/Saphir/internal/models"
)

type ReservationGormRepository struct {
	db *gorm.DB
}

func NewReservationGormRepository(db *gorm.DB) *ReservationGormRepository {
	return &ReservationGormRepository{db: db}
}

// --------------------------------------------------
// Tables
// --------------------------------------------------

func (r *ReservationGormRepository) GetTable(
	ctx context.Context,
	id uint,
) (*models.Table, error) {

	var table models.Table
	if err := r.db.WithContext(ctx).First(&table, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &table, nil
}

func (r *ReservationGormRepository) ListTables(
	ctx context.Context,
) ([]models.Table, error) {

	var tables []models.Table
	if err := r.db.WithContext(ctx).
		Order("number ASC").
		Find(&tables).Error; err != nil {
		return nil, err
	}
	return tables, nil
}

// --------------------------------------------------
// Reservations (CRUD)
// --------------------------------------------------

func (r *ReservationGormRepository) CreateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {
	return r.db.WithContext(ctx).Create(res).Error
}

func (r *ReservationGormRepository) GetReservation(
	ctx context.Context,
	id uint,
) (*models.Reservation, error) {

	var res models.Reservation
	if err := r.db.WithContext(ctx).
		Preload("Owner").
		Preload("Owner.Roles").
		Preload("Table").
		First(&res, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &res, nil
}

func (r *ReservationGormRepository) SaveReservation(
	ctx context.Context,
	res *models.Reservation,
) error {
	return r.db.WithContext(ctx).Save(res).Error
}

func (r *ReservationGormRepository) DeleteReservation(
	ctx context.Context,
	res *models.Reservation,
) error {
	return r.db.WithContext(ctx).Delete(res).Error
}

// --------------------------------------------------
// Slots / conflicts
// --------------------------------------------------

func (r *ReservationGormRepository) ReservedTimes(
	ctx context.Context,
	tableID uint,
	date string,
) ([]string, error) {

	var times []string
	if err := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("table_id = ? AND date = ? AND is_active = ?", tableID, date, true).
		Pluck("time", &times).Error; err != nil {
		return nil, err
	}
	return times, nil
}

func (r *ReservationGormRepository) AssertSlotFree(
	ctx context.Context,
	table *models.Table,
	date string,
	clock string,
	excludeID uint,
) error {

	q := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("table_id = ? AND date = ? AND time = ? AND is_active = ?",
			table.ID, date, clock, true)

	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return &domain.ConflictError{
			TableNumber: table.Number,
			Date:        date,
			Time:        clock,
		}
	}

	return nil
}

// --------------------------------------------------
// Listings
// --------------------------------------------------

func (r *ReservationGormRepository) ListActive(
	ctx context.Context,
	f domain.ListFilter,
) ([]models.Reservation, int64, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Joins("LEFT JOIN tables ON tables.id = reservations.table_id").
		Where("reservations.is_active = ?", true)

	if f.Date != "" {
		q = q.Where("reservations.date = ?", f.Date)
	}
	if f.TableNumber != 0 {
		q = q.Where("tables.number = ?", f.TableNumber)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q = q.Order("reservations.date ASC, reservations.time ASC, tables.number ASC")

	if f.PageSize > 0 {
		page := f.Page
		if page < 1 {
			page = 1
		}
		q = q.Offset((page - 1) * f.PageSize).Limit(f.PageSize)
	}

	var out []models.Reservation
	if err := q.
		Preload("Owner").
		Preload("Table").
		Find(&out).Error; err != nil {
		return nil, 0, err
	}

	return out, total, nil
}

func (r *ReservationGormRepository) ListForOwner(
	ctx context.Context,
	ownerID uint,
) ([]models.Reservation, error) {

	var out []models.Reservation
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("date ASC, time ASC").
		Preload("Table").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// --------------------------------------------------
// Sweep
// --------------------------------------------------

func (r *ReservationGormRepository) ListActiveForDate(
	ctx context.Context,
	date string,
) ([]models.Reservation, error) {

	var out []models.Reservation
	if err := r.db.WithContext(ctx).
		Where("date = ? AND is_active = ?", date, true).
		Preload("Owner").
		Preload("Table").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ReservationGormRepository) ListDueReminders(
	ctx context.Context,
	date string,
) ([]models.Reservation, error) {

	var out []models.Reservation
	if err := r.db.WithContext(ctx).
		Where("date = ? AND is_active = ? AND reminder_sent = ?", date, true, false).
		Preload("Owner").
		Preload("Table").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Compile-time check
var _ domain.Repository = (*ReservationGormRepository)(nil)
