package invitation

import (
	"time"

	"gorm.io/gorm"
)

// ListParams mirror the client registry pagination surface.
type ListParams struct {
	AdvisorID uint
	Status    string
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

var sortColumns = map[string]string{
	"createdAt":   "created_at",
	"updatedAt":   "updated_at",
	"clientEmail": "client_email",
	"expiresAt":   "expires_at",
	"status":      "status",
}

type Repository interface {
	Create(db *gorm.DB, inv *Invitation) error
	FindByToken(db *gorm.DB, token string) (*Invitation, error)
	CountForPair(db *gorm.DB, advisorID uint, clientEmail string) (int64, error)
	List(db *gorm.DB, p ListParams) ([]Invitation, int64, error)
	MarkSent(db *gorm.DB, inv *Invitation) error
	MarkOpened(db *gorm.DB, inv *Invitation, ip, userAgent string, now time.Time) error
	ClaimCompletion(db *gorm.DB, id uint, now time.Time) (bool, error)
	SetClient(db *gorm.DB, id, clientID uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Create(db *gorm.DB, inv *Invitation) error {
	return db.Create(inv).Error
}

func (r *repositoryImpl) FindByToken(db *gorm.DB, token string) (*Invitation, error) {
	var inv Invitation
	err := db.Preload("Advisor").Where("token = ?", token).First(&inv).Error
	return &inv, err
}

// CountForPair counts every invitation ever issued for the pair, regardless
// of status. The quota is lifetime, not just outstanding invitations.
func (r *repositoryImpl) CountForPair(db *gorm.DB, advisorID uint, clientEmail string) (int64, error) {
	var count int64
	err := db.Model(&Invitation{}).
		Where("advisor_id = ? AND client_email = ?", advisorID, clientEmail).
		Count(&count).Error
	return count, err
}

func (r *repositoryImpl) List(db *gorm.DB, p ListParams) ([]Invitation, int64, error) {
	q := db.Model(&Invitation{}).Where("advisor_id = ?", p.AdvisorID)
	if p.Status != "" {
		q = q.Where("status = ?", p.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	column, ok := sortColumns[p.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if p.SortOrder == "asc" {
		direction = "ASC"
	}

	var invitations []Invitation
	err := q.Preload("Advisor").Preload("Client").
		Order(column + " " + direction).
		Offset((p.Page - 1) * p.Limit).
		Limit(p.Limit).
		Find(&invitations).Error
	return invitations, total, err
}

func (r *repositoryImpl) MarkSent(db *gorm.DB, inv *Invitation) error {
	if inv.Status == StatusSent {
		return nil
	}
	if err := db.Model(inv).Update("status", StatusSent).Error; err != nil {
		return err
	}
	inv.Status = StatusSent
	return nil
}

func (r *repositoryImpl) MarkOpened(db *gorm.DB, inv *Invitation, ip, userAgent string, now time.Time) error {
	updates := map[string]any{
		"status":            StatusOpened,
		"opened_at":         now,
		"opened_ip":         ip,
		"opened_user_agent": userAgent,
	}
	if err := db.Model(inv).Updates(updates).Error; err != nil {
		return err
	}
	inv.Status = StatusOpened
	inv.OpenedAt = &now
	inv.OpenedIP = ip
	inv.OpenedUserAgent = userAgent
	return nil
}

// ClaimCompletion is the commit point for Complete: a conditional update
// that wins for exactly one caller when submissions race.
func (r *repositoryImpl) ClaimCompletion(db *gorm.DB, id uint, now time.Time) (bool, error) {
	res := db.Model(&Invitation{}).
		Where("id = ? AND status <> ?", id, StatusCompleted).
		Updates(map[string]any{"status": StatusCompleted, "completed_at": now})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *repositoryImpl) SetClient(db *gorm.DB, id, clientID uint) error {
	return db.Model(&Invitation{}).Where("id = ?", id).Update("client_id", clientID).Error
}
