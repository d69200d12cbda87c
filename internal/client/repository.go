package client

import (
	"gorm.io/gorm"
)

// ListParams drive the registry query layer.
type ListParams struct {
	AdvisorID uint
	Search    string
	Status    string
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

// sortColumns whitelists sortable fields so query params never reach SQL raw.
var sortColumns = map[string]string{
	"createdAt":      "created_at",
	"updatedAt":      "updated_at",
	"firstName":      "first_name",
	"lastName":       "last_name",
	"email":          "email",
	"status":         "status",
	"onboardingStep": "onboarding_step",
	"lastActiveDate": "last_active_date",
	"annualIncome":   "annual_income",
	"netWorth":       "net_worth",
}

type Repository interface {
	Create(db *gorm.DB, c *Client) error
	Save(db *gorm.DB, c *Client) error
	FindForAdvisor(db *gorm.DB, advisorID, id uint) (*Client, error)
	ExistsForAdvisor(db *gorm.DB, advisorID uint, email string) (bool, error)
	List(db *gorm.DB, p ListParams) ([]Client, int64, error)
	Delete(db *gorm.DB, advisorID, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Create(db *gorm.DB, c *Client) error {
	return db.Create(c).Error
}

func (r *repositoryImpl) Save(db *gorm.DB, c *Client) error {
	return db.Save(c).Error
}

func (r *repositoryImpl) FindForAdvisor(db *gorm.DB, advisorID, id uint) (*Client, error) {
	var c Client
	err := db.Where("id = ? AND advisor_id = ?", id, advisorID).First(&c).Error
	return &c, err
}

func (r *repositoryImpl) ExistsForAdvisor(db *gorm.DB, advisorID uint, email string) (bool, error) {
	var count int64
	err := db.Model(&Client{}).
		Where("advisor_id = ? AND email = ?", advisorID, email).
		Count(&count).Error
	return count > 0, err
}

func (r *repositoryImpl) List(db *gorm.DB, p ListParams) ([]Client, int64, error) {
	q := db.Model(&Client{}).Where("advisor_id = ?", p.AdvisorID)

	if p.Search != "" {
		like := "%" + p.Search + "%"
		q = q.Where(
			db.Where("first_name ILIKE ?", like).
				Or("last_name ILIKE ?", like).
				Or("email ILIKE ?", like),
		)
	}
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

	var clients []Client
	err := q.Order(column + " " + direction).
		Offset((p.Page - 1) * p.Limit).
		Limit(p.Limit).
		Find(&clients).Error
	return clients, total, err
}

func (r *repositoryImpl) Delete(db *gorm.DB, advisorID, id uint) error {
	res := db.Where("id = ? AND advisor_id = ?", id, advisorID).Delete(&Client{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
