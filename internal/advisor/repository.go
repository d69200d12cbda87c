package advisor

import (
	"context"
	"errors"

	"github.com/richieai/onboarding-api/internal/auth"
	"gorm.io/gorm"
)

type Repository interface {
	Create(db *gorm.DB, a *Advisor) error
	FindByEmail(db *gorm.DB, email string) (*Advisor, error)
	FindByID(db *gorm.DB, id uint) (*Advisor, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Create(db *gorm.DB, a *Advisor) error {
	return db.Create(a).Error
}

func (r *repositoryImpl) FindByEmail(db *gorm.DB, email string) (*Advisor, error) {
	var a Advisor
	err := db.Where("email = ?", email).First(&a).Error
	return &a, err
}

func (r *repositoryImpl) FindByID(db *gorm.DB, id uint) (*Advisor, error) {
	var a Advisor
	err := db.First(&a, id).Error
	return &a, err
}

// IdentityResolver adapts the repository for the authentication gate.
func IdentityResolver(db *gorm.DB, repo Repository) auth.IdentityResolver {
	return func(ctx context.Context, advisorID uint) (*auth.Identity, error) {
		a, err := repo.FindByID(db.WithContext(ctx), advisorID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, auth.ErrIdentityNotFound
			}
			return nil, err
		}
		return &auth.Identity{
			ID:        a.ID,
			FirstName: a.FirstName,
			LastName:  a.LastName,
			Email:     a.Email,
			FirmName:  a.FirmName,
			Status:    a.Status,
		}, nil
	}
}
