package dao

import (
	"context"

	"rocketbird/models"

	"gorm.io/gorm"
)

type Admins struct {
	Repo[models.Admin]
}

func NewAdmins(db *gorm.DB) *Admins {
	return &Admins{
		Repo: NewRepo[models.Admin](db),
	}
}

func (a *Admins) FindByUsername(ctx context.Context, username string) (*models.Admin, error) {
	return a.Repo.FindByWhere(ctx, "username = ?", username)
}

func (a *Admins) IsUsernameExist(ctx context.Context, username string) bool {
	exist, _ := a.Repo.IsExist(ctx, "username = ?", username)
	return exist
}
