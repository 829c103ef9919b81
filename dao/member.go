package dao

import (
	"context"

	"rocketbird/models"

	"gorm.io/gorm"
)

type Members struct {
	Repo[models.Member]
}

func NewMembers(db *gorm.DB) *Members {
	return &Members{
		Repo: NewRepo[models.Member](db),
	}
}

func (m *Members) FindByOpenID(ctx context.Context, openid string) (*models.Member, error) {
	return m.Repo.FindByWhere(ctx, "open_id = ?", openid)
}

func (m *Members) GetOrCreateByOpenID(ctx context.Context, openid string) (*models.Member, error) {
	member := &models.Member{}
	err := m.Db.WithContext(ctx).
		Where(&models.Member{OpenID: openid}).
		Attrs(&models.Member{Status: models.MemberStatusNormal}).
		FirstOrCreate(member).Error
	return member, err
}

func (m *Members) FindByInviteCode(ctx context.Context, code string) (*models.Member, error) {
	return m.Repo.FindByWhere(ctx, "invite_code = ?", code)
}

// List 后台分页查询，keyword 匹配昵称/手机号
func (m *Members) List(ctx context.Context, keyword string, page, pageSize int) ([]*models.Member, int64, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}

	query := m.Db.WithContext(ctx).Model(&models.Member{})
	if keyword != "" {
		query = query.Where("nickname LIKE ? OR mobile LIKE ?", "%"+keyword+"%", "%"+keyword+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var members []*models.Member
	err := query.Order("id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&members).Error
	return members, total, err
}
