package dao

import (
	"context"

	"rocketbird/models"

	"gorm.io/gorm"
)

type Referrals struct {
	Repo[models.ReferralRecord]
}

func NewReferrals(db *gorm.DB) *Referrals {
	return &Referrals{
		Repo: NewRepo[models.ReferralRecord](db),
	}
}

// IsBound 被邀请人是否已绑定过邀请关系
func (r *Referrals) IsBound(ctx context.Context, inviteeID int64) (bool, error) {
	return r.Repo.IsExist(ctx, "invitee_id = ?", inviteeID)
}

// ListByInviter 我邀请的人
func (r *Referrals) ListByInviter(ctx context.Context, inviterID int64, cursor int64, limit int) ([]models.ReferralRecord, error) {
	var records []models.ReferralRecord
	query := r.Db.WithContext(ctx).Where("inviter_id = ?", inviterID)
	if cursor > 0 {
		query = query.Where("id < ?", cursor)
	}
	err := query.Order("id DESC").Limit(limit).Find(&records).Error
	return records, err
}

func (r *Referrals) CountByInviter(ctx context.Context, inviterID int64) (int64, error) {
	var count int64
	err := r.Db.WithContext(ctx).Model(&models.ReferralRecord{}).
		Where("inviter_id = ?", inviterID).
		Count(&count).Error
	return count, err
}
