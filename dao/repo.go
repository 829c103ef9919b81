package dao

import (
	"context"

	"gorm.io/gorm"
)

// Repo 通用 DAO 基类，各实体 DAO 内嵌复用
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

func (r *Repo[T]) Model(ctx context.Context) *gorm.DB {
	var t T
	return r.Db.WithContext(ctx).Model(&t)
}

func (r *Repo[T]) Create(ctx context.Context, data *T) error {
	return r.Db.WithContext(ctx).Create(data).Error
}

func (r *Repo[T]) FindById(ctx context.Context, id int64) (*T, error) {
	var t T
	err := r.Db.WithContext(ctx).Where("id = ?", id).First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *Repo[T]) FindByWhere(ctx context.Context, where string, args ...interface{}) (*T, error) {
	var t T
	err := r.Db.WithContext(ctx).Where(where, args...).First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *Repo[T]) FindAll(ctx context.Context, where string, args ...interface{}) ([]*T, error) {
	var items []*T
	db := r.Db.WithContext(ctx)
	if where != "" {
		db = db.Where(where, args...)
	}
	err := db.Find(&items).Error
	return items, err
}

func (r *Repo[T]) IsExist(ctx context.Context, where string, args ...interface{}) (bool, error) {
	var count int64
	var t T
	err := r.Db.WithContext(ctx).Model(&t).Where(where, args...).Count(&count).Error
	return count > 0, err
}

func (r *Repo[T]) UpdateById(ctx context.Context, id int64, data map[string]interface{}) error {
	var t T
	return r.Db.WithContext(ctx).Model(&t).Where("id = ?", id).Updates(data).Error
}

func (r *Repo[T]) DeleteById(ctx context.Context, id int64) error {
	var t T
	return r.Db.WithContext(ctx).Where("id = ?", id).Delete(&t).Error
}
