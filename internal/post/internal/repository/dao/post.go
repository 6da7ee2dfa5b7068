// Copyright 2025 leetaesk
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
)

type Post struct {
	Id      int64  `gorm:"primaryKey"`
	Uid     int64  `gorm:"index:idx_uid_ctime"`
	Title        string `gorm:"type:varchar(256);not null"`
	Content      string `gorm:"type:text;not null"`
	ThumbnailUrl string `gorm:"type:varchar(512)"`
	// LikesCount 冗余计数，由点赞模块在同一个事务里维护
	LikesCount int64 `gorm:"not null;default:0"`
	Ctime      int64 `gorm:"index:idx_uid_ctime"`
	Utime      int64
}

func (Post) TableName() string {
	return "posts"
}

type PostDAO interface {
	Insert(ctx context.Context, p Post) (int64, error)
	FindById(ctx context.Context, id int64) (Post, error)
	FindByIds(ctx context.Context, ids []int64) ([]Post, error)
	Exists(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context, offset, limit int) ([]Post, error)
	Count(ctx context.Context) (int64, error)
	ListByUid(ctx context.Context, uid int64, offset, limit int) ([]Post, error)
	Update(ctx context.Context, p Post) error
	Delete(ctx context.Context, id, uid int64) error
}

type GORMPostDAO struct {
	db *egorm.Component
}

func NewGORMPostDAO(db *egorm.Component) PostDAO {
	return &GORMPostDAO{db: db}
}

func (d *GORMPostDAO) Insert(ctx context.Context, p Post) (int64, error) {
	now := time.Now().UnixMilli()
	p.Ctime = now
	p.Utime = now
	err := d.db.WithContext(ctx).Create(&p).Error
	return p.Id, err
}

func (d *GORMPostDAO) FindById(ctx context.Context, id int64) (Post, error) {
	var res Post
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (d *GORMPostDAO) FindByIds(ctx context.Context, ids []int64) ([]Post, error) {
	var res []Post
	err := d.db.WithContext(ctx).Where("id IN ?", ids).Find(&res).Error
	return res, err
}

func (d *GORMPostDAO) Exists(ctx context.Context, id int64) (bool, error) {
	var cnt int64
	err := d.db.WithContext(ctx).Model(&Post{}).Where("id = ?", id).Count(&cnt).Error
	return cnt > 0, err
}

func (d *GORMPostDAO) List(ctx context.Context, offset, limit int) ([]Post, error) {
	var res []Post
	err := d.db.WithContext(ctx).
		Order("ctime DESC, id DESC").
		Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (d *GORMPostDAO) Count(ctx context.Context) (int64, error) {
	var cnt int64
	err := d.db.WithContext(ctx).Model(&Post{}).Count(&cnt).Error
	return cnt, err
}

func (d *GORMPostDAO) ListByUid(ctx context.Context, uid int64, offset, limit int) ([]Post, error) {
	var res []Post
	err := d.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("ctime DESC, id DESC").
		Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (d *GORMPostDAO) Update(ctx context.Context, p Post) error {
	res := d.db.WithContext(ctx).Model(&Post{}).
		Where("id = ? AND uid = ?", p.Id, p.Uid).
		Updates(map[string]any{
			"title":         p.Title,
			"content":       p.Content,
			"thumbnail_url": p.ThumbnailUrl,
			"utime":         time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected < 1 {
		return ErrRecordNotFound
	}
	return nil
}

// Delete 挂在 posts 上的点赞行和评论靠外键级联一起删掉
func (d *GORMPostDAO) Delete(ctx context.Context, id, uid int64) error {
	res := d.db.WithContext(ctx).Where("id = ? AND uid = ?", id, uid).Delete(&Post{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected < 1 {
		return ErrRecordNotFound
	}
	return nil
}
