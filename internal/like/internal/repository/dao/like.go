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
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrTargetNotFound = errors.New("点赞对象不存在")
	ErrUnknownBiz     = errors.New("未知的点赞业务")
)

// foreignKeyViolation MySQL 外键约束失败
const foreignKeyViolation = 1452

type PostLike struct {
	Id     int64 `gorm:"primaryKey;autoIncrement"`
	Uid    int64 `gorm:"uniqueIndex:uniq_uid_post_id"`
	PostId int64 `gorm:"uniqueIndex:uniq_uid_post_id;index"`
	Ctime  int64
	Utime  int64
}

func (PostLike) TableName() string {
	return "post_likes"
}

type CommentLike struct {
	Id        int64 `gorm:"primaryKey;autoIncrement"`
	Uid       int64 `gorm:"uniqueIndex:uniq_uid_comment_id"`
	CommentId int64 `gorm:"uniqueIndex:uniq_uid_comment_id;index"`
	Ctime     int64
	Utime     int64
}

func (CommentLike) TableName() string {
	return "comment_likes"
}

type LikeDAO interface {
	// Toggle 按 uid+target 切换点赞，返回切换后是否点赞以及事务内读回的计数
	Toggle(ctx context.Context, biz string, targetId, uid int64) (bool, int64, error)
	// LikedIds 返回 targetIds 里 uid 点过赞的那部分
	LikedIds(ctx context.Context, biz string, uid int64, targetIds []int64) ([]int64, error)
}

// toggleTarget 把两种点赞对象的差异收拢到一处
type toggleTarget struct {
	// counterTable 冗余计数所在的表
	counterTable string
	deleteRow    func(tx *gorm.DB, targetId, uid int64) *gorm.DB
	insertRow    func(tx *gorm.DB, targetId, uid, now int64) *gorm.DB
	likedIds     func(db *gorm.DB, uid int64, ids []int64, dst *[]int64) *gorm.DB
}

type GORMLikeDAO struct {
	db *egorm.Component
}

func NewGORMLikeDAO(db *egorm.Component) LikeDAO {
	return &GORMLikeDAO{db: db}
}

func (d *GORMLikeDAO) target(biz string) (toggleTarget, error) {
	switch biz {
	case "post":
		return toggleTarget{
			counterTable: "posts",
			deleteRow: func(tx *gorm.DB, targetId, uid int64) *gorm.DB {
				return tx.Where("post_id = ? AND uid = ?", targetId, uid).Delete(&PostLike{})
			},
			insertRow: func(tx *gorm.DB, targetId, uid, now int64) *gorm.DB {
				return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&PostLike{
					Uid:    uid,
					PostId: targetId,
					Ctime:  now,
					Utime:  now,
				})
			},
			likedIds: func(db *gorm.DB, uid int64, ids []int64, dst *[]int64) *gorm.DB {
				return db.Model(&PostLike{}).
					Where("post_id IN ? AND uid = ?", ids, uid).
					Pluck("post_id", dst)
			},
		}, nil
	case "comment":
		return toggleTarget{
			counterTable: "comments",
			deleteRow: func(tx *gorm.DB, targetId, uid int64) *gorm.DB {
				return tx.Where("comment_id = ? AND uid = ?", targetId, uid).Delete(&CommentLike{})
			},
			insertRow: func(tx *gorm.DB, targetId, uid, now int64) *gorm.DB {
				return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&CommentLike{
					Uid:       uid,
					CommentId: targetId,
					Ctime:     now,
					Utime:     now,
				})
			},
			likedIds: func(db *gorm.DB, uid int64, ids []int64, dst *[]int64) *gorm.DB {
				return db.Model(&CommentLike{}).
					Where("comment_id IN ? AND uid = ?", ids, uid).
					Pluck("comment_id", dst)
			},
		}, nil
	default:
		return toggleTarget{}, ErrUnknownBiz
	}
}

func (d *GORMLikeDAO) Toggle(ctx context.Context, biz string, targetId, uid int64) (bool, int64, error) {
	t, err := d.target(biz)
	if err != nil {
		return false, 0, err
	}
	var (
		liked bool
		count int64
	)
	err = d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		res := t.deleteRow(tx, targetId, uid)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			// 取消点赞，计数到 0 为止不再往下减
			if err := d.applyDelta(tx, t, targetId,
				"GREATEST(0, likes_count - 1)", now); err != nil {
				return err
			}
			liked = false
		} else {
			ins := t.insertRow(tx, targetId, uid, now)
			if ins.Error != nil {
				return translateFKViolation(ins.Error)
			}
			liked = true
			// 并发切换同一个 target 时另一个事务先插成功，这里不能再加计数
			if ins.RowsAffected > 0 {
				if err := d.applyDelta(tx, t, targetId,
					"likes_count + 1", now); err != nil {
					return err
				}
			}
		}
		return tx.Table(t.counterTable).
			Where("id = ?", targetId).
			Select("likes_count").Scan(&count).Error
	})
	if err != nil {
		return false, 0, err
	}
	return liked, count, nil
}

func (d *GORMLikeDAO) applyDelta(tx *gorm.DB, t toggleTarget, targetId int64, expr string, now int64) error {
	res := tx.Table(t.counterTable).
		Where("id = ?", targetId).
		Updates(map[string]any{
			"likes_count": gorm.Expr(expr),
			"utime":       now,
		})
	if res.Error != nil {
		return res.Error
	}
	// 对象不在了就整个事务回滚，点赞行不能留下孤儿
	if res.RowsAffected < 1 {
		return ErrTargetNotFound
	}
	return nil
}

func (d *GORMLikeDAO) LikedIds(ctx context.Context, biz string, uid int64, targetIds []int64) ([]int64, error) {
	if len(targetIds) == 0 {
		return nil, nil
	}
	t, err := d.target(biz)
	if err != nil {
		return nil, err
	}
	var res []int64
	err = t.likedIds(d.db.WithContext(ctx), uid, targetIds, &res).Error
	return res, err
}

// translateFKViolation 对象已经被删掉时插入点赞行会撞外键
func translateFKViolation(err error) error {
	var me *mysql.MySQLError
	if errors.As(err, &me) && me.Number == foreignKeyViolation {
		return ErrTargetNotFound
	}
	return err
}
