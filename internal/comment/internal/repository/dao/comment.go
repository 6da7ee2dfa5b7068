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
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var (
	ErrParentNotFound      = errors.New("父评论不存在")
	ErrParentWrongPost     = errors.New("父评论不在这篇文章下")
	ErrReplyToReply        = errors.New("不能回复别人的回复")
	ErrNotFoundOrForbidden = errors.New("评论不存在或者不是本人的")
)

// Comment 两层结构的评论，顶层评论的 parent_comment_id 是 NULL
type Comment struct {
	Id  int64 `gorm:"primaryKey;autoIncrement"`
	Uid int64 `gorm:"not null;index"`
	// 回复别人的评论时这个字段照样有值
	PostId  int64  `gorm:"not null;index"`
	Content string `gorm:"type:text;not null"`

	ParentCommentId sql.Null[int64] `gorm:"type:bigint;index"`
	// 外键用于级联删除顶层评论下面的回复
	ParentComment *Comment `gorm:"ForeignKey:ParentCommentId;AssociationForeignKey:Id;constraint:OnDelete:CASCADE"`

	// LikesCount 冗余计数，由点赞模块在同一个事务里维护
	LikesCount int64 `gorm:"not null;default:0"`

	Ctime int64
	Utime int64
}

func (Comment) TableName() string {
	return "comments"
}

type CommentDAO interface {
	// Create 创建评论，校验父评论的合法性和深度上限都在这个事务里
	Create(ctx context.Context, c Comment) (int64, error)
	// FindByPost 某篇文章下的全部评论快照，按评论时间正序
	FindByPost(ctx context.Context, postId int64) ([]Comment, error)
	// FindByUid 某人发过的评论，新的在前
	FindByUid(ctx context.Context, uid int64) ([]Comment, error)
	FindById(ctx context.Context, id int64) (Comment, error)
	// UpdateContent 只有本人能改，改完返回最新的行
	UpdateContent(ctx context.Context, id, uid int64, content string) (Comment, error)
	// Delete 只有本人能删，回复和点赞行靠外键级联一起删掉
	Delete(ctx context.Context, id, uid int64) error
}

type commentDAO struct {
	db *egorm.Component
}

func NewCommentGORMDAO(db *egorm.Component) CommentDAO {
	return &commentDAO{db: db}
}

func (g *commentDAO) Create(ctx context.Context, c Comment) (int64, error) {
	now := time.Now().UnixMilli()
	c.Ctime, c.Utime = now, now
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if c.ParentCommentId.Valid {
			var parent Comment
			err := tx.First(&parent, "id = ?", c.ParentCommentId.V).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: id=%d", ErrParentNotFound, c.ParentCommentId.V)
			}
			if err != nil {
				return err
			}
			if parent.PostId != c.PostId {
				return ErrParentWrongPost
			}
			// 两层封顶，回复不能再被回复
			if parent.ParentCommentId.Valid {
				return ErrReplyToReply
			}
		}
		return tx.Create(&c).Error
	})
	return c.Id, err
}

func (g *commentDAO) FindByPost(ctx context.Context, postId int64) ([]Comment, error) {
	var res []Comment
	err := g.db.WithContext(ctx).
		Where("post_id = ?", postId).
		Order("ctime ASC, id ASC").
		Find(&res).Error
	return res, err
}

func (g *commentDAO) FindByUid(ctx context.Context, uid int64) ([]Comment, error) {
	var res []Comment
	err := g.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("ctime DESC, id DESC").
		Find(&res).Error
	return res, err
}

func (g *commentDAO) FindById(ctx context.Context, id int64) (Comment, error) {
	var c Comment
	err := g.db.WithContext(ctx).First(&c, "id = ?", id).Error
	return c, err
}

func (g *commentDAO) UpdateContent(ctx context.Context, id, uid int64, content string) (Comment, error) {
	var c Comment
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&Comment{}).
			Where("id = ? AND uid = ?", id, uid).
			Updates(map[string]any{
				"content": content,
				"utime":   time.Now().UnixMilli(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected < 1 {
			return ErrNotFoundOrForbidden
		}
		return tx.First(&c, "id = ?", id).Error
	})
	return c, err
}

func (g *commentDAO) Delete(ctx context.Context, id, uid int64) error {
	res := g.db.WithContext(ctx).
		Where("id = ? AND uid = ?", id, uid).
		Delete(&Comment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected < 1 {
		return ErrNotFoundOrForbidden
	}
	return nil
}
