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

package repository

import (
	"context"
	"database/sql"

	"github.com/ecodeclub/ekit/slice"
	"github.com/leetaesk/blog-backend/internal/comment/internal/domain"
	"github.com/leetaesk/blog-backend/internal/comment/internal/repository/dao"
)

var (
	ErrParentNotFound      = dao.ErrParentNotFound
	ErrParentWrongPost     = dao.ErrParentWrongPost
	ErrReplyToReply        = dao.ErrReplyToReply
	ErrNotFoundOrForbidden = dao.ErrNotFoundOrForbidden
)

//go:generate mockgen -source=./comment.go -package=repomocks -destination=./mocks/comment.mock.go CommentRepository
type CommentRepository interface {
	Create(ctx context.Context, c domain.Comment) (int64, error)
	// FindByPost 平铺快照，组装成两层的事情在 service 做
	FindByPost(ctx context.Context, postId int64) ([]domain.Comment, error)
	FindByUid(ctx context.Context, uid int64) ([]domain.Comment, error)
	UpdateContent(ctx context.Context, id, uid int64, content string) (domain.Comment, error)
	Delete(ctx context.Context, id, uid int64) error
}

type commentRepository struct {
	dao dao.CommentDAO
}

func NewCommentRepository(d dao.CommentDAO) CommentRepository {
	return &commentRepository{dao: d}
}

func (r *commentRepository) Create(ctx context.Context, c domain.Comment) (int64, error) {
	return r.dao.Create(ctx, r.toEntity(c))
}

func (r *commentRepository) FindByPost(ctx context.Context, postId int64) ([]domain.Comment, error) {
	ents, err := r.dao.FindByPost(ctx, postId)
	if err != nil {
		return nil, err
	}
	return slice.Map(ents, func(idx int, src dao.Comment) domain.Comment {
		return r.toDomain(src)
	}), nil
}

func (r *commentRepository) FindByUid(ctx context.Context, uid int64) ([]domain.Comment, error) {
	ents, err := r.dao.FindByUid(ctx, uid)
	if err != nil {
		return nil, err
	}
	return slice.Map(ents, func(idx int, src dao.Comment) domain.Comment {
		return r.toDomain(src)
	}), nil
}

func (r *commentRepository) UpdateContent(ctx context.Context, id, uid int64, content string) (domain.Comment, error) {
	ent, err := r.dao.UpdateContent(ctx, id, uid, content)
	if err != nil {
		return domain.Comment{}, err
	}
	return r.toDomain(ent), nil
}

func (r *commentRepository) Delete(ctx context.Context, id, uid int64) error {
	return r.dao.Delete(ctx, id, uid)
}

func (r *commentRepository) toEntity(c domain.Comment) dao.Comment {
	return dao.Comment{
		Id:      c.ID,
		Uid:     c.User.ID,
		PostId:  c.PostID,
		Content: c.Content,
		ParentCommentId: sql.Null[int64]{
			V:     c.ParentCommentID,
			Valid: c.ParentCommentID != 0,
		},
	}
}

func (r *commentRepository) toDomain(c dao.Comment) domain.Comment {
	var parentID int64
	if c.ParentCommentId.Valid {
		parentID = c.ParentCommentId.V
	}
	return domain.Comment{
		ID: c.Id,
		User: domain.User{
			ID: c.Uid,
		},
		PostID:          c.PostId,
		ParentCommentID: parentID,
		Content:         c.Content,
		LikesCount:      c.LikesCount,
		Ctime:           c.Ctime,
		Utime:           c.Utime,
	}
}
