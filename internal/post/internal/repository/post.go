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
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
	"github.com/leetaesk/blog-backend/internal/post/internal/domain"
	"github.com/leetaesk/blog-backend/internal/post/internal/repository/cache"
	"github.com/leetaesk/blog-backend/internal/post/internal/repository/dao"
)

var (
	ErrPostNotFound = dao.ErrRecordNotFound
)

type PostRepository interface {
	Create(ctx context.Context, p domain.Post) (int64, error)
	FindById(ctx context.Context, id int64) (domain.Post, error)
	FindByIds(ctx context.Context, ids []int64) ([]domain.Post, error)
	Exists(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context, offset, limit int) ([]domain.Post, error)
	Count(ctx context.Context) (int64, error)
	ListByUid(ctx context.Context, uid int64, offset, limit int) ([]domain.Post, error)
	Update(ctx context.Context, p domain.Post) error
	Delete(ctx context.Context, id, uid int64) error
}

type CachedPostRepository struct {
	dao    dao.PostDAO
	cache  cache.PostCache
	logger *elog.Component
}

func NewCachedPostRepository(d dao.PostDAO, c cache.PostCache) PostRepository {
	return &CachedPostRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (r *CachedPostRepository) Create(ctx context.Context, p domain.Post) (int64, error) {
	return r.dao.Insert(ctx, r.toEntity(p))
}

func (r *CachedPostRepository) FindById(ctx context.Context, id int64) (domain.Post, error) {
	res, err := r.cache.GetPost(ctx, id)
	if err == nil {
		return res, nil
	}
	ent, err := r.dao.FindById(ctx, id)
	if err != nil {
		return domain.Post{}, err
	}
	res = r.toDomain(ent)
	err = r.cache.SetPost(ctx, res)
	if err != nil {
		r.logger.Error("回写文章缓存失败",
			elog.Int64("pid", id), elog.FieldErr(err))
	}
	return res, nil
}

func (r *CachedPostRepository) FindByIds(ctx context.Context, ids []int64) ([]domain.Post, error) {
	ents, err := r.dao.FindByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	return slice.Map(ents, func(idx int, src dao.Post) domain.Post {
		return r.toDomain(src)
	}), nil
}

func (r *CachedPostRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return r.dao.Exists(ctx, id)
}

func (r *CachedPostRepository) List(ctx context.Context, offset, limit int) ([]domain.Post, error) {
	ents, err := r.dao.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(ents, func(idx int, src dao.Post) domain.Post {
		return r.toDomain(src)
	}), nil
}

func (r *CachedPostRepository) Count(ctx context.Context) (int64, error) {
	return r.dao.Count(ctx)
}

func (r *CachedPostRepository) ListByUid(ctx context.Context, uid int64, offset, limit int) ([]domain.Post, error) {
	ents, err := r.dao.ListByUid(ctx, uid, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(ents, func(idx int, src dao.Post) domain.Post {
		return r.toDomain(src)
	}), nil
}

func (r *CachedPostRepository) Update(ctx context.Context, p domain.Post) error {
	err := r.dao.Update(ctx, r.toEntity(p))
	if err != nil {
		return err
	}
	return r.cache.DelPost(ctx, p.Id)
}

func (r *CachedPostRepository) Delete(ctx context.Context, id, uid int64) error {
	err := r.dao.Delete(ctx, id, uid)
	if err != nil {
		return err
	}
	return r.cache.DelPost(ctx, id)
}

func (r *CachedPostRepository) toEntity(p domain.Post) dao.Post {
	return dao.Post{
		Id:           p.Id,
		Uid:          p.Uid,
		Title:        p.Title,
		Content:      p.Content,
		ThumbnailUrl: p.ThumbnailURL,
		LikesCount:   p.LikesCount,
	}
}

func (r *CachedPostRepository) toDomain(p dao.Post) domain.Post {
	return domain.Post{
		Id:           p.Id,
		Uid:          p.Uid,
		Title:        p.Title,
		Content:      p.Content,
		ThumbnailURL: p.ThumbnailUrl,
		LikesCount:   p.LikesCount,
		Ctime:        time.UnixMilli(p.Ctime),
		Utime:        time.UnixMilli(p.Utime),
	}
}
