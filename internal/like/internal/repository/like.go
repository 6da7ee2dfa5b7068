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

	"github.com/leetaesk/blog-backend/internal/like/internal/domain"
	"github.com/leetaesk/blog-backend/internal/like/internal/repository/dao"
)

var (
	ErrTargetNotFound = dao.ErrTargetNotFound
	ErrUnknownBiz     = dao.ErrUnknownBiz
)

type LikeRepository interface {
	Toggle(ctx context.Context, biz string, targetId, uid int64) (domain.LikeStatus, error)
	LikedIds(ctx context.Context, biz string, uid int64, targetIds []int64) (map[int64]bool, error)
}

type likeRepository struct {
	dao dao.LikeDAO
}

func NewLikeRepository(d dao.LikeDAO) LikeRepository {
	return &likeRepository{dao: d}
}

func (r *likeRepository) Toggle(ctx context.Context, biz string, targetId, uid int64) (domain.LikeStatus, error) {
	liked, count, err := r.dao.Toggle(ctx, biz, targetId, uid)
	if err != nil {
		return domain.LikeStatus{}, err
	}
	return domain.LikeStatus{
		TargetID:   targetId,
		Liked:      liked,
		LikesCount: count,
	}, nil
}

func (r *likeRepository) LikedIds(ctx context.Context, biz string, uid int64, targetIds []int64) (map[int64]bool, error) {
	ids, err := r.dao.LikedIds(ctx, biz, uid, targetIds)
	if err != nil {
		return nil, err
	}
	res := make(map[int64]bool, len(ids))
	for _, id := range ids {
		res[id] = true
	}
	return res, nil
}
