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

package service

import (
	"context"

	"github.com/gotomicro/ego/core/elog"
	"github.com/leetaesk/blog-backend/internal/like/internal/domain"
	"github.com/leetaesk/blog-backend/internal/like/internal/events"
	"github.com/leetaesk/blog-backend/internal/like/internal/events/producer"
	"github.com/leetaesk/blog-backend/internal/like/internal/repository"
)

var (
	ErrTargetNotFound = repository.ErrTargetNotFound
	ErrUnknownBiz     = repository.ErrUnknownBiz
)

type LikeService interface {
	// TogglePost 同一个 uid 对同一篇文章再点一次就是取消
	TogglePost(ctx context.Context, postId, uid int64) (domain.LikeStatus, error)
	ToggleComment(ctx context.Context, commentId, uid int64) (domain.LikeStatus, error)
	// PostIDsLikedBy 批量查 uid 点赞过 ids 里的哪些文章，列表渲染用
	PostIDsLikedBy(ctx context.Context, uid int64, ids []int64) (map[int64]bool, error)
	CommentIDsLikedBy(ctx context.Context, uid int64, ids []int64) (map[int64]bool, error)
}

type likeService struct {
	repo     repository.LikeRepository
	producer producer.ChangedEventProducer
	logger   *elog.Component
}

func NewLikeService(repo repository.LikeRepository,
	producer producer.ChangedEventProducer) LikeService {
	return &likeService{
		repo:     repo,
		producer: producer,
		logger:   elog.DefaultLogger,
	}
}

func (s *likeService) TogglePost(ctx context.Context, postId, uid int64) (domain.LikeStatus, error) {
	return s.toggle(ctx, domain.BizPost, postId, uid)
}

func (s *likeService) ToggleComment(ctx context.Context, commentId, uid int64) (domain.LikeStatus, error) {
	return s.toggle(ctx, domain.BizComment, commentId, uid)
}

func (s *likeService) toggle(ctx context.Context, biz string, targetId, uid int64) (domain.LikeStatus, error) {
	res, err := s.repo.Toggle(ctx, biz, targetId, uid)
	if err != nil {
		return domain.LikeStatus{}, err
	}
	// 事件发不出去不影响已经落库的切换结果
	err = s.producer.Produce(ctx, events.ChangedEvent{
		Biz:   biz,
		BizId: targetId,
		Uid:   uid,
		Liked: res.Liked,
		Count: res.LikesCount,
	})
	if err != nil {
		s.logger.Error("发送点赞结果事件失败",
			elog.String("biz", biz),
			elog.Int64("bizId", targetId),
			elog.FieldErr(err))
	}
	return res, nil
}

func (s *likeService) PostIDsLikedBy(ctx context.Context, uid int64, ids []int64) (map[int64]bool, error) {
	return s.repo.LikedIds(ctx, domain.BizPost, uid, ids)
}

func (s *likeService) CommentIDsLikedBy(ctx context.Context, uid int64, ids []int64) (map[int64]bool, error) {
	return s.repo.LikedIds(ctx, domain.BizComment, uid, ids)
}
