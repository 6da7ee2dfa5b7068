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
	"errors"
	"strings"

	"github.com/leetaesk/blog-backend/internal/comment/internal/domain"
	"github.com/leetaesk/blog-backend/internal/comment/internal/repository"
	"github.com/leetaesk/blog-backend/internal/like"
	"github.com/leetaesk/blog-backend/internal/post"
	"github.com/leetaesk/blog-backend/internal/user"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidInput        = errors.New("评论内容不能为空")
	ErrPostNotFound        = errors.New("文章不存在")
	ErrParentNotFound      = repository.ErrParentNotFound
	ErrParentWrongPost     = repository.ErrParentWrongPost
	ErrReplyToReply        = repository.ErrReplyToReply
	ErrNotFoundOrForbidden = repository.ErrNotFoundOrForbidden
)

type CommentService interface {
	// Create 先校验内容和文章，父评论的校验在存储层的事务里
	Create(ctx context.Context, c domain.Comment) (int64, error)
	// List 某篇文章下组装好的两层评论，uid 为 0 表示匿名
	List(ctx context.Context, postId, uid int64) ([]domain.Comment, int64, error)
	// ListMine 我发过的评论，带上文章标题
	ListMine(ctx context.Context, uid int64) ([]domain.Comment, error)
	Update(ctx context.Context, id, uid int64, content string) (domain.Comment, error)
	Delete(ctx context.Context, id, uid int64) error
}

type commentService struct {
	repo    repository.CommentRepository
	userSvc user.UserService
	postSvc post.PostService
	likeSvc like.LikeService
}

func NewCommentService(repo repository.CommentRepository,
	userSvc user.UserService,
	postSvc post.PostService,
	likeSvc like.LikeService) CommentService {
	return &commentService{
		repo:    repo,
		userSvc: userSvc,
		postSvc: postSvc,
		likeSvc: likeSvc,
	}
}

func (s *commentService) Create(ctx context.Context, c domain.Comment) (int64, error) {
	c.Content = strings.TrimSpace(c.Content)
	if c.Content == "" {
		return 0, ErrInvalidInput
	}
	exists, err := s.postSvc.Exists(ctx, c.PostID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, ErrPostNotFound
	}
	return s.repo.Create(ctx, c)
}

func (s *commentService) List(ctx context.Context, postId, uid int64) ([]domain.Comment, int64, error) {
	comments, err := s.repo.FindByPost(ctx, postId)
	if err != nil {
		return nil, 0, err
	}

	var (
		eg    errgroup.Group
		liked map[int64]bool
	)
	eg.Go(func() error {
		return s.setUserInfo(ctx, comments)
	})
	if uid > 0 {
		eg.Go(func() error {
			ids := make([]int64, 0, len(comments))
			for i := range comments {
				ids = append(ids, comments[i].ID)
			}
			var err1 error
			liked, err1 = s.likeSvc.CommentIDsLikedBy(ctx, uid, ids)
			return err1
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}

	for i := range comments {
		comments[i].IsOwner = uid > 0 && comments[i].User.ID == uid
		comments[i].IsLiked = liked[comments[i].ID]
	}

	top, err := assembleThread(comments)
	if err != nil {
		return nil, 0, err
	}
	return top, int64(len(top)), nil
}

func (s *commentService) ListMine(ctx context.Context, uid int64) ([]domain.Comment, error) {
	comments, err := s.repo.FindByUid(ctx, uid)
	if err != nil {
		return nil, err
	}
	if len(comments) == 0 {
		return comments, nil
	}

	ids := make([]int64, 0, len(comments))
	postIds := make([]int64, 0, len(comments))
	for i := range comments {
		ids = append(ids, comments[i].ID)
		postIds = append(postIds, comments[i].PostID)
	}

	var (
		eg    errgroup.Group
		liked map[int64]bool
		posts []post.Post
	)
	eg.Go(func() error {
		var err1 error
		liked, err1 = s.likeSvc.CommentIDsLikedBy(ctx, uid, ids)
		return err1
	})
	eg.Go(func() error {
		var err1 error
		posts, err1 = s.postSvc.BatchByIDs(ctx, postIds)
		return err1
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	postMap := make(map[int64]post.Post, len(posts))
	for _, p := range posts {
		postMap[p.Id] = p
	}
	for i := range comments {
		comments[i].IsOwner = true
		comments[i].IsLiked = liked[comments[i].ID]
		if p, ok := postMap[comments[i].PostID]; ok {
			comments[i].Post = domain.Post{
				ID:           p.Id,
				Title:        p.Title,
				ThumbnailURL: p.ThumbnailURL,
			}
		}
	}
	return comments, nil
}

func (s *commentService) Update(ctx context.Context, id, uid int64, content string) (domain.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return domain.Comment{}, ErrInvalidInput
	}
	return s.repo.UpdateContent(ctx, id, uid, content)
}

func (s *commentService) Delete(ctx context.Context, id, uid int64) error {
	return s.repo.Delete(ctx, id, uid)
}

func (s *commentService) setUserInfo(ctx context.Context, comments []domain.Comment) error {
	if len(comments) == 0 {
		return nil
	}
	uids := make([]int64, 0, len(comments))
	for i := range comments {
		uids = append(uids, comments[i].User.ID)
	}
	profiles, err := s.userSvc.BatchProfile(ctx, uids)
	if err != nil {
		return err
	}
	userMap := make(map[int64]domain.User, len(profiles))
	for _, p := range profiles {
		userMap[p.ID] = domain.User{
			ID:       p.ID,
			Nickname: p.Nickname,
			Avatar:   p.Avatar,
		}
	}
	for i := range comments {
		if u, ok := userMap[comments[i].User.ID]; ok {
			comments[i].User = u
		}
	}
	return nil
}
