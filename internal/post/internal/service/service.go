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

	"github.com/bwmarrin/snowflake"
	"github.com/leetaesk/blog-backend/internal/post/internal/domain"
	"github.com/leetaesk/blog-backend/internal/post/internal/repository"
	"golang.org/x/sync/errgroup"
)

var (
	ErrPostNotFound = repository.ErrPostNotFound
)

type PostService interface {
	Create(ctx context.Context, p domain.Post) (int64, error)
	Detail(ctx context.Context, id int64) (domain.Post, error)
	// BatchByIDs 只返回还存在的文章，调用方自己按 id 对齐
	BatchByIDs(ctx context.Context, ids []int64) ([]domain.Post, error)
	Exists(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context, offset, limit int) ([]domain.Post, int64, error)
	ListMine(ctx context.Context, uid int64, offset, limit int) ([]domain.Post, error)
	Update(ctx context.Context, p domain.Post) error
	Delete(ctx context.Context, id, uid int64) error
}

type postService struct {
	repo repository.PostRepository
	node *snowflake.Node
}

func NewPostService(repo repository.PostRepository, node *snowflake.Node) PostService {
	return &postService{
		repo: repo,
		node: node,
	}
}

func (s *postService) Create(ctx context.Context, p domain.Post) (int64, error) {
	p.Id = s.node.Generate().Int64()
	return s.repo.Create(ctx, p)
}

func (s *postService) Detail(ctx context.Context, id int64) (domain.Post, error) {
	return s.repo.FindById(ctx, id)
}

func (s *postService) BatchByIDs(ctx context.Context, ids []int64) ([]domain.Post, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return s.repo.FindByIds(ctx, ids)
}

func (s *postService) Exists(ctx context.Context, id int64) (bool, error) {
	return s.repo.Exists(ctx, id)
}

func (s *postService) List(ctx context.Context, offset, limit int) ([]domain.Post, int64, error) {
	var (
		eg    errgroup.Group
		posts []domain.Post
		total int64
	)
	eg.Go(func() error {
		var err error
		posts, err = s.repo.List(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx)
		return err
	})
	return posts, total, eg.Wait()
}

func (s *postService) ListMine(ctx context.Context, uid int64, offset, limit int) ([]domain.Post, error) {
	return s.repo.ListByUid(ctx, uid, offset, limit)
}

func (s *postService) Update(ctx context.Context, p domain.Post) error {
	return s.repo.Update(ctx, p)
}

func (s *postService) Delete(ctx context.Context, id, uid int64) error {
	return s.repo.Delete(ctx, id, uid)
}
