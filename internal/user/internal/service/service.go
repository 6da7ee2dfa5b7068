// Copyright 2025 leetaesk
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"context"

	"github.com/leetaesk/blog-backend/internal/user/internal/domain"
	"github.com/leetaesk/blog-backend/internal/user/internal/repository"
)

// UserService 只承担资料读取，登录和令牌签发由网关侧的 session 机制解决
type UserService interface {
	Profile(ctx context.Context, id int64) (domain.User, error)
	// BatchProfile 批量拉取用户资料，评论列表组装作者信息的时候用
	BatchProfile(ctx context.Context, ids []int64) ([]domain.User, error)
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) Profile(ctx context.Context, id int64) (domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *userService) BatchProfile(ctx context.Context, ids []int64) ([]domain.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return s.repo.FindByIDs(ctx, ids)
}
