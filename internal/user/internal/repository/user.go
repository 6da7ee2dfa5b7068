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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/leetaesk/blog-backend/internal/user/internal/domain"
	"github.com/leetaesk/blog-backend/internal/user/internal/repository/dao"
)

var ErrUserNotFound = dao.ErrRecordNotFound

type UserRepository interface {
	FindByID(ctx context.Context, id int64) (domain.User, error)
	FindByIDs(ctx context.Context, ids []int64) ([]domain.User, error)
	Create(ctx context.Context, u domain.User) (int64, error)
}

type userRepository struct {
	dao dao.UserDAO
}

func NewUserRepository(dao dao.UserDAO) UserRepository {
	return &userRepository{dao: dao}
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (domain.User, error) {
	u, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	return r.toDomain(u), nil
}

func (r *userRepository) FindByIDs(ctx context.Context, ids []int64) ([]domain.User, error) {
	users, err := r.dao.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return slice.Map(users, func(_ int, src dao.User) domain.User {
		return r.toDomain(src)
	}), nil
}

func (r *userRepository) Create(ctx context.Context, u domain.User) (int64, error) {
	return r.dao.Insert(ctx, dao.User{
		Nickname: u.Nickname,
		Avatar:   u.Avatar,
	})
}

func (r *userRepository) toDomain(u dao.User) domain.User {
	return domain.User{
		ID:       u.Id,
		Nickname: u.Nickname,
		Avatar:   u.Avatar,
	}
}
