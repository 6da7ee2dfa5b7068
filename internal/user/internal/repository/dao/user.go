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

package dao

import (
	"context"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type User struct {
	Id       int64  `gorm:"primaryKey;autoIncrement"`
	Nickname string `gorm:"type:varchar(128);not null"`
	Avatar   string `gorm:"type:varchar(512)"`
	Ctime    int64
	Utime    int64
}

func (User) TableName() string {
	return "users"
}

type UserDAO interface {
	FindByID(ctx context.Context, id int64) (User, error)
	FindByIDs(ctx context.Context, ids []int64) ([]User, error)
	Insert(ctx context.Context, u User) (int64, error)
}

type userDAO struct {
	db *egorm.Component
}

func NewGORMUserDAO(db *egorm.Component) UserDAO {
	return &userDAO{db: db}
}

func (g *userDAO) FindByID(ctx context.Context, id int64) (User, error) {
	var u User
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return User{}, ErrRecordNotFound
	}
	return u, err
}

func (g *userDAO) FindByIDs(ctx context.Context, ids []int64) ([]User, error) {
	var users []User
	err := g.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error
	return users, err
}

func (g *userDAO) Insert(ctx context.Context, u User) (int64, error) {
	now := time.Now().UnixMilli()
	u.Ctime, u.Utime = now, now
	err := g.db.WithContext(ctx).Create(&u).Error
	return u.Id, err
}
