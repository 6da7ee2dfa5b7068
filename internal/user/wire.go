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

//go:build wireinject

package user

import (
	"sync"

	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/leetaesk/blog-backend/internal/user/internal/repository"
	"github.com/leetaesk/blog-backend/internal/user/internal/repository/dao"
	"github.com/leetaesk/blog-backend/internal/user/internal/service"
)

func InitModule(db *egorm.Component) (*Module, error) {
	wire.Build(
		initUserDAO,
		repository.NewUserRepository,
		service.NewUserService,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func initUserDAO(db *egorm.Component) (dao.UserDAO, error) {
	var err error
	once.Do(func() {
		err = dao.InitTables(db)
	})
	if err != nil {
		return nil, err
	}
	return dao.NewGORMUserDAO(db), nil
}
