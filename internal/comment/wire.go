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

//go:build wireinject

package comment

import (
	"sync"

	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/leetaesk/blog-backend/internal/comment/internal/repository"
	"github.com/leetaesk/blog-backend/internal/comment/internal/repository/dao"
	"github.com/leetaesk/blog-backend/internal/comment/internal/service"
	"github.com/leetaesk/blog-backend/internal/comment/internal/web"
	"github.com/leetaesk/blog-backend/internal/like"
	"github.com/leetaesk/blog-backend/internal/post"
	"github.com/leetaesk/blog-backend/internal/user"
)

func InitModule(db *egorm.Component,
	userModule *user.Module,
	postModule *post.Module,
	likeModule *like.Module) (*Module, error) {
	wire.Build(
		initCommentDAO,
		repository.NewCommentRepository,
		service.NewCommentService,
		web.NewHandler,
		wire.FieldsOf(new(*user.Module), "Svc"),
		wire.FieldsOf(new(*post.Module), "Svc"),
		wire.FieldsOf(new(*like.Module), "Svc"),
		wire.Struct(new(Module), "Svc", "Hdl"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func initCommentDAO(db *egorm.Component) (dao.CommentDAO, error) {
	var err error
	once.Do(func() {
		err = dao.InitTables(db)
	})
	if err != nil {
		return nil, err
	}
	return dao.NewCommentGORMDAO(db), nil
}
