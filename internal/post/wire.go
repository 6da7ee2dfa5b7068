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

package post

import (
	"context"
	"sync"

	"github.com/bwmarrin/snowflake"
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/leetaesk/blog-backend/internal/post/internal/events"
	"github.com/leetaesk/blog-backend/internal/post/internal/repository"
	"github.com/leetaesk/blog-backend/internal/post/internal/repository/cache"
	"github.com/leetaesk/blog-backend/internal/post/internal/repository/dao"
	"github.com/leetaesk/blog-backend/internal/post/internal/service"
	"github.com/leetaesk/blog-backend/internal/post/internal/web"
)

func InitModule(db *egorm.Component, ec ecache.Cache, q mq.MQ) (*Module, error) {
	wire.Build(
		initPostDAO,
		initSnowflakeNode,
		cache.NewPostCache,
		repository.NewCachedPostRepository,
		service.NewPostService,
		initConsumer,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

func initConsumer(q mq.MQ, c cache.PostCache) *events.EngagementConsumer {
	consumer, err := events.NewEngagementConsumer(q, c)
	if err != nil {
		panic(err)
	}
	consumer.Start(context.Background())
	return consumer
}

var once = &sync.Once{}

func initPostDAO(db *egorm.Component) dao.PostDAO {
	once.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMPostDAO(db)
}

func initSnowflakeNode() (*snowflake.Node, error) {
	return snowflake.NewNode(1)
}
