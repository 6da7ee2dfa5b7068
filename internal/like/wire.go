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

package like

import (
	"context"
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/leetaesk/blog-backend/internal/like/internal/events/consumer"
	"github.com/leetaesk/blog-backend/internal/like/internal/events/producer"
	"github.com/leetaesk/blog-backend/internal/like/internal/repository"
	"github.com/leetaesk/blog-backend/internal/like/internal/repository/dao"
	"github.com/leetaesk/blog-backend/internal/like/internal/service"
	"github.com/leetaesk/blog-backend/internal/like/internal/web"
)

func InitModule(db *egorm.Component, q mq.MQ) (*Module, error) {
	wire.Build(
		initLikeDAO,
		producer.NewChangedEventProducer,
		repository.NewLikeRepository,
		service.NewLikeService,
		initConsumer,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

func initConsumer(svc service.LikeService, q mq.MQ) *consumer.ToggleConsumer {
	c, err := consumer.NewToggleConsumer(svc, q)
	if err != nil {
		panic(err)
	}
	c.Start(context.Background())
	return c
}

var once = &sync.Once{}

func initLikeDAO(db *egorm.Component) dao.LikeDAO {
	once.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMLikeDAO(db)
}
