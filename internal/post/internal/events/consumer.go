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

package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
	"github.com/leetaesk/blog-backend/internal/post/internal/repository/cache"
)

const changedTopic = "engagement_changed_events"

// EngagementEvent 点赞模块广播的切换结果，这里只关心 biz 是 post 的
type EngagementEvent struct {
	Biz   string `json:"biz"`
	BizId int64  `json:"biz_id"`
	Uid   int64  `json:"uid"`
	Liked bool   `json:"liked"`
	Count int64  `json:"count"`
}

// EngagementConsumer 点赞数变了就把详情缓存踢掉，下次读库重建
type EngagementConsumer struct {
	consumer mq.Consumer
	cache    cache.PostCache
	logger   *elog.Component
}

func NewEngagementConsumer(q mq.MQ, c cache.PostCache) (*EngagementConsumer, error) {
	groupID := "post_cache_group"
	consumer, err := q.Consumer(changedTopic, groupID)
	if err != nil {
		return nil, err
	}
	return &EngagementConsumer{
		consumer: consumer,
		cache:    c,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *EngagementConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt EngagementEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	if evt.Biz != "post" {
		return nil
	}
	return c.cache.DelPost(ctx, evt.BizId)
}

func (c *EngagementConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("淘汰文章缓存失败", elog.FieldErr(err))
			}
		}
	}()
}

func (c *EngagementConsumer) Stop(_ context.Context) error {
	return c.consumer.Close()
}
