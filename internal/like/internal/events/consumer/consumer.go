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

package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
	"github.com/leetaesk/blog-backend/internal/like/internal/events"
	"github.com/leetaesk/blog-backend/internal/like/internal/service"
)

// ToggleConsumer 消费其他系统投递的点赞动作，走和 HTTP 入口同一个切换协议
type ToggleConsumer struct {
	consumer mq.Consumer
	svc      service.LikeService
	logger   *elog.Component
}

func NewToggleConsumer(svc service.LikeService, q mq.MQ) (*ToggleConsumer, error) {
	groupID := "engagement_group"
	consumer, err := q.Consumer(events.ToggleTopic, groupID)
	if err != nil {
		return nil, err
	}
	return &ToggleConsumer{
		consumer: consumer,
		svc:      svc,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *ToggleConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt events.Event
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	if evt.Action != "like" {
		return errors.New("未找到相关动作的处理方法")
	}
	switch evt.Biz {
	case "post":
		_, err = c.svc.TogglePost(ctx, evt.BizId, evt.Uid)
	case "comment":
		_, err = c.svc.ToggleComment(ctx, evt.BizId, evt.Uid)
	default:
		return service.ErrUnknownBiz
	}
	if err != nil {
		c.logger.Error("处理点赞事件失败", elog.Any("engagement_event", evt))
	}
	return err
}

func (c *ToggleConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("消费点赞事件失败", elog.FieldErr(err))
			}
		}
	}()
}

func (c *ToggleConsumer) Stop(_ context.Context) error {
	return c.consumer.Close()
}
