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

package producer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/mq-api"
	"github.com/leetaesk/blog-backend/internal/like/internal/events"
)

type ChangedEventProducer interface {
	Produce(ctx context.Context, evt events.ChangedEvent) error
}

type changedEventProducer struct {
	producer mq.Producer
}

func NewChangedEventProducer(q mq.MQ) (ChangedEventProducer, error) {
	p, err := q.Producer(events.ChangedTopic)
	if err != nil {
		return nil, err
	}
	return &changedEventProducer{producer: p}, nil
}

func (p *changedEventProducer) Produce(ctx context.Context, evt events.ChangedEvent) error {
	data, err := json.Marshal(&evt)
	if err != nil {
		return fmt.Errorf("序列化失败: %w", err)
	}
	_, err = p.producer.Produce(ctx, &mq.Message{Value: data})
	if err != nil {
		return fmt.Errorf("发送点赞结果事件失败: %w", err)
	}
	return nil
}
