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

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/leetaesk/blog-backend/internal/post/internal/domain"
	"github.com/pkg/errors"
)

const (
	expiration = 10 * time.Minute
)

var (
	ErrPostNotFound = errors.New("文章缓存没找到")
)

type PostCache interface {
	SetPost(ctx context.Context, p domain.Post) error
	GetPost(ctx context.Context, id int64) (domain.Post, error)
	DelPost(ctx context.Context, id int64) error
}

type postCache struct {
	ec ecache.Cache
}

func NewPostCache(ec ecache.Cache) PostCache {
	return &postCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "post:",
		},
	}
}

func (c *postCache) SetPost(ctx context.Context, p domain.Post) error {
	bytes, err := json.Marshal(p)
	if err != nil {
		return errors.Wrap(err, "序列化文章失败")
	}
	return c.ec.Set(ctx, c.postKey(p.Id), string(bytes), expiration)
}

func (c *postCache) GetPost(ctx context.Context, id int64) (domain.Post, error) {
	val := c.ec.Get(ctx, c.postKey(id))
	if val.KeyNotFound() {
		return domain.Post{}, ErrPostNotFound
	}
	if val.Err != nil {
		return domain.Post{}, val.Err
	}
	var res domain.Post
	err := json.Unmarshal([]byte(val.Val.(string)), &res)
	return res, errors.Wrap(err, "反序列化文章失败")
}

func (c *postCache) DelPost(ctx context.Context, id int64) error {
	_, err := c.ec.Delete(ctx, c.postKey(id))
	return err
}

func (c *postCache) postKey(id int64) string {
	return fmt.Sprintf("detail:%d", id)
}
