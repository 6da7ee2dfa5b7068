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

package service

import (
	"errors"
	"fmt"

	"github.com/leetaesk/blog-backend/internal/comment/internal/domain"
)

var ErrCorruptThread = errors.New("评论引用了不存在的父评论")

// assembleThread 把平铺的评论快照组装成两层结构，三趟线性扫描，不递归。
// 输入要求按评论时间正序，组装保持这个顺序。
// 父评论 ID 非 0 但快照里找不到，说明数据坏了，直接报错不吞。
func assembleThread(comments []domain.Comment) ([]domain.Comment, error) {
	index := make(map[int64]*domain.Comment, len(comments))
	for i := range comments {
		index[comments[i].ID] = &comments[i]
	}

	top := make([]*domain.Comment, 0, len(comments))
	for i := range comments {
		c := &comments[i]
		if c.ParentCommentID == 0 {
			top = append(top, c)
			continue
		}
		parent, ok := index[c.ParentCommentID]
		if !ok {
			return nil, fmt.Errorf("%w: comment=%d parent=%d",
				ErrCorruptThread, c.ID, c.ParentCommentID)
		}
		parent.Replies = append(parent.Replies, *c)
	}

	res := make([]domain.Comment, 0, len(top))
	for _, t := range top {
		t.RepliesCount = int64(len(t.Replies))
		res = append(res, *t)
	}
	return res, nil
}
