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

const (
	// ToggleTopic 其他系统投递过来的点赞动作
	ToggleTopic = "engagement_events"
	// ChangedTopic 切换落库之后对外广播的结果
	ChangedTopic = "engagement_changed_events"
)

// Event 入站的点赞动作，Action 目前只有 like
type Event struct {
	Biz   string `json:"biz,omitempty"`
	BizId int64  `json:"biz_id,omitempty"`
	// 取值是 like
	Action string `json:"action,omitempty"`
	Uid    int64  `json:"uid,omitempty"`
}

// ChangedEvent 切换后的结果广播，计数是事务里读回来的
type ChangedEvent struct {
	Biz   string `json:"biz"`
	BizId int64  `json:"biz_id"`
	Uid   int64  `json:"uid"`
	Liked bool   `json:"liked"`
	Count int64  `json:"count"`
}
