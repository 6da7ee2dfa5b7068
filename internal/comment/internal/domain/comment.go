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

package domain

type User struct {
	ID       int64
	Nickname string
	Avatar   string
}

// Post 我的评论列表里带出被评论的文章信息
type Post struct {
	ID           int64
	Title        string
	ThumbnailURL string
}

type Comment struct {
	ID int64
	// 评论的人
	User User
	// 评论挂在哪篇文章下面，回复别人时这个字段照样有值
	PostID int64
	// 0 表示顶层评论，非 0 表示回复的那条顶层评论的 ID
	ParentCommentID int64

	Content string
	// LikesCount 冗余计数，以数据库里的行为准
	LikesCount int64

	// IsOwner 和 IsLiked 按请求里的 uid 算出来，匿名请求都是 false
	IsOwner bool
	IsLiked bool

	// Replies 只有顶层评论才有，按评论时间正序
	Replies      []Comment
	RepliesCount int64

	Post Post

	Ctime int64
	Utime int64
}
