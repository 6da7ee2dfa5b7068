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

import "time"

type Post struct {
	Id           int64
	Uid          int64
	Title        string
	Content      string
	ThumbnailURL string
	// LikesCount 点赞数的冗余计数，以数据库里的行为准
	LikesCount int64
	Ctime      time.Time
	Utime      time.Time
}
