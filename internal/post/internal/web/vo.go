package web

import (
	"time"

	"github.com/leetaesk/blog-backend/internal/post/internal/domain"
)

type Page struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type PostId struct {
	Pid int64 `json:"pid"`
}

type SaveReq struct {
	Post Post `json:"post,omitempty"`
}

type PostList struct {
	Total int64  `json:"total,omitempty"`
	Posts []Post `json:"posts,omitempty"`
}

type Post struct {
	Id           int64  `json:"id,omitempty"`
	Uid          int64  `json:"uid,omitempty"`
	Title        string `json:"title,omitempty"`
	Content      string `json:"content,omitempty"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
	LikesCount   int64  `json:"likesCount,omitempty"`
	Ctime        string `json:"ctime,omitempty"`
	Utime        string `json:"utime,omitempty"`
}

func (p Post) toDomain() domain.Post {
	return domain.Post{
		Id:           p.Id,
		Title:        p.Title,
		Content:      p.Content,
		ThumbnailURL: p.ThumbnailURL,
	}
}

func newPost(p domain.Post) Post {
	return Post{
		Id:           p.Id,
		Uid:          p.Uid,
		Title:        p.Title,
		Content:      p.Content,
		ThumbnailURL: p.ThumbnailURL,
		LikesCount:   p.LikesCount,
		Ctime:        p.Ctime.Format(time.DateTime),
		Utime:        p.Utime.Format(time.DateTime),
	}
}
