package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/leetaesk/blog-backend/internal/comment/internal/domain"
)

type CreateReq struct {
	Pid int64 `json:"pid"`
	// 回复某条顶层评论时带上它的 ID，发顶层评论就不传
	ParentId int64  `json:"parentId,omitempty"`
	Content  string `json:"content"`
}

type ListReq struct {
	Pid int64 `json:"pid"`
}

type UpdateReq struct {
	Cid     int64  `json:"cid"`
	Content string `json:"content"`
}

type DeleteReq struct {
	Cid int64 `json:"cid"`
}

type User struct {
	Id       int64  `json:"id,omitempty"`
	Nickname string `json:"nickname,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
}

type Post struct {
	Id           int64  `json:"id,omitempty"`
	Title        string `json:"title,omitempty"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
}

type Comment struct {
	Id           int64     `json:"id"`
	User         User      `json:"user"`
	Pid          int64     `json:"pid"`
	ParentId     int64     `json:"parentId,omitempty"`
	Content      string    `json:"content"`
	LikesCount   int64     `json:"likesCount"`
	IsOwner      bool      `json:"isOwner"`
	IsLiked      bool      `json:"isLiked"`
	Replies      []Comment `json:"replies,omitempty"`
	RepliesCount int64     `json:"repliesCount"`
	Post         Post      `json:"post,omitempty"`
	Ctime        int64     `json:"ctime"`
	Utime        int64     `json:"utime"`
}

type CommentList struct {
	Comments []Comment `json:"comments"`
	Total    int64     `json:"total"`
}

func newComment(c domain.Comment) Comment {
	return Comment{
		Id: c.ID,
		User: User{
			Id:       c.User.ID,
			Nickname: c.User.Nickname,
			Avatar:   c.User.Avatar,
		},
		Pid:        c.PostID,
		ParentId:   c.ParentCommentID,
		Content:    c.Content,
		LikesCount: c.LikesCount,
		IsOwner:    c.IsOwner,
		IsLiked:    c.IsLiked,
		Replies: slice.Map(c.Replies, func(idx int, src domain.Comment) Comment {
			return newComment(src)
		}),
		RepliesCount: c.RepliesCount,
		Post: Post{
			Id:           c.Post.ID,
			Title:        c.Post.Title,
			ThumbnailURL: c.Post.ThumbnailURL,
		},
		Ctime: c.Ctime,
		Utime: c.Utime,
	}
}
