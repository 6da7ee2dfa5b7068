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

package web

import (
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/leetaesk/blog-backend/internal/comment/internal/domain"
	"github.com/leetaesk/blog-backend/internal/comment/internal/service"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.CommentService
}

func NewHandler(svc service.CommentService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	group := server.Group("/comment")
	group.POST("/create", ginx.BS[CreateReq](h.Create))
	group.POST("/update", ginx.BS[UpdateReq](h.Update))
	group.POST("/delete", ginx.BS[DeleteReq](h.Delete))
	group.POST("/mine", ginx.S(h.Mine))
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	// 匿名也能看评论，登录了才有 isOwner 和 isLiked
	server.POST("/comment/list", ginx.B[ListReq](h.List))
}

func (h *Handler) Create(ctx *ginx.Context, req CreateReq, sess session.Session) (ginx.Result, error) {
	id, err := h.svc.Create(ctx, domain.Comment{
		User: domain.User{
			ID: sess.Claims().Uid,
		},
		PostID:          req.Pid,
		ParentCommentID: req.ParentId,
		Content:         req.Content,
	})
	if err != nil {
		return h.createErrResult(err), err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *Handler) createErrResult(err error) ginx.Result {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return invalidInputResult
	case errors.Is(err, service.ErrPostNotFound):
		return postNotFoundResult
	case errors.Is(err, service.ErrParentNotFound):
		return parentNotFoundResult
	case errors.Is(err, service.ErrParentWrongPost):
		return parentWrongPostResult
	case errors.Is(err, service.ErrReplyToReply):
		return replyToReplyResult
	default:
		return systemErrorResult
	}
}

func (h *Handler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	// uid 显式传下去，0 表示匿名
	var uid int64
	sess, err := session.Get(ctx)
	if err == nil {
		uid = sess.Claims().Uid
	}
	comments, total, err := h.svc.List(ctx, req.Pid, uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: CommentList{
			Comments: slice.Map(comments, func(idx int, src domain.Comment) Comment {
				return newComment(src)
			}),
			Total: total,
		},
	}, nil
}

func (h *Handler) Mine(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	comments, err := h.svc.ListMine(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(comments, func(idx int, src domain.Comment) Comment {
			return newComment(src)
		}),
	}, nil
}

func (h *Handler) Update(ctx *ginx.Context, req UpdateReq, sess session.Session) (ginx.Result, error) {
	c, err := h.svc.Update(ctx, req.Cid, sess.Claims().Uid, req.Content)
	if errors.Is(err, service.ErrInvalidInput) {
		return invalidInputResult, err
	}
	if errors.Is(err, service.ErrNotFoundOrForbidden) {
		return notFoundOrForbiddenResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newComment(c),
	}, nil
}

func (h *Handler) Delete(ctx *ginx.Context, req DeleteReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Delete(ctx, req.Cid, sess.Claims().Uid)
	if errors.Is(err, service.ErrNotFoundOrForbidden) {
		return notFoundOrForbiddenResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg: "OK",
	}, nil
}
