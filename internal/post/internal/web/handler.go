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
	"github.com/gotomicro/ego/core/elog"
	"github.com/leetaesk/blog-backend/internal/post/internal/domain"
	"github.com/leetaesk/blog-backend/internal/post/internal/service"
)

type Handler struct {
	svc    service.PostService
	logger *elog.Component
}

func NewHandler(svc service.PostService) *Handler {
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.POST("/post/save", ginx.BS[SaveReq](h.Save))
	server.POST("/post/update", ginx.BS[SaveReq](h.Update))
	server.POST("/post/delete", ginx.BS[PostId](h.Delete))
	server.POST("/post/mine", ginx.BS[Page](h.Mine))
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/post/list", ginx.B[Page](h.List))
	server.POST("/post/detail", ginx.B[PostId](h.Detail))
}

func (h *Handler) Save(ctx *ginx.Context, req SaveReq, sess session.Session) (ginx.Result, error) {
	p := req.Post.toDomain()
	p.Uid = sess.Claims().Uid
	id, err := h.svc.Create(ctx, p)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *Handler) Update(ctx *ginx.Context, req SaveReq, sess session.Session) (ginx.Result, error) {
	p := req.Post.toDomain()
	p.Uid = sess.Claims().Uid
	err := h.svc.Update(ctx, p)
	if errors.Is(err, service.ErrPostNotFound) {
		return postNotFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}

func (h *Handler) Delete(ctx *ginx.Context, req PostId, sess session.Session) (ginx.Result, error) {
	err := h.svc.Delete(ctx, req.Pid, sess.Claims().Uid)
	if errors.Is(err, service.ErrPostNotFound) {
		return postNotFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}

func (h *Handler) Mine(ctx *ginx.Context, req Page, sess session.Session) (ginx.Result, error) {
	data, err := h.svc.ListMine(ctx, sess.Claims().Uid, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(data, func(idx int, src domain.Post) Post {
			return newPost(src)
		}),
	}, nil
}

func (h *Handler) List(ctx *ginx.Context, req Page) (ginx.Result, error) {
	data, total, err := h.svc.List(ctx, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: PostList{
			Total: total,
			Posts: slice.Map(data, func(idx int, src domain.Post) Post {
				return newPost(src)
			}),
		},
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req PostId) (ginx.Result, error) {
	detail, err := h.svc.Detail(ctx, req.Pid)
	if errors.Is(err, service.ErrPostNotFound) {
		return postNotFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newPost(detail),
	}, nil
}
