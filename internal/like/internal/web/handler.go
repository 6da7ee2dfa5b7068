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

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/leetaesk/blog-backend/internal/like/internal/domain"
	"github.com/leetaesk/blog-backend/internal/like/internal/service"
)

type Handler struct {
	svc service.LikeService
}

func NewHandler(svc service.LikeService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.POST("/like/post", ginx.BS[LikePostReq](h.TogglePost))
	server.POST("/like/comment", ginx.BS[LikeCommentReq](h.ToggleComment))
}

func (h *Handler) PublicRoutes(server *gin.Engine) {}

func (h *Handler) TogglePost(ctx *ginx.Context, req LikePostReq, sess session.Session) (ginx.Result, error) {
	res, err := h.svc.TogglePost(ctx, req.Pid, sess.Claims().Uid)
	return h.toResult(res, err)
}

func (h *Handler) ToggleComment(ctx *ginx.Context, req LikeCommentReq, sess session.Session) (ginx.Result, error) {
	res, err := h.svc.ToggleComment(ctx, req.Cid, sess.Claims().Uid)
	return h.toResult(res, err)
}

func (h *Handler) toResult(res domain.LikeStatus, err error) (ginx.Result, error) {
	if errors.Is(err, service.ErrTargetNotFound) {
		return targetNotFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newLikeStatus(res),
	}, nil
}
