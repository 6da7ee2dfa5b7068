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

package like

import (
	"github.com/leetaesk/blog-backend/internal/like/internal/domain"
	"github.com/leetaesk/blog-backend/internal/like/internal/events/consumer"
	"github.com/leetaesk/blog-backend/internal/like/internal/service"
	"github.com/leetaesk/blog-backend/internal/like/internal/web"
)

type Module struct {
	Svc LikeService
	Hdl *Handler
	C   *consumer.ToggleConsumer
}

type Handler = web.Handler

//go:generate mockgen -source=./internal/service/service.go -destination=./mocks/svc.mock.go -package=likemocks
type LikeService = service.LikeService
type LikeStatus = domain.LikeStatus

const (
	BizPost    = domain.BizPost
	BizComment = domain.BizComment
)
