// Copyright 2025 leetaesk
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package user

import (
	"github.com/leetaesk/blog-backend/internal/user/internal/domain"
	"github.com/leetaesk/blog-backend/internal/user/internal/service"
)

type User = domain.User

// UserService 方便别的模块引用和测试
//
//go:generate mockgen -source=./internal/service/service.go -destination=./mocks/svc.mock.go -package=usermocks
type UserService = service.UserService

type Module struct {
	Svc UserService
}
