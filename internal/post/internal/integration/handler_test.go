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

//go:build e2e

package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/leetaesk/blog-backend/internal/post"
	"github.com/leetaesk/blog-backend/internal/post/internal/integration/startup"
	"github.com/leetaesk/blog-backend/internal/post/internal/web"
	"github.com/leetaesk/blog-backend/internal/test"
	testioc "github.com/leetaesk/blog-backend/internal/test/ioc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	uid  = int64(2234)
	uid2 = int64(3345)
)

type HandlerTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
	svc    post.PostService
}

func (s *HandlerTestSuite) SetupSuite() {
	module, err := startup.InitModule()
	require.NoError(s.T(), err)
	s.db = testioc.InitDB()
	s.svc = module.Svc

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: uid,
		}))
	})
	module.Hdl.PublicRoutes(server.Engine)
	module.Hdl.PrivateRoutes(server.Engine)
	s.server = server
}

func (s *HandlerTestSuite) TearDownTest() {
	require.NoError(s.T(), s.db.Exec("DELETE FROM `posts`").Error)
}

func (s *HandlerTestSuite) createPost(authorUid int64, title string) int64 {
	pid, err := s.svc.Create(context.Background(), post.Post{
		Uid:     authorUid,
		Title:   title,
		Content: "正文",
	})
	require.NoError(s.T(), err)
	return pid
}

func (s *HandlerTestSuite) TestSave() {
	t := s.T()
	req, err := http.NewRequest(http.MethodPost,
		"/post/save", iox.NewJSONReader(web.SaveReq{
			Post: web.Post{
				Title:   "我的第一篇",
				Content: "hello",
			},
		}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[int64]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)

	pid := recorder.MustScan().Data
	assert.True(t, pid > 0)
	var row struct {
		Uid   int64
		Title string
	}
	require.NoError(t, s.db.Table("posts").
		Where("id = ?", pid).Select("uid", "title").Scan(&row).Error)
	assert.Equal(t, uid, row.Uid)
	assert.Equal(t, "我的第一篇", row.Title)
}

func (s *HandlerTestSuite) detail(pid int64) (int, test.Result[web.Post]) {
	req, err := http.NewRequest(http.MethodPost,
		"/post/detail", iox.NewJSONReader(web.PostId{Pid: pid}))
	require.NoError(s.T(), err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.Post]()
	s.server.ServeHTTP(recorder, req)
	return recorder.Code, recorder.MustScan()
}

func (s *HandlerTestSuite) TestDetail() {
	t := s.T()
	pid := s.createPost(uid2, "被看的文章")

	code, res := s.detail(pid)
	require.Equal(t, 200, code)
	assert.Equal(t, pid, res.Data.Id)
	assert.Equal(t, "被看的文章", res.Data.Title)
	assert.Equal(t, int64(0), res.Data.LikesCount)

	// 绕过模块直接改库，缓存里还是旧值
	require.NoError(t, s.db.Exec(
		"UPDATE `posts` SET likes_count = 7 WHERE id = ?", pid).Error)
	_, res = s.detail(pid)
	assert.Equal(t, int64(0), res.Data.LikesCount)

	// 广播点赞结果事件，消费者把缓存踢掉之后就能读到新计数
	producer, err := testioc.InitMQ().Producer("engagement_changed_events")
	require.NoError(t, err)
	data, err := json.Marshal(map[string]any{
		"biz":    "post",
		"biz_id": pid,
		"uid":    uid,
		"liked":  true,
		"count":  7,
	})
	require.NoError(t, err)
	_, err = producer.Produce(context.Background(), &mq.Message{Value: data})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		_, res := s.detail(pid)
		return res.Data.LikesCount == 7
	}, 5*time.Second, 100*time.Millisecond)
}

func (s *HandlerTestSuite) TestDetailNotFound() {
	t := s.T()
	code, res := s.detail(99999999)
	require.Equal(t, 500, code)
	assert.Equal(t, 517002, res.Code)
}

func (s *HandlerTestSuite) TestList() {
	t := s.T()
	pid1 := s.createPost(uid2, "第一篇")
	pid2 := s.createPost(uid2, "第二篇")
	pid3 := s.createPost(uid, "第三篇")

	req, err := http.NewRequest(http.MethodPost,
		"/post/list", iox.NewJSONReader(web.Page{Offset: 0, Limit: 2}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.PostList]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)

	res := recorder.MustScan().Data
	assert.Equal(t, int64(3), res.Total)
	require.Len(t, res.Posts, 2)
	// 新的在前
	assert.Equal(t, pid3, res.Posts[0].Id)
	assert.Equal(t, pid2, res.Posts[1].Id)
	_ = pid1
}

func (s *HandlerTestSuite) TestMine() {
	t := s.T()
	mine1 := s.createPost(uid, "我的一")
	mine2 := s.createPost(uid, "我的二")
	s.createPost(uid2, "别人的")

	req, err := http.NewRequest(http.MethodPost,
		"/post/mine", iox.NewJSONReader(web.Page{Offset: 0, Limit: 10}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.PostList]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)

	res := recorder.MustScan().Data
	require.Len(t, res.Posts, 2)
	assert.Equal(t, mine2, res.Posts[0].Id)
	assert.Equal(t, mine1, res.Posts[1].Id)
}

func (s *HandlerTestSuite) TestUpdate() {
	testCases := []struct {
		name string

		before func(t *testing.T) int64
		title  string

		wantCode    int
		wantErrCode int
		after       func(t *testing.T, pid int64)
	}{
		{
			name: "改自己的文章",
			before: func(t *testing.T) int64 {
				return s.createPost(uid, "旧标题")
			},
			title:    "新标题",
			wantCode: 200,
			after: func(t *testing.T, pid int64) {
				var title string
				require.NoError(t, s.db.Table("posts").
					Where("id = ?", pid).Select("title").Scan(&title).Error)
				assert.Equal(t, "新标题", title)
			},
		},
		{
			name: "改别人的文章",
			before: func(t *testing.T) int64 {
				return s.createPost(uid2, "别人的标题")
			},
			title:       "偷改",
			wantCode:    500,
			wantErrCode: 517002,
			after: func(t *testing.T, pid int64) {
				var title string
				require.NoError(t, s.db.Table("posts").
					Where("id = ?", pid).Select("title").Scan(&title).Error)
				assert.Equal(t, "别人的标题", title)
			},
		},
		{
			name: "文章不存在",
			before: func(t *testing.T) int64 {
				return 88888888
			},
			title:       "改空气",
			wantCode:    500,
			wantErrCode: 517002,
		},
	}
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			t := s.T()
			pid := tc.before(t)
			req, err := http.NewRequest(http.MethodPost,
				"/post/update", iox.NewJSONReader(web.SaveReq{
					Post: web.Post{
						Id:      pid,
						Title:   tc.title,
						Content: "新正文",
					},
				}))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[any]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			if tc.wantErrCode != 0 {
				assert.Equal(t, tc.wantErrCode, recorder.MustScan().Code)
			}
			if tc.after != nil {
				tc.after(t, pid)
			}
		})
	}
}

func (s *HandlerTestSuite) TestDelete() {
	testCases := []struct {
		name string

		before func(t *testing.T) int64

		wantCode    int
		wantErrCode int
		wantRows    int64
	}{
		{
			name: "删自己的文章",
			before: func(t *testing.T) int64 {
				return s.createPost(uid, "要删的")
			},
			wantCode: 200,
			wantRows: 0,
		},
		{
			name: "删别人的文章",
			before: func(t *testing.T) int64 {
				return s.createPost(uid2, "删不掉的")
			},
			wantCode:    500,
			wantErrCode: 517002,
			wantRows:    1,
		},
	}
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			t := s.T()
			pid := tc.before(t)
			req, err := http.NewRequest(http.MethodPost,
				"/post/delete", iox.NewJSONReader(web.PostId{Pid: pid}))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[any]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			if tc.wantErrCode != 0 {
				assert.Equal(t, tc.wantErrCode, recorder.MustScan().Code)
			}
			var rows int64
			require.NoError(t, s.db.Table("posts").
				Where("id = ?", pid).Count(&rows).Error)
			assert.Equal(t, tc.wantRows, rows)
		})
	}
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
