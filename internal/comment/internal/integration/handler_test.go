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
	"fmt"
	"net/http"
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/leetaesk/blog-backend/internal/comment"
	"github.com/leetaesk/blog-backend/internal/comment/internal/integration/startup"
	"github.com/leetaesk/blog-backend/internal/comment/internal/repository/dao"
	"github.com/leetaesk/blog-backend/internal/comment/internal/web"
	"github.com/leetaesk/blog-backend/internal/like"
	"github.com/leetaesk/blog-backend/internal/post"
	"github.com/leetaesk/blog-backend/internal/test"
	testioc "github.com/leetaesk/blog-backend/internal/test/ioc"
	"github.com/leetaesk/blog-backend/internal/user"
	usermocks "github.com/leetaesk/blog-backend/internal/user/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const (
	testUID  = int64(12345)
	testUID2 = int64(12346)
)

type HandlerTestSuite struct {
	suite.Suite
	server     *egin.Component
	anonServer *egin.Component
	db         *egorm.Component
	svc        comment.CommentService
	likeSvc    like.LikeService
	postSvc    post.PostService

	postModule *post.Module
	likeModule *like.Module
}

func (s *HandlerTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	postModule, err := post.InitModule(s.db, testioc.InitCache(), testioc.InitMQ())
	require.NoError(s.T(), err)
	likeModule, err := like.InitModule(s.db, testioc.InitMQ())
	require.NoError(s.T(), err)
	s.postModule = postModule
	s.likeModule = likeModule
	s.postSvc = postModule.Svc
	s.likeSvc = likeModule.Svc
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
}

func (s *HandlerTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	mockUserSvc := usermocks.NewMockUserService(ctrl)
	testUsers := map[int64]user.User{
		testUID: {
			ID:       testUID,
			Nickname: "测试用户1",
			Avatar:   "avatar1.jpg",
		},
		testUID2: {
			ID:       testUID2,
			Nickname: "测试用户2",
			Avatar:   "avatar2.jpg",
		},
	}
	mockUserSvc.EXPECT().BatchProfile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, ids []int64) ([]user.User, error) {
			users := make([]user.User, 0, len(ids))
			for _, id := range ids {
				if u, ok := testUsers[id]; ok {
					users = append(users, u)
				}
			}
			return users, nil
		}).AnyTimes()

	module, err := startup.InitModule(&user.Module{Svc: mockUserSvc}, s.postModule, s.likeModule)
	require.NoError(s.T(), err)
	s.svc = module.Svc

	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: testUID,
		}))
	})
	module.Hdl.PublicRoutes(server.Engine)
	module.Hdl.PrivateRoutes(server.Engine)
	s.server = server

	// 不塞 session，专门走匿名路径
	anonServer := egin.Load("server").Build()
	module.Hdl.PublicRoutes(anonServer.Engine)
	s.anonServer = anonServer
}

func (s *HandlerTestSuite) TearDownTest() {
	// 评论和点赞都级联挂在 posts 下面
	require.NoError(s.T(), s.db.Exec("DELETE FROM `posts`").Error)
}

func (s *HandlerTestSuite) createPost() int64 {
	pid, err := s.postSvc.Create(context.Background(), post.Post{
		Uid:     testUID2,
		Title:   "一篇文章",
		Content: "正文",
	})
	require.NoError(s.T(), err)
	return pid
}

func (s *HandlerTestSuite) createComment(uid, pid, parentId int64, content string) int64 {
	cid, err := s.svc.Create(context.Background(), comment.Comment{
		User:            comment.User{ID: uid},
		PostID:          pid,
		ParentCommentID: parentId,
		Content:         content,
	})
	require.NoError(s.T(), err)
	return cid
}

func (s *HandlerTestSuite) TestCreate() {
	testCases := []struct {
		name string

		before  func(t *testing.T) (pid int64, parentId int64)
		content string

		wantCode    int
		wantErrCode int
		after       func(t *testing.T, id int64, pid int64)
	}{
		{
			name: "发顶层评论",
			before: func(t *testing.T) (int64, int64) {
				return s.createPost(), 0
			},
			content:  "写得不错",
			wantCode: 200,
			after: func(t *testing.T, id int64, pid int64) {
				var c dao.Comment
				require.NoError(t, s.db.First(&c, id).Error)
				assert.Equal(t, "写得不错", c.Content)
				assert.Equal(t, pid, c.PostId)
				assert.False(t, c.ParentCommentId.Valid)
			},
		},
		{
			name: "回复顶层评论",
			before: func(t *testing.T) (int64, int64) {
				pid := s.createPost()
				parent := s.createComment(testUID2, pid, 0, "顶层")
				return pid, parent
			},
			content:  "同意楼上",
			wantCode: 200,
			after: func(t *testing.T, id int64, pid int64) {
				var c dao.Comment
				require.NoError(t, s.db.First(&c, id).Error)
				assert.True(t, c.ParentCommentId.Valid)
			},
		},
		{
			name: "内容为空",
			before: func(t *testing.T) (int64, int64) {
				return s.createPost(), 0
			},
			content:     "",
			wantCode:    500,
			wantErrCode: 515002,
		},
		{
			name: "全是空白也不行",
			before: func(t *testing.T) (int64, int64) {
				return s.createPost(), 0
			},
			content:     "  \n\t ",
			wantCode:    500,
			wantErrCode: 515002,
		},
		{
			name: "文章不存在",
			before: func(t *testing.T) (int64, int64) {
				return 99999999, 0
			},
			content:     "评论不存在的文章",
			wantCode:    500,
			wantErrCode: 515003,
		},
		{
			name: "父评论不存在",
			before: func(t *testing.T) (int64, int64) {
				return s.createPost(), 88888888
			},
			content:     "回复不存在的评论",
			wantCode:    500,
			wantErrCode: 515004,
		},
		{
			name: "父评论挂在别的文章下",
			before: func(t *testing.T) (int64, int64) {
				pid1 := s.createPost()
				parent := s.createComment(testUID2, pid1, 0, "在另一篇文章下")
				pid2 := s.createPost()
				return pid2, parent
			},
			content:     "串了",
			wantCode:    500,
			wantErrCode: 515005,
		},
		{
			name: "不能回复别人的回复",
			before: func(t *testing.T) (int64, int64) {
				pid := s.createPost()
				top := s.createComment(testUID2, pid, 0, "顶层")
				reply := s.createComment(testUID2, pid, top, "一级回复")
				return pid, reply
			},
			content:     "套娃",
			wantCode:    500,
			wantErrCode: 515006,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			t := s.T()
			pid, parentId := tc.before(t)
			req, err := http.NewRequest(http.MethodPost,
				"/comment/create", iox.NewJSONReader(web.CreateReq{
					Pid:      pid,
					ParentId: parentId,
					Content:  tc.content,
				}))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[int64]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code,
				fmt.Sprintf("响应: %s", recorder.Body.String()))
			res := recorder.MustScan()
			if tc.wantErrCode != 0 {
				assert.Equal(t, tc.wantErrCode, res.Code)
				return
			}
			assert.True(t, res.Data > 0)
			if tc.after != nil {
				tc.after(t, res.Data, pid)
			}
		})
	}
}

func (s *HandlerTestSuite) list(server *egin.Component, pid int64) web.CommentList {
	req, err := http.NewRequest(http.MethodPost,
		"/comment/list", iox.NewJSONReader(web.ListReq{Pid: pid}))
	require.NoError(s.T(), err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.CommentList]()
	server.ServeHTTP(recorder, req)
	require.Equal(s.T(), 200, recorder.Code)
	return recorder.MustScan().Data
}

func (s *HandlerTestSuite) TestList() {
	t := s.T()
	pid := s.createPost()
	top1 := s.createComment(testUID, pid, 0, "第一条")
	reply1 := s.createComment(testUID2, pid, top1, "回复一")
	reply2 := s.createComment(testUID, pid, top1, "回复二")
	top2 := s.createComment(testUID2, pid, 0, "第二条")
	_, err := s.likeSvc.ToggleComment(context.Background(), top1, testUID)
	require.NoError(t, err)

	res := s.list(s.server, pid)
	assert.Equal(t, int64(2), res.Total)
	require.Len(t, res.Comments, 2)

	first := res.Comments[0]
	assert.Equal(t, top1, first.Id)
	assert.Equal(t, "第一条", first.Content)
	assert.Equal(t, "测试用户1", first.User.Nickname)
	assert.True(t, first.IsOwner)
	assert.True(t, first.IsLiked)
	assert.Equal(t, int64(1), first.LikesCount)
	assert.Equal(t, int64(2), first.RepliesCount)
	require.Len(t, first.Replies, 2)
	assert.Equal(t, reply1, first.Replies[0].Id)
	assert.Equal(t, "测试用户2", first.Replies[0].User.Nickname)
	assert.False(t, first.Replies[0].IsOwner)
	assert.Equal(t, reply2, first.Replies[1].Id)
	assert.True(t, first.Replies[1].IsOwner)

	second := res.Comments[1]
	assert.Equal(t, top2, second.Id)
	assert.False(t, second.IsOwner)
	assert.Empty(t, second.Replies)
	assert.Equal(t, int64(0), second.RepliesCount)
}

func (s *HandlerTestSuite) TestListAnonymous() {
	t := s.T()
	pid := s.createPost()
	top := s.createComment(testUID, pid, 0, "匿名也能看")
	_, err := s.likeSvc.ToggleComment(context.Background(), top, testUID)
	require.NoError(t, err)

	res := s.list(s.anonServer, pid)
	require.Len(t, res.Comments, 1)
	// 没登录就没有你的视角
	assert.False(t, res.Comments[0].IsOwner)
	assert.False(t, res.Comments[0].IsLiked)
	assert.Equal(t, int64(1), res.Comments[0].LikesCount)
}

func (s *HandlerTestSuite) TestListEmpty() {
	t := s.T()
	pid := s.createPost()
	res := s.list(s.server, pid)
	assert.Equal(t, int64(0), res.Total)
	assert.Empty(t, res.Comments)
}

func (s *HandlerTestSuite) TestUpdate() {
	testCases := []struct {
		name string

		before  func(t *testing.T) int64
		content string

		wantCode    int
		wantErrCode int
		after       func(t *testing.T, cid int64)
	}{
		{
			name: "改自己的评论",
			before: func(t *testing.T) int64 {
				pid := s.createPost()
				return s.createComment(testUID, pid, 0, "原始内容")
			},
			content:  "改过的内容",
			wantCode: 200,
			after: func(t *testing.T, cid int64) {
				var c dao.Comment
				require.NoError(t, s.db.First(&c, cid).Error)
				assert.Equal(t, "改过的内容", c.Content)
			},
		},
		{
			name: "改别人的评论",
			before: func(t *testing.T) int64 {
				pid := s.createPost()
				return s.createComment(testUID2, pid, 0, "别人的")
			},
			content:     "不许改",
			wantCode:    500,
			wantErrCode: 515007,
			after: func(t *testing.T, cid int64) {
				var c dao.Comment
				require.NoError(t, s.db.First(&c, cid).Error)
				assert.Equal(t, "别人的", c.Content)
			},
		},
		{
			name: "评论不存在",
			before: func(t *testing.T) int64 {
				return 77777777
			},
			content:     "改空气",
			wantCode:    500,
			wantErrCode: 515007,
		},
		{
			name: "改成空内容",
			before: func(t *testing.T) int64 {
				pid := s.createPost()
				return s.createComment(testUID, pid, 0, "原始内容")
			},
			content:     "   ",
			wantCode:    500,
			wantErrCode: 515002,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			t := s.T()
			cid := tc.before(t)
			req, err := http.NewRequest(http.MethodPost,
				"/comment/update", iox.NewJSONReader(web.UpdateReq{
					Cid:     cid,
					Content: tc.content,
				}))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[web.Comment]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			res := recorder.MustScan()
			if tc.wantErrCode != 0 {
				assert.Equal(t, tc.wantErrCode, res.Code)
			} else {
				assert.Equal(t, tc.content, res.Data.Content)
			}
			if tc.after != nil {
				tc.after(t, cid)
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
		after       func(t *testing.T, cid int64)
	}{
		{
			name: "删自己的评论连回复和点赞一起没",
			before: func(t *testing.T) int64 {
				pid := s.createPost()
				top := s.createComment(testUID, pid, 0, "要删的")
				reply := s.createComment(testUID2, pid, top, "挂在上面的回复")
				// 两条都点过赞，级联之后成员行也得清干净
				_, err := s.likeSvc.ToggleComment(context.Background(), top, testUID2)
				require.NoError(t, err)
				_, err = s.likeSvc.ToggleComment(context.Background(), reply, testUID)
				require.NoError(t, err)
				return top
			},
			wantCode: 200,
			after: func(t *testing.T, cid int64) {
				var cnt int64
				require.NoError(t, s.db.Table("comments").Count(&cnt).Error)
				assert.Equal(t, int64(0), cnt)
				var likeRows int64
				require.NoError(t, s.db.Table("comment_likes").Count(&likeRows).Error)
				assert.Equal(t, int64(0), likeRows)
			},
		},
		{
			name: "删别人的评论",
			before: func(t *testing.T) int64 {
				pid := s.createPost()
				return s.createComment(testUID2, pid, 0, "别人的")
			},
			wantCode:    500,
			wantErrCode: 515007,
			after: func(t *testing.T, cid int64) {
				var cnt int64
				require.NoError(t, s.db.Table("comments").
					Where("id = ?", cid).Count(&cnt).Error)
				assert.Equal(t, int64(1), cnt)
			},
		},
		{
			name: "评论不存在",
			before: func(t *testing.T) int64 {
				return 66666666
			},
			wantCode:    500,
			wantErrCode: 515007,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			t := s.T()
			cid := tc.before(t)
			req, err := http.NewRequest(http.MethodPost,
				"/comment/delete", iox.NewJSONReader(web.DeleteReq{Cid: cid}))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[any]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			if tc.wantErrCode != 0 {
				assert.Equal(t, tc.wantErrCode, recorder.MustScan().Code)
			}
			if tc.after != nil {
				tc.after(t, cid)
			}
		})
	}
}

func (s *HandlerTestSuite) TestMine() {
	t := s.T()
	pid1, err := s.postSvc.Create(context.Background(), post.Post{
		Uid:     testUID2,
		Title:   "文章一",
		Content: "正文",
	})
	require.NoError(t, err)
	pid2, err := s.postSvc.Create(context.Background(), post.Post{
		Uid:     testUID2,
		Title:   "文章二",
		Content: "正文",
	})
	require.NoError(t, err)

	c1 := s.createComment(testUID, pid1, 0, "我的第一条")
	c2 := s.createComment(testUID, pid2, 0, "我的第二条")
	// 别人的评论不会混进来
	s.createComment(testUID2, pid1, 0, "别人的")
	_, err = s.likeSvc.ToggleComment(context.Background(), c1, testUID)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost,
		"/comment/mine", iox.NewJSONReader(struct{}{}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[[]web.Comment]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)

	mine := recorder.MustScan().Data
	require.Len(t, mine, 2)
	// 新的在前
	assert.Equal(t, c2, mine[0].Id)
	assert.Equal(t, "文章二", mine[0].Post.Title)
	assert.True(t, mine[0].IsOwner)
	assert.False(t, mine[0].IsLiked)
	assert.Equal(t, c1, mine[1].Id)
	assert.Equal(t, "文章一", mine[1].Post.Title)
	assert.True(t, mine[1].IsLiked)
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
