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

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/leetaesk/blog-backend/internal/comment/internal/domain"
	"github.com/leetaesk/blog-backend/internal/comment/internal/repository"
	repomocks "github.com/leetaesk/blog-backend/internal/comment/internal/repository/mocks"
	likemocks "github.com/leetaesk/blog-backend/internal/like/mocks"
	"github.com/leetaesk/blog-backend/internal/post"
	postmocks "github.com/leetaesk/blog-backend/internal/post/mocks"
	"github.com/leetaesk/blog-backend/internal/user"
	usermocks "github.com/leetaesk/blog-backend/internal/user/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type mocks struct {
	repo    *repomocks.MockCommentRepository
	userSvc *usermocks.MockUserService
	postSvc *postmocks.MockPostService
	likeSvc *likemocks.MockLikeService
}

func newService(ctrl *gomock.Controller) (CommentService, mocks) {
	m := mocks{
		repo:    repomocks.NewMockCommentRepository(ctrl),
		userSvc: usermocks.NewMockUserService(ctrl),
		postSvc: postmocks.NewMockPostService(ctrl),
		likeSvc: likemocks.NewMockLikeService(ctrl),
	}
	svc := NewCommentService(m.repo, m.userSvc, m.postSvc, m.likeSvc)
	return svc, m
}

func TestCreate(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		mock    func(m mocks)
		comment domain.Comment

		wantId  int64
		wantErr error
	}{
		{
			name: "正常创建",
			mock: func(m mocks) {
				m.postSvc.EXPECT().Exists(gomock.Any(), int64(10)).Return(true, nil)
				m.repo.EXPECT().Create(gomock.Any(), domain.Comment{
					User:    domain.User{ID: 1},
					PostID:  10,
					Content: "写得不错",
				}).Return(int64(11), nil)
			},
			comment: domain.Comment{
				User:    domain.User{ID: 1},
				PostID:  10,
				Content: "写得不错",
			},
			wantId: 11,
		},
		{
			name: "内容会先去掉首尾空白",
			mock: func(m mocks) {
				m.postSvc.EXPECT().Exists(gomock.Any(), int64(10)).Return(true, nil)
				m.repo.EXPECT().Create(gomock.Any(), domain.Comment{
					User:    domain.User{ID: 1},
					PostID:  10,
					Content: "写得不错",
				}).Return(int64(12), nil)
			},
			comment: domain.Comment{
				User:    domain.User{ID: 1},
				PostID:  10,
				Content: "  写得不错 \n",
			},
			wantId: 12,
		},
		{
			name: "内容为空",
			mock: func(m mocks) {},
			comment: domain.Comment{
				User:    domain.User{ID: 1},
				PostID:  10,
				Content: " \t\n ",
			},
			wantErr: ErrInvalidInput,
		},
		{
			name: "文章不存在",
			mock: func(m mocks) {
				m.postSvc.EXPECT().Exists(gomock.Any(), int64(404)).Return(false, nil)
			},
			comment: domain.Comment{
				User:    domain.User{ID: 1},
				PostID:  404,
				Content: "评论不存在的文章",
			},
			wantErr: ErrPostNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			svc, m := newService(ctrl)
			tc.mock(m)
			id, err := svc.Create(context.Background(), tc.comment)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantId, id)
		})
	}
}

func TestList(t *testing.T) {
	t.Parallel()
	snapshot := []domain.Comment{
		{ID: 1, User: domain.User{ID: 100}, PostID: 10, Content: "顶层"},
		{ID: 2, User: domain.User{ID: 200}, PostID: 10, ParentCommentID: 1, Content: "回复"},
	}
	profiles := []user.User{
		{ID: 100, Nickname: "甲", Avatar: "a.jpg"},
		{ID: 200, Nickname: "乙", Avatar: "b.jpg"},
	}

	t.Run("登录用户能看到自己的视角", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc, m := newService(ctrl)
		m.repo.EXPECT().FindByPost(gomock.Any(), int64(10)).Return(snapshot, nil)
		m.userSvc.EXPECT().BatchProfile(gomock.Any(), []int64{100, 200}).Return(profiles, nil)
		m.likeSvc.EXPECT().CommentIDsLikedBy(gomock.Any(), int64(100), []int64{1, 2}).
			Return(map[int64]bool{1: true}, nil)

		top, total, err := svc.List(context.Background(), 10, 100)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, top, 1)
		assert.Equal(t, "甲", top[0].User.Nickname)
		assert.True(t, top[0].IsOwner)
		assert.True(t, top[0].IsLiked)
		assert.Equal(t, int64(1), top[0].RepliesCount)
		require.Len(t, top[0].Replies, 1)
		assert.Equal(t, "乙", top[0].Replies[0].User.Nickname)
		assert.False(t, top[0].Replies[0].IsOwner)
		assert.False(t, top[0].Replies[0].IsLiked)
	})

	t.Run("匿名用户不查点赞", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc, m := newService(ctrl)
		m.repo.EXPECT().FindByPost(gomock.Any(), int64(10)).Return(snapshot, nil)
		m.userSvc.EXPECT().BatchProfile(gomock.Any(), []int64{100, 200}).Return(profiles, nil)

		top, total, err := svc.List(context.Background(), 10, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.False(t, top[0].IsOwner)
		assert.False(t, top[0].IsLiked)
	})

	t.Run("点赞服务挂了整个列表失败", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc, m := newService(ctrl)
		mockErr := errors.New("redis 超时")
		m.repo.EXPECT().FindByPost(gomock.Any(), int64(10)).Return(snapshot, nil)
		m.userSvc.EXPECT().BatchProfile(gomock.Any(), gomock.Any()).
			Return(profiles, nil).AnyTimes()
		m.likeSvc.EXPECT().CommentIDsLikedBy(gomock.Any(), int64(100), gomock.Any()).
			Return(nil, mockErr)

		_, _, err := svc.List(context.Background(), 10, 100)
		assert.ErrorIs(t, err, mockErr)
	})
}

func TestListMine(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	svc, m := newService(ctrl)
	m.repo.EXPECT().FindByUid(gomock.Any(), int64(100)).Return([]domain.Comment{
		{ID: 2, User: domain.User{ID: 100}, PostID: 20, Content: "第二条"},
		{ID: 1, User: domain.User{ID: 100}, PostID: 10, Content: "第一条"},
	}, nil)
	m.likeSvc.EXPECT().CommentIDsLikedBy(gomock.Any(), int64(100), []int64{2, 1}).
		Return(map[int64]bool{1: true}, nil)
	m.postSvc.EXPECT().BatchByIDs(gomock.Any(), []int64{20, 10}).Return([]post.Post{
		{Id: 10, Title: "文章一"},
		{Id: 20, Title: "文章二"},
	}, nil)

	mine, err := svc.ListMine(context.Background(), 100)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "文章二", mine[0].Post.Title)
	assert.True(t, mine[0].IsOwner)
	assert.False(t, mine[0].IsLiked)
	assert.Equal(t, "文章一", mine[1].Post.Title)
	assert.True(t, mine[1].IsLiked)
}

func TestUpdate(t *testing.T) {
	t.Parallel()
	t.Run("空内容直接拒绝", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc, _ := newService(ctrl)
		_, err := svc.Update(context.Background(), 1, 100, "   ")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("不是你的评论", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc, m := newService(ctrl)
		m.repo.EXPECT().UpdateContent(gomock.Any(), int64(1), int64(999), "改内容").
			Return(domain.Comment{}, repository.ErrNotFoundOrForbidden)
		_, err := svc.Update(context.Background(), 1, 999, "改内容")
		assert.ErrorIs(t, err, ErrNotFoundOrForbidden)
	})
}
