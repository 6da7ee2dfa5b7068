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
	"testing"

	"github.com/leetaesk/blog-backend/internal/comment/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleThread(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name     string
		input    []domain.Comment
		wantTop  []int64
		wantErr  error
		assertFn func(t *testing.T, res []domain.Comment)
	}{
		{
			name:    "空快照",
			input:   []domain.Comment{},
			wantTop: []int64{},
		},
		{
			name: "两条顶层夹着两条回复",
			input: []domain.Comment{
				{ID: 1},
				{ID: 2, ParentCommentID: 1},
				{ID: 3, ParentCommentID: 1},
				{ID: 4},
			},
			wantTop: []int64{1, 4},
			assertFn: func(t *testing.T, res []domain.Comment) {
				require.Len(t, res[0].Replies, 2)
				assert.Equal(t, int64(2), res[0].Replies[0].ID)
				assert.Equal(t, int64(3), res[0].Replies[1].ID)
				assert.Equal(t, int64(2), res[0].RepliesCount)
				assert.Empty(t, res[1].Replies)
				assert.Equal(t, int64(0), res[1].RepliesCount)
			},
		},
		{
			name: "全是顶层评论",
			input: []domain.Comment{
				{ID: 1}, {ID: 2}, {ID: 3},
			},
			wantTop: []int64{1, 2, 3},
		},
		{
			name: "回复保持输入顺序",
			input: []domain.Comment{
				{ID: 1},
				{ID: 5, ParentCommentID: 1},
				{ID: 2, ParentCommentID: 1},
			},
			wantTop: []int64{1},
			assertFn: func(t *testing.T, res []domain.Comment) {
				require.Len(t, res[0].Replies, 2)
				assert.Equal(t, int64(5), res[0].Replies[0].ID)
				assert.Equal(t, int64(2), res[0].Replies[1].ID)
			},
		},
		{
			name: "父评论不在快照里",
			input: []domain.Comment{
				{ID: 1},
				{ID: 2, ParentCommentID: 99},
			},
			wantErr: ErrCorruptThread,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			res, err := assembleThread(tc.input)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			ids := make([]int64, 0, len(res))
			for _, c := range res {
				ids = append(ids, c.ID)
			}
			assert.Equal(t, tc.wantTop, ids)
			if tc.assertFn != nil {
				tc.assertFn(t, res)
			}
		})
	}
}
