package web

import "github.com/leetaesk/blog-backend/internal/like/internal/domain"

type LikePostReq struct {
	Pid int64 `json:"pid"`
}

type LikeCommentReq struct {
	Cid int64 `json:"cid"`
}

type LikeStatus struct {
	TargetId   int64 `json:"targetId"`
	Liked      bool  `json:"liked"`
	LikesCount int64 `json:"likesCount"`
}

func newLikeStatus(st domain.LikeStatus) LikeStatus {
	return LikeStatus{
		TargetId:   st.TargetID,
		Liked:      st.Liked,
		LikesCount: st.LikesCount,
	}
}
