//go:build wireinject

package startup

import (
	"github.com/google/wire"
	"github.com/leetaesk/blog-backend/internal/comment"
	"github.com/leetaesk/blog-backend/internal/like"
	"github.com/leetaesk/blog-backend/internal/post"
	testioc "github.com/leetaesk/blog-backend/internal/test/ioc"
	"github.com/leetaesk/blog-backend/internal/user"
)

func InitModule(userModule *user.Module,
	postModule *post.Module,
	likeModule *like.Module) (*comment.Module, error) {
	wire.Build(testioc.BaseSet, comment.InitModule)
	return new(comment.Module), nil
}
