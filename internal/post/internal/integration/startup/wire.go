//go:build wireinject

package startup

import (
	"github.com/google/wire"
	"github.com/leetaesk/blog-backend/internal/post"
	testioc "github.com/leetaesk/blog-backend/internal/test/ioc"
)

func InitModule() (*post.Module, error) {
	wire.Build(testioc.BaseSet, post.InitModule)
	return new(post.Module), nil
}
