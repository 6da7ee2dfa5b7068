//go:build wireinject

package startup

import (
	"github.com/google/wire"
	"github.com/leetaesk/blog-backend/internal/like"
	testioc "github.com/leetaesk/blog-backend/internal/test/ioc"
)

func InitModule() (*like.Module, error) {
	wire.Build(testioc.BaseSet, like.InitModule)
	return new(like.Module), nil
}
