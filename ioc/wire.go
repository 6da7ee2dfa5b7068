//go:build wireinject

package ioc

import (
	"github.com/google/wire"
	"github.com/leetaesk/blog-backend/internal/comment"
	"github.com/leetaesk/blog-backend/internal/like"
	"github.com/leetaesk/blog-backend/internal/post"
	"github.com/leetaesk/blog-backend/internal/user"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitMQ)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		user.InitModule,
		post.InitModule,
		like.InitModule,
		comment.InitModule,
		wire.FieldsOf(new(*post.Module), "Hdl"),
		wire.FieldsOf(new(*like.Module), "Hdl"),
		wire.FieldsOf(new(*comment.Module), "Hdl"),
		InitSession,
		initGinxServer)
	return new(App), nil
}
