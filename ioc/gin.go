package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/ginx/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
	"github.com/leetaesk/blog-backend/internal/comment"
	"github.com/leetaesk/blog-backend/internal/like"
	"github.com/leetaesk/blog-backend/internal/pkg/middleware"
	"github.com/leetaesk/blog-backend/internal/post"
)

func initGinxServer(sp session.Provider,
	postHdl *post.Handler,
	likeHdl *like.Handler,
	commentHdl *comment.Handler,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	res.Use(middleware.NewMetricsBuilder().Build())
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			// 只允许我的域名过来的
			return strings.Contains(origin, "leetaesk.com")
		},
	}))
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	postHdl.PublicRoutes(res.Engine)
	commentHdl.PublicRoutes(res.Engine)
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	postHdl.PrivateRoutes(res.Engine)
	likeHdl.PrivateRoutes(res.Engine)
	commentHdl.PrivateRoutes(res.Engine)
	return res
}
