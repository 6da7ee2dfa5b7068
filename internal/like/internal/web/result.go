package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/leetaesk/blog-backend/internal/like/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	targetNotFoundResult = ginx.Result{
		Code: errs.TargetNotFound.Code,
		Msg:  errs.TargetNotFound.Msg,
	}
)
