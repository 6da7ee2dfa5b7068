package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/leetaesk/blog-backend/internal/comment/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidInputResult = ginx.Result{
		Code: errs.InvalidInput.Code,
		Msg:  errs.InvalidInput.Msg,
	}
	postNotFoundResult = ginx.Result{
		Code: errs.PostNotFound.Code,
		Msg:  errs.PostNotFound.Msg,
	}
	parentNotFoundResult = ginx.Result{
		Code: errs.ParentNotFound.Code,
		Msg:  errs.ParentNotFound.Msg,
	}
	parentWrongPostResult = ginx.Result{
		Code: errs.ParentWrongPost.Code,
		Msg:  errs.ParentWrongPost.Msg,
	}
	replyToReplyResult = ginx.Result{
		Code: errs.ReplyToReplyForbidden.Code,
		Msg:  errs.ReplyToReplyForbidden.Msg,
	}
	notFoundOrForbiddenResult = ginx.Result{
		Code: errs.NotFoundOrForbidden.Code,
		Msg:  errs.NotFoundOrForbidden.Msg,
	}
)
