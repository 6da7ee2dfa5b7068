package errs

var (
	SystemError           = ErrorCode{Code: 515001, Msg: "系统错误"}
	InvalidInput          = ErrorCode{Code: 515002, Msg: "评论内容不能为空"}
	PostNotFound          = ErrorCode{Code: 515003, Msg: "文章不存在"}
	ParentNotFound        = ErrorCode{Code: 515004, Msg: "父评论不存在"}
	ParentWrongPost       = ErrorCode{Code: 515005, Msg: "父评论不在这篇文章下"}
	ReplyToReplyForbidden = ErrorCode{Code: 515006, Msg: "不能回复别人的回复"}
	NotFoundOrForbidden   = ErrorCode{Code: 515007, Msg: "评论不存在或者不是你的"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
