package errs

var (
	SystemError  = ErrorCode{Code: 517001, Msg: "系统错误"}
	PostNotFound = ErrorCode{Code: 517002, Msg: "文章不存在"}
	NotAuthor    = ErrorCode{Code: 517003, Msg: "不是作者本人"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
