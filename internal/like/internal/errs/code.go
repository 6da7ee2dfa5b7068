package errs

var (
	SystemError    = ErrorCode{Code: 516001, Msg: "系统错误"}
	TargetNotFound = ErrorCode{Code: 516002, Msg: "点赞对象不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
