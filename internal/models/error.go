package models

type BusinessError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *BusinessError) Error() string { return e.Message }

func BizError(code, msg string) *BusinessError { return &BusinessError{Code: code, Message: msg} }

var (
	ErrMethodNotAllowed = BizError("method_not_allowed", "only GET and HEAD are supported")
	ErrRender           = BizError("render_failed", "could not render rates")
)
