package usecase

import (
	"errors"
	"fmt"
	"net/http"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// 未ログインでの書き込み操作はこれを返す。
// 読み取り（カート・注文履歴）は未ログインでも空を返すだけでエラーにしない。
var ErrAuthRequired = NewHTTPError(http.StatusUnauthorized, "sign in required")
