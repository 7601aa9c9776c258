package coursemart

import "errors"

var (
	ErrEmailNotValid     = errors.New("email is not valid")
	ErrModuleNotValid    = errors.New("module is not valid")
	ErrPasswordNotValid  = errors.New("password is not valid")
	ErrCredentialsWrong  = errors.New("wrong email or password")
	ErrCallbackNotValid  = errors.New("callback payload is not valid")
	ErrSignatureMismatch = errors.New("callback signature mismatch")
	ErrOrderNotFound     = errors.New("order not found")
)
