package rest

import "errors"

var errUnauthorize = errors.New("unauthorized")
