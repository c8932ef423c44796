package orm

import (
	"github.com/iov-one/revshare/errors"
)

// Orm reserves 100~109 error codes

// ErrInvalidQuery is returned when a bucket is queried with an unsupported mod
var ErrInvalidQuery = errors.Register(100, "invalid query")
