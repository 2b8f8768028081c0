package treemap

import "github.com/pkg/errors"

var ErrKeyNotFound = errors.New("key not found")
