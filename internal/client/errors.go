package client

import "errors"

var (
	ErrCallsFailed = errors.New("demo calls failed")

	errNoDemoService = errors.New("no demo service provided")
	errNoOutput      = errors.New("no output writer provided")
)
