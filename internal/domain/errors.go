package domain

import "errors"

var (
	ErrModNotFound   = errors.New("mod not found")
	ErrJobRunning    = errors.New("a process is already running")
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrInvalidGame   = errors.New("invalid game path")
	ErrInvalidCfgBin = errors.New("invalid cpk_list.cfg.bin path")
	ErrInvalidViola  = errors.New("violacli not found")
	ErrMergeFailed   = errors.New("merge tool reported failure")
	ErrCopyFailed    = errors.New("copying merged files failed")
)
