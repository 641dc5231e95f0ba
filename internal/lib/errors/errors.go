package errors

import "errors"

var (
	ErrMenuNotFound       = errors.New("menu not found")
	ErrSubmenuNotFound    = errors.New("submenu not found")
	ErrDishNotFound       = errors.New("dish not found")
	ErrExportTaskNotFound = errors.New("export task not found")
)
