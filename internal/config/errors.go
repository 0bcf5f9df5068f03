package config

import (
	"errors"
)

var (
	// ErrUnknownGormEngine error if config db.gormengine is not a supported engine.
	ErrUnknownGormEngine = errors.New("toml config db.gormengine must be mysql, postgres or sqlite")

	// ErrDBNameEmpty error if config db.name is empty for a server engine.
	ErrDBNameEmpty = errors.New("toml config db.name can not be empty")

	// ErrDBPathEmpty error if config db.path is empty for the sqlite engine.
	ErrDBPathEmpty = errors.New("toml config db.path can not be empty")
)
