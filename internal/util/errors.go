package util

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailRegistered     = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrChildNotFound       = errors.New("child not found")
	ErrGameNotFound        = errors.New("game not found")
	ErrQuizNotFound        = errors.New("quiz not found")
	ErrStoryNotFound       = errors.New("story not found")
	ErrSessionNotFound     = errors.New("play session not found")
	ErrGoalNotFound        = errors.New("goal not found")
	ErrNegativeDelta       = errors.New("reward delta must not be negative")
	ErrInvalidTarget       = errors.New("goal target must be positive")
	ErrDuplicateSubmission = errors.New("activity already rewarded")
)
