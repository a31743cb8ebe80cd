package service

import (
	apperrors "github.com/ikkim/dinehub-backend/internal/errors"
)

const (
	DefaultPageLimit = 100
	MaxPageLimit     = 1000
)

func validatePage(skip, limit int) error {
	if skip < 0 {
		return apperrors.Validation("skip", "Skip parameter must be non-negative")
	}
	if limit <= 0 || limit > MaxPageLimit {
		return apperrors.Validation("limit", "Limit parameter must be between 1 and 1000")
	}
	return nil
}
