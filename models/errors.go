package models

import (
	"github.com/cockroachdb/errors"
)

// Base errors, related to default API status codes
var (
	// BadParameterError is rendered with the http status code 400
	BadParameterError = errors.New("bad parameter")

	// UnAuthorizedError is rendered with the http status code 401
	UnAuthorizedError = errors.New("unauthorized")

	// ForbiddenError is rendered with the http status code 403
	ForbiddenError = errors.New("forbidden")

	// NotFoundError is rendered with the http status code 404
	NotFoundError = errors.New("not found")

	// ConflictError is rendered with the http status code 409
	ConflictError = errors.New("duplicate value")
)

// Authentication related errors
var ErrUnknownUser = errors.Wrap(NotFoundError, "unknown user")

// Case lifecycle errors
var (
	ErrCaseStatusTransitionNotAllowed = errors.Wrap(BadParameterError, "case status transition not allowed")
	ErrCaseNotAcceptingContributions  = errors.Wrap(ConflictError, "case is not accepting contributions")
	ErrCurrencyMismatch               = errors.Wrap(BadParameterError, "contribution currency does not match the case currency")
)

// Contribution review errors
var ErrContributionAlreadyReviewed = errors.Wrap(ConflictError, "contribution has already been reviewed")

// Account merge errors
var (
	ErrMergeSameUser    = errors.Wrap(BadParameterError, "source and target users are the same")
	ErrMergeUserDeleted = errors.Wrap(BadParameterError, "cannot merge a deleted user account")
)
