package infra

import (
	"errors"
	"log/slog"

	"rental-marketplace/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind       RepositoryErrorKind
	Constraint string
	msg        string
	err        error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr classifies err by its Postgres error code unless kind is given explicitly.
func WrapRepoErr(msg string, err error, kind ...RepositoryErrorKind) error {
	k, constraint := classify(err)
	if len(kind) > 0 {
		k = kind[0]
	}

	logArgs := []any{
		slog.String("kind", string(k)),
	}
	if constraint != "" {
		logArgs = append(logArgs, slog.String("constraint", constraint))
	}

	if k == KindDBFailure {
		slog.Error("Repository error: "+msg, append(logArgs, slog.Any("error", err))...)
	} else {
		slog.Debug("Repository error: "+msg, logArgs...)
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: k, Constraint: constraint, msg: msg, err: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Constraint returns the violated constraint name carried by err, if any.
func Constraint(err error) string {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Constraint
	}
	return ""
}

func classify(err error) (RepositoryErrorKind, string) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return KindDBFailure, ""
	}
	switch pgErr.Code {
	case pgErrUniqueViolation:
		return KindDuplicateKey, pgErr.ConstraintName
	case pgErrForeignKeyViolation:
		return KindForeignKeyViolated, pgErr.ConstraintName
	case pgErrExclusionViolation:
		return KindExclusionViolated, pgErr.ConstraintName
	case pgErrCheckViolation:
		return KindCheckViolated, pgErr.ConstraintName
	default:
		return KindDBFailure, ""
	}
}

const (
	pgErrUniqueViolation     = "23505"
	pgErrForeignKeyViolation = "23503"
	pgErrExclusionViolation  = "23P01"
	pgErrCheckViolation      = "23514"
)

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
	KindExclusionViolated  RepositoryErrorKind = "EXCLUSION_VIOLATED"
	KindCheckViolated      RepositoryErrorKind = "CHECK_VIOLATED"
)
