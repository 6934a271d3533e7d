package repositories

import (
	"errors"
	"fmt"
	"syscall"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rajank18/prograde/internal/app/ingest"
	"github.com/rajank18/prograde/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyLookupErrNotFound(t *testing.T) {
	err := classifyLookupErr(apperrors.ErrCourseNotFound, apperrors.ErrCourseNotFound)
	assert.ErrorIs(t, err, ingest.ErrNotFound)

	err = classifyLookupErr(apperrors.ErrUserNotFound, apperrors.ErrUserNotFound)
	assert.ErrorIs(t, err, ingest.ErrNotFound)
}

func TestClassifyLookupErrOutageIsFatal(t *testing.T) {
	// The exact shape the repositories emit when the database is unreachable.
	outage := fmt.Errorf("error retrieving course by code: %w", syscall.ECONNREFUSED)

	err := classifyLookupErr(outage, apperrors.ErrCourseNotFound)
	require.Error(t, err)

	var fatal *ingest.FatalError
	require.ErrorAs(t, err, &fatal)
	assert.ErrorIs(t, fatal.Err, syscall.ECONNREFUSED)
}

func TestClassifyUpsertErrConstraintViolationStaysRowScoped(t *testing.T) {
	var fatal *ingest.FatalError

	unique := fmt.Errorf("error inserting participant: %w", &pgconn.PgError{Code: "23505"})
	err := classifyUpsertErr(unique)
	assert.False(t, errors.As(err, &fatal), "constraint violations must not abort the run")
	assert.Equal(t, unique, err)

	fk := fmt.Errorf("error inserting participant: %w", &pgconn.PgError{Code: "23503"})
	err = classifyUpsertErr(fk)
	assert.False(t, errors.As(err, &fatal), "constraint violations must not abort the run")
	assert.Equal(t, fk, err)
}

func TestClassifyUpsertErrOutageIsFatal(t *testing.T) {
	outage := fmt.Errorf("error inserting project: %w", syscall.ECONNRESET)

	var fatal *ingest.FatalError
	require.ErrorAs(t, classifyUpsertErr(outage), &fatal)
	assert.ErrorIs(t, fatal.Err, syscall.ECONNRESET)
}
