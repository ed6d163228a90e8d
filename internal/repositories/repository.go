package repositories

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sbilibin2017/gw-formation-admin/internal/logger"
)

// ErrDuplicateKey is returned when an insert or update violates a unique constraint.
var ErrDuplicateKey = errors.New("duplicate key")

const uniqueViolation = "23505"

// mapError converts driver errors the services care about into package errors.
func mapError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s", ErrDuplicateKey, pgErr.ConstraintName)
	}
	return err
}

// logQuery logs the query in a single line with its arg count, result and error.
// Args carry personal data, so they are only logged at debug level.
func logQuery(query string, args []any, result any, err error) {
	q := strings.Join(strings.Fields(query), " ")
	logger.Log.Infow("query",
		"sql", q,
		"args", len(args),
		"result", result,
		"error", err,
	)
	logger.Log.Debugw("query args", "sql", q, "args", args)
}
