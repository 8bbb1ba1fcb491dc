package sqlite

import (
	"fmt"

	"github.com/julianstephens/habitlog/internal/logger"
	"github.com/julianstephens/habitlog/internal/query"
	"github.com/julianstephens/habitlog/internal/storage"
)

// ExecuteQuery runs a SELECT built by the query package
func (s *Store) ExecuteQuery(q query.Query) ([]storage.Row, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	logger.Debug("Executing query", "sql", q.SQL, "params", q.Params.String())

	rows, err := s.db.Query(q.SQL, q.Args()...)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	result := []storage.Row{}
	for rows.Next() {
		values := make([]any, len(columns))
		dest := make([]any, len(columns))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		result = append(result, storage.NewRow(columns, values))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// ExecuteUpdate runs an INSERT/UPDATE/DELETE and returns rows affected
func (s *Store) ExecuteUpdate(q query.Query) (int64, error) {
	if err := q.Validate(); err != nil {
		return 0, err
	}
	logger.Debug("Executing update", "sql", q.SQL, "params", q.Params.String())

	result, err := s.db.Exec(q.SQL, q.Args()...)
	if err != nil {
		return 0, fmt.Errorf("update failed: %w", err)
	}
	return result.RowsAffected()
}
