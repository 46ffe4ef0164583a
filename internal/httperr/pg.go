package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Código SQLSTATE do Postgres para violação de chave estrangeira
const pgForeignKeyViolation = "23503"

// IsForeignKeyViolation identifica a falha de integridade referencial que o
// banco devolve ao deletar um serviço ainda referenciado por agendamentos
// (ON DELETE RESTRICT).
func IsForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolation
	}

	return false
}
