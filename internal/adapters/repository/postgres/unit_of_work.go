package postgres

import (
	"context"
	"database/sql"

	"github.com/LiamCoop/upload-prints/internal/core/port"
)

type sqlUnitOfWork struct {
	db *sql.DB
	tx *sql.Tx
}

// NewUnitOfWork creates a unit of work over the given database
func NewUnitOfWork(db *sql.DB) port.UnitOfWork {
	return &sqlUnitOfWork{db: db}
}

func (u *sqlUnitOfWork) OrderRepo() port.OrderRepository {
	if u.tx != nil {
		return NewSqlOrderRepository(u.tx)
	}
	return NewSqlOrderRepository(u.db)
}

func (u *sqlUnitOfWork) FileRepo() port.FileRepository {
	if u.tx != nil {
		return NewSqlFileRepository(u.tx)
	}
	return NewSqlFileRepository(u.db)
}

func (u *sqlUnitOfWork) Execute(ctx context.Context, fn func(uow port.UnitOfWork) error) error {
	tx, err := u.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	uowWithTx := &sqlUnitOfWork{db: u.db, tx: tx}

	if err := fn(uowWithTx); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}
