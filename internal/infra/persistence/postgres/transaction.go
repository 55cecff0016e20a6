package postgres

import (
	"context"

	"studio/internal/domain/repository"
	"studio/internal/domain/service"
	"studio/internal/errors"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db     *gorm.DB
	cipher service.TokenCipher
}

// gormRepositoryFactory creates repositories bound to one GORM transaction.
type gormRepositoryFactory struct {
	tx     *gorm.DB
	cipher service.TokenCipher
}

// NewGMBAccountRepository creates an account repository bound to the transaction.
func (f *gormRepositoryFactory) NewGMBAccountRepository() repository.GMBAccountRepository {
	return NewGMBAccountRepository(f.tx, f.cipher)
}

// NewGMBLocationRepository creates a location repository bound to the transaction.
func (f *gormRepositoryFactory) NewGMBLocationRepository() repository.GMBLocationRepository {
	return NewGMBLocationRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB, cipher service.TokenCipher) repository.TransactionManager {
	return &gormTransactionManager{db: db, cipher: cipher}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	// Roll back on panic, then re-panic.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(&gormRepositoryFactory{tx: tx, cipher: tm.cipher}); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return errors.Wrapf(err, "transaction rollback failed: %v", rbErr)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}
