package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-room-design/internal/logger"
	"github.com/MKhiriev/go-room-design/models"
)

// accountRepository is the SQL implementation of [AccountRepository].
// It handles account creation and lookup against the "accounts" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type accountRepository struct {
	*DB
	logger *logger.Logger
}

// NewAccountRepository constructs an [AccountRepository] backed by the
// provided database connection and logger.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateAccount inserts a fully populated account (identifier, digest and
// creation time are assigned by the caller).
//
// Error handling:
//   - unique violation on email → [ErrEmailAlreadyExists]
//   - unique violation on username → [ErrUsernameAlreadyExists]
//   - any other failure → [ErrExecutingStatement]
func (r *accountRepository) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Insert(account.TableName()).
		Columns(accountColumns...).
		Values(account.ID, account.Email, account.Username, account.Password, account.IsAdmin, account.CreatedAt).
		ToSql()
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("error inserting account")

		if r.errorClassificator.Classify(err) == UniqueViolation {
			constraint := r.errorClassificator.Constraint(err)
			switch {
			case strings.Contains(constraint, "email"):
				return models.Account{}, ErrEmailAlreadyExists
			case strings.Contains(constraint, "username"):
				return models.Account{}, ErrUsernameAlreadyExists
			}
		}
		return models.Account{}, r.statementError(err)
	}

	return account, nil
}

func (r *accountRepository) FindAccountByID(ctx context.Context, id string) (models.Account, error) {
	return r.findOne(ctx, "*accountRepository.FindAccountByID", sq.Eq{"id": id})
}

func (r *accountRepository) FindAccountByEmail(ctx context.Context, email string) (models.Account, error) {
	return r.findOne(ctx, "*accountRepository.FindAccountByEmail", sq.Eq{"email": email})
}

func (r *accountRepository) FindAccountByUsernameAndEmail(ctx context.Context, username, email string) (models.Account, error) {
	return r.findOne(ctx, "*accountRepository.FindAccountByUsernameAndEmail", sq.Eq{"username": username, "email": email})
}

func (r *accountRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "*accountRepository.EmailExists", sq.Eq{"email": email})
}

func (r *accountRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, "*accountRepository.UsernameExists", sq.Eq{"username": username})
}

func (r *accountRepository) findOne(ctx context.Context, funcName string, where sq.Eq) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select(accountColumns...).
		From(models.Account{}.TableName()).
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	account, err := scanAccount(r.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrNotFound
		}
		log.Err(err).Str("func", funcName).Msg("error scanning account")
		return models.Account{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return account, nil
}

func (r *accountRepository) exists(ctx context.Context, funcName string, where sq.Eq) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select("1").
		From(models.Account{}.TableName()).
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var one int
	if err = r.QueryRowContext(ctx, query, args...).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		log.Err(err).Str("func", funcName).Msg("error checking account existence")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return true, nil
}
