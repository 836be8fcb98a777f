package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-room-design/internal/config"
	"github.com/MKhiriev/go-room-design/internal/crypto"
	"github.com/MKhiriev/go-room-design/internal/logger"
	"github.com/MKhiriev/go-room-design/internal/store"
	"github.com/MKhiriev/go-room-design/internal/utils"
	"github.com/MKhiriev/go-room-design/internal/validators"
	"github.com/MKhiriev/go-room-design/models"
)

// accountService is the concrete implementation of AccountService.
// It handles account registration, credential verification, the admin gate
// and the JWT token lifecycle.
type accountService struct {
	// accountRepository is the data-access layer used to create and look up
	// accounts.
	accountRepository store.AccountRepository

	// hasher produces and verifies password digests.
	hasher crypto.PasswordHasher

	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	newID func() string
	now   func() time.Time

	logger *logger.Logger
}

// NewAccountService constructs a new AccountService wired to the given
// repository and populated with token parameters from cfg.
func NewAccountService(accountRepository store.AccountRepository, hasher crypto.PasswordHasher, validator validators.Validator, cfg config.App, logger *logger.Logger) AccountService {
	return &accountService{
		accountRepository: accountRepository,
		hasher:            hasher,
		validator:         validator,
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		tokenDuration:     cfg.TokenDuration,
		newID:             utils.NewUUIDGenerator().Generate,
		now:               time.Now,
		logger:            logger,
	}
}

// Register creates a new account with a hashed password.
//
// Returns the persisted account or:
//   - ErrValidation if email, username or password is missing or too long.
//   - ErrConflict if the email or the username is already taken.
func (a *accountService) Register(ctx context.Context, req models.RegisterRequest) (models.Account, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Str("func", "*accountService.Register").Msg("invalid registration data")
		if errors.Is(err, validators.ErrRequiredField) {
			return models.Account{}, validationError(msgRegisterFieldsRequired)
		}
		return models.Account{}, validationError(err.Error())
	}

	emailTaken, err := a.accountRepository.EmailExists(ctx, req.Email)
	if err != nil {
		return models.Account{}, unexpectedError(msgInternalError, err)
	}
	if emailTaken {
		return models.Account{}, conflictError(msgEmailTaken)
	}

	usernameTaken, err := a.accountRepository.UsernameExists(ctx, req.Username)
	if err != nil {
		return models.Account{}, unexpectedError(msgInternalError, err)
	}
	if usernameTaken {
		return models.Account{}, conflictError(msgUsernameTaken)
	}

	digest, err := a.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Str("func", "*accountService.Register").Msg("error hashing password")
		return models.Account{}, unexpectedError(msgInternalError, err)
	}

	account, err := a.accountRepository.CreateAccount(ctx, models.Account{
		ID:        a.newID(),
		Email:     req.Email,
		Username:  req.Username,
		Password:  digest,
		CreatedAt: a.now().UTC(),
	})
	switch {
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return models.Account{}, conflictError(msgEmailTaken)
	case errors.Is(err, store.ErrUsernameAlreadyExists):
		return models.Account{}, conflictError(msgUsernameTaken)
	case err != nil:
		log.Err(err).Str("func", "*accountService.Register").Msg("account creation ended with error")
		return models.Account{}, unexpectedError(msgInternalError, err)
	}

	return account, nil
}

// Login authenticates an account.
//
// Returns the account or:
//   - ErrValidation if the password, or both username and email, are missing.
//   - ErrNotFound if neither lookup finds an account.
//   - ErrForbidden if the password does not match.
func (a *accountService) Login(ctx context.Context, req models.LoginRequest) (models.Account, error) {
	log := logger.FromContext(ctx)

	if (req.Username == "" && req.Email == "") || req.Password == "" {
		return models.Account{}, validationError(msgLoginFieldsRequired)
	}

	account, err := a.accountRepository.FindAccountByUsernameAndEmail(ctx, req.Username, req.Email)
	if errors.Is(err, store.ErrNotFound) {
		account, err = a.accountRepository.FindAccountByEmail(ctx, req.Email)
	}
	if errors.Is(err, store.ErrNotFound) {
		return models.Account{}, notFoundError(msgUserNotFound)
	}
	if err != nil {
		log.Err(err).Str("func", "*accountService.Login").Msg("account lookup failed")
		return models.Account{}, unexpectedError(msgInternalError, err)
	}

	if !a.hasher.Verify(req.Password, account.Password) {
		log.Debug().Str("func", "*accountService.Login").Str("user_id", account.ID).Msg("wrong password")
		return models.Account{}, forbiddenError(msgInvalidPassword)
	}

	return account, nil
}

func (a *accountService) CheckAdmin(ctx context.Context, userID string) (models.Account, error) {
	if userID == "" {
		return models.Account{}, validationError(msgUserIDRequired)
	}

	account, err := a.accountRepository.FindAccountByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return models.Account{}, notFoundError(msgUserNotFound)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*accountService.CheckAdmin").Msg("account lookup failed")
		return models.Account{}, unexpectedError(msgInternalError, err)
	}

	if !account.IsAdmin {
		return models.Account{}, forbiddenError(msgNotAdmin)
	}

	return account, nil
}

func (a *accountService) ResolveActor(ctx context.Context, userID string) (models.Actor, error) {
	if userID == "" {
		return models.Actor{}, nil
	}

	account, err := a.accountRepository.FindAccountByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return models.Actor{ID: userID}, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*accountService.ResolveActor").Msg("account lookup failed")
		return models.Actor{}, unexpectedError(msgInternalError, err)
	}

	return models.Actor{ID: account.ID, IsAdmin: account.IsAdmin}, nil
}

// CreateToken issues a signed JWT whose subject is the account id.
func (a *accountService) CreateToken(ctx context.Context, account models.Account) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, account.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*accountService.CreateToken").Msg("error creating token")
		return models.Token{}, unexpectedError(msgInternalError, err)
	}

	return token, nil
}

// ParseToken validates a raw JWT string. Any validation failure (expired,
// wrong issuer, malformed) is reported as ErrForbidden.
func (a *accountService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*accountService.ParseToken").Msg("invalid token")
		return models.Token{}, &Error{Kind: ErrForbidden, Message: msgInvalidToken, Err: err}
	}

	return token, nil
}
