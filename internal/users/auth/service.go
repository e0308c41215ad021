// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/taibuivan/campaignhub/internal/platform/apperr"
	"github.com/taibuivan/campaignhub/internal/platform/constants"
	"github.com/taibuivan/campaignhub/internal/platform/ctxutil"
	"github.com/taibuivan/campaignhub/internal/platform/metrics"
	"github.com/taibuivan/campaignhub/internal/platform/sec"
	"github.com/taibuivan/campaignhub/internal/platform/validate"
	"github.com/taibuivan/campaignhub/pkg/textnorm"
	"github.com/taibuivan/campaignhub/pkg/uuid"
)

// # Contracts & Types

// TokenProvider signs access tokens.
type TokenProvider interface {
	GenerateAccessToken(userID, email, role string, timeToLive time.Duration) (string, error)
}

// Service implements signup and session use cases.
type Service struct {
	accountRepository AccountRepository
	sessionRepository SessionRepository
	tokenProvider     TokenProvider
	metrics           *metrics.Metrics

	// Swappable in tests.
	hashPassword func(string) (string, error)
	now          func() time.Time
}

// NewService constructs a new [Service]. m may be nil.
func NewService(accounts AccountRepository, sessions SessionRepository, tokens TokenProvider, m *metrics.Metrics) *Service {
	return &Service{
		accountRepository: accounts,
		sessionRepository: sessions,
		tokenProvider:     tokens,
		metrics:           m,
		hashPassword:      sec.HashPassword,
		now:               time.Now,
	}
}

// # Signup Flow

// SignupInput holds the data required to enroll a new member.
type SignupInput struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	FullName     string `json:"fullName"`
	PhoneNumber  string `json:"phoneNumber"`
	Role         string `json:"role"`
	TermsVersion string `json:"termsVersion"`
}

// SignupResult is returned to the client after a successful signup.
type SignupResult struct {
	UserID                    string       `json:"userId"`
	Email                     string       `json:"email"`
	Role                      sec.UserRole `json:"role"`
	RequiresEmailVerification bool         `json:"requiresEmailVerification"`
}

func (input *SignupInput) normalize() {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.FullName = textnorm.Clean(input.FullName)
	input.PhoneNumber = strings.TrimSpace(input.PhoneNumber)
	input.Role = strings.TrimSpace(input.Role)
	input.TermsVersion = strings.TrimSpace(input.TermsVersion)
}

func (input SignupInput) validate() error {
	validator := &validate.Validator{}
	return validator.
		Email(FieldEmail, input.Email).
		MinLen(FieldPassword, input.Password, MinPasswordLength).
		Custom(FieldPassword, len(input.Password) > MaxPasswordBytes, fmt.Sprintf("Maximum %d bytes", MaxPasswordBytes)).
		Length(FieldFullName, input.FullName, MinFullNameLength, MaxFullNameLength).
		Pattern(FieldPhoneNumber, input.PhoneNumber, phonePattern, "Must be a mobile number such as 01012345678").
		OneOf(FieldRole, input.Role, sec.RoleNames()...).
		Required(FieldTermsVersion, input.TermsVersion).
		Err()
}

/*
Signup validates the payload, hashes the password and persists the account,
its user profile and the accepted terms in a single transaction.

Accounts are auto-confirmed, so RequiresEmailVerification is always false.

Returns:
  - *SignupResult: Created identity
  - error: Validation, Conflict (email taken), UpstreamAuth (hashing) or persistence errors
*/
func (service *Service) Signup(context context.Context, input SignupInput) (*SignupResult, error) {
	input.normalize()
	if err := input.validate(); err != nil {
		return nil, err
	}

	hashedPassword, err := service.hashPassword(input.Password)
	if err != nil {
		return nil, apperr.UpstreamAuth(http.StatusInternalServerError, "Failed to secure credentials", err)
	}

	now := service.now().UTC()
	role := sec.UserRole(input.Role)

	account := &Account{
		ID:           uuid.New(),
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Role:         role,
		IsVerified:   true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	profile := &UserProfile{
		UserID:      account.ID,
		Role:        role,
		FullName:    input.FullName,
		PhoneNumber: input.PhoneNumber,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	terms := &TermsAgreement{
		ID:           uuid.New(),
		UserID:       account.ID,
		TermsVersion: input.TermsVersion,
		AgreedAt:     now,
	}

	if err := service.accountRepository.CreateWithProfile(context, account, profile, terms); err != nil {
		return nil, err
	}

	service.metrics.RecordSignup(string(role))
	ctxutil.GetLogger(context).Info("signup_completed",
		slog.String("user_id", account.ID),
		slog.String("role", string(role)),
	)

	return &SignupResult{
		UserID:                    account.ID,
		Email:                     account.Email,
		Role:                      role,
		RequiresEmailVerification: false,
	}, nil
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Email     string
	Password  string
	UserAgent string
	IPAddress string
}

// LoginSession represents a successfully established user session.
type LoginSession struct {
	AccessToken           string
	RefreshToken          string
	RefreshTokenExpiresAt time.Time
	Account               *Account
}

/*
Login verifies credentials and issues an access token plus a refresh session.

Unknown emails and wrong passwords return the same Unauthorized error.
*/
func (service *Service) Login(context context.Context, input LoginInput) (*LoginSession, error) {
	validator := &validate.Validator{}
	if err := validator.Required(FieldEmail, input.Email).Required(FieldPassword, input.Password).Err(); err != nil {
		return nil, err
	}

	account, err := service.accountRepository.FindByEmail(context, strings.ToLower(strings.TrimSpace(input.Email)))
	if err != nil {
		if apperr.HasCode(err, apperr.CodeNotFound) {
			return nil, apperr.Unauthorized("Invalid login credentials")
		}
		return nil, err
	}

	if !sec.CheckPasswordHash(input.Password, account.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	session, err := service.issueSession(context, account, input.UserAgent, input.IPAddress)
	if err != nil {
		return nil, err
	}

	ctxutil.GetLogger(context).Info("login_succeeded", slog.String("user_id", account.ID))
	return session, nil
}

/*
Logout deletes the refresh session. Unknown tokens are ignored so logout is idempotent.
*/
func (service *Service) Logout(context context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	return service.sessionRepository.Delete(context, sec.HashToken(refreshToken))
}

/*
Refresh rotates a refresh token: the old session is deleted before a new pair
is issued, so a replayed token fails.
*/
func (service *Service) Refresh(context context.Context, refreshToken, userAgent, ipAddress string) (*LoginSession, error) {
	if refreshToken == "" {
		return nil, apperr.Unauthorized("Refresh token required")
	}

	tokenHash := sec.HashToken(refreshToken)
	session, err := service.sessionRepository.FindByTokenHash(context, tokenHash)
	if err != nil {
		if apperr.HasCode(err, apperr.CodeNotFound) {
			return nil, apperr.Unauthorized("Invalid or expired refresh token")
		}
		return nil, err
	}

	if err := service.sessionRepository.Delete(context, tokenHash); err != nil {
		return nil, err
	}

	account, err := service.accountRepository.FindByID(context, session.UserID)
	if err != nil {
		if apperr.HasCode(err, apperr.CodeNotFound) {
			return nil, apperr.Unauthorized("Account no longer exists")
		}
		return nil, err
	}

	return service.issueSession(context, account, userAgent, ipAddress)
}

// issueSession signs an access token and stores a fresh refresh session.
func (service *Service) issueSession(context context.Context, account *Account, userAgent, ipAddress string) (*LoginSession, error) {
	accessToken, err := service.tokenProvider.GenerateAccessToken(account.ID, account.Email, string(account.Role), constants.AccessTokenTTL)
	if err != nil {
		return nil, apperr.UpstreamAuth(http.StatusInternalServerError, "Failed to issue access token", err)
	}

	refreshToken, err := sec.GenerateSecureToken()
	if err != nil {
		return nil, apperr.UpstreamAuth(http.StatusInternalServerError, "Failed to issue refresh token", err)
	}

	now := service.now().UTC()
	session := &Session{
		ID:        uuid.New(),
		UserID:    account.ID,
		TokenHash: sec.HashToken(refreshToken),
		UserAgent: userAgent,
		IPAddress: ipAddress,
		ExpiresAt: now.Add(constants.RefreshTokenTTL),
		CreatedAt: now,
	}

	if err := service.sessionRepository.Create(context, session, constants.RefreshTokenTTL); err != nil {
		return nil, err
	}

	return &LoginSession{
		AccessToken:           accessToken,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: session.ExpiresAt,
		Account:               account,
	}, nil
}

// # Identity

// Me is the caller's account joined with their user profile.
type Me struct {
	Account *Account     `json:"account"`
	Profile *UserProfile `json:"profile"`
}

/*
Me returns the caller's account and profile.
*/
func (service *Service) Me(context context.Context, userID string) (*Me, error) {
	account, err := service.accountRepository.FindByID(context, userID)
	if err != nil {
		return nil, err
	}

	profile, err := service.accountRepository.FindProfile(context, userID)
	if err != nil {
		return nil, err
	}

	return &Me{Account: account, Profile: profile}, nil
}
