// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/taibuivan/campaignhub/internal/platform/apperr"
)

// # In-memory Repositories

// memoryAccounts mimics the transactional signup: either all three rows land
// or none do.
type memoryAccounts struct {
	mu       sync.Mutex
	accounts map[string]*Account
	profiles map[string]*UserProfile
	terms    []*TermsAgreement

	// failTermsInsert simulates a failure on the last insert of the transaction.
	failTermsInsert bool
}

func newMemoryAccounts() *memoryAccounts {
	return &memoryAccounts{
		accounts: make(map[string]*Account),
		profiles: make(map[string]*UserProfile),
	}
}

func (store *memoryAccounts) CreateWithProfile(_ context.Context, account *Account, profile *UserProfile, terms *TermsAgreement) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	for _, existing := range store.accounts {
		if existing.Email == account.Email {
			return apperr.Conflict("Email is already registered")
		}
	}

	if store.failTermsInsert {
		return apperr.Persistence(errors.New("insert_terms_agreement: connection reset"))
	}

	store.accounts[account.ID] = account
	store.profiles[profile.UserID] = profile
	store.terms = append(store.terms, terms)
	return nil
}

func (store *memoryAccounts) FindByEmail(_ context.Context, email string) (*Account, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	for _, account := range store.accounts {
		if account.Email == email {
			return account, nil
		}
	}
	return nil, apperr.NotFound("Account")
}

func (store *memoryAccounts) FindByID(_ context.Context, id string) (*Account, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	if account, ok := store.accounts[id]; ok {
		return account, nil
	}
	return nil, apperr.NotFound("Account")
}

func (store *memoryAccounts) FindProfile(_ context.Context, userID string) (*UserProfile, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	if profile, ok := store.profiles[userID]; ok {
		return profile, nil
	}
	return nil, apperr.NotFound("User profile")
}

type memorySessions struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func newMemorySessions() *memorySessions {
	return &memorySessions{sessions: make(map[string]*Session)}
}

func (store *memorySessions) Create(_ context.Context, session *Session, _ time.Duration) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.sessions[session.TokenHash] = session
	return nil
}

func (store *memorySessions) FindByTokenHash(_ context.Context, tokenHash string) (*Session, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	if session, ok := store.sessions[tokenHash]; ok {
		return session, nil
	}
	return nil, apperr.NotFound("Session")
}

func (store *memorySessions) Delete(_ context.Context, tokenHash string) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	delete(store.sessions, tokenHash)
	return nil
}

// stubTokens returns a predictable token per call.
type stubTokens struct {
	err error
}

func (tokens stubTokens) GenerateAccessToken(userID, email, role string, _ time.Duration) (string, error) {
	if tokens.err != nil {
		return "", tokens.err
	}
	return "access:" + userID + ":" + role, nil
}

// cheapHash keeps bcrypt out of the hot path of the table tests.
func cheapHash(password string) (string, error) {
	return "hashed:" + password, nil
}
