// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package auth implements account signup and the session lifecycle.

An account is the login identity (email, password hash, role). Every account
owns exactly one user profile (display data) and at least one terms agreement
row, all three written in a single transaction at signup.
*/
package auth

import (
	"time"

	"github.com/taibuivan/campaignhub/internal/platform/sec"
)

// # Domain Entities

// Account is the login identity of a marketplace member.
type Account struct {
	ID           string       `json:"id"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"`
	Role         sec.UserRole `json:"role"`
	IsVerified   bool         `json:"isVerified"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// UserProfile holds the member's display data. Its ID equals the account ID.
type UserProfile struct {
	UserID      string       `json:"userId"`
	Role        sec.UserRole `json:"role"`
	FullName    string       `json:"fullName"`
	PhoneNumber string       `json:"phoneNumber"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// TermsAgreement records which terms version a member accepted and when.
type TermsAgreement struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	TermsVersion string    `json:"termsVersion"`
	AgreedAt     time.Time `json:"agreedAt"`
}

// Session is an issued refresh token. Only the token digest is stored.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	TokenHash string    `json:"tokenHash"`
	UserAgent string    `json:"userAgent"`
	IPAddress string    `json:"ipAddress"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}

// # Field Identifiers

const (
	FieldEmail        = "email"
	FieldPassword     = "password"
	FieldFullName     = "fullName"
	FieldPhoneNumber  = "phoneNumber"
	FieldRole         = "role"
	FieldTermsVersion = "termsVersion"
)
