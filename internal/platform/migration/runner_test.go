// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertToPgx5DSN(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"postgres://u:p@db:5432/campaignhub", "pgx5://u:p@db:5432/campaignhub"},
		{"postgresql://u:p@db/campaignhub?sslmode=disable", "pgx5://u:p@db/campaignhub?sslmode=disable"},
		{"pgx5://db/campaignhub", "pgx5://db/campaignhub"},
		{"host=db user=u", "host=db user=u"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, convertToPgx5DSN(tt.in))
	}
}
