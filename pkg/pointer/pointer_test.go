// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pointer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/campaignhub/pkg/pointer"
)

func TestNonZero(t *testing.T) {
	assert.Nil(t, pointer.NonZero(""))
	assert.Nil(t, pointer.NonZero(0))

	phone := pointer.NonZero("02-123-4567")
	require.NotNil(t, phone)
	assert.Equal(t, "02-123-4567", *phone)
}

func TestValue(t *testing.T) {
	assert.Equal(t, "", pointer.Value[string](nil))
	assert.Equal(t, 3, pointer.Value(pointer.To(3)))
}
