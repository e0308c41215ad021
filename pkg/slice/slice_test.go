// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slice_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/campaignhub/pkg/slice"
)

func TestMap(t *testing.T) {
	got := slice.Map([]string{"instagram", "youtube"}, strings.ToUpper)
	assert.Equal(t, []string{"INSTAGRAM", "YOUTUBE"}, got)
}

func TestMap_NilInputIsEmpty(t *testing.T) {
	got := slice.Map[int, int](nil, func(v int) int { return v })
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
