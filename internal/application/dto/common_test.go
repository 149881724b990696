package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/application/dto"
)

func TestPageRequest_Normalize(t *testing.T) {
	tests := []struct {
		in, want dto.PageRequest
	}{
		{dto.PageRequest{}, dto.PageRequest{Limit: dto.DefaultPageLimit}},
		{dto.PageRequest{Limit: 10, Offset: -3}, dto.PageRequest{Limit: 10}},
		{dto.PageRequest{Limit: 10000, Offset: 20}, dto.PageRequest{Limit: dto.MaxPageLimit, Offset: 20}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.in.Normalize())
	}
}
