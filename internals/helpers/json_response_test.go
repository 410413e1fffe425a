package helper

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestBuildPaginationFromPage(t *testing.T) {
	p := BuildPaginationFromPage(45, 2, 20)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 20, p.PerPage)
	assert.Equal(t, int64(45), p.Total)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)

	// halaman terakhir
	p = BuildPaginationFromPage(45, 3, 20)
	assert.False(t, p.HasNext)

	// data kosong tetap 1 halaman
	p = BuildPaginationFromPage(0, 1, 20)
	assert.Equal(t, 1, p.TotalPages)
	assert.False(t, p.HasNext)
	assert.False(t, p.HasPrev)
}

func TestValidationErrorsToMap(t *testing.T) {
	type payload struct {
		Name  string `validate:"required"`
		Score int    `validate:"gte=0,lte=100"`
	}

	err := validator.New().Struct(payload{Score: 150})
	out := ValidationErrorsToMap(err)

	assert.Contains(t, out["name"], "required")
	assert.Contains(t, out["score"], "lte=100")
}
