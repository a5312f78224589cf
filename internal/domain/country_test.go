package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/geo-directory-service/internal/domain"
)

func TestDeriveCountries(t *testing.T) {
	t.Run("one country per distinct id, first seen wins", func(t *testing.T) {
		states := []domain.State{
			{ID: 1, Name: "Punjab", CountryID: 167, CountryName: "Pakistan", CountryCode: "PK"},
			{ID: 2, Name: "Bavaria", CountryID: 82, CountryName: "Germany", CountryCode: "DE"},
			{ID: 3, Name: "Sindh", CountryID: 167, CountryName: "Pakistan (dup)", CountryCode: "XX"},
			{ID: 4, Name: "Saxony", CountryID: 82, CountryName: "Germany", CountryCode: "DE"},
		}

		countries := domain.DeriveCountries(states)

		assert.Equal(t, []domain.Country{
			{ID: 167, Name: "Pakistan", Code: "PK"},
			{ID: 82, Name: "Germany", Code: "DE"},
		}, countries)
	})

	t.Run("empty input", func(t *testing.T) {
		countries := domain.DeriveCountries(nil)
		assert.NotNil(t, countries)
		assert.Empty(t, countries)
	})

	t.Run("missing country id collapses to zero id", func(t *testing.T) {
		states := []domain.State{
			{ID: 1, Name: "Nowhere"},
			{ID: 2, Name: "Elsewhere", CountryName: "Ghost"},
		}

		countries := domain.DeriveCountries(states)

		assert.Len(t, countries, 1)
		assert.Equal(t, int64(0), countries[0].ID)
		assert.Equal(t, "", countries[0].Name)
	})
}

func TestNewPage(t *testing.T) {
	tests := []struct {
		name   string
		page   int
		limit  int
		offset int
	}{
		{"first page", 1, 3, 0},
		{"third page", 3, 3, 6},
		{"page below one clamps", 0, 5, 0},
		{"large limit", 2, 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := domain.NewPage(tt.page, tt.limit)
			assert.Equal(t, tt.limit, p.Limit)
			assert.Equal(t, tt.offset, p.Offset)
		})
	}
}
