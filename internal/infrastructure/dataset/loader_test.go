package dataset_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/geo-directory-service/internal/infrastructure/dataset"
)

const statesJSON = `[
	{"id": 3176, "name": "Punjab", "countryId": 167, "countryCode": "PK", "countryName": "Pakistan",
	 "stateCode": "PB", "type": "province", "lat": "31.14711680", "long": "75.34121790"},
	{"id": 3011, "name": "Bavaria", "countryId": 82, "countryCode": "DE", "countryName": "Germany",
	 "stateCode": "BY", "type": null, "latitude": 48.79044720, "longitude": 11.49788950}
]`

const citiesJSON = `[
	{"id": 85517, "name": "Lahore", "stateId": 3176, "stateCode": "PB", "stateName": "Punjab",
	 "countryId": 167, "countryCode": "PK", "countryName": "Pakistan",
	 "lat": "31.55800000", "long": "74.35071000", "wikiId": "Q11739"}
]`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFileLoader_LoadStates(t *testing.T) {
	dir := t.TempDir()
	loader := dataset.NewFileLoader(writeFile(t, dir, "states.JSON", statesJSON), "", zap.NewNop())

	states, err := loader.LoadStates(context.Background())
	require.NoError(t, err)
	require.Len(t, states, 2)

	assert.Equal(t, int64(3176), states[0].ID)
	assert.Equal(t, int64(167), states[0].CountryID)
	assert.Equal(t, "31.14711680", states[0].Latitude)
	assert.Equal(t, "75.34121790", states[0].Longitude)

	// numeric latitude/longitude keys are accepted too
	assert.Equal(t, "48.79044720", states[1].Latitude)
	assert.Equal(t, "11.49788950", states[1].Longitude)
	assert.Equal(t, "", states[1].Type)
}

func TestFileLoader_LoadCities(t *testing.T) {
	dir := t.TempDir()
	loader := dataset.NewFileLoader("", writeFile(t, dir, "cities.JSON", citiesJSON), zap.NewNop())

	cities, err := loader.LoadCities(context.Background())
	require.NoError(t, err)
	require.Len(t, cities, 1)

	assert.Equal(t, "Lahore", cities[0].Name)
	assert.Equal(t, int64(3176), cities[0].StateID)
	assert.Equal(t, "Q11739", cities[0].WikiID)
	assert.Equal(t, "31.55800000", cities[0].Latitude)
}

func TestFileLoader_Errors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		loader := dataset.NewFileLoader(filepath.Join(dir, "nope.JSON"), "", zap.NewNop())
		_, err := loader.LoadStates(context.Background())
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed json", func(t *testing.T) {
		loader := dataset.NewFileLoader(writeFile(t, dir, "bad.JSON", `[{"id": 1,`), "", zap.NewNop())
		_, err := loader.LoadStates(context.Background())
		assert.Error(t, err)
	})

	t.Run("bad coordinate", func(t *testing.T) {
		loader := dataset.NewFileLoader("", writeFile(t, dir, "coord.JSON", `[{"id": 1, "lat": true}]`), zap.NewNop())
		_, err := loader.LoadCities(context.Background())
		assert.Error(t, err)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		loader := dataset.NewFileLoader(writeFile(t, dir, "ok.JSON", statesJSON), "", zap.NewNop())
		_, err := loader.LoadStates(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
