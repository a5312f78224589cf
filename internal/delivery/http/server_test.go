package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/geo-directory-service/internal/config"
	httpDelivery "github.com/geo-directory-service/internal/delivery/http"
	"github.com/geo-directory-service/internal/delivery/http/handler"
	"github.com/geo-directory-service/internal/delivery/http/middleware"
	"github.com/geo-directory-service/internal/domain"
	"github.com/geo-directory-service/internal/domain/repository/mocks"
	"github.com/geo-directory-service/internal/usecase"
)

type stubHealth struct {
	err error
}

func (s stubHealth) Health(context.Context) error { return s.err }

type serverFixture struct {
	server      *httpDelivery.Server
	countryRepo *mocks.CountryRepository
	stateRepo   *mocks.StateRepository
	cityRepo    *mocks.CityRepository
}

func newServer(t *testing.T, rateMax int, health httpDelivery.HealthChecker) *serverFixture {
	t.Helper()
	logger := zap.NewNop()
	cfg := &config.Config{
		Server:    config.ServerConfig{Port: 5000},
		RateLimit: config.RateLimitConfig{Max: rateMax, Window: time.Minute},
		CORS:      config.CORSConfig{AllowOrigins: "*"},
	}

	f := &serverFixture{
		countryRepo: &mocks.CountryRepository{},
		stateRepo:   &mocks.StateRepository{},
		cityRepo:    &mocks.CityRepository{},
	}

	f.server = httpDelivery.NewServer(
		cfg,
		logger,
		middleware.RateLimiter(cfg.RateLimit, nil, logger),
		health,
		handler.NewCountryHandler(usecase.NewCountryUseCase(f.countryRepo, f.stateRepo, f.cityRepo, logger), logger),
		handler.NewStateHandler(usecase.NewStateUseCase(f.stateRepo, logger), logger),
		handler.NewCityHandler(usecase.NewCityUseCase(f.cityRepo, logger), logger),
	)
	return f
}

func TestServer_Routes(t *testing.T) {
	f := newServer(t, 100, stubHealth{})

	f.countryRepo.On("List", mock.Anything, mock.Anything).Return([]domain.Country{{ID: 1, Name: "Pakistan", Code: "PK"}}, nil)
	f.countryRepo.On("SearchByName", mock.Anything, "stan").Return([]domain.Country{{ID: 1, Name: "Pakistan", Code: "PK"}}, nil)
	f.countryRepo.On("GetByName", mock.Anything, "Pakistan").Return(&domain.Country{ID: 1, Name: "Pakistan", Code: "PK"}, nil)
	f.stateRepo.On("SearchByName", mock.Anything, "Punj").Return([]domain.State{{ID: 10, Name: "Punjab"}}, nil)
	f.stateRepo.On("ListByCountryID", mock.Anything, int64(1), mock.Anything).Return([]domain.State{{ID: 10, Name: "Punjab"}}, nil)
	f.stateRepo.On("CountByCountryID", mock.Anything, int64(1)).Return(int64(2), nil)
	f.cityRepo.On("SearchByName", mock.Anything, "Lah").Return([]domain.City{{ID: 100, Name: "Lahore"}}, nil)
	f.cityRepo.On("ListByStateID", mock.Anything, int64(10), mock.Anything).Return([]domain.City{{ID: 100, Name: "Lahore"}}, nil)
	f.cityRepo.On("CountByCountryID", mock.Anything, int64(1)).Return(int64(5), nil)

	paths := []string{
		"/countries",
		"/countries/search?q=stan",
		"/states/search?q=Punj",
		"/states/by-country?countryId=1",
		"/cities/search?q=Lah",
		"/cities/by-state?stateId=10",
		"/country?name=Pakistan",
		"/health",
	}

	for _, p := range paths {
		t.Run(p, func(t *testing.T) {
			resp, err := f.server.App().Test(httptest.NewRequest("GET", p, nil))
			require.NoError(t, err)
			assert.Equal(t, 200, resp.StatusCode)
			assert.Contains(t, resp.Header.Get("Content-Type"), "application/json")
		})
	}
}

func TestServer_RateLimitAppliesToAllRoutes(t *testing.T) {
	f := newServer(t, 10, stubHealth{})
	f.countryRepo.On("List", mock.Anything, mock.Anything).Return([]domain.Country{}, nil)
	f.countryRepo.On("GetByName", mock.Anything, mock.Anything).Return(nil, nil)

	for i := 1; i <= 10; i++ {
		target := "/countries"
		if i%2 == 0 {
			target = "/country?name=Nowhere"
		}
		resp, err := f.server.App().Test(httptest.NewRequest("GET", target, nil))
		require.NoError(t, err)
		assert.NotEqual(t, 429, resp.StatusCode, "request %d", i)
	}

	resp, err := f.server.App().Test(httptest.NewRequest("GET", "/countries", nil))
	require.NoError(t, err)
	assert.Equal(t, 429, resp.StatusCode)

	var body map[string]map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "TOO_MANY_REQUESTS", body["error"]["code"])

	// throttled requests never reach the query layer
	f.countryRepo.AssertNumberOfCalls(t, "List", 5)
}

func TestServer_HealthUnhealthy(t *testing.T) {
	f := newServer(t, 100, stubHealth{err: errors.New("connection refused")})

	resp, err := f.server.App().Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, 503, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "unhealthy", body["status"])
}

func TestServer_UnknownRoute(t *testing.T) {
	f := newServer(t, 100, stubHealth{})

	resp, err := f.server.App().Test(httptest.NewRequest("GET", "/planets", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "NOT_FOUND")
}

func TestServer_CountryNotFound(t *testing.T) {
	f := newServer(t, 100, stubHealth{})
	f.countryRepo.On("GetByName", mock.Anything, "Atlantis").Return(nil, nil)

	resp, err := f.server.App().Test(httptest.NewRequest("GET", "/country?name=Atlantis", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)

	assert.Equal(t, 404, resp.StatusCode)
	assert.Equal(t, "Country not found", string(body))
}

func TestCompositeHealth(t *testing.T) {
	t.Run("all dependencies healthy", func(t *testing.T) {
		h := httpDelivery.CompositeHealth{stubHealth{}, stubHealth{}}
		assert.NoError(t, h.Health(context.Background()))
	})

	t.Run("one failing dependency fails the whole check", func(t *testing.T) {
		h := httpDelivery.CompositeHealth{stubHealth{}, stubHealth{err: errors.New("redis: connection refused")}}
		assert.EqualError(t, h.Health(context.Background()), "redis: connection refused")
	})

	t.Run("failing redis makes /health unhealthy", func(t *testing.T) {
		f := newServer(t, 100, httpDelivery.CompositeHealth{stubHealth{}, stubHealth{err: errors.New("redis down")}})

		resp, err := f.server.App().Test(httptest.NewRequest("GET", "/health", nil))
		require.NoError(t, err)
		assert.Equal(t, 503, resp.StatusCode)
	})
}
