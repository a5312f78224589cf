package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/geo-directory-service/internal/domain"
	"github.com/geo-directory-service/internal/domain/repository"
	"go.uber.org/zap"
)

// FileLoader читает seed файлы штатов и городов (JSON массивы)
type FileLoader struct {
	statesPath string
	citiesPath string
	logger     *zap.Logger
}

var _ repository.SeedSource = (*FileLoader)(nil)

// NewFileLoader - создание загрузчика для пары файлов
func NewFileLoader(statesPath, citiesPath string, logger *zap.Logger) *FileLoader {
	return &FileLoader{
		statesPath: statesPath,
		citiesPath: citiesPath,
		logger:     logger,
	}
}

func (l *FileLoader) LoadStates(ctx context.Context) ([]domain.State, error) {
	var records []stateRecord
	if err := readJSONArray(ctx, l.statesPath, &records); err != nil {
		return nil, err
	}

	states := make([]domain.State, 0, len(records))
	for _, r := range records {
		states = append(states, r.toDomain())
	}

	l.logger.Info("States dataset loaded",
		zap.String("path", l.statesPath),
		zap.Int("count", len(states)),
	)
	return states, nil
}

func (l *FileLoader) LoadCities(ctx context.Context) ([]domain.City, error) {
	var records []cityRecord
	if err := readJSONArray(ctx, l.citiesPath, &records); err != nil {
		return nil, err
	}

	cities := make([]domain.City, 0, len(records))
	for _, r := range records {
		cities = append(cities, r.toDomain())
	}

	l.logger.Info("Cities dataset loaded",
		zap.String("path", l.citiesPath),
		zap.Int("count", len(cities)),
	)
	return cities, nil
}

func readJSONArray(ctx context.Context, path string, dst interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open dataset %s: %w", path, err)
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(dst); err != nil {
		return fmt.Errorf("decode dataset %s: %w", path, err)
	}
	return nil
}

type stateRecord struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	CountryID   int64      `json:"countryId"`
	CountryCode string     `json:"countryCode"`
	CountryName string     `json:"countryName"`
	StateCode   string     `json:"stateCode"`
	Type        string     `json:"type"`
	Lat         coordinate `json:"lat"`
	Long        coordinate `json:"long"`
	Latitude    coordinate `json:"latitude"`
	Longitude   coordinate `json:"longitude"`
}

func (r stateRecord) toDomain() domain.State {
	return domain.State{
		ID:          r.ID,
		Name:        r.Name,
		CountryID:   r.CountryID,
		CountryCode: r.CountryCode,
		CountryName: r.CountryName,
		StateCode:   r.StateCode,
		Type:        r.Type,
		Latitude:    firstNonEmpty(r.Latitude, r.Lat),
		Longitude:   firstNonEmpty(r.Longitude, r.Long),
	}
}

type cityRecord struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	StateID     int64      `json:"stateId"`
	StateCode   string     `json:"stateCode"`
	StateName   string     `json:"stateName"`
	CountryID   int64      `json:"countryId"`
	CountryCode string     `json:"countryCode"`
	CountryName string     `json:"countryName"`
	Lat         coordinate `json:"lat"`
	Long        coordinate `json:"long"`
	Latitude    coordinate `json:"latitude"`
	Longitude   coordinate `json:"longitude"`
	WikiID      string     `json:"wikiId"`
}

func (r cityRecord) toDomain() domain.City {
	return domain.City{
		ID:          r.ID,
		Name:        r.Name,
		StateID:     r.StateID,
		StateCode:   r.StateCode,
		StateName:   r.StateName,
		CountryID:   r.CountryID,
		CountryCode: r.CountryCode,
		CountryName: r.CountryName,
		Latitude:    firstNonEmpty(r.Latitude, r.Lat),
		Longitude:   firstNonEmpty(r.Longitude, r.Long),
		WikiID:      r.WikiID,
	}
}

// coordinate принимает и строку, и число; хранится как исходный текст
type coordinate string

func (c *coordinate) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*c = ""
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		s, err := strconv.Unquote(raw)
		if err != nil {
			return fmt.Errorf("coordinate: %w", err)
		}
		*c = coordinate(s)
		return nil
	}
	if _, err := strconv.ParseFloat(raw, 64); err != nil {
		return fmt.Errorf("coordinate: not a number: %s", raw)
	}
	*c = coordinate(raw)
	return nil
}

func firstNonEmpty(values ...coordinate) string {
	for _, v := range values {
		if v != "" {
			return string(v)
		}
	}
	return ""
}
