package domain

// Country - страна. Не хранится в исходных данных, а выводится из записей штатов при импорте
type Country struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
	Code string `json:"code" db:"code"`
}

// DeriveCountries строит список стран из штатов: одна запись на каждый countryId,
// имя и код берутся из первого встреченного штата. Порядок - порядок первого появления.
func DeriveCountries(states []State) []Country {
	seen := make(map[int64]struct{}, len(states)/8+1)
	countries := make([]Country, 0)

	for _, s := range states {
		if _, ok := seen[s.CountryID]; ok {
			continue
		}
		seen[s.CountryID] = struct{}{}
		countries = append(countries, Country{
			ID:   s.CountryID,
			Name: s.CountryName,
			Code: s.CountryCode,
		})
	}

	return countries
}
