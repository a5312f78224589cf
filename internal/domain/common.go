package domain

import "time"

// Page - окно выборки для постраничных запросов
type Page struct {
	Limit  int
	Offset int
}

// NewPage переводит номер страницы (с 1) и размер в LIMIT/OFFSET
func NewPage(page, limit int) Page {
	if page < 1 {
		page = 1
	}
	return Page{
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

// ImportResult - итог загрузки seed данных
type ImportResult struct {
	States    int           `json:"states"`
	Cities    int           `json:"cities"`
	Countries int           `json:"countries"`
	Duration  time.Duration `json:"duration"`
}
