package services

import (
	"gorm.io/gorm"
)

// txRunner - точка подмены db.Transaction: unit-тесты сервисов запускают
// колбэк напрямую, без живой базы.
type txRunner func(db *gorm.DB, fn func(tx *gorm.DB) error) error

func gormTransact(db *gorm.DB, fn func(tx *gorm.DB) error) error {
	return db.Transaction(fn)
}

// ceilToTenth считает средний балл, округляя ВВЕРХ до десятых.
// Вся арифметика целочисленная: sum/count берутся из БД как есть,
// поэтому точные значения (4.5) не искажаются float-погрешностью.
func ceilToTenth(sum, count int64) float64 {
	if count <= 0 {
		return 0
	}
	return float64((sum*10+count-1)/count) / 10
}

func calculateTotalPages(total int64, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	pages := int(total) / pageSize
	if int(total)%pageSize != 0 {
		pages++
	}
	return pages
}

func normalizePagination(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}
