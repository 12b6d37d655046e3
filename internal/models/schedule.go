package models

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseClock разбирает литеральную строку "HH:MM" в минуты от полуночи.
// Таймзоны не учитываются: расписание трактуется как настенные часы
// одного дня, переход через полночь не поддерживается.
func ParseClock(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	return h*60 + m, nil
}

// HoursBetween возвращает абсолютную разницу между двумя "HH:MM"
// строками в часах.
func HoursBetween(start, end string) (float64, error) {
	s, err := ParseClock(start)
	if err != nil {
		return 0, err
	}
	e, err := ParseClock(end)
	if err != nil {
		return 0, err
	}
	diff := e - s
	if diff < 0 {
		diff = -diff
	}
	return float64(diff) / 60, nil
}
