package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateInputValue(t *testing.T) {
	offset := time.Date(2026, 11, 21, 21, 0, 0, 0, time.FixedZone("JST", 9*3600))

	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{name: "значение поля без изменений", raw: "2026-11-21T21:00", expected: "2026-11-21T21:00"},
		{name: "секунды отбрасываются", raw: "2026-11-21T21:00:30", expected: "2026-11-21T21:00"},
		{name: "RFC 3339 в местном времени", raw: offset.Format(time.RFC3339), expected: offset.In(time.Local).Format("2006-01-02T15:04")},
		{name: "дата без времени", raw: "2026-11-21", expected: "2026-11-21T00:00"},
		{name: "нераспознанная строка", raw: "next friday", expected: "next friday"},
		{name: "пустая строка", raw: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DateInputValue(tt.raw))
		})
	}
}

func TestCategoryValid(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, c.Valid(), c)
	}
	assert.False(t, Category("").Valid())
	assert.False(t, Category("hovercraft").Valid())
}
