package handlers

import (
	"testing"
	"time"

	"github.com/Freeeeeet/admin_bot/internal/model"
	"github.com/Freeeeeet/admin_bot/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandArgs(t *testing.T) {
	assert.Equal(t, "a | b", commandArgs("/addservice  a | b "))
	assert.Equal(t, "a | b", commandArgs("/addservice@admin_bot a | b"))
	assert.Equal(t, "", commandArgs("/schedule"))
	assert.Equal(t, "plain", commandArgs(" plain "))
}

func TestSplitFields(t *testing.T) {
	fields, err := splitFields(" MATH | easy | алгебра | a | b ", 4)
	require.NoError(t, err)
	assert.Equal(t, []string{"MATH", "easy", "алгебра", "a | b"}, fields)

	_, err = splitFields("only | two", 3)
	assert.ErrorIs(t, err, errBadFormat)
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"1500", 150000},
		{"1500.50", 150050},
		{"99,9", 9990},
		{" 0 ", 0},
	}
	for _, tt := range tests {
		got, err := parsePrice(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := parsePrice("дорого")
	assert.ErrorIs(t, err, errBadFormat)
}

func TestNormalizeClock(t *testing.T) {
	got, err := normalizeClock("9:05")
	require.NoError(t, err)
	assert.Equal(t, "09:05", got)

	got, err = normalizeClock("18:30")
	require.NoError(t, err)
	assert.Equal(t, "18:30", got)

	for _, bad := range []string{"25:00", "9", "9:5", "abc"} {
		_, err := normalizeClock(bad)
		assert.ErrorIs(t, err, errBadFormat, bad)
	}
}

func TestParseWorkingHours(t *testing.T) {
	hours, err := parseWorkingHours("Пн-Ср 09:00-18:00, Сб-Вс 10:00-14:00")
	require.NoError(t, err)
	assert.Equal(t, []service.WorkingHoursInput{
		{DayOfWeek: 1, StartTime: "09:00", EndTime: "18:00"},
		{DayOfWeek: 2, StartTime: "09:00", EndTime: "18:00"},
		{DayOfWeek: 3, StartTime: "09:00", EndTime: "18:00"},
		{DayOfWeek: 6, StartTime: "10:00", EndTime: "14:00"},
		{DayOfWeek: 0, StartTime: "10:00", EndTime: "14:00"},
	}, hours)

	hours, err = parseWorkingHours("fri 9:00-13:00")
	require.NoError(t, err)
	assert.Equal(t, []service.WorkingHoursInput{{DayOfWeek: 5, StartTime: "09:00", EndTime: "13:00"}}, hours)

	for _, bad := range []string{"Пн", "Xx 09:00-10:00", "Пн 09:00", "Пн 09:00-26:00"} {
		_, err := parseWorkingHours(bad)
		assert.ErrorIs(t, err, errBadFormat, bad)
	}

	hours, err = parseWorkingHours("")
	require.NoError(t, err)
	assert.Empty(t, hours)
}

func TestParseStructure(t *testing.T) {
	structure, err := parseStructure("easy:алгебра:3, Сложный:теория: множества:2")
	require.NoError(t, err)
	assert.Equal(t, []model.ExamStructureItem{
		{Difficulty: model.DifficultyEasy, KnowledgeBlock: "алгебра", Count: 3},
		{Difficulty: model.DifficultyHard, KnowledgeBlock: "теория: множества", Count: 2},
	}, structure)

	for _, bad := range []string{"", "easy:3", "easy:алгебра:много"} {
		_, err := parseStructure(bad)
		assert.ErrorIs(t, err, errBadFormat, bad)
	}

	// Неизвестная сложность проходит разбор, её отклоняет сервис
	structure, err = parseStructure("extreme:a:1")
	require.NoError(t, err)
	assert.Equal(t, model.Difficulty("extreme"), structure[0].Difficulty)
}

func TestParseDateInput(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		in   string
		want string
	}{
		{"2025-04-01", "2025-04-01"},
		{"01.04.2025", "2025-04-01"},
		{"1.4.2025", "2025-04-01"},
		{"15.03", "2025-03-15"},
		{"01.03", "2026-03-01"},
		{"Сегодня", "2025-03-10"},
		{"завтра", "2025-03-11"},
	}
	for _, tt := range tests {
		got, err := parseDateInput(tt.in, now)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	for _, bad := range []string{"", "послезавтра", "31.02.2025", "2025-13-01"} {
		_, err := parseDateInput(bad, now)
		assert.ErrorIs(t, err, errBadFormat, bad)
	}
}

func TestParseRating(t *testing.T) {
	rating, err := parseRating(" 5 ")
	require.NoError(t, err)
	assert.Equal(t, 5, rating)

	for _, bad := range []string{"0", "6", "пять"} {
		_, err := parseRating(bad)
		assert.ErrorIs(t, err, errBadFormat, bad)
	}
}

func TestParseHours(t *testing.T) {
	for in, want := range map[string]float64{"20": 20, "7,5": 7.5, " 0.25 ": 0.25} {
		got, err := parseHours(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	for _, bad := range []string{"", "десять", "NaN", "Inf"} {
		_, err := parseHours(bad)
		assert.Error(t, err, bad)
	}
}
