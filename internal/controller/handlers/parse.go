package handlers

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/Freeeeeet/admin_bot/internal/model"
	"github.com/Freeeeeet/admin_bot/internal/service"
)

var errBadFormat = errors.New("bad format")

// commandArgs текст после команды: "/addservice@bot a | b" -> "a | b"
func commandArgs(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return text
	}
	i := strings.IndexAny(text, " \t\n")
	if i < 0 {
		return ""
	}
	return strings.TrimSpace(text[i+1:])
}

// splitFields делит аргументы по "|" ровно на n полей. Последнее поле забирает остаток строки.
func splitFields(args string, n int) ([]string, error) {
	parts := strings.SplitN(args, "|", n)
	if len(parts) != n {
		return nil, fmt.Errorf("%w: want %d fields separated by |, got %d", errBadFormat, n, len(parts))
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts, nil
}

// parseList список через запятую без пустых элементов
func parseList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// parsePrice цена в рублях ("1500", "1500.50", "1500,5") в копейках
func parsePrice(s string) (int, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	value, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%w: price %q", errBadFormat, s)
	}
	return int(math.Round(value * 100)), nil
}

// parseHours число часов, дробная часть через точку или запятую: "7,5"
func parseHours(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	value, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%w: hours %q", errBadFormat, s)
	}
	return value, nil
}

// parseInt целое число без лишних символов
func parseInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: number %q", errBadFormat, s)
	}
	return n, nil
}

// normalizeClock "9:05" -> "09:05"
func normalizeClock(s string) (string, error) {
	s = strings.TrimSpace(s)
	if len(s) == 4 && s[1] == ':' {
		s = "0" + s
	}
	c, err := model.ParseClock(s)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errBadFormat, err)
	}
	return c.String(), nil
}

var weekdayAliases = map[string]int{
	"вс": 0, "пн": 1, "вт": 2, "ср": 3, "чт": 4, "пт": 5, "сб": 6,
	"sun": 0, "mon": 1, "tue": 2, "wed": 3, "thu": 4, "fri": 5, "sat": 6,
}

func parseWeekday(s string) (int, error) {
	day, ok := weekdayAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("%w: weekday %q", errBadFormat, s)
	}
	return day, nil
}

// parseDays "Пн" или диапазон "Пн-Пт". Диапазон может переходить через воскресенье: "Сб-Вс".
func parseDays(s string) ([]int, error) {
	from, to, isRange := strings.Cut(s, "-")
	first, err := parseWeekday(from)
	if err != nil {
		return nil, err
	}
	if !isRange {
		return []int{first}, nil
	}
	last, err := parseWeekday(to)
	if err != nil {
		return nil, err
	}

	days := []int{first}
	for d := first; d != last; {
		d = (d + 1) % 7
		days = append(days, d)
	}
	return days, nil
}

// parseWorkingHours график вида "Пн-Пт 09:00-18:00, Сб 10:00-14:00"
func parseWorkingHours(s string) ([]service.WorkingHoursInput, error) {
	var hours []service.WorkingHoursInput
	for _, entry := range parseList(s) {
		fields := strings.Fields(entry)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: working hours %q", errBadFormat, entry)
		}

		days, err := parseDays(fields[0])
		if err != nil {
			return nil, err
		}

		startRaw, endRaw, ok := strings.Cut(fields[1], "-")
		if !ok {
			return nil, fmt.Errorf("%w: time range %q", errBadFormat, fields[1])
		}
		start, err := normalizeClock(startRaw)
		if err != nil {
			return nil, err
		}
		end, err := normalizeClock(endRaw)
		if err != nil {
			return nil, err
		}

		for _, day := range days {
			hours = append(hours, service.WorkingHoursInput{DayOfWeek: day, StartTime: start, EndTime: end})
		}
	}
	return hours, nil
}

var difficultyAliases = map[string]model.Difficulty{
	"лёгкий":        model.DifficultyEasy,
	"легкий":        model.DifficultyEasy,
	"средний":       model.DifficultyMedium,
	"сложный":       model.DifficultyHard,
	"очень_сложный": model.DifficultyVeryHard,
}

// parseDifficulty принимает значения модели и русские названия
func parseDifficulty(s string) model.Difficulty {
	s = strings.ToLower(strings.TrimSpace(s))
	if d, ok := difficultyAliases[s]; ok {
		return d
	}
	return model.Difficulty(s)
}

// parseStructure "easy:алгебра:3, hard:геометрия:2". Блок может содержать двоеточие.
func parseStructure(s string) ([]model.ExamStructureItem, error) {
	var structure []model.ExamStructureItem
	for _, entry := range parseList(s) {
		first := strings.Index(entry, ":")
		last := strings.LastIndex(entry, ":")
		if first < 0 || first == last {
			return nil, fmt.Errorf("%w: structure item %q", errBadFormat, entry)
		}

		count, err := parseInt(entry[last+1:])
		if err != nil {
			return nil, err
		}

		structure = append(structure, model.ExamStructureItem{
			Difficulty:     parseDifficulty(entry[:first]),
			KnowledgeBlock: strings.TrimSpace(entry[first+1 : last]),
			Count:          count,
		})
	}
	if len(structure) == 0 {
		return nil, fmt.Errorf("%w: empty structure", errBadFormat)
	}
	return structure, nil
}

// parseDateInput понимает ГГГГ-ММ-ДД, ДД.ММ.ГГГГ, ДД.ММ, "сегодня" и "завтра".
// ДД.ММ без года, уже прошедшее в этом году, относится к следующему.
func parseDateInput(s string, now time.Time) (string, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	switch s {
	case "сегодня", "today":
		return model.FormatDate(today), nil
	case "завтра", "tomorrow":
		return model.FormatDate(today.AddDate(0, 0, 1)), nil
	}

	if d, err := model.ParseDate(s); err == nil {
		return model.FormatDate(d), nil
	}
	if d, err := time.Parse("2.1.2006", s); err == nil {
		return model.FormatDate(d), nil
	}
	if d, err := time.Parse("2.1", s); err == nil {
		d = time.Date(now.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
		if d.Before(today) {
			d = d.AddDate(1, 0, 0)
		}
		return model.FormatDate(d), nil
	}

	return "", fmt.Errorf("%w: date %q", errBadFormat, s)
}

// parseRating оценка от 1 до 5
func parseRating(s string) (int, error) {
	rating, err := parseInt(s)
	if err != nil {
		return 0, err
	}
	if rating < 1 || rating > 5 {
		return 0, fmt.Errorf("%w: rating %d", errBadFormat, rating)
	}
	return rating, nil
}
