package common

import (
	"bytes"
	"image/png"
	"testing"
	"time"

	"github.com/Freeeeeet/admin_bot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDayImage(t *testing.T) {
	monday := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	services := []model.Service{{ID: "cut", Name: "Стрижка", Duration: 30}}
	columns := []StaffColumn{
		{
			Staff: model.Staff{ID: "a", Name: "Анна", WorkingHours: []model.WorkingHours{{DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00"}}},
			Appointments: []model.Appointment{
				{ID: "1", ServiceID: "cut", Time: "10:00", CustomerName: "Иван Петров", Status: model.AppointmentStatusConfirmed},
				{ID: "2", ServiceID: "cut", Time: "bad", Status: model.AppointmentStatusPending},
			},
		},
		{Staff: model.Staff{ID: "b", Name: "Борис"}},
	}

	data, err := GenerateDayImage(monday, columns, services, monday.Add(11*time.Hour))
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, leftLabelsWidth+2*columnWidth+legendWidth, img.Bounds().Dx())
	assert.Equal(t, dayImageHeight, img.Bounds().Dy())
}

func TestGenerateDayImage_NoStaff(t *testing.T) {
	data, err := GenerateDayImage(time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), nil, nil, time.Now())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")))
}

func TestCalculateHourRange(t *testing.T) {
	columns := []StaffColumn{{
		Staff:        model.Staff{WorkingHours: []model.WorkingHours{{DayOfWeek: 1, StartTime: "09:30", EndTime: "17:00"}}},
		Appointments: []model.Appointment{{ServiceID: "long", Time: "16:30"}},
	}}

	hours := calculateHourRange(columns, 1, map[string]int{"long": 90})
	assert.Equal(t, 8, hours.start)
	assert.Equal(t, 19, hours.end)
	assert.Equal(t, 11, hours.total)

	empty := calculateHourRange(nil, 1, nil)
	assert.Equal(t, defaultStartHour-hourPadding, empty.start)
	assert.Equal(t, defaultEndHour+hourPadding, empty.end)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Анна", truncate("Анна", 10))
	assert.Equal(t, "Алекс…", truncate("Александра", 6))
}
