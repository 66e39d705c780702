// Package availability решает, можно ли принять запись к сотруднику.
//
// Check работает над снимком данных, который передаёт вызывающий код, ничего не
// читает и не пишет сам. Сохранение записи остаётся за вызывающим.
package availability

import (
	"time"

	"github.com/Freeeeeet/admin_bot/internal/model"
)

// ActiveStatuses статусы, которые занимают сотрудника: учитываются в лимите на день
// и при проверке пересечений. Завершённые и отменённые записи остаются в истории,
// но на новые записи не влияют.
var ActiveStatuses = map[model.AppointmentStatus]bool{
	model.AppointmentStatusPending:   true,
	model.AppointmentStatusConfirmed: true,
}

// Request кандидат на запись с уже разобранными датой и временем
type Request struct {
	StaffID   string
	ServiceID string
	Date      time.Time
	Start     model.Clock
}

// Check прогоняет кандидата через проверки в фиксированном порядке и возвращает
// nil или *Rejection с первой нарушенной причиной.
func Check(req Request, staff []model.Staff, services []model.Service, appointments []model.Appointment) error {
	date := model.FormatDate(req.Date)
	reject := func(reason error) *Rejection {
		return &Rejection{
			Reason:    reason,
			StaffID:   req.StaffID,
			ServiceID: req.ServiceID,
			Date:      date,
			Time:      req.Start.String(),
		}
	}

	// 1. Сотрудник
	member := findStaff(staff, req.StaffID)
	if member == nil {
		return reject(ErrStaffNotFound)
	}

	// 2. Рабочий день
	hours, ok := member.HoursFor(int(req.Date.Weekday()))
	if !ok {
		return reject(ErrStaffNotWorkingThatDay)
	}

	// 3. Рабочие часы, обе границы включительно
	if !withinHours(req.Start, hours) {
		r := reject(ErrOutsideWorkingHours)
		r.WorkingFrom = hours.StartTime
		r.WorkingTo = hours.EndTime
		return r
	}

	// 4. Лимит клиентов на день
	sameDay := activeForDay(appointments, req.StaffID, date)
	if len(sameDay) >= member.MaxCustomersPerDay {
		r := reject(ErrStaffFullyBooked)
		r.Limit = member.MaxCustomersPerDay
		return r
	}

	// 5. Услуга
	service := findService(services, req.ServiceID)
	if service == nil {
		return reject(ErrServiceNotFound)
	}

	// 6. Пересечения, интервалы полуоткрытые [start, end)
	end := req.Start.Add(service.Duration)
	for _, existing := range sameDay {
		existingService := findService(services, existing.ServiceID)
		if existingService == nil {
			continue
		}

		existingStart, err := model.ParseClock(existing.Time)
		if err != nil {
			continue
		}
		existingEnd := existingStart.Add(existingService.Duration)

		if Overlaps(req.Start, end, existingStart, existingEnd) {
			r := reject(ErrTimeConflict)
			r.ConflictID = existing.ID
			r.ConflictStart = existingStart.String()
			r.ConflictEnd = existingEnd.String()
			return r
		}
	}

	return nil
}

// Overlaps проверяет пересечение полуоткрытых интервалов [a0, a1) и [b0, b1):
// касание границами пересечением не считается.
func Overlaps(a0, a1, b0, b1 model.Clock) bool {
	return !(a1 <= b0 || b1 <= a0)
}

func withinHours(t model.Clock, hours model.WorkingHours) bool {
	start, err := model.ParseClock(hours.StartTime)
	if err != nil {
		return false
	}
	end, err := model.ParseClock(hours.EndTime)
	if err != nil {
		return false
	}
	return t >= start && t <= end
}

func activeForDay(appointments []model.Appointment, staffID, date string) []model.Appointment {
	var result []model.Appointment
	for _, a := range appointments {
		if a.StaffID == staffID && a.Date == date && ActiveStatuses[a.Status] {
			result = append(result, a)
		}
	}
	return result
}

func findStaff(staff []model.Staff, id string) *model.Staff {
	for i := range staff {
		if staff[i].ID == id {
			return &staff[i]
		}
	}
	return nil
}

func findService(services []model.Service, id string) *model.Service {
	for i := range services {
		if services[i].ID == id {
			return &services[i]
		}
	}
	return nil
}
