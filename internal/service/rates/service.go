package rates

import (
	"math"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Schedule тарифная сетка парковки
type Schedule struct {
	// FlatAmount минимальная плата, покрывающая первые FlatHours часов
	FlatAmount float64
	FlatHours  int

	// PerDayAmount плата за каждые полные сутки
	PerDayAmount float64
	HoursPerDay  int

	// Hourly почасовая ставка сверх минимума, по классу слота
	Hourly map[domain.SlotSize]float64
}

// DefaultSchedule возвращает эталонную тарифную сетку
func DefaultSchedule() Schedule {
	return Schedule{
		FlatAmount:   domain.DefaultFlatAmount,
		FlatHours:    domain.DefaultFlatHours,
		PerDayAmount: domain.DefaultPerDayAmount,
		HoursPerDay:  domain.DefaultHoursPerDay,
		Hourly: map[domain.SlotSize]float64{
			domain.SlotSmall:  domain.DefaultHourlySmall,
			domain.SlotMedium: domain.DefaultHourlyMedium,
			domain.SlotLarge:  domain.DefaultHourlyLarge,
		},
	}
}

// Service сервис расчета стоимости парковки.
// Чистая функция над фиксированной тарифной сеткой, без внутреннего состояния.
type Service struct {
	schedule Schedule
}

// NewService создает новый экземпляр сервиса тарификации
func NewService(schedule Schedule) *Service {
	return &Service{schedule: schedule}
}

// Calculate вычисляет стоимость стоянки за интервал [startTime, endTime]
// для слота заданного класса.
//
// Правила тарификации:
//   - неполный час всегда округляется вверх (договорное правило биллинга)
//   - до FlatHours часов включительно — фиксированная плата FlatAmount
//   - от полных суток — посуточная плата за каждые полные сутки плюс
//     почасовая ставка за остаток; фиксированная плата НЕ добавляется
//   - между этими границами — FlatAmount плюс почасовая ставка за часы
//     сверх FlatHours
func (s *Service) Calculate(startTime, endTime float64, slotSize domain.SlotSize) domain.RateResult {
	result := domain.RateResult{}

	totalHours := int(math.Ceil(endTime - startTime))
	if totalHours < 0 {
		totalHours = 0
	}
	result.TotalHours = totalHours

	switch {
	case totalHours <= s.schedule.FlatHours:
		result.Charge = s.schedule.FlatAmount

	case totalHours >= s.schedule.HoursPerDay:
		result.Days = totalHours / s.schedule.HoursPerDay
		result.ExceedingHours = totalHours % s.schedule.HoursPerDay
		result.Charge = float64(result.Days)*s.schedule.PerDayAmount +
			float64(result.ExceedingHours)*s.schedule.Hourly[slotSize]

	default:
		result.ExceedingHours = totalHours - s.schedule.FlatHours
		result.Charge = s.schedule.FlatAmount +
			float64(result.ExceedingHours)*s.schedule.Hourly[slotSize]
	}

	return result
}
