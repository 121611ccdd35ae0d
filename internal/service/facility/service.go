package facility

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/service/facility/models"
)

// Service сервис парковки: пул свободных слотов, реестр активных сессий
// и история выездов для правила непрерывной стоянки.
//
// Все публичные операции защищены одним мьютексом: сервис рассчитан на
// одну операцию в каждый момент времени, внешней конкурентности у
// агрегата нет.
type Service struct {
	mu sync.Mutex

	entryPoints    int
	availableSlots []*domain.Slot

	// Одна логическая сессия хранится в sessions под синтетическим id,
	// индексы byVehicle и bySlot обновляются только вместе с ней
	sessions  map[uuid.UUID]*domain.ParkingSession
	byVehicle map[string]uuid.UUID
	bySlot    map[string]uuid.UUID

	pastEntries map[string]*domain.PastEntry

	// currentTime логические часы; растут только через AdvanceTime
	currentTime float64

	rates   RateCalculator
	metrics MetricsRecorder
	logger  Logger
}

// NewService создает новый экземпляр сервиса парковки.
// Возвращает ErrTooFewEntryPoints, если въездов меньше трех.
// metrics может быть nil - тогда доменные метрики не собираются.
func NewService(entryPoints int, rates RateCalculator, metrics MetricsRecorder, logger Logger) (*Service, error) {
	if entryPoints < domain.MinEntryPoints {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewEntryPoints, entryPoints)
	}
	if metrics == nil {
		metrics = nopMetrics{}
	}

	return &Service{
		entryPoints: entryPoints,
		sessions:    make(map[uuid.UUID]*domain.ParkingSession),
		byVehicle:   make(map[string]uuid.UUID),
		bySlot:      make(map[string]uuid.UUID),
		pastEntries: make(map[string]*domain.PastEntry),
		rates:       rates,
		metrics:     metrics,
		logger:      logger,
	}, nil
}

// RegisterSlots регистрирует слоты в пуле свободных.
// Вся партия проверяется до изменения состояния: при ошибке пул
// остается ровно таким, каким был до вызова.
func (s *Service) RegisterSlots(slots []*domain.Slot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]struct{}, len(slots))
	for _, slot := range slots {
		if len(slot.Distances) != s.entryPoints {
			s.logger.Error("RegisterSlots: slot %s has %d distances, facility has %d entry points",
				slot.ID, len(slot.Distances), s.entryPoints)
			return fmt.Errorf("%w: slot %s", ErrDistanceCountMismatch, slot.ID)
		}
		if _, dup := seen[slot.ID]; dup {
			s.logger.Error("RegisterSlots: duplicate slot id %s in batch", slot.ID)
			return fmt.Errorf("%w: %s", ErrDuplicateSlotID, slot.ID)
		}
		if s.slotRegistered(slot.ID) {
			s.logger.Error("RegisterSlots: slot id %s already registered", slot.ID)
			return fmt.Errorf("%w: %s", ErrDuplicateSlotID, slot.ID)
		}
		seen[slot.ID] = struct{}{}
	}

	s.availableSlots = append(s.availableSlots, slots...)
	s.metrics.SetOccupancy(len(s.sessions), len(s.availableSlots))

	s.logger.Info("RegisterSlots: registered %d slots, %d available", len(slots), len(s.availableSlots))
	return nil
}

// AdvanceTime сдвигает логические часы вперед на hours часов и возвращает
// новое время. Неположительный сдвиг игнорируется: часы не меняются,
// возвращается прежнее значение.
func (s *Service) AdvanceTime(hours float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if hours <= 0 {
		s.logger.Warn("AdvanceTime: additional hours must be greater than 0, got %v", hours)
		return s.currentTime
	}

	s.currentTime += hours
	s.logger.Info("AdvanceTime: +%vh, current time is %vh", hours, s.currentTime)
	return s.currentTime
}

// Park паркует автомобиль, занимая ближайший подходящий слот от въезда entryPoint.
//
// Выбор слота: среди свободных слотов не меньше автомобиля берется слот
// с минимальным расстоянием от данного въезда; при равных расстояниях
// приоритет у слота меньшего класса (плотная посадка сохраняет большие
// слоты для больших автомобилей).
func (s *Service) Park(entryPoint int, vehicle *domain.Vehicle) (*domain.ParkingSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// 1. Валидация въезда
	if entryPoint < 0 || entryPoint >= s.entryPoints {
		s.logger.Warn("Park: invalid entry point %d, facility has %d entry points", entryPoint, s.entryPoints)
		return nil, fmt.Errorf("%w: %d", ErrInvalidEntryPoint, entryPoint)
	}

	// 2. Повторная парковка - бизнес-исход без изменения состояния
	if _, parked := s.byVehicle[vehicle.ID]; parked {
		s.logger.Warn("Park: vehicle %s is already parked", vehicle.ID)
		s.metrics.IncParkRejection("already_parked")
		return nil, ErrVehicleAlreadyParked
	}

	// 3. Выбор слота
	idx := s.selectSlot(entryPoint, vehicle)
	if idx < 0 {
		s.logger.Warn("Park: no available slot for vehicle %s (size=%s)", vehicle.ID, vehicle.Size)
		s.metrics.IncParkRejection("no_slot")
		return nil, ErrNoSlotAvailable
	}

	slot := s.availableSlots[idx]
	s.availableSlots = append(s.availableSlots[:idx], s.availableSlots[idx+1:]...)

	// 4. Правило непрерывности: возврат в пределах окна продолжает
	// прежнюю тарифную сессию, иначе устаревшая запись вычищается
	startTime := s.currentTime
	if past, ok := s.pastEntries[vehicle.ID]; ok {
		if s.currentTime-past.EndTime <= domain.ContinuityWindowHours {
			startTime = past.StartTime
			s.logger.Info("Park: vehicle %s returned within continuity window, billing continues from %vh",
				vehicle.ID, startTime)
		} else {
			delete(s.pastEntries, vehicle.ID)
		}
	}

	session := &domain.ParkingSession{
		ID:        uuid.New(),
		Slot:      slot,
		Vehicle:   vehicle,
		StartTime: startTime,
	}
	s.sessions[session.ID] = session
	s.byVehicle[vehicle.ID] = session.ID
	s.bySlot[slot.ID] = session.ID

	s.metrics.SetOccupancy(len(s.sessions), len(s.availableSlots))

	s.logger.Info("Park: vehicle %s (size=%s) occupies slot %s (size=%s) from entry point %d",
		vehicle.ID, vehicle.Size, slot.ID, slot.Size, entryPoint)
	return session, nil
}

// Unpark освобождает слот припаркованного автомобиля и возвращает чек.
// Для автомобиля, продолжившего прежнюю сессию, к оплате идет только
// разница с уже оплаченной суммой.
func (s *Service) Unpark(vehicleID string) (*models.Receipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessionID, ok := s.byVehicle[vehicleID]
	if !ok {
		s.logger.Warn("Unpark: vehicle %s not found", vehicleID)
		return nil, ErrVehicleNotFound
	}
	session := s.sessions[sessionID]

	// Снимаем сессию со всех индексов и возвращаем слот в пул
	delete(s.sessions, sessionID)
	delete(s.byVehicle, vehicleID)
	delete(s.bySlot, session.Slot.ID)
	s.availableSlots = append(s.availableSlots, session.Slot)

	// Считаем тариф за всю эффективную сессию
	rate := s.rates.Calculate(session.StartTime, s.currentTime, session.Slot.Size)

	// Вычитаем уже оплаченное при предыдущем выезде в рамках той же сессии
	var previousCharge float64
	if past, ok := s.pastEntries[vehicleID]; ok {
		previousCharge = past.Rate.Charge
		if past.Slot.Size != session.Slot.Size {
			// Окно непрерывности перекрыло слоты разных классов: дельта
			// считается по тарифу нового слота
			s.logger.Warn("Unpark: continuity for vehicle %s spans slot sizes %s and %s, delta uses the new rate",
				vehicleID, past.Slot.Size, session.Slot.Size)
		}
	}
	charge := rate.Charge - previousCharge

	s.pastEntries[vehicleID] = &domain.PastEntry{
		Slot:      session.Slot,
		Vehicle:   session.Vehicle,
		StartTime: session.StartTime,
		EndTime:   s.currentTime,
		Rate:      rate,
	}

	s.metrics.SetOccupancy(len(s.sessions), len(s.availableSlots))
	s.metrics.ObserveCharge(charge)

	s.logger.Info("Unpark: vehicle %s leaves slot %s, %dh parked, charge=%v (previously paid %v)",
		vehicleID, session.Slot.ID, rate.TotalHours, charge, previousCharge)

	return &models.Receipt{
		VehicleID: vehicleID,
		SlotID:    session.Slot.ID,
		StartTime: session.StartTime,
		EndTime:   s.currentTime,
		Rate:      rate,
		Charge:    charge,
	}, nil
}

// AvailableSlots возвращает снимок пула свободных слотов
func (s *Service) AvailableSlots() []*domain.Slot {
	s.mu.Lock()
	defer s.mu.Unlock()

	slots := make([]*domain.Slot, len(s.availableSlots))
	copy(slots, s.availableSlots)
	return slots
}

// Time возвращает текущее логическое время в часах
func (s *Service) Time() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.currentTime
}

// selectSlot возвращает индекс лучшего свободного слота для автомобиля
// или -1, если подходящих нет.
//
// Кандидаты сравниваются по (расстояние от въезда, класс слота). Если и
// расстояние, и класс совпали, порядок не специфицирован: берется первый
// по порядку пула, который следует порядку регистрации.
func (s *Service) selectSlot(entryPoint int, vehicle *domain.Vehicle) int {
	best := -1
	for i, slot := range s.availableSlots {
		if !slot.Size.Accommodates(vehicle.Size) {
			continue
		}
		if best < 0 {
			best = i
			continue
		}

		current := s.availableSlots[best]
		switch {
		case slot.DistanceFrom(entryPoint) < current.DistanceFrom(entryPoint):
			best = i
		case slot.DistanceFrom(entryPoint) == current.DistanceFrom(entryPoint) && slot.Size < current.Size:
			best = i
		}
	}
	return best
}

// slotRegistered проверяет, известен ли id слота пулу или занятым слотам
func (s *Service) slotRegistered(id string) bool {
	if _, occupied := s.bySlot[id]; occupied {
		return true
	}
	for _, slot := range s.availableSlots {
		if slot.ID == id {
			return true
		}
	}
	return false
}

// nopMetrics заглушка для выключенных метрик
type nopMetrics struct{}

func (nopMetrics) SetOccupancy(parked, available int) {}
func (nopMetrics) ObserveCharge(amount float64)       {}
func (nopMetrics) IncParkRejection(reason string)     {}
