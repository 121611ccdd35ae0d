package facility

import "errors"

var (
	// ErrTooFewEntryPoints возвращается при попытке создать парковку
	// менее чем с тремя въездами
	ErrTooFewEntryPoints = errors.New("entry points must not be less than 3")

	// ErrDistanceCountMismatch возвращается, когда число расстояний слота
	// не совпадает с числом въездов парковки
	ErrDistanceCountMismatch = errors.New("number of distances must be equal to number of entry points")

	// ErrDuplicateSlotID возвращается при регистрации слота с уже занятым id
	ErrDuplicateSlotID = errors.New("slot id already registered")

	// ErrInvalidEntryPoint возвращается при въезде вне диапазона [0, entryPoints)
	ErrInvalidEntryPoint = errors.New("invalid entry point")

	// ErrVehicleAlreadyParked возвращается, когда автомобиль с таким id уже припаркован
	ErrVehicleAlreadyParked = errors.New("a vehicle with this id is already parked")

	// ErrNoSlotAvailable возвращается, когда нет подходящего свободного слота
	ErrNoSlotAvailable = errors.New("no available parking slot")

	// ErrVehicleNotFound возвращается, когда автомобиль не найден среди припаркованных
	ErrVehicleNotFound = errors.New("vehicle not found")
)
