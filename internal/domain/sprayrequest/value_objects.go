package sprayrequest

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyAddress     = errors.New("address cannot be empty")
	ErrInvalidAcres     = errors.New("acres must be positive")
	ErrInvalidTankCount = errors.New("number of tanks must be positive")
	ErrInvalidTankSplit = errors.New("tanks to spray must be positive and not exceed the number of tanks")
	ErrInvalidSprayDate = errors.New("spraying date must be a dd/mm/yyyy date")
	ErrNegativePrice    = errors.New("price cannot be negative")
)

// sprayDateLayout is the wire format the request form submits.
const sprayDateLayout = "02/01/2006"

// SprayDate wraps the dd/mm/yyyy date string stored on the document.
type SprayDate struct {
	value string
	day   time.Time
}

func NewSprayDate(value string) (SprayDate, error) {
	value = strings.TrimSpace(value)
	day, err := time.Parse(sprayDateLayout, value)
	if err != nil {
		return SprayDate{}, ErrInvalidSprayDate
	}
	return SprayDate{value: value, day: day}, nil
}

func (d SprayDate) String() string {
	return d.value
}

func (d SprayDate) Day() time.Time {
	return d.day
}

// TankPlan holds the tank counts of a request. TanksToSpray can never exceed
// NumberOfTanks.
type TankPlan struct {
	numberOfTanks int
	tanksToSpray  int
}

func NewTankPlan(numberOfTanks, tanksToSpray int) (TankPlan, error) {
	if numberOfTanks < 1 {
		return TankPlan{}, ErrInvalidTankCount
	}
	if tanksToSpray < 1 || tanksToSpray > numberOfTanks {
		return TankPlan{}, ErrInvalidTankSplit
	}
	return TankPlan{numberOfTanks: numberOfTanks, tanksToSpray: tanksToSpray}, nil
}

func (p TankPlan) NumberOfTanks() int { return p.numberOfTanks }
func (p TankPlan) TanksToSpray() int  { return p.tanksToSpray }

func validateAcres(acres float64) error {
	if acres <= 0 {
		return ErrInvalidAcres
	}
	return nil
}
