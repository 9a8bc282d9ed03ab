//go:build unit

package sprayrequest_test

import (
	"testing"
	"time"

	"agrispray/internal/domain/sprayrequest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validParams(t *testing.T) sprayrequest.NewRequestParams {
	t.Helper()
	plan, err := sprayrequest.NewTankPlan(3, 2)
	require.NoError(t, err)
	date, err := sprayrequest.NewSprayDate("13/03/2025")
	require.NoError(t, err)

	return sprayrequest.NewRequestParams{
		UserID:       uuid.New(),
		Address:      "Nashik",
		Acres:        5,
		Tanks:        plan,
		SprayingDate: date,
		Agrochemical: "Insecticide",
		Crop:         "Bajra",
		BasePrice:    1000,
		Price:        900,
		CreatedAt:    time.Now(),
	}
}

func TestNewTankPlan(t *testing.T) {
	cases := []struct {
		name          string
		numberOfTanks int
		tanksToSpray  int
		errIs         error
	}{
		{name: "spray all tanks", numberOfTanks: 2, tanksToSpray: 2},
		{name: "spray subset", numberOfTanks: 4, tanksToSpray: 1},
		{name: "zero tanks", numberOfTanks: 0, tanksToSpray: 0, errIs: sprayrequest.ErrInvalidTankCount},
		{name: "negative tanks", numberOfTanks: -1, tanksToSpray: 1, errIs: sprayrequest.ErrInvalidTankCount},
		{name: "zero tanks to spray", numberOfTanks: 2, tanksToSpray: 0, errIs: sprayrequest.ErrInvalidTankSplit},
		// The original form let this through; the store now rejects it.
		{name: "spray more tanks than exist", numberOfTanks: 2, tanksToSpray: 3, errIs: sprayrequest.ErrInvalidTankSplit},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			plan, err := sprayrequest.NewTankPlan(c.numberOfTanks, c.tanksToSpray)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.numberOfTanks, plan.NumberOfTanks())
			assert.Equal(t, c.tanksToSpray, plan.TanksToSpray())
		})
	}
}

func TestNewSprayDate(t *testing.T) {
	t.Run("valid date", func(t *testing.T) {
		d, err := sprayrequest.NewSprayDate("13/03/2025")
		require.NoError(t, err)
		assert.Equal(t, "13/03/2025", d.String())
		assert.Equal(t, time.March, d.Day().Month())
	})

	t.Run("rejects malformed dates", func(t *testing.T) {
		for _, raw := range []string{"", "2025-03-13", "32/01/2025", "13/13/2025", "someday"} {
			_, err := sprayrequest.NewSprayDate(raw)
			assert.ErrorIs(t, err, sprayrequest.ErrInvalidSprayDate, "input %q", raw)
		}
	})
}

func TestNewSprayRequest(t *testing.T) {
	t.Run("starts Pending with no id", func(t *testing.T) {
		req, err := sprayrequest.NewSprayRequest(validParams(t))
		require.NoError(t, err)
		assert.Equal(t, sprayrequest.StatusPending, req.Status())
		assert.Equal(t, uuid.Nil, req.ID())
		assert.Equal(t, 1000.0, req.BasePrice())
		assert.Equal(t, 900.0, req.Price())
	})

	runCases(t, []entityCase{
		{
			name:   "empty address",
			mutate: func(p *sprayrequest.NewRequestParams) { p.Address = "   " },
			errIs:  sprayrequest.ErrEmptyAddress,
		},
		{
			name:   "zero acres",
			mutate: func(p *sprayrequest.NewRequestParams) { p.Acres = 0 },
			errIs:  sprayrequest.ErrInvalidAcres,
		},
		{
			name:   "negative acres",
			mutate: func(p *sprayrequest.NewRequestParams) { p.Acres = -2.5 },
			errIs:  sprayrequest.ErrInvalidAcres,
		},
		{
			name:   "negative price",
			mutate: func(p *sprayrequest.NewRequestParams) { p.Price = -1 },
			errIs:  sprayrequest.ErrNegativePrice,
		},
		{
			name:   "negative base price",
			mutate: func(p *sprayrequest.NewRequestParams) { p.BasePrice = -1 },
			errIs:  sprayrequest.ErrNegativePrice,
		},
		{
			name:   "unknown crop is allowed",
			mutate: func(p *sprayrequest.NewRequestParams) { p.Crop = "Quinoa" },
		},
	})
}

type entityCase struct {
	name   string
	mutate func(*sprayrequest.NewRequestParams)
	errIs  error
}

func runCases(t *testing.T, cases []entityCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			params := validParams(t)
			c.mutate(&params)
			actual, err := sprayrequest.NewSprayRequest(params)

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

func TestTransition(t *testing.T) {
	build := func(t *testing.T) *sprayrequest.SprayRequest {
		req, err := sprayrequest.NewSprayRequest(validParams(t))
		require.NoError(t, err)
		return req
	}

	t.Run("pending to accepted", func(t *testing.T) {
		req := build(t)
		require.NoError(t, req.Transition(sprayrequest.StatusAccepted))
		assert.Equal(t, sprayrequest.StatusAccepted, req.Status())
	})

	t.Run("completed request refuses further transitions", func(t *testing.T) {
		req := build(t)
		require.NoError(t, req.Transition(sprayrequest.StatusCompleted))

		err := req.Transition(sprayrequest.StatusPending)
		require.ErrorIs(t, err, sprayrequest.ErrInvalidTransition)
		assert.Equal(t, sprayrequest.StatusCompleted, req.Status())
	})

	t.Run("non-member status is rejected", func(t *testing.T) {
		req := build(t)
		err := req.Transition(sprayrequest.Status("Archived"))
		require.ErrorIs(t, err, sprayrequest.ErrInvalidStatus)
		assert.Equal(t, sprayrequest.StatusPending, req.Status())
	})
}

func TestSetStatus(t *testing.T) {
	req, err := sprayrequest.NewSprayRequest(validParams(t))
	require.NoError(t, err)

	// The override path may pull a request back out of a terminal status.
	require.NoError(t, req.SetStatus(sprayrequest.StatusCompleted))
	require.NoError(t, req.SetStatus(sprayrequest.StatusPending))
	assert.Equal(t, sprayrequest.StatusPending, req.Status())

	err = req.SetStatus(sprayrequest.Status("Archived"))
	require.ErrorIs(t, err, sprayrequest.ErrInvalidStatus)
}

func TestWithID(t *testing.T) {
	req, err := sprayrequest.NewSprayRequest(validParams(t))
	require.NoError(t, err)

	id := uuid.New()
	stored := req.WithID(id)

	assert.Equal(t, id, stored.ID())
	assert.Equal(t, uuid.Nil, req.ID(), "original is untouched")
	assert.Equal(t, req.Address(), stored.Address())
}
