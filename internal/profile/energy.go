package profile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/EmberForge_Go/internal/domain"
	"github.com/osse101/EmberForge_Go/internal/event"
	"github.com/osse101/EmberForge_Go/internal/logger"
)

// StartSleep puts the profile to sleep. Already sleeping is a no-op.
func (s *service) StartSleep(ctx context.Context, profileID string) (*View, error) {
	p, err := s.mutate(ctx, profileID, func(st *state) error {
		st.machine.StartSleep()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.view(ctx, p), nil
}

// WakeUp wakes the profile with its energy unchanged. Already awake is a no-op.
func (s *service) WakeUp(ctx context.Context, profileID string) (*View, error) {
	p, err := s.mutate(ctx, profileID, func(st *state) error {
		if st.machine.WakeUp() {
			st.emit(event.NewEnergyWokeEvent(profileID, domain.WakeReasonManual, st.machine.Energy()))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.view(ctx, p), nil
}

// Spend removes energy. A sleeping profile is woken first and stays awake
// even when the spend then fails for lack of energy.
func (s *service) Spend(ctx context.Context, profileID string, amount int) (*View, error) {
	p, err := s.mutate(ctx, profileID, func(st *state) error {
		woke, err := st.machine.Spend(amount)
		if woke {
			st.emit(event.NewEnergyWokeEvent(profileID, domain.WakeReasonImplicit, st.machine.Energy()))
		}
		if err != nil && woke {
			return keepError{err: err}
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return s.view(ctx, p), nil
}

// TickEnergy credits elapsed sleeping time to one profile
func (s *service) TickEnergy(ctx context.Context, profileID string, elapsed time.Duration) (*TickOutcome, error) {
	if elapsed < 0 {
		return nil, fmt.Errorf("%w: elapsed %s", domain.ErrInvalidAmount, elapsed)
	}

	outcome := &TickOutcome{}
	p, err := s.mutate(ctx, profileID, func(st *state) error {
		s.tick(st, elapsed, outcome)
		return nil
	})
	if err != nil {
		return nil, err
	}
	outcome.Profile = s.view(ctx, p)
	return outcome, nil
}

func (s *service) tick(st *state, elapsed time.Duration, outcome *TickOutcome) {
	result := st.machine.Tick(elapsed)
	outcome.Gained = result.Gained
	outcome.Woke = result.Woke
	if result.Woke {
		st.emit(event.NewEnergyWokeEvent(st.profile.ID, domain.WakeReasonFull, st.machine.Energy()))
	}
}

// TickSleeping credits each sleeping profile for now minus the later of
// since and its sleep start. A failure on one profile is logged and does not
// stop the sweep; the failures are returned joined.
func (s *service) TickSleeping(ctx context.Context, since, now time.Time) (int, error) {
	ids, err := s.repo.ListSleepingProfiles(ctx)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgListSleepingFmt, err)
	}

	log := logger.FromContext(ctx)
	var (
		ticked int
		errs   []error
	)
	for _, id := range ids {
		if ctx.Err() != nil {
			errs = append(errs, ctx.Err())
			break
		}

		credited := false
		_, err := s.mutate(ctx, id, func(st *state) error {
			if !st.machine.IsSleeping() {
				return nil
			}
			from := since
			if started := st.machine.SleepStartedAt(); started != nil && started.After(from) {
				from = *started
			}
			elapsed := now.Sub(from)
			if elapsed <= 0 {
				return nil
			}
			s.tick(st, elapsed, &TickOutcome{})
			credited = true
			return nil
		})
		if err != nil {
			if errors.Is(err, domain.ErrProfileNotFound) {
				continue
			}
			log.Error(LogMsgTickFailed, "profile_id", id, "error", err)
			errs = append(errs, fmt.Errorf("profile %s: %w", id, err))
			continue
		}
		if credited {
			ticked++
		}
	}

	log.Debug(LogMsgSleepingTicked, "sleeping", len(ids), "ticked", ticked)
	return ticked, errors.Join(errs...)
}
