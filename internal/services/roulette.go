package services

import (
	"context"
	stderrors "errors"
	"math/rand"
	"sync"
	"time"

	"github.com/abrezinsky/reviewwheel/internal/logger"
	"github.com/abrezinsky/reviewwheel/internal/models"
	"github.com/abrezinsky/reviewwheel/internal/repository"
	"github.com/abrezinsky/reviewwheel/internal/roulette"
)

// DefaultSpinDuration is how long the wheel spins before the prize is locked in
const DefaultSpinDuration = 3 * time.Second

// Timer is a pending callback that can be cancelled
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// RealScheduler schedules with time.AfterFunc
type RealScheduler struct{}

// AfterFunc implements Scheduler
func (RealScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Navigator sends the customer to an external page
type Navigator interface {
	Navigate(url string)
}

// Broadcaster pushes state changes to connected clients
type Broadcaster interface {
	BroadcastState(snap models.Snapshot)
}

// RouletteOptions configures a RouletteService. Zero values fall back to defaults.
type RouletteOptions struct {
	Prizes       []models.Prize
	ReviewURL    string
	SpinDuration time.Duration
	Rand         roulette.RandSource
	Scheduler    Scheduler
	Navigator    Navigator
	Now          func() time.Time
}

// RouletteService runs the wheel session: IDLE -> SPINNING -> WON_LOCKED -> COUPON_ACTIVE,
// with Reset returning to IDLE from anywhere. Every transition is serialised by mu.
type RouletteService struct {
	log          logger.Logger
	repo         repository.SessionRepository
	prizes       []models.Prize
	reviewURL    string
	spinDuration time.Duration
	rng          roulette.RandSource
	scheduler    Scheduler
	navigator    Navigator
	now          func() time.Time

	mu          sync.Mutex
	state       models.State
	prize       *models.Prize
	rotation    float64
	timer       Timer
	generation  uint64
	broadcaster Broadcaster
	outbox      []models.Snapshot

	// deliverMu keeps broadcasts in the order the transitions happened
	deliverMu sync.Mutex
}

// NewRouletteService creates a new RouletteService in the IDLE state.
// Call Restore to pick up a persisted session.
func NewRouletteService(log logger.Logger, repo repository.SessionRepository, opts RouletteOptions) *RouletteService {
	s := &RouletteService{
		log:          log,
		repo:         repo,
		prizes:       append([]models.Prize(nil), opts.Prizes...),
		reviewURL:    opts.ReviewURL,
		spinDuration: opts.SpinDuration,
		rng:          opts.Rand,
		scheduler:    opts.Scheduler,
		navigator:    opts.Navigator,
		now:          opts.Now,
		state:        models.StateIdle,
	}
	if s.spinDuration <= 0 {
		s.spinDuration = DefaultSpinDuration
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if s.scheduler == nil {
		s.scheduler = RealScheduler{}
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// SetBroadcaster sets the broadcaster for sending updates to clients
func (s *RouletteService) SetBroadcaster(b Broadcaster) {
	s.mu.Lock()
	s.broadcaster = b
	s.mu.Unlock()
}

// SetNavigator sets where the review page is opened
func (s *RouletteService) SetNavigator(n Navigator) {
	s.mu.Lock()
	s.navigator = n
	s.mu.Unlock()
}

// Prizes returns a copy of the prize table in wheel order
func (s *RouletteService) Prizes() []models.Prize {
	return append([]models.Prize(nil), s.prizes...)
}

// Chances returns the prize table with win percentages
func (s *RouletteService) Chances() []models.PrizeChance {
	return roulette.Chances(s.prizes)
}

// ReviewURL returns the external review page
func (s *RouletteService) ReviewURL() string {
	return s.reviewURL
}

// Snapshot returns the current state
func (s *RouletteService) Snapshot() models.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Restore rebuilds the in-memory state from the persisted record.
// A corrupt record is cleared and the wheel starts IDLE.
func (s *RouletteService) Restore(ctx context.Context) models.Snapshot {
	s.mu.Lock()
	s.cancelSpinLocked()
	s.state, s.prize, s.rotation = models.StateIdle, nil, 0

	rec, err := s.repo.LoadSession(ctx)
	switch {
	case stderrors.Is(err, repository.ErrCorruptRecord):
		s.log.Warn("Discarding corrupt session record", "error", err)
		if clearErr := s.repo.ClearSession(ctx); clearErr != nil {
			s.log.Error("Failed to clear corrupt session record", "error", clearErr)
		}
	case err != nil:
		s.log.Error("Failed to load session record, starting idle", "error", err)
	case rec == nil || rec.ChosenPrize == nil:
		s.log.Debug("No saved session, starting idle")
	default:
		prize := *rec.ChosenPrize
		s.prize = &prize
		s.state = models.StateWonLocked
		if rec.Unlocked {
			s.state = models.StateCouponActive
		}
		if i := roulette.IndexOf(s.prizes, prize.ID); i >= 0 {
			s.rotation = roulette.Rotation(i, len(s.prizes))
		}
		s.log.Info("Session restored", "state", s.state, "prize", prize.Name)
	}

	snap := s.publishLocked()
	s.mu.Unlock()

	s.flush()
	return snap
}

// Spin starts a spin from IDLE. Any other state leaves the wheel untouched and
// reports applied=false.
func (s *RouletteService) Spin(ctx context.Context) (models.Snapshot, bool) {
	s.mu.Lock()
	if s.state != models.StateIdle || len(s.prizes) == 0 {
		snap := s.snapshotLocked()
		s.mu.Unlock()
		s.log.Debug("Spin ignored", "state", snap.State)
		return snap, false
	}

	prize := roulette.SelectPrize(s.prizes, s.rng)
	s.prize = &prize
	s.rotation = roulette.Rotation(roulette.IndexOf(s.prizes, prize.ID), len(s.prizes))
	s.state = models.StateSpinning
	s.generation++
	gen := s.generation
	s.timer = s.scheduler.AfterFunc(s.spinDuration, func() { s.completeSpin(gen) })

	snap := s.publishLocked()
	s.mu.Unlock()

	s.log.Info("Wheel spinning", "prize", prize.Name, "rotation", snap.Rotation)
	s.flush()
	return snap, true
}

// completeSpin locks in the drawn prize once the spin delay has passed.
// A reset since the spin started bumps the generation and turns this into a no-op.
func (s *RouletteService) completeSpin(gen uint64) {
	s.mu.Lock()
	if s.state != models.StateSpinning || s.generation != gen {
		s.mu.Unlock()
		s.log.Debug("Stale spin completion ignored", "generation", gen)
		return
	}

	s.timer = nil
	s.state = models.StateWonLocked
	s.save(context.Background(), false)

	snap := s.publishLocked()
	s.mu.Unlock()

	s.log.Info("Prize locked", "prize", snap.Prize.Name)
	s.flush()
}

// Review unlocks the coupon and sends the customer to the review page.
// Only WON_LOCKED with a prize accepts it, so the page opens once per flow.
func (s *RouletteService) Review(ctx context.Context) (models.Snapshot, bool) {
	s.mu.Lock()
	if s.state != models.StateWonLocked || s.prize == nil {
		snap := s.snapshotLocked()
		s.mu.Unlock()
		s.log.Debug("Review ignored", "state", snap.State)
		return snap, false
	}

	s.state = models.StateCouponActive
	s.save(ctx, true)

	snap := s.publishLocked()
	nav := s.navigator
	s.mu.Unlock()

	s.log.Info("Coupon unlocked", "prize", snap.Prize.Name)
	if nav != nil {
		nav.Navigate(s.reviewURL)
	}
	s.flush()
	return snap, true
}

// Reset cancels any pending spin, deletes the saved record and returns to IDLE
func (s *RouletteService) Reset(ctx context.Context) models.Snapshot {
	s.mu.Lock()
	from := s.state
	s.cancelSpinLocked()
	s.state, s.prize, s.rotation = models.StateIdle, nil, 0

	if err := s.repo.ClearSession(ctx); err != nil {
		s.log.Error("Failed to clear session record", "error", err)
	}

	snap := s.publishLocked()
	s.mu.Unlock()

	s.log.Info("Wheel reset", "from", from)
	s.flush()
	return snap
}

// Close cancels a pending spin without touching the saved record
func (s *RouletteService) Close() {
	s.mu.Lock()
	s.cancelSpinLocked()
	s.mu.Unlock()
}

func (s *RouletteService) cancelSpinLocked() {
	s.generation++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// save persists the current prize. Failures are logged and the transition stands.
func (s *RouletteService) save(ctx context.Context, unlocked bool) {
	prize := *s.prize
	rec := models.SessionRecord{ChosenPrize: &prize, Unlocked: unlocked, RecordedAt: s.now()}
	if err := s.repo.SaveSession(ctx, rec); err != nil {
		s.log.Error("Failed to save session record", "error", err, "unlocked", unlocked)
	}
}

func (s *RouletteService) snapshotLocked() models.Snapshot {
	snap := models.Snapshot{
		State:          s.state,
		Rotation:       s.rotation,
		SpinDurationMs: s.spinDuration.Milliseconds(),
		ReviewURL:      s.reviewURL,
		Unlocked:       s.state == models.StateCouponActive,
	}
	if s.prize != nil {
		prize := *s.prize
		snap.Prize = &prize
	}
	return snap
}

// publishLocked queues the current snapshot for the broadcaster and returns it
func (s *RouletteService) publishLocked() models.Snapshot {
	snap := s.snapshotLocked()
	s.outbox = append(s.outbox, snap)
	return snap
}

// flush delivers queued snapshots in transition order. It is called without mu
// held, so a broadcaster that reads Snapshot while a delivery is pending does not block.
func (s *RouletteService) flush() {
	s.deliverMu.Lock()
	defer s.deliverMu.Unlock()

	for {
		s.mu.Lock()
		if len(s.outbox) == 0 {
			s.mu.Unlock()
			return
		}
		snap := s.outbox[0]
		s.outbox = s.outbox[1:]
		b := s.broadcaster
		s.mu.Unlock()

		if b != nil {
			b.BroadcastState(snap)
		}
	}
}
