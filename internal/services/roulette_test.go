package services_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/abrezinsky/reviewwheel/internal/logger"
	"github.com/abrezinsky/reviewwheel/internal/models"
	"github.com/abrezinsky/reviewwheel/internal/repository"
	"github.com/abrezinsky/reviewwheel/internal/repository/mock"
	"github.com/abrezinsky/reviewwheel/internal/services"
	"github.com/abrezinsky/reviewwheel/internal/testutil"
)

const reviewURL = "https://naver.me/xOmvlCzr"

type fixture struct {
	svc       *services.RouletteService
	repo      *mock.Repository
	sched     *testutil.FakeScheduler
	nav       *testutil.FakeNavigator
	broadcast *testutil.RecordingBroadcaster
	logs      *bytes.Buffer
}

func newFixture(t *testing.T, rngValues ...float64) *fixture {
	t.Helper()
	if len(rngValues) == 0 {
		rngValues = []float64{0.5}
	}

	f := &fixture{
		repo:      mock.NewRepository(testutil.NewTestRepository(t)),
		sched:     &testutil.FakeScheduler{},
		nav:       &testutil.FakeNavigator{},
		broadcast: &testutil.RecordingBroadcaster{},
		logs:      &bytes.Buffer{},
	}
	f.svc = services.NewRouletteService(logger.NewWithWriter(f.logs, slog.LevelDebug), f.repo, services.RouletteOptions{
		Prizes:       testutil.DefaultPrizes(),
		ReviewURL:    reviewURL,
		SpinDuration: 3 * time.Second,
		Rand:         testutil.NewFixedRand(rngValues...),
		Scheduler:    f.sched,
		Navigator:    f.nav,
		Now:          func() time.Time { return time.UnixMilli(1718000000000) },
	})
	f.svc.SetBroadcaster(f.broadcast)
	return f
}

// spinToWon drives the service from IDLE to WON_LOCKED
func (f *fixture) spinToWon(t *testing.T) {
	t.Helper()
	if _, applied := f.svc.Spin(context.Background()); !applied {
		t.Fatal("expected spin to be applied")
	}
	if !f.sched.Last().Fire() {
		t.Fatal("expected spin timer to fire")
	}
	if got := f.svc.Snapshot().State; got != models.StateWonLocked {
		t.Fatalf("expected WON_LOCKED, got %s", got)
	}
}

func TestRouletteService_StartsIdle(t *testing.T) {
	f := newFixture(t)

	snap := f.svc.Snapshot()
	if snap.State != models.StateIdle {
		t.Errorf("expected IDLE, got %s", snap.State)
	}
	if snap.Prize != nil || snap.Rotation != 0 || snap.Unlocked {
		t.Errorf("expected empty idle snapshot, got %+v", snap)
	}
	if snap.SpinDurationMs != 3000 {
		t.Errorf("expected spin duration 3000ms, got %d", snap.SpinDurationMs)
	}
	if snap.ReviewURL != reviewURL {
		t.Errorf("expected review url %q, got %q", reviewURL, snap.ReviewURL)
	}
}

func TestRouletteService_Spin(t *testing.T) {
	tests := []struct {
		name     string
		draw     float64
		prizeID  int
		rotation float64
	}{
		{"common prize", 0.5, 1, 2100},
		{"middle prize", 0.9, 2, 1980},
		{"rare prize", 0.99, 3, 1860},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.draw)

			snap, applied := f.svc.Spin(context.Background())
			if !applied {
				t.Fatal("expected spin from IDLE to be applied")
			}
			if snap.State != models.StateSpinning {
				t.Errorf("expected SPINNING, got %s", snap.State)
			}
			if snap.Prize == nil || snap.Prize.ID != tt.prizeID {
				t.Errorf("expected prize %d, got %+v", tt.prizeID, snap.Prize)
			}
			if snap.Rotation != tt.rotation {
				t.Errorf("expected rotation %v, got %v", tt.rotation, snap.Rotation)
			}

			timers := f.sched.Timers()
			if len(timers) != 1 {
				t.Fatalf("expected one scheduled completion, got %d", len(timers))
			}
			if timers[0].Delay != 3*time.Second {
				t.Errorf("expected 3s delay, got %v", timers[0].Delay)
			}
			if f.repo.Calls("SaveSession") != 0 {
				t.Error("nothing should be persisted while spinning")
			}
		})
	}
}

func TestRouletteService_SpinCompletion(t *testing.T) {
	f := newFixture(t, 0.9)
	ctx := context.Background()

	f.spinToWon(t)

	snap := f.svc.Snapshot()
	if snap.Prize == nil || snap.Prize.ID != 2 || snap.Unlocked {
		t.Errorf("unexpected snapshot after completion: %+v", snap)
	}

	rec, err := f.repo.LoadSession(ctx)
	if err != nil {
		t.Fatalf("LoadSession failed: %v", err)
	}
	if rec == nil || rec.ChosenPrize == nil || rec.ChosenPrize.ID != 2 || rec.Unlocked {
		t.Errorf("expected locked record for prize 2, got %+v", rec)
	}
	if rec.RecordedAt.UnixMilli() != 1718000000000 {
		t.Errorf("expected injected clock timestamp, got %v", rec.RecordedAt)
	}
}

func TestRouletteService_SpinGuard(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// SPINNING
	f.svc.Spin(ctx)
	before := f.svc.Snapshot()
	snap, applied := f.svc.Spin(ctx)
	if applied {
		t.Error("spin while SPINNING must be ignored")
	}
	if snap.State != before.State || snap.Rotation != before.Rotation || snap.Prize.ID != before.Prize.ID {
		t.Errorf("state changed on ignored spin: %+v -> %+v", before, snap)
	}
	if len(f.sched.Timers()) != 1 {
		t.Errorf("ignored spin must not schedule a timer, got %d", len(f.sched.Timers()))
	}

	// WON_LOCKED
	f.sched.Last().Fire()
	if _, applied := f.svc.Spin(ctx); applied {
		t.Error("spin while WON_LOCKED must be ignored")
	}

	// COUPON_ACTIVE
	f.svc.Review(ctx)
	if _, applied := f.svc.Spin(ctx); applied {
		t.Error("spin while COUPON_ACTIVE must be ignored")
	}

	if got := f.svc.Snapshot().State; got != models.StateCouponActive {
		t.Errorf("expected COUPON_ACTIVE to stand, got %s", got)
	}
	if len(f.sched.Timers()) != 1 {
		t.Errorf("expected a single spin overall, got %d timers", len(f.sched.Timers()))
	}
}

func TestRouletteService_Review(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.spinToWon(t)

	snap, applied := f.svc.Review(ctx)
	if !applied {
		t.Fatal("expected review from WON_LOCKED to be applied")
	}
	if snap.State != models.StateCouponActive || !snap.Unlocked {
		t.Errorf("expected unlocked COUPON_ACTIVE, got %+v", snap)
	}

	urls := f.nav.URLs()
	if len(urls) != 1 || urls[0] != reviewURL {
		t.Errorf("expected review URL opened once, got %v", urls)
	}

	rec, _ := f.repo.LoadSession(ctx)
	if rec == nil || !rec.Unlocked || rec.ChosenPrize.ID != 1 {
		t.Errorf("expected unlocked record, got %+v", rec)
	}
}

func TestRouletteService_ReviewIgnored(t *testing.T) {
	ctx := context.Background()

	t.Run("idle", func(t *testing.T) {
		f := newFixture(t)
		if _, applied := f.svc.Review(ctx); applied {
			t.Error("review from IDLE must be ignored")
		}
		if len(f.nav.URLs()) != 0 {
			t.Error("review from IDLE must not navigate")
		}
	})

	t.Run("spinning", func(t *testing.T) {
		f := newFixture(t)
		f.svc.Spin(ctx)
		if _, applied := f.svc.Review(ctx); applied {
			t.Error("review while SPINNING must be ignored")
		}
		if got := f.svc.Snapshot().State; got != models.StateSpinning {
			t.Errorf("expected SPINNING, got %s", got)
		}
	})

	t.Run("coupon active", func(t *testing.T) {
		f := newFixture(t)
		f.spinToWon(t)
		f.svc.Review(ctx)
		if _, applied := f.svc.Review(ctx); applied {
			t.Error("second review must be ignored")
		}
		if len(f.nav.URLs()) != 1 {
			t.Errorf("expected URL opened exactly once, got %v", f.nav.URLs())
		}
	})
}

func TestRouletteService_ResetFromEveryState(t *testing.T) {
	ctx := context.Background()

	setups := map[models.State]func(t *testing.T, f *fixture){
		models.StateIdle:     func(t *testing.T, f *fixture) {},
		models.StateSpinning: func(t *testing.T, f *fixture) { f.svc.Spin(ctx) },
		models.StateWonLocked: func(t *testing.T, f *fixture) {
			f.spinToWon(t)
		},
		models.StateCouponActive: func(t *testing.T, f *fixture) {
			f.spinToWon(t)
			f.svc.Review(ctx)
		},
	}

	for state, setup := range setups {
		t.Run(string(state), func(t *testing.T) {
			f := newFixture(t)
			setup(t, f)
			if got := f.svc.Snapshot().State; got != state {
				t.Fatalf("setup reached %s, want %s", got, state)
			}

			snap := f.svc.Reset(ctx)
			if snap.State != models.StateIdle || snap.Prize != nil || snap.Rotation != 0 || snap.Unlocked {
				t.Errorf("expected clean IDLE, got %+v", snap)
			}

			rec, err := f.repo.LoadSession(ctx)
			if err != nil || rec != nil {
				t.Errorf("expected empty storage, got %+v, %v", rec, err)
			}

			if _, applied := f.svc.Spin(ctx); !applied {
				t.Error("expected a new spin to be possible after reset")
			}
		})
	}
}

func TestRouletteService_ResetCancelsPendingSpin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.svc.Spin(ctx)
	timer := f.sched.Last()
	f.svc.Reset(ctx)

	if !timer.Stopped() {
		t.Error("expected the pending spin timer to be stopped")
	}
	if timer.Fire() {
		t.Error("stopped timer must not fire")
	}

	if got := f.svc.Snapshot().State; got != models.StateIdle {
		t.Errorf("expected IDLE, got %s", got)
	}
	if f.repo.Calls("SaveSession") != 0 {
		t.Error("cancelled spin must not persist a record")
	}
}

func TestRouletteService_StaleCompletionAfterReset(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.svc.Spin(ctx)
	stale := f.sched.Last()
	f.svc.Reset(ctx)
	f.svc.Spin(ctx)

	// The first timer's goroutine was already running when reset stopped it
	stale.ForceFire()

	if got := f.svc.Snapshot().State; got != models.StateSpinning {
		t.Errorf("stale completion must not end the new spin, got %s", got)
	}
	if f.repo.Calls("SaveSession") != 0 {
		t.Error("stale completion must not persist")
	}

	f.sched.Last().Fire()
	if got := f.svc.Snapshot().State; got != models.StateWonLocked {
		t.Errorf("expected current spin to complete, got %s", got)
	}
}

func TestRouletteService_RestoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := testutil.NewTestRepository(t)
	prizes := testutil.DefaultPrizes()

	newSvc := func() *services.RouletteService {
		return services.NewRouletteService(logger.Discard(), repo, services.RouletteOptions{
			Prizes:    prizes,
			ReviewURL: reviewURL,
			Rand:      testutil.NewFixedRand(0.99),
			Scheduler: &testutil.FakeScheduler{},
			Navigator: &testutil.FakeNavigator{},
		})
	}

	tests := []struct {
		unlocked bool
		want     models.State
	}{
		{false, models.StateWonLocked},
		{true, models.StateCouponActive},
	}

	for _, tt := range tests {
		t.Run(string(tt.want), func(t *testing.T) {
			if err := repo.SaveSession(ctx, models.SessionRecord{ChosenPrize: &prizes[2], Unlocked: tt.unlocked}); err != nil {
				t.Fatalf("SaveSession failed: %v", err)
			}

			snap := newSvc().Restore(ctx)
			if snap.State != tt.want {
				t.Errorf("expected %s, got %s", tt.want, snap.State)
			}
			if snap.Prize == nil || *snap.Prize != prizes[2] {
				t.Errorf("expected prize %+v, got %+v", prizes[2], snap.Prize)
			}
			if snap.Rotation != 1860 {
				t.Errorf("expected landing rotation 1860, got %v", snap.Rotation)
			}
			if snap.Unlocked != tt.unlocked {
				t.Errorf("expected unlocked=%v, got %v", tt.unlocked, snap.Unlocked)
			}
		})
	}
}

func TestRouletteService_RestoreUnknownPrize(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	retired := models.Prize{ID: 99, Name: "Retired", DisplayName: "Retired", Weight: 1}

	f.repo.SaveSession(ctx, models.SessionRecord{ChosenPrize: &retired})

	snap := f.svc.Restore(ctx)
	if snap.State != models.StateWonLocked || snap.Prize == nil || snap.Prize.ID != 99 {
		t.Errorf("expected stored prize to be restored, got %+v", snap)
	}
	if snap.Rotation != 0 {
		t.Errorf("expected rest rotation for a prize not on the wheel, got %v", snap.Rotation)
	}
}

func TestRouletteService_RestoreEmpty(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	snap := f.svc.Restore(ctx)
	if snap.State != models.StateIdle {
		t.Errorf("expected IDLE, got %s", snap.State)
	}

	// A record without a prize also means IDLE and is left in place
	f.repo.SetValue(ctx, repository.SessionKey, `{"chosenPrize":null,"timestamp":0,"isUnlocked":false}`)
	snap = f.svc.Restore(ctx)
	if snap.State != models.StateIdle {
		t.Errorf("expected IDLE for null prize, got %s", snap.State)
	}
	if f.repo.Calls("ClearSession") != 0 {
		t.Error("a well-formed record must not be cleared")
	}
}

func TestRouletteService_RestoreCorruptRecord(t *testing.T) {
	payloads := []string{
		"{not json",
		"[]",
		"42",
		`{"isUnlocked":true}`,
		`{"chosenPrize":{"id":1},"isUnlocked":false}`,
		`{"chosenPrize":{"id":2,"name":"2,000 KRW Discount","probability":0},"isUnlocked":true}`,
	}

	for _, payload := range payloads {
		t.Run(payload, func(t *testing.T) {
			f := newFixture(t)
			ctx := context.Background()
			f.repo.SetValue(ctx, repository.SessionKey, payload)

			snap := f.svc.Restore(ctx)
			if snap.State != models.StateIdle || snap.Prize != nil {
				t.Errorf("expected IDLE, got %+v", snap)
			}
			if _, err := f.repo.GetValue(ctx, repository.SessionKey); !errors.Is(err, repository.ErrNotFound) {
				t.Errorf("expected corrupt slot to be cleared, got %v", err)
			}
			if !strings.Contains(f.logs.String(), "corrupt") {
				t.Errorf("expected corrupt record to be logged, got %q", f.logs.String())
			}
		})
	}
}

func TestRouletteService_RestoreLoadError(t *testing.T) {
	f := newFixture(t)
	f.repo.LoadSessionError = errors.New("database is locked")

	snap := f.svc.Restore(context.Background())
	if snap.State != models.StateIdle {
		t.Errorf("expected IDLE, got %s", snap.State)
	}
	if f.repo.Calls("ClearSession") != 0 {
		t.Error("read failures must not clear the slot")
	}
	if !strings.Contains(f.logs.String(), "database is locked") {
		t.Errorf("expected load error to be logged, got %q", f.logs.String())
	}
}

func TestRouletteService_SaveFailureKeepsTransition(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.repo.SaveSessionError = errors.New("disk full")

	f.spinToWon(t)
	snap, applied := f.svc.Review(ctx)
	if !applied || snap.State != models.StateCouponActive {
		t.Errorf("expected review to stand despite save failure, got %+v", snap)
	}
	if len(f.nav.URLs()) != 1 {
		t.Errorf("expected navigation despite save failure, got %v", f.nav.URLs())
	}
	if got := strings.Count(f.logs.String(), "disk full"); got != 2 {
		t.Errorf("expected both save failures logged, got %d", got)
	}
}

func TestRouletteService_ClearFailureStillResets(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.spinToWon(t)
	f.repo.ClearSessionError = errors.New("readonly database")

	snap := f.svc.Reset(ctx)
	if snap.State != models.StateIdle {
		t.Errorf("expected IDLE, got %s", snap.State)
	}
	if !strings.Contains(f.logs.String(), "readonly database") {
		t.Error("expected clear failure to be logged")
	}
}

func TestRouletteService_Broadcasts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.svc.Spin(ctx)
	f.sched.Last().Fire()
	f.svc.Review(ctx)
	f.svc.Review(ctx) // ignored, no broadcast
	f.svc.Reset(ctx)

	want := []models.State{models.StateSpinning, models.StateWonLocked, models.StateCouponActive, models.StateIdle}
	got := f.broadcast.States()
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("broadcast %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

// gatedBroadcaster holds the first delivery until release is closed
type gatedBroadcaster struct {
	entered chan struct{}
	release chan struct{}

	mu     sync.Mutex
	calls  int
	states []models.State
}

func newGatedBroadcaster() *gatedBroadcaster {
	return &gatedBroadcaster{entered: make(chan struct{}), release: make(chan struct{})}
}

func (b *gatedBroadcaster) BroadcastState(snap models.Snapshot) {
	b.mu.Lock()
	b.calls++
	first := b.calls == 1
	b.mu.Unlock()

	if first {
		close(b.entered)
		<-b.release
	}

	b.mu.Lock()
	b.states = append(b.states, snap.State)
	b.mu.Unlock()
}

func (b *gatedBroadcaster) States() []models.State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]models.State(nil), b.states...)
}

func TestRouletteService_BroadcastOrderFollowsTransitions(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(f *fixture, t *testing.T)
		action func(f *fixture)
		first  models.State
	}{
		{
			name:   "spin then reset",
			setup:  func(f *fixture, t *testing.T) {},
			action: func(f *fixture) { f.svc.Spin(context.Background()) },
			first:  models.StateSpinning,
		},
		{
			name:   "review then reset",
			setup:  func(f *fixture, t *testing.T) { f.spinToWon(t) },
			action: func(f *fixture) { f.svc.Review(context.Background()) },
			first:  models.StateCouponActive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f, t)

			gate := newGatedBroadcaster()
			f.svc.SetBroadcaster(gate)

			actionDone := make(chan struct{})
			go func() {
				tt.action(f)
				close(actionDone)
			}()

			select {
			case <-gate.entered:
			case <-time.After(2 * time.Second):
				t.Fatal("first broadcast never started")
			}

			resetDone := make(chan struct{})
			go func() {
				f.svc.Reset(context.Background())
				close(resetDone)
			}()

			// Reads stay available while a delivery is pending
			deadline := time.Now().Add(2 * time.Second)
			for f.svc.Snapshot().State != models.StateIdle {
				if time.Now().After(deadline) {
					t.Fatal("reset never applied")
				}
				time.Sleep(time.Millisecond)
			}

			close(gate.release)
			for _, done := range []chan struct{}{actionDone, resetDone} {
				select {
				case <-done:
				case <-time.After(2 * time.Second):
					t.Fatal("transition did not return")
				}
			}

			want := []models.State{tt.first, models.StateIdle}
			got := gate.States()
			if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
				t.Fatalf("expected deliveries %v, got %v", want, got)
			}
			if server := f.svc.Snapshot().State; got[len(got)-1] != server {
				t.Errorf("clients last saw %s but server is %s", got[len(got)-1], server)
			}
		})
	}
}

func TestRouletteService_EndToEnd(t *testing.T) {
	f := newFixture(t, 0.97)
	ctx := context.Background()

	f.svc.Spin(ctx)
	f.sched.FireAll()
	f.svc.Review(ctx)

	snap := f.svc.Snapshot()
	if snap.State != models.StateCouponActive || snap.Prize.ID != 3 {
		t.Errorf("expected COUPON_ACTIVE with prize 3, got %+v", snap)
	}
	if urls := f.nav.URLs(); len(urls) != 1 || urls[0] != reviewURL {
		t.Errorf("expected review URL opened exactly once, got %v", urls)
	}

	// Page reload
	restored := f.svc.Restore(ctx)
	if restored.State != models.StateCouponActive || restored.Prize.ID != 3 {
		t.Errorf("expected COUPON_ACTIVE to survive reload, got %+v", restored)
	}
	if len(f.nav.URLs()) != 1 {
		t.Error("restoring must not navigate again")
	}

	f.svc.Reset(ctx)
	if f.svc.Snapshot().State != models.StateIdle {
		t.Error("expected IDLE after reset")
	}
}

func TestRouletteService_NoNavigator(t *testing.T) {
	svc := services.NewRouletteService(logger.Discard(), testutil.NewTestRepository(t), services.RouletteOptions{
		Prizes:    testutil.DefaultPrizes(),
		ReviewURL: reviewURL,
		Rand:      testutil.NewFixedRand(0.1),
		Scheduler: &testutil.FakeScheduler{},
	})
	ctx := context.Background()

	svc.Restore(ctx)
	svc.Spin(ctx)
	svc.Close()

	if got := svc.Snapshot().State; got != models.StateSpinning {
		t.Errorf("Close must not change state, got %s", got)
	}
}

func TestRouletteService_Defaults(t *testing.T) {
	svc := services.NewRouletteService(logger.Discard(), testutil.NewTestRepository(t), services.RouletteOptions{
		Prizes: testutil.DefaultPrizes(),
	})
	defer svc.Close()

	if got := svc.Snapshot().SpinDurationMs; got != services.DefaultSpinDuration.Milliseconds() {
		t.Errorf("expected default spin duration, got %d", got)
	}

	// Real scheduler and random source
	if _, applied := svc.Spin(context.Background()); !applied {
		t.Error("expected spin with default options")
	}
}

func TestRouletteService_RealSchedulerCompletes(t *testing.T) {
	svc := services.NewRouletteService(logger.Discard(), testutil.NewTestRepository(t), services.RouletteOptions{
		Prizes:       testutil.DefaultPrizes(),
		SpinDuration: 10 * time.Millisecond,
	})

	svc.Spin(context.Background())

	deadline := time.Now().Add(2 * time.Second)
	for svc.Snapshot().State != models.StateWonLocked {
		if time.Now().After(deadline) {
			t.Fatal("spin did not complete")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestRouletteService_PrizeTable(t *testing.T) {
	f := newFixture(t)

	prizes := f.svc.Prizes()
	prizes[0].Name = "mutated"
	if f.svc.Prizes()[0].Name == "mutated" {
		t.Error("Prizes must return a copy")
	}

	chances := f.svc.Chances()
	if len(chances) != 3 || chances[0].Chance != 80 || chances[2].Chance != 5 {
		t.Errorf("unexpected chances: %+v", chances)
	}
	if f.svc.ReviewURL() != reviewURL {
		t.Errorf("unexpected review url %q", f.svc.ReviewURL())
	}
}

func TestRouletteService_ReviewQRImage(t *testing.T) {
	f := newFixture(t)

	png, err := f.svc.ReviewQRImage(0)
	if err != nil {
		t.Fatalf("ReviewQRImage failed: %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Error("expected PNG data")
	}

	for _, size := range []int{services.MinQRSize - 1, services.MaxQRSize + 1, -5} {
		if _, err := f.svc.ReviewQRImage(size); err != services.ErrInvalidQRSize {
			t.Errorf("size %d: expected ErrInvalidQRSize, got %v", size, err)
		}
	}
}
