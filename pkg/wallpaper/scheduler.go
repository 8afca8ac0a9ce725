package wallpaper

import (
	"sync"
	"time"

	"github.com/dixieflatline76/wallhavener/util"
	"github.com/dixieflatline76/wallhavener/util/log"
)

// Scheduler fires a callback on a fixed, resettable period.
type Scheduler struct {
	fire  func()
	now   func() time.Time
	fires *util.SafeCounter

	mu      sync.Mutex
	running bool
	period  time.Duration
	next    time.Time
	resetCh chan time.Duration
	stopCh  chan struct{}
}

// NewScheduler creates a stopped scheduler that calls fire on every tick. fire runs on its own
// goroutine so a slow run never delays the next tick or a Reset.
func NewScheduler(fire func()) *Scheduler {
	return &Scheduler{
		fire:  fire,
		now:   time.Now,
		fires: util.NewSafeInt(),
	}
}

// Reset (re)starts the timer so the next fire happens d from now. Non-positive periods are
// raised to one minute.
func (s *Scheduler) Reset(d time.Duration) {
	if d <= 0 {
		d = time.Minute
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.period = d
	s.next = s.now().Add(d)

	if !s.running {
		s.running = true
		s.resetCh = make(chan time.Duration, 1)
		s.stopCh = make(chan struct{})
		go s.loop(d, s.resetCh, s.stopCh)
		log.Printf("Scheduler started, changing wallpaper every %v", d)
		return
	}

	// drop a reset the loop has not picked up yet, the newest one wins
	select {
	case <-s.resetCh:
	default:
	}
	s.resetCh <- d
	log.Printf("Scheduler reset, changing wallpaper every %v", d)
}

// Stop halts the timer. A later Reset starts it again.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	close(s.stopCh)
	s.running = false
	s.next = time.Time{}
	log.Print("Scheduler stopped")
}

// NextFire returns when the scheduler fires next, or the zero time when stopped.
func (s *Scheduler) NextFire() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next
}

// Period returns the current period.
func (s *Scheduler) Period() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.period
}

// Fires returns how many times the scheduler has fired.
func (s *Scheduler) Fires() int {
	return s.fires.Value()
}

func (s *Scheduler) loop(d time.Duration, resetCh <-chan time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(d)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.mu.Lock()
			select {
			case <-stopCh:
				s.mu.Unlock()
				return
			default:
			}
			s.next = s.now().Add(s.period)
			s.mu.Unlock()

			n := s.fires.Increment()
			log.Debugf("Scheduler tick %d", n)
			go s.fire()
		case d := <-resetCh:
			ticker.Reset(d)
		case <-stopCh:
			return
		}
	}
}
