package circuit_breaker

import (
	"errors"
	"sync"
	"time"
)

type Status uint8

const (
	Closed   Status = 1
	Open     Status = 2
	HalfOpen Status = 3
)

func (s Status) String() string {
	switch s {
	case Closed:
		return "closed"
	case Open:
		return "open"
	case HalfOpen:
		return "half-open"
	}
	return "unknown"
}

var ErrOpenCB = errors.New("circuit breaker is open")

type CircuitBreaker interface {
	Call(service func() error) error
	State() Status
	Reset()
}

type Config struct {
	// RecordLength is the size of the sliding window of call outcomes.
	RecordLength int `yaml:"recordLength" envconfig:"CB_RECORD_LENGTH" default:"20"`
	// Timeout is how long the breaker stays open before probing.
	Timeout time.Duration `yaml:"timeout" envconfig:"CB_TIMEOUT" default:"5s"`
	// Percentile of failed calls in the window that opens the breaker.
	Percentile float64 `yaml:"percentile" envconfig:"CB_PERCENTILE" default:"0.5"`
	// RecoveryRequests successful half-open calls needed to close again.
	RecoveryRequests int `yaml:"recoveryRequests" envconfig:"CB_RECOVERY_REQUESTS" default:"3"`
}

type circuitBreaker struct {
	mu  sync.Mutex
	now func() time.Time

	state    Status
	openedAt time.Time

	timeout          time.Duration
	percentile       float64
	recoveryRequests int

	// window is a ring buffer of outcomes, true means failed.
	window       []bool
	pos          int
	successCount int
	// trials admitted since entering half-open
	trials int
}

func New(cfg Config) CircuitBreaker {
	return newWithClock(cfg, time.Now)
}

func newWithClock(cfg Config, now func() time.Time) *circuitBreaker {
	if cfg.RecordLength <= 0 {
		cfg.RecordLength = 1
	}
	if cfg.RecoveryRequests <= 0 {
		cfg.RecoveryRequests = 1
	}
	return &circuitBreaker{
		now:              now,
		state:            Closed,
		timeout:          cfg.Timeout,
		percentile:       cfg.Percentile,
		recoveryRequests: cfg.RecoveryRequests,
		window:           make([]bool, cfg.RecordLength),
	}
}

func (cb *circuitBreaker) Call(service func() error) error {
	if !cb.allow() {
		return ErrOpenCB
	}

	err := service()

	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.record(err != nil)
	return err
}

func (cb *circuitBreaker) allow() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	switch cb.state {
	case Closed:
		return true
	case HalfOpen:
		if cb.trials >= cb.recoveryRequests {
			return false
		}
		cb.trials++
		return true
	}
	if cb.now().Sub(cb.openedAt) <= cb.timeout {
		return false
	}
	cb.state = HalfOpen
	cb.successCount = 0
	cb.trials = 1
	return true
}

func (cb *circuitBreaker) record(failed bool) {
	cb.window[cb.pos] = failed
	cb.pos = (cb.pos + 1) % len(cb.window)

	switch cb.state {
	case HalfOpen:
		if failed {
			cb.trip()
			return
		}
		cb.successCount++
		if cb.successCount >= cb.recoveryRequests {
			cb.reset()
		}
	case Closed:
		fails := 0
		for _, f := range cb.window {
			if f {
				fails++
			}
		}
		if float64(fails)/float64(len(cb.window)) >= cb.percentile {
			cb.trip()
		}
	}
}

func (cb *circuitBreaker) trip() {
	cb.state = Open
	cb.successCount = 0
	cb.trials = 0
	cb.openedAt = cb.now()
}

func (cb *circuitBreaker) State() Status {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

func (cb *circuitBreaker) Reset() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.reset()
}

func (cb *circuitBreaker) reset() {
	for i := range cb.window {
		cb.window[i] = false
	}
	cb.successCount = 0
	cb.trials = 0
	cb.pos = 0
	cb.state = Closed
}
