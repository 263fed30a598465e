package engine

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"
)

// Clock supplies the current time in unix seconds. The engine reads it on
// every operation and never caches or advances it.
type Clock interface {
	Now() int64
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() int64

func (f ClockFunc) Now() int64 { return f() }

// SystemClock reads the host wall clock.
func SystemClock() Clock {
	return ClockFunc(func() int64 { return time.Now().Unix() })
}

// Oracle supplies the winning number. Draw returns an unbiased value in
// [0, upper], inclusive on both ends.
type Oracle interface {
	Draw(upper int64) (int64, error)
}

type mathOracle struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// MathOracle is the default oracle, seeded from the wall clock. Hosts that
// need verifiable draws plug their own Oracle in via Options.
func MathOracle() Oracle {
	return &mathOracle{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (o *mathOracle) Draw(upper int64) (int64, error) {
	// upper+1 must not overflow; Int63n panics on a non-positive argument.
	if upper < 0 || upper == math.MaxInt64 {
		return 0, fmt.Errorf("draw bound %d out of range", upper)
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.rng.Int63n(upper + 1), nil
}

// Event types emitted by the engine, one per state transition.
const (
	EventCreated       = "lottery_created"
	EventTicketBought  = "ticket_bought"
	EventResolved      = "lottery_resolved"
	EventPrizeClaimed  = "prize_claimed"
	EventWithdrawal    = "proceeds_withdrawn"
	EventCancelled     = "lottery_cancelled"
	EventRefund        = "ticket_refunded"
	EventPrizeReturned = "prize_returned"
	EventTicketBurned  = "ticket_burned"
)

// Event is the notification pushed to the sink after a transition commits.
type Event struct {
	Type      string `json:"type"`
	LotteryID string `json:"lottery_id"`
	TicketID  string `json:"ticket_id,omitempty"`
	Number    *int64 `json:"number,omitempty"`
	Amount    int64  `json:"amount,omitempty"`
	SoldCount int    `json:"sold_count,omitempty"`
	At        int64  `json:"at"`
}

// EventSink consumes engine events. Publish must not block; the websocket
// hub drops messages to slow clients rather than stalling the engine.
type EventSink interface {
	Publish(Event)
}

// SinkFunc adapts a function to the EventSink interface.
type SinkFunc func(Event)

func (f SinkFunc) Publish(ev Event) { f(ev) }
