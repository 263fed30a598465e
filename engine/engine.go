package engine

import (
	"fmt"
	"sync"

	"github.com/bellapacxx/lottery-backend/models"
	"github.com/bellapacxx/lottery-backend/utils/logger"
	"github.com/bellapacxx/lottery-backend/wallet"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultGracePeriodSec is how long after the sale window closes before
// the unwind path (refund, return prize) arms: 7 days.
const DefaultGracePeriodSec int64 = 7 * 24 * 3600

// Options configures an Engine. Zero values fall back to the system clock,
// the math/rand oracle, a no-op sink and the default grace period.
type Options struct {
	Clock          Clock
	Oracle         Oracle
	Sink           EventSink
	ReturnChange   bool // split exactly the ticket price instead of consuming the full payment
	GracePeriodSec int64
}

// Engine owns every lottery record and all tokens minted against them.
// Tokens are unforgeable by construction: an ID that is not in the engine's
// registry does not exist, no matter what struct a caller fabricates.
//
// Each operation runs atomically under the record's mutex; a failed guard
// leaves no partial state behind. The db, when present, receives a snapshot
// after each committed transition.
type Engine struct {
	db           *gorm.DB
	clock        Clock
	oracle       Oracle
	sink         EventSink
	returnChange bool
	grace        int64

	mu        sync.RWMutex
	lotteries map[string]*models.Lottery
	tickets   map[string]*models.Ticket
	caps      map[string]*models.Capability
}

func New(db *gorm.DB, opts Options) *Engine {
	e := &Engine{
		db:           db,
		clock:        opts.Clock,
		oracle:       opts.Oracle,
		sink:         opts.Sink,
		returnChange: opts.ReturnChange,
		grace:        opts.GracePeriodSec,
		lotteries:    make(map[string]*models.Lottery),
		tickets:      make(map[string]*models.Ticket),
		caps:         make(map[string]*models.Capability),
	}
	if e.clock == nil {
		e.clock = SystemClock()
	}
	if e.oracle == nil {
		e.oracle = MathOracle()
	}
	if e.sink == nil {
		e.sink = SinkFunc(func(Event) {})
	}
	if e.grace <= 0 {
		e.grace = DefaultGracePeriodSec
	}
	return e
}

// Load restores records and tokens from the database after a restart.
func (e *Engine) Load() error {
	if e.db == nil {
		return nil
	}
	var lotteries []*models.Lottery
	if err := e.db.Find(&lotteries).Error; err != nil {
		return fmt.Errorf("load lotteries: %v", err)
	}
	var tickets []*models.Ticket
	if err := e.db.Find(&tickets).Error; err != nil {
		return fmt.Errorf("load tickets: %v", err)
	}
	var caps []*models.Capability
	if err := e.db.Find(&caps).Error; err != nil {
		return fmt.Errorf("load capabilities: %v", err)
	}
	var prizes []*models.Prize
	if err := e.db.Find(&prizes).Error; err != nil {
		return fmt.Errorf("load prizes: %v", err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	for _, l := range lotteries {
		if err := l.RestoreRuntime(); err != nil {
			return fmt.Errorf("restore lottery %s: %v", l.ID, err)
		}
		e.lotteries[l.ID] = l
	}
	for _, p := range prizes {
		// Unowned prizes are still escrowed by their lottery.
		if p.OwnerID == nil {
			if l, ok := e.lotteries[p.LotteryID]; ok {
				l.Prize = p
			}
		}
	}
	for _, t := range tickets {
		e.tickets[t.ID] = t
	}
	for _, c := range caps {
		e.caps[c.ID] = c
	}
	logger.Infof("engine loaded %d lotteries, %d tickets, %d capabilities", len(lotteries), len(tickets), len(caps))
	return nil
}

// CreateParams carries the fixed configuration of a new lottery.
type CreateParams struct {
	MinParticipants  int
	TicketPrice      int64
	NumberRange      int64
	StartTime        int64
	EndTime          int64
	PrizeDescription string
	CreatorID        int64 // receives the capability
}

// Create opens a new lottery escrowing a freshly minted prize and hands the
// one-and-only capability to the creator.
func (e *Engine) Create(p CreateParams) (*models.Lottery, *models.Capability, error) {
	now := e.clock.Now()
	switch {
	case p.NumberRange <= 100:
		return nil, nil, fmt.Errorf("number range %d must exceed 100: %w", p.NumberRange, ErrInvalidConfiguration)
	case p.MinParticipants < 1:
		return nil, nil, fmt.Errorf("min participants %d must be positive: %w", p.MinParticipants, ErrInvalidConfiguration)
	case p.TicketPrice <= 0:
		return nil, nil, fmt.Errorf("ticket price %d must be positive: %w", p.TicketPrice, ErrInvalidConfiguration)
	case p.StartTime >= p.EndTime:
		return nil, nil, fmt.Errorf("start %d must precede end %d: %w", p.StartTime, p.EndTime, ErrInvalidConfiguration)
	case p.StartTime < now:
		return nil, nil, fmt.Errorf("start %d is in the past (now %d): %w", p.StartTime, now, ErrInvalidConfiguration)
	}

	l := &models.Lottery{
		ID:              uuid.New().String(),
		MinParticipants: p.MinParticipants,
		TicketPrice:     p.TicketPrice,
		NumberRange:     p.NumberRange,
		StartTime:       p.StartTime,
		EndTime:         p.EndTime,
		Status:          models.StatusOpen,
		Proceeds:        wallet.Zero(),
		Sold:            make(map[int64]bool),
	}
	l.Prize = &models.Prize{
		ID:          uuid.New().String(),
		LotteryID:   l.ID,
		Description: p.PrizeDescription,
	}
	capability := &models.Capability{
		ID:        uuid.New().String(),
		LotteryID: l.ID,
		OwnerID:   p.CreatorID,
	}
	l.SyncSnapshot()

	e.mu.Lock()
	e.lotteries[l.ID] = l
	e.caps[capability.ID] = capability
	e.mu.Unlock()

	e.insertLottery(l)
	e.insert(l.Prize, l.Prize.ID)
	e.insert(capability, capability.ID)

	logger.Infof("lottery %s created: price=%d range=%d window=[%d,%d]", l.ID, l.TicketPrice, l.NumberRange, l.StartTime, l.EndTime)
	e.sink.Publish(Event{Type: EventCreated, LotteryID: l.ID, Amount: l.TicketPrice, At: now})
	return l, capability, nil
}

// Buy purchases a number for ownerID. The payment balance is drained into
// proceeds; with ReturnChange set, only the ticket price is taken and the
// remainder stays with the buyer.
func (e *Engine) Buy(lotteryID string, number int64, payment *wallet.Balance, ownerID int64) (*models.Ticket, error) {
	l, err := e.Lottery(lotteryID)
	if err != nil {
		return nil, err
	}

	l.Mu.Lock()
	if l.Cancelled {
		l.Mu.Unlock()
		return nil, fmt.Errorf("lottery %s: %w", l.ID, ErrAlreadyCancelled)
	}
	if l.Resolved() {
		l.Mu.Unlock()
		return nil, fmt.Errorf("lottery %s: %w", l.ID, ErrAlreadyResolved)
	}
	if payment == nil || payment.Value() < l.TicketPrice {
		l.Mu.Unlock()
		return nil, fmt.Errorf("ticket costs %d: %w", l.TicketPrice, ErrInsufficientPayment)
	}
	if number < 0 || number > l.NumberRange {
		l.Mu.Unlock()
		return nil, fmt.Errorf("number %d outside [0, %d]: %w", number, l.NumberRange, ErrNumberUnavailable)
	}
	if l.Sold[number] {
		l.Mu.Unlock()
		return nil, fmt.Errorf("number %d already sold: %w", number, ErrNumberUnavailable)
	}

	if e.returnChange {
		paid, err := payment.Split(l.TicketPrice)
		if err != nil {
			l.Mu.Unlock()
			return nil, fmt.Errorf("taking ticket price: %w", ErrInsufficientPayment)
		}
		l.Proceeds.Join(paid)
	} else {
		l.Proceeds.Join(payment)
	}
	l.Sold[number] = true

	t := &models.Ticket{
		ID:        uuid.New().String(),
		LotteryID: l.ID,
		Number:    number,
		OwnerID:   ownerID,
	}
	l.SyncSnapshot()
	sold := len(l.Sold)
	l.Mu.Unlock()

	e.mu.Lock()
	e.tickets[t.ID] = t
	e.mu.Unlock()

	e.saveLottery(l)
	e.insert(t, t.ID)

	logger.Infof("lottery %s: number %d sold to %d (total %d)", l.ID, number, ownerID, sold)
	e.sink.Publish(Event{Type: EventTicketBought, LotteryID: l.ID, TicketID: t.ID, Number: &t.Number, Amount: l.TicketPrice, SoldCount: sold, At: e.clock.Now()})
	return t, nil
}

// Run draws the winning number once the sale window has fully elapsed.
// A resolved or cancelled lottery rejects further runs.
func (e *Engine) Run(lotteryID string) (int64, error) {
	l, err := e.Lottery(lotteryID)
	if err != nil {
		return 0, err
	}
	now := e.clock.Now()

	l.Mu.Lock()
	if l.Cancelled {
		l.Mu.Unlock()
		return 0, fmt.Errorf("lottery %s: %w", l.ID, ErrAlreadyCancelled)
	}
	if l.Resolved() {
		l.Mu.Unlock()
		return 0, fmt.Errorf("lottery %s: %w", l.ID, ErrAlreadyResolved)
	}
	if !l.SaleClosed(now) {
		l.Mu.Unlock()
		return 0, fmt.Errorf("sale open until %d (now %d): %w", l.EndTime, now, ErrNotYetEligible)
	}

	winning, err := e.oracle.Draw(l.NumberRange)
	if err != nil {
		l.Mu.Unlock()
		return 0, fmt.Errorf("oracle draw: %v", err)
	}
	if winning < 0 || winning > l.NumberRange {
		l.Mu.Unlock()
		return 0, fmt.Errorf("oracle returned %d outside [0, %d]", winning, l.NumberRange)
	}
	l.WinningNumber = &winning
	l.Status = models.StatusResolved
	sold := len(l.Sold)
	l.SyncSnapshot()
	l.Mu.Unlock()

	e.saveLottery(l)

	if sold < l.MinParticipants {
		logger.Warnf("lottery %s resolved with %d tickets, below min_participants %d", l.ID, sold, l.MinParticipants)
	}
	logger.Infof("lottery %s resolved: winning number %d", l.ID, winning)
	e.sink.Publish(Event{Type: EventResolved, LotteryID: l.ID, Number: &winning, SoldCount: sold, At: now})
	return winning, nil
}

// ClaimPrize transfers the escrowed prize to recipientID if the ticket
// holds the winning number. The ticket survives; BurnTicket reclaims it.
func (e *Engine) ClaimPrize(lotteryID, ticketID string, recipientID int64) (*models.Prize, error) {
	l, err := e.Lottery(lotteryID)
	if err != nil {
		return nil, err
	}
	t, err := e.Ticket(ticketID)
	if err != nil {
		return nil, err
	}
	if t.LotteryID != l.ID {
		return nil, fmt.Errorf("ticket %s belongs to lottery %s: %w", t.ID, t.LotteryID, ErrAuthorizationMismatch)
	}

	l.Mu.Lock()
	if !l.Resolved() {
		l.Mu.Unlock()
		return nil, fmt.Errorf("lottery %s not resolved: %w", l.ID, ErrNothingToClaim)
	}
	if l.Prize == nil {
		l.Mu.Unlock()
		return nil, fmt.Errorf("prize already gone: %w", ErrNothingToClaim)
	}
	if !t.IsWinner(*l.WinningNumber) {
		l.Mu.Unlock()
		return nil, fmt.Errorf("ticket %d is not the winning number %d: %w", t.Number, *l.WinningNumber, ErrNothingToClaim)
	}

	prize := l.Prize
	prize.OwnerID = &recipientID
	l.Prize = nil
	l.Status = models.StatusPrizeClaimed
	l.SyncSnapshot()
	l.Mu.Unlock()

	e.saveLottery(l)
	e.savePrize(prize)

	logger.Infof("lottery %s: prize %s claimed by %d with ticket %s", l.ID, prize.ID, recipientID, t.ID)
	e.sink.Publish(Event{Type: EventPrizeClaimed, LotteryID: l.ID, TicketID: t.ID, Number: &t.Number, At: e.clock.Now()})
	return prize, nil
}

// Withdraw empties the proceeds to the capability holder. Only allowed
// after resolution; the unwind path uses Refund/ReturnPrize instead.
func (e *Engine) Withdraw(lotteryID, capabilityID string) (*wallet.Balance, error) {
	l, err := e.Lottery(lotteryID)
	if err != nil {
		return nil, err
	}
	c, err := e.Capability(capabilityID)
	if err != nil {
		return nil, err
	}
	if c.LotteryID != l.ID {
		return nil, fmt.Errorf("capability %s belongs to lottery %s: %w", c.ID, c.LotteryID, ErrAuthorizationMismatch)
	}

	l.Mu.Lock()
	if l.Cancelled {
		l.Mu.Unlock()
		return nil, fmt.Errorf("lottery %s: %w", l.ID, ErrAlreadyCancelled)
	}
	if !l.Resolved() {
		l.Mu.Unlock()
		return nil, fmt.Errorf("lottery %s not resolved: %w", l.ID, ErrNotYetEligible)
	}

	amount := l.Proceeds.Value()
	out, err := l.Proceeds.Split(amount)
	if err != nil {
		l.Mu.Unlock()
		return nil, fmt.Errorf("splitting proceeds: %v", err)
	}
	l.SyncSnapshot()
	l.Mu.Unlock()

	e.saveLottery(l)

	logger.Infof("lottery %s: %d units withdrawn by capability %s", l.ID, amount, c.ID)
	e.sink.Publish(Event{Type: EventWithdrawal, LotteryID: l.ID, Amount: amount, At: e.clock.Now()})
	return out, nil
}

// Refund returns the ticket price to the holder of a ticket in a lottery
// that was never resolved. The first unwind call after the grace period
// latches the cancelled flag, so any ticket holder can trigger the unwind
// without the capability holder cooperating. The ticket is destroyed.
func (e *Engine) Refund(lotteryID, ticketID string) (*wallet.Balance, error) {
	l, err := e.Lottery(lotteryID)
	if err != nil {
		return nil, err
	}
	t, err := e.Ticket(ticketID)
	if err != nil {
		return nil, err
	}
	if t.LotteryID != l.ID {
		return nil, fmt.Errorf("ticket %s belongs to lottery %s: %w", t.ID, t.LotteryID, ErrAuthorizationMismatch)
	}
	now := e.clock.Now()

	l.Mu.Lock()
	if l.Resolved() {
		l.Mu.Unlock()
		return nil, fmt.Errorf("lottery %s: %w", l.ID, ErrAlreadyResolved)
	}
	if !l.GraceElapsed(now, e.grace) {
		l.Mu.Unlock()
		return nil, fmt.Errorf("grace period runs until %d (now %d): %w", l.EndTime+e.grace, now, ErrNotYetEligible)
	}
	if !l.Sold[t.Number] {
		l.Mu.Unlock()
		return nil, fmt.Errorf("number %d not in sold set: %w", t.Number, ErrRecordNotFound)
	}

	// The split is the only step that can fail; it runs before the latch so
	// a failed refund leaves no mutation behind.
	out, err := l.Proceeds.Split(l.TicketPrice)
	if err != nil {
		l.Mu.Unlock()
		return nil, fmt.Errorf("splitting refund: %v", err)
	}
	latched := e.latchCancelled(l)
	delete(l.Sold, t.Number)
	e.maybeUnwound(l)
	l.SyncSnapshot()
	l.Mu.Unlock()

	e.mu.Lock()
	delete(e.tickets, t.ID)
	e.mu.Unlock()

	e.saveLottery(l)
	e.deleteTicket(t)

	if latched {
		logger.Infof("lottery %s cancelled by refund of ticket %s", l.ID, t.ID)
		e.sink.Publish(Event{Type: EventCancelled, LotteryID: l.ID, At: now})
	}
	logger.Infof("lottery %s: ticket %s (number %d) refunded %d units", l.ID, t.ID, t.Number, l.TicketPrice)
	e.sink.Publish(Event{Type: EventRefund, LotteryID: l.ID, TicketID: t.ID, Number: &t.Number, Amount: l.TicketPrice, At: now})
	return out, nil
}

// ReturnPrize hands the unclaimed prize back on the unwind path and
// permanently consumes the capability, disabling any later withdrawal.
func (e *Engine) ReturnPrize(lotteryID, capabilityID string, recipientID int64) (*models.Prize, error) {
	l, err := e.Lottery(lotteryID)
	if err != nil {
		return nil, err
	}
	c, err := e.Capability(capabilityID)
	if err != nil {
		return nil, err
	}
	if c.LotteryID != l.ID {
		return nil, fmt.Errorf("capability %s belongs to lottery %s: %w", c.ID, c.LotteryID, ErrAuthorizationMismatch)
	}
	now := e.clock.Now()

	l.Mu.Lock()
	if l.Resolved() {
		l.Mu.Unlock()
		return nil, fmt.Errorf("lottery %s: %w", l.ID, ErrAlreadyResolved)
	}
	if !l.GraceElapsed(now, e.grace) {
		l.Mu.Unlock()
		return nil, fmt.Errorf("grace period runs until %d (now %d): %w", l.EndTime+e.grace, now, ErrNotYetEligible)
	}
	if l.Prize == nil {
		l.Mu.Unlock()
		return nil, fmt.Errorf("prize already gone: %w", ErrNothingToClaim)
	}

	latched := e.latchCancelled(l)
	prize := l.Prize
	prize.OwnerID = &recipientID
	l.Prize = nil
	e.maybeUnwound(l)
	l.SyncSnapshot()
	l.Mu.Unlock()

	e.mu.Lock()
	delete(e.caps, c.ID)
	e.mu.Unlock()

	e.saveLottery(l)
	e.savePrize(prize)
	e.deleteCapability(c)

	if latched {
		logger.Infof("lottery %s cancelled by prize return", l.ID)
		e.sink.Publish(Event{Type: EventCancelled, LotteryID: l.ID, At: now})
	}
	logger.Infof("lottery %s: prize %s returned to %d, capability %s consumed", l.ID, prize.ID, recipientID, c.ID)
	e.sink.Publish(Event{Type: EventPrizeReturned, LotteryID: l.ID, At: now})
	return prize, nil
}

// BurnTicket destroys a ticket and frees its number, reclaiming storage
// after a claim or a cancellation.
func (e *Engine) BurnTicket(ticketID string) error {
	t, err := e.Ticket(ticketID)
	if err != nil {
		return err
	}
	l, err := e.Lottery(t.LotteryID)
	if err != nil {
		return err
	}

	l.Mu.Lock()
	if !l.Sold[t.Number] {
		l.Mu.Unlock()
		return fmt.Errorf("number %d not in sold set: %w", t.Number, ErrRecordNotFound)
	}
	delete(l.Sold, t.Number)
	e.maybeUnwound(l)
	l.SyncSnapshot()
	l.Mu.Unlock()

	e.mu.Lock()
	delete(e.tickets, t.ID)
	e.mu.Unlock()

	e.saveLottery(l)
	e.deleteTicket(t)

	logger.Infof("lottery %s: ticket %s (number %d) burned", l.ID, t.ID, t.Number)
	e.sink.Publish(Event{Type: EventTicketBurned, LotteryID: l.ID, TicketID: t.ID, Number: &t.Number, At: e.clock.Now()})
	return nil
}

// RestoreProceeds returns an undelivered payout to the lottery's escrow so
// the units are not lost when crediting the recipient fails. The capability
// is untouched, so the holder can withdraw again later.
func (e *Engine) RestoreProceeds(lotteryID string, b *wallet.Balance) error {
	l, err := e.Lottery(lotteryID)
	if err != nil {
		return err
	}
	amount := b.Value()

	l.Mu.Lock()
	l.Proceeds.Join(b)
	l.SyncSnapshot()
	l.Mu.Unlock()

	e.saveLottery(l)

	logger.Warnf("lottery %s: %d undelivered units restored to escrow", l.ID, amount)
	return nil
}

// ReturnsChange reports whether Buy takes only the ticket price and leaves
// the rest of the payment with the buyer.
func (e *Engine) ReturnsChange() bool {
	return e.returnChange
}

// -------------------- Lookups --------------------

// Lottery returns the live record for an ID.
func (e *Engine) Lottery(id string) (*models.Lottery, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	l, ok := e.lotteries[id]
	if !ok {
		return nil, fmt.Errorf("lottery %s: %w", id, ErrRecordNotFound)
	}
	return l, nil
}

// Lotteries returns all live records.
func (e *Engine) Lotteries() []*models.Lottery {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]*models.Lottery, 0, len(e.lotteries))
	for _, l := range e.lotteries {
		out = append(out, l)
	}
	return out
}

// LotteryView returns a point-in-time copy of a record, safe to serialize
// while the engine keeps mutating the live one.
func (e *Engine) LotteryView(id string) (*models.Lottery, error) {
	l, err := e.Lottery(id)
	if err != nil {
		return nil, err
	}
	l.Mu.Lock()
	defer l.Mu.Unlock()
	return l.Snapshot(), nil
}

// LotteryViews returns point-in-time copies of every live record.
func (e *Engine) LotteryViews() []*models.Lottery {
	live := e.Lotteries()
	out := make([]*models.Lottery, 0, len(live))
	for _, l := range live {
		l.Mu.Lock()
		out = append(out, l.Snapshot())
		l.Mu.Unlock()
	}
	return out
}

// Ticket resolves a ticket ID against the registry. Unknown IDs are
// indistinguishable from destroyed tickets.
func (e *Engine) Ticket(id string) (*models.Ticket, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	t, ok := e.tickets[id]
	if !ok {
		return nil, fmt.Errorf("ticket %s: %w", id, ErrRecordNotFound)
	}
	return t, nil
}

// TicketsByOwner lists the live tickets held by a user.
func (e *Engine) TicketsByOwner(ownerID int64) []*models.Ticket {
	e.mu.RLock()
	defer e.mu.RUnlock()
	var out []*models.Ticket
	for _, t := range e.tickets {
		if t.OwnerID == ownerID {
			out = append(out, t)
		}
	}
	return out
}

// Capability resolves a capability ID against the registry.
func (e *Engine) Capability(id string) (*models.Capability, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	c, ok := e.caps[id]
	if !ok {
		return nil, fmt.Errorf("capability %s: %w", id, ErrRecordNotFound)
	}
	return c, nil
}

// -------------------- Internal helpers --------------------

// latchCancelled flips the sticky cancelled flag. Callers must hold l.Mu
// and must have passed the grace-period and unresolved guards first.
func (e *Engine) latchCancelled(l *models.Lottery) bool {
	if l.Cancelled {
		return false
	}
	l.Cancelled = true
	l.Status = models.StatusCancelled
	return true
}

// maybeUnwound marks a cancelled lottery terminal once the prize is gone
// and every sold number has been refunded or burned. Callers hold l.Mu.
func (e *Engine) maybeUnwound(l *models.Lottery) {
	if l.Cancelled && l.Prize == nil && len(l.Sold) == 0 {
		l.Status = models.StatusUnwound
	}
}

func (e *Engine) saveLottery(l *models.Lottery) {
	if e.db == nil {
		return
	}
	l.Mu.Lock()
	row := l.Snapshot()
	l.Mu.Unlock()
	if err := e.db.Save(row).Error; err != nil {
		logger.Errorf("failed to persist lottery %s: %v", l.ID, err)
	}
}

func (e *Engine) insertLottery(l *models.Lottery) {
	if e.db == nil {
		return
	}
	l.Mu.Lock()
	row := l.Snapshot()
	l.Mu.Unlock()
	if err := e.db.Create(row).Error; err != nil {
		logger.Errorf("failed to store lottery %s: %v", l.ID, err)
	}
}

func (e *Engine) savePrize(p *models.Prize) {
	if e.db == nil {
		return
	}
	if err := e.db.Save(p).Error; err != nil {
		logger.Errorf("failed to persist prize %s: %v", p.ID, err)
	}
}

func (e *Engine) insert(value any, id string) {
	if e.db == nil {
		return
	}
	if err := e.db.Create(value).Error; err != nil {
		logger.Errorf("failed to store record %s: %v", id, err)
	}
}

func (e *Engine) deleteTicket(t *models.Ticket) {
	if e.db == nil {
		return
	}
	if err := e.db.Delete(t).Error; err != nil {
		logger.Errorf("failed to delete ticket %s: %v", t.ID, err)
	}
}

func (e *Engine) deleteCapability(c *models.Capability) {
	if e.db == nil {
		return
	}
	if err := e.db.Delete(c).Error; err != nil {
		logger.Errorf("failed to delete capability %s: %v", c.ID, err)
	}
}
