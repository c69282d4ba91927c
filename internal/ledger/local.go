package ledger

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Unlimited is a balance which is never exhausted.
const Unlimited = -1

// LocalFunder is a funder of ledgers which don't charge for uploads through a wallet.
// It keeps wallet balance in memory.
type LocalFunder struct {
	mu           sync.Mutex
	balance      int64
	pricePerByte uint64
}

// NewLocalFunder creates new instance of LocalFunder. Use Unlimited balance to accept any Fund.
func NewLocalFunder(balance int64, pricePerByte uint64) *LocalFunder {
	return &LocalFunder{
		balance:      balance,
		pricePerByte: pricePerByte,
	}
}

// Price ...
func (f *LocalFunder) Price(_ context.Context, size int) (uint64, error) {
	if size < 0 {
		return 0, fmt.Errorf("invalid size %d", size)
	}

	return uint64(size) * f.pricePerByte, nil
}

// Fund ...
func (f *LocalFunder) Fund(_ context.Context, amount uint64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.balance == Unlimited {
		return nil
	}

	if amount > uint64(f.balance) {
		return fmt.Errorf("%w: balance=%d amount=%d", ErrInsufficientBalance, f.balance, amount)
	}

	f.balance -= int64(amount)

	return nil
}

// Balance returns current wallet balance.
func (f *LocalFunder) Balance() int64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.balance
}

// Clock produces strictly increasing millisecond timestamps.
type Clock struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

// NewClock creates clock over now function. time.Now is used if now is nil.
func NewClock(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}

	return &Clock{now: now}
}

// Next returns timestamp which is greater than any previously returned one.
func (c *Clock) Next() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	ts := c.now().UnixNano() / int64(time.Millisecond)
	if ts <= c.last {
		ts = c.last + 1
	}
	c.last = ts

	return ts
}

// Observe moves clock forward to ts.
func (c *Clock) Observe(ts int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ts > c.last {
		c.last = ts
	}
}
