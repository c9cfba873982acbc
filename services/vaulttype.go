package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sirupsen/logrus"

	"github.com/0xDegenDeveloper/ui-clone/ethtypes"
	"github.com/0xDegenDeveloper/ui-clone/utils"
)

// VaultTypeReader reads the vault type enum of the vault contract at address.
type VaultTypeReader interface {
	ReadVaultType(ctx context.Context, address string) (*ethtypes.VaultType, error)
}

type VaultTypeStatus uint8

const (
	VaultTypeStatusIdle VaultTypeStatus = iota
	VaultTypeStatusLoading
	VaultTypeStatusError
	VaultTypeStatusSuccess
)

func (s VaultTypeStatus) String() string {
	switch s {
	case VaultTypeStatusIdle:
		return "idle"
	case VaultTypeStatusLoading:
		return "loading"
	case VaultTypeStatusError:
		return "error"
	case VaultTypeStatusSuccess:
		return "success"
	}
	return fmt.Sprintf("unknown(%d)", uint8(s))
}

// VaultReadError is the failure of a vault type query, whatever the cause.
type VaultReadError struct {
	Address string
	Err     error
}

func (e *VaultReadError) Error() string {
	return fmt.Sprintf("could not read vault type of %v: %v", e.Address, e.Err)
}

func (e *VaultReadError) Unwrap() error {
	return e.Err
}

// VaultTypeQuery is an immutable snapshot of one query cycle.
type VaultTypeQuery struct {
	Address string
	CycleID string
	Status  VaultTypeStatus
	Result  *ethtypes.VaultType
	Error   error
}

// ActiveVariant returns the vault type tag on success and an empty string otherwise.
func (q *VaultTypeQuery) ActiveVariant() string {
	if q == nil || q.Status != VaultTypeStatusSuccess || q.Result == nil {
		return ""
	}
	return q.Result.ActiveVariant()
}

var (
	vaultTypeQueryCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vault_explorer_type_query_count",
		Help: "Number of settled vault type queries",
	}, []string{"status"})
	vaultTypeQueryDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "vault_explorer_type_query_duration",
		Help:    "Duration of vault type queries in milliseconds",
		Buckets: []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000, 10000},
	})
	vaultTypeStaleResults = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vault_explorer_type_query_stale",
		Help: "Number of vault type results dropped because their query cycle was superseded",
	})
)

// VaultCard owns the vault type query of a single card.
// Every address change starts a new query cycle; results of superseded cycles are dropped.
type VaultCard struct {
	reader      VaultTypeReader
	logger      logrus.FieldLogger
	callTimeout time.Duration

	mutex     sync.Mutex
	cycle     uint64
	query     *VaultTypeQuery
	settled   chan struct{}
	cancelFn  context.CancelFunc
	closed    bool
	changeFns []func(query *VaultTypeQuery)
}

func NewVaultCard(reader VaultTypeReader, logger logrus.FieldLogger, callTimeout time.Duration) *VaultCard {
	if callTimeout <= 0 {
		callTimeout = 30 * time.Second
	}
	return &VaultCard{
		reader:      reader,
		logger:      logger,
		callTimeout: callTimeout,
		query:       &VaultTypeQuery{Status: VaultTypeStatusIdle},
	}
}

// SetAddress binds the card to a vault. A new address discards the current result and starts a new query cycle,
// setting the same address again is a no-op.
func (vc *VaultCard) SetAddress(address string) {
	vc.mutex.Lock()
	defer vc.mutex.Unlock()

	if vc.closed {
		return
	}
	if vc.query.Status != VaultTypeStatusIdle && vc.query.Address == address {
		return
	}

	vc.supersedeCycle()
	vc.cycle++
	query := &VaultTypeQuery{
		Address: address,
		CycleID: uuid.NewString(),
		Status:  VaultTypeStatusLoading,
	}
	vc.query = query
	vc.settled = make(chan struct{})

	ctx, cancel := context.WithTimeout(context.Background(), vc.callTimeout)
	vc.cancelFn = cancel

	go vc.runCycle(ctx, cancel, vc.cycle, query)
}

// supersedeCycle releases the running cycle, if any. Must be called with the mutex held.
func (vc *VaultCard) supersedeCycle() {
	if vc.cancelFn != nil {
		vc.cancelFn()
		vc.cancelFn = nil
	}
	if vc.query.Status == VaultTypeStatusLoading && vc.settled != nil {
		// wake up waiters so they follow the new cycle
		close(vc.settled)
	}
}

func (vc *VaultCard) runCycle(ctx context.Context, cancel context.CancelFunc, cycle uint64, query *VaultTypeQuery) {
	defer cancel()

	startTime := time.Now()
	var result *ethtypes.VaultType
	var err error
	func() {
		defer utils.RecoverPanic("vault type query", func(panicErr error) {
			err = panicErr
		})
		result, err = vc.reader.ReadVaultType(ctx, query.Address)
	}()
	if err == nil && result == nil {
		err = fmt.Errorf("empty vault type result")
	}

	vc.settle(cycle, query, result, err, time.Since(startTime))
}

func (vc *VaultCard) settle(cycle uint64, query *VaultTypeQuery, result *ethtypes.VaultType, err error, duration time.Duration) {
	vc.mutex.Lock()
	if vc.closed || cycle != vc.cycle {
		vc.mutex.Unlock()
		vaultTypeStaleResults.Inc()
		vc.logger.WithFields(logrus.Fields{
			"vault": query.Address,
			"cycle": query.CycleID,
		}).Debugf("dropped stale vault type result")
		return
	}

	settledQuery := &VaultTypeQuery{
		Address: query.Address,
		CycleID: query.CycleID,
	}
	if err != nil {
		settledQuery.Status = VaultTypeStatusError
		settledQuery.Error = &VaultReadError{Address: query.Address, Err: err}
	} else {
		settledQuery.Status = VaultTypeStatusSuccess
		settledQuery.Result = result
	}
	vc.query = settledQuery
	vc.cancelFn = nil
	close(vc.settled)
	changeFns := make([]func(query *VaultTypeQuery), len(vc.changeFns))
	copy(changeFns, vc.changeFns)
	vc.mutex.Unlock()

	vaultTypeQueryCount.WithLabelValues(settledQuery.Status.String()).Inc()
	vaultTypeQueryDuration.Observe(float64(duration.Milliseconds()))

	if settledQuery.Status == VaultTypeStatusError {
		utils.LogError(vc.logger, settledQuery.Error, "vault type query failed", 0, map[string]interface{}{
			"vault": settledQuery.Address,
			"cycle": settledQuery.CycleID,
		})
	}

	for _, fn := range changeFns {
		fn(settledQuery)
	}
}

// Query returns the current query snapshot.
func (vc *VaultCard) Query() *VaultTypeQuery {
	vc.mutex.Lock()
	defer vc.mutex.Unlock()
	return vc.query
}

// Wait blocks until the current query cycle settled or ctx is done and returns the latest snapshot.
func (vc *VaultCard) Wait(ctx context.Context) *VaultTypeQuery {
	for {
		vc.mutex.Lock()
		query := vc.query
		settled := vc.settled
		vc.mutex.Unlock()

		if query.Status != VaultTypeStatusLoading {
			return query
		}

		select {
		case <-settled:
		case <-ctx.Done():
			return vc.Query()
		}
	}
}

// OnChange registers a callback invoked with every settled query snapshot.
func (vc *VaultCard) OnChange(fn func(query *VaultTypeQuery)) {
	vc.mutex.Lock()
	defer vc.mutex.Unlock()
	vc.changeFns = append(vc.changeFns, fn)
}

// Click requests navigation to the vault details page. Only a settled, successful card navigates.
func (vc *VaultCard) Click(nav Navigator) bool {
	query := vc.Query()
	if query.Status != VaultTypeStatusSuccess {
		return false
	}
	nav.Push(utils.VaultRoute(query.Address))
	return true
}

// Close discards the card, an in-flight read is cancelled and its result ignored.
func (vc *VaultCard) Close() {
	vc.mutex.Lock()
	defer vc.mutex.Unlock()

	if vc.closed {
		return
	}
	vc.supersedeCycle()
	vc.closed = true
	vc.cycle++
	vc.query = &VaultTypeQuery{Status: VaultTypeStatusIdle}
	vc.changeFns = nil
}
