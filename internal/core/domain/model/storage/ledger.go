package storage

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"granary/internal/core/domain/model/goods"
	"granary/internal/core/domain/model/kernel"
	"granary/internal/pkg/errs"
	"granary/internal/pkg/guard"
)

// EmptyStorageDescription is what Describe renders for a ledger without containers.
const EmptyStorageDescription = "storage contains no containers"

var (
	// ErrNoFreeContainerSlot indicates that goods of a new kind were offered
	// while every container slot of the storage is already taken. Removing an
	// empty container frees a slot.
	ErrNoFreeContainerSlot = errors.New("no free container slot in storage")

	// ErrLedgerIsNotConstructed indicates that the Ledger was not created
	// through NewLedger or RestoreLedger.
	ErrLedgerIsNotConstructed = errors.New("Ledger must be created via NewLedger or RestoreLedger constructor")
)

// Container is a read-only snapshot of one container of the ledger.
type Container struct {
	Kind      goods.Kind
	Amount    float64
	FreeSpace float64
}

// Ledger accounts for the goods held by a storage facility. The facility is
// split into containers of a fixed capacity, one container per goods kind,
// and can host at most floor(storageCapacity / containerCapacity) of them.
//
// A container comes into existence the first time goods of its kind are
// added and disappears only through RemoveContainer once it is empty. Reads
// never create containers.
//
// Business rules:
//   - containerCapacity >= 0 and storageCapacity >= containerCapacity
//   - every container holds an amount in [0, containerCapacity]
//   - the number of containers never exceeds MaxContainers
//
// Ledger is not safe for concurrent use. Callers serialize access, normally
// through the unit of work of the memory adapter.
//
// Example usage:
//
//	ledger, err := storage.NewLedger(10, 25) // two container slots
//	if err != nil {
//	    return err
//	}
//
//	remainder, err := ledger.AddGoods(goods.Buckwheat, 12)
//	if errors.Is(err, storage.ErrNoFreeContainerSlot) {
//	    // free a slot with RemoveContainer first
//	}
//	// remainder == 2, the container is full
type Ledger struct {
	// id identifies the storage facility in logs and API responses
	id kernel.UUID

	// containerCapacity is the most any single container may hold
	containerCapacity float64

	// storageCapacity bounds the number of containers
	storageCapacity float64

	// contents holds the amount per existing container
	contents map[goods.Kind]float64

	// guard ensures the ledger was properly initialized
	guard guard.ConstructorGuard
}

// NewLedger creates an empty ledger with a fresh identity.
//
// It fails with errs.ErrValueIsInvalid when containerCapacity is negative or
// when storageCapacity is smaller than containerCapacity. NaN capacities are
// rejected by the same checks. Both violations are reported together.
func NewLedger(containerCapacity, storageCapacity float64) (*Ledger, error) {
	ledger := &Ledger{
		id:       kernel.NewUUID(),
		contents: make(map[goods.Kind]float64),
		guard:    guard.NewConstructorGuard(),
	}

	if err := ledger.setCapacities(containerCapacity, storageCapacity); err != nil {
		return nil, err
	}

	return ledger, nil
}

// RestoreLedger rebuilds a ledger from a snapshot taken with ID, the
// capacity accessors and Contents. Every invariant is checked again, so a
// snapshot that was edited into an inconsistent state is rejected.
func RestoreLedger(
	id kernel.UUID,
	containerCapacity, storageCapacity float64,
	contents map[goods.Kind]float64,
) (*Ledger, error) {
	ledger := &Ledger{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		ledger.setID(id),
		ledger.setCapacities(containerCapacity, storageCapacity),
	); err != nil {
		return nil, err
	}

	if err := ledger.setContents(contents); err != nil {
		return nil, err
	}

	return ledger, nil
}

func (l *Ledger) ID() kernel.UUID {
	return l.id
}

func (l *Ledger) ContainerCapacity() float64 {
	return l.containerCapacity
}

func (l *Ledger) StorageCapacity() float64 {
	return l.storageCapacity
}

// MaxContainers returns floor(storageCapacity / containerCapacity).
//
// A zero container capacity never fills up, so it yields math.MaxInt slots,
// unless the storage capacity is zero as well, in which case there are none.
func (l *Ledger) MaxContainers() int {
	if l.containerCapacity == 0 {
		if l.storageCapacity == 0 {
			return 0
		}
		return math.MaxInt
	}

	slots := math.Floor(l.storageCapacity / l.containerCapacity)
	switch {
	case math.IsNaN(slots):
		return 0
	case slots >= float64(math.MaxInt):
		return math.MaxInt
	default:
		return int(slots)
	}
}

// ContainerCount returns the number of existing containers.
func (l *Ledger) ContainerCount() int {
	return len(l.contents)
}

// FreeContainerSlots returns how many more kinds the storage can accept.
func (l *Ledger) FreeContainerSlots() int {
	return l.MaxContainers() - len(l.contents)
}

// AddGoods pours amount of kind into its container, creating the container
// when it does not exist yet.
//
// The container is filled up to ContainerCapacity and whatever does not fit
// is returned as the remainder; an overflow is not an error. Creating a
// container fails with ErrNoFreeContainerSlot when all slots are taken, and
// the ledger is left untouched.
//
// Errors:
//   - errs.ErrValueIsInvalid: invalid kind, or amount negative or NaN
//   - ErrNoFreeContainerSlot: a new container is needed but no slot is free
func (l *Ledger) AddGoods(kind goods.Kind, amount float64) (float64, error) {
	if err := errors.Join(kind.Validate(), validateAmount(amount)); err != nil {
		return 0, err
	}

	current, exists := l.contents[kind]
	if !exists && !l.hasFreeContainerSlot() {
		return 0, fmt.Errorf("%w: cannot place a container for %s", ErrNoFreeContainerSlot, kind)
	}

	return l.fillContainer(kind, current, amount), nil
}

// TakeGoods removes up to amount of kind and returns what was actually
// taken: amount itself when the container holds enough, otherwise its whole
// content. Taking from a missing container yields 0 and creates nothing.
func (l *Ledger) TakeGoods(kind goods.Kind, amount float64) (float64, error) {
	if err := errors.Join(kind.Validate(), validateAmount(amount)); err != nil {
		return 0, err
	}

	current, exists := l.contents[kind]
	if current >= amount {
		if exists {
			l.contents[kind] = current - amount
		}
		return amount, nil
	}

	if exists {
		l.contents[kind] = 0
	}
	return current, nil
}

// RemoveContainer deletes the container of kind if it exists and is exactly
// empty. It reports whether a container was removed.
func (l *Ledger) RemoveContainer(kind goods.Kind) bool {
	amount, exists := l.contents[kind]
	if !exists || amount != 0 {
		return false
	}

	delete(l.contents, kind)
	return true
}

// AmountOf returns the amount stored for kind, 0 when there is no container.
func (l *Ledger) AmountOf(kind goods.Kind) float64 {
	return l.contents[kind]
}

// HasContainer reports whether a container for kind exists.
func (l *Ledger) HasContainer(kind goods.Kind) bool {
	_, exists := l.contents[kind]
	return exists
}

// FreeSpaceOf returns how much more the container of kind can take. It fails
// with errs.ErrObjectNotFound when the container does not exist.
func (l *Ledger) FreeSpaceOf(kind goods.Kind) (float64, error) {
	amount, exists := l.contents[kind]
	if !exists {
		return 0, errs.NewObjectNotFoundError("container", kind)
	}

	return l.containerCapacity - amount, nil
}

// Containers lists the existing containers in goods.All order.
func (l *Ledger) Containers() []Container {
	containers := make([]Container, 0, len(l.contents))
	for _, kind := range goods.All() {
		amount, exists := l.contents[kind]
		if !exists {
			continue
		}
		containers = append(containers, Container{
			Kind:      kind,
			Amount:    amount,
			FreeSpace: l.containerCapacity - amount,
		})
	}
	return containers
}

// EmptyContainers lists the kinds whose containers hold exactly nothing.
func (l *Ledger) EmptyContainers() []goods.Kind {
	var kinds []goods.Kind
	for _, container := range l.Containers() {
		if container.Amount == 0 {
			kinds = append(kinds, container.Kind)
		}
	}
	return kinds
}

// Contents returns a copy of the amount per existing container.
func (l *Ledger) Contents() map[goods.Kind]float64 {
	contents := make(map[goods.Kind]float64, len(l.contents))
	for kind, amount := range l.contents {
		contents[kind] = amount
	}
	return contents
}

// Describe renders one "<label>: <amount>" line per container in goods.All
// order, or EmptyStorageDescription when there are none.
func (l *Ledger) Describe(labels goods.LabelTable) string {
	if len(l.contents) == 0 {
		return EmptyStorageDescription
	}

	lines := make([]string, 0, len(l.contents))
	for _, container := range l.Containers() {
		lines = append(lines, labels.Label(container.Kind)+": "+formatAmount(container.Amount))
	}
	return strings.Join(lines, "\n")
}

// String describes the ledger with goods.DefaultLabels.
func (l *Ledger) String() string {
	return l.Describe(goods.DefaultLabels())
}

// Validate checks that the ledger was built by one of its constructors.
func (l *Ledger) Validate() error {
	if l == nil {
		return ErrLedgerIsNotConstructed
	}
	return l.guard.Validate(ErrLedgerIsNotConstructed)
}

func (l *Ledger) hasFreeContainerSlot() bool {
	return len(l.contents) < l.MaxContainers()
}

func (l *Ledger) fillContainer(kind goods.Kind, current, amount float64) float64 {
	total := current + amount
	if total <= l.containerCapacity {
		l.contents[kind] = total
		return 0
	}

	l.contents[kind] = l.containerCapacity
	return total - l.containerCapacity
}

func (l *Ledger) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	l.id = id
	return nil
}

func (l *Ledger) setCapacities(containerCapacity, storageCapacity float64) error {
	var problems []error
	if !(containerCapacity >= 0) {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"containerCapacity is invalid",
			fmt.Errorf("%v is not greater than or equal to 0", containerCapacity),
		))
	}
	if !(storageCapacity >= containerCapacity) {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"storageCapacity is invalid",
			fmt.Errorf("%v is less than container capacity %v", storageCapacity, containerCapacity),
		))
	}
	if len(problems) > 0 {
		return errors.Join(problems...)
	}

	l.containerCapacity = containerCapacity
	l.storageCapacity = storageCapacity
	return nil
}

// setContents is used during restoration, after the capacities are known.
func (l *Ledger) setContents(contents map[goods.Kind]float64) error {
	if len(contents) > l.MaxContainers() {
		return errs.NewValueIsOutOfRangeError("containers", len(contents), 0, l.MaxContainers())
	}

	restored := make(map[goods.Kind]float64, len(contents))
	var problems []error
	for kind, amount := range contents {
		if err := kind.Validate(); err != nil {
			problems = append(problems, err)
			continue
		}
		if !(amount >= 0 && amount <= l.containerCapacity) {
			problems = append(problems, errs.NewValueIsOutOfRangeError(
				kind.String(), amount, 0, l.containerCapacity,
			))
			continue
		}
		restored[kind] = amount
	}
	if len(problems) > 0 {
		return errors.Join(problems...)
	}

	l.contents = restored
	return nil
}

func validateAmount(amount float64) error {
	if !(amount >= 0) {
		return errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid",
			fmt.Errorf("%v is not greater than or equal to 0", amount),
		)
	}
	return nil
}

// formatAmount prints the shortest representation that round-trips, keeping
// a fractional digit for whole numbers ("4.0").
func formatAmount(amount float64) string {
	s := strconv.FormatFloat(amount, 'f', -1, 64)
	if math.IsInf(amount, 0) || math.IsNaN(amount) || strings.Contains(s, ".") {
		return s
	}
	return s + ".0"
}
