package order

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	ErrCustomerIsRequired = errs.NewValueIsRequiredError("customer")
	ErrItemsAreRequired   = errs.NewValueIsRequiredError("items")
	ErrMessageIsRequired  = errs.NewValueIsRequiredError("message")
)

// Order is the aggregate root of the fulfillment workflow. It owns its frozen
// items, the chat transcript, the active complaint and the feedback submitted
// after delivery.
//
// Order follows these invariants:
//   - Items are fixed at checkout; total is always recomputed from them
//   - Address and phone are snapshots of the customer profile at checkout
//   - At most one shipper is ever assigned, and only by a claim
//   - Status moves only along the edges declared in Status.TransitionTo
//   - The chat transcript exists only while AcceptedByShipper or Delivering
//   - Feedback is accepted once, and only after delivery
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customer is the username of the ordering customer
	customer string

	// items are the lines snapshotted at checkout
	items []Item

	// total is derived from items by recalcTotal
	total kernel.Money

	status Status

	address string
	phone   string
	note    string

	payment          PaymentMethod
	paymentReference string

	// shipper is the username of the claiming shipper, "" while unassigned
	shipper string

	createdAt time.Time

	chat      []Message
	complaint string

	foodFeedback   map[kernel.UUID]FoodFeedback
	shipperRating  *int
	shipperComment string
	rated          bool

	guard guard.ConstructorGuard
}

// State is the full serializable state of an order. Persistence adapters use
// it with Order.State and RestoreOrder.
type State struct {
	ID               kernel.UUID
	Customer         string
	Items            []Item
	Status           Status
	Address          string
	Phone            string
	Note             string
	Payment          PaymentMethod
	PaymentReference string
	Shipper          string
	CreatedAt        time.Time
	Chat             []Message
	Complaint        string
	FoodFeedback     map[kernel.UUID]FoodFeedback
	ShipperRating    *int
	ShipperComment   string
	Rated            bool
}

// NewOrder creates a Placed order. This is the only way to create a valid
// Order, ensuring all business invariants are maintained.
//
// Parameters:
//   - id: unique identifier for the order (must be valid UUID)
//   - customer: username of the ordering customer
//   - items: at least one line, already priced
//   - address, phone: contact snapshot taken from the customer profile
//   - note: optional free text for the restaurant
//   - payment: CashOnDelivery or Online
//   - createdAt: checkout time, the start of the cancellation window
//
// Example:
//
//	burger, _ := order.NewItem(burgerID, "Classic Burger", "burgerking", kernel.MustParseMoney("6.99"), "", 0, 1)
//	o, err := order.NewOrder(kernel.NewUUID(), "customer1", []order.Item{burger},
//	    "12 Elm St", "555-0101", "", order.CashOnDelivery, time.Now())
func NewOrder(
	id kernel.UUID,
	customer string,
	items []Item,
	address, phone, note string,
	payment PaymentMethod,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:  Placed,
		address: address,
		phone:   phone,
		note:    note,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customer),
		o.setItems(items),
		o.setPayment(payment),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order from persisted state, re-checking the
// invariants that link status, shipper and chat.
func RestoreOrder(s State) (*Order, error) {
	o, err := NewOrder(s.ID, s.Customer, s.Items, s.Address, s.Phone, s.Note, s.Payment, s.CreatedAt)
	if err != nil {
		return nil, err
	}

	if err = errors.Join(
		s.Status.Validate(),
		s.Status.ValidateCanHaveShipper(s.Shipper != ""),
	); err != nil {
		return nil, err
	}
	if len(s.Chat) > 0 && !s.Status.AllowsChat() {
		return nil, errs.NewValueIsInvalidErrorWithCause("chat",
			fmt.Errorf("%s orders have no chat", s.Status))
	}
	if s.Rated && s.Status != Delivered {
		return nil, errs.NewValueIsInvalidErrorWithCause("rated",
			fmt.Errorf("%s orders cannot be rated", s.Status))
	}

	o.status = s.Status
	o.paymentReference = s.PaymentReference
	o.shipper = s.Shipper
	o.chat = slices.Clone(s.Chat)
	o.complaint = s.Complaint
	o.foodFeedback = maps.Clone(s.FoodFeedback)
	if s.ShipperRating != nil {
		r := *s.ShipperRating
		o.shipperRating = &r
	}
	o.shipperComment = s.ShipperComment
	o.rated = s.Rated
	return o, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Customer returns the username of the ordering customer.
func (o *Order) Customer() string {
	return o.customer
}

// Items returns a copy of the frozen order lines.
func (o *Order) Items() []Item {
	return slices.Clone(o.items)
}

// Total returns the sum of all line totals.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

func (o *Order) Address() string {
	return o.address
}

func (o *Order) Phone() string {
	return o.phone
}

func (o *Order) Note() string {
	return o.note
}

func (o *Order) PaymentMethod() PaymentMethod {
	return o.payment
}

func (o *Order) PaymentReference() string {
	return o.paymentReference
}

// Shipper returns the assigned shipper's username, "" while unassigned.
func (o *Order) Shipper() string {
	return o.shipper
}

// HasShipper reports whether the order has been claimed.
func (o *Order) HasShipper() bool {
	return o.shipper != ""
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Chat returns a copy of the transcript.
func (o *Order) Chat() []Message {
	return slices.Clone(o.chat)
}

// Complaint returns the active complaint text, "" when none.
func (o *Order) Complaint() string {
	return o.complaint
}

func (o *Order) HasComplaint() bool {
	return o.complaint != ""
}

// FoodFeedback returns a copy of the per-food ratings keyed by food id.
func (o *Order) FoodFeedback() map[kernel.UUID]FoodFeedback {
	return maps.Clone(o.foodFeedback)
}

// ShipperRating returns the shipper score, if one was given.
func (o *Order) ShipperRating() (int, bool) {
	if o.shipperRating == nil {
		return 0, false
	}
	return *o.shipperRating, true
}

func (o *Order) ShipperComment() string {
	return o.shipperComment
}

// IsRated reports whether feedback was already accepted.
func (o *Order) IsRated() bool {
	return o.rated
}

// Restaurants returns the distinct restaurants owning the order's items, in
// item order.
func (o *Order) Restaurants() []string {
	var out []string
	for _, it := range o.items {
		if !slices.Contains(out, it.restaurant) {
			out = append(out, it.restaurant)
		}
	}
	return out
}

// HasRestaurant reports whether restaurant owns at least one item of the order.
func (o *Order) HasRestaurant(restaurant string) bool {
	for _, it := range o.items {
		if it.restaurant == restaurant {
			return true
		}
	}
	return false
}

// HasFood reports whether foodID is one of the order's items.
func (o *Order) HasFood(foodID kernel.UUID) bool {
	for _, it := range o.items {
		if it.foodID.IsEqual(foodID) {
			return true
		}
	}
	return false
}

// Prepare moves Placed -> Preparing.
func (o *Order) Prepare() error {
	return o.moveTo(Preparing)
}

// MarkReady moves Placed or Preparing -> ReadyForPickup.
func (o *Order) MarkReady() error {
	return o.moveTo(ReadyForPickup)
}

// Claim assigns the order to shipper and moves it to AcceptedByShipper.
//
// The assignment check comes first: once any shipper holds the order every
// later claim fails with *errs.AlreadyClaimedError naming the winner, whatever
// the current status. Callers must serialize Claim per order so exactly one
// concurrent caller observes the unassigned state.
//
// Returns:
//   - nil when shipper won the order
//   - *errs.AlreadyClaimedError when another shipper holds it
//   - *errs.InvalidTransitionError when the status is neither Placed nor ReadyForPickup
func (o *Order) Claim(shipper string) error {
	if shipper == "" {
		return errs.NewValueIsRequiredError("shipper")
	}
	if o.shipper != "" {
		return errs.NewAlreadyClaimedError(o.id.String(), o.shipper)
	}

	if err := o.moveTo(AcceptedByShipper); err != nil {
		return err
	}
	o.shipper = shipper
	return nil
}

// StartDelivery moves AcceptedByShipper -> Delivering.
func (o *Order) StartDelivery() error {
	return o.moveTo(Delivering)
}

// Deliver moves Delivering -> Delivered and discards the chat transcript.
func (o *Order) Deliver() error {
	if err := o.moveTo(Delivered); err != nil {
		return err
	}
	o.chat = nil
	return nil
}

// Cancel moves Placed -> Cancelled while now is strictly within window of the
// creation time. At exactly window elapsed the cancellation is refused.
//
// Returns:
//   - *errs.InvalidTransitionError once the status has advanced past Placed
//   - errs.ErrCancellationWindowClosed when the window has elapsed
func (o *Order) Cancel(now time.Time, window time.Duration) error {
	next, err := o.status.TransitionTo(Cancelled)
	if err != nil {
		return err
	}

	if elapsed := now.Sub(o.createdAt); elapsed >= window {
		return fmt.Errorf("%w: %s elapsed, window is %s",
			errs.ErrCancellationWindowClosed, elapsed.Truncate(time.Millisecond), window)
	}

	o.status = next
	return nil
}

// PostMessage appends a chat line. Chat is only open while the order is
// AcceptedByShipper or Delivering; membership of sender is checked by the
// transition policy.
func (o *Order) PostMessage(sender, text string, now time.Time) error {
	if !o.status.AllowsChat() {
		return fmt.Errorf("%w: order is %s", errs.ErrChatNotAvailable, o.status)
	}
	if sender == "" {
		return errs.NewValueIsRequiredError("sender")
	}
	if text == "" {
		return ErrMessageIsRequired
	}

	o.chat = append(o.chat, Message{Sender: sender, Text: text, SentAt: now})
	return nil
}

// RecordPayment stores the gateway reference of an online payment.
func (o *Order) RecordPayment(reference string) error {
	if o.payment != Online {
		return errs.NewValueIsInvalidErrorWithCause("payment",
			fmt.Errorf("%s orders are not charged online", o.payment))
	}
	if reference == "" {
		return errs.NewValueIsRequiredError("payment reference")
	}
	o.paymentReference = reference
	return nil
}

// AttachComplaint sets the order's single active complaint, replacing any
// previous text. Status is not affected.
func (o *Order) AttachComplaint(text string) error {
	if text == "" {
		return errs.NewValueIsRequiredError("complaint")
	}
	o.complaint = text
	return nil
}

// ResolveComplaint clears the active complaint.
func (o *Order) ResolveComplaint() error {
	if o.complaint == "" {
		return errs.NewValueIsInvalidErrorWithCause("complaint", errors.New("order has no active complaint"))
	}
	o.complaint = ""
	return nil
}

// ApplyFeedback records the customer's rating batch on the order. The batch is
// validated completely before anything is stored.
//
// Returns:
//   - errs.ErrOrderNotDeliverable unless the order is Delivered
//   - *errs.UnauthorizedError when customer did not place the order
//   - errs.ErrValueIsInvalid for a second submission or a food outside the order
//   - errs.ErrInvalidRating for any score outside 0..5
func (o *Order) ApplyFeedback(customer string, fb Feedback) error {
	if o.status != Delivered {
		return fmt.Errorf("%w: order is %s", errs.ErrOrderNotDeliverable, o.status)
	}
	if customer != o.customer {
		return errs.NewUnauthorizedError(customer, "rate this order")
	}
	if o.rated {
		return errs.NewValueIsInvalidErrorWithCause("feedback", errors.New("order already rated"))
	}
	if fb.IsEmpty() {
		return errs.NewValueIsRequiredError("ratings")
	}
	if err := fb.Validate(); err != nil {
		return err
	}
	for foodID := range fb.Foods {
		if !o.HasFood(foodID) {
			return errs.NewValueIsInvalidErrorWithCause("feedback",
				fmt.Errorf("food %s is not part of the order", foodID))
		}
	}

	o.foodFeedback = maps.Clone(fb.Foods)
	if fb.ShipperRating != nil {
		r := *fb.ShipperRating
		o.shipperRating = &r
		o.shipperComment = fb.ShipperComment
	}
	o.rated = true
	return nil
}

// State returns a deep copy of the order's state for persistence.
func (o *Order) State() State {
	s := State{
		ID:               o.id,
		Customer:         o.customer,
		Items:            o.Items(),
		Status:           o.status,
		Address:          o.address,
		Phone:            o.phone,
		Note:             o.note,
		Payment:          o.payment,
		PaymentReference: o.paymentReference,
		Shipper:          o.shipper,
		CreatedAt:        o.createdAt,
		Chat:             o.Chat(),
		Complaint:        o.complaint,
		FoodFeedback:     o.FoodFeedback(),
		ShipperComment:   o.shipperComment,
		Rated:            o.rated,
	}
	if o.shipperRating != nil {
		r := *o.shipperRating
		s.ShipperRating = &r
	}
	return s
}

// Clone returns a deep copy that readers can use without holding the order lock.
func (o *Order) Clone() *Order {
	c := *o
	c.items = o.Items()
	c.chat = o.Chat()
	c.foodFeedback = o.FoodFeedback()
	if o.shipperRating != nil {
		r := *o.shipperRating
		c.shipperRating = &r
	}
	return &c
}

func (o *Order) moveTo(target Status) error {
	next, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

// recalcTotal derives the total from the items. It is never updated
// incrementally so it cannot drift from the lines.
func (o *Order) recalcTotal() error {
	var total kernel.Money
	for _, it := range o.items {
		var err error
		if total, err = total.Plus(it.LineTotal()); err != nil {
			return err
		}
	}
	o.total = total
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(customer string) error {
	if customer == "" {
		return ErrCustomerIsRequired
	}
	o.customer = customer
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	for i, it := range items {
		if it.quantity < 1 {
			return errs.NewValueIsInvalidErrorWithCause("items", fmt.Errorf("line %d was not created via NewItem", i))
		}
	}
	o.items = slices.Clone(items)
	return o.recalcTotal()
}

func (o *Order) setPayment(payment PaymentMethod) error {
	if err := payment.Validate(); err != nil {
		return err
	}
	o.payment = payment
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	o.createdAt = createdAt
	return nil
}
