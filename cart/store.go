package cart

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/google/uuid"
)

const (
	cartKey   = "bnc_cart"
	cartIDKey = "bnc_cart_id"
)

// Line is a single product entry in the cart. Name, Price and ImageURL
// are display copies taken when the product is added; the server
// re-prices every line at checkout.
type Line struct {
	ProductID int64   `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	ImageURL  string  `json:"imageUrl"`
	Quantity  int     `json:"quantity"`
}

// Event is sent to subscribers after every mutation.
type Event struct {
	Count int
	Lines []Line
}

// Store holds the shopper's cart and persists it through a Storage.
// All methods are safe for concurrent use.
type Store struct {
	mu          sync.Mutex
	storage     Storage
	lines       []Line
	subscribers map[int]func(Event)
	nextSub     int
}

func NewStore(storage Storage) *Store {
	s := &Store{
		storage:     storage,
		subscribers: make(map[int]func(Event)),
	}
	s.load()
	return s
}

// load reads the persisted cart. Corrupt or unreadable state is treated
// as an empty cart so a bad write can never brick the shop.
func (s *Store) load() {
	data, ok, err := s.storage.Read(cartKey)
	if err != nil {
		log.Printf("Cart load failed: %v", err)
		return
	}
	if !ok {
		return
	}
	var lines []Line
	if err := json.Unmarshal(data, &lines); err != nil {
		log.Printf("Cart state corrupt, starting empty: %v", err)
		return
	}
	s.lines = lines
}

func (s *Store) persist() {
	data, err := json.Marshal(s.lines)
	if err != nil {
		log.Printf("Cart save failed: %v", err)
		return
	}
	if err := s.storage.Write(cartKey, data); err != nil {
		log.Printf("Cart save failed: %v", err)
	}
}

// Add puts quantity units of a product in the cart. Adding a product
// that is already present merges into the existing line.
func (s *Store) Add(productID int64, name string, price float64, imageURL string, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	if imageURL == "" {
		imageURL = "/placeholder.png"
	}

	s.mu.Lock()
	merged := false
	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			s.lines[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		s.lines = append(s.lines, Line{
			ProductID: productID,
			Name:      name,
			Price:     price,
			ImageURL:  imageURL,
			Quantity:  quantity,
		})
	}
	s.persist()
	event := s.snapshot()
	s.mu.Unlock()

	s.notify(event)
}

// UpdateQuantity adjusts a line by delta. A resulting quantity of zero
// or less removes the line. Unknown product ids are ignored.
func (s *Store) UpdateQuantity(productID int64, delta int) {
	s.mu.Lock()
	changed := false
	for i := range s.lines {
		if s.lines[i].ProductID != productID {
			continue
		}
		next := s.lines[i].Quantity + delta
		if next <= 0 {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
		} else {
			s.lines[i].Quantity = next
		}
		changed = true
		break
	}
	if !changed {
		s.mu.Unlock()
		return
	}
	s.persist()
	event := s.snapshot()
	s.mu.Unlock()

	s.notify(event)
}

// Remove drops a line entirely regardless of quantity.
func (s *Store) Remove(productID int64) {
	s.mu.Lock()
	changed := false
	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			changed = true
			break
		}
	}
	if !changed {
		s.mu.Unlock()
		return
	}
	s.persist()
	event := s.snapshot()
	s.mu.Unlock()

	s.notify(event)
}

// Clear empties the cart, usually after a successful checkout.
func (s *Store) Clear() {
	s.mu.Lock()
	s.lines = nil
	if err := s.storage.Delete(cartKey); err != nil {
		log.Printf("Cart clear failed: %v", err)
	}
	event := s.snapshot()
	s.mu.Unlock()

	s.notify(event)
}

// Lines returns a copy of the current cart contents.
func (s *Store) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Line(nil), s.lines...)
}

// Count is the total number of units across all lines.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return countUnits(s.lines)
}

// Total is the display total from the cached line prices. The server
// recomputes the authoritative total at order time.
func (s *Store) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total float64
	for _, line := range s.lines {
		total += line.Price * float64(line.Quantity)
	}
	return total
}

// CartID returns the stable anonymous id for this cart, creating one on
// first use. The same id is sent with checkout so the server can reject
// a duplicate submission of the same cart.
func (s *Store) CartID() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok, err := s.storage.Read(cartIDKey)
	if err == nil && ok && len(data) > 0 {
		return string(data)
	}
	id := uuid.NewString()
	if err := s.storage.Write(cartIDKey, []byte(id)); err != nil {
		log.Printf("Cart id save failed: %v", err)
	}
	return id
}

// ResetCartID discards the current cart id so the next checkout gets a
// fresh one. Called after an order is accepted.
func (s *Store) ResetCartID() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.storage.Delete(cartIDKey); err != nil {
		log.Printf("Cart id reset failed: %v", err)
	}
}

// Subscribe registers a callback invoked after every cart mutation.
// The returned function removes the subscription.
func (s *Store) Subscribe(fn func(Event)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subscribers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

// snapshot must be called with mu held.
func (s *Store) snapshot() Event {
	return Event{
		Count: countUnits(s.lines),
		Lines: append([]Line(nil), s.lines...),
	}
}

func (s *Store) notify(event Event) {
	s.mu.Lock()
	fns := make([]func(Event), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(event)
	}
}

func countUnits(lines []Line) int {
	var count int
	for _, line := range lines {
		count += line.Quantity
	}
	return count
}
