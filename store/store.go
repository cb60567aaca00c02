package store

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/kamaucodes/sokomart-api/models"
	"github.com/kamaucodes/sokomart-api/storage"
)

// Store owns the catalog, the cart, the purchase history and the active
// user. It is the sole writer of those collections; handlers call its
// operations and render the results. Every mutation is mirrored to the
// persistence boundary before the operation returns. The mutex keeps
// operations single-writer since gin serves requests concurrently.
type Store struct {
	mu sync.Mutex

	kv storage.KV

	user      *models.User
	products  []models.Product
	cart      []models.CartLine
	purchases []models.Purchase

	nextProductID int64

	now   func() time.Time
	newID func() string
}

func New(kv storage.KV) *Store {
	return &Store{
		kv:        kv,
		products:  []models.Product{},
		cart:      []models.CartLine{},
		purchases: []models.Purchase{},
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// Load reads the persisted collections. Missing or malformed values fall
// back to the defaults: a catalog that was never persisted starts with
// the sample listings, everything else starts empty.
func (s *Store) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = sampleCatalog()
	if raw, ok := s.get(storage.KeyProducts); ok {
		var products []models.Product
		if err := json.Unmarshal(raw, &products); err != nil {
			log.Println("Discarding malformed products state:", err)
		} else {
			s.products = products
		}
	}
	if s.products == nil {
		s.products = []models.Product{}
	}

	s.cart = []models.CartLine{}
	if raw, ok := s.get(storage.KeyCart); ok {
		var cart []models.CartLine
		if err := json.Unmarshal(raw, &cart); err != nil {
			log.Println("Discarding malformed cart state:", err)
		} else if cart != nil {
			s.cart = cart
		}
	}

	s.purchases = []models.Purchase{}
	if raw, ok := s.get(storage.KeyPurchases); ok {
		var purchases []models.Purchase
		if err := json.Unmarshal(raw, &purchases); err != nil {
			log.Println("Discarding malformed purchases state:", err)
		} else if purchases != nil {
			s.purchases = purchases
		}
	}

	s.user = nil
	if raw, ok := s.get(storage.KeyCurrentUser); ok {
		var user models.User
		if err := json.Unmarshal(raw, &user); err != nil {
			log.Println("Discarding malformed current user state:", err)
		} else {
			s.user = &user
		}
	}

	s.nextProductID = s.highestKnownProductID() + 1
}

// highestKnownProductID scans every collection that carries product ids
// so a listing deleted from the catalog cannot have its id reassigned
// while a cart line or purchase still references it.
func (s *Store) highestKnownProductID() int64 {
	var highest int64
	for _, product := range s.products {
		if product.ID > highest {
			highest = product.ID
		}
	}
	for _, line := range s.cart {
		if line.ID > highest {
			highest = line.ID
		}
	}
	for _, purchase := range s.purchases {
		for _, item := range purchase.Items {
			if item.ID > highest {
				highest = item.ID
			}
		}
	}
	return highest
}

func (s *Store) get(key string) ([]byte, bool) {
	raw, ok, err := s.kv.Get(key)
	if err != nil {
		log.Printf("Reading %s state: %v", key, err)
		return nil, false
	}
	return raw, ok
}

// persist mirrors the named collections to the boundary as one batch.
// The in-memory mutation is the commit point; a failed mirror write is
// reported to the caller but never rolls memory back.
func (s *Store) persist(keys ...string) error {
	entries := make(map[string][]byte, len(keys))
	for _, key := range keys {
		var doc any
		switch key {
		case storage.KeyCurrentUser:
			doc = s.user
		case storage.KeyProducts:
			doc = s.products
		case storage.KeyCart:
			doc = s.cart
		case storage.KeyPurchases:
			doc = s.purchases
		default:
			return fmt.Errorf("unknown state key %q", key)
		}
		raw, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("encoding %s state: %w", key, err)
		}
		entries[key] = raw
	}
	if err := s.kv.PutAll(entries); err != nil {
		return fmt.Errorf("persisting state: %w", err)
	}
	return nil
}
