package storage

// Keys the store mirrors its collections under. Values are JSON documents.
const (
	KeyCurrentUser = "currentUser"
	KeyProducts    = "products"
	KeyCart        = "cart"
	KeyPurchases   = "purchases"
)

// KV is the persistence boundary: whole JSON documents addressed by
// string keys. PutAll applies a batch of writes together so that an
// operation touching more than one collection mirrors them as a unit.
type KV interface {
	Get(key string) (value []byte, ok bool, err error)
	Put(key string, value []byte) error
	PutAll(entries map[string][]byte) error
	Delete(key string) error
}
