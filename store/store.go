package store

// Collection keys used by the workflows.
const (
	BookingsKey  = "bookings"
	PreOrdersKey = "preorders"
)

// RecordStore is the key-value persistence behind bookings and pre-orders.
// Load returns false when nothing has ever been saved under the key. Save
// replaces the stored value wholesale. Implementations assume a single
// reader/writer; two writers racing on one key end up last-writer-wins.
type RecordStore interface {
	Load(key string) ([]byte, bool)
	Save(key string, data []byte) error
}
