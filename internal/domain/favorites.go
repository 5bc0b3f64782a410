package domain

import "time"

// SyncState tracks how a favorite entry relates to the backend's favorites
// list. Local state is authoritative for display; the state only records
// whether the backend has been told about it yet.
type SyncState string

const (
	// SyncUnsynced means the entry exists locally and no sync was attempted.
	SyncUnsynced SyncState = "unsynced"
	// SyncInFlight means a toggle call to the backend is in progress.
	SyncInFlight SyncState = "syncing"
	// SyncSynced means the backend acknowledged the entry.
	SyncSynced SyncState = "synced"
	// SyncFailedOptimistic means the backend call failed and the optimistic
	// local value stands until the next successful refresh.
	SyncFailedOptimistic SyncState = "sync_failed"
)

// FavoriteEntry is one favorited SKU with its creation timestamp.
type FavoriteEntry struct {
	SKU     string    `json:"sku"`
	AddedAt int64     `json:"addedAt"` // epoch millis
	State   SyncState `json:"state,omitempty"`
}

// Favorites is a set of favorited SKUs, ordered by insertion.
// Toggling twice returns membership to its original state.
type Favorites struct {
	Entries []FavoriteEntry `json:"entries"`
}

// find returns the index of the entry for a SKU, or -1.
func (f *Favorites) find(sku string) int {
	for i := range f.Entries {
		if f.Entries[i].SKU == sku {
			return i
		}
	}
	return -1
}

// Has reports whether a SKU is favorited. Never errors; an unknown SKU is
// simply not a favorite.
func (f *Favorites) Has(sku string) bool {
	return f.find(sku) >= 0
}

// Toggle flips membership for a SKU and returns the resulting state
// (true = now a favorite). New entries start as SyncUnsynced.
func (f *Favorites) Toggle(sku string) bool {
	if i := f.find(sku); i >= 0 {
		f.Entries = append(f.Entries[:i], f.Entries[i+1:]...)
		return false
	}
	f.Entries = append(f.Entries, FavoriteEntry{
		SKU:     sku,
		AddedAt: time.Now().UnixMilli(),
		State:   SyncUnsynced,
	})
	return true
}

// MarkState records the sync outcome for a SKU. No-op if the entry was
// removed while the backend call was in flight.
func (f *Favorites) MarkState(sku string, state SyncState) {
	if i := f.find(sku); i >= 0 {
		f.Entries[i].State = state
	}
}

// SKUs returns the favorited SKUs in insertion order.
func (f *Favorites) SKUs() []string {
	skus := make([]string, len(f.Entries))
	for i := range f.Entries {
		skus[i] = f.Entries[i].SKU
	}
	return skus
}

// PendingSKUs returns SKUs whose last sync attempt failed, for replay on the
// next refresh.
func (f *Favorites) PendingSKUs() []string {
	var skus []string
	for i := range f.Entries {
		if f.Entries[i].State == SyncFailedOptimistic || f.Entries[i].State == SyncUnsynced {
			skus = append(skus, f.Entries[i].SKU)
		}
	}
	return skus
}

// Reconcile replaces the set with the server's list, preserving AddedAt for
// SKUs that were already present locally. Entries the server confirmed are
// marked SyncSynced.
func (f *Favorites) Reconcile(serverSKUs []string) {
	now := time.Now().UnixMilli()
	entries := make([]FavoriteEntry, 0, len(serverSKUs))
	for _, sku := range serverSKUs {
		entry := FavoriteEntry{SKU: sku, AddedAt: now, State: SyncSynced}
		if i := f.find(sku); i >= 0 {
			entry.AddedAt = f.Entries[i].AddedAt
		}
		entries = append(entries, entry)
	}
	f.Entries = entries
}

// Len returns the number of favorites.
func (f *Favorites) Len() int {
	return len(f.Entries)
}
