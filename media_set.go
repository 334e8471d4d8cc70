package media

import (
	"cmp"
	"slices"
	"sync"

	"github.com/thesyncim/pdrawmedia/pdraw"
)

// MediaSet tracks the medias a PDRAW session announces, keyed by media ID.
// Only supported medias enter the set. The zero value is an empty set.
//
// Callbacks run one at a time, in the order the changes were applied. They
// must not add or remove medias.
type MediaSet struct {
	notifyMu  sync.Mutex // serializes changes with their callbacks
	mu        sync.RWMutex
	medias    map[uint32]MediaInfo
	onAdded   func(MediaInfo)
	onRemoved func(MediaInfo)
}

// NewMediaSet creates an empty media set.
func NewMediaSet() *MediaSet {
	return &MediaSet{
		medias: make(map[uint32]MediaInfo),
	}
}

// Add builds the descriptor of info and stores it. A media already stored
// under the same ID is replaced, and reported removed first. Unsupported
// medias are not stored and the error of NewMediaInfo is returned.
func (s *MediaSet) Add(info *pdraw.MediaInfo) (MediaInfo, error) {
	mi, err := NewMediaInfo(info)
	if err != nil {
		return nil, err
	}

	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	if s.medias == nil {
		s.medias = make(map[uint32]MediaInfo)
	}
	old := s.medias[mi.MediaID()]
	s.medias[mi.MediaID()] = mi
	onAdded, onRemoved := s.onAdded, s.onRemoved
	s.mu.Unlock()

	if old != nil && onRemoved != nil {
		onRemoved(old)
	}
	if onAdded != nil {
		onAdded(mi)
	}
	return mi, nil
}

// Remove drops the media with the given ID. It returns false when no such
// media is stored.
func (s *MediaSet) Remove(id uint32) bool {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	mi, ok := s.medias[id]
	delete(s.medias, id)
	onRemoved := s.onRemoved
	s.mu.Unlock()

	if ok && onRemoved != nil {
		onRemoved(mi)
	}
	return ok
}

// Get returns the media with the given ID, or nil.
func (s *MediaSet) Get(id uint32) MediaInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.medias[id]
}

// List returns every stored media, sorted by ID.
func (s *MediaSet) List() []MediaInfo {
	s.mu.RLock()
	result := make([]MediaInfo, 0, len(s.medias))
	for _, mi := range s.medias {
		result = append(result, mi)
	}
	s.mu.RUnlock()

	sortByID(result)
	return result
}

func sortByID(medias []MediaInfo) {
	slices.SortFunc(medias, func(a, b MediaInfo) int {
		return cmp.Compare(a.MediaID(), b.MediaID())
	})
}

func (s *MediaSet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.medias)
}

// Clear removes every media, reporting each one removed in ID order.
func (s *MediaSet) Clear() {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	removed := make([]MediaInfo, 0, len(s.medias))
	for _, mi := range s.medias {
		removed = append(removed, mi)
	}
	clear(s.medias)
	onRemoved := s.onRemoved
	s.mu.Unlock()

	if onRemoved == nil {
		return
	}
	sortByID(removed)
	for _, mi := range removed {
		onRemoved(mi)
	}
}

// OnAdded sets a callback for when a media is added.
func (s *MediaSet) OnAdded(callback func(MediaInfo)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onAdded = callback
}

// OnRemoved sets a callback for when a media is removed.
func (s *MediaSet) OnRemoved(callback func(MediaInfo)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onRemoved = callback
}
