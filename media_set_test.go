package media

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thesyncim/pdrawmedia/pdraw"
)

func ids(medias []MediaInfo) []uint32 {
	out := make([]uint32, 0, len(medias))
	for _, mi := range medias {
		out = append(out, mi.MediaID())
	}
	return out
}

func TestMediaSetAddRemove(t *testing.T) {
	s := NewMediaSet()

	var added, removed []MediaInfo
	s.OnAdded(func(mi MediaInfo) { added = append(added, mi) })
	s.OnRemoved(func(mi MediaInfo) { removed = append(removed, mi) })

	_, err := s.Add(yuvRecord(3, pdraw.YUVFormatI420))
	require.NoError(t, err)
	_, err = s.Add(h264Record(1, pdraw.H264FormatAVCC))
	require.NoError(t, err)

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []uint32{1, 3}, ids(s.List()))
	assert.Equal(t, []uint32{3, 1}, ids(added))
	assert.Equal(t, MediaKindH264Video, s.Get(1).Kind())
	assert.Nil(t, s.Get(2))

	assert.True(t, s.Remove(3))
	assert.False(t, s.Remove(3))
	assert.Equal(t, []uint32{3}, ids(removed))
	assert.Equal(t, 1, s.Len())
}

func TestMediaSetSkipsUnsupported(t *testing.T) {
	s := NewMediaSet()
	called := false
	s.OnAdded(func(MediaInfo) { called = true })

	mi, err := s.Add(h265Record(2))
	assert.ErrorIs(t, err, ErrNotSupported)
	assert.Nil(t, mi)
	assert.False(t, called)
	assert.Equal(t, 0, s.Len())

	_, err = s.Add(nil)
	assert.ErrorIs(t, err, ErrInvalidMediaInfo)
}

func TestMediaSetReplace(t *testing.T) {
	s := NewMediaSet()
	var events []string
	s.OnAdded(func(mi MediaInfo) { events = append(events, "added "+mi.Kind().String()) })
	s.OnRemoved(func(mi MediaInfo) { events = append(events, "removed "+mi.Kind().String()) })

	_, err := s.Add(h264Record(1, pdraw.H264FormatAVCC))
	require.NoError(t, err)
	_, err = s.Add(yuvRecord(1, pdraw.YUVFormatNV12))
	require.NoError(t, err)

	assert.Equal(t, []string{"added h264", "removed h264", "added yuv"}, events)
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, MediaKindYUVVideo, s.Get(1).Kind())
}

func TestMediaSetClear(t *testing.T) {
	s := NewMediaSet()
	for _, id := range []uint32{5, 2, 9} {
		_, err := s.Add(yuvRecord(id, pdraw.YUVFormatI420))
		require.NoError(t, err)
	}

	var removed []MediaInfo
	s.OnRemoved(func(mi MediaInfo) { removed = append(removed, mi) })
	s.Clear()

	assert.Equal(t, 0, s.Len())
	assert.Equal(t, []uint32{2, 5, 9}, ids(removed))
}

func TestMediaSetConcurrent(t *testing.T) {
	s := NewMediaSet()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(id uint32) {
			defer wg.Done()
			_, _ = s.Add(h264Record(id, pdraw.H264FormatByteStream))
			_ = s.List()
			if id%2 == 0 {
				s.Remove(id)
			}
		}(uint32(i))
	}
	wg.Wait()

	assert.Equal(t, 16, s.Len())
	for _, mi := range s.List() {
		assert.Equal(t, uint32(1), mi.MediaID()%2)
	}
}

func TestMediaSetZeroValue(t *testing.T) {
	var s MediaSet
	assert.Nil(t, s.Get(1))
	assert.Empty(t, s.List())

	_, err := s.Add(yuvRecord(1, pdraw.YUVFormatI420))
	require.NoError(t, err)
	assert.Equal(t, 1, s.Len())
	assert.True(t, s.Remove(1))
	s.Clear()
	assert.Equal(t, 0, s.Len())
}

func TestMediaSetConcurrentReplace(t *testing.T) {
	s := NewMediaSet()

	var current MediaInfo
	var stale int
	s.OnRemoved(func(mi MediaInfo) {
		if mi != current {
			stale++
		}
	})
	s.OnAdded(func(mi MediaInfo) { current = mi })

	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.Add(yuvRecord(7, pdraw.YUVFormatNV12))
		}()
	}
	wg.Wait()

	assert.Zero(t, stale)
	assert.True(t, current == s.Get(7), "last added media differs from stored one")
}
