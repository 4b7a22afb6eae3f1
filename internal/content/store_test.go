package content

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestStore_Reload(t *testing.T) {
	title := "First"
	fail := false
	load := func() (*Catalog, error) {
		if fail {
			return nil, errors.New("broken yaml")
		}
		return New([]CaseStudy{{Slug: "s", Title: title}}, nil)
	}

	s, err := NewStore(load, discardLogger())
	require.NoError(t, err)
	assert.Equal(t, uint64(1), s.Version())
	assert.False(t, s.LoadedAt().IsZero())
	before := s.Catalog()

	title = "Second"
	require.NoError(t, s.Reload())
	assert.Equal(t, uint64(2), s.Version())
	got, err := s.Catalog().Study("s")
	require.NoError(t, err)
	assert.Equal(t, "Second", got.Title)

	// Old snapshots are unaffected by the swap.
	old, err := before.Study("s")
	require.NoError(t, err)
	assert.Equal(t, "First", old.Title)

	fail = true
	err = s.Reload()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken yaml")
	assert.Equal(t, uint64(2), s.Version())
	got, err = s.Catalog().Study("s")
	require.NoError(t, err)
	assert.Equal(t, "Second", got.Title)
}

func TestNewStore_InitialFailure(t *testing.T) {
	_, err := NewStore(func() (*Catalog, error) { return nil, errors.New("boom") }, discardLogger())
	assert.EqualError(t, err, "load content: boom")
}
