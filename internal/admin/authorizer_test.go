package admin

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexZinkM/share-a-care/internal/address"
)

type staticSource struct {
	addrs []string
	err   error
}

func (s staticSource) ListPublisherAddresses(context.Context) ([]string, error) {
	return s.addrs, s.err
}

func TestNewAuthorizer_PrimaryAlwaysMember(t *testing.T) {
	a, err := NewAuthorizer(primaryAddr, []string{otherAddr})
	require.NoError(t, err)
	assert.Equal(t, []string{primaryAddr, otherAddr}, a.AllowList())
	assert.Equal(t, primaryAddr, a.Primary())

	a, err = NewAuthorizer(primaryAddr, []string{address.Normalize(primaryAddr), "junk", otherAddr, otherAddr})
	require.NoError(t, err)
	assert.Equal(t, []string{address.Normalize(primaryAddr), otherAddr}, a.AllowList())

	_, err = NewAuthorizer("", nil)
	assert.ErrorIs(t, err, address.ErrInvalidAddress)
}

func TestClassify(t *testing.T) {
	a, err := NewAuthorizer(primaryAddr, nil)
	require.NoError(t, err)

	assert.True(t, a.Classify(address.Normalize(primaryAddr)))
	assert.False(t, a.Classify(""))
	assert.False(t, a.Classify(beefAddr))
}

func TestRefresh(t *testing.T) {
	a, err := NewAuthorizer(primaryAddr, nil)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, a.Refresh(ctx, staticSource{addrs: []string{beefAddr}}))
	assert.True(t, a.Classify(beefAddr))
	assert.True(t, a.Classify(primaryAddr), "primary survives refresh")

	err = a.Refresh(ctx, staticSource{err: errors.New("offline")})
	require.Error(t, err)
	assert.True(t, a.Classify(beefAddr), "previous list kept on error")
}

func TestAllowList_ReturnsCopy(t *testing.T) {
	a, err := NewAuthorizer(primaryAddr, nil)
	require.NoError(t, err)

	list := a.AllowList()
	list[0] = beefAddr
	assert.False(t, a.Classify(beefAddr))
}
