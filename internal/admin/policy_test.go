package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexZinkM/share-a-care/internal/address"
)

const (
	primaryAddr = "0xAAAA000000000000000000000000000000AAAA00"
	beefAddr    = "0xBEEF00000000000000000000000000000000BEEF"
	otherAddr   = "0x616A2336eC93ACdd1caA8CA17732285F34331bf0"
)

func TestIsAdmin(t *testing.T) {
	list := []string{primaryAddr, otherAddr}

	assert.True(t, IsAdmin(primaryAddr, list))
	assert.True(t, IsAdmin(address.Normalize(primaryAddr), list))
	assert.True(t, IsAdmin("0x616A2336EC93ACDD1CAA8CA17732285F34331BF0", list))
	assert.False(t, IsAdmin(beefAddr, list))
	assert.False(t, IsAdmin("", list))
	assert.False(t, IsAdmin(primaryAddr, nil))
	assert.False(t, IsAdmin(" "+address.Normalize(primaryAddr), list))
	assert.False(t, IsAdmin(primaryAddr+" ", list))
}

func TestIsAdmin_IgnoresFormat(t *testing.T) {
	// membership is a plain case-insensitive match and does not validate length
	list := []string{"0xAAAA000000000000000000000000000000AAAA"}
	assert.True(t, IsAdmin("0xaaaa000000000000000000000000000000aaaa", list))
}

func TestAddPublisher(t *testing.T) {
	list := []string{primaryAddr}

	next, err := AddPublisher(list, beefAddr)
	require.NoError(t, err)
	assert.Equal(t, []string{primaryAddr, beefAddr}, next)
	assert.Equal(t, []string{primaryAddr}, list, "input must not be mutated")

	_, err = AddPublisher(next, address.Normalize(beefAddr))
	assert.ErrorIs(t, err, ErrDuplicatePublisher)

	_, err = AddPublisher(list, "0xBEEF")
	assert.ErrorIs(t, err, address.ErrInvalidAddress)
}

func TestRemovePublisher(t *testing.T) {
	list := []string{primaryAddr, beefAddr, otherAddr}

	next, err := RemovePublisher(list, primaryAddr, address.Normalize(beefAddr))
	require.NoError(t, err)
	assert.Equal(t, []string{primaryAddr, otherAddr}, next)
	assert.Len(t, list, 3, "input must not be mutated")

	_, err = RemovePublisher(next, primaryAddr, beefAddr)
	assert.ErrorIs(t, err, ErrPublisherNotFound)
}

func TestRemovePublisher_PrimaryAlwaysRejected(t *testing.T) {
	lists := [][]string{
		{primaryAddr},
		{primaryAddr, address.Normalize(primaryAddr)},
		{beefAddr},
		nil,
	}
	for _, list := range lists {
		_, err := RemovePublisher(list, primaryAddr, primaryAddr)
		assert.ErrorIs(t, err, ErrCannotRemovePrimary)

		_, err = RemovePublisher(list, primaryAddr, address.Normalize(primaryAddr))
		assert.ErrorIs(t, err, ErrCannotRemovePrimary)
	}
}

func TestAddThenRemove_RestoresMembership(t *testing.T) {
	list := []string{primaryAddr, otherAddr}

	added, err := AddPublisher(list, beefAddr)
	require.NoError(t, err)

	removed, err := RemovePublisher(added, primaryAddr, address.Normalize(beefAddr))
	require.NoError(t, err)
	assert.ElementsMatch(t, list, removed)
}

func TestRemovePublisher_RemovesCaseVariants(t *testing.T) {
	list := []string{primaryAddr, beefAddr, address.Normalize(beefAddr)}

	next, err := RemovePublisher(list, primaryAddr, beefAddr)
	require.NoError(t, err)
	assert.Equal(t, []string{primaryAddr}, next)
}
