package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackagesForService(t *testing.T) {
	c := New()

	full := c.PackagesForService("goi-tiem-chung-tron-goi")
	require.Len(t, full, 3)
	for _, p := range full {
		assert.Equal(t, "goi-tiem-chung-tron-goi", p.ServiceID)
	}

	assert.Empty(t, c.PackagesForService("no-such-service"))
}

func TestPackageBelongs(t *testing.T) {
	c := New()

	assert.True(t, c.PackageBelongs("goi-tiem-chung-tron-goi", "co-ban"))
	assert.False(t, c.PackageBelongs("tiem-chung-ca-the-hoa", "co-ban"))
	assert.False(t, c.PackageBelongs("goi-tiem-chung-tron-goi", "no-such-package"))
}

func TestPriceOf(t *testing.T) {
	c := New()

	price, ok := c.PriceOf("co-ban")
	require.True(t, ok)
	assert.Equal(t, int64(1_500_000), price)

	price, ok = c.PriceOf("unknown")
	assert.False(t, ok)
	assert.Zero(t, price)
}

func TestFacilityLookup(t *testing.T) {
	c := New()

	f, ok := c.Facility("f1")
	require.True(t, ok)
	assert.Equal(t, "VacTrack Trung tâm y tế Hà Nội", f.Name)

	_, ok = c.Facility("f99")
	assert.False(t, ok)
}

func TestDefaultSlotsCachedPerDateFacilityPair(t *testing.T) {
	c := New()

	a := c.DefaultSlots("2026-09-15", "f1")
	b := c.DefaultSlots("2026-09-15", "f1")
	require.Len(t, a, 12)
	assert.Equal(t, a, b)

	other := c.DefaultSlots("2026-09-16", "f1")
	assert.Len(t, other, 12)
}
