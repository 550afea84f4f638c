package shipment_test

import (
	"testing"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAddress(t *testing.T) shipment.Address {
	t.Helper()
	address, err := shipment.NewAddress("Main 1", "Amsterdam", "00000")
	require.NoError(t, err)
	return address
}

func validItems(t *testing.T) []shipment.Item {
	t.Helper()
	first, err := shipment.NewItem("Widget", 2)
	require.NoError(t, err)
	second, err := shipment.NewItem("Gadget", 1)
	require.NoError(t, err)
	return []shipment.Item{first, second}
}

func newTestShipment(t *testing.T) *shipment.Shipment {
	t.Helper()
	s, err := shipment.NewShipment(
		kernel.NewUUID(),
		shipment.NewNumber(),
		"O-1",
		validAddress(t),
		"DHL",
		"a@b.com",
		validItems(t),
		time.Now().UTC(),
	)
	require.NoError(t, err)
	return s
}

func TestNewShipment(t *testing.T) {
	t.Run("creates shipment with Created status and no update time", func(t *testing.T) {
		createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

		s, err := shipment.NewShipment(
			kernel.NewUUID(),
			"96385074",
			"O-1",
			validAddress(t),
			"DHL",
			"a@b.com",
			validItems(t),
			createdAt,
		)

		require.NoError(t, err)
		assert.Equal(t, "96385074", s.Number())
		assert.Equal(t, "O-1", s.OrderID())
		assert.Equal(t, "DHL", s.Carrier())
		assert.Equal(t, "a@b.com", s.ReceiverEmail())
		assert.Equal(t, shipment.Created, s.Status())
		assert.Equal(t, createdAt, s.CreatedAt())
		assert.Nil(t, s.UpdatedAt())
		require.NoError(t, s.Validate())
	})

	t.Run("preserves item insertion order", func(t *testing.T) {
		s := newTestShipment(t)

		items := s.Items()
		require.Len(t, items, 2)
		assert.Equal(t, "Widget", items[0].Product())
		assert.Equal(t, 2, items[0].Quantity())
		assert.Equal(t, "Gadget", items[1].Product())
		assert.Equal(t, 1, items[1].Quantity())
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		id := kernel.NewUUID()
		address := validAddress(t)
		items := validItems(t)
		now := time.Now().UTC()

		cases := []struct {
			name  string
			build func() (*shipment.Shipment, error)
		}{
			{"empty number", func() (*shipment.Shipment, error) {
				return shipment.NewShipment(id, "", "O-1", address, "DHL", "a@b.com", items, now)
			}},
			{"empty orderId", func() (*shipment.Shipment, error) {
				return shipment.NewShipment(id, "96385074", "", address, "DHL", "a@b.com", items, now)
			}},
			{"unconstructed address", func() (*shipment.Shipment, error) {
				return shipment.NewShipment(id, "96385074", "O-1", shipment.Address{}, "DHL", "a@b.com", items, now)
			}},
			{"empty carrier", func() (*shipment.Shipment, error) {
				return shipment.NewShipment(id, "96385074", "O-1", address, "", "a@b.com", items, now)
			}},
			{"empty receiverEmail", func() (*shipment.Shipment, error) {
				return shipment.NewShipment(id, "96385074", "O-1", address, "DHL", "", items, now)
			}},
			{"no items", func() (*shipment.Shipment, error) {
				return shipment.NewShipment(id, "96385074", "O-1", address, "DHL", "a@b.com", nil, now)
			}},
			{"unconstructed item", func() (*shipment.Shipment, error) {
				return shipment.NewShipment(id, "96385074", "O-1", address, "DHL", "a@b.com", []shipment.Item{{}}, now)
			}},
			{"zero createdAt", func() (*shipment.Shipment, error) {
				return shipment.NewShipment(id, "96385074", "O-1", address, "DHL", "a@b.com", items, time.Time{})
			}},
			{"invalid id", func() (*shipment.Shipment, error) {
				return shipment.NewShipment(kernel.UUID{}, "96385074", "O-1", address, "DHL", "a@b.com", items, now)
			}},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				s, err := tc.build()
				require.Error(t, err)
				assert.Nil(t, s)
			})
		}
	})
}

func TestRestoreShipment(t *testing.T) {
	t.Run("restores full persisted state", func(t *testing.T) {
		createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		updatedAt := createdAt.Add(2 * time.Hour)

		s, err := shipment.RestoreShipment(
			kernel.NewUUID(),
			"96385074",
			"O-1",
			validAddress(t),
			"DHL",
			"a@b.com",
			validItems(t),
			shipment.Dispatched,
			createdAt,
			&updatedAt,
		)

		require.NoError(t, err)
		assert.Equal(t, shipment.Dispatched, s.Status())
		require.NotNil(t, s.UpdatedAt())
		assert.Equal(t, updatedAt, *s.UpdatedAt())
	})

	t.Run("rejects invalid persisted status", func(t *testing.T) {
		_, err := shipment.RestoreShipment(
			kernel.NewUUID(),
			"96385074",
			"O-1",
			validAddress(t),
			"DHL",
			"a@b.com",
			validItems(t),
			shipment.Unknown,
			time.Now().UTC(),
			nil,
		)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestShipment_ChangeStatus(t *testing.T) {
	t.Run("overwrites status and stamps update time", func(t *testing.T) {
		s := newTestShipment(t)
		at := time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC)

		require.NoError(t, s.ChangeStatus(shipment.Dispatched, at))

		assert.Equal(t, shipment.Dispatched, s.Status())
		require.NotNil(t, s.UpdatedAt())
		assert.Equal(t, at, *s.UpdatedAt())
	})

	t.Run("any status is reachable from any other", func(t *testing.T) {
		s := newTestShipment(t)
		sequence := []shipment.Status{
			shipment.Delivered,
			shipment.Created,
			shipment.Cancelled,
			shipment.InTransit,
			shipment.Cancelled,
		}

		for _, next := range sequence {
			require.NoError(t, s.ChangeStatus(next, time.Now().UTC()))
			assert.Equal(t, next, s.Status())
		}
	})

	t.Run("re-applying the same status still updates the timestamp", func(t *testing.T) {
		s := newTestShipment(t)
		first := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
		second := first.Add(time.Hour)

		require.NoError(t, s.ChangeStatus(shipment.Processing, first))
		require.NoError(t, s.ChangeStatus(shipment.Processing, second))

		require.NotNil(t, s.UpdatedAt())
		assert.Equal(t, second, *s.UpdatedAt())
	})

	t.Run("rejects status outside the enumeration", func(t *testing.T) {
		s := newTestShipment(t)

		err := s.ChangeStatus(shipment.Status(42), time.Now().UTC())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, shipment.Created, s.Status())
		assert.Nil(t, s.UpdatedAt())
	})
}

func TestShipment_Validate(t *testing.T) {
	t.Run("constructed shipment is valid", func(t *testing.T) {
		require.NoError(t, newTestShipment(t).Validate())
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var s shipment.Shipment
		require.ErrorIs(t, s.Validate(), shipment.ErrShipmentIsNotConstructed)
	})

	t.Run("nil shipment is not constructed", func(t *testing.T) {
		var s *shipment.Shipment
		require.ErrorIs(t, s.Validate(), shipment.ErrShipmentIsNotConstructed)
	})
}

func TestShipment_IsEqual(t *testing.T) {
	first := newTestShipment(t)
	second := newTestShipment(t)

	assert.True(t, first.IsEqual(first))
	assert.False(t, first.IsEqual(second))
	assert.False(t, first.IsEqual(nil))
}

func TestShipment_ItemsAreCopied(t *testing.T) {
	s := newTestShipment(t)

	items := s.Items()
	replacement, err := shipment.NewItem("Tampered", 9)
	require.NoError(t, err)
	items[0] = replacement

	assert.Equal(t, "Widget", s.Items()[0].Product())
}
