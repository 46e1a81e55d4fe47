package pantry

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// LotTestSuite provides a test suite for the Lot aggregate
type LotTestSuite struct {
	suite.Suite
}

// TestLotCreation tests lot creation scenarios
func (suite *LotTestSuite) TestLotCreation() {
	suite.Run("ValidLot_ShouldCreateSuccessfully", func() {
		// Arrange
		userID := uuid.New()
		expiry := time.Now().AddDate(0, 0, 14)

		// Act
		lot, err := NewLot(userID, "egg", 12, "each", &expiry)

		// Assert
		require.NoError(suite.T(), err)
		require.NotNil(suite.T(), lot)

		assert.NotEqual(suite.T(), uuid.Nil, lot.ID())
		assert.Equal(suite.T(), userID, lot.UserID())
		assert.Equal(suite.T(), "egg", lot.CanonicalName())
		assert.Equal(suite.T(), 12.0, lot.Quantity())
		assert.Equal(suite.T(), "each", lot.Unit())
		assert.Equal(suite.T(), LotStatusStocked, lot.Status())
		assert.Equal(suite.T(), int64(1), lot.Version())
		require.NotNil(suite.T(), lot.ExpiresAt())
		assert.Equal(suite.T(), expiry, *lot.ExpiresAt())

		// Check domain events
		events := lot.Events()
		require.Len(suite.T(), events, 1)
		created, ok := events[0].(LotCreatedEvent)
		assert.True(suite.T(), ok, "Should emit LotCreatedEvent")
		assert.Equal(suite.T(), lot.ID(), created.LotID)
		assert.Equal(suite.T(), userID, created.UserID)
	})

	suite.Run("NoExpiry_ShouldCreateSuccessfully", func() {
		lot, err := NewLot(uuid.New(), "flour", 2000, "g", nil)

		require.NoError(suite.T(), err)
		assert.Nil(suite.T(), lot.ExpiresAt())
	})

	suite.Run("ZeroQuantity_ShouldStartDepleted", func() {
		lot, err := NewLot(uuid.New(), "milk", 0, "ml", nil)

		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), LotStatusDepleted, lot.Status())
	})

	suite.Run("EmptyName_ShouldReturnError", func() {
		lot, err := NewLot(uuid.New(), "   ", 1, "each", nil)

		assert.Nil(suite.T(), lot)
		assert.Equal(suite.T(), ErrEmptyProductName, err)
	})

	suite.Run("NegativeQuantity_ShouldReturnError", func() {
		lot, err := NewLot(uuid.New(), "milk", -1, "ml", nil)

		assert.Nil(suite.T(), lot)
		assert.Equal(suite.T(), ErrNegativeQuantity, err)
	})

	suite.Run("EmptyUnit_ShouldReturnError", func() {
		lot, err := NewLot(uuid.New(), "milk", 500, "", nil)

		assert.Nil(suite.T(), lot)
		assert.Equal(suite.T(), ErrEmptyUnit, err)
	})
}

// TestLotDeduction tests stock deduction scenarios
func (suite *LotTestSuite) TestLotDeduction() {
	suite.Run("PartialDeduction_ShouldReduceQuantity", func() {
		// Arrange
		lot, err := NewLot(uuid.New(), "flour", 2000, "g", nil)
		require.NoError(suite.T(), err)
		lot.ClearEvents()

		// Act
		err = lot.Deduct(500)

		// Assert
		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), 1500.0, lot.Quantity())
		assert.Equal(suite.T(), LotStatusStocked, lot.Status())
		assert.Equal(suite.T(), int64(2), lot.Version())

		events := lot.Events()
		require.Len(suite.T(), events, 1)
		deducted, ok := events[0].(LotDeductedEvent)
		assert.True(suite.T(), ok, "Should emit LotDeductedEvent")
		assert.Equal(suite.T(), 500.0, deducted.Amount)
		assert.Equal(suite.T(), 1500.0, deducted.Remaining)
	})

	suite.Run("FullDeduction_ShouldDepleteLot", func() {
		lot, err := NewLot(uuid.New(), "milk", 500, "ml", nil)
		require.NoError(suite.T(), err)
		lot.ClearEvents()

		err = lot.Deduct(500)

		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), 0.0, lot.Quantity())
		assert.Equal(suite.T(), LotStatusDepleted, lot.Status())

		events := lot.Events()
		require.Len(suite.T(), events, 2)
		_, ok := events[1].(LotDepletedEvent)
		assert.True(suite.T(), ok, "Should emit LotDepletedEvent at zero")
	})

	suite.Run("Overdraw_ShouldRejectNotClamp", func() {
		lot, err := NewLot(uuid.New(), "milk", 500, "ml", nil)
		require.NoError(suite.T(), err)

		err = lot.Deduct(600)

		assert.Equal(suite.T(), ErrInsufficientQuantity, err)
		assert.Equal(suite.T(), 500.0, lot.Quantity(), "rejected draw must not mutate")
		assert.Equal(suite.T(), LotStatusStocked, lot.Status())
		assert.Equal(suite.T(), int64(1), lot.Version())
	})

	suite.Run("ZeroAmount_ShouldReturnError", func() {
		lot, err := NewLot(uuid.New(), "milk", 500, "ml", nil)
		require.NoError(suite.T(), err)

		assert.Equal(suite.T(), ErrInvalidDeduction, lot.Deduct(0))
		assert.Equal(suite.T(), ErrInvalidDeduction, lot.Deduct(-10))
		assert.Equal(suite.T(), 500.0, lot.Quantity())
	})
}

// TestLotRestock tests restocking scenarios
func (suite *LotTestSuite) TestLotRestock() {
	suite.Run("Restock_ShouldIncreaseQuantity", func() {
		lot, err := NewLot(uuid.New(), "milk", 0, "ml", nil)
		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), LotStatusDepleted, lot.Status())

		err = lot.Restock(500)

		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), 500.0, lot.Quantity())
		assert.Equal(suite.T(), LotStatusStocked, lot.Status())
	})

	suite.Run("InvalidAmount_ShouldReturnError", func() {
		lot, err := NewLot(uuid.New(), "milk", 500, "ml", nil)
		require.NoError(suite.T(), err)

		assert.Equal(suite.T(), ErrInvalidRestock, lot.Restock(0))
		assert.Equal(suite.T(), ErrInvalidRestock, lot.Restock(-5))
	})
}

// TestLotRestore tests repository reconstruction
func (suite *LotTestSuite) TestLotRestore() {
	suite.Run("Restore_ShouldNotRaiseEvents", func() {
		id, userID := uuid.New(), uuid.New()
		now := time.Now()

		lot := RestoreLot(id, userID, 3, "butter", 250, "g", nil, now, now)

		assert.Equal(suite.T(), id, lot.ID())
		assert.Equal(suite.T(), int64(3), lot.Version())
		assert.Equal(suite.T(), LotStatusStocked, lot.Status())
		assert.Empty(suite.T(), lot.Events())
	})

	suite.Run("RestoreZeroQuantity_ShouldBeDepleted", func() {
		now := time.Now()
		lot := RestoreLot(uuid.New(), uuid.New(), 5, "butter", 0, "g", nil, now, now)

		assert.Equal(suite.T(), LotStatusDepleted, lot.Status())
	})
}

// TestLotTestSuite runs the lot test suite
func TestLotTestSuite(t *testing.T) {
	suite.Run(t, new(LotTestSuite))
}
