package load_test

import (
	"fmt"
	"testing"

	"freight/internal/core/domain/model/load"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(load.StatusUnknown))
		assert.Equal(t, 1, int(load.StatusPosted))
		assert.Equal(t, 2, int(load.StatusMatched))
		assert.Equal(t, 3, int(load.StatusAssigned))
		assert.Equal(t, 4, int(load.StatusInTransit))
		assert.Equal(t, 5, int(load.StatusDelivered))
		assert.Equal(t, 6, int(load.StatusClosed))
		assert.Equal(t, 7, int(load.StatusCancelled))
	})

	t.Run("should have distinct values", func(t *testing.T) {
		statuses := []load.Status{
			load.StatusUnknown,
			load.StatusPosted,
			load.StatusMatched,
			load.StatusAssigned,
			load.StatusInTransit,
			load.StatusDelivered,
			load.StatusClosed,
			load.StatusCancelled,
		}

		for i, status1 := range statuses {
			for j, status2 := range statuses {
				if i != j {
					assert.NotEqual(t, status1, status2,
						"statuses at indices %d and %d should be different", i, j)
				}
			}
		}
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []load.Status{
			load.StatusPosted,
			load.StatusMatched,
			load.StatusAssigned,
			load.StatusInTransit,
			load.StatusDelivered,
			load.StatusClosed,
			load.StatusCancelled,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				err := status.Validate()
				require.NoError(t, err)
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := load.StatusUnknown.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "status is invalid")
		assert.Contains(t, err.Error(), "0 is not a valid status")
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		invalidStatuses := []load.Status{
			load.Status(-1),
			load.Status(8),
			load.Status(100),
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid status", int(status)))
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return wire representation for valid statuses", func(t *testing.T) {
		testCases := []struct {
			status   load.Status
			expected string
		}{
			{load.StatusPosted, "POSTED"},
			{load.StatusMatched, "MATCHED"},
			{load.StatusAssigned, "ASSIGNED"},
			{load.StatusInTransit, "IN_TRANSIT"},
			{load.StatusDelivered, "DELIVERED"},
			{load.StatusClosed, "CLOSED"},
			{load.StatusCancelled, "CANCELLED"},
		}

		for _, tc := range testCases {
			t.Run(fmt.Sprintf("should return %s for %d", tc.expected, int(tc.status)), func(t *testing.T) {
				assert.Equal(t, tc.expected, tc.status.String())
			})
		}
	})

	t.Run("should return UNKNOWN for invalid statuses", func(t *testing.T) {
		invalidStatuses := []load.Status{
			load.StatusUnknown,
			load.Status(-1),
			load.Status(8),
		}

		for _, status := range invalidStatuses {
			assert.Equal(t, "UNKNOWN", status.String())
		}
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse every wire representation", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected load.Status
		}{
			{"POSTED", load.StatusPosted},
			{"MATCHED", load.StatusMatched},
			{"ASSIGNED", load.StatusAssigned},
			{"IN_TRANSIT", load.StatusInTransit},
			{"DELIVERED", load.StatusDelivered},
			{"CLOSED", load.StatusClosed},
			{"CANCELLED", load.StatusCancelled},
		}

		for _, tc := range testCases {
			t.Run(fmt.Sprintf("should parse %s", tc.input), func(t *testing.T) {
				status, err := load.StatusFromString(tc.input)
				require.NoError(t, err)
				assert.Equal(t, tc.expected, status)
			})
		}
	})

	t.Run("should reject unknown strings", func(t *testing.T) {
		invalidInputs := []string{"", "UNKNOWN", "posted", "Posted", "SHIPPED"}

		for _, input := range invalidInputs {
			t.Run(fmt.Sprintf("should reject %q", input), func(t *testing.T) {
				status, err := load.StatusFromString(input)

				require.Error(t, err)
				assert.Equal(t, load.StatusUnknown, status)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
			})
		}
	})

	t.Run("should round-trip with String", func(t *testing.T) {
		for _, status := range []load.Status{
			load.StatusPosted,
			load.StatusMatched,
			load.StatusAssigned,
			load.StatusInTransit,
			load.StatusDelivered,
			load.StatusClosed,
			load.StatusCancelled,
		} {
			parsed, err := load.StatusFromString(status.String())
			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	t.Run("should report Closed and Cancelled as terminal", func(t *testing.T) {
		assert.True(t, load.StatusClosed.IsTerminal())
		assert.True(t, load.StatusCancelled.IsTerminal())
	})

	t.Run("should report active statuses as non-terminal", func(t *testing.T) {
		activeStatuses := []load.Status{
			load.StatusPosted,
			load.StatusMatched,
			load.StatusAssigned,
			load.StatusInTransit,
			load.StatusDelivered,
		}

		for _, status := range activeStatuses {
			assert.False(t, status.IsTerminal(), "%s should not be terminal", status)
		}
	})
}

func TestMode(t *testing.T) {
	t.Run("should parse FULL and PARTIAL", func(t *testing.T) {
		full, err := load.ModeFromString("FULL")
		require.NoError(t, err)
		assert.Equal(t, load.ModeFull, full)

		partial, err := load.ModeFromString("PARTIAL")
		require.NoError(t, err)
		assert.Equal(t, load.ModePartial, partial)
	})

	t.Run("should reject unknown mode strings", func(t *testing.T) {
		for _, input := range []string{"", "full", "HALF", "UNKNOWN"} {
			mode, err := load.ModeFromString(input)

			require.Error(t, err)
			assert.Equal(t, load.ModeUnknown, mode)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		}
	})

	t.Run("should validate defined modes only", func(t *testing.T) {
		require.NoError(t, load.ModeFull.Validate())
		require.NoError(t, load.ModePartial.Validate())
		require.Error(t, load.ModeUnknown.Validate())
		require.Error(t, load.Mode(3).Validate())
	})

	t.Run("should return wire representation", func(t *testing.T) {
		assert.Equal(t, "FULL", load.ModeFull.String())
		assert.Equal(t, "PARTIAL", load.ModePartial.String())
		assert.Equal(t, "UNKNOWN", load.ModeUnknown.String())
	})
}
