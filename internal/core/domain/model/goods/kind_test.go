package goods_test

import (
	"fmt"
	"testing"

	"granary/internal/core/domain/model/goods"
	"granary/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(goods.Unknown))
		assert.Equal(t, 1, int(goods.Buckwheat))
		assert.Equal(t, 2, int(goods.Rice))
		assert.Equal(t, 3, int(goods.Millet))
		assert.Equal(t, 4, int(goods.Peas))
		assert.Equal(t, 5, int(goods.Bulgur))
	})

	t.Run("All should list kinds in declaration order", func(t *testing.T) {
		assert.Equal(t,
			[]goods.Kind{goods.Buckwheat, goods.Rice, goods.Millet, goods.Peas, goods.Bulgur},
			goods.All())
	})
}

func TestKind_Validate(t *testing.T) {
	t.Run("should accept every listed kind", func(t *testing.T) {
		for _, kind := range goods.All() {
			require.NoError(t, kind.Validate(), kind.String())
		}
	})

	t.Run("should reject invalid kinds", func(t *testing.T) {
		for _, kind := range []goods.Kind{goods.Unknown, goods.Kind(-1), goods.Kind(6), goods.Kind(100)} {
			t.Run(fmt.Sprintf("kind %d", int(kind)), func(t *testing.T) {
				err := kind.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid goods kind", int(kind)))
			})
		}
	})
}

func TestKind_String(t *testing.T) {
	testCases := []struct {
		kind     goods.Kind
		expected string
	}{
		{goods.Buckwheat, "BUCKWHEAT"},
		{goods.Rice, "RICE"},
		{goods.Millet, "MILLET"},
		{goods.Peas, "PEAS"},
		{goods.Bulgur, "BULGUR"},
		{goods.Unknown, "UNKNOWN"},
		{goods.Kind(42), "UNKNOWN"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.kind.String())
		})
	}
}

func TestParseKind(t *testing.T) {
	t.Run("should round trip every code", func(t *testing.T) {
		for _, kind := range goods.All() {
			parsed, err := goods.ParseKind(kind.String())

			require.NoError(t, err)
			assert.Equal(t, kind, parsed)
		}
	})

	t.Run("should ignore case and surrounding spaces", func(t *testing.T) {
		parsed, err := goods.ParseKind("  bulgur ")

		require.NoError(t, err)
		assert.Equal(t, goods.Bulgur, parsed)
	})

	t.Run("should reject unknown codes", func(t *testing.T) {
		for _, code := range []string{"", "UNKNOWN", "oats"} {
			parsed, err := goods.ParseKind(code)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Equal(t, goods.Unknown, parsed)
		}
	})
}
