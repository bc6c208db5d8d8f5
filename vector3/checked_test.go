// SPDX-License-Identifier: MIT

package vector3_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvgeom/coords"
	"github.com/katalvlaran/lvgeom/vector3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckedDiv(t *testing.T) {
	v := vector3.New(2.0, 4.0, 6.0)

	got, err := v.CheckedDiv(2)
	require.NoError(t, err)
	assert.Equal(t, v.Div(2), got)

	_, err = v.CheckedDiv(0)
	assert.ErrorIs(t, err, vector3.ErrZeroDivisor)

	_, err = v.CheckedDiv(math.NaN())
	assert.ErrorIs(t, err, vector3.ErrNonFinite)

	_, err = vector3.New(math.Inf(1), 0, 0).CheckedDiv(2)
	assert.ErrorIs(t, err, vector3.ErrNonFinite)
}

func TestCheckedAngleTo(t *testing.T) {
	got, err := vector3.Up64().CheckedAngleTo(vector3.Right64())
	require.NoError(t, err)
	assert.Equal(t, vector3.Up64().AngleTo(vector3.Right64()), got)

	_, err = vector3.Origin32().CheckedAngleTo(vector3.Up32())
	assert.ErrorIs(t, err, vector3.ErrZeroMagnitude)

	_, err = vector3.Up64().CheckedAngleTo(vector3.New(math.NaN(), 0, 0))
	assert.ErrorIs(t, err, vector3.ErrNonFinite)
}

func TestCheckedNormalize(t *testing.T) {
	n, err := vector3.New(0, 3.0, 4.0).CheckedNormalize()
	require.NoError(t, err)
	assert.Equal(t, vector3.New(0, 0.6, 0.8), n)

	_, err = vector3.Origin64().CheckedNormalize()
	assert.ErrorIs(t, err, vector3.ErrZeroMagnitude)
}

func TestCheckedConversions(t *testing.T) {
	c := coords.NewCylindrical(2.0, 0, 5.0)
	v, err := vector3.CheckedFromCylindrical(&c)
	require.NoError(t, err)
	assert.Equal(t, vector3.FromCylindrical(c), v)

	bad := coords.NewCylindrical(math.Inf(1), 0, 0)
	_, err = vector3.CheckedFromCylindrical(&bad)
	assert.ErrorIs(t, err, vector3.ErrNonFinite)

	_, err = vector3.CheckedFromCylindrical[float64](nil)
	assert.ErrorIs(t, err, vector3.ErrNilCoordinate)

	s := coords.NewSpherical[float32](1, 0, 0)
	sv, err := vector3.CheckedFromSpherical(&s)
	require.NoError(t, err)
	assert.Equal(t, vector3.FromSpherical(s), sv)

	nanS := coords.NewSpherical[float32](1, float32(math.NaN()), 0)
	_, err = vector3.CheckedFromSpherical(&nanS)
	assert.ErrorIs(t, err, vector3.ErrNonFinite)

	_, err = vector3.CheckedFromSpherical[float32](nil)
	assert.ErrorIs(t, err, vector3.ErrNilCoordinate)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, vector3.Up64().Validate())
	err := vector3.New(0, math.NaN(), 0).Validate()
	assert.ErrorIs(t, err, vector3.ErrNonFinite)
	assert.Contains(t, err.Error(), "Validate")
}
