package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDimensFallback(t *testing.T) {
	d := Dimens{FirstLineSize: 30}
	assert.Equal(t, 30, d.Dimension(FirstLineSize))
	assert.Equal(t, DefaultDimens[SecondLineSize], d.Dimension(SecondLineSize))
	assert.Equal(t, 0, d.Dimension(Dimen("unknown")))

	var empty Dimens
	assert.Equal(t, DefaultDimens[BadgePaddingH], empty.Dimension(BadgePaddingH))
}

func TestDimensMerge(t *testing.T) {
	base := Dimens{FirstLineSize: 30, SlotMarginTop: 5}
	merged := base.Merge(Dimens{SlotMarginTop: 7})
	assert.Equal(t, 30, merged.Dimension(FirstLineSize))
	assert.Equal(t, 7, merged.Dimension(SlotMarginTop))
	assert.Equal(t, 5, base.Dimension(SlotMarginTop), "merge must not modify the receiver")
}

func TestFaceMeasure(t *testing.T) {
	face, err := NewFace(nil)
	require.NoError(t, err)
	defer face.Close()

	assert.Zero(t, face.Measure("", 14, Default))
	assert.Zero(t, face.Measure("abc", 0, Default))

	short := face.Measure("Blue", 14, Default)
	long := face.Measure("BlueSky", 14, Default)
	assert.Positive(t, short)
	assert.Greater(t, long, short)

	assert.Greater(t, face.Measure("BlueSky", 28, Default), long, "larger size measures wider")
	assert.Equal(t, long, face.Measure("BlueSky", 14, Default), "memoized result is stable")
}

func TestFaceDimensions(t *testing.T) {
	face, err := NewFace(Dimens{BadgeTextSize: 12})
	require.NoError(t, err)
	assert.Equal(t, 12, face.Dimension(BadgeTextSize))
	assert.Equal(t, DefaultDimens[FirstLineSize], face.Dimension(FirstLineSize))
}

func TestTypeface(t *testing.T) {
	assert.Equal(t, 400, Default.Weight())
	assert.Equal(t, 500, Medium.Weight())
	assert.Equal(t, "Medium", Medium.String())
	assert.True(t, Known(BadgeRadius))
	assert.False(t, Known(Dimen("nope")))
}
