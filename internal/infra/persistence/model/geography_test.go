package model

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeography_Scan(t *testing.T) {
	var g Geography

	require.NoError(t, g.Scan("SRID=4326;POINT(1 2)"))
	assert.Equal(t, Geography{Text: "SRID=4326;POINT(1 2)", Valid: true}, g)

	require.NoError(t, g.Scan([]byte("POLYGON((0 0,1 0,1 1,0 0))")))
	assert.True(t, g.Valid)

	require.NoError(t, g.Scan(nil))
	assert.Equal(t, Geography{}, g)

	assert.Error(t, g.Scan(42))
}

func TestGeography_GormValue(t *testing.T) {
	expr := NewGeography("SRID=4326;POINT(1 2)").GormValue(context.Background(), nil)
	assert.Equal(t, "ST_GeogFromText(?)", expr.SQL)
	assert.Equal(t, []any{"SRID=4326;POINT(1 2)"}, expr.Vars)

	assert.Equal(t, "NULL", NewGeography("").GormValue(context.Background(), nil).SQL)
}

func TestGeography_Value(t *testing.T) {
	v, err := NewGeography("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = NewGeography("POINT(1 2)").Value()
	require.NoError(t, err)
	assert.Equal(t, "POINT(1 2)", v)
}
