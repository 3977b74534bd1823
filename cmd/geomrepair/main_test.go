package main

import (
	"testing"

	"safemap/internal/usecase"

	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func TestDependencyGraph(t *testing.T) {
	err := fx.ValidateApp(
		injectRepair(),
		fx.Invoke(func(usecase.GeometryRepairUsecase) {}),
	)

	require.NoError(t, err)
}
