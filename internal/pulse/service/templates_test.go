package service

import (
	"testing"

	"github.com/julien-sketch/progressive-pulse/internal/pulse/domain"
	"github.com/stretchr/testify/require"
)

func TestTemplateCatalogCoversAllCategories(t *testing.T) {
	t.Parallel()

	realEstate, err := TemplateFor(domain.CategoryRealEstate)
	require.NoError(t, err)
	require.Len(t, realEstate.Steps, 8)
	require.Equal(t, "Mandat non confirmé", realEstate.InitialStatus)
	require.Equal(t, "Mandat signé", realEstate.Steps[0])

	training, err := TemplateFor(domain.CategoryTraining)
	require.NoError(t, err)
	require.Len(t, training.Steps, 6)
	require.Equal(t, "Inscription en attente", training.InitialStatus)
}
