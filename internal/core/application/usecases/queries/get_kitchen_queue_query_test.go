package queries_test

import (
	"testing"

	"kitchen/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetKitchenQueueQuery_Valid(t *testing.T) {
	query := queries.NewGetKitchenQueueQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetKitchenQueueQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetKitchenQueueQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetKitchenQueueQueryIsNotConstructed)
}
