package queries_test

import (
	"testing"

	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetActiveBookingsQuery_Valid(t *testing.T) {
	query, err := queries.NewGetActiveBookingsQuery(adminAt(t, "HYD"))
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestNewGetActiveBookingsQuery_InvalidActor(t *testing.T) {
	_, err := queries.NewGetActiveBookingsQuery(auth.Context{})
	require.Error(t, err)
	assert.ErrorIs(t, err, auth.ErrContextIsNotConstructed)
}

func TestGetActiveBookingsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetActiveBookingsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetActiveBookingsQueryIsNotConstructed)
}
