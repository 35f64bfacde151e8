package queries_test

import (
	"testing"

	"fleet/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/require"
)

func TestGetFreeVehiclesQuery_Validate(t *testing.T) {
	t.Run("constructed query is valid", func(t *testing.T) {
		query := queries.NewGetFreeVehiclesQuery()
		require.NoError(t, query.Validate())
	})

	t.Run("zero value query fails validation", func(t *testing.T) {
		var query queries.GetFreeVehiclesQuery
		require.ErrorIs(t, query.Validate(), queries.ErrGetFreeVehiclesQueryIsNotConstructed)
	})
}
