package readstore

import (
	"context"

	"coliving-payments/internal/infra"
	sqlc "coliving-payments/internal/infra/sqlc/generated"
	"coliving-payments/internal/pkg/pgconv"
	"coliving-payments/internal/usecase/shared"

	"github.com/google/uuid"
)

type CatalogReadQueries interface {
	GetPropertyByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Properties, error)
	GetRoomByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Rooms, error)
}

type CatalogReadStore struct {
	queries CatalogReadQueries
}

func NewCatalogReadStore(queries CatalogReadQueries) *CatalogReadStore {
	return &CatalogReadStore{
		queries: queries,
	}
}

func (r *CatalogReadStore) FindPropertyByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*shared.PropertySnapshot, error) {
	row, err := r.queries.GetPropertyByID(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("property not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find property by ID", err)
	}

	return &shared.PropertySnapshot{
		ID:                   row.ID,
		Name:                 row.Name,
		PriceMinor:           row.PriceMinor,
		SecurityDepositMinor: row.SecurityDepositMinor,
	}, nil
}

func (r *CatalogReadStore) FindRoomByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*shared.RoomSnapshot, error) {
	row, err := r.queries.GetRoomByID(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by ID", err)
	}

	return &shared.RoomSnapshot{
		ID:                   row.ID,
		PropertyID:           row.PropertyID,
		Name:                 row.Name,
		PriceMinor:           row.PriceMinor,
		SecurityDepositMinor: row.SecurityDepositMinor,
		TotalBeds:            row.TotalBeds,
		AvailableBeds:        row.AvailableBeds,
	}, nil
}
