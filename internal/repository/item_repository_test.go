package repository

import (
	"testing"

	"erp_backoffice/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestItemRepository_GetByItemID(t *testing.T) {
	db := setupTestDB(t)
	seeded := seedItem(t, db)
	repo := NewItemRepository(db)

	item, err := repo.GetByItemID("20012020")
	require.NoError(t, err)
	require.Equal(t, seeded.ID, item.ID)
	require.Equal(t, 2.4632, item.StandarCost)

	_, err = repo.GetByItemID("unknown")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestItemRepository_DeactivatedItemIsInvisible(t *testing.T) {
	db := setupTestDB(t)
	seeded := seedItem(t, db)
	repo := NewItemRepository(db)

	require.NoError(t, repo.Deactivate(seeded))

	_, err := repo.GetByItemID("20012020")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// The row is still there, only hidden from reads.
	var raw models.Item
	require.NoError(t, db.Where("item_id = ?", "20012020").First(&raw).Error)
	require.False(t, raw.IsActive)
}

func TestCompanyRepository_GetByCompanyID(t *testing.T) {
	db := setupTestDB(t)
	seedItem(t, db)
	repo := NewCompanyRepository(db)

	company, err := repo.GetByCompanyID("222")
	require.NoError(t, err)
	require.Equal(t, "Papeles de Toluca", company.Name)

	require.NoError(t, repo.Deactivate(company))
	_, err = repo.GetByCompanyID("222")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
