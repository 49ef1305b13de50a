package inventory

import (
	"gorm.io/gorm"

	"github.com/Seb-Replay/gestion-production/internal/repo"
	"github.com/Seb-Replay/gestion-production/pkg/db/models"
)

// Repository groups the persistence collections for the three stock families.
type Repository struct {
	Stock     *repo.Collection[models.StockProduct]
	Materials *repo.Collection[models.Material]
	Tools     *repo.Collection[models.Tool]
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Stock:     repo.NewCollection[models.StockProduct](db),
		Materials: repo.NewCollection[models.Material](db),
		Tools:     repo.NewCollection[models.Tool](db),
	}
}
