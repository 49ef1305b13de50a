package production

import (
	"gorm.io/gorm"

	"github.com/Seb-Replay/gestion-production/internal/repo"
	"github.com/Seb-Replay/gestion-production/pkg/db/models"
)

// Repository persists production runs.
type Repository struct {
	Runs *repo.Collection[models.Production]
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Runs: repo.NewCollection[models.Production](db)}
}
