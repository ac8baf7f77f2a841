package repository

import (
	"strings"

	"prayer-roster-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create creates a new team
func (r *TeamRepository) Create(team *models.Team) error {
	return r.db.Create(team).Error
}

// CreateBatch inserts several teams in one statement
func (r *TeamRepository) CreateBatch(teams []models.Team) error {
	if len(teams) == 0 {
		return nil
	}
	return r.db.Create(&teams).Error
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByIDs retrieves the teams matching ids; unknown ids are absent from the result
func (r *TeamRepository) GetByIDs(ids []uuid.UUID) ([]models.Team, error) {
	var teams []models.Team
	if len(ids) == 0 {
		return teams, nil
	}
	err := r.db.Where("id IN ?", ids).Find(&teams).Error
	return teams, err
}

// ExistsByName reports whether a team with exactly this name exists, ignoring excludeID
func (r *TeamRepository) ExistsByName(name string, excludeID *uuid.UUID) (bool, error) {
	var count int64
	query := r.db.Model(&models.Team{}).Where("name = ?", name)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// List retrieves teams ordered by name
func (r *TeamRepository) List(filter TeamFilter) ([]models.Team, error) {
	var teams []models.Team

	query := r.db.Model(&models.Team{}).Where("active = ?", filter.Active)
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	err := query.Order("name ASC").Find(&teams).Error
	return teams, err
}

// Count returns the number of teams, active or not
func (r *TeamRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Team{}).Count(&count).Error
	return count, err
}

// Update updates a team
func (r *TeamRepository) Update(team *models.Team) error {
	return r.db.Save(team).Error
}

// SetActive flips the soft-delete marker
func (r *TeamRepository) SetActive(id uuid.UUID, active bool) error {
	result := r.db.Model(&models.Team{}).Where("id = ?", id).Update("active", active)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
