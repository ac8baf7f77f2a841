package repository

import (
	"strings"

	"prayer-roster-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PersonRepository handles database operations for people
type PersonRepository struct {
	db *gorm.DB
}

// NewPersonRepository creates a new person repository
func NewPersonRepository(db *gorm.DB) *PersonRepository {
	return &PersonRepository{db: db}
}

// Create creates a new person
func (r *PersonRepository) Create(person *models.Person) error {
	return r.db.Create(person).Error
}

// GetByID retrieves a person by ID regardless of active status
func (r *PersonRepository) GetByID(id uuid.UUID) (*models.Person, error) {
	var person models.Person
	err := r.db.First(&person, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &person, nil
}

// GetByIDs retrieves the people matching ids; unknown ids are absent from the result
func (r *PersonRepository) GetByIDs(ids []uuid.UUID) ([]models.Person, error) {
	var people []models.Person
	if len(ids) == 0 {
		return people, nil
	}
	err := r.db.Where("id IN ?", ids).Find(&people).Error
	return people, err
}

// ExistsByName reports whether a person with exactly this name exists, ignoring excludeID
func (r *PersonRepository) ExistsByName(name string, excludeID *uuid.UUID) (bool, error) {
	var count int64
	query := r.db.Model(&models.Person{}).Where("name = ?", name)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// List retrieves people ordered by name
func (r *PersonRepository) List(filter PersonFilter) ([]models.Person, error) {
	var people []models.Person

	query := r.db.Model(&models.Person{}).Where("people.active = ?", filter.Active)

	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(people.name) LIKE ? OR LOWER(people.email) LIKE ? OR LOWER(people.phone) LIKE ?",
			like, like, like,
		)
	}

	if filter.TeamID != nil {
		query = query.
			Joins("JOIN memberships ON memberships.person_id = people.id").
			Where("memberships.team_id = ?", *filter.TeamID)
	}

	err := query.Order("people.name ASC").Find(&people).Error
	return people, err
}

// Update updates a person
func (r *PersonRepository) Update(person *models.Person) error {
	return r.db.Save(person).Error
}

// SetActive flips the soft-delete marker
func (r *PersonRepository) SetActive(id uuid.UUID, active bool) error {
	result := r.db.Model(&models.Person{}).Where("id = ?", id).Update("active", active)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
