package repository

import (
	"prayer-roster-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MembershipRepository handles the person/team join table
type MembershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository creates a new membership repository
func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// ReplaceForPerson makes teamIDs the exact membership set of a person.
// Callers filter unknown team ids beforehand.
func (r *MembershipRepository) ReplaceForPerson(personID uuid.UUID, teamIDs []uuid.UUID) error {
	var current []models.Membership
	if err := r.db.Where("person_id = ?", personID).Find(&current).Error; err != nil {
		return err
	}

	wanted := make(map[uuid.UUID]bool, len(teamIDs))
	for _, id := range teamIDs {
		wanted[id] = true
	}

	var stale []uuid.UUID
	have := make(map[uuid.UUID]bool, len(current))
	for _, m := range current {
		have[m.TeamID] = true
		if !wanted[m.TeamID] {
			stale = append(stale, m.ID)
		}
	}

	if len(stale) > 0 {
		if err := r.db.Where("id IN ?", stale).Delete(&models.Membership{}).Error; err != nil {
			return err
		}
	}

	for _, teamID := range teamIDs {
		if have[teamID] {
			continue
		}
		have[teamID] = true
		if err := r.db.Create(&models.Membership{PersonID: personID, TeamID: teamID}).Error; err != nil {
			return err
		}
	}
	return nil
}

// TeamNamesByPerson returns the team names of every given person, ordered by team name
func (r *MembershipRepository) TeamNamesByPerson(personIDs []uuid.UUID) (map[uuid.UUID][]string, error) {
	out := make(map[uuid.UUID][]string, len(personIDs))
	if len(personIDs) == 0 {
		return out, nil
	}

	type row struct {
		PersonID uuid.UUID
		TeamName string
	}
	var rows []row
	err := r.db.Table("memberships").
		Select("memberships.person_id AS person_id, teams.name AS team_name").
		Joins("JOIN teams ON teams.id = memberships.team_id").
		Where("memberships.person_id IN ?", personIDs).
		Order("teams.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, r := range rows {
		out[r.PersonID] = append(out[r.PersonID], r.TeamName)
	}
	return out, nil
}

// ActiveMemberCounts counts active people per team
func (r *MembershipRepository) ActiveMemberCounts(teamIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	out := make(map[uuid.UUID]int64, len(teamIDs))
	if len(teamIDs) == 0 {
		return out, nil
	}

	type row struct {
		TeamID uuid.UUID
		Total  int64
	}
	var rows []row
	err := r.db.Table("memberships").
		Select("memberships.team_id AS team_id, COUNT(*) AS total").
		Joins("JOIN people ON people.id = memberships.person_id").
		Where("memberships.team_id IN ? AND people.active = ?", teamIDs, true).
		Group("memberships.team_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, r := range rows {
		out[r.TeamID] = r.Total
	}
	return out, nil
}

// ActivePeopleInTeam lists the active members of a team ordered by name
func (r *MembershipRepository) ActivePeopleInTeam(teamID uuid.UUID) ([]models.Person, error) {
	var people []models.Person
	err := r.db.Model(&models.Person{}).
		Joins("JOIN memberships ON memberships.person_id = people.id").
		Where("memberships.team_id = ? AND people.active = ?", teamID, true).
		Order("people.name ASC").
		Find(&people).Error
	return people, err
}
