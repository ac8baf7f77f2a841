package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"prayer-roster-backend/internal/config"
	"prayer-roster-backend/internal/database"
	"prayer-roster-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type TeamData struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Color       string `yaml:"color,omitempty"`
	Active      *bool  `yaml:"active,omitempty"`
}

type PersonData struct {
	Name   string   `yaml:"name"`
	Phone  string   `yaml:"phone,omitempty"`
	Email  string   `yaml:"email,omitempty"`
	Notes  string   `yaml:"notes,omitempty"`
	Active *bool    `yaml:"active,omitempty"`
	Teams  []string `yaml:"teams,omitempty"`
}

// File structures
type TeamsFile struct {
	Teams []TeamData `yaml:"teams"`
}

type PeopleFile struct {
	People []PersonData `yaml:"people"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	dataDir := "scripts/data"
	if len(os.Args) > 1 {
		dataDir = os.Args[1]
	}

	if err := loadDataFromYAMLFiles(db, dataDir); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	var teamsFile TeamsFile
	if err := loadYAMLFiles(dataDir, "teams", func(data []byte) error {
		var file TeamsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		teamsFile.Teams = append(teamsFile.Teams, file.Teams...)
		return nil
	}); err != nil {
		return fmt.Errorf("failed to load teams: %w", err)
	}

	var peopleFile PeopleFile
	if err := loadYAMLFiles(dataDir, "people", func(data []byte) error {
		var file PeopleFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		peopleFile.People = append(peopleFile.People, file.People...)
		return nil
	}); err != nil {
		return fmt.Errorf("failed to load people: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		teamMap := make(map[string]*models.Team)
		teamCreated := 0
		for _, teamData := range teamsFile.Teams {
			team, created, err := createTeam(tx, teamData)
			if err != nil {
				return fmt.Errorf("failed to create team %s: %w", teamData.Name, err)
			}
			teamMap[team.Name] = team
			if created {
				teamCreated++
			}
		}
		log.Printf("Teams: %d created, %d total", teamCreated, len(teamsFile.Teams))

		personCreated, membershipCreated := 0, 0
		for _, personData := range peopleFile.People {
			person, created, err := createPerson(tx, personData)
			if err != nil {
				return fmt.Errorf("failed to create person %s: %w", personData.Name, err)
			}
			if created {
				personCreated++
			}

			for _, teamName := range personData.Teams {
				team, err := findTeam(tx, teamMap, teamName)
				if err != nil {
					return fmt.Errorf("person %s: %w", personData.Name, err)
				}
				added, err := createMembership(tx, person, team)
				if err != nil {
					return fmt.Errorf("failed to add %s to %s: %w", personData.Name, teamName, err)
				}
				if added {
					membershipCreated++
				}
			}
		}
		log.Printf("People: %d created, %d total; memberships: %d created",
			personCreated, len(peopleFile.People), membershipCreated)
		return nil
	})
}

// loadYAMLFiles calls parse for every .yaml file under dataDir whose path mentions kind
func loadYAMLFiles(dataDir, kind string, parse func([]byte) error) error {
	return filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(filepath.Base(path), kind) {
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			if err := parse(data); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
		}
		return nil
	})
}

func createTeam(db *gorm.DB, teamData TeamData) (*models.Team, bool, error) {
	name := strings.TrimSpace(teamData.Name)
	if name == "" {
		return nil, false, fmt.Errorf("team name is required")
	}

	var team models.Team
	err := db.Where("name = ?", name).First(&team).Error
	if err == nil {
		return &team, false, nil // created = false (existing)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query team: %w", err)
	}

	color := teamData.Color
	if color == "" {
		color = models.DefaultTeamColor
	}
	team = models.Team{
		Name:        name,
		Description: teamData.Description,
		Color:       color,
		Active:      teamData.Active == nil || *teamData.Active,
	}
	if err := db.Create(&team).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create team: %w", err)
	}
	return &team, true, nil
}

func createPerson(db *gorm.DB, personData PersonData) (*models.Person, bool, error) {
	name := strings.TrimSpace(personData.Name)
	if name == "" {
		return nil, false, fmt.Errorf("person name is required")
	}

	var person models.Person
	err := db.Where("name = ?", name).First(&person).Error
	if err == nil {
		return &person, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query person: %w", err)
	}

	person = models.Person{
		Name:   name,
		Phone:  personData.Phone,
		Email:  personData.Email,
		Notes:  personData.Notes,
		Active: personData.Active == nil || *personData.Active,
	}
	if err := db.Create(&person).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create person: %w", err)
	}
	return &person, true, nil
}

// findTeam resolves a team named in a people file, falling back to teams already in the database
func findTeam(db *gorm.DB, teamMap map[string]*models.Team, name string) (*models.Team, error) {
	if team, ok := teamMap[name]; ok {
		return team, nil
	}
	var team models.Team
	if err := db.Where("name = ?", name).First(&team).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("team %s not found", name)
		}
		return nil, fmt.Errorf("failed to query team: %w", err)
	}
	teamMap[name] = &team
	return &team, nil
}

func createMembership(db *gorm.DB, person *models.Person, team *models.Team) (bool, error) {
	var count int64
	if err := db.Model(&models.Membership{}).
		Where("person_id = ? AND team_id = ?", person.ID, team.ID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to query membership: %w", err)
	}
	if count > 0 {
		return false, nil
	}
	if err := db.Create(&models.Membership{PersonID: person.ID, TeamID: team.ID}).Error; err != nil {
		return false, fmt.Errorf("failed to create membership: %w", err)
	}
	return true, nil
}
