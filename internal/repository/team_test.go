package repository

import (
	"testing"

	"prayer-roster-backend/internal/database/models"
	"prayer-roster-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TeamRepositoryTestSuite tests the TeamRepository and MembershipRepository
type TeamRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TeamRepository
	memberships   *MembershipRepository
	people        *PersonRepository
	factories     *testutils.FactorySet
}

// SetupTest opens a fresh database before each test
func (suite *TeamRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite = testutils.SetupSQLiteSuite(suite.T())
	db := suite.baseTestSuite.DB
	suite.repo = NewTeamRepository(db)
	suite.memberships = NewMembershipRepository(db)
	suite.people = NewPersonRepository(db)
	suite.factories = testutils.NewFactorySet()
}

func (suite *TeamRepositoryTestSuite) TestCreateBatchAndCount() {
	count, err := suite.repo.Count()
	suite.Require().NoError(err)
	suite.Zero(count)

	teams := []models.Team{*suite.factories.Team.Create(), *suite.factories.Team.Create()}
	suite.Require().NoError(suite.repo.CreateBatch(teams))

	count, err = suite.repo.Count()
	suite.Require().NoError(err)
	suite.Equal(int64(2), count)
}

func (suite *TeamRepositoryTestSuite) TestListAndSetActive() {
	music := suite.factories.Team.WithName("Musicians")
	hosp := suite.factories.Team.WithName("Hospitality")
	suite.Require().NoError(suite.repo.Create(music))
	suite.Require().NoError(suite.repo.Create(hosp))

	suite.Require().NoError(suite.repo.SetActive(hosp.ID, false))

	active, err := suite.repo.List(TeamFilter{Active: true})
	suite.Require().NoError(err)
	suite.Require().Len(active, 1)
	suite.Equal("Musicians", active[0].Name)

	found, err := suite.repo.List(TeamFilter{Active: false, Search: "hosp"})
	suite.Require().NoError(err)
	suite.Require().Len(found, 1)
	suite.Equal(hosp.ID, found[0].ID)

	suite.ErrorIs(suite.repo.SetActive(uuid.New(), true), gorm.ErrRecordNotFound)
}

func (suite *TeamRepositoryTestSuite) TestExistsByName() {
	team := suite.factories.Team.WithName("Supply")
	suite.Require().NoError(suite.repo.Create(team))

	exists, err := suite.repo.ExistsByName("Supply", nil)
	suite.NoError(err)
	suite.True(exists)

	exists, err = suite.repo.ExistsByName("Supply", &team.ID)
	suite.NoError(err)
	suite.False(exists)
}

func (suite *TeamRepositoryTestSuite) TestReplaceForPerson() {
	a := suite.factories.Team.WithName("A")
	b := suite.factories.Team.WithName("B")
	c := suite.factories.Team.WithName("C")
	for _, t := range []*models.Team{a, b, c} {
		suite.Require().NoError(suite.repo.Create(t))
	}
	person := suite.factories.Person.Create()
	suite.Require().NoError(suite.people.Create(person))

	suite.Require().NoError(suite.memberships.ReplaceForPerson(person.ID, []uuid.UUID{a.ID, b.ID}))
	names, err := suite.memberships.TeamNamesByPerson([]uuid.UUID{person.ID})
	suite.Require().NoError(err)
	suite.Equal([]string{"A", "B"}, names[person.ID])

	suite.Require().NoError(suite.memberships.ReplaceForPerson(person.ID, []uuid.UUID{c.ID, b.ID, c.ID}))
	names, err = suite.memberships.TeamNamesByPerson([]uuid.UUID{person.ID})
	suite.Require().NoError(err)
	suite.Equal([]string{"B", "C"}, names[person.ID])

	suite.Require().NoError(suite.memberships.ReplaceForPerson(person.ID, nil))
	names, err = suite.memberships.TeamNamesByPerson([]uuid.UUID{person.ID})
	suite.Require().NoError(err)
	suite.Empty(names[person.ID])
}

func (suite *TeamRepositoryTestSuite) TestActiveMembers() {
	team := suite.factories.Team.Create()
	suite.Require().NoError(suite.repo.Create(team))

	active := suite.factories.Person.WithName("Zeca")
	inactive := suite.factories.Person.Inactive()
	suite.Require().NoError(suite.people.Create(active))
	suite.Require().NoError(suite.people.Create(inactive))
	suite.Require().NoError(suite.memberships.ReplaceForPerson(active.ID, []uuid.UUID{team.ID}))
	suite.Require().NoError(suite.memberships.ReplaceForPerson(inactive.ID, []uuid.UUID{team.ID}))

	counts, err := suite.memberships.ActiveMemberCounts([]uuid.UUID{team.ID})
	suite.Require().NoError(err)
	suite.Equal(int64(1), counts[team.ID])

	people, err := suite.memberships.ActivePeopleInTeam(team.ID)
	suite.Require().NoError(err)
	suite.Require().Len(people, 1)
	suite.Equal("Zeca", people[0].Name)
}

// TestTeamRepositoryTestSuite runs the test suite
func TestTeamRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TeamRepositoryTestSuite))
}
