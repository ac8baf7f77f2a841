package service_test

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"prayer-roster-backend/internal/database/models"
	apperrors "prayer-roster-backend/internal/errors"
	"prayer-roster-backend/internal/export"
	"prayer-roster-backend/internal/service"

	"github.com/stretchr/testify/suite"
)

// ExportServiceTestSuite tests ExportService against an in-memory database
type ExportServiceTestSuite struct {
	storeSuite
}

func TestExportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExportServiceTestSuite))
}

func (suite *ExportServiceTestSuite) seed() {
	tuesday := suite.factories.Slot.Tuesday(2025, 3, 4)
	wednesday := suite.factories.Slot.Wednesday(2025, 3, 5)
	wednesday.LegacySupply = "Rita"
	april := suite.factories.Slot.Tuesday(2025, 4, 1)
	ana := suite.factories.Person.WithName("Ana")
	suite.mustCreate(tuesday, wednesday, april, ana)

	_, err := suite.assignments.Add(tuesday.ID, &service.AddAssignmentRequest{PersonID: ana.ID, Role: models.RolePreaching})
	suite.Require().NoError(err)
}

func (suite *ExportServiceTestSuite) TestExport_EmptyPeriod() {
	suite.seed()

	file, err := suite.exports.Export(export.FormatPDF, service.NewPeriodFilter(6, 2025))

	suite.Nil(file)
	suite.ErrorIs(err, apperrors.ErrNoSlotsToExport)
	suite.True(apperrors.IsNotFound(err))
}

func (suite *ExportServiceTestSuite) TestExport_EmptyDatabase() {
	for _, f := range []export.Format{export.FormatPDF, export.FormatXLSX, export.FormatCSV, export.FormatText} {
		_, err := suite.exports.Export(f, service.PeriodFilter{})
		suite.True(apperrors.IsNotFound(err), "format %s", f)
	}
}

func (suite *ExportServiceTestSuite) TestExport_CSV() {
	suite.seed()

	file, err := suite.exports.Export(export.FormatCSV, service.NewPeriodFilter(3, 2025))

	suite.Require().NoError(err)
	suite.Equal("prayer_group_roster_2025_03.csv", file.Filename)
	suite.Equal(export.FormatCSV.ContentType(), file.ContentType)

	records, err := csv.NewReader(bytes.NewReader(file.Data)).ReadAll()
	suite.Require().NoError(err)
	suite.Require().Len(records, 3)
	suite.Equal([]string{"04/03/2025", "Tuesday", "Ana", "", "", "", ""}, records[1])
	suite.Equal([]string{"05/03/2025", "Wednesday", "", "", "", "", "Rita"}, records[2])
}

func (suite *ExportServiceTestSuite) TestExport_Text() {
	suite.seed()

	file, err := suite.exports.Export(export.FormatText, service.NewPeriodFilter(0, 2025))

	suite.Require().NoError(err)
	suite.Equal("prayer_group_roster_2025.txt", file.Filename)
	text := string(file.Data)
	suite.Contains(text, "PRAYER GROUP ROSTER\nYear 2025")
	suite.Contains(text, "04/03/2025 - Tuesday")
	suite.Contains(text, "  Preaching: Ana")
	suite.Contains(text, "01/04/2025 - Tuesday\n  (not filled)")
	suite.Contains(text, "Generated on 04/03/2025 at 20:00")
	suite.Less(strings.Index(text, "MARCH 2025"), strings.Index(text, "APRIL 2025"))
}

func (suite *ExportServiceTestSuite) TestExport_BinaryFormats() {
	suite.seed()

	pdf, err := suite.exports.Export(export.FormatPDF, service.PeriodFilter{})
	suite.Require().NoError(err)
	suite.Equal("prayer_group_roster.pdf", pdf.Filename)
	suite.True(bytes.HasPrefix(pdf.Data, []byte("%PDF-")))

	xlsx, err := suite.exports.Export("excel", service.PeriodFilter{})
	suite.Require().NoError(err)
	suite.Equal("prayer_group_roster.xlsx", xlsx.Filename)
	suite.True(bytes.HasPrefix(xlsx.Data, []byte("PK")))
}

func (suite *ExportServiceTestSuite) TestExport_Validation() {
	suite.seed()

	_, err := suite.exports.Export("docx", service.PeriodFilter{})
	suite.ErrorIs(err, apperrors.ErrInvalidExportKind)

	_, err = suite.exports.Export(export.FormatCSV, service.NewPeriodFilter(0, 10000))
	suite.True(apperrors.IsValidation(err))
}
