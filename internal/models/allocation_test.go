package models_test

import (
	"errors"

	"github.com/NewZealandMax/QRkot-spreadsheets/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// failUpdatesLocked fails the next n updates to the table with the
// error a locked sqlite database returns, simulating a concurrent
// allocation pass holding the database.
func (suite *TestSuiteStandard) failUpdatesLocked(table string, n int) {
	err := models.DB.Callback().Update().After("gorm:update").Register("locked_database", func(db *gorm.DB) {
		if n > 0 && db.Statement.Table == table && db.Error == nil {
			n--
			_ = db.AddError(errors.New("database is locked"))
		}
	})
	suite.Require().Nil(err)

	suite.T().Cleanup(func() {
		_ = models.DB.Callback().Update().Remove("locked_database")
	})
}

func (suite *TestSuiteStandard) TestAllocationDonationExceedsProject() {
	project := suite.createTestProject(models.CharityProject{Investment: investment(100)})
	donation := suite.createTestDonation(models.Donation{Investment: investment(150)})

	project = suite.reloadProject(project)
	suite.Assert().True(project.FullyInvested, "project should be closed")
	suite.Assert().True(project.InvestedAmount.Equal(decimal.NewFromFloat(100)), "expected invested amount 100, got %s", project.InvestedAmount)
	suite.Assert().NotNil(project.CloseDate, "close date should be set on the closed project")

	donation = suite.reloadDonation(donation)
	suite.Assert().False(donation.FullyInvested, "donation should stay open")
	suite.Assert().True(donation.InvestedAmount.Equal(decimal.NewFromFloat(100)), "expected invested amount 100, got %s", donation.InvestedAmount)
	suite.Assert().Nil(donation.CloseDate)
}

func (suite *TestSuiteStandard) TestAllocationExactMatch() {
	project := suite.createTestProject(models.CharityProject{Investment: investment(100)})
	donation := suite.createTestDonation(models.Donation{Investment: investment(100)})

	project = suite.reloadProject(project)
	donation = suite.reloadDonation(donation)

	suite.Assert().True(project.FullyInvested)
	suite.Assert().True(donation.FullyInvested)
	suite.Assert().NotNil(project.CloseDate)
	suite.Assert().NotNil(donation.CloseDate)
}

func (suite *TestSuiteStandard) TestAllocationSpansProjects() {
	first := suite.createTestProject(models.CharityProject{Investment: investment(100)})
	second := suite.createTestProject(models.CharityProject{Investment: investment(50)})
	donation := suite.createTestDonation(models.Donation{Investment: investment(120)})

	first = suite.reloadProject(first)
	suite.Assert().True(first.FullyInvested, "oldest project should be funded first")
	suite.Assert().True(first.InvestedAmount.Equal(decimal.NewFromFloat(100)))

	second = suite.reloadProject(second)
	suite.Assert().False(second.FullyInvested)
	suite.Assert().True(second.InvestedAmount.Equal(decimal.NewFromFloat(20)), "expected invested amount 20, got %s", second.InvestedAmount)

	donation = suite.reloadDonation(donation)
	suite.Assert().True(donation.FullyInvested)
	suite.Assert().True(donation.InvestedAmount.Equal(decimal.NewFromFloat(120)))
}

func (suite *TestSuiteStandard) TestAllocationProjectDrainsDonations() {
	first := suite.createTestDonation(models.Donation{Investment: investment(30)})
	second := suite.createTestDonation(models.Donation{Investment: investment(40)})
	project := suite.createTestProject(models.CharityProject{Investment: investment(60)})

	first = suite.reloadDonation(first)
	suite.Assert().True(first.FullyInvested, "oldest donation should be spent first")

	second = suite.reloadDonation(second)
	suite.Assert().False(second.FullyInvested)
	suite.Assert().True(second.InvestedAmount.Equal(decimal.NewFromFloat(30)), "expected invested amount 30, got %s", second.InvestedAmount)

	project = suite.reloadProject(project)
	suite.Assert().True(project.FullyInvested)
	suite.Assert().True(project.InvestedAmount.Equal(decimal.NewFromFloat(60)))
}

func (suite *TestSuiteStandard) TestAllocationNoOpenCounterparts() {
	donation := suite.createTestDonation(models.Donation{Investment: investment(75)})

	donation = suite.reloadDonation(donation)
	suite.Assert().False(donation.FullyInvested)
	suite.Assert().True(donation.InvestedAmount.IsZero())
	suite.Assert().Nil(donation.CloseDate)
}

func (suite *TestSuiteStandard) TestAllocationFIFOByCreation() {
	projects := make([]models.CharityProject, 0, 3)
	for i := 0; i < 3; i++ {
		projects = append(projects, suite.createTestProject(models.CharityProject{Investment: investment(10)}))
	}

	suite.createTestDonation(models.Donation{Investment: investment(25)})

	first := suite.reloadProject(projects[0])
	second := suite.reloadProject(projects[1])
	third := suite.reloadProject(projects[2])

	suite.Assert().True(first.FullyInvested)
	suite.Assert().True(second.FullyInvested)
	suite.Assert().False(third.FullyInvested)
	suite.Assert().True(third.InvestedAmount.Equal(decimal.NewFromFloat(5)), "expected invested amount 5, got %s", third.InvestedAmount)
}

func (suite *TestSuiteStandard) TestAllocationConservation() {
	suite.createTestProject(models.CharityProject{Investment: investment(80)})
	suite.createTestProject(models.CharityProject{Investment: investment(35)})
	suite.createTestDonation(models.Donation{Investment: investment(50)})
	suite.createTestDonation(models.Donation{Investment: investment(20)})
	suite.createTestDonation(models.Donation{Investment: investment(90)})

	var projects []models.CharityProject
	suite.Require().Nil(models.DB.Find(&projects).Error)

	var donations []models.Donation
	suite.Require().Nil(models.DB.Find(&donations).Error)

	projectSum := decimal.Zero
	for _, p := range projects {
		projectSum = projectSum.Add(p.InvestedAmount)
	}

	donationSum := decimal.Zero
	for _, d := range donations {
		donationSum = donationSum.Add(d.InvestedAmount)
	}

	suite.Assert().True(projectSum.Equal(donationSum), "invested sums diverge: projects %s, donations %s", projectSum, donationSum)
}

func (suite *TestSuiteStandard) TestAllocationConflictRetried() {
	project := suite.createTestProject(models.CharityProject{Investment: investment(100)})

	// The first attempt fails when the counterpart is saved, the
	// retry must start over with nothing invested
	suite.failUpdatesLocked("charity_projects", 1)

	donation := suite.createTestDonation(models.Donation{Investment: investment(100)})

	project = suite.reloadProject(project)
	suite.Assert().True(project.FullyInvested, "project should be funded by the retried allocation")
	suite.Assert().True(project.InvestedAmount.Equal(decimal.NewFromFloat(100)), "expected invested amount 100, got %s", project.InvestedAmount)

	donation = suite.reloadDonation(donation)
	suite.Assert().True(donation.FullyInvested)
	suite.Assert().True(donation.InvestedAmount.Equal(project.InvestedAmount), "invested sums diverge: donation %s, project %s", donation.InvestedAmount, project.InvestedAmount)
}

func (suite *TestSuiteStandard) TestAllocationConflictExhaustsRetries() {
	project := suite.createTestProject(models.CharityProject{Investment: investment(100)})

	// More conflicts than retries, the creation has to give up
	suite.failUpdatesLocked("charity_projects", 10)

	err := models.CreateWithAllocation(models.DB, &models.Donation{Investment: investment(100)})
	suite.Assert().ErrorIs(err, models.ErrAllocationConflict)

	var count int64
	suite.Require().Nil(models.DB.Model(&models.Donation{}).Count(&count).Error)
	suite.Assert().Equal(int64(0), count, "a failed creation must not leave a donation behind")

	project = suite.reloadProject(project)
	suite.Assert().True(project.InvestedAmount.IsZero(), "a failed creation must not move funds")
}

func (suite *TestSuiteStandard) TestAllocationSkipsClosed() {
	closed := suite.createTestProject(models.CharityProject{Investment: investment(10)})
	suite.createTestDonation(models.Donation{Investment: investment(10)})

	open := suite.createTestProject(models.CharityProject{Investment: investment(40)})
	suite.createTestDonation(models.Donation{Investment: investment(15)})

	closed = suite.reloadProject(closed)
	suite.Assert().True(closed.InvestedAmount.Equal(decimal.NewFromFloat(10)), "closed project must not receive further funds")

	open = suite.reloadProject(open)
	suite.Assert().True(open.InvestedAmount.Equal(decimal.NewFromFloat(15)))
}
