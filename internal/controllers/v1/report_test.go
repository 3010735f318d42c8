package v1_test

import (
	"net/http"

	v1 "github.com/NewZealandMax/QRkot-spreadsheets/internal/controllers/v1"
	"github.com/NewZealandMax/QRkot-spreadsheets/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestOptionsClosedProjects() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/reports/closed-projects", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestGetClosedProjectsEmpty() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/reports/closed-projects", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ClosedProjectsResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Empty(response.Data)
}

func (suite *TestSuiteStandard) TestGetClosedProjects() {
	suite.createTestProject(v1.CharityProjectEditable{
		Name:        "Funded",
		Description: "A fully funded project",
		FullAmount:  decimal.NewFromInt(50),
	})
	suite.createTestDonation(v1.DonationEditable{FullAmount: decimal.NewFromInt(50)})
	suite.createTestProject(v1.CharityProjectEditable{Name: "Open", FullAmount: decimal.NewFromInt(100)})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/reports/closed-projects", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ClosedProjectsResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal("Funded", response.Data[0].Name)
	suite.Assert().Equal("A fully funded project", response.Data[0].Description)
	suite.Assert().NotEmpty(response.Data[0].Duration)
}
