package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/NewZealandMax/QRkot-spreadsheets/internal/controllers/v1"
	"github.com/NewZealandMax/QRkot-spreadsheets/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestOptionsDonations() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/donations", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestOptionsDonationDetail() {
	donation := suite.createTestDonation(v1.DonationEditable{FullAmount: decimal.NewFromInt(10)})

	r := test.Request(suite.T(), http.MethodOptions, donation.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, DELETE", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestCreateDonation() {
	user := uuid.New()

	response := suite.createTestDonation(v1.DonationEditable{
		UserID:     user,
		Comment:    "For the kittens!",
		FullAmount: decimal.NewFromInt(100),
	})

	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(user, response.Data.UserID)
	suite.Assert().Equal("For the kittens!", response.Data.Comment)
	suite.Assert().True(response.Data.InvestedAmount.IsZero())
	suite.Assert().Contains(response.Data.Links.Self, fmt.Sprintf("/v1/donations/%s", response.Data.ID))
}

func (suite *TestSuiteStandard) TestCreateDonationAllocates() {
	suite.createTestProject(v1.CharityProjectEditable{FullAmount: decimal.NewFromInt(100)})

	response := suite.createTestDonation(v1.DonationEditable{FullAmount: decimal.NewFromInt(40)})

	suite.Require().NotNil(response.Data)
	suite.Assert().True(response.Data.FullyInvested, "donation should be distributed to the open project")
	suite.Assert().NotNil(response.Data.CloseDate)
}

func (suite *TestSuiteStandard) TestCreateDonationInvalidBody() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/donations", `{ "comment": `)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCreateDonationZeroAmount() {
	response := suite.createTestDonation(v1.DonationEditable{}, http.StatusBadRequest)
	suite.Require().NotNil(response.Error)
}

func (suite *TestSuiteStandard) TestGetDonations() {
	for i := 0; i < 3; i++ {
		suite.createTestDonation(v1.DonationEditable{FullAmount: decimal.NewFromInt(10)})
	}

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/donations", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DonationListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Len(response.Data, 3)
	suite.Require().NotNil(response.Pagination)
	suite.Assert().Equal(int64(3), response.Pagination.Total)
}

func (suite *TestSuiteStandard) TestGetDonationsFilterUser() {
	user := uuid.New()
	suite.createTestDonation(v1.DonationEditable{UserID: user, FullAmount: decimal.NewFromInt(10)})
	suite.createTestDonation(v1.DonationEditable{FullAmount: decimal.NewFromInt(10)})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/donations?userId=%s", user), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DonationListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal(user, response.Data[0].UserID)
}

func (suite *TestSuiteStandard) TestGetDonation() {
	created := suite.createTestDonation(v1.DonationEditable{FullAmount: decimal.NewFromInt(10)})

	r := test.Request(suite.T(), http.MethodGet, created.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DonationResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(created.Data.ID, response.Data.ID)
}

func (suite *TestSuiteStandard) TestGetDonationNotFound() {
	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/donations/%s", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestUpdateDonationNotAllowed() {
	created := suite.createTestDonation(v1.DonationEditable{FullAmount: decimal.NewFromInt(10)})

	r := test.Request(suite.T(), http.MethodPatch, created.Data.Links.Self, map[string]any{
		"comment": "Donations are immutable",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusMethodNotAllowed)
}

func (suite *TestSuiteStandard) TestDeleteDonation() {
	created := suite.createTestDonation(v1.DonationEditable{FullAmount: decimal.NewFromInt(10)})

	r := test.Request(suite.T(), http.MethodDelete, created.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
}

func (suite *TestSuiteStandard) TestDeleteDonationSpent() {
	suite.createTestProject(v1.CharityProjectEditable{FullAmount: decimal.NewFromInt(100)})
	created := suite.createTestDonation(v1.DonationEditable{FullAmount: decimal.NewFromInt(10)})

	r := test.Request(suite.T(), http.MethodDelete, created.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestDeleteDonationNotFound() {
	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/donations/%s", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
