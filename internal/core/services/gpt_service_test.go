package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/finance_assistant_app/internal/apperrors"
	"github.com/SscSPs/finance_assistant_app/internal/core/domain"
	portssvc "github.com/SscSPs/finance_assistant_app/internal/core/ports/services"
	"github.com/SscSPs/finance_assistant_app/internal/core/services"
	"github.com/SscSPs/finance_assistant_app/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type GptServiceTestSuite struct {
	suite.Suite
	mockRepo *MockGptRepository
	service  portssvc.GptSvcFacade
}

func (suite *GptServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockGptRepository)
	suite.service = services.NewGptService(suite.mockRepo)
}

func sampleGpt(id, owner string, public bool) *domain.Gpt {
	return &domain.Gpt{
		GptID:        id,
		OwnerID:      owner,
		Name:         "Budget coach",
		Image:        3,
		Description:  "Helps with monthly budgets",
		Goal:         "Reduce spending",
		Temperature:  0.4,
		Capabilities: []string{"budgeting"},
		Limitations:  []string{"no tax advice"},
		IsPublic:     public,
	}
}

func (suite *GptServiceTestSuite) TestCreateGpt_AppliesDefaults() {
	ctx := context.Background()
	req := dto.CreateGptRequest{
		Name:         "Budget coach",
		Description:  "Helps with monthly budgets",
		Goal:         "Reduce spending",
		Capabilities: []string{"budgeting"},
		Limitations:  []string{"no tax advice"},
	}

	suite.mockRepo.On("FindGptByName", ctx, "user-1", "Budget coach").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveGpt", ctx, mock.MatchedBy(func(g domain.Gpt) bool {
		return g.OwnerID == "user-1" && g.Image == 1 && g.Temperature == 0.5 && g.IsPublic
	})).Return(nil).Once()

	gpt, err := suite.service.CreateGpt(ctx, "user-1", req)

	suite.Require().NoError(err)
	suite.NotEmpty(gpt.GptID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *GptServiceTestSuite) TestCreateGpt_DuplicateName() {
	ctx := context.Background()
	req := dto.CreateGptRequest{Name: "Budget coach"}

	suite.mockRepo.On("FindGptByName", ctx, "user-1", "Budget coach").Return(sampleGpt("g1", "user-1", true), nil).Once()

	gpt, err := suite.service.CreateGpt(ctx, "user-1", req)

	suite.Nil(gpt)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveGpt", mock.Anything, mock.Anything)
}

func (suite *GptServiceTestSuite) TestCreateGpt_ValidationError() {
	ctx := context.Background()
	req := dto.CreateGptRequest{
		Name:         "Budget coach",
		Description:  "Helps",
		Goal:         "Save",
		Capabilities: []string{},
		Limitations:  []string{"none"},
	}
	suite.mockRepo.On("FindGptByName", ctx, "user-1", "Budget coach").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateGpt(ctx, "user-1", req)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *GptServiceTestSuite) TestGetGptByID_Visibility() {
	ctx := context.Background()
	suite.mockRepo.On("FindGptByID", ctx, "public").Return(sampleGpt("public", "owner", true), nil)
	suite.mockRepo.On("FindGptByID", ctx, "private").Return(sampleGpt("private", "owner", false), nil)

	gpt, err := suite.service.GetGptByID(ctx, "stranger", "public")
	suite.Require().NoError(err)
	suite.Equal("public", gpt.GptID)

	_, err = suite.service.GetGptByID(ctx, "stranger", "private")
	suite.ErrorIs(err, apperrors.ErrNotFound)

	gpt, err = suite.service.GetGptByID(ctx, "owner", "private")
	suite.Require().NoError(err)
	suite.Equal("private", gpt.GptID)
}

func (suite *GptServiceTestSuite) TestListGpts() {
	ctx := context.Background()
	params := dto.ListGptsParams{PageOptions: dto.PageOptions{Page: 1, Limit: 2, OrderBy: "name"}}

	suite.mockRepo.On("FindVisibleGpts", ctx, "user-1", mock.MatchedBy(func(q domain.ListQuery) bool {
		return q.OrderBy == "name" && q.Limit == 2
	})).Return([]domain.Gpt{*sampleGpt("g1", "user-1", false)}, 5, nil).Once()

	resp, err := suite.service.ListGpts(ctx, "user-1", params)

	suite.Require().NoError(err)
	suite.Len(resp.Data, 1)
	suite.Equal(3, resp.Meta.PageCount)

	_, err = suite.service.ListGpts(ctx, "user-1", dto.ListGptsParams{PageOptions: dto.PageOptions{OrderBy: "description"}})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *GptServiceTestSuite) TestUpdateGpt_ForbiddenOnOthersPublicGpt() {
	ctx := context.Background()
	name := "Renamed"
	suite.mockRepo.On("FindGptByID", ctx, "g1").Return(sampleGpt("g1", "owner", true), nil).Once()

	_, err := suite.service.UpdateGpt(ctx, "stranger", "g1", dto.UpdateGptRequest{Name: &name})

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateGpt", mock.Anything, mock.Anything)
}

func (suite *GptServiceTestSuite) TestUpdateGpt_NotFoundOnOthersPrivateGpt() {
	ctx := context.Background()
	suite.mockRepo.On("FindGptByID", ctx, "g1").Return(sampleGpt("g1", "owner", false), nil).Once()

	_, err := suite.service.UpdateGpt(ctx, "stranger", "g1", dto.UpdateGptRequest{})

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *GptServiceTestSuite) TestUpdateGpt_RenameChecksUniqueness() {
	ctx := context.Background()
	name := "Tax helper"
	suite.mockRepo.On("FindGptByID", ctx, "g1").Return(sampleGpt("g1", "owner", true), nil).Once()
	suite.mockRepo.On("FindGptByName", ctx, "owner", name).Return(sampleGpt("g2", "owner", true), nil).Once()

	_, err := suite.service.UpdateGpt(ctx, "owner", "g1", dto.UpdateGptRequest{Name: &name})

	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *GptServiceTestSuite) TestUpdateGpt_Success() {
	ctx := context.Background()
	temp := 0.9
	private := false
	suite.mockRepo.On("FindGptByID", ctx, "g1").Return(sampleGpt("g1", "owner", true), nil).Once()
	suite.mockRepo.On("UpdateGpt", ctx, mock.MatchedBy(func(g domain.Gpt) bool {
		return g.Temperature == temp && !g.IsPublic && g.Name == "Budget coach"
	})).Return(nil).Once()

	gpt, err := suite.service.UpdateGpt(ctx, "owner", "g1", dto.UpdateGptRequest{Temperature: &temp, IsPublic: &private})

	suite.Require().NoError(err)
	suite.False(gpt.IsPublic)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *GptServiceTestSuite) TestDeleteGpt() {
	ctx := context.Background()
	suite.mockRepo.On("FindGptByID", ctx, "g1").Return(sampleGpt("g1", "owner", true), nil)
	suite.mockRepo.On("MarkGptDeleted", ctx, "owner", "g1", mock.AnythingOfType("time.Time")).Return(nil).Once()

	suite.NoError(suite.service.DeleteGpt(ctx, "owner", "g1"))
	suite.ErrorIs(suite.service.DeleteGpt(ctx, "stranger", "g1"), apperrors.ErrForbidden)
	suite.mockRepo.AssertNumberOfCalls(suite.T(), "MarkGptDeleted", 1)
}

func (suite *GptServiceTestSuite) TestDeleteGpt_RepoError() {
	ctx := context.Background()
	suite.mockRepo.On("FindGptByID", ctx, "g1").Return(sampleGpt("g1", "owner", true), nil).Once()
	suite.mockRepo.On("MarkGptDeleted", ctx, "owner", "g1", mock.AnythingOfType("time.Time")).Return(assert.AnError).Once()

	err := suite.service.DeleteGpt(ctx, "owner", "g1")

	suite.ErrorIs(err, assert.AnError)
}

func TestGptServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GptServiceTestSuite))
}
