package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"coach-tree-portal/internal/config"
	apperrors "coach-tree-portal/internal/errors"
	"coach-tree-portal/internal/mocks"
	"coach-tree-portal/internal/models"
	"coach-tree-portal/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// FormControllerTestSuite defines the test suite for FormController
type FormControllerTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockClient *mocks.MockMembersClientInterface
	controller *service.FormController
	ctx        context.Context
}

// SetupTest sets up the test suite
func (suite *FormControllerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockClient = mocks.NewMockMembersClientInterface(suite.ctrl)
	suite.ctx = context.Background()

	mv, err := service.NewMemberValidator(validator.New())
	suite.Require().NoError(err)

	suite.controller = service.NewFormController(suite.mockClient, mv, &config.Config{MembersLimit: 2})
}

// TearDownTest cleans up after each test
func (suite *FormControllerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *FormControllerTestSuite) expectFetch(members ...models.Member) *gomock.Call {
	return suite.mockClient.EXPECT().FetchAll(gomock.Any()).Return(members, nil).Times(1)
}

func (suite *FormControllerTestSuite) load(members ...models.Member) {
	suite.expectFetch(members...)
	suite.Require().NoError(suite.controller.Load(suite.ctx))
}

func coach() models.Member {
	return models.Member{ID: 1, ParentID: 0, FullName: "Vardas Pavardenis", Email: "vardas.pavardenis@example.com"}
}

func validFields() models.FormFields {
	return models.FormFields{Name: "Petras Petraitis", Email: "petras.petraitis@example.com", CoachSelect: "1"}
}

// TestLoad tests caching the member list
func (suite *FormControllerTestSuite) TestLoad() {
	suite.load(coach())

	snap := suite.controller.Snapshot()
	suite.Equal(service.StateIdle, snap.State)
	suite.Equal(1, snap.MembersCount)
	suite.Equal(2, snap.MembersLimit)
	suite.Equal("Vardas Pavardenis", snap.Members[0].FullName)
}

// TestLoadFailure tests that a failed load keeps the previous list
func (suite *FormControllerTestSuite) TestLoadFailure() {
	suite.mockClient.EXPECT().FetchAll(gomock.Any()).Return(nil, errors.New("down")).Times(1)

	err := suite.controller.Load(suite.ctx)

	suite.Error(err)
	suite.Empty(suite.controller.Members())
}

// TestSubmitCapacityReached tests that a full list rejects before validation
func (suite *FormControllerTestSuite) TestSubmitCapacityReached() {
	suite.expectFetch(coach(), models.Member{ID: 2, ParentID: 1, FullName: "Jonas Jonaitis"})

	result, err := suite.controller.SubmitFields(suite.ctx, models.FormFields{Name: "Vardas Pavardenis"})

	suite.NoError(err)
	suite.Equal(service.StateRejected, result.State)
	suite.Equal(service.ReasonCapacityExceeded, result.Reason)
	suite.Equal("Maximum number of members (2) has been reached.", result.Message)
	suite.Equal(0, result.Validation.Count())
	suite.False(result.Created)
	suite.Equal(service.StateRejected, suite.controller.State())
	suite.Equal(result.Message, suite.controller.Snapshot().Message)
}

// TestSubmitValidationFailed tests that field errors stop the create call
func (suite *FormControllerTestSuite) TestSubmitValidationFailed() {
	suite.expectFetch(coach())

	result, err := suite.controller.SubmitFields(suite.ctx, models.FormFields{})

	suite.NoError(err)
	suite.Equal(service.StateRejected, result.State)
	suite.Equal(service.ReasonValidationFailed, result.Reason)
	suite.Equal([]string{
		"The name field is required",
		"The email field must be a valid email",
		"The coachSelect field is required",
	}, result.Validation.Messages())
}

// TestSubmitSuccess tests create then refresh
func (suite *FormControllerTestSuite) TestSubmitSuccess() {
	created := models.Member{ID: 2, ParentID: 1, FullName: "Petras Petraitis", Email: "petras.petraitis@example.com"}
	gomock.InOrder(
		suite.expectFetch(coach()),
		suite.mockClient.EXPECT().
			CreateOne(gomock.Any(), models.CreateMemberRequest{
				ParentID: 1,
				FullName: "Petras Petraitis",
				Email:    "petras.petraitis@example.com",
			}).
			Return(nil).
			Times(1),
		suite.mockClient.EXPECT().
			FetchAll(gomock.Any()).
			Return([]models.Member{coach(), created}, nil).
			Times(1),
	)

	result, err := suite.controller.SubmitFields(suite.ctx, validFields())

	suite.NoError(err)
	suite.True(result.Created)
	suite.Equal(service.StateIdle, result.State)
	suite.Equal(service.SubmitCreatedMessage, result.Message)

	snap := suite.controller.Snapshot()
	suite.Equal(service.StateIdle, snap.State)
	suite.Equal(models.FormFields{}, snap.Fields)
	suite.Equal(2, snap.MembersCount)
}

// TestSubmitSuccessRefreshFails tests that a failed refresh does not undo the create
func (suite *FormControllerTestSuite) TestSubmitSuccessRefreshFails() {
	gomock.InOrder(
		suite.expectFetch(coach()),
		suite.mockClient.EXPECT().CreateOne(gomock.Any(), gomock.Any()).Return(nil).Times(1),
		suite.mockClient.EXPECT().FetchAll(gomock.Any()).Return(nil, errors.New("timeout")).Times(1),
	)

	result, err := suite.controller.SubmitFields(suite.ctx, validFields())

	suite.NoError(err)
	suite.True(result.Created)
	suite.Equal(1, suite.controller.Snapshot().MembersCount)
}

// TestSubmitCreateFailed tests the generic failure message on a create error
func (suite *FormControllerTestSuite) TestSubmitCreateFailed() {
	suite.expectFetch(coach())

	upstream := &apperrors.HTTPStatusError{Op: "POST", URL: "http://x/members", StatusCode: 500}
	suite.mockClient.EXPECT().CreateOne(gomock.Any(), gomock.Any()).Return(upstream).Times(1)

	result, err := suite.controller.SubmitFields(suite.ctx, validFields())

	suite.NoError(err)
	suite.Equal(service.StateRejected, result.State)
	suite.Equal(service.ReasonSubmitFailed, result.Reason)
	suite.Equal(service.SubmitFailedMessage, result.Message)
	suite.ErrorIs(result.Err, upstream)
	suite.Equal(validFields(), suite.controller.Fields())
}

// TestRejectedIsReenterable tests that a rejected form can be submitted again
func (suite *FormControllerTestSuite) TestRejectedIsReenterable() {
	suite.expectFetch(coach())

	first, err := suite.controller.SubmitFields(suite.ctx, models.FormFields{Name: "Petras Petraitis"})
	suite.NoError(err)
	suite.Equal(service.StateRejected, first.State)

	gomock.InOrder(
		suite.expectFetch(coach()),
		suite.mockClient.EXPECT().CreateOne(gomock.Any(), gomock.Any()).Return(nil).Times(1),
		suite.expectFetch(coach()),
	)

	suite.controller.SetFields(validFields())
	second, err := suite.controller.Submit(suite.ctx)

	suite.NoError(err)
	suite.True(second.Created)
	suite.Equal(service.StateIdle, suite.controller.State())
}

// TestSubmitWhileSubmitting tests the in-flight guard
func (suite *FormControllerTestSuite) TestSubmitWhileSubmitting() {
	release := make(chan struct{})
	gomock.InOrder(
		suite.expectFetch(coach()),
		suite.mockClient.EXPECT().
			CreateOne(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, payload models.CreateMemberRequest) error {
				<-release
				return nil
			}).
			Times(1),
		suite.expectFetch(coach()),
	)

	done := make(chan *service.SubmitResult, 1)
	go func() {
		result, _ := suite.controller.SubmitFields(suite.ctx, validFields())
		done <- result
	}()

	suite.Eventually(func() bool {
		return suite.controller.State() == service.StateSubmitting
	}, time.Second, 5*time.Millisecond)

	result, err := suite.controller.SubmitFields(suite.ctx, validFields())
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrSubmissionInProgress)

	suite.controller.Reset()
	suite.Equal(service.StateSubmitting, suite.controller.State())

	close(release)
	first := <-done
	suite.True(first.Created)
}

// TestReset tests clearing a rejected form
func (suite *FormControllerTestSuite) TestReset() {
	suite.expectFetch(coach())

	_, err := suite.controller.SubmitFields(suite.ctx, models.FormFields{Name: "x"})
	suite.NoError(err)
	suite.Equal(service.StateRejected, suite.controller.State())

	suite.controller.Reset()

	snap := suite.controller.Snapshot()
	suite.Equal(service.StateIdle, snap.State)
	suite.Equal(models.FormFields{}, snap.Fields)
	suite.Empty(snap.Message)
}

// TestSubmitSeesRemovedMembers tests that a submit counts the members the API has now, not the
// ones loaded for the view
func (suite *FormControllerTestSuite) TestSubmitSeesRemovedMembers() {
	suite.load(coach(), models.Member{ID: 2, ParentID: 1, FullName: "Jonas Jonaitis", Email: "jonas.jonaitis@example.com"})

	gomock.InOrder(
		suite.expectFetch(coach()),
		suite.mockClient.EXPECT().CreateOne(gomock.Any(), gomock.Any()).Return(nil).Times(1),
		suite.expectFetch(coach(), models.Member{ID: 3, ParentID: 1, FullName: "Petras Petraitis"}),
	)

	result, err := suite.controller.SubmitFields(suite.ctx, validFields())

	suite.NoError(err)
	suite.True(result.Created)
	suite.Equal(2, suite.controller.Snapshot().MembersCount)
}

// TestSubmitSeesAddedMembers tests that names created elsewhere count as duplicates
func (suite *FormControllerTestSuite) TestSubmitSeesAddedMembers() {
	suite.expectFetch(coach(), models.Member{ID: 2, ParentID: 1, FullName: "Petras Petraitis"})

	result, err := suite.controller.SubmitFields(suite.ctx, validFields())

	suite.NoError(err)
	suite.Equal(service.ReasonValidationFailed, result.Reason)
	suite.Equal([]string{`Name "Petras Petraitis" already exists!`}, result.Validation.Messages())
	suite.Len(suite.controller.Members(), 2)
}

// TestSubmitLoadFailed tests that an unreadable member list blocks the create instead of
// passing the capacity and duplicate rules on an empty list
func (suite *FormControllerTestSuite) TestSubmitLoadFailed() {
	down := &apperrors.NetworkError{Op: "GET", URL: "http://x/members", Err: errors.New("connection refused")}
	suite.mockClient.EXPECT().FetchAll(gomock.Any()).Return(nil, down).Times(1)

	result, err := suite.controller.SubmitFields(suite.ctx, validFields())

	suite.NoError(err)
	suite.Equal(service.StateRejected, result.State)
	suite.Equal(service.ReasonSubmitFailed, result.Reason)
	suite.Equal(service.LoadFailedMessage, result.Message)
	suite.ErrorIs(result.Err, down)
	suite.Nil(result.Validation)
	suite.Equal(service.LoadFailedMessage, suite.controller.Snapshot().Message)

	// the guard is released, so the next click tries again
	gomock.InOrder(
		suite.expectFetch(coach()),
		suite.mockClient.EXPECT().CreateOne(gomock.Any(), gomock.Any()).Return(nil).Times(1),
		suite.expectFetch(coach()),
	)

	retry, err := suite.controller.Submit(suite.ctx)

	suite.NoError(err)
	suite.True(retry.Created)
}

// TestValidateFieldsUsesCachedMembers tests the dry-run validation
func (suite *FormControllerTestSuite) TestValidateFieldsUsesCachedMembers() {
	suite.load(coach())

	result := suite.controller.ValidateFields(models.FormFields{
		Name:        "Vardas Pavardenis",
		Email:       "vardas.pavardenis@example.com",
		CoachSelect: "1",
	})

	suite.Equal([]string{`Name "Vardas Pavardenis" already exists!`}, result.Messages())
	suite.Equal(service.StateIdle, suite.controller.State())
}

// TestMembersReturnsCopy tests that callers cannot mutate the cache
func (suite *FormControllerTestSuite) TestMembersReturnsCopy() {
	suite.load(coach())

	members := suite.controller.Members()
	members[0].FullName = "Changed"

	suite.Equal("Vardas Pavardenis", suite.controller.Members()[0].FullName)
}

// TestFormControllerTestSuite runs the test suite
func TestFormControllerTestSuite(t *testing.T) {
	suite.Run(t, new(FormControllerTestSuite))
}
