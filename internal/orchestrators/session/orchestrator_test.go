package session_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/tavernkeep/tavernkeep/internal/clients/files"
	"github.com/tavernkeep/tavernkeep/internal/conversation"
	"github.com/tavernkeep/tavernkeep/internal/entities"
	"github.com/tavernkeep/tavernkeep/internal/errors"
	"github.com/tavernkeep/tavernkeep/internal/menu"
	"github.com/tavernkeep/tavernkeep/internal/orchestrators/session"
	"github.com/tavernkeep/tavernkeep/internal/repositories/roster"
	rostermock "github.com/tavernkeep/tavernkeep/internal/repositories/roster/mock"
	"github.com/tavernkeep/tavernkeep/internal/transport"
	transportmock "github.com/tavernkeep/tavernkeep/internal/transport/mock"
)

const testUserID = "user-7"

type stubRoller struct{}

func (r *stubRoller) Roll(_ int) (int, error) { return 3, nil }
func (r *stubRoller) RollN(count, _ int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		out[i] = 3
	}
	return out, nil
}

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockRepo      *rostermock.MockRepository
	mockTransport *transportmock.MockTransport
	svc           session.Service
	ctx           context.Context

	// sent collects every screen delivered during a test
	sent []menu.Screen
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = rostermock.NewMockRepository(s.ctrl)
	s.mockTransport = transportmock.NewMockTransport(s.ctrl)
	s.ctx = context.Background()
	s.sent = nil

	s.mockTransport.EXPECT().
		Send(gomock.Any(), testUserID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, screen menu.Screen) (transport.MessageRef, error) {
			s.sent = append(s.sent, screen)
			return "msg-1", nil
		}).
		AnyTimes()

	engine, err := conversation.New(&conversation.Config{DiceRoller: &stubRoller{}})
	s.Require().NoError(err)

	svc, err := session.New(&session.Config{
		Repository: s.mockRepo,
		Engine:     engine,
		Transport:  s.mockTransport,
	})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) newRoster() *entities.Roster {
	r := entities.NewRoster(testUserID)
	ch, err := entities.NewCharacter("Durnik", "dwarf", "male", "fighter", 30)
	s.Require().NoError(err)
	s.Require().NoError(r.Add(ch))
	return r
}

func (s *OrchestratorTestSuite) expectGet(r *entities.Roster) {
	s.mockRepo.EXPECT().
		Get(gomock.Any(), roster.GetInput{UserID: testUserID}).
		Return(&roster.GetOutput{Roster: r}, nil)
}

func (s *OrchestratorTestSuite) handle(ev transport.Event) *session.HandleEventOutput {
	s.T().Helper()
	ev.UserID = testUserID
	out, err := s.svc.HandleEvent(s.ctx, &session.HandleEventInput{Event: ev})
	s.Require().NoError(err)
	return out
}

func (s *OrchestratorTestSuite) TestFreshSessionShowsMainMenu() {
	s.expectGet(s.newRoster())

	out := s.handle(transport.Event{Kind: transport.EventText, Payload: "hello"})
	s.False(out.Persisted)
	s.False(out.Ended)
	s.Require().NotEmpty(s.sent)
	s.Contains(s.sent[0].Text, "Durnik")
}

func (s *OrchestratorTestSuite) TestDirtyTurnPersists() {
	r := s.newRoster()
	s.expectGet(r)
	s.handle(transport.Event{Kind: transport.EventButton, Payload: menu.BtnMainRest})

	s.expectGet(r)
	s.mockRepo.EXPECT().
		Save(gomock.Any(), roster.SaveInput{Roster: r}).
		Return(&roster.SaveOutput{}, nil)

	out := s.handle(transport.Event{Kind: transport.EventButton, Payload: menu.BtnRestLong})
	s.True(out.Persisted)
}

func (s *OrchestratorTestSuite) TestFailedSaveDoesNotAdvance() {
	r := s.newRoster()
	s.Require().NoError(r.ActiveCharacter().ApplyDamage(10))

	s.expectGet(r)
	s.handle(transport.Event{Kind: transport.EventButton, Payload: menu.BtnMainRest})

	s.expectGet(r)
	s.mockRepo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		Return(nil, errors.Unavailable("redis is down"))

	out := s.handle(transport.Event{Kind: transport.EventButton, Payload: menu.BtnRestLong})
	s.False(out.Persisted)
	s.Contains(s.sent[len(s.sent)-1].Text, "Try again in a moment.")

	// The session is still on the rest screen, so the same button retries
	s.expectGet(r)
	s.mockRepo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		Return(&roster.SaveOutput{}, nil)

	out = s.handle(transport.Event{Kind: transport.EventButton, Payload: menu.BtnRestLong})
	s.True(out.Persisted)
}

func (s *OrchestratorTestSuite) TestRepositoryFailureAlertsUser() {
	s.mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(nil, errors.Internal("boom"))

	out := s.handle(transport.Event{Kind: transport.EventText, Payload: "hello"})
	s.False(out.Persisted)
	s.Require().NotEmpty(s.sent)
	s.Contains(s.sent[len(s.sent)-1].Text, "The action was not applied.")
}

func (s *OrchestratorTestSuite) TestStopReturnsToMainMenu() {
	r := s.newRoster()
	s.expectGet(r)
	s.handle(transport.Event{Kind: transport.EventButton, Payload: menu.BtnMainRest})

	s.expectGet(r)
	s.sent = nil
	out := s.handle(transport.Event{Kind: transport.EventButton, Payload: menu.BtnStop})
	s.False(out.Ended)
	s.Require().NotEmpty(s.sent)
	s.Contains(s.sent[len(s.sent)-1].Text, "Durnik")
}

func (s *OrchestratorTestSuite) TestStopWithoutCharacterForgetsSession() {
	r := entities.NewRoster(testUserID)
	s.expectGet(r)
	s.handle(transport.Event{Kind: transport.EventText, Payload: "hello"})

	s.expectGet(r)
	out := s.handle(transport.Event{Kind: transport.EventButton, Payload: menu.BtnStop})
	s.True(out.Ended)

	// The next event starts a fresh session at the entry screen
	s.expectGet(r)
	s.sent = nil
	s.handle(transport.Event{Kind: transport.EventText, Payload: "hello again"})
	s.Require().NotEmpty(s.sent)
	s.Contains(s.sent[0].Text, "no characters yet")
}

func (s *OrchestratorTestSuite) TestAttachmentWithoutStoreRejected() {
	out := s.handle(transport.Event{
		Kind:           transport.EventAttachment,
		Data:           []byte{1, 2, 3},
		AttachmentKind: files.KindImage,
	})
	s.False(out.Persisted)
	s.Require().NotEmpty(s.sent)
	s.Contains(s.sent[0].Text, "not supported")
}

func (s *OrchestratorTestSuite) TestEventRequiresUserID() {
	_, err := s.svc.HandleEvent(s.ctx, &session.HandleEventInput{
		Event: transport.Event{Kind: transport.EventText, Payload: "hello"},
	})
	s.True(errors.IsInvalidArgument(err))
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
