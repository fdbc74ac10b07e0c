package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shandysiswandi/formguard/internal/pkg/clock"
	"github.com/shandysiswandi/formguard/internal/pkg/config"
	"github.com/shandysiswandi/formguard/internal/pkg/goroutine"
	"github.com/shandysiswandi/formguard/internal/pkg/instrument"
	"github.com/shandysiswandi/formguard/internal/pkg/validator"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

type mockRepoMessaging struct {
	mock.Mock
}

func (m *mockRepoMessaging) PublishFormValidated(ctx context.Context, msg FormValidatedEvent) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

type testDeps struct {
	repo *mockRepoMessaging
	gm   *goroutine.Manager
}

func newTestUsecase(t *testing.T, cfg config.Config) (*Usecase, *testDeps) {
	t.Helper()

	v, err := validator.NewV10Validator()
	require.NoError(t, err)

	deps := &testDeps{
		repo: &mockRepoMessaging{},
		gm:   goroutine.NewManager(4),
	}

	uc := New(Dependency{
		RepoMessaging: deps.repo,
		Validator:     v,
		Config:        cfg,
		Clock:         clock.Fixed(fixedNow),
		Instrument:    instrument.NewNoop(),
		Goroutine:     deps.gm,
	})

	return uc, deps
}

// expectPublish accepts any publish and returns nil.
func (d *testDeps) expectPublish() {
	d.repo.On("PublishFormValidated", mock.Anything, mock.AnythingOfType("usecase.FormValidatedEvent")).Return(nil)
}

// wait drains background publishing.
func (d *testDeps) wait(t *testing.T) {
	t.Helper()
	_ = d.gm.Wait()
}

func validRegistration() RegistrationInput {
	return RegistrationInput{
		Email:           "jane@example.com",
		Firstname:       "Jane",
		Lastname:        "Doe",
		Phone:           "1234-567-8901",
		Password:        "Abc123!x",
		ConfirmPassword: "Abc123!x",
		PinKey:          "0123456789abcdef0123456789abcdef",
	}
}

func validLogin() LoginInput {
	return LoginInput{
		Email:    "jane@example.com",
		Password: "anything",
		PinKey:   "pin",
	}
}
