package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/ticketflow/ticketflow/internal/auth"
	"github.com/ticketflow/ticketflow/internal/domain"
	"github.com/ticketflow/ticketflow/internal/navigation"
	"github.com/ticketflow/ticketflow/internal/session"
	"github.com/ticketflow/ticketflow/internal/state"
	apperrors "github.com/ticketflow/ticketflow/pkg/util"
)

// User-visible texts of the auth flows.
const (
	LoginSucceededText  = "Login successful! Redirecting..."
	SignupSucceededText = "Signup successful! Creating session and redirecting..."
	LoginFailedText     = "Login failed."
	InvalidCredentials  = "Invalid credentials. Please check your email and password."
	LoggedOutText       = "You have been logged out successfully."
)

// AuthService coordinates the mock login, signup and logout flows.
type AuthService struct {
	sessions *session.Store
	guard    *navigation.Guard
	store    *state.Store
	notifier navigation.Notifier
	tokenMgr *auth.TokenManager
	logger   *zap.Logger
}

// AuthDependencies encapsulates collaborators of the auth service.
type AuthDependencies struct {
	Sessions     *session.Store
	Guard        *navigation.Guard
	Store        *state.Store
	Notifier     navigation.Notifier
	TokenManager *auth.TokenManager
	Logger       *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(deps AuthDependencies) *AuthService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		sessions: deps.Sessions,
		guard:    deps.Guard,
		store:    deps.Store,
		notifier: deps.Notifier,
		tokenMgr: deps.TokenManager,
		logger:   logger,
	}
}

// Boot syncs the state with the persisted session. The initial route is
// dashboard when a session exists and home otherwise.
func (s *AuthService) Boot(ctx context.Context) state.State {
	_, authenticated := s.sessions.Load(ctx)
	route := domain.RouteHome
	if authenticated {
		route = domain.RouteDashboard
	}
	s.store.Dispatch(ctx, state.SetRoute{Route: route})
	s.logger.Info("session restored", zap.Bool("authenticated", authenticated))
	return s.guard.SetAuthenticated(ctx, authenticated)
}

// Signup stores the credential and opens a session for it.
func (s *AuthService) Signup(ctx context.Context, email, password string) (state.State, error) {
	if err := auth.ValidateCredentials(email, password); err != nil {
		return s.store.Snapshot(), err
	}
	s.sessions.RecordCredential(ctx, email, password)
	next, err := s.openSession(ctx, email)
	if err != nil {
		return next, err
	}
	s.notifier.Show(SignupSucceededText, domain.NoticeSuccess)
	return next, nil
}

// Login verifies the pair against the stored credential and opens a session.
func (s *AuthService) Login(ctx context.Context, email, password string) (state.State, error) {
	if err := auth.ValidateCredentials(email, password); err != nil {
		return s.store.Snapshot(), err
	}
	if !s.sessions.VerifyCredential(ctx, email, password) {
		s.logger.Info("login rejected", zap.String("email", email))
		s.notifier.Show(LoginFailedText, domain.NoticeError)
		return s.store.Snapshot(), apperrors.NewAuthenticationFailed(InvalidCredentials)
	}
	next, err := s.openSession(ctx, email)
	if err != nil {
		return next, err
	}
	s.notifier.Show(LoginSucceededText, domain.NoticeSuccess)
	return next, nil
}

// Logout ends the session. It is called once the user confirmed.
func (s *AuthService) Logout(ctx context.Context) state.State {
	s.sessions.Clear(ctx)
	s.store.Dispatch(ctx, state.SetRoute{Route: domain.RouteHome})
	next := s.guard.SetAuthenticated(ctx, false)
	s.notifier.Show(LoggedOutText, domain.NoticeInfo)
	return next
}

// LastEmail returns the last successfully used email as a form hint.
func (s *AuthService) LastEmail(ctx context.Context) (string, bool) {
	return s.sessions.LastEmail(ctx)
}

func (s *AuthService) openSession(ctx context.Context, email string) (state.State, error) {
	token, err := s.tokenMgr.GenerateToken(email)
	if err != nil {
		return s.store.Snapshot(), apperrors.NewInternalError(err)
	}
	s.sessions.Save(ctx, token)
	s.sessions.RecordLastEmail(ctx, email)
	return s.guard.SetAuthenticated(ctx, true), nil
}
