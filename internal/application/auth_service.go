package application

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/emrebktas/modpack-assistant/internal/application/dto"
	"github.com/emrebktas/modpack-assistant/internal/domain"
)

type AuthService struct {
	users     domain.UserRepository
	passwords domain.PasswordEncoder
	tokens    domain.TokenService
	approvals domain.ApprovalTokenService
	notifier  domain.ApprovalNotifier
	log       *zap.Logger
}

func NewAuthService(
	users domain.UserRepository,
	passwords domain.PasswordEncoder,
	tokens domain.TokenService,
	approvals domain.ApprovalTokenService,
	notifier domain.ApprovalNotifier,
	log *zap.Logger,
) *AuthService {
	return &AuthService{
		users:     users,
		passwords: passwords,
		tokens:    tokens,
		approvals: approvals,
		notifier:  notifier,
		log:       log,
	}
}

// Register creates a PENDING account, echoes a session token back to the
// caller and asks the administrator for approval by email. The echoed
// token grants no access while the account is pending: login and the auth
// middleware both require APPROVED.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterReq) (*dto.AuthResp, error) {
	taken, err := s.users.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrUsernameTaken
	}
	taken, err = s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrEmailTaken
	}

	hash, err := s.passwords.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := domain.NewUser(uuid.NewString(), req.Username, req.Email, hash)
	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}

	token, _, err := s.tokens.Generate(user)
	if err != nil {
		return nil, fmt.Errorf("generate session token: %w", err)
	}
	approvalToken, err := s.approvals.Generate(user.ID)
	if err != nil {
		return nil, fmt.Errorf("generate approval token: %w", err)
	}

	s.notifier.NotifyAdmin(ctx, user.Username, user.Email, approvalToken)
	s.log.Info("user registered, awaiting approval",
		zap.String("user_id", user.ID),
		zap.String("username", user.Username))

	return &dto.AuthResp{
		Token:    token,
		Username: user.Username,
		Email:    user.Email,
		Role:     string(user.Role),
	}, nil
}

// Login deliberately reports the same error for unknown usernames and
// wrong passwords.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginReq) (*dto.AuthResp, error) {
	user, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !s.passwords.Compare(user.Password, req.Password) {
		return nil, domain.ErrInvalidCredentials
	}
	if user.Status != domain.StatusApproved {
		return nil, domain.ErrAccountNotApproved
	}

	token, _, err := s.tokens.Generate(user)
	if err != nil {
		return nil, fmt.Errorf("generate session token: %w", err)
	}
	return &dto.AuthResp{
		Token:    token,
		Username: user.Username,
		Email:    user.Email,
		Role:     string(user.Role),
	}, nil
}

// ResolveApproval consumes an approval token exactly once. Single use is
// enforced by the status compare-and-swap: a replayed token finds the
// account no longer PENDING and fails without re-notifying.
func (s *AuthService) ResolveApproval(ctx context.Context, token, action string) (string, error) {
	act, err := domain.ParseAction(action)
	if err != nil {
		return "", err
	}
	userID, err := s.approvals.Validate(token)
	if err != nil {
		return "", err
	}
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return "", domain.ErrInvalidApprovalToken
	}

	target, err := domain.Transition(user.Status, act)
	if err != nil {
		return "", domain.ErrApprovalAlreadyResolved
	}

	ok, err := s.users.ResolveStatus(ctx, user.ID, target)
	if err != nil {
		return "", err
	}
	if !ok {
		// Lost the race against a concurrent resolution.
		return "", domain.ErrApprovalAlreadyResolved
	}

	s.notifier.NotifyApplicant(ctx, user.Email, user.Username, act == domain.ActionApprove)
	s.log.Info("registration resolved",
		zap.String("user_id", user.ID),
		zap.String("status", string(target)))

	if act == domain.ActionApprove {
		return fmt.Sprintf("User %s has been approved and can now log in. A confirmation email was sent to the user.", user.Username), nil
	}
	return fmt.Sprintf("User %s has been rejected. A notification email was sent to the user.", user.Username), nil
}
