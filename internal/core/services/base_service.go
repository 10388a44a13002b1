package services

import (
	"context"
	"log/slog"

	"github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/apperrors"
	"github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/core/domain"
	portssvc "github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/core/ports/services"
	"github.com/francisfrancinexavier-create/Financeiro-Funeraria/internal/middleware"
)

// errNoAuthorizer is returned when a service was wired without its authorizer.
var errNoAuthorizer = apperrors.ErrForbidden

// BaseService provides common functionality for all services
type BaseService struct {
	CompanyAuthorizer portssvc.CompanyAuthorizerSvc
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// AuthorizeUser checks that the user holds the required role in the company.
// A missing authorizer denies access: entry services must never run unscoped.
func (s *BaseService) AuthorizeUser(ctx context.Context, userID, companyID string, requiredRole domain.UserCompanyRole) error {
	if s.CompanyAuthorizer == nil {
		s.LogError(ctx, errNoAuthorizer, "No company authorizer configured, denying access",
			slog.String("user_id", userID),
			slog.String("company_id", companyID))
		return errNoAuthorizer
	}
	return s.CompanyAuthorizer.AuthorizeUserAction(ctx, userID, companyID, requiredRole)
}
