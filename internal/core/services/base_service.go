package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/SscSPs/checkin_ledger/internal/apperrors"
	"github.com/SscSPs/checkin_ledger/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	validate *validator.Validate
}

func newBaseService() BaseService {
	v := validator.New()
	// Reuse the gin binding tags so requests are checked identically off the HTTP path.
	v.SetTagName("binding")
	return BaseService{validate: v}
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
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// validatePayload runs the binding rules of req and maps failures to apperrors.ErrValidation.
func (s *BaseService) validatePayload(req any) error {
	if s.validate == nil {
		return nil
	}
	if err := s.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: field %s failed on '%s'", apperrors.ErrValidation, fe.Field(), fe.Tag())
		}
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	return nil
}

// requireUser fails with apperrors.ErrNotAuthenticated when no caller identity is present.
func requireUser(userID string) error {
	if userID == "" {
		return apperrors.ErrNotAuthenticated
	}
	return nil
}
