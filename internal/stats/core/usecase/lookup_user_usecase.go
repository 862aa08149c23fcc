package usecase

import (
	"context"
	"errors"
	"strings"

	"session-stats-service/internal/stats/core/ports"
)

var (
	ErrInvalidUsername = errors.New("invalid username")
	ErrUserNotFound    = errors.New("user not found")
)

type LookupUserUseCase struct {
	reader ports.EventReaderPort
}

func NewLookupUserUseCase(reader ports.EventReaderPort) *LookupUserUseCase {
	return &LookupUserUseCase{reader: reader}
}

type LookupUserInput struct {
	Username string
}

// Execute resolves a display name to a user id by a case-insensitive scan of
// event usernames. Usernames change over time, so the latest sighting wins.
func (uc *LookupUserUseCase) Execute(ctx context.Context, in LookupUserInput) (int64, error) {
	if strings.TrimSpace(in.Username) == "" {
		return 0, ErrInvalidUsername
	}

	events, err := uc.reader.LoadEvents(ctx)
	if err != nil {
		return 0, err
	}

	var (
		userID int64
		found  bool
	)
	for _, e := range events {
		if e.Username != "" && strings.EqualFold(e.Username, in.Username) {
			userID = e.UserID
			found = true
		}
	}

	if !found {
		return 0, ErrUserNotFound
	}

	return userID, nil
}
