package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"petgallery/internal/domain/models"
	"petgallery/internal/game"
	"petgallery/internal/lib/logger/sl"
	"petgallery/internal/metrics"
	"petgallery/internal/repository"
	"petgallery/internal/transport/http/dto"

	"github.com/google/uuid"
)

var (
	ErrItemNotFound = errors.New("gallery item not found")
	ErrNoSession    = errors.New("no active guess session")
)

const votePromptKey = "vote_prompt_shown"

type GuessService struct {
	log         *slog.Logger
	items       repository.GalleryRepository
	guesses     repository.GuessRepository
	prefs       repository.PrefsRepository
	sessions    *game.SessionStore
	votePageURL string
}

func NewGuessService(
	log *slog.Logger,
	items repository.GalleryRepository,
	guesses repository.GuessRepository,
	prefs repository.PrefsRepository,
	sessions *game.SessionStore,
	votePageURL string,
) *GuessService {
	return &GuessService{
		log:         log,
		items:       items,
		guesses:     guesses,
		prefs:       prefs,
		sessions:    sessions,
		votePageURL: votePageURL,
	}
}

// OpenSession starts (or restarts) a guessing round for one item: fresh
// attempt counter, freshly generated option set. Reopening always grants
// the full attempt count again.
func (s *GuessService) OpenSession(ctx context.Context, userID, itemID uuid.UUID) (*dto.GuessOptionsResponse, error) {
	const op = "service.GuessService.OpenSession"
	log := s.log.With(
		slog.String("op", op),
		slog.String("item_id", itemID.String()),
	)

	item, err := s.items.GetItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		log.Error("failed to load item", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !item.IsPublic {
		return nil, ErrItemNotFound
	}

	// A directory failure degrades to synthetic-only distractors rather
	// than blocking the game.
	directory, err := s.items.DistinctNames(ctx)
	if err != nil {
		log.Warn("name directory unavailable, padding with placeholders", sl.Err(err))
		directory = nil
	}

	correct := game.UnknownName
	if item.PersonName != nil {
		correct = *item.PersonName
	}

	sess := s.sessions.Open(sessionKey(userID, itemID), correct, directory)

	log.Info("guess session opened")

	return &dto.GuessOptionsResponse{
		Options:      sess.Options(),
		AttemptsLeft: sess.AttemptsLeft(),
	}, nil
}

// SubmitGuess evaluates one selection against the open session and persists
// the attempt. The game outcome is still returned if the analytics write
// fails; the session itself never depends on persisted state.
func (s *GuessService) SubmitGuess(ctx context.Context, userID, itemID uuid.UUID, guessedName string) (*dto.GuessResultResponse, error) {
	const op = "service.GuessService.SubmitGuess"
	log := s.log.With(
		slog.String("op", op),
		slog.String("item_id", itemID.String()),
	)

	sess, ok := s.sessions.Get(sessionKey(userID, itemID))
	if !ok {
		return nil, ErrNoSession
	}

	res, err := sess.Submit(guessedName)
	if err != nil {
		return nil, err
	}

	if res.Correct {
		metrics.GuessesTotal.WithLabelValues("correct").Inc()
	} else {
		metrics.GuessesTotal.WithLabelValues("incorrect").Inc()
	}

	guess := models.Guess{
		GalleryItemID: itemID,
		UserID:        userID,
		GuessedName:   guessedName,
		IsCorrect:     res.Correct,
	}
	if _, err := s.guesses.SaveGuess(ctx, guess); err != nil {
		log.Error("failed to persist guess", sl.Err(err))
	}

	out := &dto.GuessResultResponse{
		IsCorrect:    res.Correct,
		AttemptsLeft: res.AttemptsLeft,
		Revealed:     res.Revealed,
		CorrectName:  res.CorrectName,
	}

	if res.Correct {
		out.ShowVotePrompt = s.shouldShowVotePrompt(ctx, userID, log)
		if out.ShowVotePrompt {
			out.VotePageURL = s.votePageURL
		}
	}

	return out, nil
}

func (s *GuessService) Stats(ctx context.Context, userID uuid.UUID) (models.UserStats, error) {
	const op = "service.GuessService.Stats"

	stats, err := s.guesses.UserStats(ctx, userID)
	if err != nil {
		s.log.Error("failed to load user stats", slog.String("op", op), sl.Err(err))
		return models.UserStats{}, fmt.Errorf("%s: %w", op, err)
	}

	return stats, nil
}

// shouldShowVotePrompt reports whether the external vote prompt should be
// surfaced, and marks it shown. At most once ever per user; any store
// failure suppresses the prompt instead of surfacing an error.
func (s *GuessService) shouldShowVotePrompt(ctx context.Context, userID uuid.UUID, log *slog.Logger) bool {
	_, shown, err := s.prefs.Get(ctx, userID.String(), votePromptKey)
	if err != nil {
		log.Warn("failed to read vote prompt flag", sl.Err(err))
		return false
	}
	if shown {
		return false
	}

	if err := s.prefs.Set(ctx, userID.String(), votePromptKey, "true"); err != nil {
		log.Warn("failed to mark vote prompt shown", sl.Err(err))
		return false
	}

	return true
}

func sessionKey(userID, itemID uuid.UUID) string {
	return userID.String() + ":" + itemID.String()
}
