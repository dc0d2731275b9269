package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sort"

	"github.com/GoFitLab/FitCoach/internal/domain"
	"github.com/google/uuid"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeUserStorage — in-memory реализация ports.UserStorage.
type fakeUserStorage struct {
	users map[string]*domain.User
	err   error
}

func newFakeUserStorage() *fakeUserStorage {
	return &fakeUserStorage{users: make(map[string]*domain.User)}
}

func (s *fakeUserStorage) CreateUser(_ context.Context, user *domain.User) error {
	if s.err != nil {
		return s.err
	}
	if _, exists := s.users[user.Email]; exists {
		return domain.ErrDuplicateEmail
	}
	copied := *user
	s.users[user.Email] = &copied
	return nil
}

func (s *fakeUserStorage) GetUserByEmail(_ context.Context, email string) (*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	user, ok := s.users[email]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

// fakeWorkoutStorage — in-memory реализация ports.WorkoutStorage
// с сортировкой от новых к старым, как в настоящем хранилище.
type fakeWorkoutStorage struct {
	workouts []domain.Workout
	err      error
}

func (s *fakeWorkoutStorage) SaveWorkout(_ context.Context, workout *domain.Workout) error {
	if s.err != nil {
		return s.err
	}
	s.workouts = append(s.workouts, *workout)
	return nil
}

func (s *fakeWorkoutStorage) ListWorkoutsByUser(ctx context.Context, userID uuid.UUID) ([]domain.Workout, error) {
	return s.ListRecentWorkoutsByUser(ctx, userID, 0)
}

func (s *fakeWorkoutStorage) ListRecentWorkoutsByUser(_ context.Context, userID uuid.UUID, limit int) ([]domain.Workout, error) {
	if s.err != nil {
		return nil, s.err
	}
	var result []domain.Workout
	for _, w := range s.workouts {
		if w.UserID == userID {
			result = append(result, w)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// fakeHasher — дешевый PasswordHasher без настоящего bcrypt.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return domain.ErrInvalidCredentials
	}
	return nil
}

// fakeIssuer — TokenIssuer с предсказуемым токеном.
type fakeIssuer struct {
	err error
}

func (i fakeIssuer) Issue(userID uuid.UUID, email string) (string, error) {
	if i.err != nil {
		return "", i.err
	}
	return "token-for-" + userID.String(), nil
}

// fakeGenerator — PlanGenerator, возвращающий заранее заданный ответ
// и запоминающий промпты последнего вызова.
type fakeGenerator struct {
	configured bool
	response   string
	err        error

	calls      int
	lastSystem string
	lastUser   string
}

func (g *fakeGenerator) Configured() bool {
	return g.configured
}

func (g *fakeGenerator) CompleteJSON(_ context.Context, systemPrompt, userPrompt string) (string, error) {
	g.calls++
	g.lastSystem = systemPrompt
	g.lastUser = userPrompt
	if g.err != nil {
		return "", g.err
	}
	return g.response, nil
}

var errStorageDown = errors.New("storage unavailable")
