// Package store holds the class progress data set in memory and mirrors every
// change to a string key-value backend.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/myclassprogress/internal/models"
	appErrors "github.com/noah-isme/myclassprogress/pkg/errors"
)

// Backend keys. Names match the blobs written by the browser dashboard.
const (
	KeyStudents    = "students"
	KeyTeachers    = "teachers"
	KeyTasks       = "tasks"
	KeyGrades      = "grades"
	KeyCurrentUser = "currentUser"
	KeySettings    = "settings"
)

// Keys lists every backend key in the order they are written.
var Keys = []string{KeyStudents, KeyTeachers, KeyTasks, KeyGrades, KeyCurrentUser, KeySettings}

// TimestampLayout formats createdAt/updatedAt values.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

const dateLayout = "2006-01-02"

// Backend is a synchronous string key-value store with finite capacity.
// Get returns appErrors.ErrKeyNotFound for absent keys.
type Backend interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// BatchSetter is implemented by backends that can write several keys at once.
type BatchSetter interface {
	SetMany(ctx context.Context, values map[string]string) error
}

// PersistErrorHandler is told about every failed save. The in-memory state
// is already updated when it runs.
type PersistErrorHandler func(ctx context.Context, err error)

// Metrics receives store level measurements.
type Metrics interface {
	ObservePersist(duration time.Duration, err error)
	IncReseed(reason string)
}

// Store is the single owner of students, teachers, tasks, grades, settings and the session.
type Store struct {
	mu sync.RWMutex

	backend        Backend
	logger         *zap.Logger
	clock          func() time.Time
	newID          func(prefix string) string
	onPersistError PersistErrorHandler
	metrics        Metrics
	reset          *ResetGuard

	students    []models.Student
	teachers    []models.Teacher
	tasks       []models.Task
	grades      []models.Grade
	currentUser *models.SessionUser
	settings    models.Settings
}

// Option customises a Store.
type Option func(*Store)

// WithClock overrides the time source.
func WithClock(clock func() time.Time) Option {
	return func(s *Store) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithIDGenerator overrides record id generation.
func WithIDGenerator(gen func(prefix string) string) Option {
	return func(s *Store) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// WithPersistErrorHandler registers the save failure hook.
func WithPersistErrorHandler(h PersistErrorHandler) Option {
	return func(s *Store) {
		if h != nil {
			s.onPersistError = h
		}
	}
}

// WithMetrics attaches a metrics sink.
func WithMetrics(m Metrics) Option {
	return func(s *Store) {
		s.metrics = m
	}
}

// WithResetGuard sets the guard issuing reset confirmation tokens.
func WithResetGuard(g *ResetGuard) Option {
	return func(s *Store) {
		if g != nil {
			s.reset = g
		}
	}
}

// New loads the store from backend. Unreadable data is logged and replaced by
// the demo data set, so New never fails.
func New(ctx context.Context, backend Backend, logger *zap.Logger, opts ...Option) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{
		backend:  backend,
		logger:   logger,
		clock:    time.Now,
		settings: defaultSettings(),
	}
	s.newID = func(prefix string) string { return GenerateID(prefix, s.clock()) }
	s.onPersistError = func(context.Context, error) {}
	for _, opt := range opts {
		opt(s)
	}
	if s.reset == nil {
		s.reset = NewResetGuard(nil, 0, s.clock)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(ctx); err != nil {
		s.logger.Error("failed to load stored data, falling back to demo data", zap.Error(err))
		s.reseed(ctx, "load_error")
		return s
	}
	if len(s.students) == 0 || len(s.teachers) == 0 {
		s.logger.Info("no stored accounts, seeding demo data")
		s.reseed(ctx, "empty")
	}
	return s
}

func (s *Store) load(ctx context.Context) error {
	var (
		students []models.Student
		teachers []models.Teacher
		tasks    []models.Task
		grades   []models.Grade
		user     *models.SessionUser
		settings *models.Settings
	)
	targets := []struct {
		key  string
		dest interface{}
	}{
		{KeyStudents, &students},
		{KeyTeachers, &teachers},
		{KeyTasks, &tasks},
		{KeyGrades, &grades},
		{KeyCurrentUser, &user},
		{KeySettings, &settings},
	}
	for _, target := range targets {
		raw, err := s.backend.Get(ctx, target.key)
		if err != nil {
			if errors.Is(err, appErrors.ErrKeyNotFound) {
				continue
			}
			return fmt.Errorf("read %s: %w", target.key, err)
		}
		if err := json.Unmarshal([]byte(raw), target.dest); err != nil {
			return fmt.Errorf("decode %s: %w", target.key, err)
		}
	}

	s.students = students
	s.teachers = teachers
	s.tasks = tasks
	s.grades = grades
	s.currentUser = user
	if settings != nil {
		s.settings = *settings
	}
	return nil
}

// reseed replaces every collection and the settings with demo data and persists.
// The session pointer is left alone. Callers hold the write lock.
func (s *Store) reseed(ctx context.Context, reason string) {
	demo := DemoData()
	s.students = demo.Students
	s.teachers = demo.Teachers
	s.tasks = demo.Tasks
	s.grades = demo.Grades
	s.settings = demo.Settings
	if s.metrics != nil {
		s.metrics.IncReseed(reason)
	}
	_ = s.persist(ctx)
}

// Save writes the full state to the backend. Mutations already do this; Save
// exists to retry after a reported failure.
func (s *Store) Save(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.persist(ctx)
}

// persist serialises every key. Failures are logged and handed to the
// persist error hook; memory is never rolled back.
func (s *Store) persist(ctx context.Context) error {
	start := time.Now()
	err := s.write(ctx)
	if s.metrics != nil {
		s.metrics.ObservePersist(time.Since(start), err)
	}
	if err == nil {
		return nil
	}

	wrapped := appErrors.Wrap(err, appErrors.ErrPersistence.Code, appErrors.ErrPersistence.Status, appErrors.ErrPersistence.Message)
	s.logger.Error("failed to persist data", zap.Error(err))
	s.onPersistError(ctx, wrapped)
	return wrapped
}

func (s *Store) write(ctx context.Context) error {
	values, err := s.encode()
	if err != nil {
		return err
	}
	if batch, ok := s.backend.(BatchSetter); ok {
		return batch.SetMany(ctx, values)
	}
	for _, key := range Keys {
		if err := s.backend.Set(ctx, key, values[key]); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) encode() (map[string]string, error) {
	sources := map[string]interface{}{
		KeyStudents:    nonNil(s.students),
		KeyTeachers:    nonNil(s.teachers),
		KeyTasks:       nonNil(s.tasks),
		KeyGrades:      nonNil(s.grades),
		KeyCurrentUser: s.currentUser,
		KeySettings:    s.settings,
	}
	values := make(map[string]string, len(sources))
	for key, src := range sources {
		raw, err := json.Marshal(src)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", key, err)
		}
		values[key] = string(raw)
	}
	return values, nil
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

func (s *Store) now() string {
	return s.clock().UTC().Format(TimestampLayout)
}

func (s *Store) today() string {
	return s.clock().Format(dateLayout)
}

func defaultSettings() models.Settings {
	return models.Settings{
		AcademicYear: "2024/2025",
		Semester:     1,
		SchoolName:   "SMA Negeri 1 Jakarta",
	}
}
