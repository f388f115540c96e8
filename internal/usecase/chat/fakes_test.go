package chat_test

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	domainAppt "github.com/barberiapro/booking-api/internal/domain/appointment"
	domain "github.com/barberiapro/booking-api/internal/domain/chat"
	"github.com/barberiapro/booking-api/internal/models"
)

// fakeChatStore keeps transcripts in memory, append order preserved.
type fakeChatStore struct {
	mu       sync.Mutex
	sessions map[string][]models.ChatMessage
}

func newFakeChatStore() *fakeChatStore {
	return &fakeChatStore{sessions: map[string][]models.ChatMessage{}}
}

func (s *fakeChatStore) AppendMessage(ctx context.Context, sessionID, role, content string) (*models.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := models.ChatMessage{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	}
	s.sessions[sessionID] = append(s.sessions[sessionID], msg)
	return &msg, nil
}

func (s *fakeChatStore) ListMessages(ctx context.Context, sessionID string) ([]models.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.ChatMessage, len(s.sessions[sessionID]))
	copy(out, s.sessions[sessionID])
	return out, nil
}

var _ domain.Store = (*fakeChatStore)(nil)

// fakeCompleter scripts the AI call.
type fakeCompleter struct {
	fn func(ctx context.Context, system, user string) (string, error)
}

func (f *fakeCompleter) Complete(ctx context.Context, system, user string) (string, error) {
	return f.fn(ctx, system, user)
}

// fakeCatalog serves the fixed prompt inputs; appointment methods are
// unused on the chat path.
type fakeCatalog struct{}

func (fakeCatalog) ListBarbers(ctx context.Context) ([]models.Barber, error) {
	return []models.Barber{
		{Name: "Carlos Martínez", Specialty: "Especialista en cortes clásicos y modernos"},
	}, nil
}

func (fakeCatalog) GetBarberByID(ctx context.Context, id string) (*models.Barber, error) {
	return nil, nil
}

func (fakeCatalog) ListServices(ctx context.Context) ([]models.Service, error) {
	return []models.Service{
		{Name: "Corte de Cabello", Price: 250, Duration: 30},
	}, nil
}

func (fakeCatalog) GetServiceByID(ctx context.Context, id string) (*models.Service, error) {
	return nil, nil
}

func (fakeCatalog) ListAppointments(ctx context.Context, f domainAppt.ListFilter) ([]models.Appointment, error) {
	return nil, nil
}

func (fakeCatalog) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	return nil
}

var _ domainAppt.Repository = fakeCatalog{}

// noopAuditWriter satisfies audit.Writer.
type noopAuditWriter struct{}

func (noopAuditWriter) Log(action, entity, entityID string, metadata any) error {
	return nil
}
