package handlers_test

import (
	"context"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/barberiapro/booking-api/internal/audit"
	domain "github.com/barberiapro/booking-api/internal/domain/appointment"
	domainChat "github.com/barberiapro/booking-api/internal/domain/chat"
	"github.com/barberiapro/booking-api/internal/handlers"
	"github.com/barberiapro/booking-api/internal/httperr"
	"github.com/barberiapro/booking-api/internal/models"
	ucAppointment "github.com/barberiapro/booking-api/internal/usecase/appointment"
	ucChat "github.com/barberiapro/booking-api/internal/usecase/chat"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func bkBarber(id, name string) models.Barber {
	return models.Barber{ID: id, Name: name, Rating: 5, Available: true}
}

func bkService(id, name string) models.Service {
	return models.Service{ID: id, Name: name, Duration: 30, Price: 250}
}

// In-memory doubles mirroring the production repositories.

type fakeRepository struct {
	mu sync.Mutex

	barbers      map[string]models.Barber
	services     map[string]models.Service
	appointments []models.Appointment
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		barbers:  map[string]models.Barber{},
		services: map[string]models.Service{},
	}
}

func (r *fakeRepository) ListBarbers(ctx context.Context) ([]models.Barber, error) {
	out := make([]models.Barber, 0, len(r.barbers))
	for _, b := range r.barbers {
		out = append(out, b)
	}
	return out, nil
}

func (r *fakeRepository) GetBarberByID(ctx context.Context, id string) (*models.Barber, error) {
	b, ok := r.barbers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &b, nil
}

func (r *fakeRepository) ListServices(ctx context.Context) ([]models.Service, error) {
	out := make([]models.Service, 0, len(r.services))
	for _, s := range r.services {
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeRepository) GetServiceByID(ctx context.Context, id string) (*models.Service, error) {
	s, ok := r.services[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &s, nil
}

func (r *fakeRepository) ListAppointments(ctx context.Context, f domain.ListFilter) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Appointment
	for _, ap := range r.appointments {
		if f.BarberID != "" && ap.BarberID != f.BarberID {
			continue
		}
		if f.Date != "" && ap.Date != f.Date {
			continue
		}
		out = append(out, ap)
	}
	return out, nil
}

func (r *fakeRepository) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.appointments {
		if existing.BarberID == ap.BarberID &&
			existing.Date == ap.Date &&
			existing.Time == ap.Time &&
			existing.Status != string(domain.StatusCancelled) {
			return httperr.ErrBusiness(httperr.CodeSlotTaken)
		}
	}

	ap.ID = uuid.NewString()
	ap.Status = string(domain.InitialStatus())
	ap.CreatedAt = time.Now()

	r.appointments = append(r.appointments, *ap)
	return nil
}

var _ domain.Repository = (*fakeRepository)(nil)

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

var _ domainChat.Store = (*fakeChatStore)(nil)

type fakeCompleter struct {
	fn func(ctx context.Context, system, user string) (string, error)
}

func (f *fakeCompleter) Complete(ctx context.Context, system, user string) (string, error) {
	return f.fn(ctx, system, user)
}

type noopAuditWriter struct{}

func (noopAuditWriter) Log(action, entity, entityID string, metadata any) error {
	return nil
}

// newTestRouter wires the full route surface over the fakes.
func newTestRouter(repo *fakeRepository, store *fakeChatStore, completer *fakeCompleter) *gin.Engine {
	dispatcher := audit.NewDispatcher(noopAuditWriter{}, zap.NewNop())

	createUC := ucAppointment.NewCreateAppointment(repo, dispatcher)
	listUC := ucAppointment.NewListAppointments(repo)
	availabilityUC := ucAppointment.NewGetAvailability(repo, "America/Mexico_City")

	sendUC := ucChat.NewSendMessage(repo, store, completer, 100*time.Millisecond, dispatcher, zap.NewNop())
	historyUC := ucChat.NewGetHistory(store)

	catalogHandler := handlers.NewCatalogHandler(repo)
	appointmentHandler := handlers.NewAppointmentHandler(createUC, listUC, availabilityUC)
	chatHandler := handlers.NewChatHandler(sendUC, historyUC)

	r := gin.New()
	api := r.Group("/api")
	{
		api.GET("/barbers", catalogHandler.ListBarbers)
		api.GET("/barbers/:id", catalogHandler.GetBarber)
		api.GET("/services", catalogHandler.ListServices)
		api.GET("/services/:id", catalogHandler.GetService)
		api.GET("/appointments", appointmentHandler.List)
		api.POST("/appointments", appointmentHandler.Create)
		api.GET("/availability", appointmentHandler.Availability)
		api.POST("/chat", chatHandler.Send)
		api.GET("/chat/:sessionId", chatHandler.History)
	}
	return r
}
