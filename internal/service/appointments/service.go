package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/primebarbervip/PrimeBarberClub/internal/domain"
	apptRepo "github.com/primebarbervip/PrimeBarberClub/internal/infra/storage/appointment"
	barberRepo "github.com/primebarbervip/PrimeBarberClub/internal/infra/storage/barber"
	"github.com/primebarbervip/PrimeBarberClub/internal/integrations/mailer"
	"github.com/primebarbervip/PrimeBarberClub/internal/service/appointments/models"
)

// mailTimeout bounds the background confirmation email delivery.
const mailTimeout = 30 * time.Second

// Service handles appointment lifecycle after booking: reads, the
// barber-side accept/reject state machine and client cancellation.
type Service struct {
	appointmentRepo AppointmentRepository
	barberRepo      BarberRepository
	userRepo        UserRepository
	shopRepo        ShopRepository
	mail            MailClient
	timeProvider    TimeProvider
	logger          Logger
}

func NewService(
	appointmentRepo AppointmentRepository,
	barberRepo BarberRepository,
	userRepo UserRepository,
	shopRepo ShopRepository,
	mail MailClient,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		barberRepo:      barberRepo,
		userRepo:        userRepo,
		shopRepo:        shopRepo,
		mail:            mail,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// GetClientAppointments returns the appointment history of a client.
// Clients can only read their own history.
func (s *Service) GetClientAppointments(ctx context.Context, clientID, callerID int64, role domain.Role) (*models.AppointmentListResponse, error) {
	if clientID != callerID && role != domain.RoleAdmin {
		s.logger.Warn("GetClientAppointments: user=%d denied access to client=%d history", callerID, clientID)
		return nil, ErrAccessDenied
	}

	appts, err := s.appointmentRepo.GetByClient(ctx, clientID)
	if err != nil {
		s.logger.Error("GetClientAppointments: repository error for client=%d: %v", clientID, err)
		return nil, fmt.Errorf("%w: GetClientAppointments - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointmentList(appts, s.timeProvider.Now()), nil
}

// GetBarberAgenda returns the appointments of a barber. Only the barber
// who owns the agenda, or an admin, may read it.
func (s *Service) GetBarberAgenda(ctx context.Context, req *models.GetBarberAgendaRequest, callerID int64, role domain.Role) (*models.AppointmentListResponse, error) {
	barber, err := s.barberRepo.GetByID(ctx, req.BarberID)
	if err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			return nil, ErrBarberNotFound
		}
		s.logger.Error("GetBarberAgenda: failed to get barber id=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: GetBarberAgenda - repository error: %v", ErrInternal, err)
	}
	if barber.UserID != callerID && role != domain.RoleAdmin {
		s.logger.Warn("GetBarberAgenda: user=%d denied access to barber=%d agenda", callerID, req.BarberID)
		return nil, ErrAccessDenied
	}

	filter := domain.AppointmentsFilter{
		BarberID:   req.BarberID,
		Date:       req.Date,
		OnlyActive: req.OnlyActive,
	}
	if req.Status != nil {
		status, ok := models.ToDomainStatus(*req.Status)
		if !ok {
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *req.Status)
		}
		filter.Status = &status
	}

	appts, err := s.appointmentRepo.GetByBarberWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetBarberAgenda: repository error for barber=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: GetBarberAgenda - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointmentList(appts, s.timeProvider.Now()), nil
}

// Cancel cancels an appointment. The owning client, the barber it is
// booked with, or an admin may cancel; only pending and confirmed
// appointments can be cancelled.
func (s *Service) Cancel(ctx context.Context, id, callerID int64, role domain.Role) (*models.AppointmentResponse, error) {
	appt, err := s.getAppointment(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.checkWriteAccess(ctx, appt, callerID, role); err != nil {
		s.logger.Warn("Cancel: user=%d denied access to appointment id=%d", callerID, id)
		return nil, err
	}

	if !appt.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment id=%d in status %s cannot be cancelled", id, appt.Status)
		return nil, ErrCannotCancel
	}

	updated, err := s.appointmentRepo.UpdateStatus(ctx, id, domain.StatusCancelled)
	if err != nil {
		s.logger.Error("Cancel: failed to update appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: appointment id=%d cancelled by user=%d", id, callerID)
	resp := models.FromDomainAppointment(updated, s.timeProvider.Now())
	return &resp, nil
}

// UpdateStatus moves an appointment through the barber-side state
// machine. Allowed transitions: pending -> confirmed (accept) and
// pending/confirmed -> cancelled (reject). Accepting sends the client a
// confirmation email in the background; delivery failure never fails
// the transition.
func (s *Service) UpdateStatus(ctx context.Context, id int64, newStatus domain.AppointmentStatus, callerID int64, role domain.Role) (*models.AppointmentResponse, error) {
	appt, err := s.getAppointment(ctx, id)
	if err != nil {
		return nil, err
	}

	// Only the barber owning the slot or an admin may drive the state machine
	if err := s.checkBarberAccess(ctx, appt.BarberID, callerID, role); err != nil {
		s.logger.Warn("UpdateStatus: user=%d denied access to appointment id=%d", callerID, id)
		return nil, err
	}

	if !transitionAllowed(appt.Status, newStatus) {
		s.logger.Warn("UpdateStatus: appointment id=%d transition %s -> %s rejected", id, appt.Status, newStatus)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, appt.Status, newStatus)
	}

	updated, err := s.appointmentRepo.UpdateStatus(ctx, id, newStatus)
	if err != nil {
		s.logger.Error("UpdateStatus: failed to update appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: appointment id=%d moved %s -> %s by user=%d", id, appt.Status, newStatus, callerID)

	if newStatus == domain.StatusConfirmed {
		go s.sendConfirmation(updated)
	}

	resp := models.FromDomainAppointment(updated, s.timeProvider.Now())
	return &resp, nil
}

// transitionAllowed encodes the stored-status state machine. Cancelled
// is terminal; completed and expired only exist as read projections.
func transitionAllowed(from, to domain.AppointmentStatus) bool {
	switch from {
	case domain.StatusPending:
		return to == domain.StatusConfirmed || to == domain.StatusCancelled
	case domain.StatusConfirmed:
		return to == domain.StatusCancelled
	default:
		return false
	}
}

// sendConfirmation emails the ticket for a freshly confirmed
// appointment. Runs in its own goroutine with a detached context.
func (s *Service) sendConfirmation(appt *domain.Appointment) {
	ctx, cancel := context.WithTimeout(context.Background(), mailTimeout)
	defer cancel()

	client, err := s.userRepo.GetByID(ctx, appt.ClientID)
	if err != nil {
		s.logger.Warn("sendConfirmation: appointment id=%d, failed to load client: %v", appt.ID, err)
		return
	}

	barber, err := s.barberRepo.GetByID(ctx, appt.BarberID)
	if err != nil {
		s.logger.Warn("sendConfirmation: appointment id=%d, failed to load barber: %v", appt.ID, err)
		return
	}

	shopCfg, err := s.shopRepo.Get(ctx)
	if err != nil {
		shopCfg = domain.DefaultShopConfig()
	}

	data := mailer.TicketData{
		ClientName:  client.Name,
		BarberName:  barber.Name,
		ServiceName: appt.ServiceName,
		Date:        appt.Date.Format(domain.DateFormat),
		StartTime:   appt.StartTime.String(),
		Price:       fmt.Sprintf("%.2f €", appt.ServicePrice),
		ShopName:    shopCfg.Name,
	}
	if shopCfg.Address != nil {
		data.ShopAddress = *shopCfg.Address
	}
	if shopCfg.Phone != nil {
		data.ShopPhone = *shopCfg.Phone
	}
	if shopCfg.MapsURL != nil {
		data.ShopMapsURL = *shopCfg.MapsURL
	}
	if shopCfg.Logo != nil {
		data.ShopLogo = *shopCfg.Logo
	}

	if err := s.mail.SendConfirmation(ctx, client.Email, data); err != nil {
		// Best-effort: the appointment stays confirmed either way
		s.logger.Warn("sendConfirmation: appointment id=%d, email failed: %v", appt.ID, err)
	}
}

func (s *Service) getAppointment(ctx context.Context, id int64) (*domain.Appointment, error) {
	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("failed to get appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}
	return appt, nil
}

// checkWriteAccess allows the owning client, the booked barber or an admin.
func (s *Service) checkWriteAccess(ctx context.Context, appt *domain.Appointment, callerID int64, role domain.Role) error {
	if role == domain.RoleAdmin || appt.ClientID == callerID {
		return nil
	}
	return s.checkBarberAccess(ctx, appt.BarberID, callerID, role)
}

// checkBarberAccess allows the barber owning the profile or an admin.
func (s *Service) checkBarberAccess(ctx context.Context, barberID, callerID int64, role domain.Role) error {
	if role == domain.RoleAdmin {
		return nil
	}
	if role != domain.RoleBarber {
		return ErrAccessDenied
	}

	barber, err := s.barberRepo.GetByUserID(ctx, callerID)
	if err != nil {
		if errors.Is(err, barberRepo.ErrBarberNotFound) {
			return ErrAccessDenied
		}
		return fmt.Errorf("%w: access check - repository error: %v", ErrInternal, err)
	}
	if barber.ID != barberID {
		return ErrAccessDenied
	}
	return nil
}
