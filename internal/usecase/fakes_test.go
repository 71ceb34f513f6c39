package usecase

import (
	"context"
	"time"

	"caregiver-booking/internal/data/entity"
	"caregiver-booking/internal/data/repository"

	"github.com/google/uuid"
)

// In-memory repository fakes. They mirror the SQL behavior the services
// depend on, including the slot-conflict check and the idempotent payment
// transition.

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, user := range f.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) UpdateRole(_ context.Context, id uuid.UUID, role entity.Role) error {
	if user, ok := f.users[id]; ok {
		user.Role = role
	}
	return nil
}

type fakeSessionRepo struct {
	sessions map[string]*entity.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*entity.Session)}
}

func (f *fakeSessionRepo) Create(_ context.Context, session *entity.Session) error {
	f.sessions[session.Token.String()] = session
	return nil
}

func (f *fakeSessionRepo) FindValidSession(_ context.Context, token string) (*entity.Session, error) {
	session, ok := f.sessions[token]
	if !ok || session.RevokedAt != nil || session.ExpiresAt.Before(time.Now()) {
		return nil, nil
	}
	return session, nil
}

func (f *fakeSessionRepo) Revoke(_ context.Context, token string) error {
	if session, ok := f.sessions[token]; ok {
		now := time.Now()
		session.RevokedAt = &now
	}
	return nil
}

type fakeCaregiverRepo struct {
	caregivers map[uuid.UUID]*entity.Caregiver
}

func newFakeCaregiverRepo() *fakeCaregiverRepo {
	return &fakeCaregiverRepo{caregivers: make(map[uuid.UUID]*entity.Caregiver)}
}

func (f *fakeCaregiverRepo) Create(_ context.Context, caregiver *entity.Caregiver) error {
	f.caregivers[caregiver.ID] = caregiver
	return nil
}

func (f *fakeCaregiverRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Caregiver, error) {
	return f.caregivers[id], nil
}

func (f *fakeCaregiverRepo) FindByUserID(_ context.Context, userID uuid.UUID) (*entity.Caregiver, error) {
	for _, caregiver := range f.caregivers {
		if caregiver.UserID == userID {
			return caregiver, nil
		}
	}
	return nil, nil
}

func (f *fakeCaregiverRepo) ExistsByUserID(ctx context.Context, userID uuid.UUID) (bool, error) {
	caregiver, _ := f.FindByUserID(ctx, userID)
	return caregiver != nil, nil
}

func (f *fakeCaregiverRepo) FindVerified(_ context.Context, filter repository.CaregiverFilter) ([]*entity.Caregiver, error) {
	var results []*entity.Caregiver
	for _, caregiver := range f.caregivers {
		if caregiver.OnboardingStatus != entity.OnboardingVerified {
			continue
		}
		if filter.City != nil && caregiver.City != *filter.City {
			continue
		}
		if filter.Neighborhood != nil && caregiver.Neighborhood != *filter.Neighborhood {
			continue
		}
		if filter.MinRate != nil && caregiver.HourlyRate < *filter.MinRate {
			continue
		}
		if filter.MaxRate != nil && caregiver.HourlyRate > *filter.MaxRate {
			continue
		}
		results = append(results, caregiver)
	}
	return results, nil
}

func (f *fakeCaregiverRepo) UpdateOnboardingStatus(_ context.Context, id uuid.UUID, status entity.OnboardingStatus) error {
	if caregiver, ok := f.caregivers[id]; ok {
		caregiver.OnboardingStatus = status
	}
	return nil
}

type fakeAvailabilityRepo struct {
	availabilities []*entity.Availability
}

func (f *fakeAvailabilityRepo) Create(_ context.Context, availability *entity.Availability) error {
	f.availabilities = append(f.availabilities, availability)
	return nil
}

func (f *fakeAvailabilityRepo) FindByCaregiverID(_ context.Context, caregiverID uuid.UUID) ([]*entity.Availability, error) {
	var results []*entity.Availability
	for _, availability := range f.availabilities {
		if availability.CaregiverID == caregiverID {
			results = append(results, availability)
		}
	}
	return results, nil
}

func (f *fakeAvailabilityRepo) FindAvailableCaregiverIDs(_ context.Context, date time.Time) ([]uuid.UUID, error) {
	seen := make(map[uuid.UUID]bool)
	var ids []uuid.UUID
	for _, availability := range f.availabilities {
		if availability.Date.Equal(date) && !seen[availability.CaregiverID] {
			seen[availability.CaregiverID] = true
			ids = append(ids, availability.CaregiverID)
		}
	}
	return ids, nil
}

type fakeBookingRepo struct {
	bookings map[uuid.UUID]*entity.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[uuid.UUID]*entity.Booking)}
}

func (f *fakeBookingRepo) CreateIfSlotFree(_ context.Context, booking *entity.Booking) (bool, error) {
	for _, existing := range f.bookings {
		if existing.CaregiverID != booking.CaregiverID || !existing.Date.Equal(booking.Date) {
			continue
		}
		active := false
		for _, status := range entity.ActiveBookingStatuses {
			if existing.Status == status {
				active = true
				break
			}
		}
		if !active {
			continue
		}
		if entity.Overlaps(existing.StartTime, existing.EndTime, booking.StartTime, booking.EndTime) {
			return false, nil
		}
	}
	f.bookings[booking.ID] = booking
	return true, nil
}

func (f *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Booking, error) {
	return f.bookings[id], nil
}

func (f *fakeBookingRepo) FindByUserID(_ context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	var results []*entity.Booking
	for _, booking := range f.bookings {
		if booking.UserID == userID {
			results = append(results, booking)
		}
	}
	if offset > len(results) {
		offset = len(results)
	}
	results = results[offset:]
	if limit < len(results) {
		results = results[:limit]
	}
	return results, nil
}

func (f *fakeBookingRepo) CountByUserID(_ context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	for _, booking := range f.bookings {
		if booking.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (f *fakeBookingRepo) FindByCaregiverAndStatus(_ context.Context, caregiverID uuid.UUID, status entity.BookingStatus) ([]*entity.Booking, error) {
	var results []*entity.Booking
	for _, booking := range f.bookings {
		if booking.CaregiverID == caregiverID && booking.Status == status {
			results = append(results, booking)
		}
	}
	return results, nil
}

func (f *fakeBookingRepo) UpdateStatusIf(_ context.Context, id uuid.UUID, from, to entity.BookingStatus) (bool, error) {
	booking, ok := f.bookings[id]
	if !ok || booking.Status != from {
		return false, nil
	}
	booking.Status = to
	return true, nil
}

type fakePaymentRepo struct {
	payments map[uuid.UUID]*entity.Payment
	bookings *fakeBookingRepo
}

func newFakePaymentRepo(bookings *fakeBookingRepo) *fakePaymentRepo {
	return &fakePaymentRepo{
		payments: make(map[uuid.UUID]*entity.Payment),
		bookings: bookings,
	}
}

func (f *fakePaymentRepo) Create(_ context.Context, payment *entity.Payment) error {
	f.payments[payment.ID] = payment
	return nil
}

func (f *fakePaymentRepo) FindByBookingID(_ context.Context, bookingID uuid.UUID) (*entity.Payment, error) {
	for _, payment := range f.payments {
		if payment.BookingID == bookingID {
			return payment, nil
		}
	}
	return nil, nil
}

func (f *fakePaymentRepo) FindByReference(_ context.Context, reference string) (*entity.Payment, error) {
	for _, payment := range f.payments {
		if payment.Reference == reference {
			return payment, nil
		}
	}
	return nil, nil
}

func (f *fakePaymentRepo) SetAuthorizationURL(_ context.Context, id uuid.UUID, url string) error {
	if payment, ok := f.payments[id]; ok {
		payment.AuthorizationURL = &url
	}
	return nil
}

func (f *fakePaymentRepo) MarkSucceeded(ctx context.Context, reference string, gatewayResponse string) (bool, error) {
	payment, _ := f.FindByReference(ctx, reference)
	if payment == nil {
		return false, nil
	}
	if payment.Status == entity.PaymentStatusSuccess {
		return true, nil
	}

	now := time.Now()
	payment.Status = entity.PaymentStatusSuccess
	payment.PaidAt = &now
	payment.GatewayResponse = &gatewayResponse

	if booking, ok := f.bookings.bookings[payment.BookingID]; ok {
		booking.Status = entity.BookingStatusPaid
	}
	return false, nil
}

type fakeReviewRepo struct {
	reviews []*entity.Review
}

func (f *fakeReviewRepo) Create(_ context.Context, review *entity.Review) error {
	f.reviews = append(f.reviews, review)
	return nil
}

func (f *fakeReviewRepo) ExistsByUserAndCaregiver(_ context.Context, userID, caregiverID uuid.UUID) (bool, error) {
	for _, review := range f.reviews {
		if review.UserID == userID && review.CaregiverID == caregiverID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeReviewRepo) FindByCaregiverID(_ context.Context, caregiverID uuid.UUID) ([]*entity.Review, error) {
	var results []*entity.Review
	for _, review := range f.reviews {
		if review.CaregiverID == caregiverID {
			results = append(results, review)
		}
	}
	return results, nil
}

func (f *fakeReviewRepo) FetchCaregiverRatings(_ context.Context) (map[uuid.UUID]entity.CaregiverRating, error) {
	sums := make(map[uuid.UUID]int)
	counts := make(map[uuid.UUID]int64)
	for _, review := range f.reviews {
		sums[review.CaregiverID] += review.Rating
		counts[review.CaregiverID]++
	}

	ratings := make(map[uuid.UUID]entity.CaregiverRating, len(counts))
	for id, count := range counts {
		ratings[id] = entity.CaregiverRating{
			CaregiverID:   id,
			AverageRating: float64(sums[id]) / float64(count),
			ReviewCount:   count,
		}
	}
	return ratings, nil
}

// fakeGateway records initialize calls and can be told to fail.
type fakeGateway struct {
	initCalls int
	failInit  bool
	authURL   string
}

func (f *fakeGateway) InitializeTransaction(_ context.Context, email string, amount int64, reference string) (string, error) {
	f.initCalls++
	if f.failInit {
		return "", context.DeadlineExceeded
	}
	if f.authURL != "" {
		return f.authURL, nil
	}
	return "https://checkout.example.com/" + reference, nil
}

func (f *fakeGateway) VerifySignature(payload []byte, signature string) bool {
	return signature == "valid"
}

func newFakeRepository() (*repository.Repository, *fakeBookingRepo, *fakePaymentRepo) {
	bookings := newFakeBookingRepo()
	payments := newFakePaymentRepo(bookings)

	repo := &repository.Repository{
		User:         newFakeUserRepo(),
		Session:      newFakeSessionRepo(),
		Caregiver:    newFakeCaregiverRepo(),
		Availability: &fakeAvailabilityRepo{},
		Booking:      bookings,
		Payment:      payments,
		Review:       &fakeReviewRepo{},
	}
	return repo, bookings, payments
}
