package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/internal/service"
	"github.com/MKhiriev/go-contacts/internal/utils"
	"github.com/MKhiriev/go-contacts/models"
)

var errUnexpectedCall = errors.New("unexpected call")

// fakeAccountService is a func-field stub of service.AccountService. A nil
// func makes the call fail with errUnexpectedCall (500).
type fakeAccountService struct {
	registerFn           func(ctx context.Context, req models.SignupRequest) (models.User, error)
	verifyByTokenFn      func(ctx context.Context, token string) error
	resendFn             func(ctx context.Context, req models.EmailRequest) error
	loginFn              func(ctx context.Context, req models.LoginRequest) (models.Session, error)
	logoutFn             func(ctx context.Context, userID string) error
	changeSubscriptionFn func(ctx context.Context, userID string, req models.SubscriptionRequest) (models.User, error)
	replaceAvatarFn      func(ctx context.Context, userID string, upload *models.AvatarUpload) (string, error)
	authenticateFn       func(ctx context.Context, tokenString string) (models.User, error)
}

func (f *fakeAccountService) Register(ctx context.Context, req models.SignupRequest) (models.User, error) {
	if f.registerFn == nil {
		return models.User{}, errUnexpectedCall
	}
	return f.registerFn(ctx, req)
}

func (f *fakeAccountService) VerifyByToken(ctx context.Context, token string) error {
	if f.verifyByTokenFn == nil {
		return errUnexpectedCall
	}
	return f.verifyByTokenFn(ctx, token)
}

func (f *fakeAccountService) ResendVerification(ctx context.Context, req models.EmailRequest) error {
	if f.resendFn == nil {
		return errUnexpectedCall
	}
	return f.resendFn(ctx, req)
}

func (f *fakeAccountService) Login(ctx context.Context, req models.LoginRequest) (models.Session, error) {
	if f.loginFn == nil {
		return models.Session{}, errUnexpectedCall
	}
	return f.loginFn(ctx, req)
}

func (f *fakeAccountService) Logout(ctx context.Context, userID string) error {
	if f.logoutFn == nil {
		return errUnexpectedCall
	}
	return f.logoutFn(ctx, userID)
}

func (f *fakeAccountService) ChangeSubscription(ctx context.Context, userID string, req models.SubscriptionRequest) (models.User, error) {
	if f.changeSubscriptionFn == nil {
		return models.User{}, errUnexpectedCall
	}
	return f.changeSubscriptionFn(ctx, userID, req)
}

func (f *fakeAccountService) ReplaceAvatar(ctx context.Context, userID string, upload *models.AvatarUpload) (string, error) {
	if f.replaceAvatarFn == nil {
		return "", errUnexpectedCall
	}
	return f.replaceAvatarFn(ctx, userID, upload)
}

func (f *fakeAccountService) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	if f.authenticateFn == nil {
		return models.User{}, errUnexpectedCall
	}
	return f.authenticateFn(ctx, tokenString)
}

// fakeContactService is a func-field stub of service.ContactService.
type fakeContactService struct {
	listFn        func(ctx context.Context, query models.ContactListQuery) ([]models.Contact, error)
	getFn         func(ctx context.Context, ownerID, contactID string) (models.Contact, error)
	createFn      func(ctx context.Context, ownerID string, fields models.ContactFields) (models.Contact, error)
	updateFn      func(ctx context.Context, ownerID, contactID string, update models.ContactUpdate) (models.Contact, error)
	setFavoriteFn func(ctx context.Context, ownerID, contactID string, req models.FavoriteRequest) (models.Contact, error)
	deleteFn      func(ctx context.Context, ownerID, contactID string) (models.Contact, error)
}

func (f *fakeContactService) List(ctx context.Context, query models.ContactListQuery) ([]models.Contact, error) {
	if f.listFn == nil {
		return nil, errUnexpectedCall
	}
	return f.listFn(ctx, query)
}

func (f *fakeContactService) Get(ctx context.Context, ownerID, contactID string) (models.Contact, error) {
	if f.getFn == nil {
		return models.Contact{}, errUnexpectedCall
	}
	return f.getFn(ctx, ownerID, contactID)
}

func (f *fakeContactService) Create(ctx context.Context, ownerID string, fields models.ContactFields) (models.Contact, error) {
	if f.createFn == nil {
		return models.Contact{}, errUnexpectedCall
	}
	return f.createFn(ctx, ownerID, fields)
}

func (f *fakeContactService) Update(ctx context.Context, ownerID, contactID string, update models.ContactUpdate) (models.Contact, error) {
	if f.updateFn == nil {
		return models.Contact{}, errUnexpectedCall
	}
	return f.updateFn(ctx, ownerID, contactID, update)
}

func (f *fakeContactService) SetFavorite(ctx context.Context, ownerID, contactID string, req models.FavoriteRequest) (models.Contact, error) {
	if f.setFavoriteFn == nil {
		return models.Contact{}, errUnexpectedCall
	}
	return f.setFavoriteFn(ctx, ownerID, contactID, req)
}

func (f *fakeContactService) Delete(ctx context.Context, ownerID, contactID string) (models.Contact, error) {
	if f.deleteFn == nil {
		return models.Contact{}, errUnexpectedCall
	}
	return f.deleteFn(ctx, ownerID, contactID)
}

// ---- Helpers ----

func newTestHandler(accounts *fakeAccountService, contacts *fakeContactService) *Handler {
	if accounts == nil {
		accounts = &fakeAccountService{}
	}
	if contacts == nil {
		contacts = &fakeContactService{}
	}
	return &Handler{
		services: &service.Services{
			AccountService: accounts,
			ContactService: contacts,
		},
		maxUploadSize: 1 << 20,
		logger:        logger.Nop(),
	}
}

// withTestUser puts user into the request context the way auth does.
func withTestUser(r *http.Request, user models.User) *http.Request {
	return r.WithContext(utils.WithUser(r.Context(), user))
}

var testUser = models.User{
	UserID:       "u1",
	Email:        "a@x.com",
	Subscription: models.SubscriptionStarter,
	Token:        "signed",
	Verified:     true,
}
