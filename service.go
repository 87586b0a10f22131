package mesto

import (
	"github.com/mestoapp/mesto-go/auth"
)

type UserService interface {
	Register(req signupRequest) (Profile, error)
	Login(req signinRequest) (string, Profile, error)
	GetSelf(callerID string) (Profile, error)
	GetByID(userID string) (Profile, error)
	ListAll() ([]Profile, error)
	UpdateProfile(callerID string, req updateProfileRequest) (Profile, error)
	UpdateAvatar(callerID string, req updateAvatarRequest) (Profile, error)
}

type signupRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=2,max=30"`
	About    *string `json:"about" validate:"omitempty,min=2,max=200"`
	Avatar   *string `json:"avatar" validate:"omitempty,avatarurl"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=6"`
}

type signinRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type updateProfileRequest struct {
	Name  string `json:"name" validate:"required,min=2,max=30"`
	About string `json:"about" validate:"required,min=2,max=200"`
}

type updateAvatarRequest struct {
	Avatar string `json:"avatar" validate:"required,avatarurl"`
}

type userService struct {
	users  UserRepository
	tokens *auth.TokenIssuer
}

func NewUserService(users UserRepository, tokens *auth.TokenIssuer) UserService {
	return &userService{users: users, tokens: tokens}
}

func (svc *userService) Register(req signupRequest) (Profile, error) {
	if err := validateRequest(req); err != nil {
		return Profile{}, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return Profile{}, err
	}

	u := NewUser(req.Email, hash, req.Name, req.About, req.Avatar)
	if err := svc.users.Store(u); err != nil {
		return Profile{}, err
	}

	return u.Profile(), nil
}

// Login reports the same error for an unknown email and a wrong
// password, so callers cannot probe which emails are registered.
func (svc *userService) Login(req signinRequest) (string, Profile, error) {
	if err := validateRequest(req); err != nil {
		return "", Profile{}, err
	}

	u, err := svc.users.FindByEmail(req.Email)
	if err != nil {
		if KindOf(err) == KindNotFound {
			return "", Profile{}, ErrBadCredentials
		}
		return "", Profile{}, err
	}

	if !auth.PasswordMatches(u.Password, req.Password) {
		return "", Profile{}, ErrBadCredentials
	}

	token, err := svc.tokens.Issue(u.ID.Hex())
	if err != nil {
		return "", Profile{}, err
	}

	return token, u.Profile(), nil
}

func (svc *userService) GetSelf(callerID string) (Profile, error) {
	return svc.GetByID(callerID)
}

func (svc *userService) GetByID(userID string) (Profile, error) {
	id, err := parseUserID(userID)
	if err != nil {
		return Profile{}, err
	}

	u, err := svc.users.FindByID(id)
	if err != nil {
		return Profile{}, err
	}
	return u.Profile(), nil
}

func (svc *userService) ListAll() ([]Profile, error) {
	users, err := svc.users.FindAll()
	if err != nil {
		return nil, err
	}

	profiles := make([]Profile, len(users))
	for i := range users {
		profiles[i] = users[i].Profile()
	}
	return profiles, nil
}

func (svc *userService) UpdateProfile(callerID string, req updateProfileRequest) (Profile, error) {
	if err := validateRequest(req); err != nil {
		return Profile{}, err
	}

	id, err := parseUserID(callerID)
	if err != nil {
		return Profile{}, err
	}

	u, err := svc.users.UpdateProfile(id, req.Name, req.About)
	if err != nil {
		return Profile{}, err
	}
	return u.Profile(), nil
}

func (svc *userService) UpdateAvatar(callerID string, req updateAvatarRequest) (Profile, error) {
	if err := validateRequest(req); err != nil {
		return Profile{}, err
	}

	id, err := parseUserID(callerID)
	if err != nil {
		return Profile{}, err
	}

	u, err := svc.users.UpdateAvatar(id, req.Avatar)
	if err != nil {
		return Profile{}, err
	}
	return u.Profile(), nil
}
