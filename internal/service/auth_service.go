package service

import (
	"brightminds_backend/internal/config"
	"brightminds_backend/internal/model"
	"brightminds_backend/internal/repository"
	"brightminds_backend/internal/util"
	"time"

	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	UserRepo  *repository.UserRepository
	ChildRepo *repository.ChildRepository
	Config    *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, childRepo *repository.ChildRepository, cfg *config.Config) *AuthService {
	return &AuthService{UserRepo: userRepo, ChildRepo: childRepo, Config: cfg}
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResult struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

func (s *AuthService) Register(req *RegisterRequest) (*AuthResult, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Role:     model.Parent,
	}
	if err := s.UserRepo.Create(user); err != nil {
		return nil, err
	}

	token, err := util.GenerateJWT(user.ID, 0, user.Role, s.Config.JWT.Secret, s.Config.JWT.ExpireTime)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: user}, nil
}

func (s *AuthService) Login(req *LoginRequest) (*AuthResult, error) {
	user, err := s.UserRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, util.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, util.ErrInvalidCredentials
	}

	user.LastLogin = time.Now()
	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}

	token, err := util.GenerateJWT(user.ID, 0, user.Role, s.Config.JWT.Secret, s.Config.JWT.ExpireTime)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: user}, nil
}

type ChildTokenResult struct {
	Token string              `json:"token"`
	Child *model.ChildProfile `json:"child"`
}

// MintChildToken issues a token scoped to one child profile. Only the owning
// parent can mint it; the child never holds credentials of its own.
func (s *AuthService) MintChildToken(parentID, childID uint) (*ChildTokenResult, error) {
	child, err := s.ChildRepo.FindByIDAndParent(childID, parentID)
	if err != nil {
		return nil, err
	}

	token, err := util.GenerateJWT(parentID, child.ID, model.Child, s.Config.JWT.Secret, s.Config.JWT.ExpireTime)
	if err != nil {
		return nil, err
	}
	return &ChildTokenResult{Token: token, Child: child}, nil
}
