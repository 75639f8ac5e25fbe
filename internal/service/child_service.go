package service

import (
	"brightminds_backend/internal/model"
	"brightminds_backend/internal/repository"
	"brightminds_backend/internal/util"
	"context"
	"io"
)

type ChildService struct {
	ChildRepo *repository.ChildRepository
	Storage   *StorageService
}

func NewChildService(childRepo *repository.ChildRepository, storage *StorageService) *ChildService {
	return &ChildService{ChildRepo: childRepo, Storage: storage}
}

type CreateChildRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
	Age  int    `json:"age" binding:"gte=0,lte=18"`
}

func (s *ChildService) CreateChild(parentID uint, req CreateChildRequest) (*model.ChildProfile, error) {
	child := &model.ChildProfile{
		ParentID:     parentID,
		Name:         req.Name,
		Age:          req.Age,
		CurrentLevel: 1,
	}
	return child, s.ChildRepo.Create(child)
}

func (s *ChildService) ListChildren(parentID uint) ([]model.ChildProfile, error) {
	return s.ChildRepo.FindByParent(parentID)
}

func (s *ChildService) GetChild(parentID, childID uint) (*model.ChildProfile, error) {
	return s.ChildRepo.FindByIDAndParent(childID, parentID)
}

// VerifyAccess checks that the caller may act on the child: a child token
// only on its own profile, a parent only on their own children.
func (s *ChildService) VerifyAccess(claims *util.Claims, childID uint) error {
	if claims.Role == model.Child {
		if claims.ChildID != childID {
			return util.ErrPermissionDenied
		}
		return nil
	}
	if claims.Role == model.Admin {
		_, err := s.ChildRepo.FindByID(childID)
		return err
	}
	_, err := s.ChildRepo.FindByIDAndParent(childID, claims.UserID)
	return err
}

func (s *ChildService) UpdateAvatar(ctx context.Context, parentID, childID uint, ext string, reader io.Reader, size int64, contentType string) (*model.ChildProfile, error) {
	child, err := s.ChildRepo.FindByIDAndParent(childID, parentID)
	if err != nil {
		return nil, err
	}

	url, err := s.Storage.UploadAvatar(ctx, childID, ext, reader, size, contentType)
	if err != nil {
		return nil, err
	}

	child.AvatarURL = url
	return child, s.ChildRepo.Update(child)
}
