package services

import (
	"bnc-store/models"
	"context"
	"log"
)

type ContactRepo interface {
	Create(ctx context.Context, contact *models.Contact) error
	FindAll(ctx context.Context) ([]models.Contact, error)
	FindByID(ctx context.Context, id int) (*models.Contact, error)
	Deactivate(ctx context.Context, id int) error
}

type ContactMailer interface {
	SendContactAck(contact *models.Contact) error
}

type ContactService struct {
	repo   ContactRepo
	mailer ContactMailer
}

func NewContactService(repo ContactRepo, mailer ContactMailer) *ContactService {
	return &ContactService{repo: repo, mailer: mailer}
}

// Create stores the enquiry, then sends an acknowledgment email with
// the same swallow-and-log contract as the order confirmation.
func (s *ContactService) Create(ctx context.Context, req models.CreateContactRequest) (*models.Contact, error) {
	contact := &models.Contact{
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		InterestedIn: req.InterestedIn,
		Message:      req.Message,
	}

	if err := s.repo.Create(ctx, contact); err != nil {
		return nil, err
	}

	if s.mailer != nil {
		if err := s.mailer.SendContactAck(contact); err != nil {
			log.Printf("Contact ack email failed: %v", err)
		}
	}

	return contact, nil
}

func (s *ContactService) FindAll(ctx context.Context) ([]models.Contact, error) {
	return s.repo.FindAll(ctx)
}

func (s *ContactService) FindOne(ctx context.Context, id int) (*models.Contact, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ContactService) Remove(ctx context.Context, id int) (*models.Contact, string, error) {
	contact, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, "", err
	}

	if !contact.IsActive {
		return contact, "Contact already inactive", nil
	}

	if err := s.repo.Deactivate(ctx, id); err != nil {
		return nil, "", err
	}

	contact.IsActive = false
	return contact, "Contact marked as inactive", nil
}
