package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bnc-store/models"
)

type fakeContactRepo struct {
	created []*models.Contact
	byID    map[int]*models.Contact
}

func (f *fakeContactRepo) Create(_ context.Context, contact *models.Contact) error {
	contact.ID = len(f.created) + 1
	contact.IsActive = true
	f.created = append(f.created, contact)
	return nil
}

func (f *fakeContactRepo) FindAll(context.Context) ([]models.Contact, error) { return nil, nil }

func (f *fakeContactRepo) FindByID(_ context.Context, id int) (*models.Contact, error) {
	contact, ok := f.byID[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return contact, nil
}

func (f *fakeContactRepo) Deactivate(context.Context, int) error { return nil }

type fakeContactMailer struct {
	sent []*models.Contact
	err  error
}

func (f *fakeContactMailer) SendContactAck(contact *models.Contact) error {
	f.sent = append(f.sent, contact)
	return f.err
}

func TestContactCreateSendsAck(t *testing.T) {
	repo := &fakeContactRepo{}
	mailer := &fakeContactMailer{}
	svc := NewContactService(repo, mailer)

	interested := "Gaming laptops"
	contact, err := svc.Create(context.Background(), models.CreateContactRequest{
		Name:         "Bharath Kumar",
		Phone:        "9876543210",
		Email:        "bharath@example.com",
		InterestedIn: &interested,
	})
	require.NoError(t, err)

	assert.True(t, contact.IsActive)
	require.Len(t, mailer.sent, 1)
	assert.Same(t, contact, mailer.sent[0])
}

func TestContactCreateMailFailureSwallowed(t *testing.T) {
	repo := &fakeContactRepo{}
	mailer := &fakeContactMailer{err: errors.New("smtp: timeout")}
	svc := NewContactService(repo, mailer)

	_, err := svc.Create(context.Background(), models.CreateContactRequest{
		Name:  "Bharath Kumar",
		Phone: "9876543210",
		Email: "bharath@example.com",
	})

	require.NoError(t, err)
	assert.Len(t, repo.created, 1)
}

func TestContactRemoveIsIdempotent(t *testing.T) {
	contact := &models.Contact{ID: 3, IsActive: true}
	repo := &fakeContactRepo{byID: map[int]*models.Contact{3: contact}}
	svc := NewContactService(repo, nil)

	_, message, err := svc.Remove(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Contact marked as inactive", message)

	_, message, err = svc.Remove(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Contact already inactive", message)
}
