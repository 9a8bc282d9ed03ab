package repository

import (
	"context"

	"agrispray/internal/infra"
	"agrispray/internal/infra/docstore"

	"github.com/google/uuid"
)

// UserProfile is the account document behind the profile screen.
type UserProfile struct {
	ID         uuid.UUID
	Name       string
	Occupation string
	Phone      string
	DOB        string
}

type UserRepository struct {
	store docstore.Store
}

func NewUserRepository(store docstore.Store) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (UserProfile, error) {
	doc, err := r.store.Get(ctx, CollectionUsers, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return UserProfile{}, err
		}
		return UserProfile{}, infra.WrapRepoErr("failed to get user profile", err)
	}
	return documentToProfile(doc)
}

// Upsert writes the whole profile document under the user's id.
func (r *UserRepository) Upsert(ctx context.Context, profile UserProfile) error {
	err := r.store.Put(ctx, CollectionUsers, profile.ID, map[string]any{
		"name":       profile.Name,
		"occupation": profile.Occupation,
		"phone":      profile.Phone,
		"dob":        profile.DOB,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to upsert user profile", err)
	}
	return nil
}

// Watch subscribes to live profile updates, mirroring the home screen's
// name sync.
func (r *UserRepository) Watch(id uuid.UUID, onChange func(UserProfile), onError func(error)) docstore.Unsubscribe {
	return r.store.Subscribe(CollectionUsers, id, func(doc docstore.Document) {
		profile, err := documentToProfile(doc)
		if err != nil {
			onError(err)
			return
		}
		onChange(profile)
	}, onError)
}

func documentToProfile(doc docstore.Document) (UserProfile, error) {
	name, err := fieldString(doc.Fields, "name")
	if err != nil {
		return UserProfile{}, err
	}
	occupation, err := fieldString(doc.Fields, "occupation")
	if err != nil {
		return UserProfile{}, err
	}
	phone, err := fieldString(doc.Fields, "phone")
	if err != nil {
		return UserProfile{}, err
	}
	dob, err := fieldString(doc.Fields, "dob")
	if err != nil {
		return UserProfile{}, err
	}

	return UserProfile{
		ID:         doc.ID,
		Name:       name,
		Occupation: occupation,
		Phone:      phone,
		DOB:        dob,
	}, nil
}
