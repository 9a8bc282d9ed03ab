package repository

import (
	"context"
	"time"

	"agrispray/internal/infra"
	"agrispray/internal/infra/docstore"

	"github.com/google/uuid"
)

// OtpChallenge is one pending login attempt. The code itself is only stored
// as a bcrypt hash.
type OtpChallenge struct {
	ID        uuid.UUID
	Phone     string
	CodeHash  string
	ExpiresAt time.Time
	Used      bool
}

type OtpRepository struct {
	store docstore.Store
}

func NewOtpRepository(store docstore.Store) *OtpRepository {
	return &OtpRepository{store: store}
}

func (r *OtpRepository) Create(ctx context.Context, challenge OtpChallenge) (uuid.UUID, error) {
	id, err := r.store.Create(ctx, CollectionOtpChallenges, map[string]any{
		"phone":     challenge.Phone,
		"codeHash":  challenge.CodeHash,
		"expiresAt": challenge.ExpiresAt.UTC().Format(time.RFC3339),
		"used":      challenge.Used,
	})
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create otp challenge", err)
	}
	return id, nil
}

func (r *OtpRepository) FindByID(ctx context.Context, id uuid.UUID) (OtpChallenge, error) {
	doc, err := r.store.Get(ctx, CollectionOtpChallenges, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return OtpChallenge{}, err
		}
		return OtpChallenge{}, infra.WrapRepoErr("failed to get otp challenge", err)
	}
	return documentToChallenge(doc)
}

func (r *OtpRepository) MarkUsed(ctx context.Context, id uuid.UUID) error {
	_, err := r.store.Patch(ctx, CollectionOtpChallenges, id, map[string]any{"used": true})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return err
		}
		return infra.WrapRepoErr("failed to mark otp challenge used", err)
	}
	return nil
}

func documentToChallenge(doc docstore.Document) (OtpChallenge, error) {
	phone, err := fieldString(doc.Fields, "phone")
	if err != nil {
		return OtpChallenge{}, err
	}
	codeHash, err := fieldString(doc.Fields, "codeHash")
	if err != nil {
		return OtpChallenge{}, err
	}
	expiresAt, err := fieldTime(doc.Fields, "expiresAt")
	if err != nil {
		return OtpChallenge{}, err
	}

	used := false
	if v, ok := doc.Fields["used"]; ok {
		b, ok := v.(bool)
		if !ok {
			return OtpChallenge{}, wrongType("used", "boolean")
		}
		used = b
	}

	return OtpChallenge{
		ID:        doc.ID,
		Phone:     phone,
		CodeHash:  codeHash,
		ExpiresAt: expiresAt,
		Used:      used,
	}, nil
}
