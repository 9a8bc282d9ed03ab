package repository

import (
	"context"
	"log/slog"
	"time"

	"agrispray/internal/domain/sprayrequest"
	"agrispray/internal/infra"
	"agrispray/internal/infra/docstore"

	"github.com/google/uuid"
)

// RequestRepository is the persistence boundary for spray requests. It owns
// the mapping between the raw document shape and the validated domain
// entity; documents that fail validation never travel upward.
type RequestRepository struct {
	store docstore.Store
}

func NewRequestRepository(store docstore.Store) *RequestRepository {
	return &RequestRepository{store: store}
}

func (r *RequestRepository) Create(ctx context.Context, req *sprayrequest.SprayRequest) (*sprayrequest.SprayRequest, error) {
	id, err := r.store.Create(ctx, CollectionSprayRequests, requestToFields(req))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create spray request", err)
	}
	return req.WithID(id), nil
}

func (r *RequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*sprayrequest.SprayRequest, error) {
	doc, err := r.store.Get(ctx, CollectionSprayRequests, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, err
		}
		return nil, infra.WrapRepoErr("failed to get spray request", err)
	}
	return documentToRequest(doc)
}

// FindByUser lists the user's requests. Malformed documents are skipped and
// logged; one bad record must not abort the listing.
func (r *RequestRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*sprayrequest.SprayRequest, error) {
	docs, err := r.store.List(ctx, CollectionSprayRequests)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list spray requests", err)
	}

	requests := make([]*sprayrequest.SprayRequest, 0, len(docs))
	for _, doc := range docs {
		req, err := documentToRequest(doc)
		if err != nil {
			slog.Warn("skipping malformed spray request document", "id", doc.ID, "error", err.Error())
			continue
		}
		if req.UserID() != userID {
			continue
		}
		requests = append(requests, req)
	}
	return requests, nil
}

func (r *RequestRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status sprayrequest.Status) (*sprayrequest.SprayRequest, error) {
	doc, err := r.store.Patch(ctx, CollectionSprayRequests, id, map[string]any{
		"status": status.String(),
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, err
		}
		return nil, infra.WrapRepoErr("failed to update spray request status", err)
	}
	return documentToRequest(doc)
}

// Watch subscribes to live updates of one request. Documents that fail
// validation are routed to onError instead of onChange. The caller must run
// the returned unsubscribe on every exit path.
func (r *RequestRepository) Watch(id uuid.UUID, onChange func(*sprayrequest.SprayRequest), onError func(error)) docstore.Unsubscribe {
	return r.store.Subscribe(CollectionSprayRequests, id, func(doc docstore.Document) {
		req, err := documentToRequest(doc)
		if err != nil {
			onError(err)
			return
		}
		onChange(req)
	}, onError)
}

func requestToFields(req *sprayrequest.SprayRequest) map[string]any {
	fields := map[string]any{
		"userId":        req.UserID().String(),
		"address":       req.Address(),
		"acres":         req.Acres(),
		"numberOfTanks": req.Tanks().NumberOfTanks(),
		"tanksToSpray":  req.Tanks().TanksToSpray(),
		"sprayingDate":  req.SprayingDate().String(),
		"agrochemical":  req.Agrochemical(),
		"crop":          req.Crop(),
		"basePrice":     req.BasePrice(),
		"price":         req.Price(),
		"status":        req.Status().String(),
		"createdAt":     req.CreatedAt().UTC().Format(time.RFC3339),
	}
	if code := req.CouponCode(); code != nil {
		fields["couponCode"] = *code
	}
	return fields
}

func documentToRequest(doc docstore.Document) (*sprayrequest.SprayRequest, error) {
	userID, err := fieldUUID(doc.Fields, "userId")
	if err != nil {
		return nil, err
	}
	address, err := fieldString(doc.Fields, "address")
	if err != nil {
		return nil, err
	}
	acres, err := fieldFloat(doc.Fields, "acres")
	if err != nil {
		return nil, err
	}
	numberOfTanks, err := fieldInt(doc.Fields, "numberOfTanks")
	if err != nil {
		return nil, err
	}
	tanksToSpray, err := fieldInt(doc.Fields, "tanksToSpray")
	if err != nil {
		return nil, err
	}
	plan, err := sprayrequest.NewTankPlan(numberOfTanks, tanksToSpray)
	if err != nil {
		return nil, infra.WrapRepoErr("document carries an invalid tank plan", err, infra.KindValidation)
	}
	rawDate, err := fieldString(doc.Fields, "sprayingDate")
	if err != nil {
		return nil, err
	}
	sprayDate, err := sprayrequest.NewSprayDate(rawDate)
	if err != nil {
		return nil, infra.WrapRepoErr("document carries an invalid spraying date", err, infra.KindValidation)
	}
	agrochemical, err := fieldString(doc.Fields, "agrochemical")
	if err != nil {
		return nil, err
	}
	crop, err := fieldString(doc.Fields, "crop")
	if err != nil {
		return nil, err
	}
	couponCode, err := fieldOptionalString(doc.Fields, "couponCode")
	if err != nil {
		return nil, err
	}
	basePrice, err := fieldFloat(doc.Fields, "basePrice")
	if err != nil {
		return nil, err
	}
	price, err := fieldFloat(doc.Fields, "price")
	if err != nil {
		return nil, err
	}
	rawStatus, err := fieldString(doc.Fields, "status")
	if err != nil {
		return nil, err
	}
	status := sprayrequest.Status(rawStatus)
	if !status.IsValid() {
		return nil, infra.WrapRepoErr("document carries an unknown status", nil, infra.KindValidation)
	}
	createdAt, err := fieldTime(doc.Fields, "createdAt")
	if err != nil {
		return nil, err
	}

	return sprayrequest.Reconstruct(
		doc.ID, userID,
		address, acres, plan, sprayDate,
		agrochemical, crop,
		couponCode, basePrice, price,
		status, createdAt,
	), nil
}
