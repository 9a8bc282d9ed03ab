package queries

import (
	"agrispray/internal/domain/sprayrequest"
	"agrispray/internal/infra/docstore"

	"github.com/google/uuid"
)

type RequestWatchRepo interface {
	Watch(id uuid.UUID, onChange func(*sprayrequest.SprayRequest), onError func(error)) docstore.Unsubscribe
}

// RequestWatcher streams live updates of one request as read views. The
// caller must run the returned unsubscribe on every exit path; authorization
// is the caller's concern (GetByID before watching).
type RequestWatcher interface {
	WatchRequest(id uuid.UUID, onChange func(*RequestView), onError func(error)) docstore.Unsubscribe
}

type requestWatcherImpl struct {
	repo RequestWatchRepo
}

func NewRequestWatcher(repo RequestWatchRepo) RequestWatcher {
	return &requestWatcherImpl{repo: repo}
}

func (w *requestWatcherImpl) WatchRequest(id uuid.UUID, onChange func(*RequestView), onError func(error)) docstore.Unsubscribe {
	return w.repo.Watch(id, func(req *sprayrequest.SprayRequest) {
		onChange(NewRequestView(req))
	}, onError)
}
