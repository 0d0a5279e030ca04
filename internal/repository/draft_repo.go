package repository

import (
	"errors"
	"sync"

	"github.com/tiffin-sathi/checkout-service/internal/models"
)

var ErrDraftNotFound = errors.New("draft not found")

// DraftRepo keeps checkout drafts in memory. Drafts are session-scoped working
// state; durable subscription records live in the upstream backend only.
type DraftRepo struct {
	mu     sync.RWMutex
	drafts map[string]models.SubscriptionDraft
}

func NewDraftRepo() *DraftRepo {
	return &DraftRepo{
		drafts: make(map[string]models.SubscriptionDraft),
	}
}

func (r *DraftRepo) Create(draft models.SubscriptionDraft) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.drafts[draft.DraftID] = draft
}

func (r *DraftRepo) Get(draftID string) (models.SubscriptionDraft, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	draft, ok := r.drafts[draftID]
	if !ok {
		return models.SubscriptionDraft{}, ErrDraftNotFound
	}
	return draft, nil
}

func (r *DraftRepo) Update(draft models.SubscriptionDraft) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.drafts[draft.DraftID]; !ok {
		return ErrDraftNotFound
	}
	r.drafts[draft.DraftID] = draft
	return nil
}

func (r *DraftRepo) Delete(draftID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.drafts, draftID)
}
