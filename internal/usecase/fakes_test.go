package usecase

import (
	"context"
	"errors"
	"seguros_xpto/internal/domain/entities"
	"seguros_xpto/internal/usecase/interfaces"
	"sync"
	"time"
)

var pdfBytes = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n<< /Root 1 0 R >>\n%%EOF\n")

func pdfDocument() entities.Document {
	return entities.Document{Filename: "doc.pdf", ContentType: entities.PDFContentType, Data: pdfBytes}
}

var (
	adminPrincipal    = entities.Principal{UserID: "adm-1", Email: "ops@seguros.pt", Role: entities.RoleAdmin}
	customerPrincipal = entities.Principal{UserID: "uid-1", Email: "ana@example.pt", Role: entities.RoleCustomer}
	otherPrincipal    = entities.Principal{UserID: "uid-2", Email: "rui@example.pt", Role: entities.RoleCustomer}
)

func fixedClock(ts string) func() time.Time {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}

// stamp advances updated_at on every write, as the DynamoDB repositories do.
func stamp(prev time.Time) time.Time {
	return prev.Add(time.Millisecond)
}

type memSimulationRepo struct {
	mu    sync.Mutex
	items map[string]entities.Simulation
}

func newMemSimulationRepo(seed ...entities.Simulation) *memSimulationRepo {
	r := &memSimulationRepo{items: map[string]entities.Simulation{}}
	for _, s := range seed {
		r.items[s.ID] = s
	}
	return r
}

func (r *memSimulationRepo) Upsert(_ context.Context, s entities.Simulation) (entities.Simulation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.items[s.ID]; ok {
		if existing.OwnerID != s.OwnerID {
			return entities.Simulation{}, interfaces.ErrOwnerMismatch
		}
		if existing.OwnerEmail != "" {
			s.OwnerEmail = existing.OwnerEmail
		}
		s.CreatedAt = existing.CreatedAt
		s.Status = existing.Status
		s.PDFURL = existing.PDFURL
	}
	r.items[s.ID] = s
	return s, nil
}

func (r *memSimulationRepo) GetByID(_ context.Context, id string) (entities.Simulation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.items[id], nil
}

func (r *memSimulationRepo) ListByOwner(_ context.Context, ownerID string) ([]entities.Simulation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entities.Simulation
	for _, s := range r.items {
		if s.OwnerID == ownerID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *memSimulationRepo) ListAll(_ context.Context) ([]entities.Simulation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entities.Simulation, 0, len(r.items))
	for _, s := range r.items {
		out = append(out, s)
	}
	return out, nil
}

func (r *memSimulationRepo) SetQuoteDocument(_ context.Context, id, locator string, status entities.SimulationStatus) (entities.Simulation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.items[id]
	if !ok {
		return entities.Simulation{}, nil
	}
	s.PDFURL = locator
	s.Status = status
	s.UpdatedAt = stamp(s.UpdatedAt)
	r.items[id] = s
	return s, nil
}

func (r *memSimulationRepo) ClearQuoteDocument(_ context.Context, id string) (entities.Simulation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.items[id]
	if !ok {
		return entities.Simulation{}, nil
	}
	s.PDFURL = ""
	s.UpdatedAt = stamp(s.UpdatedAt)
	r.items[id] = s
	return s, nil
}

type memPolicyRepo struct {
	mu      sync.Mutex
	items   map[string]entities.Policy
	updates int
}

func newMemPolicyRepo(seed ...entities.Policy) *memPolicyRepo {
	r := &memPolicyRepo{items: map[string]entities.Policy{}}
	for _, p := range seed {
		r.items[p.ID] = p
	}
	return r
}

func (r *memPolicyRepo) Create(_ context.Context, p entities.Policy) (entities.Policy, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[p.ID]; ok {
		return entities.Policy{}, interfaces.ErrAlreadyExists
	}
	r.items[p.ID] = p
	return p, nil
}

func (r *memPolicyRepo) GetByID(_ context.Context, id string) (entities.Policy, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.items[id], nil
}

func (r *memPolicyRepo) GetBySimulationID(_ context.Context, simulationID string) (entities.Policy, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.items {
		if p.SimulationID == simulationID {
			return p, nil
		}
	}
	return entities.Policy{}, nil
}

func (r *memPolicyRepo) ListByOwner(_ context.Context, ownerUID string) ([]entities.Policy, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entities.Policy
	for _, p := range r.items {
		if p.OwnerUID == ownerUID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memPolicyRepo) ListAll(_ context.Context) ([]entities.Policy, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entities.Policy, 0, len(r.items))
	for _, p := range r.items {
		out = append(out, p)
	}
	return out, nil
}

func (r *memPolicyRepo) mutate(id string, fn func(p *entities.Policy)) (entities.Policy, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.items[id]
	if !ok {
		return entities.Policy{}, nil
	}
	fn(&p)
	p.UpdatedAt = stamp(p.UpdatedAt)
	r.updates++
	r.items[id] = p
	return p, nil
}

func (r *memPolicyRepo) UpdateFields(_ context.Context, id string, f entities.PolicyFields, status *entities.PolicyStatus) (entities.Policy, error) {
	return r.mutate(id, func(p *entities.Policy) {
		p.PolicyFields = f
		if status != nil {
			p.Status = *status
		}
	})
}

func (r *memPolicyRepo) UpdateStatus(_ context.Context, id string, status entities.PolicyStatus) (entities.Policy, error) {
	return r.mutate(id, func(p *entities.Policy) { p.Status = status })
}

func (r *memPolicyRepo) SetDocument(_ context.Context, id string, slot entities.DocumentSlot, locator string, status *entities.PolicyStatus) (entities.Policy, error) {
	return r.mutate(id, func(p *entities.Policy) {
		setPolicyLocator(p, slot, locator)
		if status != nil {
			p.Status = *status
		}
	})
}

func (r *memPolicyRepo) ClearDocument(_ context.Context, id string, slot entities.DocumentSlot) (entities.Policy, error) {
	return r.mutate(id, func(p *entities.Policy) { setPolicyLocator(p, slot, "") })
}

func setPolicyLocator(p *entities.Policy, slot entities.DocumentSlot, locator string) {
	switch slot {
	case entities.SlotPolicy:
		p.PolicyPDFURL = locator
	case entities.SlotReceipt:
		p.ReceiptPDFURL = locator
	case entities.SlotConditions:
		p.ConditionsPDFURL = locator
	case entities.SlotGreenCard:
		p.GreenCardPDFURL = locator
	}
}

type memStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
	putErr  error
}

func newMemStorage() *memStorage { return &memStorage{objects: map[string][]byte{}} }

func (s *memStorage) Put(_ context.Context, key string, doc entities.Document) (string, error) {
	if s.putErr != nil {
		return "", s.putErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = doc.Data
	return "s3://docs/" + key, nil
}

func (s *memStorage) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	return nil
}

func (s *memStorage) PresignGet(_ context.Context, key string, _ time.Duration) (string, error) {
	return "https://docs.example/" + key + "?sig=1", nil
}

type memGuard struct {
	mu   sync.Mutex
	keys map[string]bool
	err  error
}

func newMemGuard() *memGuard { return &memGuard{keys: map[string]bool{}} }

func (g *memGuard) Acquire(_ context.Context, key string, _ time.Duration) (bool, error) {
	if g.err != nil {
		return false, g.err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.keys[key] {
		return false, nil
	}
	g.keys[key] = true
	return true, nil
}

func (g *memGuard) Release(_ context.Context, key string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.keys, key)
	return nil
}

type fakeSubscription struct {
	events chan entities.ChangeEvent
	once   sync.Once
}

func (s *fakeSubscription) Events() <-chan entities.ChangeEvent { return s.events }

func (s *fakeSubscription) Close() error {
	s.once.Do(func() { close(s.events) })
	return nil
}

type fakeFeed struct {
	mu           sync.Mutex
	published    []entities.ChangeEvent
	subscribeErr error
	sub          *fakeSubscription
}

func (f *fakeFeed) Publish(_ context.Context, ev entities.ChangeEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.published = append(f.published, ev)
	return nil
}

func (f *fakeFeed) Subscribe(_ context.Context, _ entities.EntityKind, _ string) (interfaces.ISubscription, error) {
	if f.subscribeErr != nil {
		return nil, f.subscribeErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sub = &fakeSubscription{events: make(chan entities.ChangeEvent, 8)}
	return f.sub, nil
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []string
	err  error
}

func (n *recordingNotifier) Send(_ context.Context, recipient, _, _ string, _ map[string]any) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, recipient)
	return nil
}

var errDB = errors.New("db")
