package memory

import (
	"strings"
	"sync"

	"github.com/pylondev/invoicing-api/internal/domain"
	"github.com/pylondev/invoicing-api/internal/domain/entity"
	"github.com/pylondev/invoicing-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo repositorio de clientes en memoria, con orden de inserción.
type ClientRepo struct {
	mu    sync.RWMutex
	byID  map[string]*entity.Client
	order []string
}

// NewClientRepository construye el repositorio con la semilla dada.
func NewClientRepository(seed []*entity.Client) *ClientRepo {
	r := &ClientRepo{byID: make(map[string]*entity.Client, len(seed))}
	for _, c := range seed {
		r.byID[c.ID] = c.Clone()
		r.order = append(r.order, c.ID)
	}
	return r
}

// Create agrega el cliente a la colección.
func (r *ClientRepo) Create(client *entity.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[client.ID]; exists {
		return domain.ErrDuplicate
	}
	r.byID[client.ID] = client.Clone()
	r.order = append(r.order, client.ID)
	return nil
}

// GetByID devuelve el cliente o (nil, nil) si no existe.
func (r *ClientRepo) GetByID(id string) (*entity.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return c.Clone(), nil
}

// GetByCompanyName busca por nombre exacto sin distinguir mayúsculas.
// Las facturas antiguas referencian clientes por nombre, no por id.
func (r *ClientRepo) GetByCompanyName(name string) (*entity.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, id := range r.order {
		c := r.byID[id]
		if strings.EqualFold(c.CompanyName, name) {
			return c.Clone(), nil
		}
	}
	return nil, nil
}

// List devuelve todos los clientes en orden de inserción.
func (r *ClientRepo) List() ([]*entity.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Client, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id].Clone())
	}
	return out, nil
}

// Update reemplaza el cliente completo. ErrNotFound si el id no existe.
func (r *ClientRepo) Update(client *entity.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[client.ID]; !ok {
		return domain.ErrNotFound
	}
	r.byID[client.ID] = client.Clone()
	return nil
}

// Delete elimina el cliente. ErrNotFound si el id no existe.
func (r *ClientRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
