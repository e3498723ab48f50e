package billing

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pylondev/invoicing-api/internal/application/dto"
	"github.com/pylondev/invoicing-api/internal/domain"
	"github.com/pylondev/invoicing-api/internal/domain/entity"
	"github.com/pylondev/invoicing-api/internal/domain/repository"
)

// ClientUseCase casos de uso del roster de clientes.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create crea un cliente nuevo. El id lo genera el store (UUID); un nombre
// de empresa ya registrado es un duplicado.
func (uc *ClientUseCase) Create(in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if in.CompanyName == "" {
		return nil, fmt.Errorf("%w: company_name es requerido", domain.ErrInvalidInput)
	}
	existing, err := uc.repo.GetByCompanyName(in.CompanyName)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: ya existe un cliente %q", domain.ErrDuplicate, in.CompanyName)
	}

	now := time.Now()
	client := &entity.Client{
		ID:          uuid.New().String(),
		CompanyName: in.CompanyName,
		ContactName: in.ContactName,
		Email:       in.Email,
		Phone:       in.Phone,
		Domain:      in.Domain,
		LogoColor:   in.LogoColor,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Get obtiene un cliente por id.
func (uc *ClientUseCase) Get(id string) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	return toClientResponse(client), nil
}

// List lista el roster; query filtra por subcadena del nombre de empresa,
// sin distinguir mayúsculas ("acme" encuentra "Acme Corp").
func (uc *ClientUseCase) List(query string) ([]*dto.ClientResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(query)
	out := make([]*dto.ClientResponse, 0, len(list))
	for _, c := range list {
		if q != "" && !strings.Contains(strings.ToLower(c.CompanyName), q) {
			continue
		}
		out = append(out, toClientResponse(c))
	}
	return out, nil
}

// Update aplica una edición parcial. Id inexistente retorna ErrNotFound.
func (uc *ClientUseCase) Update(id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}

	if in.CompanyName != nil {
		if *in.CompanyName == "" {
			return nil, fmt.Errorf("%w: company_name no puede quedar vacío", domain.ErrInvalidInput)
		}
		client.CompanyName = *in.CompanyName
	}
	if in.ContactName != nil {
		client.ContactName = *in.ContactName
	}
	if in.Email != nil {
		client.Email = *in.Email
	}
	if in.Phone != nil {
		client.Phone = *in.Phone
	}
	if in.Domain != nil {
		client.Domain = *in.Domain
	}
	if in.LogoColor != nil {
		client.LogoColor = *in.LogoColor
	}

	client.UpdatedAt = time.Now()
	if err := uc.repo.Update(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Delete elimina un cliente. Un cliente con facturas activas no puede
// borrarse; primero hay que cobrar o borrar esas facturas.
func (uc *ClientUseCase) Delete(id string) error {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if client == nil {
		return domain.ErrNotFound
	}
	if client.ActiveInvoices > 0 {
		return fmt.Errorf("%w: el cliente tiene %d factura(s) activa(s)", domain.ErrConflict, client.ActiveInvoices)
	}
	return uc.repo.Delete(id)
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:             c.ID,
		CompanyName:    c.CompanyName,
		ContactName:    c.ContactName,
		Email:          c.Email,
		Phone:          c.Phone,
		Domain:         c.Domain,
		LogoColor:      c.LogoColor,
		TotalBilled:    c.TotalBilled,
		ActiveInvoices: c.ActiveInvoices,
	}
}
