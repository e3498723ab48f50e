package repository

import "github.com/pylondev/invoicing-api/internal/domain/entity"

// ClientRepository define el puerto de almacenamiento para clientes.
// GetByID y GetByCompanyName devuelven (nil, nil) si no hay coincidencia.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	// GetByCompanyName busca por nombre exacto, sin distinguir mayúsculas.
	GetByCompanyName(name string) (*entity.Client, error)
	// List devuelve los clientes en orden de inserción.
	List() ([]*entity.Client, error)
	Update(client *entity.Client) error
	Delete(id string) error
}
