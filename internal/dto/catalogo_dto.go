package dto

// Reference entities: clientes, encomendistas (with destinos/horarios),
// tiendas, productos.

type CrearClienteRequest struct {
	Nombre   string  `json:"nombre" validate:"required"`
	Telefono string  `json:"telefono"`
	Nota     *string `json:"nota"`
}

type ClienteResponse struct {
	ID       string  `json:"id"`
	Nombre   string  `json:"nombre"`
	Telefono string  `json:"telefono"`
	Nota     *string `json:"nota,omitempty"`
	Activo   bool    `json:"activo"`
}

type HorarioRequest struct {
	Dias       []string `json:"dias"        validate:"required,min=1"`
	HoraInicio string   `json:"hora_inicio" validate:"required,len=5"`
	HoraFin    string   `json:"hora_fin"    validate:"required,len=5"`
}

type CrearDestinoRequest struct {
	Nombre   string           `json:"nombre" validate:"required"`
	Horarios []HorarioRequest `json:"horarios" validate:"dive"`
}

type CrearEncomendistaRequest struct {
	Nombre   string                `json:"nombre" validate:"required"`
	Telefono string                `json:"telefono"`
	Email    *string               `json:"email" validate:"omitempty,email"`
	Destinos []CrearDestinoRequest `json:"destinos" validate:"dive"`
}

type HorarioResponse struct {
	ID         string   `json:"id"`
	Dias       []string `json:"dias"`
	HoraInicio string   `json:"hora_inicio"`
	HoraFin    string   `json:"hora_fin"`
}

type DestinoResponse struct {
	ID       string            `json:"id"`
	Nombre   string            `json:"nombre"`
	Horarios []HorarioResponse `json:"horarios"`
}

type EncomendistaResponse struct {
	ID       string            `json:"id"`
	Nombre   string            `json:"nombre"`
	Telefono string            `json:"telefono"`
	Email    *string           `json:"email,omitempty"`
	Activo   bool              `json:"activo"`
	Destinos []DestinoResponse `json:"destinos"`
}

type CrearTiendaRequest struct {
	Nombre   string `json:"nombre"  validate:"required"`
	Prefijo  string `json:"prefijo" validate:"required,max=5,alphanum"`
	Telefono string `json:"telefono"`
}

type TiendaResponse struct {
	ID       string `json:"id"`
	Nombre   string `json:"nombre"`
	Prefijo  string `json:"prefijo"`
	Telefono string `json:"telefono"`
	Activo   bool   `json:"activo"`
}

type CrearProductoRequest struct {
	Codigo string `json:"codigo" validate:"required"`
	Album  string `json:"album"  validate:"required"`
}

type ProductoResponse struct {
	ID            string  `json:"id"`
	Codigo        string  `json:"codigo"`
	Album         string  `json:"album"`
	Reservado     bool    `json:"reservado"`
	PedidoID      *string `json:"pedido_id,omitempty"`
	FechaLiberado *string `json:"fecha_liberado,omitempty"`
}

// ProductoFilter filters GET /productos.
type ProductoFilter struct {
	Album     string `form:"album"`
	Reservado *bool  `form:"reservado"`
}
