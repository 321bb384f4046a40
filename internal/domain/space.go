package domain

// Space types accepted by the spaces and availability services.
const (
	SpaceRoom  = "sala"
	SpaceCourt = "cancha"
)

// SpaceTypes lists the known space types.
var SpaceTypes = []string{SpaceRoom, SpaceCourt}

// Space is a bookable room or court.
type Space struct {
	ID        ID     `json:"id"`
	Name      string `json:"nombre"`
	Type      string `json:"tipo"`
	Capacity  int    `json:"capacidad"`
	Active    bool   `json:"activo"`
	CreatedAt string `json:"fecha_creacion"`
}

// CreateSpaceRequest creates a space.
type CreateSpaceRequest struct {
	Name     string `json:"nombre"`
	Type     string `json:"tipo"`
	Capacity int    `json:"capacidad"`
}

// UpdateSpaceRequest is a partial update; nil fields are left untouched.
type UpdateSpaceRequest struct {
	Name     *string `json:"nombre,omitempty"`
	Type     *string `json:"tipo,omitempty"`
	Capacity *int    `json:"capacidad,omitempty"`
	Active   *bool   `json:"activo,omitempty"`
}

// SpaceSearch asks the availability service which spaces are free in a window.
// A nil Type searches every space type.
type SpaceSearch struct {
	Type  *string `json:"tipo"`
	Start string  `json:"fecha_inicio"`
	End   string  `json:"fecha_fin"`
}

// AvailableSpace is one row of a space search.
type AvailableSpace struct {
	ID        ID     `json:"id"`
	Name      string `json:"nombre"`
	Type      string `json:"tipo"`
	Capacity  int    `json:"capacidad"`
	Available bool   `json:"disponible"`
}

// AvailabilityCheck asks whether a single space is free in a window.
type AvailabilityCheck struct {
	SpaceID ID     `json:"id_espacio"`
	Start   string `json:"fecha_inicio"`
	End     string `json:"fecha_fin"`
}

// Availability is the answer to an AvailabilityCheck.
type Availability struct {
	Available bool             `json:"disponible"`
	SpaceID   ID               `json:"id_espacio"`
	SpaceName string           `json:"espacio_nombre"`
	Start     string           `json:"fecha_inicio"`
	End       string           `json:"fecha_fin"`
	Conflicts []map[string]any `json:"conflictos"`
}
