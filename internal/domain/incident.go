package domain

// Incident states.
const (
	IncidentOpen       = "abierta"
	IncidentInProgress = "en_progreso"
	IncidentResolved   = "resuelta"
	IncidentClosed     = "cerrada"
)

// IncidentTypes are the categories offered when reporting an incident. The
// incidents service accepts any string.
var IncidentTypes = []string{"equipamiento", "infraestructura", "limpieza", "seguridad", "otro"}

// Incident is a problem reported against a space.
type Incident struct {
	ID           ID     `json:"id"`
	SpaceID      ID     `json:"id_espacio"`
	Type         string `json:"tipo_incidencia"`
	Description  string `json:"descripcion"`
	State        string `json:"estado"`
	ReportedAt   string `json:"fecha_reporte"`
	SpaceName    string `json:"espacio_nombre"`
	ReporterName string `json:"usuario_reporta_nombre"`
}

// Open reports whether the incident still needs attention.
func (i Incident) Open() bool {
	return i.State == IncidentOpen || i.State == IncidentInProgress
}

// ReportIncidentRequest reports a new incident.
type ReportIncidentRequest struct {
	SpaceID     ID     `json:"id_espacio"`
	Type        string `json:"tipo_incidencia"`
	Description string `json:"descripcion"`
	ReporterID  ID     `json:"id_usuario_reporta"`
}

// BlockRequest blocks the incident's space for a time window.
type BlockRequest struct {
	IncidentID ID     `json:"id_incidencia"`
	Start      string `json:"fecha_inicio"`
	End        string `json:"fecha_fin"`
	AdminID    ID     `json:"id_administrador"`
}

// ResolveIncidentRequest closes an incident with a solution.
type ResolveIncidentRequest struct {
	IncidentID ID     `json:"id_incidencia"`
	Solution   string `json:"solucion"`
	ResolverID ID     `json:"id_usuario_resuelve"`
}
