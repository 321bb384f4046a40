package domain

// DateRange bounds a report, both ends formatted as YYYY-MM-DD.
type DateRange struct {
	From string `json:"fecha_inicio"`
	To   string `json:"fecha_fin"`
}

// SpaceUsage is one entry of the most-used spaces ranking.
type SpaceUsage struct {
	Name  string `json:"nombre"`
	Count int    `json:"uso"`
}

// UsageReport summarizes bookings in a DateRange.
type UsageReport struct {
	OccupancyPercent float64        `json:"ocupacion_porcentaje"`
	TotalBookings    int            `json:"total_reservas"`
	TopSpaces        []SpaceUsage   `json:"espacios_mas_usados"`
	ByState          map[string]int `json:"reservas_por_estado"`
}

// Statistics are system-wide totals from the reports service.
type Statistics struct {
	ActiveUsers      int     `json:"usuarios_activos"`
	ActiveSpaces     int     `json:"espacios_activos"`
	TotalBookings    int     `json:"total_reservas"`
	ApprovedBookings int     `json:"reservas_aprobadas"`
	PendingBookings  int     `json:"reservas_pendientes"`
	RejectedBookings int     `json:"reservas_rechazadas"`
	ApprovalRate     float64 `json:"tasa_aprobacion"`
	RejectionRate    float64 `json:"tasa_rechazo"`
	TotalIncidents   int     `json:"total_incidencias"`
	OpenIncidents    int     `json:"incidencias_abiertas"`
}

// IncidentReport groups incidents by state and type.
type IncidentReport struct {
	ByState map[string]int `json:"incidencias_por_estado"`
	ByType  map[string]int `json:"incidencias_por_tipo"`
	Total   int            `json:"total_incidencias"`
}

// AuditFilter narrows the reports service's audit history.
type AuditFilter struct {
	From   string
	To     string
	Action string
	Limit  int
}
