package domain

// SystemConfig holds the booking rules managed by the admin service.
type SystemConfig struct {
	AdvanceWindowDays  int    `json:"ventana_anticipacion_dias"`
	MaxBookingsPerUser int    `json:"max_reservas_usuario"`
	MaxDurationHours   int    `json:"duracion_max_horas"`
	OpeningTime        string `json:"hora_inicio"`
	ClosingTime        string `json:"hora_fin"`
}

// ConfigUpdate is a partial configuration update; nil fields are omitted.
type ConfigUpdate struct {
	AdvanceWindowDays  *int    `json:"ventana_anticipacion_dias,omitempty"`
	MaxBookingsPerUser *int    `json:"max_reservas_usuario,omitempty"`
	MaxDurationHours   *int    `json:"duracion_max_horas,omitempty"`
	OpeningTime        *string `json:"hora_inicio,omitempty"`
	ClosingTime        *string `json:"hora_fin,omitempty"`
}

// Empty reports whether the update would change nothing.
func (u ConfigUpdate) Empty() bool {
	return u.AdvanceWindowDays == nil && u.MaxBookingsPerUser == nil &&
		u.MaxDurationHours == nil && u.OpeningTime == nil && u.ClosingTime == nil
}

// AuditEntry is one row of the admin service's audit log.
type AuditEntry struct {
	ID       ID     `json:"id"`
	Table    string `json:"tabla_afectada"`
	Action   string `json:"accion"`
	RecordID *ID    `json:"id_registro"`
	At       string `json:"fecha_accion"`
	UserID   *ID    `json:"usuario_id"`
}
