package dto

// UserStatsResponse is a point-in-time aggregate over current entity counts
type UserStatsResponse struct {
	TotalUsers          int64 `json:"total_users"`
	ActiveProfessionals int64 `json:"active_professionals"`
	ActiveClients       int64 `json:"active_clients"`
	ActiveUsers         int64 `json:"active_users"`
	InactiveUsers       int64 `json:"inactive_users"`
}
