package response

import "engetrack/internal/domain/entities"

type NotificacaoResponse struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// FromCounts renders counters in the fixed order given, so the payload is
// stable across requests.
func FromCounts(order []entities.ServicoStatus, counts map[entities.ServicoStatus]int) []NotificacaoResponse {
	out := make([]NotificacaoResponse, 0, len(order))
	for _, st := range order {
		out = append(out, NotificacaoResponse{Status: string(st), Count: counts[st]})
	}
	return out
}
