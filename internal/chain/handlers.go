package chain

import (
	"net/http"

	com "github.com/citizenwallet/govdash/internal/common"
	"github.com/citizenwallet/govdash/internal/networks"
	"github.com/citizenwallet/govdash/pkg/gov"
)

type Networks interface {
	All() []gov.Network
}

type Service struct {
	networks Networks
}

// NewService
func NewService(networks Networks) *Service {
	return &Service{
		networks,
	}
}

type network struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	SubgraphID  string `json:"subgraph_id"`
}

type networksResponse struct {
	Networks []network `json:"networks"`
}

// Networks godoc
//
//	@Summary		List networks
//	@Description	get the networks this dashboard serves
//	@Tags			chain
//	@Produce		json
//	@Success		200	{object}	networksResponse
//	@Router			/api/networks [get]
func (s *Service) Networks(w http.ResponseWriter, r *http.Request) {
	all := s.networks.All()

	resp := &networksResponse{Networks: make([]network, 0, len(all))}
	for _, n := range all {
		resp.Networks = append(resp.Networks, network{
			Name:        n.Name,
			DisplayName: networks.DisplayName(n),
			SubgraphID:  n.SubgraphID,
		})
	}

	err := com.JSON(w, http.StatusOK, resp)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
	}
}
