package version

import (
	"net/http"

	"github.com/citizenwallet/govdash/internal/common"
	"github.com/citizenwallet/govdash/pkg/gov"
)

type Service struct{}

func NewService() *Service {
	return &Service{}
}

type response struct {
	Version string `json:"version"`
}

// Current returns the current version of the API
func (s *Service) Current(w http.ResponseWriter, r *http.Request) {
	err := common.JSON(w, http.StatusOK, &response{Version: gov.Version})
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
	}
}
